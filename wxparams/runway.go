package wxparams

import "math"

// 滑走路の横風成分
// spd: 風速, dir: 風向 [°], rwy: 滑走路の方位 [°]
func CrossWind(spd float64, dir float64, rwy float64) float64 {
	return math.Abs(spd * math.Sin(degreeToRad(dir-rwy)))
}

// 滑走路の追い風成分 (向かい風の場合は負)
func TailWind(spd float64, dir float64, rwy float64) float64 {
	return -spd * math.Cos(degreeToRad(dir-rwy))
}

// 滑走路の向かい風成分 (追い風の場合は負)
func HeadWind(spd float64, dir float64, rwy float64) float64 {
	return -TailWind(spd, dir, rwy)
}
