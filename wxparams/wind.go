package wxparams

import (
	"math"
)

//--------------------------------------
// 風速風向計算
//--------------------------------------

// ベクトル風速 u (東西成分), v (南北成分) から風速 spd と風向 dir [°] を計算する
//
// 風向は風の吹いてくる方位で、北風が 360 になります。
// 風向 0 は無風を表すため、風速が 0 の場合のみ 0 を返します。
func UVToSpdDir(u float64, v float64) (spd float64, dir float64) {
	// 三平方の定理により、東西、南北のベクトル成分から風速を計算
	spd = math.Hypot(u, v)

	// 東西、南北のベクトル成分から風向を計算
	dir = radToDegree(math.Atan2(u, v)) + 180.0

	if dir == 0 {
		dir = 360.0
	}
	if spd == 0 {
		dir = 0.0
	}
	return spd, dir
}

// 風速 spd と風向 dir [°] からベクトル風速 u, v を計算する
//
// 風速 0 や風向 0/360 では UVToSpdDir と往復させても元の値に戻りません。
func SpdDirToUV(spd float64, dir float64) (u float64, v float64) {
	rad := degreeToRad(dir)
	u = -spd * math.Sin(rad)
	v = -spd * math.Cos(rad)
	return u, v
}

// ベクトル風速 u, v から16方位の風向 dir16 と 風速 spd16 を計算する
// 風向は22.5°単位に丸め、風速は丸めた方位への射影とする
func Wind16(u float64, v float64) (spd16 float64, dir16 float64) {
	spd, dir := UVToSpdDir(u, v)
	if spd == 0 {
		return 0, 0
	}

	// 16方位への丸め処理
	dir16 = math.Round(dir/22.5) * 22.5
	gap := math.Abs(dir16 - dir)
	spd16 = math.Cos(degreeToRad(gap)) * spd

	return spd16, dir16
}

func radToDegree(rad float64) float64 {
	return rad * 180.0 / math.Pi
}

func degreeToRad(deg float64) float64 {
	return deg * math.Pi / 180.0
}
