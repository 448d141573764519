package wxparams

import "math"

//気圧に関するモジュール

// 海面更正気圧 [hPa] を求める
//
// 引数:
// p: 地上気圧 [hPa]
// t: 地上気温 [℃]
// z: 地点の標高 [m]
// ただし、気温減率を0.0065℃/mとする。
func PresToPRMSL(p float64, t float64, z float64) float64 {
	return p * math.Pow(1-(gammaS*z)/(t+absT+gammaS*z), -kappa)
}

// 海面気圧 p0 [hPa]、地上気圧 p1 [hPa]、地上気温 t1 [℃] から地点の標高 [m] を求める
// PresToPRMSL の逆算です。
func SurfaceHeight(p0 float64, p1 float64, t1 float64) float64 {
	return (math.Pow(p0/p1, 1/kappa) - 1) * (t1 + absT) / gammaS
}

// 気圧の標高補正を行います。
// 引数:
// p: 補正前の気圧 [hPa]
// dz: 標高差 [m]
// t: 気温 [℃]
// 戻り値:
// 標高補正後の気圧 [hPa]
func CorrectPressure(p float64, dz float64, t float64) float64 {
	return p * math.Pow(1-((dz*gammaS)/(t+absT)), kappa)
}

// 気温の標高補正をおこないます。基準値の気温を t [℃]とし、
// 標高差が dz [m]ある地点の温度を計算します。
func CorrectTemperature(t float64, dz float64) float64 {
	return t - dz*gammaS
}
