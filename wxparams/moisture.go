package wxparams

import "math"

//--------------------------------------
// 水蒸気圧、湿度および露点温度の計算
//--------------------------------------

// 相対湿度の下限 [%]
const minRH = 0.1

// 気温 t [℃] から飽和水蒸気圧 [hPa] を求める
// 露点温度 [℃] を与えた場合は水蒸気圧 [hPa] になる
func TToWVP(t float64, f Formula) float64 {
	return f.VaporPressure(t)
}

// 飽和水蒸気圧 es [hPa] から気温 [℃] を求める
// 水蒸気圧 [hPa] を与えた場合は露点温度 [℃] になる
func WVPToT(es float64, f Formula) float64 {
	return f.Temperature(es)
}

// 気温 t [℃] と相対湿度 rh [%] から露点温度 [℃] を求める
//
// 相対湿度は 0.1% を下限とする。
func RHToTd(t float64, rh float64, f Formula) float64 {
	rh = math.Max(rh, minRH)
	es := TToWVP(t, f)
	e := es * rh / 100
	return WVPToT(e, f)
}

// 気温 t [℃] と露点温度 td [℃] から相対湿度 [%] を求める
func TdToRH(t float64, td float64, f Formula) float64 {
	es := TToWVP(t, f)
	e := TToWVP(td, f)
	return 100 * e / es
}

// 湿数 (気温と露点温度の差) [℃]
func TTd(t float64, td float64) float64 {
	return t - td
}

// 露点温度 td [℃] と気圧 p [hPa] から混合比 [g/g] を求める
func MixingRatio(td float64, p float64, f Formula) float64 {
	e := TToWVP(td, f)
	return epsilon * e / (p - e)
}

// 露点温度 td [℃] と気圧 p [hPa] から比湿 [g/g] を求める
func SpecificHumidity(td float64, p float64, f Formula) float64 {
	e := TToWVP(td, f)
	return epsilon * e / (p - (1-epsilon)*e)
}

// 気温 t [℃] と露点温度 td [℃] から絶対湿度 (水蒸気密度) [g/m3] を求める
func AbsoluteHumidity(t float64, td float64, f Formula) float64 {
	e := TToWVP(td, f)
	return absHumidCoeff * e * 100 / (t + absT)
}

// 気温 t [℃]、露点温度 td [℃]、気圧 p [hPa] から仮温度 [℃] を求める
func VirtualTemperature(t float64, td float64, p float64, f Formula) float64 {
	q := SpecificHumidity(td, p, f)
	return (t+absT)*(1-q+q/epsilon) - absT
}
