package wxparams

import (
	"math"

	"gonum.org/v1/gonum/unit"
)

//--------------------------------------
// 大気の熱力学および安定度に関する計算
//--------------------------------------

// 気温 t [℃] と気圧 p [hPa] から温位 [K] を求める
func Theta(t float64, p float64) float64 {
	return (t + absT) * math.Pow(1000.0/p, rDivCp)
}

// 持ち上げ凝結高度の気温を求める (Bolton, 1980)
//
// Args:
//
//	t: 気温 [K]
//	td: 露点温度 [K]
//
// Returns:
//
//	持ち上げ凝結高度の気温 [K]
//
// 他の関数と異なり、入出力は絶対温度です。
func Tlcl(t unit.Temperature, td unit.Temperature) unit.Temperature {
	T, Td := float64(t), float64(td)
	return unit.Temperature(1/(1/(Td-56)+math.Log(T/Td)/800) + 56)
}

// 気温 t [℃]、露点温度 td [℃]、気圧 p [hPa] から相当温位 [K] を求める
//
// 参考: https://www.data.jma.go.jp/add/suishin/jyouhou/pdf/371.pdf
func ThetaE(t float64, td float64, p float64, f Formula) float64 {
	e := TToWVP(td, f)
	m := MixingRatio(td, p, f)

	T := float64(Kelvin(t))
	tLCL := float64(Tlcl(Kelvin(t), Kelvin(td)))

	return T * math.Pow(1000.0/(p-e), rDivCpBolton) *
		math.Pow(T/tLCL, 0.28*m) *
		math.Exp((3036.0/tLCL-1.78)*m*(1+0.448*m))
}

// K指数
//
// 850hPa の気温と露点温度、700hPa の気温と露点温度、500hPa の気温 [℃] から求める
func KIndex(t850 float64, td850 float64, t700 float64, td700 float64, t500 float64) float64 {
	return (t850 - t500) + td850 - (t700 - td700)
}
