package wxparams

import "gonum.org/v1/gonum/unit"

//--------------------------------------
// 単位換算
//--------------------------------------

// 風速 m/s -> ノット
func MPSToKT(x float64) float64 {
	return x / knotPerMPS
}

// 風速 ノット -> m/s
func KTToMPS(x float64) float64 {
	return x * knotPerMPS
}

// 長さ m -> フィート
func MToFT(x float64) float64 {
	return x / metrePerFoot
}

// 長さ フィート -> m
func FTToM(x float64) float64 {
	return x * metrePerFoot
}

// 気温 華氏 -> 摂氏
func DegFToDegC(t float64) float64 {
	return (t - 32.0) / 1.8
}

// 気温 摂氏 -> 華氏
func DegCToDegF(t float64) float64 {
	return 1.8*t + 32.0
}

// Knots は速度をノットで返します。
func Knots(v unit.Velocity) float64 {
	return MPSToKT(float64(v))
}

// VelocityFromKnots はノットの風速を unit.Velocity に変換します。
func VelocityFromKnots(kt float64) unit.Velocity {
	return unit.Velocity(KTToMPS(kt))
}

// Feet は長さをフィートで返します。
func Feet(l unit.Length) float64 {
	return MToFT(float64(l))
}

// LengthFromFeet はフィートの長さを unit.Length に変換します。
func LengthFromFeet(ft float64) unit.Length {
	return unit.Length(FTToM(ft))
}

// Kelvin は摂氏 t [℃] を絶対温度に変換します。
func Kelvin(t float64) unit.Temperature {
	return unit.Temperature(t+absT) * unit.Kelvin
}

// Celsius は絶対温度を摂氏 [℃] で返します。
func Celsius(t unit.Temperature) float64 {
	return float64(t) - absT
}
