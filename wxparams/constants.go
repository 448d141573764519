// Package wxparams は気象要素の計算を行うパッケージです。
//
// 風ベクトルと風向風速の変換、方位への丸め、水蒸気圧・湿度の計算、
// 安定度指数、海面更正気圧および単位換算を提供します。
// 関数はすべて副作用を持たず、複数のゴルーチンから同時に呼び出すことができます。
package wxparams

import "gonum.org/v1/gonum/unit/constant"

// 物理定数
const (
	absT          = 273.15 // 0℃の絶対温度 [K]
	rDivCp        = 0.2857 // 乾燥空気の気体定数と定圧比熱の比 R/Cp
	rDivCpBolton  = 0.2854 // 相当温位の計算に用いる R/Cp (Bolton, 1980)
	epsilon       = 0.622  // 水蒸気と乾燥空気の分子量比
	rd            = 287.04 // 乾燥空気の気体定数 [J/kg/K]
	gammaD        = 0.00976
	gammaS        = 0.0065 // 標準大気の気温減率 [℃/m]
	kappa         = 5.257
	knotPerMPS    = 0.51444 // 1ノット [m/s]
	metrePerFoot  = 0.3048
	absHumidCoeff = 2.16674 // 水蒸気密度の係数 [g K/J]
)

// 標準重力加速度 [m/s2]
var g0 = float64(constant.StandardGravity)
