package wxparams

import (
	"math"
)

//--------------------------------------
// ショワルター安定指数 (SSI)
//--------------------------------------

const (
	ssiThreshold  = 0.001 // 相当温位の残差の許容値 [K]
	ssiFirstGuess = -20.0 // 湿潤断熱で持ち上げた気温の初期値 [℃]
	ssiFirstStep  = 120.0
	ssiMaxIter    = 20
)

type ssiConfig struct {
	heights bool
	h0, h1  float64
}

// SSIOption は SSI の計算条件を指定します。
type SSIOption func(*ssiConfig)

// WithHeights は層厚を気層の高度 h0, h1 [m] の差から求めるよう指定します。
// 指定しない場合は気温と気圧から層厚方程式で求めます。
func WithHeights(h0 float64, h1 float64) SSIOption {
	return func(c *ssiConfig) {
		c.heights = true
		c.h0, c.h1 = h0, h1
	}
}

// Parcel は持ち上げた空気塊の状態です。
type Parcel struct {
	T          float64 // 持ち上げた先の空気塊の気温 [℃]
	Residual   float64 // 相当温位の残差 [K]
	Iterations int     // 反復回数
	Saturated  bool    // 持ち上げ凝結高度を超えて飽和したか
	Converged  bool    // 残差が許容値を下回ったか
}

// 気層の厚さ [m]
func thickness(p0, p1, t0, t1 float64, c ssiConfig) float64 {
	if c.heights {
		return c.h1 - c.h0
	}
	tAve := (t0+t1)/2 + absT
	return rd * tAve * math.Log(p0/p1) / g0
}

// 気圧 p0 [hPa] の空気塊 (気温 t0, 露点温度 td0 [℃]) を気圧 p1 [hPa] まで持ち上げる
//
// 持ち上げ凝結高度に達しなければ乾燥断熱減率で、達した場合は相当温位が保存されるよう
// 二分探索で気温を求める。反復は最大20回で、収束しなかった場合も最後の推定値を返す。
func LiftParcel(p0, p1, t0, t1, td0 float64, f Formula, opts ...SSIOption) Parcel {
	var c ssiConfig
	for _, opt := range opts {
		opt(&c)
	}

	dz := thickness(p0, p1, t0, t1, c)

	// 乾燥断熱的に持ち上げた気温と持ち上げ凝結高度の気温
	tlDry := t0 - dz*gammaD
	tLCL := Celsius(Tlcl(Kelvin(t0), Kelvin(td0)))

	if tlDry > tLCL {
		// 飽和していない
		return Parcel{T: tlDry, Residual: ssiThreshold / 10, Converged: true}
	}

	// 飽和している場合は相当温位が等しくなる気温を探す
	ept := ThetaE(t0, td0, p0, f)
	parcel := Parcel{T: ssiFirstGuess, Saturated: true}
	diff := 100.0
	step := ssiFirstStep
	for i := 0; i < ssiMaxIter; i++ {
		step /= 2
		diff = ept - ThetaE(parcel.T, parcel.T, p1, f)
		parcel.Iterations = i + 1

		if math.Abs(diff) < ssiThreshold {
			break
		}
		if diff >= ssiThreshold {
			parcel.T += step
		} else if diff <= -ssiThreshold {
			parcel.T -= step
		}
	}
	parcel.Residual = diff
	parcel.Converged = math.Abs(diff) < ssiThreshold

	if !parcel.Converged {
		getLogger().Debugf("SSI: 収束しませんでした p0=%g p1=%g t0=%g td0=%g residual=%g", p0, p1, t0, td0, diff)
	}

	return parcel
}

// ショワルター安定指数
//
// Args:
//
//	p0, t0, td0: 持ち上げる空気塊の気圧 [hPa]、気温 [℃]、露点温度 [℃]
//	p1, t1: 持ち上げ先の気圧 [hPa] と気温 [℃]
//	f: 飽和水蒸気圧の計算式
//
// Returns:
//
//	持ち上げ先の環境の気温と空気塊の気温の差 [℃]
func SSI(p0, p1, t0, t1, td0 float64, f Formula, opts ...SSIOption) float64 {
	parcel := LiftParcel(p0, p1, t0, t1, td0, f, opts...)
	return t1 - parcel.T
}
