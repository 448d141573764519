package wxparams

// 指定気圧面の気温と露点温度
type Level struct {
	P  float64 `yaml:"p"`  //気圧 (単位:hPa)
	T  float64 `yaml:"t"`  //気温 (単位:℃)
	Td float64 `yaml:"td"` //露点温度 (単位:℃)
	Z  float64 `yaml:"z"`  //ジオポテンシャル高度 (単位:m)。0 は未観測
}

// 高層観測 (850hPa, 700hPa, 500hPa)
type Sounding struct {
	Station string  `yaml:"station"`
	Formula Formula `yaml:"formula"`
	L850    Level   `yaml:"850"`
	L700    Level   `yaml:"700"`
	L500    Level   `yaml:"500"`
}

// K指数
func (s Sounding) KIndex() float64 {
	return KIndex(s.L850.T, s.L850.Td, s.L700.T, s.L700.Td, s.L500.T)
}

// 850hPa の空気塊を 500hPa まで持ち上げる
// 両方の気圧面の高度がある場合は高度差を層厚とする
func (s Sounding) Lift() Parcel {
	var opts []SSIOption
	if s.L850.Z != 0 && s.L500.Z != 0 {
		opts = append(opts, WithHeights(s.L850.Z, s.L500.Z))
	}
	return LiftParcel(s.L850.P, s.L500.P, s.L850.T, s.L500.T, s.L850.Td, s.Formula, opts...)
}

// ショワルター安定指数
func (s Sounding) SSI() float64 {
	return s.L500.T - s.Lift().T
}
