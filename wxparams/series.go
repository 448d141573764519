package wxparams

import (
	"fmt"
	"sort"
	"time"

	"gonum.org/v1/gonum/floats"
)

// 地上観測の時系列データ
type Series struct {
	date []time.Time //参照時刻

	//観測値
	TMP  []float64 //気温 (単位:℃)
	DT   []float64 //露点温度 (単位:℃)
	PRES []float64 //気圧 (単位:hPa)
	UGRD []float64 //東西風(U軸) (単位:m/s)
	VGRD []float64 //南北風(V軸) (単位:m/s)

	Elevation float64 //観測地点の標高 (単位:m)

	//Derive で計算する項目
	WSPD   []float64 //風速 (単位:m/s)
	WDIR   []float64 //風向 (単位:°, 0:無風)
	WDIR16 []int     //16方位の風向番号 (0:無風, 1:NNE, ..., 16:N)
	RH     []float64 //相対湿度 (単位:%)
	Pw     []float64 //水蒸気圧 (単位:hPa)
	MR     []float64 //混合比 (単位:g/g)
	VT     []float64 //仮温度 (単位:℃)
	THETA  []float64 //温位 (単位:K)
	EPT    []float64 //相当温位 (単位:K)
	PRMSL  []float64 //海面更正気圧 (単位:hPa)
}

// 観測値から Series を作成します。引数のスライスは複製して保持します。
func NewSeries(date []time.Time, TMP, DT, PRES, UGRD, VGRD []float64, elevation float64) (*Series, error) {
	if !floats.EqualLengths(TMP, DT, PRES, UGRD, VGRD) || len(TMP) != len(date) {
		return nil, fmt.Errorf("%w: series columns have different lengths", ErrShapeMismatch)
	}
	for i := 1; i < len(date); i++ {
		if date[i].Before(date[i-1]) {
			return nil, fmt.Errorf("wxparams: series dates are not sorted at index %d", i)
		}
	}
	return &Series{
		date:      append([]time.Time{}, date...),
		TMP:       append([]float64{}, TMP...),
		DT:        append([]float64{}, DT...),
		PRES:      append([]float64{}, PRES...),
		UGRD:      append([]float64{}, UGRD...),
		VGRD:      append([]float64{}, VGRD...),
		Elevation: elevation,
	}, nil
}

// 参照時刻の一覧
func (s *Series) Date() []time.Time {
	return append([]time.Time{}, s.date...)
}

// データ数
func (s *Series) Len() int {
	return len(s.date)
}

// 風向風速、湿度および安定度に関する項目を計算します。
func (s *Series) Derive(f Formula) {
	getLogger().Debugf("時系列データの計算: %d件 (%s)", len(s.date), f)

	s.WindVectorToDirAndSpeed()

	n := len(s.date)
	s.RH = make([]float64, n)
	s.Pw = make([]float64, n)
	s.MR = make([]float64, n)
	s.VT = make([]float64, n)
	s.THETA = make([]float64, n)
	s.EPT = make([]float64, n)
	s.PRMSL = make([]float64, n)

	for i := 0; i < n; i++ {
		t, td, p := s.TMP[i], s.DT[i], s.PRES[i]

		s.RH[i] = TdToRH(t, td, f)
		s.Pw[i] = TToWVP(td, f)
		s.MR[i] = MixingRatio(td, p, f)
		s.VT[i] = VirtualTemperature(t, td, p, f)
		s.THETA[i] = Theta(t, p)
		s.EPT[i] = ThetaE(t, td, p, f)
		s.PRMSL[i] = PresToPRMSL(p, t, s.Elevation)
	}
}

// ベクトル風速 UGRD, VGRD から風向風速 WDIR, WSPD と16方位の風向番号 WDIR16 を計算
func (s *Series) WindVectorToDirAndSpeed() {
	s.WSPD = make([]float64, len(s.date))
	s.WDIR = make([]float64, len(s.date))
	s.WDIR16 = make([]int, len(s.date))

	for i := 0; i < len(s.date); i++ {
		spd, dir := UVToSpdDir(s.UGRD[i], s.VGRD[i])
		s.WSPD[i] = spd
		s.WDIR[i] = dir
		s.WDIR16[i] = DirIndex16(dir)
	}
}

// 開始日時 start から 終了日時 end まで (両端を含む) のデータを抜き出して新しい構造体を作成します。
func (s *Series) Extract(start time.Time, end time.Time) *Series {
	from := sort.Search(len(s.date), func(i int) bool {
		return !s.date[i].Before(start)
	})
	to := sort.Search(len(s.date), func(i int) bool {
		return s.date[i].After(end)
	})
	if to < from {
		to = from
	}

	cut := func(x []float64) []float64 {
		if x == nil {
			return nil
		}
		return append([]float64{}, x[from:to]...)
	}

	out := &Series{
		date:      append([]time.Time{}, s.date[from:to]...),
		TMP:       cut(s.TMP),
		DT:        cut(s.DT),
		PRES:      cut(s.PRES),
		UGRD:      cut(s.UGRD),
		VGRD:      cut(s.VGRD),
		Elevation: s.Elevation,
		WSPD:      cut(s.WSPD),
		WDIR:      cut(s.WDIR),
		RH:        cut(s.RH),
		Pw:        cut(s.Pw),
		MR:        cut(s.MR),
		VT:        cut(s.VT),
		THETA:     cut(s.THETA),
		EPT:       cut(s.EPT),
		PRMSL:     cut(s.PRMSL),
	}
	if s.WDIR16 != nil {
		out.WDIR16 = append([]int{}, s.WDIR16[from:to]...)
	}
	return out
}
