package wxparams

import (
	"errors"
	"fmt"

	"github.com/ctessum/sparse"
	"gonum.org/v1/gonum/floats"
)

//--------------------------------------
// 配列 (格子データ) に対する要素ごとの計算
//--------------------------------------

// ErrShapeMismatch は配列の形状が一致しない場合に返されます。
var ErrShapeMismatch = errors.New("wxparams: array shapes differ")

func sameShape(xs []*sparse.DenseArray) error {
	if len(xs) == 0 {
		return nil
	}
	shape := xs[0].Shape
	elems := make([][]float64, len(xs))
	for i, x := range xs {
		elems[i] = x.Elements
		if len(x.Shape) != len(shape) {
			return fmt.Errorf("%w: argument %d has %d dimensions, want %d", ErrShapeMismatch, i, len(x.Shape), len(shape))
		}
		for d := range shape {
			if x.Shape[d] != shape[d] {
				return fmt.Errorf("%w: argument %d has shape %v, want %v", ErrShapeMismatch, i, x.Shape, shape)
			}
		}
	}
	if !floats.EqualLengths(elems...) {
		return fmt.Errorf("%w: element counts differ", ErrShapeMismatch)
	}
	return nil
}

// Map は同じ形状の配列 xs の各要素に f を適用し、同じ形状の新しい配列を返します。
// f には xs と同じ順序で各配列の要素が渡されます。入力の配列は変更しません。
func Map(f func(v []float64) float64, xs ...*sparse.DenseArray) (*sparse.DenseArray, error) {
	if len(xs) == 0 {
		return nil, fmt.Errorf("%w: no arrays given", ErrShapeMismatch)
	}
	if err := sameShape(xs); err != nil {
		return nil, err
	}
	out := sparse.ZerosDense(xs[0].Shape...)
	v := make([]float64, len(xs))
	for i := range out.Elements {
		for j, x := range xs {
			v[j] = x.Elements[i]
		}
		out.Elements[i] = f(v)
	}
	return out, nil
}

// map2 は2つの出力を持つ関数を要素ごとに適用します。
func map2(f func(a, b float64) (float64, float64), x, y *sparse.DenseArray) (*sparse.DenseArray, *sparse.DenseArray, error) {
	if err := sameShape([]*sparse.DenseArray{x, y}); err != nil {
		return nil, nil, err
	}
	out1 := sparse.ZerosDense(x.Shape...)
	out2 := sparse.ZerosDense(x.Shape...)
	for i := range x.Elements {
		out1.Elements[i], out2.Elements[i] = f(x.Elements[i], y.Elements[i])
	}
	return out1, out2, nil
}

// UVToSpdDirArray は UVToSpdDir の配列版です。
func UVToSpdDirArray(u, v *sparse.DenseArray) (spd, dir *sparse.DenseArray, err error) {
	return map2(UVToSpdDir, u, v)
}

// SpdDirToUVArray は SpdDirToUV の配列版です。
func SpdDirToUVArray(spd, dir *sparse.DenseArray) (u, v *sparse.DenseArray, err error) {
	return map2(SpdDirToUV, spd, dir)
}

// DirIndex8Array は DirIndex8 の配列版です。
func DirIndex8Array(dir *sparse.DenseArray) *sparse.DenseArray {
	out, _ := Map(func(v []float64) float64 { return float64(DirIndex8(v[0])) }, dir)
	return out
}

// DirIndex16Array は DirIndex16 の配列版です。
func DirIndex16Array(dir *sparse.DenseArray) *sparse.DenseArray {
	out, _ := Map(func(v []float64) float64 { return float64(DirIndex16(v[0])) }, dir)
	return out
}

// DegToDir8Labels は dir の各要素を8方位の名前に変換し、要素の並び順で返します。
func DegToDir8Labels(dir *sparse.DenseArray, calm string) []string {
	labels := make([]string, len(dir.Elements))
	for i, d := range dir.Elements {
		labels[i] = DegToDir8(d, calm)
	}
	return labels
}

// DegToDir16Labels は dir の各要素を16方位の名前に変換し、要素の並び順で返します。
func DegToDir16Labels(dir *sparse.DenseArray, calm string) []string {
	labels := make([]string, len(dir.Elements))
	for i, d := range dir.Elements {
		labels[i] = DegToDir16(d, calm)
	}
	return labels
}

// RHToTdArray は RHToTd の配列版です。
func RHToTdArray(t, rh *sparse.DenseArray, f Formula) (*sparse.DenseArray, error) {
	return Map(func(v []float64) float64 { return RHToTd(v[0], v[1], f) }, t, rh)
}

// TdToRHArray は TdToRH の配列版です。
func TdToRHArray(t, td *sparse.DenseArray, f Formula) (*sparse.DenseArray, error) {
	return Map(func(v []float64) float64 { return TdToRH(v[0], v[1], f) }, t, td)
}

// ThetaEArray は ThetaE の配列版です。
func ThetaEArray(t, td, p *sparse.DenseArray, f Formula) (*sparse.DenseArray, error) {
	return Map(func(v []float64) float64 { return ThetaE(v[0], v[1], v[2], f) }, t, td, p)
}

// KIndexArray は KIndex の配列版です。
func KIndexArray(t850, td850, t700, td700, t500 *sparse.DenseArray) (*sparse.DenseArray, error) {
	return Map(func(v []float64) float64 { return KIndex(v[0], v[1], v[2], v[3], v[4]) }, t850, td850, t700, td700, t500)
}

// SSIArray は SSI の配列版です。
// h0, h1 がともに nil でない場合は、気層の高度 [m] から層厚を求めます。
func SSIArray(p0, p1, t0, t1, td0 *sparse.DenseArray, f Formula, h0, h1 *sparse.DenseArray) (*sparse.DenseArray, error) {
	if h0 != nil && h1 != nil {
		return Map(func(v []float64) float64 {
			return SSI(v[0], v[1], v[2], v[3], v[4], f, WithHeights(v[5], v[6]))
		}, p0, p1, t0, t1, td0, h0, h1)
	}
	return Map(func(v []float64) float64 {
		return SSI(v[0], v[1], v[2], v[3], v[4], f)
	}, p0, p1, t0, t1, td0)
}
