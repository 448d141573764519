package wxparams

import (
	"testing"

	"github.com/ctessum/sparse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
)

func dense(shape []int, vals ...float64) *sparse.DenseArray {
	a := sparse.ZerosDense(shape...)
	copy(a.Elements, vals)
	return a
}

func Test_Map(t *testing.T) {
	a := dense([]int{2, 3}, 1, 2, 3, 4, 5, 6)
	b := dense([]int{2, 3}, 10, 20, 30, 40, 50, 60)

	out, err := Map(func(v []float64) float64 { return v[0] + v[1] }, a, b)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3}, out.Shape)
	assert.Equal(t, []float64{11, 22, 33, 44, 55, 66}, out.Elements)

	// 入力は変更しない
	assert.Equal(t, []float64{1, 2, 3, 4, 5, 6}, a.Elements)
}

func Test_Map_ShapeMismatch(t *testing.T) {
	a := dense([]int{2, 3})
	b := dense([]int{3, 2})
	_, err := Map(func(v []float64) float64 { return 0 }, a, b)
	assert.ErrorIs(t, err, ErrShapeMismatch)

	_, err = Map(func(v []float64) float64 { return 0 }, a, dense([]int{6}))
	assert.ErrorIs(t, err, ErrShapeMismatch)

	_, err = Map(func(v []float64) float64 { return 0 })
	assert.ErrorIs(t, err, ErrShapeMismatch)
}

func Test_UVToSpdDirArray(t *testing.T) {
	u := dense([]int{2, 2}, 0, 10, -1, 0)
	v := dense([]int{2, 2}, 0, 0, -1, -5)

	spd, dir, err := UVToSpdDirArray(u, v)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 2}, spd.Shape)
	assert.True(t, floats.EqualApprox([]float64{0, 10, 1.4142135623730951, 5}, spd.Elements, 1.0e-12))
	assert.True(t, floats.EqualApprox([]float64{0, 270, 45, 360}, dir.Elements, 1.0e-12))

	uu, vv, err := SpdDirToUVArray(spd, dir)
	require.NoError(t, err)
	assert.True(t, floats.EqualApprox(u.Elements, uu.Elements, 1.0e-12))
	assert.True(t, floats.EqualApprox(v.Elements, vv.Elements, 1.0e-12))
}

func Test_DirArrays(t *testing.T) {
	dir := dense([]int{4}, 0, 22.4, 22.6, 360)
	assert.Equal(t, []float64{0, 8, 1, 8}, DirIndex8Array(dir).Elements)
	assert.Equal(t, []string{"CALM", "N", "NE", "N"}, DegToDir8Labels(dir, "CALM"))
	assert.Equal(t, []string{"", "NNE", "NNE", "N"}, DegToDir16Labels(dir, ""))
	assert.Equal(t, []float64{0, 1, 1, 16}, DirIndex16Array(dir).Elements)
}

func Test_MoistureArrays(t *testing.T) {
	tc := dense([]int{1, 2}, 20, 20)
	rh := dense([]int{1, 2}, 50, 0)

	td, err := RHToTdArray(tc, rh, Bolton)
	require.NoError(t, err)
	assert.InDelta(t, 9.270086, td.Elements[0], 1.0e-6)
	assert.Equal(t, RHToTd(20, 0.1, Bolton), td.Elements[1])

	back, err := TdToRHArray(tc, td, Bolton)
	require.NoError(t, err)
	assert.True(t, floats.EqualApprox([]float64{50, 0.1}, back.Elements, 1.0e-9))
}

func Test_IndexArrays(t *testing.T) {
	shape := []int{2}
	k, err := KIndexArray(
		dense(shape, 20, 15), dense(shape, 15, 10),
		dense(shape, 10, 5), dense(shape, 0, -5),
		dense(shape, -5, -5),
	)
	require.NoError(t, err)
	assert.Equal(t, []float64{30, 20}, k.Elements)

	ept, err := ThetaEArray(dense(shape, 20, 20), dense(shape, 15, 15), dense(shape, 850, 850), Bolton)
	require.NoError(t, err)
	assert.InDelta(t, 345.682119, ept.Elements[1], 1.0e-6)
}

// 要素ごとに収束判定してもスカラー版と同じ値になる
func Test_SSIArray(t *testing.T) {
	shape := []int{2, 2}
	p0 := dense(shape, 850, 850, 850, 850)
	p1 := dense(shape, 500, 500, 500, 500)
	t0 := dense(shape, 15, 20, 24, 30)
	t1 := dense(shape, -10, -8, -5, -10)
	td0 := dense(shape, 5, 18, 20, -40)

	ssi, err := SSIArray(p0, p1, t0, t1, td0, Bolton, nil, nil)
	require.NoError(t, err)
	for i := range ssi.Elements {
		want := SSI(p0.Elements[i], p1.Elements[i], t0.Elements[i], t1.Elements[i], td0.Elements[i], Bolton)
		assert.Equal(t, want, ssi.Elements[i])
	}

	h0 := dense(shape, 1500, 1500, 1500, 1500)
	h1 := dense(shape, 1600, 1600, 1600, 1600)
	ssi, err = SSIArray(p0, p1, t0, t1, td0, Bolton, h0, h1)
	require.NoError(t, err)
	assert.InDelta(t, -10-(30-0.976), ssi.Elements[3], 1.0e-12)

	_, err = SSIArray(p0, p1, t0, t1, dense([]int{4}), Bolton, nil, nil)
	assert.ErrorIs(t, err, ErrShapeMismatch)
}
