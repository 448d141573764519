package wxparams

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/unit"
)

func Test_Theta(t *testing.T) {
	assert.InDelta(t, 293.15, Theta(20, 1000), 1.0e-9)
	assert.InDelta(t, 307.082390, Theta(20, 850), 1.0e-6)
}

// 持ち上げ凝結高度の気温 (入力は絶対温度)
func Test_Tlcl(t *testing.T) {
	tl := Tlcl(293.15*unit.Kelvin, 283.15*unit.Kelvin)
	assert.InDelta(t, 280.933328, float64(tl), 1.0e-6)

	// 飽和していれば気温と等しい
	assert.InDelta(t, 288.15, float64(Tlcl(Kelvin(15), Kelvin(15))), 1.0e-9)
}

func Test_ThetaE(t *testing.T) {
	assert.InDelta(t, 345.682119, ThetaE(20, 15, 850, Bolton), 1.0e-6)

	// 水蒸気を含む分だけ温位より高い
	assert.Greater(t, ThetaE(20, 15, 850, Bolton), Theta(20, 850))
}

// 物理的にありえない入力は NaN となる
func Test_ThetaE_Domain(t *testing.T) {
	assert.True(t, math.IsNaN(ThetaE(20, math.NaN(), 850, Bolton)))
	assert.True(t, math.IsNaN(WVPToT(-1, Tetens)))
}

func Test_KIndex(t *testing.T) {
	assert.Equal(t, 30.0, KIndex(20, 15, 10, 0, -5))
}
