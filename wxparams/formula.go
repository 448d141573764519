package wxparams

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrUnknownFormula は飽和水蒸気圧の計算式の名前が不明な場合に返されます。
var ErrUnknownFormula = errors.New("wxparams: unknown vapor pressure formula")

// Formula は飽和水蒸気圧の近似式を表します。ゼロ値は Bolton です。
type Formula int

const (
	Bolton Formula = iota // Bolton (1980)
	Tetens                // Tetens の式
	WMO                   // WMO の近似式
)

func (f Formula) String() string {
	switch f {
	case Tetens:
		return "Tetens"
	case WMO:
		return "WMO"
	case Bolton:
		return "Bolton"
	}
	return fmt.Sprintf("Formula(%d)", int(f))
}

// ParseFormula は計算式の名前を Formula に変換します。
// 空文字列は既定の Bolton とみなします。大文字小文字は区別しません。
func ParseFormula(s string) (Formula, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "bolton":
		return Bolton, nil
	case "tetens":
		return Tetens, nil
	case "wmo":
		return WMO, nil
	}
	return Bolton, fmt.Errorf("%w: %q", ErrUnknownFormula, s)
}

// UnmarshalYAML は YAML のスカラー値を計算式として読み込みます。
func (f *Formula) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseFormula(s)
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}

// MarshalYAML は計算式を名前で書き出します。
func (f Formula) MarshalYAML() (interface{}, error) {
	return f.String(), nil
}

// VaporPressure は気温 t [℃] から飽和水蒸気圧 [hPa] を求めます。
// 露点温度を与えた場合は水蒸気圧になります。
func (f Formula) VaporPressure(t float64) float64 {
	switch f {
	case Tetens:
		return 6.1078 * math.Pow(10, 7.5*t/(t+237.3))
	case WMO:
		return math.Exp(19.482 - 4303.4/(t+243.5))
	default:
		return 6.112 * math.Exp(17.67*t/(t+243.5))
	}
}

// Temperature は VaporPressure の逆関数です。
// 飽和水蒸気圧 e [hPa] から気温 [℃] を、水蒸気圧からは露点温度を求めます。
// e <= 0 の場合は NaN または ±Inf になります。
func (f Formula) Temperature(e float64) float64 {
	switch f {
	case Tetens:
		l := math.Log10(e / 6.1078)
		return 237.3 * l / (7.5 - l)
	case WMO:
		return 4303.4/(19.482-math.Log(e)) - 243.5
	default:
		l := math.Log(e / 6.112)
		return 243.5 * l / (17.67 - l)
	}
}
