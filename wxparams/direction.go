package wxparams

import "math"

//--------------------------------------
// 風向の方位への変換
//--------------------------------------

var (
	dirNames8  = [...]string{"N", "NE", "E", "SE", "S", "SW", "W", "NW"}
	dirNames16 = [...]string{"N", "NNE", "NE", "ENE", "E", "ESE", "SE", "SSE", "S", "SSW", "SW", "WSW", "W", "WNW", "NW", "NNW"}
)

// sector は風向 deg [°] を n 方位の区分番号 0..n-1 に変換します。
// 風向 0 (無風) は n を返します。区分の外になる値 (NaN, ±Inf, 負の大きな値) も n とします。
func sector(deg float64, n int) int {
	if math.IsNaN(deg) || math.IsInf(deg, 0) {
		return n
	}
	width := 360.0 / float64(n)
	if deg == 0 {
		// 無風を北と区別するため、区分の外へ送る
		deg = 720
	}
	deg += width / 2
	if deg >= 360 {
		deg -= 360
	}
	idx := int(deg / width)
	if idx < 0 || idx > n {
		return n
	}
	return idx
}

// 風向 deg [°] を "N, NE, E, SE, S, SW, W, NW" の8方位に変換する
// 無風 (風向 0) の場合は calm を返す
func DegToDir8(deg float64, calm string) string {
	idx := sector(deg, 8)
	if idx >= len(dirNames8) {
		return calm
	}
	return dirNames8[idx]
}

// 風向 deg [°] を "N, NNE, NE, ..., NNW" の16方位に変換する
// 無風 (風向 0) の場合は calm を返す
func DegToDir16(deg float64, calm string) string {
	idx := sector(deg, 16)
	if idx >= len(dirNames16) {
		return calm
	}
	return dirNames16[idx]
}

// 風向 deg [°] を8方位の番号 (0:無風, 1:NE, ..., 8:N) に変換する
func DirIndex8(deg float64) int {
	return renumber(sector(deg, 8), 8)
}

// 風向 deg [°] を16方位の番号 (0:無風, 1:NNE, ..., 16:N) に変換する
func DirIndex16(deg float64) int {
	return renumber(sector(deg, 16), 16)
}

// 北を n 番、無風を 0 番に付け替える
func renumber(idx int, n int) int {
	switch idx {
	case n:
		return 0
	case 0:
		return n
	}
	return idx
}
