// Copyright 2016 The Gopd Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"github.com/cpmech/gosl/plt"
)

// Styles
type Styles []*plt.A

// GetDefaultStyles returns a list of distinct formatting arguments for n curves
func GetDefaultStyles(n int) Styles {
	colors := []string{"b", "r", "g", "m", "orange", "k"}
	sty := make([]*plt.A, n)
	for i := 0; i < n; i++ {
		sty[i] = &plt.A{C: colors[i%len(colors)], M: ".", Ls: "-"}
	}
	return sty
}

// GetTexLabel returns a TeX label of a named quantity
func GetTexLabel(key, unit string) string {
	l := "$"
	switch key {
	case "ux":
		l += "u_x"
	case "uy":
		l += "u_y"
	case "uz":
		l += "u_z"
	case "fx":
		l += "f_x"
	case "fy":
		l += "f_y"
	case "fz":
		l += "f_z"
	case "w":
		l += "W"
	case "m":
		l += "m"
	case "theta":
		l += "\\theta"
	case "dmg":
		l += "\\varphi"
	case "vol":
		l += "V"
	case "temp":
		l += "T"
	case "tdot":
		l += "\\dot{T}"
	default:
		l += key
	}
	if unit != "" {
		l += "\\;" + unit
	}
	l += "$"
	return l
}
