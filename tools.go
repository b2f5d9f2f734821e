//go:build tools

// This file pins gogio, which packages dualcalc for Android, iOS and the web:
//
//	go run gioui.org/cmd/gogio -target android ./dualcalc
package tools

import _ "gioui.org/cmd/gogio"
