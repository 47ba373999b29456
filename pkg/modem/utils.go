package modem

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Debug turns on the tagged trace lines.
var Debug = false

func debugLog(format string, args ...any) {
	if Debug {
		fmt.Printf(format, args...)
	}
}

// correlate returns the dot products of the window with both references.
// The references may be longer than the window.
func correlate(window, inPhase, quadrature []float64) (iSum, qSum float64) {
	n := len(window)
	return floats.Dot(window, inPhase[:n]), floats.Dot(window, quadrature[:n])
}
