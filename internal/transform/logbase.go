package transform

import (
	"fmt"
	"math"
)

// LogBase is a named elementwise logarithm with its inverse. The zero
// value is not usable; construction paths fall back to Log10 when no base
// is supplied.
type LogBase struct {
	Name string
	Fn   func(float64) float64
	Inv  func(float64) float64
}

// Callable reports whether the base carries a usable forward function.
func (b LogBase) Callable() bool {
	return b.Fn != nil
}

// Apply transforms every value through the forward function.
func (b LogBase) Apply(values []float64) []float64 {
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = b.Fn(v)
	}
	return out
}

var (
	Log10 = LogBase{
		Name: "log10",
		Fn:   math.Log10,
		Inv:  func(x float64) float64 { return math.Pow(10, x) },
	}
	Log2 = LogBase{
		Name: "log2",
		Fn:   math.Log2,
		Inv:  func(x float64) float64 { return math.Exp2(x) },
	}
	Ln = LogBase{
		Name: "ln",
		Fn:   math.Log,
		Inv:  math.Exp,
	}
)

// Lookup resolves a base by name. The empty name resolves to Log10.
func Lookup(name string) (LogBase, error) {
	switch name {
	case "", "log10":
		return Log10, nil
	case "log2":
		return Log2, nil
	case "ln", "log":
		return Ln, nil
	default:
		return LogBase{}, fmt.Errorf("unknown logbase: %s", name)
	}
}
