package ai

import "math"

// CurveKind selects a response-curve shape. Curves stay tagged data
// interpreted by Eval rather than an interface hierarchy; the set is closed
// and the evaluator is the only behavior they carry.
type CurveKind uint8

const (
	Linear CurveKind = iota
	Quadratic
	Logistic
	Step
)

func (k CurveKind) String() string {
	switch k {
	case Linear:
		return "Linear"
	case Quadratic:
		return "Quadratic"
	case Logistic:
		return "Logistic"
	case Step:
		return "Step"
	}
	return "Unknown"
}

// ParseCurveKind maps a config string to its CurveKind.
func ParseCurveKind(s string) (CurveKind, bool) {
	switch s {
	case "Linear":
		return Linear, true
	case "Quadratic":
		return Quadratic, true
	case "Logistic":
		return Logistic, true
	case "Step":
		return Step, true
	}
	return Linear, false
}

// Curve shapes a raw input axis value into a desirability in [0,1].
type Curve struct {
	Kind     CurveKind
	Slope    float64
	Offset   float64
	Exponent float64
}

// Eval applies the curve to x. Output is always clamped to [0,1].
func (c Curve) Eval(x float64) float64 {
	var y float64
	switch c.Kind {
	case Linear:
		y = c.Slope*x + c.Offset
	case Quadratic:
		y = c.Slope * math.Pow(math.Abs(x-c.Offset), c.Exponent)
	case Logistic:
		y = 1.0 / (1.0 + math.Exp(-c.Slope*(x-c.Offset)))
	case Step:
		if x > c.Offset {
			y = c.Slope
		}
	}
	return clamp01(y)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
