package expr

import (
	"fmt"
	"math"
	"strconv"
)

// Node is a parsed expression in the single variable t.
type Node interface {
	Eval(t float64) float64
	String() string
}

type Number float64

func (n Number) Eval(float64) float64 { return float64(n) }

func (n Number) String() string {
	return strconv.FormatFloat(float64(n), 'g', -1, 64)
}

// Var is the time variable t.
type Var struct{}

func (Var) Eval(t float64) float64 { return t }

func (Var) String() string { return "t" }

type Neg struct {
	X Node
}

func (n Neg) Eval(t float64) float64 { return -n.X.Eval(t) }

func (n Neg) String() string { return "(-" + n.X.String() + ")" }

type Binary struct {
	Op   byte
	L, R Node
}

func (b Binary) Eval(t float64) float64 {
	l, r := b.L.Eval(t), b.R.Eval(t)
	switch b.Op {
	case '+':
		return l + r
	case '-':
		return l - r
	case '*':
		return l * r
	case '/':
		return l / r
	case '^':
		return math.Pow(l, r)
	}
	return math.NaN()
}

func (b Binary) String() string {
	return fmt.Sprintf("(%s %c %s)", b.L, b.Op, b.R)
}

// Call applies one of the built-in functions.
type Call struct {
	Func string
	Arg  Node
}

var functions = map[string]func(float64) float64{
	"sin": math.Sin,
	"cos": math.Cos,
}

var constants = map[string]float64{
	"pi": math.Pi,
	"e":  math.E,
}

func (c Call) Eval(t float64) float64 {
	return functions[c.Func](c.Arg.Eval(t))
}

func (c Call) String() string {
	return c.Func + "(" + c.Arg.String() + ")"
}

// Sample evaluates n at every t in ts.
func Sample(n Node, ts []float64) []float64 {
	out := make([]float64, len(ts))
	for i, t := range ts {
		out[i] = n.Eval(t)
	}
	return out
}
