package formula

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrDice is returned when a formula needs a dice roll to produce a value
var ErrDice = errors.New("formula contains dice")

// Evaluate computes a dice-free formula. Variables are looked up without their
// leading "@", so "@cl" reads vars["cl"].
func Evaluate(src string, vars map[string]float64) (float64, error) {
	root, err := Parse(src)
	if err != nil {
		return 0, err
	}
	return eval(root, vars)
}

func eval(n Node, vars map[string]float64) (float64, error) {
	switch n := n.(type) {
	case *Number:
		return strconv.ParseFloat(n.Text, 64)
	case *Var:
		v, ok := vars[strings.TrimPrefix(n.Name, "@")]
		if !ok {
			return 0, fmt.Errorf("unknown variable %s", n.Name)
		}
		return v, nil
	case *Group:
		return eval(n.Inner, vars)
	case *Flavored:
		return eval(n.X, vars)
	case *Dice:
		return 0, ErrDice
	case *Unary:
		x, err := eval(n.X, vars)
		if err != nil {
			return 0, err
		}
		if n.Op == "-" {
			return -x, nil
		}
		return x, nil
	case *Binary:
		x, err := eval(n.X, vars)
		if err != nil {
			return 0, err
		}
		y, err := eval(n.Y, vars)
		if err != nil {
			return 0, err
		}
		switch n.Op {
		case "+":
			return x + y, nil
		case "-":
			return x - y, nil
		case "*":
			return x * y, nil
		case "/":
			if y == 0 {
				return 0, fmt.Errorf("division by zero")
			}
			return x / y, nil
		case "%":
			if y == 0 {
				return 0, fmt.Errorf("modulo by zero")
			}
			return math.Mod(x, y), nil
		case "**":
			return math.Pow(x, y), nil
		}
		return 0, fmt.Errorf("unsupported operator %s", n.Op)
	case *Call:
		return evalCall(n, vars)
	}
	return 0, fmt.Errorf("unsupported expression %T", n)
}

func evalCall(c *Call, vars map[string]float64) (float64, error) {
	args := make([]float64, len(c.Args))
	for i, a := range c.Args {
		v, err := eval(a, vars)
		if err != nil {
			return 0, err
		}
		args[i] = v
	}

	name := strings.ToLower(c.Name)
	unary := map[string]func(float64) float64{
		"floor": math.Floor,
		"ceil":  math.Ceil,
		"round": math.Round,
		"abs":   math.Abs,
	}
	if fn, ok := unary[name]; ok {
		if len(args) != 1 {
			return 0, fmt.Errorf("%s takes 1 argument, got %d", name, len(args))
		}
		return fn(args[0]), nil
	}

	switch name {
	case "min", "max":
		if len(args) == 0 {
			return 0, fmt.Errorf("%s needs at least 1 argument", name)
		}
		out := args[0]
		for _, v := range args[1:] {
			if name == "min" {
				out = math.Min(out, v)
			} else {
				out = math.Max(out, v)
			}
		}
		return out, nil
	case "clamp":
		if len(args) != 3 {
			return 0, fmt.Errorf("clamp takes 3 arguments, got %d", len(args))
		}
		return math.Min(math.Max(args[0], args[1]), args[2]), nil
	}
	return 0, fmt.Errorf("unknown function %s", c.Name)
}
