package formula

import (
	"slices"
	"strconv"
	"strings"
)

// LevelVariables are the roll data references treated as caster level by Intensify
var LevelVariables = []string{"@cl", "@level", "@casterLevel"}

// intensifyStep is how far Intensified Spell raises a damage cap
const intensifyStep = 5

// Result is the outcome of a rewrite
type Result struct {
	Formula string
	Changed bool
}

func unchanged(src string) Result {
	return Result{Formula: src, Changed: false}
}

// Maximize turns every dice term into its maximum: "2d6" becomes "(2 * 6)".
// Formulas without dice, or that do not parse, come back unchanged.
func Maximize(src string) Result {
	root, err := Parse(src)
	if err != nil {
		return unchanged(src)
	}

	found := false
	Walk(root, func(n Node) {
		if _, ok := n.(*Dice); ok {
			found = true
		}
	})
	if !found {
		return unchanged(src)
	}

	out := render(src, root, func(n Node, rec func(Node) string) (string, bool) {
		d, ok := n.(*Dice)
		if !ok {
			return "", false
		}
		return "(" + rec(d.Count) + " * " + rec(d.Faces) + ")", true
	})
	return Result{Formula: out, Changed: out != src}
}

// Empower wraps the whole formula so it yields half again as much
func Empower(src string) Result {
	if strings.TrimSpace(src) == "" {
		return unchanged(src)
	}
	return Result{Formula: "floor((" + src + ") * 1.5)", Changed: true}
}

// ceiling names which caster level expression a cap idiom limits
type ceiling int

const (
	ceilingHalfLevel ceiling = iota
	ceilingLevel
	ceilingDoubleLevel
)

func (c ceiling) value(level int) int {
	switch c {
	case ceilingHalfLevel:
		return level / 2
	case ceilingDoubleLevel:
		return level * 2
	default:
		return level
	}
}

// Intensify raises the cap of each recognized dice-count idiom by five, never past
// what the caster level would allow without a cap. Recognized count shapes:
//
//	clamp(floor(@cl/2), min, CAP)
//	min(CAP, floor(@cl/2))   min(floor(@cl/2), CAP)
//	min(CAP, @cl)            min(@cl, CAP)
//	min(CAP, @cl*2)
func Intensify(src string, casterLevel int) Result {
	if casterLevel <= 0 {
		return unchanged(src)
	}
	root, err := Parse(src)
	if err != nil {
		return unchanged(src)
	}

	raised := map[Node]string{}
	Walk(root, func(n Node) {
		d, ok := n.(*Dice)
		if !ok {
			return
		}
		capNode, kind, ok := capIdiom(d.Count)
		if !ok {
			return
		}
		current, err := strconv.Atoi(capNode.Text)
		if err != nil {
			return
		}
		limit := kind.value(casterLevel)
		if current >= limit {
			return
		}
		raised[capNode] = strconv.Itoa(min(limit, current+intensifyStep))
	})
	if len(raised) == 0 {
		return unchanged(src)
	}

	out := render(src, root, func(n Node, _ func(Node) string) (string, bool) {
		s, ok := raised[n]
		return s, ok
	})
	return Result{Formula: out, Changed: out != src}
}

// capIdiom matches a dice count against the supported cap idioms
func capIdiom(n Node) (*Number, ceiling, bool) {
	call, ok := unwrap(n).(*Call)
	if !ok {
		return nil, 0, false
	}

	switch strings.ToLower(call.Name) {
	case "clamp":
		if len(call.Args) != 3 || !isHalfLevel(call.Args[0]) {
			return nil, 0, false
		}
		if c, ok := intLiteral(call.Args[2]); ok {
			return c, ceilingHalfLevel, true
		}
	case "min":
		if len(call.Args) != 2 {
			return nil, 0, false
		}
		if c, ok := intLiteral(call.Args[0]); ok {
			other := call.Args[1]
			switch {
			case isHalfLevel(other):
				return c, ceilingHalfLevel, true
			case isLevel(other):
				return c, ceilingLevel, true
			case isDoubleLevel(other):
				return c, ceilingDoubleLevel, true
			}
			return nil, 0, false
		}
		if c, ok := intLiteral(call.Args[1]); ok {
			other := call.Args[0]
			switch {
			case isHalfLevel(other):
				return c, ceilingHalfLevel, true
			case isLevel(other):
				return c, ceilingLevel, true
			}
		}
	}
	return nil, 0, false
}

func unwrap(n Node) Node {
	for {
		g, ok := n.(*Group)
		if !ok {
			return n
		}
		n = g.Inner
	}
}

func intLiteral(n Node) (*Number, bool) {
	num, ok := unwrap(n).(*Number)
	if !ok || strings.Contains(num.Text, ".") {
		return nil, false
	}
	return num, true
}

func isLevel(n Node) bool {
	v, ok := unwrap(n).(*Var)
	return ok && slices.Contains(LevelVariables, v.Name)
}

func isLiteral(n Node, text string) bool {
	num, ok := unwrap(n).(*Number)
	return ok && num.Text == text
}

// isHalfLevel matches floor(@cl/2)
func isHalfLevel(n Node) bool {
	call, ok := unwrap(n).(*Call)
	if !ok || strings.ToLower(call.Name) != "floor" || len(call.Args) != 1 {
		return false
	}
	div, ok := unwrap(call.Args[0]).(*Binary)
	return ok && div.Op == "/" && isLevel(div.X) && isLiteral(div.Y, "2")
}

// isDoubleLevel matches @cl*2
func isDoubleLevel(n Node) bool {
	mul, ok := unwrap(n).(*Binary)
	return ok && mul.Op == "*" && isLevel(mul.X) && isLiteral(mul.Y, "2")
}
