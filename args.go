package localekit

import "strconv"

// Arg is a formatting argument accepted by GetFormatted. The concrete
// kinds are Gender, Vars, and the values produced by Quantity and
// QuantityFloat. When the same kind appears more than once, the last
// one wins.
type Arg interface {
	applyFormat(*formatState)
}

// formatState accumulates the effect of the arguments on one call.
type formatState struct {
	gender    Gender
	hasQty    bool
	qtySuffix string
	number    string
	vars      map[string]string
}

// Gender selects the "_male" or "_female" message variant.
type Gender int

const (
	Male Gender = iota + 1
	Female
)

func (g Gender) applyFormat(s *formatState) {
	s.gender = g
}

// Vars supplies values for $name placeholders in the message.
type Vars map[string]string

func (v Vars) applyFormat(s *formatState) {
	s.vars = v
}

type quantityArg struct {
	suffix string
	number string
}

func (q quantityArg) applyFormat(s *formatState) {
	s.hasQty = true
	s.qtySuffix = q.suffix
	s.number = q.number
}

// Quantity selects the "_empty" (0), "_one" (1) or "_multiple" message
// variant and injects the count as the $number variable.
func Quantity(n int64) Arg {
	return quantityArg{
		suffix: quantitySuffix(n == 0, n == 1),
		number: strconv.FormatInt(n, 10),
	}
}

// QuantityFloat is Quantity for fractional amounts; only exactly 0 and
// exactly 1 select the empty and singular variants.
func QuantityFloat(f float64) Arg {
	return quantityArg{
		suffix: quantitySuffix(f == 0, f == 1),
		number: strconv.FormatFloat(f, 'f', -1, 64),
	}
}

func quantitySuffix(empty, one bool) string {
	switch {
	case empty:
		return "_empty"
	case one:
		return "_one"
	default:
		return "_multiple"
	}
}
