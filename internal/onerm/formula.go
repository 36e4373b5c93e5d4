package onerm

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

type Formula string

const (
	Epley    Formula = "epley"
	Brzycki  Formula = "brzycki"
	Lombardi Formula = "lombardi"
	OConner  Formula = "oconner"
)

// DefaultFormula is used whenever a caller does not pick one.
const DefaultFormula = Epley

var ErrUnknownFormula = errors.New("unknown 1RM formula")

type FormulaInfo struct {
	ID          Formula `json:"id"`
	Name        string  `json:"name"`
	Expression  string  `json:"formula"`
	Description string  `json:"description"`

	estimate func(weight float64, reps int) float64
}

var formulaOrder = []Formula{Epley, Brzycki, Lombardi, OConner}

var formulas = map[Formula]FormulaInfo{
	Epley: {
		ID:          Epley,
		Name:        "Epley",
		Expression:  "1RM = weight × (1 + reps ÷ 30)",
		Description: "Most widely used; suits medium to high rep ranges.",
		estimate: func(weight float64, reps int) float64 {
			return weight * (1 + float64(reps)/30)
		},
	},
	Brzycki: {
		ID:          Brzycki,
		Name:        "Brzycki",
		Expression:  "1RM = weight × (36 ÷ (37 - reps))",
		Description: "Considered most accurate for low reps (10 or fewer).",
		estimate: func(weight float64, reps int) float64 {
			if reps >= 37 {
				return weight
			}
			return weight * 36 / float64(37-reps)
		},
	},
	Lombardi: {
		ID:          Lombardi,
		Name:        "Lombardi",
		Expression:  "1RM = weight × reps^0.10",
		Description: "Simple power curve, stable across a wide rep range.",
		estimate: func(weight float64, reps int) float64 {
			return weight * math.Pow(float64(reps), 0.10)
		},
	},
	OConner: {
		ID:          OConner,
		Name:        "O'Conner",
		Expression:  "1RM = weight × (1 + reps ÷ 40)",
		Description: "Conservative variation of Epley.",
		estimate: func(weight float64, reps int) float64 {
			return weight * (1 + float64(reps)/40)
		},
	},
}

// Formulas lists every supported formula in display order.
func Formulas() []FormulaInfo {
	list := make([]FormulaInfo, 0, len(formulaOrder))
	for _, id := range formulaOrder {
		list = append(list, formulas[id])
	}
	return list
}

// Lookup returns the formula info, falling back to the default formula for unknown ids.
func Lookup(f Formula) FormulaInfo {
	if info, ok := formulas[f]; ok {
		return info
	}
	return formulas[DefaultFormula]
}

// ParseFormula validates a formula id; an empty string selects the default.
func ParseFormula(s string) (Formula, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return DefaultFormula, nil
	}
	f := Formula(s)
	if _, ok := formulas[f]; !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownFormula, s)
	}
	return f, nil
}
