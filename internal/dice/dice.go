package dice

import (
	"fmt"
	"strconv"
	"strings"

	dnderr "github.com/KirkDiggler/dnd-sheets/internal/errors"
)

// Expression is a dice formula such as "2d6+3"
type Expression struct {
	Count int
	Sides int
	Bonus int
}

// Parse reads "NdS", "NdS+B" or "NdS-B"; a bare number is a flat value
func Parse(s string) (*Expression, error) {
	raw := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), " ", "")
	if raw == "" {
		return nil, dnderr.InvalidArgument("empty dice string")
	}

	dice, bonus := raw, 0
	if i := strings.LastIndexAny(raw, "+-"); i > 0 {
		b, err := strconv.Atoi(raw[i:])
		if err != nil {
			return nil, dnderr.InvalidArgumentf("invalid dice string %q", s)
		}
		dice, bonus = raw[:i], b
	}

	if !strings.Contains(dice, "d") {
		flat, err := strconv.Atoi(dice)
		if err != nil {
			return nil, dnderr.InvalidArgumentf("invalid dice string %q", s)
		}
		return &Expression{Bonus: flat + bonus}, nil
	}

	parts := strings.Split(dice, "d")
	if len(parts) != 2 {
		return nil, dnderr.InvalidArgumentf("invalid dice string %q", s)
	}

	count := 1
	if parts[0] != "" {
		c, err := strconv.Atoi(parts[0])
		if err != nil {
			return nil, dnderr.InvalidArgumentf("invalid dice count in %q", s)
		}
		count = c
	}
	sides, err := strconv.Atoi(parts[1])
	if err != nil {
		return nil, dnderr.InvalidArgumentf("invalid dice size in %q", s)
	}
	if count < 1 || sides < 1 {
		return nil, dnderr.InvalidArgumentf("dice count and size must be positive in %q", s)
	}

	return &Expression{Count: count, Sides: sides, Bonus: bonus}, nil
}

// Plus returns a copy with n added to the bonus
func (e *Expression) Plus(n int) *Expression {
	return &Expression{Count: e.Count, Sides: e.Sides, Bonus: e.Bonus + n}
}

// Average is the expected total rounded down, the way stat blocks print it
func (e *Expression) Average() int {
	return e.Count*(e.Sides+1)/2 + e.Bonus
}

// Max is the highest possible total
func (e *Expression) Max() int {
	return e.Count*e.Sides + e.Bonus
}

func (e *Expression) String() string {
	if e.Count == 0 {
		return strconv.Itoa(e.Bonus)
	}
	s := fmt.Sprintf("%dd%d", e.Count, e.Sides)
	if e.Bonus != 0 {
		s += fmt.Sprintf("%+d", e.Bonus)
	}
	return s
}

// Roll rolls the expression with r
func (e *Expression) Roll(r Roller) (*RollResult, error) {
	if e.Count == 0 {
		return &RollResult{Total: e.Bonus, Bonus: e.Bonus}, nil
	}

	rolls, err := r.Roll(e.Count, e.Sides)
	if err != nil {
		return nil, err
	}

	total := e.Bonus
	for _, v := range rolls {
		total += v
	}

	return &RollResult{Total: total, Rolls: rolls, Bonus: e.Bonus}, nil
}

type RollResult struct {
	Total int
	Rolls []int
	Bonus int
}

func (r *RollResult) String() string {
	rolls := make([]string, len(r.Rolls))
	for i, v := range r.Rolls {
		rolls[i] = strconv.Itoa(v)
	}
	return fmt.Sprintf("**%d** : [%s]", r.Total, strings.Join(rolls, ","))
}
