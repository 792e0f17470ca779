package character

// ACCalculator computes armor class under a ruleset's class rules
// (unarmored defense, fighting styles) on top of worn equipment
type ACCalculator interface {
	Calculate(char *Character) int
}
