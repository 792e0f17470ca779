package rulebook

import "strings"

// Ability is one of the six ability scores
type Ability string

var Abilities = []Ability{AbilityStrength, AbilityDexterity, AbilityConstitution, AbilityIntelligence, AbilityWisdom, AbilityCharisma}

const (
	AbilityNone         Ability = ""
	AbilityStrength     Ability = "strength"
	AbilityDexterity    Ability = "dexterity"
	AbilityConstitution Ability = "constitution"
	AbilityIntelligence Ability = "intelligence"
	AbilityWisdom       Ability = "wisdom"
	AbilityCharisma     Ability = "charisma"
)

// Short returns the three letter abbreviation, "Str" for strength
func (a Ability) Short() string {
	if len(a) < 3 {
		return string(a)
	}
	return strings.ToUpper(string(a[:1])) + string(a[1:3])
}

// ParseAbility accepts the full name or the abbreviation in any case
func ParseAbility(s string) (Ability, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, a := range Abilities {
		if s == string(a) || s == string(a[:3]) {
			return a, true
		}
	}
	return AbilityNone, false
}

// Modifier is floor((score - 10) / 2)
func Modifier(score int) int {
	diff := score - 10
	if diff < 0 {
		return (diff - 1) / 2
	}
	return diff / 2
}
