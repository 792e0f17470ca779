package rulebook

import "fmt"

// Spell is a cantrip (level 0) or leveled spell
type Spell struct {
	Mechanic

	Level         int      `json:"level"`
	School        string   `json:"school,omitempty"`
	CastingTime   string   `json:"casting_time,omitempty"`
	Range         string   `json:"range,omitempty"`
	Duration      string   `json:"duration,omitempty"`
	Components    []string `json:"components,omitempty"`
	Materials     string   `json:"materials,omitempty"`
	Ritual        bool     `json:"ritual,omitempty"`
	Concentration bool     `json:"concentration,omitempty"`
	Classes       []string `json:"classes,omitempty"`
}

// IsCantrip reports whether the spell is level 0
func (s *Spell) IsCantrip() bool {
	return s.Level == 0
}

// LevelText is "Cantrip" or the ordinal level, "3rd-level"
func (s *Spell) LevelText() string {
	if s.IsCantrip() {
		return "Cantrip"
	}
	return fmt.Sprintf("%s-level", Ordinal(s.Level))
}

// Ordinal renders 1 as "1st", 2 as "2nd" and so on
func Ordinal(n int) string {
	suffix := "th"
	switch {
	case n%100 >= 11 && n%100 <= 13:
	case n%10 == 1:
		suffix = "st"
	case n%10 == 2:
		suffix = "nd"
	case n%10 == 3:
		suffix = "rd"
	}
	return fmt.Sprintf("%d%s", n, suffix)
}
