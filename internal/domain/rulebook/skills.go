package rulebook

// Skill is one of the eighteen skills, keyed the way descriptions spell them
type Skill string

const (
	SkillAcrobatics     Skill = "acrobatics"
	SkillAnimalHandling Skill = "animal_handling"
	SkillArcana         Skill = "arcana"
	SkillAthletics      Skill = "athletics"
	SkillDeception      Skill = "deception"
	SkillHistory        Skill = "history"
	SkillInsight        Skill = "insight"
	SkillIntimidation   Skill = "intimidation"
	SkillInvestigation  Skill = "investigation"
	SkillMedicine       Skill = "medicine"
	SkillNature         Skill = "nature"
	SkillPerception     Skill = "perception"
	SkillPerformance    Skill = "performance"
	SkillPersuasion     Skill = "persuasion"
	SkillReligion       Skill = "religion"
	SkillSleightOfHand  Skill = "sleight_of_hand"
	SkillStealth        Skill = "stealth"
	SkillSurvival       Skill = "survival"
)

// Skills lists every skill in sheet order
var Skills = []Skill{
	SkillAcrobatics, SkillAnimalHandling, SkillArcana, SkillAthletics, SkillDeception, SkillHistory,
	SkillInsight, SkillIntimidation, SkillInvestigation, SkillMedicine, SkillNature, SkillPerception,
	SkillPerformance, SkillPersuasion, SkillReligion, SkillSleightOfHand, SkillStealth, SkillSurvival,
}

var skillAbilities = map[Skill]Ability{
	SkillAcrobatics:     AbilityDexterity,
	SkillAnimalHandling: AbilityWisdom,
	SkillArcana:         AbilityIntelligence,
	SkillAthletics:      AbilityStrength,
	SkillDeception:      AbilityCharisma,
	SkillHistory:        AbilityIntelligence,
	SkillInsight:        AbilityWisdom,
	SkillIntimidation:   AbilityCharisma,
	SkillInvestigation:  AbilityIntelligence,
	SkillMedicine:       AbilityWisdom,
	SkillNature:         AbilityIntelligence,
	SkillPerception:     AbilityWisdom,
	SkillPerformance:    AbilityCharisma,
	SkillPersuasion:     AbilityCharisma,
	SkillReligion:       AbilityIntelligence,
	SkillSleightOfHand:  AbilityDexterity,
	SkillStealth:        AbilityDexterity,
	SkillSurvival:       AbilityWisdom,
}

// Ability returns the ability the skill is rolled with
func (s Skill) Ability() Ability {
	return skillAbilities[s]
}

// ParseSkill matches "Sleight of Hand", "sleight_of_hand" and similar spellings
func ParseSkill(s string) (Skill, bool) {
	norm := NormalizeName(s)
	for _, skill := range Skills {
		if NormalizeName(string(skill)) == norm {
			return skill, true
		}
	}
	return "", false
}

// DisplayName is the skill as printed on a sheet
func (s Skill) DisplayName() string {
	name := TitleName(string(s))
	if s == SkillSleightOfHand {
		return "Sleight of Hand"
	}
	return name
}
