package character

import "github.com/KirkDiggler/dnd-sheets/internal/domain/rulebook"

const defaultScore = 10

// Score returns an ability score; unset abilities are 10
func (c *Character) Score(ability rulebook.Ability) int {
	if score, ok := c.scores[ability]; ok {
		return score
	}
	return defaultScore
}

func (c *Character) SetScore(ability rulebook.Ability, score int) {
	c.scores[ability] = score
}

func (c *Character) AbilityModifier(ability rulebook.Ability) int {
	return rulebook.Modifier(c.Score(ability))
}

// SavingThrowProficiencies are the explicit override when set, otherwise the
// primary class's. Saves from later classes never apply.
func (c *Character) SavingThrowProficiencies() []rulebook.Ability {
	if len(c.savingThrows) > 0 {
		return c.savingThrows
	}
	if p := c.PrimaryClass(); p != nil {
		return p.SavingThrowProficiencies()
	}
	return nil
}

// SetSavingThrowProficiencies overrides the primary class's saving throws
func (c *Character) SetSavingThrowProficiencies(abilities []rulebook.Ability) {
	c.savingThrows = abilities
}

func (c *Character) IsProficientSave(ability rulebook.Ability) bool {
	for _, a := range c.SavingThrowProficiencies() {
		if a == ability {
			return true
		}
	}
	return false
}

// SavingThrow is the modifier of an ability save including proficiency and magic items
func (c *Character) SavingThrow(ability rulebook.Ability) int {
	mod := c.AbilityModifier(ability)
	if c.IsProficientSave(ability) {
		mod += c.ProficiencyBonus()
	}
	for _, item := range c.magicItems.Items() {
		mod += item.SaveBonus
	}
	return mod
}

// HasSkillProficiency checks the declared skills only; race and background
// skills are suggestions the description is expected to list
func (c *Character) HasSkillProficiency(skill rulebook.Skill) bool {
	return containsSkill(c.SkillProficiencies, skill)
}

func (c *Character) HasExpertise(skill rulebook.Skill) bool {
	return containsSkill(c.SkillExpertise, skill)
}

// SkillModifier is the ability modifier plus proficiency, doubled by expertise
func (c *Character) SkillModifier(skill rulebook.Skill) int {
	mod := c.AbilityModifier(skill.Ability())
	switch {
	case c.HasExpertise(skill):
		mod += 2 * c.ProficiencyBonus()
	case c.HasSkillProficiency(skill):
		mod += c.ProficiencyBonus()
	}
	return mod
}

// PassivePerception is 10 plus the perception modifier and any feat bonus
func (c *Character) PassivePerception() int {
	return 10 + c.SkillModifier(rulebook.SkillPerception) + c.featBonus(func(f *rulebook.Feat) int { return f.PassiveBonus })
}

// Initiative is the dexterity modifier plus feats like Alert
func (c *Character) Initiative() int {
	return c.AbilityModifier(rulebook.AbilityDexterity) + c.featBonus(func(f *rulebook.Feat) int { return f.InitiativeBonus })
}

// Speed comes from the race; Mobile adds to it
func (c *Character) Speed() int {
	return c.race.Speed + c.featBonus(func(f *rulebook.Feat) int { return f.SpeedBonus })
}

func containsSkill(skills []rulebook.Skill, skill rulebook.Skill) bool {
	for _, s := range skills {
		if s == skill {
			return true
		}
	}
	return false
}
