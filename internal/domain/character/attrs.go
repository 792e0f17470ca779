package character

import (
	"github.com/KirkDiggler/dnd-sheets/internal/domain/rulebook"
	"github.com/KirkDiggler/dnd-sheets/internal/errors"
)

// scalarAttr binds a description key to a plain field
type scalarAttr struct {
	get func(c *Character) any
	set func(c *Character, v any) bool
}

func stringAttr(field func(c *Character) *string) scalarAttr {
	return scalarAttr{
		get: func(c *Character) any { return *field(c) },
		set: func(c *Character, v any) bool {
			*field(c) = toString(v)
			return true
		},
	}
}

func intAttr(field func(c *Character) *int) scalarAttr {
	return scalarAttr{
		get: func(c *Character) any { return *field(c) },
		set: func(c *Character, v any) bool {
			n, ok := toInt(v)
			if ok {
				*field(c) = n
			}
			return ok
		},
	}
}

func boolAttr(field func(c *Character) *bool) scalarAttr {
	return scalarAttr{
		get: func(c *Character) any { return *field(c) },
		set: func(c *Character, v any) bool {
			b, ok := toBool(v)
			if ok {
				*field(c) = b
			}
			return ok
		},
	}
}

var scalarAttrs = map[string]scalarAttr{
	"name":                     stringAttr(func(c *Character) *string { return &c.Name }),
	"player_name":              stringAttr(func(c *Character) *string { return &c.PlayerName }),
	"alignment":                stringAttr(func(c *Character) *string { return &c.Alignment }),
	"languages":                stringAttr(func(c *Character) *string { return &c.Languages }),
	"personality_traits":       stringAttr(func(c *Character) *string { return &c.PersonalityTraits }),
	"ideals":                   stringAttr(func(c *Character) *string { return &c.Ideals }),
	"bonds":                    stringAttr(func(c *Character) *string { return &c.Bonds }),
	"flaws":                    stringAttr(func(c *Character) *string { return &c.Flaws }),
	"features_and_traits":      stringAttr(func(c *Character) *string { return &c.FeaturesAndTraits }),
	"appearance":               stringAttr(func(c *Character) *string { return &c.Appearance }),
	"backstory":                stringAttr(func(c *Character) *string { return &c.Backstory }),
	"equipment":                stringAttr(func(c *Character) *string { return &c.Equipment }),
	"attacks_and_spellcasting": stringAttr(func(c *Character) *string { return &c.AttacksAndSpellcasting }),
	"xp":                       intAttr(func(c *Character) *int { return &c.XP }),
	"cp":                       intAttr(func(c *Character) *int { return &c.CP }),
	"sp":                       intAttr(func(c *Character) *int { return &c.SP }),
	"ep":                       intAttr(func(c *Character) *int { return &c.EP }),
	"gp":                       intAttr(func(c *Character) *int { return &c.GP }),
	"pp":                       intAttr(func(c *Character) *int { return &c.PP }),
	"inspiration":              boolAttr(func(c *Character) *bool { return &c.Inspiration }),
}

// Keys that are read but carry nothing to keep
var ignoredAttrs = map[string]bool{
	"dungeonsheets_version": true,
	"version":               true,
	"sheet_type":            true,
}

// SetAttrs applies a batch of description attributes in key order. Name
// lists are resolved through the library; unknown keys raise a warning and
// are kept in Extra. A value of the wrong type for a known field fails.
func (c *Character) SetAttrs(attrs map[string]any) error {
	for _, key := range sortedKeys(attrs) {
		if err := c.setAttr(key, attrs[key], attrs); err != nil {
			return err
		}
	}
	return nil
}

func (c *Character) setAttr(key string, val any, attrs map[string]any) error {
	if ignoredAttrs[key] {
		return nil
	}
	if ability, ok := abilityKey(key); ok {
		score, ok := toInt(val)
		if !ok {
			return errors.InvalidTypef("%s must be an integer, got %T", key, val).WithMeta("attribute", key)
		}
		c.SetScore(ability, score)
		return nil
	}
	if attr, ok := scalarAttrs[key]; ok {
		if !attr.set(c, val) {
			return errors.InvalidTypef("%s has the wrong type %T", key, val).WithMeta("attribute", key)
		}
		return nil
	}

	switch key {
	case KeyClasses:
		return c.AddClasses(val, attrs[KeyLevels], attrs[KeySubclasses], c.FeatureChoices)
	case KeyLevels, KeySubclasses:
		// consumed together with classes
		if _, ok := attrs[KeyClasses]; !ok {
			c.warnf("%s given without classes; ignored", key)
		}
	case keyLevel:
		n, ok := toInt(val)
		if !ok {
			return errors.InvalidTypef("level must be an integer, got %T", val).WithMeta("attribute", key)
		}
		return c.SetLevel(n)
	case KeyHPMax:
		return c.setMaxHP(val)
	case KeyRace:
		c.SetRace(val)
	case KeyBackground:
		c.SetBackground(val)
	case KeyFeatureChoices:
		c.FeatureChoices = toStrings(val)
		for _, e := range c.ClassList {
			e.FeatureChoices = c.FeatureChoices
		}
	case "weapons":
		for _, ref := range toList(val) {
			c.WieldWeapon(ref)
		}
	case "magic_items":
		c.AddMagicItems(toList(val)...)
	case "weapon_proficiencies":
		c.SetWeaponProficiencies(toList(val))
	case "armor":
		c.WearArmor(val)
	case "shield":
		c.WieldShield(val)
	case "features":
		c.AddCustomFeatures(toList(val)...)
	case "spells":
		c.SetSpells(toList(val))
	case "spells_prepared":
		c.SetSpellsPrepared(toList(val))
	case "feats":
		c.SetFeats(toList(val))
	case "infusions":
		c.SetInfusions(toList(val))
	case "circle":
		c.SetCircle(toString(val))
	case "wild_shapes":
		c.SetWildShapes(toStrings(val))
	case "skill_proficiencies":
		c.SkillProficiencies = c.parseSkills(val)
	case "skill_expertise":
		c.SkillExpertise = c.parseSkills(val)
	case "saving_throw_proficiencies":
		c.SetSavingThrowProficiencies(c.parseAbilities(val))
	case "proficiencies_text":
		c.proficienciesText = toStrings(val)
	default:
		c.warnf("Setting unknown character attribute %s", key)
		c.Extra[key] = val
	}
	return nil
}

// Attr reads back a scalar attribute by its description key. Known numeric
// fields come back as int whatever number type they were given as, so JSON
// input (float64) reads back as the equal int. Unknown keys come back from
// Extra exactly as given.
func (c *Character) Attr(key string) (any, bool) {
	if ability, ok := abilityKey(key); ok {
		return c.Score(ability), true
	}
	if attr, ok := scalarAttrs[key]; ok {
		return attr.get(c), true
	}
	switch key {
	case keyLevel:
		return c.Level(), true
	case KeyHPMax:
		return c.HPMax, true
	}
	val, ok := c.Extra[key]
	return val, ok
}

func abilityKey(key string) (rulebook.Ability, bool) {
	for _, a := range rulebook.Abilities {
		if string(a) == key {
			return a, true
		}
	}
	return rulebook.AbilityNone, false
}

func (c *Character) parseSkills(val any) []rulebook.Skill {
	var out []rulebook.Skill
	for _, name := range toStrings(val) {
		skill, ok := rulebook.ParseSkill(name)
		if !ok {
			c.warnf("Unknown skill %q ignored", name)
			continue
		}
		out = append(out, skill)
	}
	return out
}

func (c *Character) parseAbilities(val any) []rulebook.Ability {
	var out []rulebook.Ability
	for _, name := range toStrings(val) {
		ability, ok := rulebook.ParseAbility(name)
		if !ok {
			c.warnf("Unknown ability %q ignored", name)
			continue
		}
		out = append(out, ability)
	}
	return out
}
