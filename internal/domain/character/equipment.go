package character

import (
	"strings"

	"github.com/KirkDiggler/dnd-sheets/internal/dice"
	"github.com/KirkDiggler/dnd-sheets/internal/domain/rulebook"
)

// isEmptyRef covers the ways a description says "nothing equipped"
func isEmptyRef(ref any) bool {
	name := strings.TrimSpace(rulebook.ReferenceName(ref))
	return name == "" || strings.EqualFold(name, "none")
}

// Weapons are the wielded weapons in the order they were added
func (c *Character) Weapons() []*rulebook.Weapon {
	return c.weapons
}

// WieldWeapon resolves ref and adds it to the wielded weapons
func (c *Character) WieldWeapon(ref any) {
	if isEmptyRef(ref) {
		return
	}
	w := rulebook.Resolve(ref, c.lib.Weapons, rulebook.CapabilityWeapon, "Unknown weapon %q. Please add it.", c.addWarning)
	c.weapons = append(c.weapons, w)
}

// Armor is the worn armor, nil when unarmored
func (c *Character) Armor() *rulebook.Armor {
	return c.armor
}

// WearArmor replaces the worn armor; "", "None" and nil leave it unchanged
func (c *Character) WearArmor(ref any) {
	if isEmptyRef(ref) {
		return
	}
	c.armor = rulebook.Resolve(ref, c.lib.Armor, rulebook.CapabilityArmor, "Unknown armor %q. Please add it.", c.addWarning)
}

// Shield is the wielded shield, nil when there is none
func (c *Character) Shield() *rulebook.Shield {
	return c.shield
}

// WieldShield replaces the shield; "", "None" and nil leave it unchanged
func (c *Character) WieldShield(ref any) {
	if isEmptyRef(ref) {
		return
	}
	c.shield = rulebook.Resolve(ref, c.lib.Shields, rulebook.CapabilityShield, "Unknown shield %q. Please add it.", c.addWarning)
}

// MagicItems are sorted by name, one per name
func (c *Character) MagicItems() []*rulebook.MagicItem {
	return c.magicItems.Sorted()
}

func (c *Character) AddMagicItems(refs ...any) {
	for _, ref := range refs {
		c.magicItems.Add(rulebook.Resolve(ref, c.lib.MagicItems, rulebook.CapabilityMagicItem, "Magic Item %q not defined. Please add it.", c.addWarning))
	}
}

// MagicItemsText lists the items for the equipment box, trailing separator included
func (c *Character) MagicItemsText() string {
	items := c.MagicItems()
	if len(items) == 0 {
		return ""
	}
	names := make([]string, len(items))
	for i, item := range items {
		names[i] = item.DisplayName()
	}
	return strings.Join(names, ", ") + ", "
}

// WeaponAttackBonus uses strength for melee, dexterity for ranged and the
// better of the two for finesse weapons, plus proficiency when proficient
func (c *Character) WeaponAttackBonus(w *rulebook.Weapon) int {
	bonus := c.WeaponDamageBonus(w)
	if c.IsProficient(w) {
		bonus += c.ProficiencyBonus()
	}
	return bonus
}

// WeaponDamageBonus is the ability modifier added to damage
func (c *Character) WeaponDamageBonus(w *rulebook.Weapon) int {
	str := c.AbilityModifier(rulebook.AbilityStrength)
	dex := c.AbilityModifier(rulebook.AbilityDexterity)
	switch {
	case w == nil:
		return str
	case w.HasProperty("finesse"):
		return max(str, dex)
	case w.IsRanged():
		return dex
	default:
		return str
	}
}

// WeaponDamage is the weapon's damage dice with the damage bonus applied. It
// reports false for weapons without parseable damage, such as a net.
func (c *Character) WeaponDamage(w *rulebook.Weapon) (*dice.Expression, bool) {
	if w == nil || w.Damage == "" {
		return nil, false
	}
	expr, err := dice.Parse(w.Damage)
	if err != nil {
		return nil, false
	}
	return expr.Plus(c.WeaponDamageBonus(w)), true
}

// ArmorClass uses the ruleset calculator when one is configured. Without it
// only equipment counts: the armor (or 10 + dexterity), the shield and magic
// item bonuses.
func (c *Character) ArmorClass() int {
	if c.acCalculator != nil {
		return c.acCalculator.Calculate(c)
	}
	return c.EquipmentArmorClass()
}

// EquipmentArmorClass is the armor class from worn equipment alone
func (c *Character) EquipmentArmorClass() int {
	dex := c.AbilityModifier(rulebook.AbilityDexterity)
	ac := 10 + dex
	if c.armor != nil {
		ac = c.armor.ArmorClassWith(dex)
	}
	if c.shield != nil {
		ac += c.shield.ArmorBonus
	}
	for _, item := range c.magicItems.Items() {
		ac += item.ACBonus
	}
	return ac
}
