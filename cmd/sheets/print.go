package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/KirkDiggler/dnd-sheets/internal/domain/character"
	"github.com/KirkDiggler/dnd-sheets/internal/domain/rulebook"
)

// printSheet writes a plain text sheet
func printSheet(out io.Writer, c *character.Character) error {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)

	name := c.Name
	if name == "" {
		name = "Unnamed"
	}
	fmt.Fprintf(w, "%s\n", name)
	fmt.Fprintf(w, "Class\t%s\n", c.ClassesAndLevels())
	if race := c.Race(); race != nil && race.Name != "" {
		fmt.Fprintf(w, "Race\t%s\n", race.DisplayName())
	}
	if bg := c.Background(); bg != nil && bg.Name != "" {
		fmt.Fprintf(w, "Background\t%s\n", bg.DisplayName())
	}
	fmt.Fprintf(w, "HP\t%d\n", c.HPMax)
	fmt.Fprintf(w, "AC\t%d\n", c.ArmorClass())
	fmt.Fprintf(w, "Initiative\t%+d\n", c.Initiative())
	fmt.Fprintf(w, "Speed\t%d\n", c.Speed())
	fmt.Fprintf(w, "Proficiency\t%+d\n", c.ProficiencyBonus())
	fmt.Fprintf(w, "Hit Dice\t%s\n", c.HitDice())

	fmt.Fprintln(w)
	for _, ability := range rulebook.Abilities {
		save := ""
		if c.IsProficientSave(ability) {
			save = "*"
		}
		fmt.Fprintf(w, "%s\t%d\t%+d\tsave %+d%s\n",
			ability.Short(), c.Score(ability), c.AbilityModifier(ability), c.SavingThrow(ability), save)
	}

	if weapons := c.Weapons(); len(weapons) > 0 {
		fmt.Fprintln(w)
		for _, weapon := range weapons {
			damage := "-"
			if expr, ok := c.WeaponDamage(weapon); ok {
				damage = fmt.Sprintf("%s (avg %d) %s", expr, expr.Average(), weapon.DamageType)
			}
			fmt.Fprintf(w, "%s\t%+d\t%s\n", weapon.DisplayName(), c.WeaponAttackBonus(weapon), strings.TrimSpace(damage))
		}
	}

	if c.IsSpellcaster() {
		var slots []string
		for level := 1; level <= 9; level++ {
			if n := c.SpellSlots(level); n > 0 {
				slots = append(slots, fmt.Sprintf("%s:%d", rulebook.Ordinal(level), n))
			}
		}
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Cantrips\t%d\n", c.SpellSlots(0))
		fmt.Fprintf(w, "Slots\t%s\n", strings.Join(slots, " "))
		if spells := c.Spells(); len(spells) > 0 {
			names := make([]string, len(spells))
			for i, s := range spells {
				names[i] = s.DisplayName()
			}
			fmt.Fprintf(w, "Spells\t%s\n", strings.Join(names, ", "))
		}
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "Proficiencies\t%s\n", c.ProficienciesText())
	if feats := c.FeatsText(); len(feats) > 0 {
		fmt.Fprintf(w, "Feats\t%s\n", strings.Join(feats, ", "))
	}
	fmt.Fprintln(w, c.FeaturesText())

	for _, warning := range c.Warnings {
		fmt.Fprintf(w, "WARNING\t%s\n", warning)
	}

	return w.Flush()
}

// printCounts writes the entry count of every catalog in lib
func printCounts(out io.Writer, lib *rulebook.Library) error {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	rows := []struct {
		name  string
		count int
	}{
		{"classes", lib.Classes.Len()},
		{"races", lib.Races.Len()},
		{"backgrounds", lib.Backgrounds.Len()},
		{"features", lib.Features.Len()},
		{"spells", lib.Spells.Len()},
		{"weapons", lib.Weapons.Len()},
		{"armor", lib.Armor.Len()},
		{"shields", lib.Shields.Len()},
		{"magic items", lib.MagicItems.Len()},
		{"infusions", lib.Infusions.Len()},
		{"feats", lib.Feats.Len()},
	}
	for _, r := range rows {
		fmt.Fprintf(w, "%s\t%d\n", r.name, r.count)
	}
	return w.Flush()
}
