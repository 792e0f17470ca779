package sheet

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/KirkDiggler/dnd-sheets/internal/domain/character"
	"github.com/KirkDiggler/dnd-sheets/internal/domain/rulebook"
	sheetDomain "github.com/KirkDiggler/dnd-sheets/internal/domain/sheet"
)

// Page selects which embed a sheet message shows
type Page string

const (
	PageMain     Page = "main"
	PageSpells   Page = "spells"
	PageFeatures Page = "features"
)

const (
	// Discord rejects embed field values longer than this
	maxFieldLength = 1024
	colorSheet     = 0x3498db
	colorSpells    = 0x9b59b6
	colorFeatures  = 0x2ecc71
)

var title = cases.Title(language.English)

// BuildEmbed renders the requested page of a stored sheet
func BuildEmbed(sh *sheetDomain.Sheet, char *character.Character, page Page) *discordgo.MessageEmbed {
	var embed *discordgo.MessageEmbed
	switch page {
	case PageSpells:
		embed = BuildSpellsEmbed(char)
	case PageFeatures:
		embed = BuildFeaturesEmbed(char)
	default:
		embed = BuildSheetEmbed(char)
	}

	if sh != nil {
		embed.Footer = &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("Sheet ID: %s", sh.ID),
		}
	}

	return embed
}

// BuildSheetEmbed creates the main character sheet embed
func BuildSheetEmbed(char *character.Character) *discordgo.MessageEmbed {
	header := fmt.Sprintf("**HP:** %d | **AC:** %d | **Initiative:** %+d | **Speed:** %d ft",
		char.HPMax, char.ArmorClass(), char.Initiative(), char.Speed())
	header += fmt.Sprintf("\n**Proficiency:** %+d | **Hit Dice:** %s | **Passive Perception:** %d",
		char.ProficiencyBonus(), char.HitDice(), char.PassivePerception())

	fields := []*discordgo.MessageEmbedField{
		{
			Name:   "📊 Ability Scores",
			Value:  strings.Join(abilityLines(char), "\n"),
			Inline: true,
		},
		{
			Name:   "🛡️ Saving Throws",
			Value:  strings.Join(savingThrowLines(char), "\n"),
			Inline: true,
		},
		{
			Name:   "⚔️ Equipment",
			Value:  truncate(strings.Join(equipmentLines(char), "\n")),
			Inline: false,
		},
		{
			Name:   "🎯 Skills",
			Value:  truncate(strings.Join(skillLines(char), "\n")),
			Inline: false,
		},
		{
			Name:   "📚 Proficiencies",
			Value:  truncate(char.ProficienciesText()),
			Inline: false,
		},
	}

	if char.IsSpellcaster() {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:   "🔮 Spell Slots",
			Value:  spellSlotLine(char),
			Inline: false,
		})
	}

	return &discordgo.MessageEmbed{
		Title:       Heading(char),
		Description: header,
		Color:       colorSheet,
		Fields:      fields,
	}
}

// Heading is "Name - Hill Dwarf Fighter 3 / Wizard 2"
func Heading(char *character.Character) string {
	name := char.Name
	if name == "" {
		name = sheetDomain.UnnamedSheet
	}

	classes := char.ClassesAndLevels()
	if race := char.Race(); race != nil && race.Name != "" {
		classes = strings.TrimSpace(race.DisplayName() + " " + classes)
	}
	if classes == "" {
		return name
	}

	return fmt.Sprintf("%s - %s", name, classes)
}

// BuildSpellsEmbed lists known spells grouped by level, marking prepared ones
func BuildSpellsEmbed(char *character.Character) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title: fmt.Sprintf("%s - Spells", Heading(char)),
		Color: colorSpells,
	}

	var casting []string
	for _, entry := range char.SpellcastingClasses() {
		casting = append(casting, fmt.Sprintf("**%s:** save DC %d, attack %+d",
			entry.Name(), char.SpellSaveDC(entry), char.SpellAttackBonus(entry)))
	}
	if len(casting) > 0 {
		embed.Description = strings.Join(casting, "\n")
	}

	byLevel := map[int][]string{}
	for _, spell := range char.Spells() {
		line := spell.DisplayName()
		if char.IsPrepared(spell.Name) {
			line = "✅ " + line
		}
		if spell.School != "" {
			line += fmt.Sprintf(" *(%s)*", title.String(spell.School))
		}
		byLevel[spell.Level] = append(byLevel[spell.Level], line)
	}

	for level := 0; level <= 9; level++ {
		lines, ok := byLevel[level]
		if !ok {
			continue
		}
		name := "Cantrips"
		if level > 0 {
			name = fmt.Sprintf("%s Level", rulebook.Ordinal(level))
			if slots := char.SpellSlots(level); slots > 0 {
				name += fmt.Sprintf(" (%d slots)", slots)
			}
		}
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  name,
			Value: truncate(strings.Join(lines, "\n")),
		})
	}

	if len(embed.Fields) == 0 {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  "Spells",
			Value: "*No spells*",
		})
	}

	return embed
}

// BuildFeaturesEmbed lists features, magic items and any build warnings
func BuildFeaturesEmbed(char *character.Character) *discordgo.MessageEmbed {
	features := make([]string, 0)
	for _, f := range char.Features() {
		features = append(features, "• "+f.DisplayName())
	}
	if len(features) == 0 {
		features = append(features, "*No features*")
	}

	fields := []*discordgo.MessageEmbedField{
		{
			Name:  "✨ Features",
			Value: truncate(strings.Join(features, "\n")),
		},
	}

	if feats := char.FeatsText(); len(feats) > 0 {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:  "🎖️ Feats",
			Value: truncate(strings.Join(feats, ", ")),
		})
	}

	if items := char.MagicItemsText(); items != "" {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:  "💍 Magic Items",
			Value: truncate(strings.TrimSuffix(items, ", ")),
		})
	}

	if infusions := char.InfusionsText(); len(infusions) > 0 {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:  "🔧 Infusions",
			Value: truncate(strings.Join(infusions, ", ")),
		})
	}

	if shapes := char.WildShapes(); len(shapes) > 0 {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:  "🐺 Wild Shapes",
			Value: truncate(strings.Join(shapes, ", ")),
		})
	}

	if len(char.Warnings) > 0 {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:  "⚠️ Warnings",
			Value: truncate(strings.Join(char.Warnings, "\n")),
		})
	}

	return &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("%s - Features", Heading(char)),
		Description: "Entries marked ** are not in the rulebook.",
		Color:       colorFeatures,
		Fields:      fields,
	}
}

// BuildSheetComponents creates the page buttons under a sheet
func BuildSheetComponents(sheetID string, current Page) []discordgo.MessageComponent {
	button := func(label string, page Page, emoji string) discordgo.Button {
		style := discordgo.SecondaryButton
		if page == current {
			style = discordgo.PrimaryButton
		}
		return discordgo.Button{
			Label:    label,
			Style:    style,
			CustomID: ComponentID(sheetID, page),
			Emoji:    &discordgo.ComponentEmoji{Name: emoji},
			Disabled: page == current,
		}
	}

	return []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				button("Sheet", PageMain, "📜"),
				button("Spells", PageSpells, "🔮"),
				button("Features", PageFeatures, "✨"),
			},
		},
	}
}

// ComponentID is the custom ID of a page button, "sheet:page:<id>:<page>"
func ComponentID(sheetID string, page Page) string {
	return fmt.Sprintf("sheet:page:%s:%s", sheetID, page)
}

// ParseComponentID reverses ComponentID
func ParseComponentID(customID string) (sheetID string, page Page, ok bool) {
	parts := strings.Split(customID, ":")
	if len(parts) != 4 || parts[0] != "sheet" || parts[1] != "page" || parts[2] == "" {
		return "", "", false
	}

	switch Page(parts[3]) {
	case PageMain, PageSpells, PageFeatures:
		return parts[2], Page(parts[3]), true
	}

	return "", "", false
}

func abilityLines(char *character.Character) []string {
	lines := make([]string, 0, len(rulebook.Abilities))
	for _, ability := range rulebook.Abilities {
		lines = append(lines, fmt.Sprintf("**%s:** %d (%+d)",
			strings.ToUpper(ability.Short()), char.Score(ability), char.AbilityModifier(ability)))
	}
	return lines
}

func savingThrowLines(char *character.Character) []string {
	lines := make([]string, 0, len(rulebook.Abilities))
	for _, ability := range rulebook.Abilities {
		marker := "○"
		if char.IsProficientSave(ability) {
			marker = "●"
		}
		lines = append(lines, fmt.Sprintf("%s %s %+d", marker, ability.Short(), char.SavingThrow(ability)))
	}
	return lines
}

func skillLines(char *character.Character) []string {
	var lines []string
	for _, skill := range rulebook.Skills {
		if !char.HasSkillProficiency(skill) {
			continue
		}
		line := fmt.Sprintf("%s %+d", skill.DisplayName(), char.SkillModifier(skill))
		if char.HasExpertise(skill) {
			line += " (expertise)"
		}
		lines = append(lines, line)
	}
	if len(lines) == 0 {
		return []string{"*No skill proficiencies*"}
	}
	return lines
}

func equipmentLines(char *character.Character) []string {
	var lines []string

	if armor := char.Armor(); armor != nil {
		lines = append(lines, fmt.Sprintf("**Armor:** %s", armor.DisplayName()))
	} else {
		lines = append(lines, "**Armor:** None")
	}
	if shield := char.Shield(); shield != nil {
		lines = append(lines, fmt.Sprintf("**Shield:** %s", shield.DisplayName()))
	}

	for _, w := range char.Weapons() {
		line := fmt.Sprintf("**%s:** %+d to hit", w.DisplayName(), char.WeaponAttackBonus(w))
		if damage, ok := char.WeaponDamage(w); ok {
			line += fmt.Sprintf(", %d (%s)", damage.Average(), damage)
			if w.DamageType != "" {
				line += " " + w.DamageType
			}
		}
		lines = append(lines, line)
	}

	return lines
}

func spellSlotLine(char *character.Character) string {
	var parts []string
	for level := 1; level <= 9; level++ {
		if slots := char.SpellSlots(level); slots > 0 {
			parts = append(parts, fmt.Sprintf("%s: %d", rulebook.Ordinal(level), slots))
		}
	}
	if len(parts) == 0 {
		return "*No spell slots*"
	}
	return strings.Join(parts, " | ")
}

func truncate(s string) string {
	if s == "" {
		return "-"
	}
	if len(s) <= maxFieldLength {
		return s
	}
	cut := strings.LastIndex(s[:maxFieldLength-4], "\n")
	if cut <= 0 {
		cut = maxFieldLength - 4
	}
	return s[:cut] + "\n..."
}
