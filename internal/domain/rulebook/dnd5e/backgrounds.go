package dnd5e

import "github.com/KirkDiggler/dnd-sheets/internal/domain/rulebook"

func (b *builder) background(name string, skills []rulebook.Skill, tools []string, languages string, feature *rulebook.Feature) *rulebook.Background {
	return &rulebook.Background{
		Mechanic:           mechanic(name, SourcePHB, ""),
		SkillProficiencies: skills,
		ProficienciesText:  tools,
		Languages:          languages,
		Features:           []*rulebook.Feature{feature},
	}
}

func skills(s ...rulebook.Skill) []rulebook.Skill {
	return s
}

func (b *builder) addBackgrounds() {
	b.lib.Backgrounds.Add(
		b.background("Acolyte", skills(rulebook.SkillInsight, rulebook.SkillReligion), nil, "two of your choice",
			b.phb("Shelter of the Faithful", "You and your companions can expect free healing and care at a temple of your faith."),
		),
		b.background("Charlatan", skills(rulebook.SkillDeception, rulebook.SkillSleightOfHand), []string{"disguise kit", "forgery kit"}, "",
			b.phb("False Identity", "You have a second identity with documentation and established acquaintances."),
		),
		b.background("Criminal", skills(rulebook.SkillDeception, rulebook.SkillStealth), []string{"one type of gaming set", "thieves' tools"}, "",
			b.phb("Criminal Contact", "You have a reliable contact who acts as your liaison to a network of criminals."),
		),
		b.background("Entertainer", skills(rulebook.SkillAcrobatics, rulebook.SkillPerformance), []string{"disguise kit", "one type of musical instrument"}, "",
			b.phb("By Popular Demand", "You can always find a place to perform in exchange for lodging and food."),
		),
		b.background("Folk Hero", skills(rulebook.SkillAnimalHandling, rulebook.SkillSurvival), []string{"one type of artisan's tools", "vehicles (land)"}, "",
			b.phb("Rustic Hospitality", "Common folk will shelter you from the law or anyone searching for you."),
		),
		b.background("Guild Artisan", skills(rulebook.SkillInsight, rulebook.SkillPersuasion), []string{"one type of artisan's tools"}, "one of your choice",
			b.phb("Guild Membership", "Your guild offers lodging, food, and support."),
		),
		b.background("Hermit", skills(rulebook.SkillMedicine, rulebook.SkillReligion), []string{"herbalism kit"}, "one of your choice",
			b.phb("Discovery", "The quiet seclusion of your hermitage gave you access to a unique and powerful discovery."),
		),
		b.background("Noble", skills(rulebook.SkillHistory, rulebook.SkillPersuasion), []string{"one type of gaming set"}, "one of your choice",
			b.phb("Position of Privilege", "People are inclined to think the best of you and you are welcome in high society."),
		),
		b.background("Outlander", skills(rulebook.SkillAthletics, rulebook.SkillSurvival), []string{"one type of musical instrument"}, "one of your choice",
			b.phb("Wanderer", "You have an excellent memory for maps and geography and can always find food and water."),
		),
		b.background("Sage", skills(rulebook.SkillArcana, rulebook.SkillHistory), nil, "two of your choice",
			b.phb("Researcher", "When you don't know a piece of lore, you often know where and from whom to obtain it."),
		),
		b.background("Sailor", skills(rulebook.SkillAthletics, rulebook.SkillPerception), []string{"navigator's tools", "vehicles (water)"}, "",
			b.phb("Ship's Passage", "You can secure free passage on a sailing ship for yourself and your companions."),
		),
		b.background("Soldier", skills(rulebook.SkillAthletics, rulebook.SkillIntimidation), []string{"one type of gaming set", "vehicles (land)"}, "",
			b.phb("Military Rank", "Soldiers loyal to your former military organization still recognize your authority."),
		),
		b.background("Urchin", skills(rulebook.SkillSleightOfHand, rulebook.SkillStealth), []string{"disguise kit", "thieves' tools"}, "",
			b.phb("City Secrets", "You know the secret patterns and flow to cities and can find passages through the urban sprawl."),
		),
	)
}
