package character

// Preset constructors build a single-class character; attrs may carry any
// other description key. Class keys in attrs are overridden.

func newPreset(class string, level int, attrs Description, opts []Option) (*Character, error) {
	desc := attrs.Clone()
	for _, key := range []string{keyClass, keyLevel, keySubclass, keyCharacterClass} {
		delete(desc, key)
	}
	desc[KeyClasses] = []any{class}
	desc[KeyLevels] = []any{level}
	if sub, ok := attrs[keySubclass]; ok {
		desc[KeySubclasses] = []any{sub}
	} else if _, ok := desc[KeySubclasses]; !ok {
		desc[KeySubclasses] = []any{nil}
	}
	return New(desc, opts...)
}

func NewArtificer(level int, attrs Description, opts ...Option) (*Character, error) {
	return newPreset("Artificer", level, attrs, opts)
}

func NewBarbarian(level int, attrs Description, opts ...Option) (*Character, error) {
	return newPreset("Barbarian", level, attrs, opts)
}

func NewBard(level int, attrs Description, opts ...Option) (*Character, error) {
	return newPreset("Bard", level, attrs, opts)
}

func NewCleric(level int, attrs Description, opts ...Option) (*Character, error) {
	return newPreset("Cleric", level, attrs, opts)
}

func NewDruid(level int, attrs Description, opts ...Option) (*Character, error) {
	return newPreset("Druid", level, attrs, opts)
}

func NewFighter(level int, attrs Description, opts ...Option) (*Character, error) {
	return newPreset("Fighter", level, attrs, opts)
}

func NewMonk(level int, attrs Description, opts ...Option) (*Character, error) {
	return newPreset("Monk", level, attrs, opts)
}

func NewPaladin(level int, attrs Description, opts ...Option) (*Character, error) {
	return newPreset("Paladin", level, attrs, opts)
}

func NewRanger(level int, attrs Description, opts ...Option) (*Character, error) {
	return newPreset("Ranger", level, attrs, opts)
}

func NewRogue(level int, attrs Description, opts ...Option) (*Character, error) {
	return newPreset("Rogue", level, attrs, opts)
}

func NewSorcerer(level int, attrs Description, opts ...Option) (*Character, error) {
	return newPreset("Sorcerer", level, attrs, opts)
}

func NewWarlock(level int, attrs Description, opts ...Option) (*Character, error) {
	return newPreset("Warlock", level, attrs, opts)
}

func NewWizard(level int, attrs Description, opts ...Option) (*Character, error) {
	return newPreset("Wizard", level, attrs, opts)
}
