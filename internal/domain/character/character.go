// Package character composes a playable character from a sparse description:
// it resolves every named mechanic against a rulebook library and derives hit
// points, proficiencies, features, spells and spell slots from the parts.
package character

import (
	"fmt"
	"log"
	"sort"
	"strings"
	"sync"

	"github.com/KirkDiggler/dnd-sheets/internal/domain/rulebook"
	"github.com/KirkDiggler/dnd-sheets/internal/domain/rulebook/dnd5e"
	"github.com/KirkDiggler/dnd-sheets/internal/errors"
)

// DefaultLibrary is the built-in content shared by characters built without WithLibrary
var DefaultLibrary = sync.OnceValue(dnd5e.NewLibrary)

// Character is the aggregate root. Derived values are computed on demand from
// the resolved parts; hit points are fixed at construction.
type Character struct {
	Name              string
	PlayerName        string
	Alignment         string
	XP                int
	Inspiration       bool
	Languages         string
	PersonalityTraits string
	Ideals            string
	Bonds             string
	Flaws             string
	FeaturesAndTraits string
	Appearance        string
	Backstory         string
	Equipment         string

	AttacksAndSpellcasting string

	CP, SP, EP, GP, PP int

	HPMax int

	// ClassList is in declaration order; the first entry is the primary class
	ClassList []*ClassEntry

	SkillProficiencies []rulebook.Skill
	SkillExpertise     []rulebook.Skill
	FeatureChoices     []string

	// Extra holds attributes the character has no field for
	Extra map[string]any
	// Warnings collects every content warning raised while building or changing the character
	Warnings []string

	scores     map[rulebook.Ability]int
	race       *rulebook.Race
	background *rulebook.Background

	weapons    []*rulebook.Weapon
	armor      *rulebook.Armor
	shield     *rulebook.Shield
	magicItems *rulebook.Set[*rulebook.MagicItem]
	infusions  []*rulebook.Infusion
	feats      []*rulebook.Feat

	spells         []*rulebook.Spell
	spellsPrepared []*rulebook.Spell
	customFeatures []*rulebook.Feature

	savingThrows             []rulebook.Ability
	otherWeaponProficiencies []*rulebook.Weapon
	proficienciesText        []string

	lib          *rulebook.Library
	warn         rulebook.WarnFunc
	acCalculator ACCalculator
}

// Option configures a character before its description is applied
type Option func(*Character)

// WithLibrary resolves names against lib instead of the built-in content
func WithLibrary(lib *rulebook.Library) Option {
	return func(c *Character) {
		if lib != nil {
			c.lib = lib
		}
	}
}

// WithWarner sends content warnings to warn instead of the standard logger.
// Warnings are recorded in Character.Warnings either way.
func WithWarner(warn rulebook.WarnFunc) Option {
	return func(c *Character) {
		c.warn = warn
	}
}

// WithACCalculator sets the ruleset's armor class calculation
func WithACCalculator(calc ACCalculator) Option {
	return func(c *Character) {
		c.acCalculator = calc
	}
}

func newCharacter(opts ...Option) *Character {
	c := &Character{
		Alignment:  "Neutral",
		Extra:      make(map[string]any),
		scores:     make(map[rulebook.Ability]int),
		race:       rulebook.NoRace(),
		background: rulebook.NoBackground(),
		magicItems: rulebook.NewSet[*rulebook.MagicItem](),
		warn: func(msg string) {
			log.Printf("WARNING: %s", msg)
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.lib == nil {
		c.lib = DefaultLibrary()
	}
	return c
}

// New builds a character from desc. Classes are added first, then race and
// background, then every other attribute; hit points are computed last.
// Unknown classes, mismatched class lists, bad levels and a non-integer
// hp_max fail construction. Every other unresolved name becomes a placeholder
// with a warning.
func New(desc Description, opts ...Option) (*Character, error) {
	c := newCharacter(opts...)
	attrs := desc.Normalize()

	choices := toStrings(attrs[KeyFeatureChoices])
	if err := c.AddClasses(attrs[KeyClasses], attrs[KeyLevels], attrs[KeySubclasses], choices); err != nil {
		return nil, err
	}
	c.FeatureChoices = choices

	c.SetRace(attrs[KeyRace])
	c.SetBackground(attrs[KeyBackground])

	hpMax := attrs[KeyHPMax]
	for _, key := range []string{KeyClasses, KeyLevels, KeySubclasses, KeyFeatureChoices, KeyRace, KeyBackground, KeyHPMax} {
		delete(attrs, key)
	}

	if err := c.SetAttrs(attrs); err != nil {
		return nil, err
	}
	c.checkFeatPrerequisites()
	if err := c.setMaxHP(hpMax); err != nil {
		return nil, err
	}
	return c, nil
}

// MustNew is New for descriptions known to be valid; it panics on error
func MustNew(desc Description, opts ...Option) *Character {
	c, err := New(desc, opts...)
	if err != nil {
		panic(err)
	}
	return c
}

// Library returns the content the character resolves names against
func (c *Character) Library() *rulebook.Library {
	return c.lib
}

func (c *Character) String() string {
	return c.Name
}

func (c *Character) warnf(format string, args ...any) {
	c.addWarning(fmt.Sprintf(format, args...))
}

func (c *Character) addWarning(msg string) {
	c.Warnings = append(c.Warnings, msg)
	if c.warn != nil {
		c.warn(msg)
	}
}

// AddClass appends a class entry. The class must be known to the library; an
// unknown subclass becomes a placeholder with a warning.
func (c *Character) AddClass(ref any, level any, subclass any, featureChoices []string) error {
	class, ok := ref.(*rulebook.Class)
	if !ok || class == nil {
		name := strings.TrimSpace(rulebook.ReferenceName(ref))
		class, ok = c.lib.Classes.Lookup(name)
		if !ok {
			return errors.UnknownClassf("class was not recognized: %q", name).WithMeta("class", name)
		}
	}

	lvl, ok := toInt(level)
	if !ok {
		return errors.InvalidArgumentf("level %v for class %s is not an integer", level, class.Name)
	}
	if lvl < 1 {
		return errors.NegativeLevelf("level %d for class %s must be at least 1", lvl, class.Name)
	}

	entry := &ClassEntry{
		Class:          class,
		Level:          lvl,
		FeatureChoices: featureChoices,
	}
	if rulebook.ReferenceName(subclass) != "" {
		catalog := class.Subclasses
		if catalog == nil {
			catalog = rulebook.NewSubclassCatalog()
		}
		msg := fmt.Sprintf("Subclass %%q not defined for %s. Please add it.", class.Name)
		entry.Subclass = rulebook.Resolve(subclass, catalog, rulebook.CapabilitySubclass, msg, c.addWarning)
	}

	c.ClassList = append(c.ClassList, entry)
	return nil
}

// AddClasses adds parallel lists of classes, levels and subclasses. Scalars
// count as one element lists, missing levels default to 1 and missing
// subclasses to none.
func (c *Character) AddClasses(classes, levels, subclasses any, featureChoices []string) error {
	classList := toList(classes)
	levelList := toList(levels)
	subclassList := toList(subclasses)

	if len(levelList) == 0 {
		levelList = make([]any, len(classList))
		for i := range levelList {
			levelList[i] = 1
		}
	}
	if len(subclassList) == 0 {
		subclassList = make([]any, len(classList))
	}

	if len(classList) != len(levelList) {
		return errors.LengthMismatchf("the length of classes %d does not match length of levels %d", len(classList), len(levelList))
	}
	if len(classList) != len(subclassList) {
		return errors.LengthMismatchf("the length of classes %d does not match length of subclasses %d", len(classList), len(subclassList))
	}

	for i := range classList {
		if err := c.AddClass(classList[i], levelList[i], subclassList[i], featureChoices); err != nil {
			return err
		}
	}
	return nil
}

// Race is never nil; a character without one has an empty race
func (c *Character) Race() *rulebook.Race {
	return c.race
}

// SetRace resolves ref against the race catalog. nil or "" clears the race.
func (c *Character) SetRace(ref any) {
	if rulebook.ReferenceName(ref) == "" {
		c.race = rulebook.NoRace()
		return
	}
	c.race = rulebook.Resolve(ref, c.lib.Races, rulebook.CapabilityRace, "Race %q not defined. Please add it.", c.addWarning)
}

// Background is never nil; a character without one has an empty background
func (c *Character) Background() *rulebook.Background {
	return c.background
}

// SetBackground resolves ref against the background catalog. nil or "" clears the background.
func (c *Character) SetBackground(ref any) {
	if rulebook.ReferenceName(ref) == "" {
		c.background = rulebook.NoBackground()
		return
	}
	c.background = rulebook.Resolve(ref, c.lib.Backgrounds, rulebook.CapabilityBackground, "Background %q not defined. Please add it.", c.addWarning)
}

// PrimaryClass is the first class entry, nil for a character without classes
func (c *Character) PrimaryClass() *ClassEntry {
	if len(c.ClassList) == 0 {
		return nil
	}
	return c.ClassList[0]
}

func (c *Character) NumClasses() int {
	return len(c.ClassList)
}

func (c *Character) HasClass() bool {
	return c.NumClasses() > 0
}

// ClassEntry returns the entry for the named class, if the character has it
func (c *Character) ClassEntry(name string) (*ClassEntry, bool) {
	want := rulebook.NormalizeName(name)
	for _, e := range c.ClassList {
		if rulebook.NormalizeName(e.Name()) == want {
			return e, true
		}
	}
	return nil, false
}

// HasClassNamed reports whether any class entry is the named class
func (c *Character) HasClassNamed(name string) bool {
	_, ok := c.ClassEntry(name)
	return ok
}

// ClassName is the primary class name
func (c *Character) ClassName() string {
	if p := c.PrimaryClass(); p != nil {
		return p.Name()
	}
	return ""
}

func (c *Character) ClassNames() []string {
	names := make([]string, len(c.ClassList))
	for i, e := range c.ClassList {
		names[i] = e.Name()
	}
	return names
}

func (c *Character) Levels() []int {
	levels := make([]int, len(c.ClassList))
	for i, e := range c.ClassList {
		levels[i] = e.Level
	}
	return levels
}

// Subclasses lists the subclasses that are set, in class order
func (c *Character) Subclasses() []*rulebook.Subclass {
	var out []*rulebook.Subclass
	for _, e := range c.ClassList {
		if e.Subclass != nil {
			out = append(out, e.Subclass)
		}
	}
	return out
}

// ClassesAndLevels renders "Fighter 3 / Wizard 2"
func (c *Character) ClassesAndLevels() string {
	parts := make([]string, len(c.ClassList))
	for i, e := range c.ClassList {
		parts[i] = e.String()
	}
	return strings.Join(parts, " / ")
}

// Level is the total character level
func (c *Character) Level() int {
	total := 0
	for _, e := range c.ClassList {
		total += e.Level
	}
	return total
}

// SetLevel changes the primary class level. On a multiclass character the
// target is ambiguous, so the primary class is changed and a warning raised.
func (c *Character) SetLevel(level int) error {
	primary := c.PrimaryClass()
	if primary == nil {
		return errors.InvalidArgument("character has no class to set the level of")
	}
	if level < 1 {
		return errors.NegativeLevelf("level %d must be at least 1", level)
	}
	primary.Level = level
	if c.NumClasses() > 1 {
		c.warnf("Unable to tell which level to set. Updating level of primary class %s", primary.Name())
	}
	return nil
}

// ProficiencyBonus steps up every four character levels
func (c *Character) ProficiencyBonus() int {
	level := c.Level()
	switch {
	case level < 5:
		return 2
	case level < 9:
		return 3
	case level < 13:
		return 4
	case level < 17:
		return 5
	default:
		return 6
	}
}

// HitDice renders the hit dice of every class, "3d10 + 2d6"
func (c *Character) HitDice() string {
	parts := make([]string, len(c.ClassList))
	for i, e := range c.ClassList {
		parts[i] = fmt.Sprintf("%dd%d", e.Level, e.HitDiceFaces())
	}
	return strings.Join(parts, " + ")
}

// HitDiceFaces is the primary class's hit die. Multiclass characters have
// one die per class; use HitDice for those.
func (c *Character) HitDiceFaces() int {
	if p := c.PrimaryClass(); p != nil {
		return p.HitDiceFaces()
	}
	return 0
}

// setMaxHP takes an explicit maximum when given, else the fixed average:
// the primary class's full hit die at first level and half the die plus one
// for every later level, each with the constitution modifier. Feats such as
// Tough only add to the computed value.
func (c *Character) setMaxHP(raw any) error {
	if raw != nil {
		hp, ok := explicitInt(raw)
		if !ok {
			return errors.InvalidTypef("hp_max must be an integer, got %T", raw).WithMeta("hp_max", raw)
		}
		if hp != 0 {
			c.HPMax = hp
			return nil
		}
	}

	primary := c.PrimaryClass()
	if primary == nil {
		c.HPMax = 0
		return nil
	}

	conMod := c.AbilityModifier(rulebook.AbilityConstitution)
	hp := primary.HitDiceFaces() + conMod
	for i, e := range c.ClassList {
		levels := e.Level
		if i == 0 {
			levels--
		}
		if levels < 0 {
			return errors.NegativeLevelf("class %s has a negative level count %d", e.Name(), levels)
		}
		hp += levels * (e.HitDiceFaces()/2 + 1 + conMod)
	}
	hp += c.Level() * c.featBonus(func(f *rulebook.Feat) int { return f.HPPerLevel })
	c.HPMax = hp
	return nil
}

// explicitInt accepts integers and whole floats, which is how JSON decodes them; strings are rejected
func explicitInt(v any) (int, bool) {
	switch v.(type) {
	case string, []byte, bool:
		return 0, false
	}
	return toInt(v)
}

// sortedKeys returns map keys in a stable order
func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
