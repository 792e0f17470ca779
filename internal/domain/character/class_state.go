package character

import "github.com/KirkDiggler/dnd-sheets/internal/domain/rulebook"

const (
	classDruid     = "Druid"
	classArtificer = "Artificer"
)

// SetCircle records the druid circle. Without a Druid class entry it only warns.
func (c *Character) SetCircle(circle string) {
	druid, ok := c.ClassEntry(classDruid)
	if !ok {
		c.warnf("circle %q ignored: character has no Druid levels", circle)
		return
	}
	druid.Circle = circle
}

// Circle is the druid circle, empty without a Druid class entry
func (c *Character) Circle() string {
	if druid, ok := c.ClassEntry(classDruid); ok {
		return druid.Circle
	}
	return ""
}

// SetWildShapes records the beasts a druid can assume. Without a Druid class entry it only warns.
func (c *Character) SetWildShapes(shapes []string) {
	druid, ok := c.ClassEntry(classDruid)
	if !ok {
		c.warnf("wild shapes ignored: character has no Druid levels")
		return
	}
	druid.WildShapes = append([]string(nil), shapes...)
}

func (c *Character) WildShapes() []string {
	if druid, ok := c.ClassEntry(classDruid); ok {
		return druid.WildShapes
	}
	return nil
}

// SetInfusions resolves artificer infusions. Without an Artificer class entry it only warns.
func (c *Character) SetInfusions(refs []any) {
	if !c.HasClassNamed(classArtificer) {
		c.warnf("infusions ignored: character has no Artificer levels")
		return
	}
	infusions := make([]*rulebook.Infusion, 0, len(refs))
	for _, ref := range refs {
		infusions = append(infusions, rulebook.Resolve(ref, c.lib.Infusions, rulebook.CapabilityInfusion, "Infusion %q not defined. Please add it.", c.addWarning))
	}
	c.infusions = rulebook.SortByName(infusions)
}

// Infusions are empty unless the character has Artificer levels
func (c *Character) Infusions() []*rulebook.Infusion {
	if !c.HasClassNamed(classArtificer) {
		return nil
	}
	return c.infusions
}

func (c *Character) InfusionsText() []string {
	return rulebook.Names(c.Infusions())
}
