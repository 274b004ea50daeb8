package shared

// ComponentType defines spell components
type ComponentType string

const (
	ComponentVerbal   ComponentType = "V"
	ComponentSomatic  ComponentType = "S"
	ComponentMaterial ComponentType = "M"
)

// ParseComponent maps the single letter codes used by spell catalogs
func ParseComponent(s string) (ComponentType, bool) {
	switch ComponentType(s) {
	case ComponentVerbal, ComponentSomatic, ComponentMaterial:
		return ComponentType(s), true
	}
	return "", false
}
