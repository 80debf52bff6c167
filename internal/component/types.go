package component

// Definition is the framework-neutral description of a UI component and
// its nested children. Rendering a Definition for any target framework is
// a pure function of the tree: props and styles are unordered mappings and
// adapters iterate them in sorted key order.
type Definition struct {
	Name              string            `yaml:"name" json:"name" validate:"required,component_name"`
	Props             map[string]string `yaml:"props,omitempty" json:"props,omitempty"`
	Children          []Definition      `yaml:"children,omitempty" json:"children,omitempty" validate:"omitempty,dive"`
	Styles            map[string]string `yaml:"styles,omitempty" json:"styles,omitempty"`
	FrameworkSpecific map[string]any    `yaml:"framework_specific,omitempty" json:"framework_specific,omitempty"`
}

// DefinitionFile is the on-disk document holding one or more component
// definitions.
type DefinitionFile struct {
	Components []Definition `yaml:"components" validate:"required,min=1,dive"`
}

// MaxDepth bounds component nesting. Decoded trees are always acyclic, but
// a bound keeps pathological documents from exhausting the renderer stack.
const MaxDepth = 64
