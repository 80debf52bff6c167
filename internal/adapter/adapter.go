package adapter

import (
	"sort"

	"github.com/uiforge/uiforge/internal/component"
)

// Framework identifies a supported target framework.
type Framework string

const (
	FrameworkReact  Framework = "react"
	FrameworkVue    Framework = "vue"
	FrameworkSvelte Framework = "svelte"
	FrameworkNextJS Framework = "nextjs"
)

// String returns the framework identifier.
func (f Framework) String() string {
	return string(f)
}

// Adapter renders a component tree into one framework's authoring
// convention. Implementations assume the target has already been resolved;
// unknown-target failures belong to the dispatcher, never here.
//
// Rendering is deterministic: props and styles are iterated in sorted key
// order, and child output is concatenated in declaration order with no
// separator.
type Adapter interface {
	// GenerateComponent renders the full source text for a component tree.
	GenerateComponent(def *component.Definition) string

	// GenerateStyles renders the style mapping using the framework's join
	// and indentation convention.
	GenerateStyles(styles map[string]string) string

	// GenerateProps renders the prop mapping using the framework's
	// prop-declaration convention.
	GenerateProps(props map[string]string) string
}

// sortedKeys returns the keys of a string mapping in sorted order so that
// rendering is a pure function of the tree.
func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
