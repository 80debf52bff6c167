package adapter

import (
	"fmt"
	"strings"

	"github.com/uiforge/uiforge/internal/component"
)

// SvelteAdapter renders a single-file component with a script block of
// exported bindings, markup, and a style block.
type SvelteAdapter struct{}

func (a *SvelteAdapter) GenerateComponent(def *component.Definition) string {
	props := a.GenerateProps(def.Props)
	styles := a.GenerateStyles(def.Styles)

	var children strings.Builder
	for i := range def.Children {
		children.WriteString(a.GenerateComponent(&def.Children[i]))
	}

	class := strings.ToLower(def.Name)

	return fmt.Sprintf(`
<script>
    %[1]s
</script>

<div class="%[2]s">
    %[3]s
</div>

<style>
    .%[2]s {
        %[4]s
    }
</style>
`, props, class, children.String(), styles)
}

// GenerateStyles indents each declaration by eight spaces to sit inside
// the nested style rule.
func (a *SvelteAdapter) GenerateStyles(styles map[string]string) string {
	rules := make([]string, 0, len(styles))
	for _, prop := range sortedKeys(styles) {
		rules = append(rules, fmt.Sprintf("        %s: %s;", prop, styles[prop]))
	}
	return strings.Join(rules, "\n")
}

// GenerateProps emits one exported binding per prop.
func (a *SvelteAdapter) GenerateProps(props map[string]string) string {
	list := make([]string, 0, len(props))
	for _, name := range sortedKeys(props) {
		list = append(list, fmt.Sprintf("export let %s;", name))
	}
	return strings.Join(list, "\n    ")
}
