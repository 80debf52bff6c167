package adapter

import (
	"fmt"
	"strings"

	"github.com/uiforge/uiforge/internal/component"
)

// VueAdapter renders a single-file component with template, script, and
// scoped style sections.
type VueAdapter struct{}

func (a *VueAdapter) GenerateComponent(def *component.Definition) string {
	props := a.GenerateProps(def.Props)
	styles := a.GenerateStyles(def.Styles)

	var children strings.Builder
	for i := range def.Children {
		children.WriteString(a.GenerateComponent(&def.Children[i]))
	}

	class := strings.ToLower(def.Name)

	return fmt.Sprintf(`
<template>
    <div class="%[1]s">
        %[2]s
    </div>
</template>

<script>
export default {
    name: '%[3]s',
    props: %[4]s
}
</script>

<style scoped>
.%[1]s {
    %[5]s
}
</style>
`, class, children.String(), def.Name, props, styles)
}

// GenerateStyles indents each declaration by four spaces. The style block
// already indents the substitution point, so the first line carries a
// double indent; the convention is preserved to keep output diffs stable.
func (a *VueAdapter) GenerateStyles(styles map[string]string) string {
	rules := make([]string, 0, len(styles))
	for _, prop := range sortedKeys(styles) {
		rules = append(rules, fmt.Sprintf("    %s: %s;", prop, styles[prop]))
	}
	return strings.Join(rules, "\n")
}

// GenerateProps emits a props-schema object literal mapping each prop to a
// { type: ... } descriptor.
func (a *VueAdapter) GenerateProps(props map[string]string) string {
	list := make([]string, 0, len(props))
	for _, name := range sortedKeys(props) {
		list = append(list, fmt.Sprintf("    %s: { type: %s }", name, props[name]))
	}
	return "{\n" + strings.Join(list, ",\n") + "\n}"
}
