package adapter

import (
	"fmt"
	"strings"

	"github.com/uiforge/uiforge/internal/component"
)

// NextJSAdapter shares React's styled-components wrapper but emits a
// client-directive module with a default-exported function component.
type NextJSAdapter struct{}

func (a *NextJSAdapter) GenerateComponent(def *component.Definition) string {
	props := a.GenerateProps(def.Props)
	styles := a.GenerateStyles(def.Styles)

	var children strings.Builder
	for i := range def.Children {
		children.WriteString(a.GenerateComponent(&def.Children[i]))
	}

	return fmt.Sprintf(`
'use client';

import styled from 'styled-components';

const Styled%[1]s = styled.div`+"`"+`
    %[2]s
`+"`"+`;

export default function %[1]s(%[3]s) {
    return (
        <Styled%[1]s>
            %[4]s
        </Styled%[1]s>
    );
}
`, def.Name, styles, props, children.String())
}

// GenerateStyles indents each declaration by four spaces; the first line
// picks up the template's own indent as well, matching the established
// output shape.
func (a *NextJSAdapter) GenerateStyles(styles map[string]string) string {
	rules := make([]string, 0, len(styles))
	for _, prop := range sortedKeys(styles) {
		rules = append(rules, fmt.Sprintf("    %s: %s;", prop, styles[prop]))
	}
	return strings.Join(rules, "\n")
}

// GenerateProps emits a destructured parameter list of bare prop names.
func (a *NextJSAdapter) GenerateProps(props map[string]string) string {
	list := make([]string, 0, len(props))
	for _, name := range sortedKeys(props) {
		list = append(list, name)
	}
	return "{ " + strings.Join(list, ", ") + " }"
}
