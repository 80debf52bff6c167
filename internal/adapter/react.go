package adapter

import (
	"fmt"
	"strings"

	"github.com/uiforge/uiforge/internal/component"
)

// ReactAdapter renders a styled-components module exporting a function
// component.
type ReactAdapter struct{}

func (a *ReactAdapter) GenerateComponent(def *component.Definition) string {
	props := a.GenerateProps(def.Props)
	styles := a.GenerateStyles(def.Styles)

	var children strings.Builder
	for i := range def.Children {
		children.WriteString(a.GenerateComponent(&def.Children[i]))
	}

	return fmt.Sprintf(`
import React from 'react';
import styled from 'styled-components';

const Styled%[1]s = styled.div`+"`"+`
    %[2]s
`+"`"+`;

export const %[1]s = (%[3]s) => {
    return (
        <Styled%[1]s {...props}>
            %[4]s
        </Styled%[1]s>
    );
};
`, def.Name, styles, props, children.String())
}

// GenerateStyles joins declarations so every line sits at the wrapper's
// four-space indent.
func (a *ReactAdapter) GenerateStyles(styles map[string]string) string {
	rules := make([]string, 0, len(styles))
	for _, prop := range sortedKeys(styles) {
		rules = append(rules, fmt.Sprintf("%s: %s;", prop, styles[prop]))
	}
	return strings.Join(rules, "\n    ")
}

// GenerateProps emits a destructured parameter list with type annotations.
func (a *ReactAdapter) GenerateProps(props map[string]string) string {
	list := make([]string, 0, len(props))
	for _, name := range sortedKeys(props) {
		list = append(list, fmt.Sprintf("%s: %s", name, props[name]))
	}
	return "{ " + strings.Join(list, ", ") + " }"
}
