package theme

import (
	"fmt"
	"strings"

	forgeerrors "github.com/uiforge/uiforge/pkg/errors"
)

// Format selects a stylesheet export syntax.
type Format string

const (
	FormatCSS  Format = "css"
	FormatSCSS Format = "scss"
)

// Export renders the theme in the requested format. Both formats emit the
// same entries in the same order; only the syntax differs.
func Export(t *Theme, format Format) (string, error) {
	switch format {
	case FormatCSS:
		return exportCSS(t), nil
	case FormatSCSS:
		return exportSCSS(t), nil
	default:
		return "", forgeerrors.NewUnsupportedFormatError(string(format))
	}
}

// exportCSS emits a single root-scoped custom-property block.
func exportCSS(t *Theme) string {
	var css []string

	css = append(css, ":root {")

	for _, sp := range t.ColorSchemes {
		for _, slot := range sp.Palette.Entries() {
			css = append(css, fmt.Sprintf("  --color-%s-%s: %s;", sp.Scheme, slot.Name, slot.Value))
		}
	}

	css = append(css, fmt.Sprintf("  --font-family: %s;", t.Typography.FontFamily))
	css = append(css, fmt.Sprintf("  --font-size-base: %s;", t.Typography.FontSizeBase))
	css = append(css, fmt.Sprintf("  --line-height-base: %s;", t.Typography.LineHeightBase))

	for _, heading := range t.Typography.Headings {
		for _, prop := range heading.Properties {
			css = append(css, fmt.Sprintf("  --typography-%s-%s: %s;", heading.Level, prop.Name, prop.Value))
		}
	}

	css = append(css, fmt.Sprintf("  --spacing-unit: %s;", t.Spacing.Unit))
	for i, value := range t.Spacing.Scale {
		css = append(css, fmt.Sprintf("  --spacing-%d: %s;", i, value))
	}

	for _, bp := range t.Breakpoints.Entries() {
		css = append(css, fmt.Sprintf("  --breakpoint-%s: %s;", bp.Name, bp.Value))
	}

	css = append(css, "}")

	return strings.Join(css, "\n")
}

// exportSCSS emits the same entries as SCSS variables and maps.
func exportSCSS(t *Theme) string {
	var scss []string

	for _, sp := range t.ColorSchemes {
		for _, slot := range sp.Palette.Entries() {
			scss = append(scss, fmt.Sprintf("$color-%s-%s: %s;", sp.Scheme, slot.Name, slot.Value))
		}
	}

	scss = append(scss, fmt.Sprintf("$font-family: %s;", t.Typography.FontFamily))
	scss = append(scss, fmt.Sprintf("$font-size-base: %s;", t.Typography.FontSizeBase))
	scss = append(scss, fmt.Sprintf("$line-height-base: %s;", t.Typography.LineHeightBase))

	scss = append(scss, "$typography: (")
	for _, heading := range t.Typography.Headings {
		scss = append(scss, fmt.Sprintf("  %s: (", heading.Level))
		for _, prop := range heading.Properties {
			scss = append(scss, fmt.Sprintf("    %s: %s,", prop.Name, prop.Value))
		}
		scss = append(scss, "  ),")
	}
	scss = append(scss, ");")

	scss = append(scss, fmt.Sprintf("$spacing-unit: %s;", t.Spacing.Unit))
	scss = append(scss, "$spacing: (")
	for i, value := range t.Spacing.Scale {
		scss = append(scss, fmt.Sprintf("  %d: %s,", i, value))
	}
	scss = append(scss, ");")

	scss = append(scss, "$breakpoints: (")
	for _, bp := range t.Breakpoints.Entries() {
		scss = append(scss, fmt.Sprintf("  %s: %s,", bp.Name, bp.Value))
	}
	scss = append(scss, ");")

	return strings.Join(scss, "\n")
}
