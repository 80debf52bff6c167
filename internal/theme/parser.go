package theme

import (
	"fmt"
	"regexp"
	"sync"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	forgeerrors "github.com/uiforge/uiforge/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	themeNamePattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._ -]*$`)
	colorPatterns    = []*regexp.Regexp{
		regexp.MustCompile(`^#[0-9A-Fa-f]{3,8}$`),
		regexp.MustCompile(`^[A-Za-z][A-Za-z-]*$`),
		regexp.MustCompile(`^(rgb|rgba|hsl|hsla)\(.+\)$`),
	}
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("theme_name", func(fl validator.FieldLevel) bool {
			return themeNamePattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("color", func(fl validator.FieldLevel) bool {
			value := fl.Field().String()
			for _, p := range colorPatterns {
				if p.MatchString(value) {
					return true
				}
			}
			return false
		})

		validateInst = v
	})

	return validateInst
}

// Parse performs strict field-by-field extraction of a raw theme payload.
// Any missing required key, unknown palette or breakpoint key, or scheme
// outside {light, dark} fails with a ValidationError; no defaults are
// filled in and no partial Theme is ever returned.
func Parse(raw []byte) (*Theme, error) {
	t, _, err := parseRaw(raw)
	return t, err
}

// parseRaw also returns the decoded document node so the store can
// re-serialize the payload with stable formatting.
func parseRaw(raw []byte) (*Theme, *yaml.Node, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, nil, forgeerrors.NewParseError("", err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, nil, forgeerrors.NewValidationError("theme", "payload is empty", nil)
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, nil, forgeerrors.NewValidationError("theme", "payload must be a mapping", nil)
	}

	t, err := parseTheme(root)
	if err != nil {
		return nil, nil, err
	}

	return t, &doc, nil
}

func parseTheme(root *yaml.Node) (*Theme, error) {
	name, err := requireScalar(root, "name", "name")
	if err != nil {
		return nil, err
	}

	schemes, err := parseColorSchemes(root)
	if err != nil {
		return nil, err
	}

	typography, err := parseTypography(root)
	if err != nil {
		return nil, err
	}

	spacing, err := parseSpacing(root)
	if err != nil {
		return nil, err
	}

	breakpoints, err := parseBreakpoints(root)
	if err != nil {
		return nil, err
	}

	custom := map[string]any{}
	if node := findKey(root, "custom"); node != nil {
		if err := node.Decode(&custom); err != nil {
			return nil, forgeerrors.NewValidationError("custom", "must be a mapping", err)
		}
	}

	t := &Theme{
		Name:         name,
		ColorSchemes: schemes,
		Typography:   typography,
		Spacing:      spacing,
		Breakpoints:  breakpoints,
		Custom:       custom,
	}

	if err := validatorInstance().Struct(t); err != nil {
		return nil, convertValidationError(err)
	}

	return t, nil
}

func parseColorSchemes(root *yaml.Node) ([]SchemePalette, error) {
	node, err := requireMapping(root, "color_schemes", "color_schemes")
	if err != nil {
		return nil, err
	}

	schemes := make([]SchemePalette, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		key := node.Content[i].Value
		scheme := ColorScheme(key)
		if scheme != SchemeLight && scheme != SchemeDark {
			return nil, forgeerrors.NewValidationError(
				"color_schemes."+key, "scheme must be light or dark", nil)
		}

		palette, err := parsePalette(node.Content[i+1], "color_schemes."+key)
		if err != nil {
			return nil, err
		}

		schemes = append(schemes, SchemePalette{Scheme: scheme, Palette: palette})
	}

	return schemes, nil
}

func parsePalette(node *yaml.Node, path string) (ColorPalette, error) {
	var p ColorPalette
	if node.Kind != yaml.MappingNode {
		return p, forgeerrors.NewValidationError(path, "palette must be a mapping", nil)
	}

	slots := map[string]*string{
		"primary":    &p.Primary,
		"secondary":  &p.Secondary,
		"accent":     &p.Accent,
		"background": &p.Background,
		"text":       &p.Text,
		"error":      &p.Error,
		"warning":    &p.Warning,
		"success":    &p.Success,
		"info":       &p.Info,
	}

	seen := make(map[string]bool, len(slots))
	for i := 0; i+1 < len(node.Content); i += 2 {
		key := node.Content[i].Value
		dst, ok := slots[key]
		if !ok {
			return ColorPalette{}, forgeerrors.NewValidationError(
				path+"."+key, "unknown palette slot", nil)
		}

		value, err := scalarValue(node.Content[i+1], path+"."+key)
		if err != nil {
			return ColorPalette{}, err
		}

		*dst = value
		seen[key] = true
	}

	for _, slot := range (ColorPalette{}).Entries() {
		if !seen[slot.Name] {
			return ColorPalette{}, forgeerrors.NewValidationError(
				path+"."+slot.Name, "required key is missing", nil)
		}
	}

	return p, nil
}

func parseTypography(root *yaml.Node) (Typography, error) {
	var t Typography

	node, err := requireMapping(root, "typography", "typography")
	if err != nil {
		return t, err
	}

	if t.FontFamily, err = requireScalar(node, "font_family", "typography.font_family"); err != nil {
		return Typography{}, err
	}
	if t.FontSizeBase, err = requireScalar(node, "font_size_base", "typography.font_size_base"); err != nil {
		return Typography{}, err
	}
	if t.LineHeightBase, err = requireScalar(node, "line_height_base", "typography.line_height_base"); err != nil {
		return Typography{}, err
	}

	headings, err := requireMapping(node, "headings", "typography.headings")
	if err != nil {
		return Typography{}, err
	}
	for i := 0; i+1 < len(headings.Content); i += 2 {
		level := headings.Content[i].Value
		props, err := scalarPairs(headings.Content[i+1], "typography.headings."+level)
		if err != nil {
			return Typography{}, err
		}
		t.Headings = append(t.Headings, HeadingStyle{Level: level, Properties: props})
	}

	body, err := requireMapping(node, "body", "typography.body")
	if err != nil {
		return Typography{}, err
	}
	if t.Body, err = scalarPairs(body, "typography.body"); err != nil {
		return Typography{}, err
	}

	return t, nil
}

func parseSpacing(root *yaml.Node) (Spacing, error) {
	var s Spacing

	node, err := requireMapping(root, "spacing", "spacing")
	if err != nil {
		return s, err
	}

	if s.Unit, err = requireScalar(node, "unit", "spacing.unit"); err != nil {
		return Spacing{}, err
	}

	scale := findKey(node, "scale")
	if scale == nil {
		return Spacing{}, forgeerrors.NewValidationError("spacing.scale", "required key is missing", nil)
	}
	if scale.Kind != yaml.SequenceNode {
		return Spacing{}, forgeerrors.NewValidationError("spacing.scale", "must be a sequence", nil)
	}
	for i, entry := range scale.Content {
		value, err := scalarValue(entry, fmt.Sprintf("spacing.scale[%d]", i))
		if err != nil {
			return Spacing{}, err
		}
		s.Scale = append(s.Scale, value)
	}

	custom, err := requireMapping(node, "custom", "spacing.custom")
	if err != nil {
		return Spacing{}, err
	}
	if s.Custom, err = scalarPairs(custom, "spacing.custom"); err != nil {
		return Spacing{}, err
	}

	return s, nil
}

func parseBreakpoints(root *yaml.Node) (Breakpoints, error) {
	var b Breakpoints

	node, err := requireMapping(root, "breakpoints", "breakpoints")
	if err != nil {
		return b, err
	}

	names := map[string]*string{
		"xs": &b.XS, "sm": &b.SM, "md": &b.MD,
		"lg": &b.LG, "xl": &b.XL, "xxl": &b.XXL,
	}

	seen := make(map[string]bool, len(names))
	for i := 0; i+1 < len(node.Content); i += 2 {
		key := node.Content[i].Value
		dst, ok := names[key]
		if !ok {
			return Breakpoints{}, forgeerrors.NewValidationError(
				"breakpoints."+key, "unknown breakpoint", nil)
		}

		value, err := scalarValue(node.Content[i+1], "breakpoints."+key)
		if err != nil {
			return Breakpoints{}, err
		}

		*dst = value
		seen[key] = true
	}

	for _, entry := range (Breakpoints{}).Entries() {
		if !seen[entry.Name] {
			return Breakpoints{}, forgeerrors.NewValidationError(
				"breakpoints."+entry.Name, "required key is missing", nil)
		}
	}

	return b, nil
}

func findKey(m *yaml.Node, key string) *yaml.Node {
	for i := 0; i+1 < len(m.Content); i += 2 {
		if m.Content[i].Value == key {
			return m.Content[i+1]
		}
	}
	return nil
}

func requireMapping(m *yaml.Node, key, path string) (*yaml.Node, error) {
	node := findKey(m, key)
	if node == nil {
		return nil, forgeerrors.NewValidationError(path, "required key is missing", nil)
	}
	if node.Kind != yaml.MappingNode {
		return nil, forgeerrors.NewValidationError(path, "must be a mapping", nil)
	}
	return node, nil
}

func requireScalar(m *yaml.Node, key, path string) (string, error) {
	node := findKey(m, key)
	if node == nil {
		return "", forgeerrors.NewValidationError(path, "required key is missing", nil)
	}
	return scalarValue(node, path)
}

func scalarValue(node *yaml.Node, path string) (string, error) {
	if node.Kind != yaml.ScalarNode {
		return "", forgeerrors.NewValidationError(path, "expected a scalar value", nil)
	}
	return node.Value, nil
}

// scalarPairs extracts an ordered name/value list from a mapping node.
func scalarPairs(node *yaml.Node, path string) ([]StyleProperty, error) {
	if node.Kind != yaml.MappingNode {
		return nil, forgeerrors.NewValidationError(path, "must be a mapping", nil)
	}

	props := make([]StyleProperty, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		name := node.Content[i].Value
		value, err := scalarValue(node.Content[i+1], path+"."+name)
		if err != nil {
			return nil, err
		}
		props = append(props, StyleProperty{Name: name, Value: value})
	}

	return props, nil
}

func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	if fieldErrs, ok := err.(validator.ValidationErrors); ok && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return forgeerrors.NewValidationError(fe.Namespace(), fmt.Sprintf("failed %q validation", fe.Tag()), err)
	}

	return forgeerrors.NewValidationError("", err.Error(), err)
}
