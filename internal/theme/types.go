package theme

// ColorScheme is a named palette variant. Only light and dark are valid.
type ColorScheme string

const (
	SchemeLight ColorScheme = "light"
	SchemeDark  ColorScheme = "dark"
)

// String returns the scheme identifier.
func (s ColorScheme) String() string {
	return string(s)
}

// ColorPalette holds the nine semantic color slots every scheme must
// supply.
type ColorPalette struct {
	Primary    string `yaml:"primary" validate:"required,color"`
	Secondary  string `yaml:"secondary" validate:"required,color"`
	Accent     string `yaml:"accent" validate:"required,color"`
	Background string `yaml:"background" validate:"required,color"`
	Text       string `yaml:"text" validate:"required,color"`
	Error      string `yaml:"error" validate:"required,color"`
	Warning    string `yaml:"warning" validate:"required,color"`
	Success    string `yaml:"success" validate:"required,color"`
	Info       string `yaml:"info" validate:"required,color"`
}

// Entries returns the palette slots in their fixed declaration order.
func (p ColorPalette) Entries() []StyleProperty {
	return []StyleProperty{
		{Name: "primary", Value: p.Primary},
		{Name: "secondary", Value: p.Secondary},
		{Name: "accent", Value: p.Accent},
		{Name: "background", Value: p.Background},
		{Name: "text", Value: p.Text},
		{Name: "error", Value: p.Error},
		{Name: "warning", Value: p.Warning},
		{Name: "success", Value: p.Success},
		{Name: "info", Value: p.Info},
	}
}

// StyleProperty is one named design-token value. Slices of StyleProperty
// preserve the payload's declared order, which export relies on.
type StyleProperty struct {
	Name  string
	Value string
}

// HeadingStyle is the ordered style-property set for one heading level.
type HeadingStyle struct {
	Level      string
	Properties []StyleProperty
}

// Typography groups the font design tokens.
type Typography struct {
	FontFamily     string `validate:"required"`
	FontSizeBase   string `validate:"required"`
	LineHeightBase string `validate:"required"`
	Headings       []HeadingStyle
	Body           []StyleProperty
}

// Spacing groups the spacing design tokens: a base unit, a positional
// scale, and named custom values.
type Spacing struct {
	Unit   string `validate:"required"`
	Scale  []string
	Custom []StyleProperty
}

// Breakpoints holds the six fixed responsive-layout thresholds.
type Breakpoints struct {
	XS  string `yaml:"xs" validate:"required"`
	SM  string `yaml:"sm" validate:"required"`
	MD  string `yaml:"md" validate:"required"`
	LG  string `yaml:"lg" validate:"required"`
	XL  string `yaml:"xl" validate:"required"`
	XXL string `yaml:"xxl" validate:"required"`
}

// Entries returns the breakpoints in the fixed xs..xxl order.
func (b Breakpoints) Entries() []StyleProperty {
	return []StyleProperty{
		{Name: "xs", Value: b.XS},
		{Name: "sm", Value: b.SM},
		{Name: "md", Value: b.MD},
		{Name: "lg", Value: b.LG},
		{Name: "xl", Value: b.XL},
		{Name: "xxl", Value: b.XXL},
	}
}

// SchemePalette pairs a color scheme with its palette. Themes keep their
// schemes as an ordered slice so export follows the declared order.
type SchemePalette struct {
	Scheme  ColorScheme
	Palette ColorPalette
}

// Theme is a named design-token set. A Theme is only ever constructed by
// Parse; a validation failure never yields a partially populated Theme.
type Theme struct {
	Name         string          `validate:"required,theme_name"`
	ColorSchemes []SchemePalette `validate:"dive"`
	Typography   Typography
	Spacing      Spacing
	Breakpoints  Breakpoints
	Custom       map[string]any
}
