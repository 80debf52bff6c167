package component

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	forgeerrors "github.com/uiforge/uiforge/pkg/errors"
)

func writeDefinitionFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "components.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadDefinitions(t *testing.T) {
	path := writeDefinitionFile(t, `components:
  - name: Button
    props:
      label: string
    styles:
      color: red
  - name: Card
    children:
      - name: CardHeader
        styles:
          font-weight: bold
`)

	defs, err := LoadDefinitions(path)
	require.NoError(t, err)
	require.Len(t, defs, 2)

	assert.Equal(t, "Button", defs[0].Name)
	assert.Equal(t, map[string]string{"label": "string"}, defs[0].Props)
	assert.Equal(t, map[string]string{"color": "red"}, defs[0].Styles)

	require.Len(t, defs[1].Children, 1)
	assert.Equal(t, "CardHeader", defs[1].Children[0].Name)
}

func TestLoadDefinitionsMissingFile(t *testing.T) {
	_, err := LoadDefinitions(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)

	var perr *forgeerrors.ParseError
	assert.True(t, errors.As(err, &perr))
}

func TestLoadDefinitionsMalformedDocument(t *testing.T) {
	path := writeDefinitionFile(t, "components: [unclosed")

	_, err := LoadDefinitions(path)
	require.Error(t, err)

	var perr *forgeerrors.ParseError
	assert.True(t, errors.As(err, &perr))
}

func TestLoadDefinitionsEmpty(t *testing.T) {
	path := writeDefinitionFile(t, "components: []\n")

	_, err := LoadDefinitions(path)
	require.Error(t, err)

	var verr *forgeerrors.ValidationError
	assert.True(t, errors.As(err, &verr))
}

func TestValidateDefinitionsNameRules(t *testing.T) {
	tests := []struct {
		name    string
		defName string
		wantErr bool
	}{
		{"valid simple", "Button", false},
		{"valid with digits", "Card2", false},
		{"valid with underscore", "Nav_Bar", false},
		{"empty", "", true},
		{"leading digit", "2Cool", true},
		{"hyphenated", "nav-bar", true},
		{"spaces", "Nav Bar", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDefinitions([]Definition{{Name: tt.defName}})
			if tt.wantErr {
				require.Error(t, err)
				var verr *forgeerrors.ValidationError
				assert.True(t, errors.As(err, &verr))
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestValidateDefinitionsChildNames(t *testing.T) {
	err := ValidateDefinitions([]Definition{{
		Name:     "Card",
		Children: []Definition{{Name: "bad name"}},
	}})
	require.Error(t, err)
}

func TestValidateDefinitionsDepthBound(t *testing.T) {
	leaf := Definition{Name: "Leaf"}
	node := leaf
	for i := 0; i < MaxDepth; i++ {
		node = Definition{Name: "Wrapper", Children: []Definition{node}}
	}

	err := ValidateDefinitions([]Definition{node})
	require.Error(t, err)

	var verr *forgeerrors.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, verr.Message, "nesting")
}

func TestValidateDefinitionsDepthWithinBound(t *testing.T) {
	node := Definition{Name: "Leaf"}
	for i := 0; i < 10; i++ {
		node = Definition{Name: "Wrapper", Children: []Definition{node}}
	}

	require.NoError(t, ValidateDefinitions([]Definition{node}))
	assert.Equal(t, "Wrapper", node.Name)
}
