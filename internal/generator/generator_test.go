package generator

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uiforge/uiforge/internal/adapter"
	"github.com/uiforge/uiforge/internal/component"
	forgeerrors "github.com/uiforge/uiforge/pkg/errors"
)

func sampleDefs() []component.Definition {
	return []component.Definition{
		{
			Name:   "Button",
			Props:  map[string]string{"label": "string"},
			Styles: map[string]string{"color": "red"},
		},
		{
			Name:   "Card",
			Styles: map[string]string{"padding": "16px"},
		},
	}
}

func TestGenerateComponentDelegates(t *testing.T) {
	defs := sampleDefs()

	out, err := GenerateComponent(&defs[0], adapter.FrameworkReact)
	require.NoError(t, err)
	assert.Contains(t, out, "export const Button")
}

func TestGenerateComponentUnsupportedTarget(t *testing.T) {
	defs := sampleDefs()

	out, err := GenerateComponent(&defs[0], adapter.Framework("angular"))
	require.Error(t, err)
	assert.Empty(t, out)

	var target *forgeerrors.UnsupportedTargetError
	assert.True(t, errors.As(err, &target))
}

func TestGenerateProjectFilenames(t *testing.T) {
	tests := []struct {
		framework adapter.Framework
		ext       string
		config    string
	}{
		{adapter.FrameworkReact, "tsx", "tsconfig.json"},
		{adapter.FrameworkVue, "vue", "vue.config.js"},
		{adapter.FrameworkSvelte, "svelte", "svelte.config.js"},
		{adapter.FrameworkNextJS, "tsx", "next.config.js"},
	}

	for _, tt := range tests {
		t.Run(tt.framework.String(), func(t *testing.T) {
			files, err := GenerateProject(sampleDefs(), tt.framework)
			require.NoError(t, err)

			assert.Contains(t, files, "Button."+tt.ext)
			assert.Contains(t, files, "Card."+tt.ext)
			assert.Contains(t, files, tt.config)
			assert.Len(t, files, 3)
		})
	}
}

func TestGenerateProjectScaffoldIsConstant(t *testing.T) {
	withDefs, err := GenerateProject(sampleDefs(), adapter.FrameworkReact)
	require.NoError(t, err)

	withoutDefs, err := GenerateProject(nil, adapter.FrameworkReact)
	require.NoError(t, err)

	assert.Equal(t, withoutDefs["tsconfig.json"], withDefs["tsconfig.json"])
	assert.Contains(t, withDefs["tsconfig.json"], `"jsx": "react-jsx"`)
}

func TestGenerateProjectUnsupportedTarget(t *testing.T) {
	files, err := GenerateProject(sampleDefs(), adapter.Framework("flutter"))
	require.Error(t, err)
	assert.Nil(t, files)
}

func TestExtensionTable(t *testing.T) {
	assert.Equal(t, "tsx", Extension(adapter.FrameworkReact))
	assert.Equal(t, "vue", Extension(adapter.FrameworkVue))
	assert.Equal(t, "svelte", Extension(adapter.FrameworkSvelte))
	assert.Equal(t, "tsx", Extension(adapter.FrameworkNextJS))
	assert.Equal(t, "tsx", Extension(adapter.Framework("flutter")))
}
