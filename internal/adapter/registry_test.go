package adapter

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	forgeerrors "github.com/uiforge/uiforge/pkg/errors"
)

func TestLookupRegisteredFrameworks(t *testing.T) {
	for _, framework := range []Framework{FrameworkReact, FrameworkVue, FrameworkSvelte, FrameworkNextJS} {
		a, err := Lookup(framework)
		require.NoError(t, err)
		assert.NotNil(t, a)
	}
}

func TestLookupUnknownFramework(t *testing.T) {
	_, err := Lookup(Framework("angular"))
	require.Error(t, err)

	var target *forgeerrors.UnsupportedTargetError
	require.True(t, errors.As(err, &target))
	assert.Equal(t, "angular", target.Target)
}

func TestRegisterDuplicate(t *testing.T) {
	err := Register(FrameworkReact, &ReactAdapter{})
	require.Error(t, err)
}

func TestRegisterNil(t *testing.T) {
	err := Register(Framework("solid"), nil)
	require.Error(t, err)
}

func TestFrameworksSorted(t *testing.T) {
	frameworks := Frameworks()
	require.GreaterOrEqual(t, len(frameworks), 4)
	for i := 1; i < len(frameworks); i++ {
		assert.Less(t, frameworks[i-1], frameworks[i])
	}
}
