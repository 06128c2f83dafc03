package prefs

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestViewsRoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())

	empty, err := LoadViews()
	require.NoError(t, err)
	require.Equal(t, ViewPrefs{}, empty)

	in := ViewPrefs{LastView: "audit", PageSizes: map[string]int{"executions": 3}}
	require.NoError(t, SaveViews(in))

	out, err := LoadViews()
	require.NoError(t, err)
	require.Equal(t, in, out)
	require.Equal(t, 3, out.PageSize("executions", 5))
	require.Equal(t, 5, out.PageSize("audit", 5))
}
