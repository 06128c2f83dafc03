package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func testEnv(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("NORTHFIELD_CONFIG", "")
	t.Setenv("NORTHFIELD_DATABASE_PATH", filepath.Join(dir, "data", "northfield.db"))
	t.Setenv("NORTHFIELD_DEMO_LATENCY", "0s")
	return dir
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	a := newApp(&out, &errOut)
	err := a.execute(context.Background(), args)
	return out.String(), err
}

func decodeJSON(t *testing.T, s string) pageOutput {
	t.Helper()
	var p pageOutput
	require.NoError(t, json.Unmarshal([]byte(s), &p))
	return p
}

func rowIDs(p pageOutput) []string {
	var ids []string
	for _, r := range p.Rows {
		ids = append(ids, r["id"].(string))
	}
	return ids
}

func TestViewDemoJSON(t *testing.T) {
	testEnv(t)
	out, err := run(t, "--demo", "view", "executions", "-o", "json")
	require.NoError(t, err)
	p := decodeJSON(t, out)
	assert.Equal(t, "executions", p.View)
	assert.Equal(t, 4, p.Total)
	assert.Equal(t, 1, p.Pages)
	assert.Equal(t, []string{"GOV-8821", "GOV-8820", "GOV-8819", "GOV-8818"}, rowIDs(p))
}

func TestViewSortAndPageYAML(t *testing.T) {
	testEnv(t)
	out, err := run(t, "--demo", "view", "executions", "--sort", "id", "--page-size", "3", "--page", "2", "-o", "yaml")
	require.NoError(t, err)
	var p pageOutput
	require.NoError(t, yaml.Unmarshal([]byte(out), &p))
	assert.Equal(t, 2, p.Page)
	assert.Equal(t, 2, p.Pages)
	assert.Equal(t, []string{"GOV-8821"}, rowIDs(p))

	out, err = run(t, "--demo", "view", "executions", "--sort", "id", "--desc", "--page-size", "3", "-o", "json")
	require.NoError(t, err)
	assert.Equal(t, []string{"GOV-8821", "GOV-8820", "GOV-8819"}, rowIDs(decodeJSON(t, out)))
}

func TestViewFilterAndSearch(t *testing.T) {
	testEnv(t)
	out, err := run(t, "--demo", "view", "executions", "--filter", "status=CLEARED", "-o", "json")
	require.NoError(t, err)
	assert.Equal(t, []string{"GOV-8821", "GOV-8818"}, rowIDs(decodeJSON(t, out)))

	out, err = run(t, "--demo", "view", "entities", "--search", "sentinel", "-o", "json")
	require.NoError(t, err)
	assert.Equal(t, []string{"BOT-991"}, rowIDs(decodeJSON(t, out)))
}

func TestViewPastLastPageIsEmpty(t *testing.T) {
	testEnv(t)
	out, err := run(t, "--demo", "view", "policies", "--page", "9", "-o", "json")
	require.NoError(t, err)
	p := decodeJSON(t, out)
	assert.Empty(t, p.Rows)
	assert.Equal(t, 3, p.Total)

	out, err = run(t, "--demo", "view", "executions", "--page", "3689348814741910324", "-o", "json")
	require.NoError(t, err)
	assert.Empty(t, decodeJSON(t, out).Rows)
}

func TestViewTableOutput(t *testing.T) {
	testEnv(t)
	out, err := run(t, "--demo", "view", "executions", "--sort", "type")
	require.NoError(t, err)
	assert.Contains(t, out, "Type ▲")
	assert.Contains(t, out, "GOV-8819")
	assert.Contains(t, out, "Page 1 of 1")
}

func TestViewRejectsBadInput(t *testing.T) {
	testEnv(t)
	cases := map[string][]string{
		"unknown view":    {"--demo", "view", "nope"},
		"missing column":  {"--demo", "view", "executions", "--sort", "nope"},
		"unsortable":      {"--demo", "view", "executions", "--sort", "summary"},
		"malformed":       {"--demo", "view", "executions", "--filter", "status"},
		"bad page":        {"--demo", "view", "executions", "--page", "0"},
		"unknown output":  {"--demo", "view", "executions", "-o", "xml"},
		"missing view id": {"--demo", "view"},
	}
	for name, args := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := run(t, args...)
			assert.Error(t, err)
		})
	}
}

func TestSeedAndResetDatabase(t *testing.T) {
	testEnv(t)
	out, err := run(t, "seed", "--synthetic", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "3 synthetic")

	out, err = run(t, "view", "executions", "--page-size", "50", "-o", "json")
	require.NoError(t, err)
	assert.Equal(t, 7, decodeJSON(t, out).Total)

	out, err = run(t, "reset")
	require.NoError(t, err)
	assert.Contains(t, out, "database cleared")

	// the next open restores the sample records
	out, err = run(t, "view", "executions", "-o", "json")
	require.NoError(t, err)
	assert.Equal(t, 4, decodeJSON(t, out).Total)
}

func TestMutationsRefuseDemo(t *testing.T) {
	testEnv(t)
	_, err := run(t, "--demo", "seed")
	assert.True(t, errors.Is(err, errDemoMode))
	_, err = run(t, "--demo", "reset")
	assert.True(t, errors.Is(err, errDemoMode))
}

func TestViewUsesConfiguredTimezone(t *testing.T) {
	testEnv(t)
	out, err := run(t, "--demo", "view", "executions")
	require.NoError(t, err)
	assert.Contains(t, out, "2024-12-10 09:15")

	t.Setenv("NORTHFIELD_UI_TIMEZONE", "Asia/Tokyo")
	out, err = run(t, "--demo", "view", "executions")
	require.NoError(t, err)
	assert.Contains(t, out, "2024-12-10 18:15")

	t.Setenv("NORTHFIELD_UI_TIMEZONE", "Nowhere/Land")
	_, err = run(t, "--demo", "view", "executions")
	assert.ErrorContains(t, err, "ui.timezone")
}

func TestConfigInit(t *testing.T) {
	home := testEnv(t)
	path := filepath.Join(home, ".config", "northfield", "config.toml")

	out, err := run(t, "config", "path")
	require.NoError(t, err)
	assert.Equal(t, path+"\n", out)

	out, err = run(t, "config", "init", "--timezone", "Asia/Tokyo")
	require.NoError(t, err)
	assert.Equal(t, path+"\n", out)
	assert.FileExists(t, path)

	_, err = run(t, "config", "init")
	assert.ErrorContains(t, err, "already exists")
	_, err = run(t, "config", "init", "--force", "--timezone", "Mars/Base")
	assert.Error(t, err)

	out, err = run(t, "--demo", "view", "executions")
	require.NoError(t, err)
	assert.Contains(t, out, "2024-12-10 18:15")
}
