package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uiforge/uiforge/internal/logger"
)

func testRootCmd(t *testing.T) (*cobra.Command, *bytes.Buffer) {
	t.Helper()

	log, err := logger.New(logger.Options{Level: "error", Writer: io.Discard})
	require.NoError(t, err)

	root := newRootCmd(log)
	buf := &bytes.Buffer{}
	root.SetOut(buf)
	root.SetErr(buf)

	return root, buf
}

func run(root *cobra.Command, args ...string) error {
	root.SetArgs(args)
	return root.Execute()
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

const buttonDefs = `components:
  - name: Button
    props:
      label: string
    styles:
      color: red
`

const defaultTheme = `name: default
color_schemes:
  light:
    primary: "#000"
    secondary: "#666"
    accent: "#0af"
    background: "#fff"
    text: "#111"
    error: "#f00"
    warning: "#fa0"
    success: "#0a0"
    info: "#09f"
typography:
  font_family: Inter
  font_size_base: 16px
  line_height_base: "1.5"
  headings:
    h1:
      font-size: 2rem
  body:
    font-size: 1rem
spacing:
  unit: 8px
  scale: [4px, 8px]
  custom: {}
breakpoints:
  xs: "0"
  sm: 576px
  md: 768px
  lg: 992px
  xl: 1200px
  xxl: 1400px
`

func TestVersionCommandOutputsBuildInfo(t *testing.T) {
	root, buf := testRootCmd(t)

	require.NoError(t, run(root, "version"))
	assert.Contains(t, buf.String(), "UIForge")
}

func TestGenerateCommandWritesComponent(t *testing.T) {
	dir := t.TempDir()
	defsPath := writeFile(t, dir, "defs.yaml", buttonDefs)

	root, buf := testRootCmd(t)
	require.NoError(t, run(root, "generate", "-f", defsPath, "-t", "react"))

	out := buf.String()
	assert.Contains(t, out, "export const Button")
	assert.Contains(t, out, "color: red;")
}

func TestGenerateCommandUnsupportedTarget(t *testing.T) {
	dir := t.TempDir()
	defsPath := writeFile(t, dir, "defs.yaml", buttonDefs)

	root, _ := testRootCmd(t)
	err := run(root, "generate", "-f", defsPath, "-t", "angular")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported framework")
}

func TestScaffoldCommandWritesProject(t *testing.T) {
	dir := t.TempDir()
	defsPath := writeFile(t, dir, "defs.yaml", buttonDefs)
	outDir := filepath.Join(dir, "out")

	root, _ := testRootCmd(t)
	require.NoError(t, run(root, "scaffold", "-f", defsPath, "-t", "vue", "--out", outDir))

	component, err := os.ReadFile(filepath.Join(outDir, "Button.vue"))
	require.NoError(t, err)
	assert.Contains(t, string(component), "name: 'Button'")

	_, err = os.Stat(filepath.Join(outDir, "vue.config.js"))
	require.NoError(t, err)
}

func TestVerboseFlagEnablesDebugLogging(t *testing.T) {
	dir := t.TempDir()
	defsPath := writeFile(t, dir, "defs.yaml", buttonDefs)

	scaffold := func(t *testing.T, args ...string) string {
		t.Helper()

		logBuf := &bytes.Buffer{}
		log, err := logger.New(logger.Options{Level: "info", Writer: logBuf})
		require.NoError(t, err)

		root := newRootCmd(log)
		root.SetOut(io.Discard)
		root.SetErr(io.Discard)

		outDir := filepath.Join(t.TempDir(), "out")
		require.NoError(t, run(root, append(args, "-f", defsPath, "-t", "vue", "--out", outDir)...))
		return logBuf.String()
	}

	quiet := scaffold(t, "scaffold")
	assert.NotContains(t, quiet, "file written")

	verbose := scaffold(t, "scaffold", "-v")
	assert.Contains(t, verbose, "file written")
	assert.Contains(t, verbose, "Button.vue")
}

func TestThemeLifecycleCommands(t *testing.T) {
	dir := t.TempDir()
	payloadPath := writeFile(t, dir, "default.yaml", defaultTheme)
	themesDir := filepath.Join(dir, "themes")

	root, buf := testRootCmd(t)
	require.NoError(t, run(root, "theme", "--dir", themesDir, "create", "-f", payloadPath))
	assert.Contains(t, buf.String(), `Created theme "default"`)

	buf.Reset()
	require.NoError(t, run(root, "theme", "--dir", themesDir, "export", "default", "--format", "css"))
	assert.Contains(t, buf.String(), "--color-light-primary: #000;")

	buf.Reset()
	require.NoError(t, run(root, "theme", "--dir", themesDir, "list"))
	assert.Contains(t, buf.String(), "default")

	buf.Reset()
	require.NoError(t, run(root, "theme", "--dir", themesDir, "delete", "default"))

	buf.Reset()
	err := run(root, "theme", "--dir", themesDir, "export", "default", "--format", "css")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "theme not found")
}
