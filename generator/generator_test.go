package generator

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/png"
	"io"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/parkhub/parkshots/layout"
	canvasrenderer "github.com/parkhub/parkshots/renderer/canvas"
	"github.com/parkhub/parkshots/screens"
)

func testRenderer(t *testing.T) *canvasrenderer.Renderer {
	t.Helper()
	r, err := canvasrenderer.NewRendererWithOptions(canvasrenderer.Options{
		FontDir: t.TempDir(),
		Logger:  log.New(io.Discard, "", 0),
	})
	require.NoError(t, err)
	return r
}

func allFiles() []string {
	var files []string
	for _, s := range screens.Catalog() {
		files = append(files, s.File)
	}
	sort.Strings(files)
	return files
}

func listDir(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names
}

func readAll(t *testing.T, dir string) map[string][]byte {
	t.Helper()
	out := map[string][]byte{}
	for _, name := range listDir(t, dir) {
		data, err := os.ReadFile(filepath.Join(dir, name))
		require.NoError(t, err)
		out[name] = data
	}
	return out
}

func TestRunIntoFreshDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "docs", "screenshots")
	var progress bytes.Buffer

	paths, err := Run(context.Background(), Options{OutputDir: dir, Renderer: testRenderer(t), Progress: &progress})
	require.NoError(t, err)
	require.Len(t, paths, 9)
	require.Equal(t, allFiles(), listDir(t, dir))

	var wantProgress strings.Builder
	for _, s := range screens.Catalog() {
		wantProgress.WriteString("  " + s.File + "\n")
	}
	require.Equal(t, wantProgress.String(), progress.String())

	for _, p := range paths {
		f, err := os.Open(p)
		require.NoError(t, err)
		cfg, err := png.DecodeConfig(f)
		f.Close()
		require.NoError(t, err)
		require.Equal(t, screens.Width, cfg.Width, p)
		require.Equal(t, screens.Height, cfg.Height, p)
	}
}

func TestRunIsByteIdentical(t *testing.T) {
	r := testRenderer(t)
	first, second := t.TempDir(), t.TempDir()

	_, err := Run(context.Background(), Options{OutputDir: first, Renderer: r})
	require.NoError(t, err)
	_, err = Run(context.Background(), Options{OutputDir: second, Renderer: r})
	require.NoError(t, err)

	a, b := readAll(t, first), readAll(t, second)
	require.Len(t, a, 9)
	for name, data := range a {
		require.True(t, bytes.Equal(data, b[name]), "%s differs between runs", name)
	}
}

func TestParallelMatchesSequential(t *testing.T) {
	r := testRenderer(t)
	seq, par := t.TempDir(), t.TempDir()
	only := []string{"dashboard", "mobile", "dark-mode"}

	seqPaths, err := Run(context.Background(), Options{OutputDir: seq, Renderer: r, Screens: only})
	require.NoError(t, err)
	parPaths, err := Run(context.Background(), Options{OutputDir: par, Renderer: r, Screens: only, Workers: 3})
	require.NoError(t, err)

	require.Len(t, parPaths, 3)
	for i := range seqPaths {
		require.Equal(t, filepath.Base(seqPaths[i]), filepath.Base(parPaths[i]))
	}
	require.Equal(t, readAll(t, seq), readAll(t, par))
}

func TestSelect(t *testing.T) {
	got, err := Select([]string{"login", " welcome", ""})
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, "welcome", got[0].Name, "catalog order is kept")
	require.Equal(t, "login", got[1].Name)

	all, err := Select(nil)
	require.NoError(t, err)
	require.Len(t, all, 9)

	_, err = Select([]string{"settings"})
	require.ErrorIs(t, err, ErrUnknownScreen)
}

func TestUnknownScreenCreatesNothing(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	_, err := Run(context.Background(), Options{OutputDir: dir, Renderer: testRenderer(t), Screens: []string{"nope"}})
	require.ErrorIs(t, err, ErrUnknownScreen)
	_, statErr := os.Stat(dir)
	require.True(t, os.IsNotExist(statErr))
}

func TestUnwritableOutputDirectory(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	_, err := Run(context.Background(), Options{OutputDir: filepath.Join(blocker, "out"), Renderer: testRenderer(t)})
	require.Error(t, err)
}

type failingRenderer struct {
	inner  *canvasrenderer.Renderer
	failAt int
	calls  int
}

func (f *failingRenderer) Render(c *layout.Canvas) (*image.RGBA, error) {
	f.calls++
	if f.calls == f.failAt {
		return nil, errors.New("boom")
	}
	return f.inner.Render(c)
}

func TestFirstFailureAbortsRun(t *testing.T) {
	dir := t.TempDir()
	fr := &failingRenderer{inner: testRenderer(t), failAt: 3}

	_, err := Run(context.Background(), Options{OutputDir: dir, Renderer: fr})
	require.Error(t, err)
	require.Contains(t, err.Error(), "onboarding")
	require.Equal(t, 3, fr.calls, "no composer runs after the failure")
	require.Equal(t, []string{"login.png", "welcome.png"}, listDir(t, dir))
}

func TestCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Run(ctx, Options{OutputDir: t.TempDir(), Renderer: testRenderer(t)})
	require.ErrorIs(t, err, context.Canceled)
}

func TestDebugDump(t *testing.T) {
	out, debug := t.TempDir(), filepath.Join(t.TempDir(), "debug")
	_, err := Run(context.Background(), Options{OutputDir: out, DebugDir: debug, Renderer: testRenderer(t), Screens: []string{"admin"}})
	require.NoError(t, err)
	require.Equal(t, []string{"admin.json"}, listDir(t, debug))
	require.Equal(t, []string{"admin.png"}, listDir(t, out))
}

func TestDebugDirMustDifferFromOutput(t *testing.T) {
	out := t.TempDir()
	_, err := Run(context.Background(), Options{OutputDir: out, DebugDir: out + "/.", Renderer: testRenderer(t)})
	require.Error(t, err)
	require.Empty(t, listDir(t, out))
}

func TestRunRequiresRenderer(t *testing.T) {
	_, err := Run(context.Background(), Options{OutputDir: t.TempDir()})
	require.Error(t, err)
}
