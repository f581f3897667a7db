// Package generator runs the screen catalog through a renderer and writes
// the resulting PNG files.
package generator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/parkhub/parkshots/layout"
	"github.com/parkhub/parkshots/output"
	"github.com/parkhub/parkshots/palette"
	"github.com/parkhub/parkshots/renderer"
	"github.com/parkhub/parkshots/screens"
)

// ErrUnknownScreen is returned when a screen filter names no catalog entry.
var ErrUnknownScreen = errors.New("unknown screen")

// Options configures a generation run.
type Options struct {
	OutputDir string
	// DebugDir, when set, receives one display-list JSON per screen.
	DebugDir string
	// Screens restricts the run to the named screens; empty means all.
	Screens []string
	// Workers > 1 composes and renders screens concurrently.
	Workers  int
	Palette  *palette.Palette
	Renderer renderer.Renderer
	// Progress receives one line per written file. May be nil.
	Progress io.Writer
}

// Select resolves screen names against the catalog, keeping catalog order.
func Select(names []string) ([]screens.Screen, error) {
	all := screens.Catalog()
	if len(names) == 0 {
		return all, nil
	}
	wanted := map[string]bool{}
	for _, n := range names {
		n = strings.TrimSpace(n)
		if n == "" {
			continue
		}
		if _, ok := screens.Lookup(n); !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownScreen, n)
		}
		wanted[n] = true
	}
	var out []screens.Screen
	for _, s := range all {
		if wanted[s.Name] {
			out = append(out, s)
		}
	}
	return out, nil
}

// Run generates the selected screens and returns the written file paths in
// catalog order. The first failure aborts the run.
func Run(ctx context.Context, opts Options) ([]string, error) {
	if opts.Renderer == nil {
		return nil, errors.New("renderer 不能为空")
	}
	if opts.Palette == nil {
		pal := palette.Default()
		opts.Palette = &pal
	}
	if opts.DebugDir != "" && filepath.Clean(opts.DebugDir) == filepath.Clean(opts.OutputDir) {
		return nil, errors.New("调试目录不能与输出目录相同")
	}
	selected, err := Select(opts.Screens)
	if err != nil {
		return nil, err
	}
	if err := output.EnsureDirectory(opts.OutputDir); err != nil {
		return nil, err
	}
	if opts.DebugDir != "" {
		if err := output.EnsureDirectory(opts.DebugDir); err != nil {
			return nil, fmt.Errorf("创建调试目录失败: %w", err)
		}
	}

	g := &run{opts: opts, paths: make([]string, len(selected))}
	if opts.Workers <= 1 {
		for i, s := range selected {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			if err := g.generate(i, s); err != nil {
				return nil, err
			}
		}
		return g.paths, nil
	}

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(opts.Workers)
	for i, s := range selected {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return g.generate(i, s)
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return g.paths, nil
}

type run struct {
	opts  Options
	paths []string

	progressMu sync.Mutex
}

func (g *run) generate(i int, s screens.Screen) error {
	c := s.Compose(g.opts.Palette)
	if g.opts.DebugDir != "" {
		if err := layout.WriteDebugJSON(c, filepath.Join(g.opts.DebugDir, s.Name+".json")); err != nil {
			return fmt.Errorf("输出调试 JSON 失败: %w", err)
		}
	}
	img, err := g.opts.Renderer.Render(c)
	if err != nil {
		return fmt.Errorf("渲染 %s 失败: %w", s.Name, err)
	}
	path, err := output.Save(g.opts.OutputDir, s.File, img)
	if err != nil {
		return err
	}
	g.paths[i] = path
	g.report(s.File)
	return nil
}

func (g *run) report(file string) {
	if g.opts.Progress == nil {
		return
	}
	g.progressMu.Lock()
	defer g.progressMu.Unlock()
	fmt.Fprintf(g.opts.Progress, "  %s\n", file)
}
