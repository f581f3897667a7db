package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/parkhub/parkshots/config"
	"github.com/parkhub/parkshots/generator"
	"github.com/parkhub/parkshots/palette"
	canvasrenderer "github.com/parkhub/parkshots/renderer/canvas"
	"github.com/parkhub/parkshots/screens"
)

func main() {
	configPath := flag.String("config", "", "TOML 配置文件路径")
	outDir := flag.String("out", config.DefaultOutputDir, "PNG 输出目录")
	fontDir := flag.String("fonts", "", "字体目录（默认 DejaVu 目录）")
	themeFile := flag.String("theme", "", "主题 DSL 文件路径")
	only := flag.String("only", "", "仅生成指定页面，逗号分隔")
	workers := flag.Int("workers", 1, "并发渲染数量")
	debugDir := flag.String("debug", "", "显示列表调试 JSON 输出目录")
	list := flag.Bool("list", false, "列出全部页面后退出")
	flag.Parse()

	if *list {
		printCatalog(os.Stdout)
		return
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("加载配置失败: %v", err)
	}
	// 仅显式传入的参数覆盖配置
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "out":
			cfg.Output.Dir = *outDir
		case "fonts":
			cfg.Fonts.Dir = *fontDir
		case "theme":
			cfg.Theme.File = *themeFile
		case "only":
			cfg.Render.Screens = splitList(*only)
		case "workers":
			cfg.Render.Workers = *workers
		case "debug":
			cfg.Output.DebugDir = *debugDir
		}
	})

	if err := run(context.Background(), cfg, os.Stdout, log.Default()); err != nil {
		log.Fatalf("生成截图失败: %v", err)
	}
}

// run 串联主题、字体、合成与输出。
func run(ctx context.Context, cfg config.Config, stdout io.Writer, logger *log.Logger) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("配置无效: %w", err)
	}

	pal := palette.Default()
	var fonts palette.FontSources
	if cfg.Theme.File != "" {
		th, err := palette.LoadTheme(cfg.Theme.File, pal)
		if err != nil {
			return fmt.Errorf("加载主题失败: %w", err)
		}
		pal, fonts = th.Palette, th.Fonts
	}

	r, err := canvasrenderer.NewRendererWithOptions(canvasrenderer.Options{
		FontDir: cfg.Fonts.Dir,
		Fonts:   fonts,
		Logger:  logger,
	})
	if err != nil {
		return fmt.Errorf("初始化渲染器失败: %w", err)
	}

	fmt.Fprintln(stdout, "Generating screenshots...")
	if _, err := generator.Run(ctx, generator.Options{
		OutputDir: cfg.Output.Dir,
		DebugDir:  cfg.Output.DebugDir,
		Screens:   cfg.Render.Screens,
		Workers:   cfg.Render.Workers,
		Palette:   &pal,
		Renderer:  r,
		Progress:  stdout,
	}); err != nil {
		return err
	}
	fmt.Fprintf(stdout, "Done! All screenshots saved to %s\n", cfg.Output.Dir)
	return nil
}

func printCatalog(w io.Writer) {
	for _, s := range screens.Catalog() {
		fmt.Fprintf(w, "%-12s %s\n", s.Name, s.File)
	}
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
