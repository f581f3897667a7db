package canvasrenderer

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"log"
	"os"
	"path/filepath"
	"sync"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers/rasterizer"

	"github.com/parkhub/parkshots/fonts"
	"github.com/parkhub/parkshots/layout"
	"github.com/parkhub/parkshots/palette"
	"github.com/parkhub/parkshots/renderer"
)

// Preferred host fonts, looked up inside Options.FontDir.
const (
	DefaultFontDir     = "/usr/share/fonts/truetype/dejavu"
	preferredRegular   = "DejaVuSans.ttf"
	preferredBold      = "DejaVuSans-Bold.ttf"
	strokeWidth        = 1.0
	fallbackFamilyName = "parkshots-fallback"
)

// Renderer rasterises layout canvases via github.com/tdewolff/canvas.
type Renderer struct {
	family   *canvas.FontFamily
	fellBack bool

	// tdewolff/canvas 的描边与路径求交使用包级状态，光栅化必须串行
	rasterMu sync.Mutex

	faceMu sync.Mutex
	faces  map[faceKey]*canvas.FontFace
}

var (
	_ renderer.Renderer = (*Renderer)(nil)
	_ renderer.Measurer = (*Renderer)(nil)
)

type faceKey struct {
	role  layout.FontRole
	color layout.Color
}

// Options configures the canvas renderer.
type Options struct {
	// FontDir is searched for DejaVuSans.ttf and DejaVuSans-Bold.ttf.
	FontDir string
	// Fonts overrides individual font files; relative paths resolve against FontDir.
	Fonts palette.FontSources
	// Logger receives the one-time fallback notice. Defaults to log.Default().
	Logger *log.Logger
}

// NewRenderer creates a renderer that loads the preferred fonts from fontDir.
func NewRenderer(fontDir string) (*Renderer, error) {
	return NewRendererWithOptions(Options{FontDir: fontDir})
}

// NewRendererWithOptions resolves the font family once. A missing or broken
// host font switches every role to the built-in Go font family; only a
// failure of the built-in fonts themselves is returned as an error.
func NewRendererWithOptions(opts Options) (*Renderer, error) {
	if opts.FontDir == "" {
		opts.FontDir = DefaultFontDir
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	r := &Renderer{faces: map[faceKey]*canvas.FontFace{}}
	family, err := loadHostFamily(opts)
	if err != nil {
		logger.Printf("使用内置回退字体: %v", err)
		family, err = loadFallbackFamily()
		if err != nil {
			return nil, err
		}
		r.fellBack = true
	}
	r.family = family
	return r, nil
}

// FellBack reports whether the built-in fallback family is in use.
func (r *Renderer) FellBack() bool { return r.fellBack }

// Render paints the background and then every element in order. Concurrent
// calls are serialised.
func (r *Renderer) Render(lc *layout.Canvas) (*image.RGBA, error) {
	if lc == nil {
		return nil, errors.New("画布为空")
	}
	if lc.Width <= 0 || lc.Height <= 0 {
		return nil, fmt.Errorf("画布尺寸无效: %dx%d", lc.Width, lc.Height)
	}

	r.rasterMu.Lock()
	defer r.rasterMu.Unlock()

	c := canvas.New(layout.PxToMm(float64(lc.Width)), layout.PxToMm(float64(lc.Height)))
	ctx := canvas.NewContext(c)
	ctx.SetCoordSystem(canvas.CartesianIV) // 使坐标与合成阶段保持左上角为原点

	r.drawCanvas(ctx, lc, 0, 0)
	return rasterizer.Draw(c, canvas.DPMM(layout.PixelsPerMM), canvas.DefaultColorSpace), nil
}

// TextWidth returns the advance width of s in pixels.
func (r *Renderer) TextWidth(role layout.FontRole, s string) float64 {
	face := r.face(role, layout.RGB(0, 0, 0))
	return face.TextWidth(s) * layout.PixelsPerMM
}

func (r *Renderer) drawCanvas(ctx *canvas.Context, lc *layout.Canvas, dx, dy int) {
	// 背景全透明时不绘制，分组子画布据此保留父画布内容
	if lc.Background.A > 0 {
		r.fillPath(ctx, layout.Box(dx, dy, dx+lc.Width, dy+lc.Height), lc.Background, nil,
			canvas.Rectangle(px(lc.Width), px(lc.Height)))
	}
	for _, e := range lc.Elements {
		b := e.Bounds.Translate(dx, dy)
		switch e.Kind {
		case layout.KindRect:
			r.fillPath(ctx, b, deref(e.Fill), e.Stroke, canvas.Rectangle(px(b.Width()), px(b.Height())))
		case layout.KindRoundedRect:
			r.fillPath(ctx, b, deref(e.Fill), e.Stroke, canvas.RoundedRectangle(px(b.Width()), px(b.Height()), px(clampRadius(e.Radius, b))))
		case layout.KindEllipse:
			r.drawEllipse(ctx, b, deref(e.Fill))
		case layout.KindLine:
			r.drawLine(ctx, b, deref(e.Stroke))
		case layout.KindText:
			r.drawText(ctx, b, e.Text, deref(e.Fill), e.Font)
		case layout.KindGroup:
			if e.Group != nil {
				r.drawCanvas(ctx, e.Group, b.X0, b.Y0)
			}
		}
	}
}

func (r *Renderer) fillPath(ctx *canvas.Context, b layout.Bounds, fill layout.Color, stroke *layout.Color, p *canvas.Path) {
	ctx.SetFillColor(colorFromLayout(fill))
	if stroke != nil {
		ctx.SetStrokeColor(colorFromLayout(*stroke))
		ctx.SetStrokeWidth(strokeWidth)
	} else {
		ctx.SetStrokeColor(color.RGBA{0, 0, 0, 0})
	}
	ctx.DrawPath(px(b.X0), px(b.Y0), p)
}

func (r *Renderer) drawEllipse(ctx *canvas.Context, b layout.Bounds, fill layout.Color) {
	rx, ry := px(b.Width())/2, px(b.Height())/2
	ctx.SetFillColor(colorFromLayout(fill))
	ctx.SetStrokeColor(color.RGBA{0, 0, 0, 0})
	// Ellipse 以原点为圆心
	ctx.DrawPath(px(b.X0)+rx, px(b.Y0)+ry, canvas.Ellipse(rx, ry))
}

func (r *Renderer) drawLine(ctx *canvas.Context, b layout.Bounds, col layout.Color) {
	ctx.SetFillColor(color.RGBA{0, 0, 0, 0})
	ctx.SetStrokeColor(colorFromLayout(col))
	ctx.SetStrokeWidth(strokeWidth)
	p := &canvas.Path{}
	p.MoveTo(0, 0)
	p.LineTo(px(b.X1-b.X0), px(b.Y1-b.Y0))
	ctx.DrawPath(px(b.X0), px(b.Y0), p)
}

func (r *Renderer) drawText(ctx *canvas.Context, b layout.Bounds, content string, col layout.Color, role layout.FontRole) {
	if content == "" {
		return
	}
	face := r.face(role, col)
	// 基线位置：锚点（行顶部）加上字体上升部
	baseline := px(b.Y0) + face.Metrics().Ascent
	ctx.DrawText(px(b.X0), baseline, canvas.NewTextLine(face, content, canvas.Left))
}

func (r *Renderer) face(role layout.FontRole, col layout.Color) *canvas.FontFace {
	key := faceKey{role: role, color: col}
	r.faceMu.Lock()
	defer r.faceMu.Unlock()

	if f, ok := r.faces[key]; ok {
		return f
	}
	spec := palette.Spec(role)
	style := canvas.FontRegular
	if spec.Bold {
		style = canvas.FontBold
	}
	f := r.family.Face(layout.PxToPt(spec.Size), colorFromLayout(col), style, canvas.FontNormal)
	r.faces[key] = f
	return f
}

func loadHostFamily(opts Options) (*canvas.FontFamily, error) {
	regular := resolveFontPath(opts.FontDir, opts.Fonts.Regular, preferredRegular)
	bold := resolveFontPath(opts.FontDir, opts.Fonts.Bold, preferredBold)

	family := canvas.NewFontFamily("parkshots")
	if err := loadFontFile(family, regular, canvas.FontRegular); err != nil {
		return nil, err
	}
	if err := loadFontFile(family, bold, canvas.FontBold); err != nil {
		return nil, err
	}
	return family, nil
}

func loadFontFile(family *canvas.FontFamily, path string, style canvas.FontStyle) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("读取字体 %s 失败: %w", path, err)
	}
	if err := family.LoadFont(data, 0, style); err != nil {
		return fmt.Errorf("解析字体 %s 失败: %w", path, err)
	}
	return nil
}

func loadFallbackFamily() (*canvas.FontFamily, error) {
	family := canvas.NewFontFamily(fallbackFamilyName)
	for name, style := range map[string]canvas.FontStyle{fonts.Regular: canvas.FontRegular, fonts.Bold: canvas.FontBold} {
		data, err := fonts.Load(name)
		if err != nil {
			return nil, err
		}
		if err := family.LoadFont(data, 0, style); err != nil {
			return nil, fmt.Errorf("加载内置字体 %s 失败: %w", name, err)
		}
	}
	return family, nil
}

func resolveFontPath(dir, override, preferred string) string {
	if override == "" {
		return filepath.Join(dir, preferred)
	}
	if filepath.IsAbs(override) {
		return override
	}
	return filepath.Join(dir, override)
}

func clampRadius(radius int, b layout.Bounds) int {
	limit := min(b.Width(), b.Height()) / 2
	return max(0, min(radius, limit))
}

func deref(c *layout.Color) layout.Color {
	if c == nil {
		return layout.Color{}
	}
	return *c
}

func px(v int) float64 { return layout.PxToMm(float64(v)) }

func colorFromLayout(c layout.Color) color.Color {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}
