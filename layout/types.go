package layout

// 该文件定义画布（显示列表）与基本图元，供截图合成、渲染与调试 JSON 共用。

// Canvas 是按绘制顺序记录图元的显示列表，单位为像素，原点位于左上角。
// 图元在渲染阶段才会光栅化，合成阶段只追加记录。
type Canvas struct {
	Width      int       `json:"width"`
	Height     int       `json:"height"`
	Background Color     `json:"background"`
	Elements   []Element `json:"elements"`
}

// NewCanvas 创建一块以 background 填充的空画布。
func NewCanvas(width, height int, background Color) *Canvas {
	return &Canvas{Width: width, Height: height, Background: background}
}

// Color 采用 0-255 的 RGBA 数值（非预乘）。
type Color struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
	A uint8 `json:"a"`
}

// RGB 返回不透明颜色。
func RGB(r, g, b uint8) Color { return Color{R: r, G: g, B: b, A: 255} }

// RGBA 返回带透明度的颜色，用于半透明填充。
func RGBA(r, g, b, a uint8) Color { return Color{R: r, G: g, B: b, A: a} }

// Opaque 表示颜色是否完全不透明。
func (c Color) Opaque() bool { return c.A == 255 }

// Point 表示一个像素坐标。
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Bounds 描述左上角 (X0,Y0) 到右下角 (X1,Y1) 的矩形区域。
type Bounds struct {
	X0 int `json:"x0"`
	Y0 int `json:"y0"`
	X1 int `json:"x1"`
	Y1 int `json:"y1"`
}

// Box 是 Bounds 的简写构造函数。
func Box(x0, y0, x1, y1 int) Bounds { return Bounds{X0: x0, Y0: y0, X1: x1, Y1: y1} }

func (b Bounds) Width() int  { return b.X1 - b.X0 }
func (b Bounds) Height() int { return b.Y1 - b.Y0 }

// Translate 返回平移 (dx, dy) 之后的区域。
func (b Bounds) Translate(dx, dy int) Bounds {
	return Bounds{X0: b.X0 + dx, Y0: b.Y0 + dy, X1: b.X1 + dx, Y1: b.Y1 + dy}
}

// Within 判断区域是否完全落在 w×h 的画布内。
func (b Bounds) Within(w, h int) bool {
	return b.X0 >= 0 && b.Y0 >= 0 && b.X1 <= w && b.Y1 <= h
}

// Kind 标识图元类型。
type Kind string

const (
	KindRect        Kind = "rect"
	KindRoundedRect Kind = "rounded-rect"
	KindEllipse     Kind = "ellipse"
	KindLine        Kind = "line"
	KindText        Kind = "text"
	KindGroup       Kind = "group"
)

// FontRole 是字体的语义角色，具体字号与字重由调色板登记表决定。
type FontRole string

const (
	FontLarge FontRole = "large" // 28pt bold
	FontTitle FontRole = "title" // 22pt bold
	FontBody  FontRole = "body"  // 18pt
	FontBold  FontRole = "bold"  // 18pt bold
	FontSmall FontRole = "small" // 14pt
	FontTiny  FontRole = "tiny"  // 11pt
)

// FontRoles 按固定顺序列出所有字体角色。
var FontRoles = []FontRole{FontLarge, FontTitle, FontBody, FontBold, FontSmall, FontTiny}

// Element 是显示列表中的单个图元。
//   - 矩形/圆角矩形/椭圆：Bounds 为外接框，Fill 必填，Stroke 为可选描边。
//   - 直线：Bounds 的 (X0,Y0)-(X1,Y1) 为两个端点，颜色记录在 Stroke。
//   - 文本：Bounds 的 (X0,Y0) 为左上角锚点，颜色记录在 Fill。
//   - 分组：Group 为子画布，整体平移到 (X0,Y0)。
type Element struct {
	Kind   Kind     `json:"kind"`
	Bounds Bounds   `json:"bounds"`
	Fill   *Color   `json:"fill,omitempty"`
	Stroke *Color   `json:"stroke,omitempty"`
	Radius int      `json:"radius,omitempty"`
	Text   string   `json:"text,omitempty"`
	Font   FontRole `json:"font,omitempty"`
	Group  *Canvas  `json:"group,omitempty"`
}

// Walk 按绘制顺序遍历所有图元（含分组内的子图元），并传入换算到顶层画布的绝对坐标。
// 分组图元本身也会被访问，随后才是其子图元。
func (c *Canvas) Walk(fn func(e Element, abs Bounds)) {
	c.walk(0, 0, fn)
}

func (c *Canvas) walk(dx, dy int, fn func(e Element, abs Bounds)) {
	for _, e := range c.Elements {
		abs := e.Bounds.Translate(dx, dy)
		fn(e, abs)
		if e.Kind == KindGroup && e.Group != nil {
			e.Group.walk(abs.X0, abs.Y0, fn)
		}
	}
}

// Texts 返回画布上所有文本内容（按绘制顺序）。
func (c *Canvas) Texts() []string {
	var out []string
	c.Walk(func(e Element, _ Bounds) {
		if e.Kind == KindText {
			out = append(out, e.Text)
		}
	})
	return out
}
