package layout

// 基本绘制原语：只向显示列表追加图元，不做裁剪也不返回错误。
// 超出画布的坐标在光栅化时被静默裁剪，合成方负责给出合法坐标。

func (c *Canvas) add(e Element) { c.Elements = append(c.Elements, e) }

func colorRef(col Color) *Color { return &col }

// RoundedRect 绘制填充的圆角矩形。
func (c *Canvas) RoundedRect(b Bounds, fill Color, radius int) {
	c.add(Element{Kind: KindRoundedRect, Bounds: b, Fill: colorRef(fill), Radius: radius})
}

// OutlinedRoundedRect 绘制带描边的圆角矩形，描边覆盖在填充之上。
func (c *Canvas) OutlinedRoundedRect(b Bounds, fill Color, radius int, outline Color) {
	c.add(Element{Kind: KindRoundedRect, Bounds: b, Fill: colorRef(fill), Stroke: colorRef(outline), Radius: radius})
}

// Rect 绘制填充的直角矩形。
func (c *Canvas) Rect(b Bounds, fill Color) {
	c.add(Element{Kind: KindRect, Bounds: b, Fill: colorRef(fill)})
}

// Ellipse 绘制内切于 b 的填充椭圆。
func (c *Canvas) Ellipse(b Bounds, fill Color) {
	c.add(Element{Kind: KindEllipse, Bounds: b, Fill: colorRef(fill)})
}

// Line 绘制 1 像素宽的线段。
func (c *Canvas) Line(from, to Point, col Color) {
	c.add(Element{Kind: KindLine, Bounds: Bounds{X0: from.X, Y0: from.Y, X1: to.X, Y1: to.Y}, Stroke: colorRef(col)})
}

// Text 在 at 处绘制左对齐、顶部对齐的单行文本，不换行也不截断。
func (c *Canvas) Text(at Point, s string, col Color, font FontRole) {
	c.add(Element{Kind: KindText, Bounds: Bounds{X0: at.X, Y0: at.Y, X1: at.X, Y1: at.Y}, Fill: colorRef(col), Text: s, Font: font})
}

// Place 把子画布整体放到 at 处，子画布使用自己的局部坐标。
func (c *Canvas) Place(at Point, child *Canvas) {
	c.add(Element{
		Kind:   KindGroup,
		Bounds: Bounds{X0: at.X, Y0: at.Y, X1: at.X + child.Width, Y1: at.Y + child.Height},
		Group:  child,
	})
}
