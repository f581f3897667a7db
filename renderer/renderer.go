package renderer

import (
	"image"

	"github.com/parkhub/parkshots/layout"
)

// Renderer 将画布显示列表光栅化为最终图像。
// 同一个 Renderer 可以被多个合成结果复用，实现需保证并发调用安全（可以内部串行化）。
type Renderer interface {
	Render(c *layout.Canvas) (*image.RGBA, error)
}

// Measurer 测量单行文本在给定字体角色下的像素宽度。
type Measurer interface {
	TextWidth(role layout.FontRole, s string) float64
}
