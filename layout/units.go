package layout

// This file defines the conversions between mockup pixels and the physical
// units used by the canvas backend.

// Conversion constants between pt and mm.
const (
	PtToMm = 0.352777
	MmToPt = 1.0 / PtToMm
)

// PixelsPerMM is the rasterisation density. One mockup pixel maps to one
// millimetre of canvas space, so literal pixel coordinates can be used as-is.
const PixelsPerMM = 1.0

// PxToMm converts a pixel length into canvas millimetres.
func PxToMm(px float64) float64 { return px / PixelsPerMM }

// PxToPt converts a pixel font size into points. Mockup font sizes are given
// in pixels (a 28px title), the font backend expects points.
func PxToPt(px float64) float64 { return PxToMm(px) * MmToPt }
