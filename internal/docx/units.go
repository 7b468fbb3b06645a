package docx

import "math"

// Pt is a length in typographic points.
type Pt float64

// Inch is a length in inches.
type Inch float64

// halfPoints converts to the half-point unit used by w:sz.
func (p Pt) halfPoints() int {
	return int(math.Round(float64(p) * 2))
}

// twips converts to twentieths of a point (w:spacing, w:ind).
func (p Pt) twips() int {
	return int(math.Round(float64(p) * 20))
}

// twips converts to twentieths of a point (w:tcW, w:gridCol, w:ind).
func (i Inch) twips() int {
	return int(math.Round(float64(i) * 1440))
}

// Page geometry for US Letter with one-inch margins.
const (
	pageWidthTwips  = 12240
	pageHeightTwips = 15840
	pageMarginTwips = 1440
)
