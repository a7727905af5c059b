package pdfstitch

import (
	"fmt"
	"log/slog"

	"github.com/wudi/pdfkit/ir/semantic"
)

// Option names recognized in a configuration's options lists.
const (
	OptionRotate90  = "rotate90"
	OptionRotate180 = "rotate180"
	OptionRotate270 = "rotate270"
	OptionFlipV     = "flipV"
	OptionFlipH     = "flipH"
	OptionRecursive = "recursive"
)

// transformKind is the closed set of page transformations an option name can
// map to. Unrecognized names map to kindUnknown, which warns and does nothing.
type transformKind int

const (
	kindUnknown transformKind = iota
	kindRotate90
	kindRotate180
	kindRotate270
	kindFlipV
	kindFlipH
	kindRecursive
)

// kindOf maps an option name to its transformation kind.
func kindOf(name string) transformKind {
	switch name {
	case OptionRotate90:
		return kindRotate90
	case OptionRotate180:
		return kindRotate180
	case OptionRotate270:
		return kindRotate270
	case OptionFlipV:
		return kindFlipV
	case OptionFlipH:
		return kindFlipH
	case OptionRecursive:
		return kindRecursive
	default:
		return kindUnknown
	}
}

// matrix is a PDF transformation matrix [a b c d e f], mapping the row vector
// [x y 1] to [a*x+c*y+e b*x+d*y+f 1].
type matrix [6]float64

var identity = matrix{1, 0, 0, 1, 0, 0}

// mul returns the matrix product m × n. Applying the product to a point is
// the same as applying m first, then n.
func mul(m, n matrix) matrix {
	return matrix{
		m[0]*n[0] + m[1]*n[2],
		m[0]*n[1] + m[1]*n[3],
		m[2]*n[0] + m[3]*n[2],
		m[2]*n[1] + m[3]*n[3],
		m[4]*n[0] + m[5]*n[2] + n[4],
		m[4]*n[1] + m[5]*n[3] + n[5],
	}
}

// apply maps the point (x, y) through m.
func (m matrix) apply(x, y float64) (float64, float64) {
	return m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]
}

// flipVertical mirrors along Y and shifts the page back into view.
func flipVertical(height float64) matrix {
	return matrix{1, 0, 0, -1, 0, height}
}

// flipHorizontal mirrors along X and shifts the page back into view.
func flipHorizontal(width float64) matrix {
	return matrix{-1, 0, 0, 1, width, 0}
}

// Engine applies named transformations to page geometry.
type Engine struct {
	logger *slog.Logger
}

// NewEngine creates an Engine that reports unknown options to logger.
func NewEngine(logger *slog.Logger) *Engine {
	return &Engine{logger: logger}
}

// Apply applies options to page strictly in order and returns the same page
// handle. Rotations accumulate on the page rotation attribute mod 360. Flips
// accumulate a transformation matrix that is wrapped once around the page
// content, so each flip acts on the page as already modified by earlier
// options. The "recursive" directive is a no-op here; unknown options warn
// and are skipped.
func (e *Engine) Apply(page *semantic.Page, options []string) *semantic.Page {
	if len(options) == 0 {
		return page
	}

	rotation := page.Rotate
	m := identity

	for _, option := range options {
		switch kindOf(option) {
		case kindRotate90:
			rotation += 90
		case kindRotate180:
			rotation += 180
		case kindRotate270:
			rotation += 270
		case kindFlipV:
			m = mul(m, flipVertical(pageHeight(page)))
		case kindFlipH:
			m = mul(m, flipHorizontal(pageWidth(page)))
		case kindRecursive:
			// Traversal directive, consumed during path expansion.
		default:
			e.logger.Warn("unknown transformation option", "option", option)
		}
	}

	page.Rotate = ((rotation % 360) + 360) % 360
	if m != identity {
		wrapContent(page, m)
	}
	return page
}

// wrapContent surrounds the page's content streams with a saved graphics
// state that applies m. The writer concatenates content streams in order, so
// the leading stream transforms everything that follows and the trailing
// stream restores the state.
func wrapContent(page *semantic.Page, m matrix) {
	prefix := semantic.ContentStream{
		RawBytes: fmt.Appendf(nil, "q %g %g %g %g %g %g cm\n", m[0], m[1], m[2], m[3], m[4], m[5]),
	}
	suffix := semantic.ContentStream{RawBytes: []byte("\nQ\n")}

	wrapped := make([]semantic.ContentStream, 0, len(page.Contents)+2)
	wrapped = append(wrapped, prefix)
	wrapped = append(wrapped, page.Contents...)
	wrapped = append(wrapped, suffix)
	page.Contents = wrapped
}

func pageWidth(page *semantic.Page) float64 {
	return page.MediaBox.URX - page.MediaBox.LLX
}

func pageHeight(page *semantic.Page) float64 {
	return page.MediaBox.URY - page.MediaBox.LLY
}
