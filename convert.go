package pdfstitch

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/draw"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	_ "image/jpeg" // register decoders
	_ "image/png"

	"github.com/wudi/pdfkit/builder"
	"github.com/wudi/pdfkit/ir"
	"github.com/wudi/pdfkit/ir/semantic"
	"github.com/wudi/pdfkit/writer"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"

	"github.com/alnah/go-pdfstitch/internal/fileutil"
	"github.com/alnah/go-pdfstitch/internal/hints"
)

// PageSource loads a file's pages for assembly.
type PageSource interface {
	Pages(ctx context.Context, path string) ([]*semantic.Page, error)
}

// imageExtensions are the raster formats accepted for conversion.
var imageExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".tiff": true,
	".bmp":  true,
}

// codecSource reads pages with the pdfkit codec, converting raster images to
// single-page PDFs on the fly.
type codecSource struct {
	logger *slog.Logger
}

// Pages dispatches on the file extension. PDFs are read directly; supported
// images are converted; everything else is an unsupported-file error.
func (c *codecSource) Pages(ctx context.Context, path string) ([]*semantic.Page, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch {
	case ext == ".pdf":
		return c.readPDF(ctx, path)
	case imageExtensions[ext]:
		c.logger.Info("converting image to PDF", "path", path)
		return c.imagePages(ctx, path)
	default:
		return nil, fmt.Errorf("%w: %s%s", ErrUnsupportedFile, path, hints.ForUnsupportedFile())
	}
}

// readPDF parses the document at path and returns its pages.
func (c *codecSource) readPDF(ctx context.Context, path string) ([]*semantic.Page, error) {
	f, err := os.Open(path) // #nosec G304 -- paths come from the user's own config
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPDFParse, err)
	}
	defer f.Close()

	doc, err := ir.NewDefault().Parse(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrPDFParse, path, err)
	}
	c.logger.Debug("read PDF", "path", path, "pages", len(doc.Pages))
	return doc.Pages, nil
}

// imagePages converts the raster image at path into a one-page PDF, reads it
// back, and removes the transient file. The cleanup runs on every return
// path, so no intermediate artifact survives a failure in later steps.
func (c *codecSource) imagePages(ctx context.Context, path string) ([]*semantic.Page, error) {
	img, err := decodeImage(path)
	if err != nil {
		return nil, err
	}

	data, err := imagePDF(ctx, img)
	if err != nil {
		return nil, err
	}

	tmpPath, cleanup, err := fileutil.WriteTempFile(data, "pdf")
	if err != nil {
		return nil, err
	}
	defer cleanup()

	return c.readPDF(ctx, tmpPath)
}

// decodeImage opens and decodes a raster image.
func decodeImage(path string) (image.Image, error) {
	f, err := os.Open(path) // #nosec G304 -- paths come from the user's own config
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrImageDecode, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrImageDecode, path, err)
	}
	return img, nil
}

// imagePDF builds a single-page PDF sized to the image in points (one pixel
// per point) and serializes it.
func imagePDF(ctx context.Context, img image.Image) ([]byte, error) {
	data, w, h := rgbData(img)

	pdfImg := &semantic.Image{
		Width:            w,
		Height:           h,
		BitsPerComponent: 8,
		ColorSpace:       semantic.DeviceColorSpace{Name: "DeviceRGB"},
		Data:             data,
	}

	b := builder.NewBuilder()
	b.NewPage(float64(w), float64(h)).
		DrawImage(pdfImg, 0, 0, float64(w), float64(h), builder.ImageOptions{}).
		Finish()

	doc, err := b.Build()
	if err != nil {
		return nil, fmt.Errorf("building image page: %w", err)
	}

	var buf bytes.Buffer
	cfg := writer.Config{Version: writer.PDF17, Compression: 9}
	if err := writer.NewWriter().Write(ctx, doc, &buf, cfg); err != nil {
		return nil, fmt.Errorf("writing image page: %w", err)
	}
	return buf.Bytes(), nil
}

// rgbData returns the raw 8-bit DeviceRGB samples of img. Alpha is dropped,
// normalizing RGBA input to RGB.
func rgbData(img image.Image) (data []byte, w, h int) {
	bounds := img.Bounds()
	w, h = bounds.Dx(), bounds.Dy()

	nrgba := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.Draw(nrgba, nrgba.Bounds(), img, bounds.Min, draw.Src)

	data = make([]byte, 0, w*h*3)
	for i := 0; i < w*h; i++ {
		offset := i * 4
		data = append(data, nrgba.Pix[offset], nrgba.Pix[offset+1], nrgba.Pix[offset+2])
	}
	return data, w, h
}
