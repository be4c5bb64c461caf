package tile

import (
	"image"
	"image/color"
)

// Raster is a concrete, in-memory Sample backed by a flat Pixel slice.
// ToImage converts it to a standard library *image.RGBA when a host needs
// one; Raster itself does not implement image.Image, since Pixel-typed At
// and color.Color-typed At cannot share one method name.
type Raster struct {
	W, H   int
	Pixels []Pixel // row-major, len == W*H
}

// NewRaster allocates a blank (all-zero) Raster of the given dimensions.
func NewRaster(w, h int) *Raster {
	return &Raster{W: w, H: h, Pixels: make([]Pixel, w*h)}
}

func (r *Raster) Width() int  { return r.W }
func (r *Raster) Height() int { return r.H }

// At returns the pixel at (x, y). Out-of-bounds coordinates return the
// zero Pixel rather than panicking, matching image.Image's own leniency.
func (r *Raster) At(x, y int) Pixel {
	if x < 0 || x >= r.W || y < 0 || y >= r.H {
		return Pixel{}
	}
	return r.Pixels[y*r.W+x]
}

// Set assigns the pixel at (x, y). Out-of-bounds coordinates are no-ops.
func (r *Raster) Set(x, y int, p Pixel) {
	if x < 0 || x >= r.W || y < 0 || y >= r.H {
		return
	}
	r.Pixels[y*r.W+x] = p
}

// ToImage renders r as a standard library *image.RGBA.
func (r *Raster) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, r.W, r.H))
	for y := 0; y < r.H; y++ {
		for x := 0; x < r.W; x++ {
			p := r.At(x, y)
			img.Set(x, y, color.RGBA{R: p.R, G: p.G, B: p.B, A: p.A})
		}
	}
	return img
}

// FromImage adapts any standard library image.Image into a Sample.
func FromImage(img image.Image) Sample {
	return &imageSample{img: img}
}

type imageSample struct {
	img image.Image
}

func (s *imageSample) Width() int  { return s.img.Bounds().Dx() }
func (s *imageSample) Height() int { return s.img.Bounds().Dy() }

func (s *imageSample) At(x, y int) Pixel {
	b := s.img.Bounds()
	r, g, bl, a := s.img.At(b.Min.X+x, b.Min.Y+y).RGBA()
	// color.Color.RGBA() returns 16-bit alpha-premultiplied channels;
	// shift down to 8-bit to match Pixel's channel width.
	return Pixel{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(bl >> 8), A: uint8(a >> 8)}
}
