package tile

// Pixel is a single RGBA sample. Equality is channel-wise exact: pattern
// and overlap comparisons never tolerate any channel drift, including
// alpha.
type Pixel struct {
	R, G, B, A uint8
}

// Equal reports whether p and q have identical channel values.
func (p Pixel) Equal(q Pixel) bool {
	return p == q
}

// Sample is the external raster a TileSet is extracted from. It is the
// only contract the tile package has with a host's image representation;
// FromImage adapts a standard library image.Image to it.
type Sample interface {
	Width() int
	Height() int
	At(x, y int) Pixel
}
