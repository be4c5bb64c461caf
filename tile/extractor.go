package tile

import "github.com/wfcgo/overlap/internal/hashkey"

// maxTileSize is the upper bound on N (1 <= N <= 20).
const maxTileSize = 20

// ExtractTiles scans sample with a toroidal NxN window at every origin
// (x,y) in [0,W)x[0,H), deduplicates windows by exact pixel equality, and
// tallies occurrence frequency. The sample is treated as a torus: windows
// that would run off the right or bottom edge wrap around, so extraction
// always reads exactly W*H windows, never (W-N+1)*(H-N+1).
//
// The returned TileSet lists patterns in first-seen scan order; Frequency
// sums to W*H; every pattern appearing at least once in the scan is
// present exactly once.
func ExtractTiles(sample Sample, n int) (TileSet, error) {
	if n < 1 || n > maxTileSize {
		return TileSet{}, ErrInvalidTileSize
	}
	w, h := sample.Width(), sample.Height()
	if w <= 0 || h <= 0 {
		return TileSet{}, ErrInvalidSampleSize
	}

	ts := TileSet{N: n}
	buf := make([]byte, n*n*4)
	candidates := make(map[hashkey.Key][]int)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			window := readWindow(sample, x, y, n, w, h)
			encodeWindow(buf, window)
			key := hashkey.Of(buf)

			id := -1
			for _, cand := range candidates[key] {
				if pixelsEqual(ts.Patterns[cand].Pixels, window) {
					id = cand
					break
				}
			}
			if id == -1 {
				id = len(ts.Patterns)
				ts.Patterns = append(ts.Patterns, Pattern{ID: id, N: n, Pixels: window})
				ts.Frequency = append(ts.Frequency, 0)
				candidates[key] = append(candidates[key], id)
			}
			ts.Frequency[id]++
		}
	}

	return ts, nil
}

// readWindow reads the NxN toroidal window with top-left logical origin
// (x,y), wrapping via modulo on both axes.
func readWindow(sample Sample, x, y, n, w, h int) []Pixel {
	out := make([]Pixel, n*n)
	for dy := 0; dy < n; dy++ {
		sy := (y + dy) % h
		for dx := 0; dx < n; dx++ {
			sx := (x + dx) % w
			out[dy*n+dx] = sample.At(sx, sy)
		}
	}
	return out
}

// encodeWindow writes window's raw RGBA bytes into buf, which must already
// be sized len(window)*4.
func encodeWindow(buf []byte, window []Pixel) {
	for i, px := range window {
		o := i * 4
		buf[o] = px.R
		buf[o+1] = px.G
		buf[o+2] = px.B
		buf[o+3] = px.A
	}
}

func pixelsEqual(a, b []Pixel) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
