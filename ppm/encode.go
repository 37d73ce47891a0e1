package ppm

import (
	"bufio"
	"errors"
	"fmt"
	"io"
)

// ErrBadImage reports an image whose channel planes do not match its
// declared dimensions.
var ErrBadImage = errors.New("ppm: malformed image")

// Encode writes m in the same P6 container Decode consumes: the magic
// line, "width height", the max channel value, then raw interleaved
// RGB triplets.
func (m *Image) Encode(w io.Writer) error {
	size := m.Width * m.Height
	if m.Width <= 0 || m.Height <= 0 ||
		len(m.R) != size || len(m.G) != size || len(m.B) != size {
		return fmt.Errorf("%w: %dx%d with planes %d/%d/%d",
			ErrBadImage, m.Width, m.Height, len(m.R), len(m.G), len(m.B))
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%s\n%d %d\n%d\n", magic, m.Width, m.Height, m.MaxVal)
	for i := 0; i < size; i++ {
		bw.WriteByte(m.R[i])
		bw.WriteByte(m.G[i])
		bw.WriteByte(m.B[i])
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("ppm: encode: %w", err)
	}
	return nil
}
