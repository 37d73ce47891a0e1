package ppm

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

const magic = "P6"

var (
	// ErrFormat reports a magic token other than "P6".
	ErrFormat = errors.New("ppm: not a P6 pixmap")
	// ErrHeader reports an unparsable dimension or max-value line.
	ErrHeader = errors.New("ppm: invalid header")
	// ErrTruncated reports a pixel payload shorter than the header promises.
	ErrTruncated = errors.New("ppm: truncated pixel data")
)

// DecodeFile opens path and decodes it as a P6 pixmap.
func DecodeFile(path string) (*Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("ppm: %w", err)
	}
	defer f.Close()
	return Decode(f)
}

// Decode parses a P6 stream into an Image.
//
// On any error the returned image is nil; partially read data is never
// exposed as a valid image.
func Decode(r io.Reader) (*Image, error) {
	br := bufio.NewReader(r)

	line, err := readLine(br)
	if err != nil {
		return nil, fmt.Errorf("%w: read magic: %v", ErrFormat, err)
	}
	if line != magic {
		return nil, fmt.Errorf("%w: magic %q", ErrFormat, line)
	}

	line, err = readLine(br)
	for err == nil && strings.HasPrefix(line, "#") {
		line, err = readLine(br)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: read dimensions: %v", ErrHeader, err)
	}

	// The file carries width before height.
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return nil, fmt.Errorf("%w: want \"width height\", got %q", ErrHeader, line)
	}
	w, err := parseDim(fields[0])
	if err != nil {
		return nil, fmt.Errorf("%w: width %q: %v", ErrHeader, fields[0], err)
	}
	h, err := parseDim(fields[1])
	if err != nil {
		return nil, fmt.Errorf("%w: height %q: %v", ErrHeader, fields[1], err)
	}

	line, err = readLine(br)
	if err != nil {
		return nil, fmt.Errorf("%w: read max value: %v", ErrHeader, err)
	}
	fields = strings.Fields(line)
	if len(fields) < 1 {
		return nil, fmt.Errorf("%w: missing max value", ErrHeader)
	}
	maxVal, err := strconv.ParseUint(fields[0], 10, 31)
	if err != nil {
		return nil, fmt.Errorf("%w: max value %q: %v", ErrHeader, fields[0], err)
	}

	// Guard the allocation: 3*width*height must stay within int range.
	if uint64(w)*uint64(h) > math.MaxInt/3 {
		return nil, fmt.Errorf("%w: dimensions %dx%d too large", ErrHeader, w, h)
	}

	size := w * h
	raw := make([]byte, 3*size)
	if _, err := io.ReadFull(br, raw); err != nil {
		return nil, fmt.Errorf("%w: want %d pixel bytes: %v", ErrTruncated, len(raw), err)
	}

	img := New(w, h)
	img.MaxVal = int(maxVal)
	for i := 0; i < size; i++ {
		img.R[i] = raw[3*i]
		img.G[i] = raw[3*i+1]
		img.B[i] = raw[3*i+2]
	}
	return img, nil
}

func parseDim(s string) (int, error) {
	v, err := strconv.ParseUint(s, 10, 31)
	if err != nil {
		return 0, err
	}
	if v == 0 {
		return 0, errors.New("zero dimension")
	}
	return int(v), nil
}

// readLine reads one newline-terminated header line, without the terminator.
func readLine(br *bufio.Reader) (string, error) {
	s, err := br.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimRight(s, "\r\n"), nil
}
