package quadrature

import (
	"bufio"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/tuneinsight/polyquad/utils/buffer"
	"github.com/zeebo/blake3"
)

// readChunk is the number of samples decoded per read by ReadFrom.
const readChunk = 1 << 16

func minUint64(a, b uint64) uint64 {
	if a < b {
		return a
	}
	return b
}

// BinarySize returns the serialized size of the grid in bytes.
func (g *Grid[T]) BinarySize() int {
	return 16 + (3+len(g.values))*buffer.FloatSize[T]()
}

// WriteTo writes the grid on an io.Writer. It implements the io.WriterTo
// interface, and will write exactly g.BinarySize() bytes on w.
//
// The encoding is: the float width in bytes and the number of intervals as
// little-endian uint64, followed by xmin, xmax, gap and the samples in the
// IEEE 754 representation of T.
//
// Unless w implements the buffer.Writer interface it is wrapped into a
// bufio.Writer.
func (g *Grid[T]) WriteTo(w io.Writer) (n int64, err error) {

	switch w := w.(type) {
	case buffer.Writer:

		var inc int64
		if inc, err = buffer.WriteUint64(w, uint64(buffer.FloatSize[T]())); err != nil {
			return n + inc, fmt.Errorf("buffer.WriteUint64: %w", err)
		}

		n += inc

		if inc, err = buffer.WriteUint64(w, uint64(g.intervals)); err != nil {
			return n + inc, fmt.Errorf("buffer.WriteUint64: %w", err)
		}

		n += inc

		if inc, err = buffer.WriteFloatSlice(w, []T{g.xmin, g.xmax, g.gap}); err != nil {
			return n + inc, fmt.Errorf("buffer.WriteFloatSlice: %w", err)
		}

		n += inc

		if inc, err = buffer.WriteFloatSlice(w, g.values); err != nil {
			return n + inc, fmt.Errorf("buffer.WriteFloatSlice: %w", err)
		}

		n += inc

		return n, w.Flush()

	default:
		return g.WriteTo(bufio.NewWriter(w))
	}
}

// ReadFrom reads the grid from an io.Reader. It implements the
// io.ReaderFrom interface.
//
// Unless r implements the buffer.Reader interface it is wrapped into a
// bufio.Reader.
func (g *Grid[T]) ReadFrom(r io.Reader) (n int64, err error) {

	switch r := r.(type) {
	case buffer.Reader:

		var inc int64
		var width, intervals uint64

		if inc, err = buffer.ReadUint64(r, &width); err != nil {
			return n + inc, fmt.Errorf("buffer.ReadUint64: %w", err)
		}

		n += inc

		if int(width) != buffer.FloatSize[T]() {
			return n, fmt.Errorf("cannot ReadFrom: %w: encoded samples are %d bytes wide but %T is %d bytes wide", ErrInvalidInput, width, g.xmin, buffer.FloatSize[T]())
		}

		if inc, err = buffer.ReadUint64(r, &intervals); err != nil {
			return n + inc, fmt.Errorf("buffer.ReadUint64: %w", err)
		}

		n += inc

		if intervals < 1 || intervals >= uint64(math.MaxInt) {
			return n, fmt.Errorf("cannot ReadFrom: %w: invalid number of intervals %d", ErrInvalidRange, intervals)
		}

		header := make([]T, 3)
		if inc, err = buffer.ReadFloatSlice(r, header); err != nil {
			return n + inc, fmt.Errorf("buffer.ReadFloatSlice: %w", err)
		}

		n += inc

		size := buffer.FloatSize[T]()
		samples := intervals + 1

		// A fixed buffer knows how many bytes are left: reject a forged count up front.
		if b, ok := r.(*buffer.Buffer); ok && samples > uint64(b.Size()/size) {
			return n, fmt.Errorf("cannot ReadFrom: %w: header announces %d samples but only %d bytes are left", ErrInvalidInput, samples, b.Size())
		}

		// Other readers are consumed in bounded chunks, so memory grows with
		// the data actually read and not with the announced count.
		values := make([]T, 0, minUint64(samples, readChunk))
		for uint64(len(values)) < samples {

			k := int(minUint64(samples-uint64(len(values)), readChunk))
			values = append(values, make([]T, k)...)

			if inc, err = buffer.ReadFloatSlice(r, values[len(values)-k:]); err != nil {
				if errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, io.EOF) {
					return n + inc, fmt.Errorf("cannot ReadFrom: %w: header announces %d samples: %w", ErrInvalidInput, samples, err)
				}
				return n + inc, fmt.Errorf("buffer.ReadFloatSlice: %w", err)
			}

			n += inc
		}

		g.xmin, g.xmax, g.gap = header[0], header[1], header[2]
		g.intervals = int(intervals)
		g.values = values

		return n, nil

	default:
		return g.ReadFrom(bufio.NewReader(r))
	}
}

// MarshalBinary encodes the grid on a slice of bytes.
func (g *Grid[T]) MarshalBinary() (p []byte, err error) {
	buf := buffer.NewBufferSize(g.BinarySize())
	_, err = g.WriteTo(buf)
	return buf.Bytes(), err
}

// UnmarshalBinary decodes a slice of bytes generated by MarshalBinary on
// the grid.
func (g *Grid[T]) UnmarshalBinary(p []byte) (err error) {
	_, err = g.ReadFrom(buffer.NewBuffer(p))
	return
}

// Digest returns the BLAKE3-256 hash of the binary encoding of the grid.
// Two grids share a digest if and only if they are bit-identical.
func (g *Grid[T]) Digest() (digest [32]byte) {
	hasher := blake3.New()
	if _, err := g.WriteTo(hasher); err != nil {
		// hash.Hash never returns an error on Write
		panic(err)
	}
	copy(digest[:], hasher.Sum(nil))
	return
}

// DigestHex returns the hexadecimal encoding of g.Digest().
func (g *Grid[T]) DigestHex() string {
	d := g.Digest()
	return hex.EncodeToString(d[:])
}
