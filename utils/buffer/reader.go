package buffer

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"golang.org/x/exp/constraints"
)

// ReadUint64 reads a uint64 from r into c.
func ReadUint64(r Reader, c *uint64) (n int64, err error) {

	if c == nil {
		return 0, fmt.Errorf("cannot ReadUint64: c is nil")
	}

	var bb = [8]byte{}

	nint, err := io.ReadFull(r, bb[:])
	if err != nil {
		return int64(nint), err
	}

	*c = binary.LittleEndian.Uint64(bb[:])

	return int64(nint), nil
}

// ReadFloatSlice fills c with values read from r, as written by WriteFloatSlice.
// It returns io.ErrUnexpectedEOF if r ends before c is filled.
func ReadFloatSlice[T constraints.Float](r Reader, c []T) (n int64, err error) {

	size := FloatSize[T]()

	for len(c) > 0 {

		chunk := len(c) * size
		if s := r.Size(); chunk > s {
			chunk = s - s%size
		}

		if chunk == 0 {
			return n, io.ErrUnexpectedEOF
		}

		slice, perr := r.Peek(chunk)

		N := len(slice) / size

		decodeFloats(c[:N], slice, size)

		var inc int
		if inc, err = r.Discard(N * size); err != nil {
			return n + int64(inc), err
		}

		n += int64(inc)
		c = c[N:]

		if perr != nil && len(c) > 0 {
			if perr == io.EOF {
				return n, io.ErrUnexpectedEOF
			}
			return n, perr
		}
	}

	return
}

func decodeFloats[T constraints.Float](c []T, buf []byte, size int) {
	switch size {
	case 4:
		for i, j := 0, 0; i < len(c); i, j = i+1, j+4 {
			c[i] = T(math.Float32frombits(binary.LittleEndian.Uint32(buf[j:])))
		}
	default:
		for i, j := 0, 0; i < len(c); i, j = i+1, j+8 {
			c[i] = T(math.Float64frombits(binary.LittleEndian.Uint64(buf[j:])))
		}
	}
}
