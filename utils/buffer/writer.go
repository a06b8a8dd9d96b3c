package buffer

import (
	"encoding/binary"
	"fmt"
	"math"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// FloatSize returns the size in bytes of the encoding of a T.
func FloatSize[T constraints.Float]() int {
	var t T
	return int(unsafe.Sizeof(t))
}

// WriteUint64 writes c into w.
func WriteUint64(w Writer, c uint64) (n int64, err error) {

	if w.Available() < 8 {
		if err = w.Flush(); err != nil {
			return
		}

		if w.Available() < 8 {
			return 0, fmt.Errorf("cannot WriteUint64: available buffer is smaller than 8 bytes even after flush")
		}
	}

	buf := w.AvailableBuffer()[:8]

	binary.LittleEndian.PutUint64(buf, c)

	nint, err := w.Write(buf)

	return int64(nint), err
}

// WriteFloatSlice writes c into w, each value encoded as its IEEE 754
// binary representation on FloatSize[T]() bytes.
func WriteFloatSlice[T constraints.Float](w Writer, c []T) (n int64, err error) {

	size := FloatSize[T]()

	for len(c) > 0 {

		available := w.Available() / size

		if available == 0 {
			if err = w.Flush(); err != nil {
				return
			}

			if available = w.Available() / size; available == 0 {
				return n, fmt.Errorf("cannot WriteFloatSlice: available buffer is smaller than %d bytes even after flush", size)
			}
		}

		N := len(c)
		if N > available {
			N = available
		}

		buf := w.AvailableBuffer()[:N*size]

		encodeFloats(buf, c[:N], size)

		var inc int
		if inc, err = w.Write(buf); err != nil {
			return n + int64(inc), err
		}

		n += int64(inc)
		c = c[N:]
	}

	return
}

func encodeFloats[T constraints.Float](buf []byte, c []T, size int) {
	switch size {
	case 4:
		for i, j := 0, 0; i < len(c); i, j = i+1, j+4 {
			binary.LittleEndian.PutUint32(buf[j:], math.Float32bits(float32(c[i])))
		}
	default:
		for i, j := 0, 0; i < len(c); i, j = i+1, j+8 {
			binary.LittleEndian.PutUint64(buf[j:], math.Float64bits(float64(c[i])))
		}
	}
}
