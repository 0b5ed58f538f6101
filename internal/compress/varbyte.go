// Package compress implements variable-byte and delta-varbyte encoding for
// non-negative 32-bit integers, used by internal/store for the on-disk
// postings blob.
package compress

import (
	"github.com/Adithya-Monish-Kumar-K/lexidex/internal/engine/errs"
)

// EncodeVarbyte appends the variable-byte encoding of v to out and returns
// the extended slice. Each byte carries 7 payload bits, little-endian in
// 7-bit groups; the high bit is set on every byte except the last.
func EncodeVarbyte(v uint32, out []byte) []byte {
	for v >= 0x80 {
		out = append(out, byte(v&0x7F)|0x80)
		v >>= 7
	}
	return append(out, byte(v&0x7F))
}

// DecodeVarbyte reads a single varbyte-encoded value from data starting at
// offset, returning the value and the offset of the next unread byte.
func DecodeVarbyte(data []byte, offset int) (uint32, int, error) {
	var value uint32
	shift := uint(0)
	for {
		if offset >= len(data) {
			return 0, 0, errs.Wrap(errs.ErrBufferUnderrun, "decoding varbyte")
		}
		b := data[offset]
		offset++
		value |= uint32(b&0x7F) << shift
		if b&0x80 == 0 {
			break
		}
		shift += 7
	}
	return value, offset, nil
}

// EncodeDeltaVarbyte appends the delta-varbyte encoding of a strictly
// increasing sequence to out: each element is encoded as the varbyte of its
// difference from the previous element (previous starts at 0).
func EncodeDeltaVarbyte(values []uint32, out []byte) []byte {
	prev := uint32(0)
	for _, v := range values {
		out = EncodeVarbyte(v-prev, out)
		prev = v
	}
	return out
}

// DecodeDeltaVarbyte reads n delta-varbyte-encoded values from data starting
// at offset, returning the reconstructed strictly-increasing sequence and
// the offset of the next unread byte.
func DecodeDeltaVarbyte(data []byte, offset int, n int) ([]uint32, int, error) {
	values := make([]uint32, 0, n)
	prev := uint32(0)
	for i := 0; i < n; i++ {
		delta, next, err := DecodeVarbyte(data, offset)
		if err != nil {
			return nil, 0, err
		}
		offset = next
		prev += delta
		values = append(values, prev)
	}
	return values, offset, nil
}
