package cbor

import (
	"bytes"
	"sort"
)

// Encode serializes a value using CTAP2 canonical encoding: shortest-head
// integers and deterministically sorted map keys.
func Encode(v Value) ([]byte, error) {
	buf := new(bytes.Buffer)
	if err := encodeInto(buf, v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func encodeInto(buf *bytes.Buffer, v Value) error {
	switch v.maj {
	case majorUint:
		writeHead(buf, majorUint, v.u)
		return nil
	case majorNeg:
		writeHead(buf, majorNeg, v.u)
		return nil
	case majorBstr:
		writeHead(buf, majorBstr, uint64(len(v.bytes)))
		buf.Write(v.bytes)
		return nil
	case majorTstr:
		writeHead(buf, majorTstr, uint64(len(v.bytes)))
		buf.Write(v.bytes)
		return nil
	case majorArr:
		writeHead(buf, majorArr, uint64(len(v.arr)))
		for _, elem := range v.arr {
			if err := encodeInto(buf, elem); err != nil {
				return err
			}
		}
		return nil
	case majorMap:
		sorted := canonicalOrder(v.kvs)
		writeHead(buf, majorMap, uint64(len(sorted)))
		for _, kv := range sorted {
			if err := encodeInto(buf, kv.Key); err != nil {
				return err
			}
			if err := encodeInto(buf, kv.Value); err != nil {
				return err
			}
		}
		return nil
	case majorBool:
		if v.b {
			buf.WriteByte(0xF5)
		} else {
			buf.WriteByte(0xF4)
		}
		return nil
	default:
		return newUnsupportedError("unrecognized value variant")
	}
}

// writeHead writes the 1-byte head plus shortest-fitting argument bytes
// for the given major type and argument. Every encoded integer head uses
// the shortest of {inline, 1, 2, 4, 8}-byte forms.
func writeHead(buf *bytes.Buffer, m major, arg uint64) {
	top := byte(m) << 5
	switch {
	case arg <= 23:
		buf.WriteByte(top | byte(arg))
	case arg <= 0xFF:
		buf.WriteByte(top | 24)
		buf.WriteByte(byte(arg))
	case arg <= 0xFFFF:
		buf.WriteByte(top | 25)
		buf.WriteByte(byte(arg >> 8))
		buf.WriteByte(byte(arg))
	case arg <= 0xFFFFFFFF:
		buf.WriteByte(top | 26)
		buf.WriteByte(byte(arg >> 24))
		buf.WriteByte(byte(arg >> 16))
		buf.WriteByte(byte(arg >> 8))
		buf.WriteByte(byte(arg))
	default:
		buf.WriteByte(top | 27)
		for shift := 56; shift >= 0; shift -= 8 {
			buf.WriteByte(byte(arg >> shift))
		}
	}
}

// canonicalOrder returns kvs sorted by the CTAP2 canonical key order:
// integers before strings, shorter strings before longer ones,
// lexicographic octet order among equal-length strings, and numerically
// ascending order among integers of the same sign.
func canonicalOrder(kvs []KV) []KV {
	sorted := make([]KV, len(kvs))
	copy(sorted, kvs)
	sort.SliceStable(sorted, func(i, j int) bool {
		return keyLess(sorted[i].Key, sorted[j].Key)
	})
	return sorted
}

func keyLess(a, b Value) bool {
	if a.maj != b.maj {
		return a.maj < b.maj
	}
	switch a.maj {
	case majorBstr, majorTstr:
		if len(a.bytes) != len(b.bytes) {
			return len(a.bytes) < len(b.bytes)
		}
		return bytes.Compare(a.bytes, b.bytes) < 0
	case majorUint:
		return a.u < b.u
	case majorNeg:
		// Same sign: the logical value -1-u is numerically smaller when
		// its wire magnitude u is larger, so descending u is ascending
		// logical value.
		return a.u > b.u
	case majorBool:
		return !a.b && b.b
	default:
		return false
	}
}
