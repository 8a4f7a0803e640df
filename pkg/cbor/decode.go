package cbor

import "unicode/utf8"

// Decode parses a single CBOR value from the front of b, returning the
// value and the number of bytes consumed. It does not require the entire
// input to be consumed; use DecodeAll for that.
func Decode(b []byte) (Value, int, error) {
	return decodeAt(b, 0)
}

// DecodeAll parses a single CBOR value and asserts that it consumed the
// entirety of b.
func DecodeAll(b []byte) (Value, error) {
	v, n, err := decodeAt(b, 0)
	if err != nil {
		return Value{}, err
	}
	if n != len(b) {
		return Value{}, newDecodeError(n, "trailing bytes after top-level value")
	}
	return v, nil
}

// decodeAt decodes one value from b starting at offset base, for error
// reporting purposes, and returns the value plus bytes consumed relative
// to the start of b (not to base).
func decodeAt(b []byte, base int) (Value, int, error) {
	if len(b) == 0 {
		return Value{}, 0, newDecodeError(base, "unexpected end of input reading head")
	}

	head := b[0]
	m := major(head >> 5)
	info := head & 0x1F

	arg, argLen, err := readArgument(b, base, info)
	if err != nil {
		return Value{}, 0, err
	}
	off := 1 + argLen

	switch m {
	case majorUint:
		return Uint(arg), off, nil
	case majorNeg:
		return NegInt(arg), off, nil
	case majorBstr:
		payload, err := sliceN(b, base, off, arg)
		if err != nil {
			return Value{}, 0, err
		}
		return Bytes(payload), off + len(payload), nil
	case majorTstr:
		payload, err := sliceN(b, base, off, arg)
		if err != nil {
			return Value{}, 0, err
		}
		if !utf8.Valid(payload) {
			return Value{}, 0, newDecodeError(base+off, "text string is not valid UTF-8")
		}
		return Text(string(payload)), off + len(payload), nil
	case majorArr:
		elems := make([]Value, 0, clampCapHint(arg))
		for i := uint64(0); i < arg; i++ {
			elem, n, err := decodeAt(b[off:], base+off)
			if err != nil {
				return Value{}, 0, err
			}
			elems = append(elems, elem)
			off += n
		}
		return Array(elems), off, nil
	case majorMap:
		kvs := make([]KV, 0, clampCapHint(arg))
		for i := uint64(0); i < arg; i++ {
			key, n, err := decodeAt(b[off:], base+off)
			if err != nil {
				return Value{}, 0, err
			}
			off += n
			val, n, err := decodeAt(b[off:], base+off)
			if err != nil {
				return Value{}, 0, err
			}
			off += n

			for _, existing := range kvs {
				if existing.Key.Equal(key) {
					return Value{}, 0, newDecodeError(base+off, "duplicate map key")
				}
			}
			kvs = append(kvs, KV{Key: key, Value: val})
		}
		return Map(kvs), off, nil
	case majorBool:
		switch info {
		case 20:
			return Bool(false), off, nil
		case 21:
			return Bool(true), off, nil
		default:
			return Value{}, 0, newDecodeError(base, "unsupported simple value")
		}
	default:
		// Major type 6 (tags) and any other unhandled major type.
		return Value{}, 0, newDecodeError(base, "unsupported major type")
	}
}

// readArgument reads the additional-information argument for a head byte,
// returning the argument value and the number of bytes consumed beyond
// the head byte itself.
func readArgument(b []byte, base int, info byte) (uint64, int, error) {
	switch {
	case info <= 23:
		return uint64(info), 0, nil
	case info == 24:
		if len(b) < 2 {
			return 0, 0, newDecodeError(base, "truncated 1-byte argument")
		}
		return uint64(b[1]), 1, nil
	case info == 25:
		if len(b) < 3 {
			return 0, 0, newDecodeError(base, "truncated 2-byte argument")
		}
		return uint64(b[1])<<8 | uint64(b[2]), 2, nil
	case info == 26:
		if len(b) < 5 {
			return 0, 0, newDecodeError(base, "truncated 4-byte argument")
		}
		var v uint64
		for i := 1; i <= 4; i++ {
			v = v<<8 | uint64(b[i])
		}
		return v, 4, nil
	case info == 27:
		if len(b) < 9 {
			return 0, 0, newDecodeError(base, "truncated 8-byte argument")
		}
		var v uint64
		for i := 1; i <= 8; i++ {
			v = v<<8 | uint64(b[i])
		}
		return v, 8, nil
	case info >= 28 && info <= 30:
		return 0, 0, newDecodeError(base, "reserved additional-information code")
	default: // 31: indefinite-length / break, not supported.
		return 0, 0, newDecodeError(base, "indefinite-length items and break stops are not supported")
	}
}

// sliceN returns the n bytes of b starting at off, reporting a decode
// error at the right offset if b is too short.
func sliceN(b []byte, base, off int, n uint64) ([]byte, error) {
	if uint64(len(b)-off) < n {
		return nil, newDecodeError(base+off, "truncated string payload")
	}
	return b[off : off+int(n)], nil
}

// clampCapHint bounds a pre-allocation hint derived from attacker-controlled
// input so a bogus huge count cannot force an enormous allocation; the real
// length check happens element-by-element as decoding proceeds.
func clampCapHint(n uint64) int {
	const maxHint = 1024
	if n > maxHint {
		return maxHint
	}
	return int(n)
}
