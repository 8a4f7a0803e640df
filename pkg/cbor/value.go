// Package cbor implements the bounded subset of RFC 8949 Canonical CBOR
// that CTAP2 requires: unsigned and negative integers, byte strings, text
// strings, arrays, maps with deterministic key ordering, and the two
// boolean simple values. Tags, floats, indefinite-length items, and break
// stops are not supported.
package cbor

// major identifies a CBOR head's major type (the top 3 bits of the head
// byte).
type major byte

const (
	majorUint major = 0
	majorNeg  major = 1
	majorBstr major = 2
	majorTstr major = 3
	majorArr  major = 4
	majorMap  major = 5
	majorBool major = 7
)

// KV is a single map entry. A map value keeps its entries in insertion
// order; Encode emits a sorted copy in canonical order. Entry order is
// never meaningful for equality or lookup.
type KV struct {
	Key   Value
	Value Value
}

// Value is a decoded or to-be-encoded CBOR item, restricted to a bounded
// data model: unsigned integer, negative integer, byte string, text
// string, array, map, and boolean.
type Value struct {
	maj   major
	u     uint64
	b     bool
	bytes []byte
	arr   []Value
	kvs   []KV
}

// Uint constructs an unsigned integer value in 0..2^64-1.
func Uint(v uint64) Value {
	return Value{maj: majorUint, u: v}
}

// NegInt constructs a negative integer value whose logical value is
// -1-magnitude, i.e. the full -2^64..-1 range addressable via a uint64
// wire argument.
func NegInt(magnitude uint64) Value {
	return Value{maj: majorNeg, u: magnitude}
}

// Int constructs an integer value from a Go int64, choosing the unsigned
// or negative major type as required. Every int64 is representable, so
// this never fails.
func Int(v int64) Value {
	if v >= 0 {
		return Uint(uint64(v))
	}
	return NegInt(uint64(-1 - v))
}

// Bytes constructs a byte string value. The slice is not copied.
func Bytes(b []byte) Value {
	return Value{maj: majorBstr, bytes: b}
}

// Text constructs a text string value. The codec does not validate UTF-8
// on encode; it is the caller's responsibility to supply valid UTF-8, and
// the decoder validates on the way back in.
func Text(s string) Value {
	return Value{maj: majorTstr, bytes: []byte(s)}
}

// Array constructs an array value from its elements, in order.
func Array(elems []Value) Value {
	return Value{maj: majorArr, arr: elems}
}

// Map constructs a map value from its entries. Entries may be supplied in
// any order; Encode sorts them into canonical order before emission.
// Duplicate keys are not permitted.
func Map(kvs []KV) Value {
	return Value{maj: majorMap, kvs: kvs}
}

// Bool constructs a boolean value.
func Bool(b bool) Value {
	return Value{maj: majorBool, b: b}
}

// IsUint reports whether the value is an unsigned integer.
func (v Value) IsUint() bool { return v.maj == majorUint }

// IsNegInt reports whether the value is a negative integer.
func (v Value) IsNegInt() bool { return v.maj == majorNeg }

// IsBytes reports whether the value is a byte string.
func (v Value) IsBytes() bool { return v.maj == majorBstr }

// IsText reports whether the value is a text string.
func (v Value) IsText() bool { return v.maj == majorTstr }

// IsArray reports whether the value is an array.
func (v Value) IsArray() bool { return v.maj == majorArr }

// IsMap reports whether the value is a map.
func (v Value) IsMap() bool { return v.maj == majorMap }

// IsBool reports whether the value is a boolean.
func (v Value) IsBool() bool { return v.maj == majorBool }

// Uint64 returns the value's magnitude for an unsigned integer.
func (v Value) Uint64() (uint64, bool) {
	if v.maj != majorUint {
		return 0, false
	}
	return v.u, true
}

// NegMagnitude returns the wire-level magnitude (u such that the logical
// value is -1-u) for a negative integer.
func (v Value) NegMagnitude() (uint64, bool) {
	if v.maj != majorNeg {
		return 0, false
	}
	return v.u, true
}

// Int64 returns the value as a signed int64, for either integer major
// type, failing with OutOfRangeError if the logical value does not fit.
func (v Value) Int64() (int64, error) {
	switch v.maj {
	case majorUint:
		if v.u > uint64(1<<63-1) {
			return 0, newOutOfRangeError("unsigned value exceeds int64 range")
		}
		return int64(v.u), nil
	case majorNeg:
		if v.u > uint64(1<<63-1) {
			return 0, newOutOfRangeError("negative value exceeds int64 range")
		}
		return -1 - int64(v.u), nil
	default:
		return 0, newOutOfRangeError("value is not an integer")
	}
}

// Bytes returns the raw octets for a byte string value.
func (v Value) Bytes() ([]byte, bool) {
	if v.maj != majorBstr {
		return nil, false
	}
	return v.bytes, true
}

// Text returns the decoded string for a text string value.
func (v Value) Text() (string, bool) {
	if v.maj != majorTstr {
		return "", false
	}
	return string(v.bytes), true
}

// Array returns the elements of an array value.
func (v Value) Array() ([]Value, bool) {
	if v.maj != majorArr {
		return nil, false
	}
	return v.arr, true
}

// MapPairs returns the entries of a map value, in whatever order they were
// constructed or decoded with (decoded maps keep the order of the input
// bytes; the decoder does not check that it is canonical).
func (v Value) MapPairs() ([]KV, bool) {
	if v.maj != majorMap {
		return nil, false
	}
	return v.kvs, true
}

// Bool returns the boolean payload of a boolean value.
func (v Value) Bool() (bool, bool) {
	if v.maj != majorBool {
		return false, false
	}
	return v.b, true
}

// MapLookup returns the value associated with a text-string key in a map
// value, a common case for decoding CTAP2 option/extension maps.
func (v Value) MapLookup(key string) (Value, bool) {
	kvs, ok := v.MapPairs()
	if !ok {
		return Value{}, false
	}
	for _, kv := range kvs {
		if s, ok := kv.Key.Text(); ok && s == key {
			return kv.Value, true
		}
	}
	return Value{}, false
}

// Equal reports whether v and other describe the same logical CBOR value.
// Map equality is order-independent, since map keys are unique by
// construction; array and string equality are order-dependent.
func (v Value) Equal(other Value) bool {
	if v.maj != other.maj {
		return false
	}
	switch v.maj {
	case majorUint, majorNeg:
		return v.u == other.u
	case majorBool:
		return v.b == other.b
	case majorBstr, majorTstr:
		return string(v.bytes) == string(other.bytes)
	case majorArr:
		if len(v.arr) != len(other.arr) {
			return false
		}
		for i := range v.arr {
			if !v.arr[i].Equal(other.arr[i]) {
				return false
			}
		}
		return true
	case majorMap:
		if len(v.kvs) != len(other.kvs) {
			return false
		}
		for _, a := range v.kvs {
			found := false
			for _, b := range other.kvs {
				if a.Key.Equal(b.Key) && a.Value.Equal(b.Value) {
					found = true
					break
				}
			}
			if !found {
				return false
			}
		}
		return true
	default:
		return false
	}
}
