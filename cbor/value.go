// Copyright 2026 Blink Labs Software
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cbor

import (
	"bytes"
	"math"
)

// Value is a decoded CBOR data item. The set of implementations is closed:
// Uint, NegInt, ByteString, TextString, Array, Map, Tagged, Bool, Null and
// Float64
type Value interface {
	// MajorType returns the CBOR major type bits (already shifted into the top 3 bits)
	MajorType() uint8
	isValue()
}

// Uint is a CBOR unsigned integer (major type 0)
type Uint uint64

// NegInt is a CBOR negative integer (major type 1). The stored value is n,
// where the represented integer is -1-n
type NegInt uint64

// ByteString is a CBOR byte string (major type 2)
type ByteString []byte

// TextString is a CBOR text string (major type 3)
type TextString string

// Array is a CBOR array (major type 4)
type Array []Value

// MapEntry is a single key/value pair of a Map
type MapEntry struct {
	Key   Value
	Value Value
}

// Map is a CBOR map (major type 5). Entries are kept in insertion order
type Map []MapEntry

// Tagged is a CBOR tagged value (major type 6)
type Tagged struct {
	Number  uint64
	Content Value
}

// Bool is a CBOR boolean (major type 7, simple values 20 and 21)
type Bool bool

// Null is the CBOR null value (major type 7, simple value 22)
type Null struct{}

// Float64 is a CBOR double-precision float (major type 7, additional info 27)
type Float64 float64

func (Uint) MajorType() uint8       { return CborTypeUint }
func (NegInt) MajorType() uint8     { return CborTypeNegInt }
func (ByteString) MajorType() uint8 { return CborTypeByteString }
func (TextString) MajorType() uint8 { return CborTypeTextString }
func (Array) MajorType() uint8      { return CborTypeArray }
func (Map) MajorType() uint8        { return CborTypeMap }
func (Tagged) MajorType() uint8     { return CborTypeTag }
func (Bool) MajorType() uint8       { return CborTypeSimpleFloat }
func (Null) MajorType() uint8       { return CborTypeSimpleFloat }
func (Float64) MajorType() uint8    { return CborTypeSimpleFloat }

func (Uint) isValue()       {}
func (NegInt) isValue()     {}
func (ByteString) isValue() {}
func (TextString) isValue() {}
func (Array) isValue()      {}
func (Map) isValue()        {}
func (Tagged) isValue()     {}
func (Bool) isValue()       {}
func (Null) isValue()       {}
func (Float64) isValue()    {}

// NewInt returns the Uint or NegInt representing v
func NewInt(v int64) Value {
	if v >= 0 {
		return Uint(v)
	}
	// -1-v never overflows for negative v
	return NegInt(uint64(-1 - v))
}

// Int64 returns the integer as an int64, if it fits
func (n NegInt) Int64() (int64, bool) {
	if uint64(n) > math.MaxInt64 {
		return 0, false
	}
	return -1 - int64(n), true
}

// Get returns the value stored under the first entry whose key equals key
func (m Map) Get(key Value) (Value, bool) {
	for _, entry := range m {
		if Equal(entry.Key, key) {
			return entry.Value, true
		}
	}
	return nil, false
}

// Set returns a copy of the map with key set to value. An existing entry keeps
// its position, otherwise the entry is appended
func (m Map) Set(key Value, value Value) Map {
	ret := make(Map, len(m), len(m)+1)
	copy(ret, m)
	for i, entry := range ret {
		if Equal(entry.Key, key) {
			ret[i].Value = value
			return ret
		}
	}
	return append(ret, MapEntry{Key: key, Value: value})
}

// isIntKey reports whether the value is a major type 0 or 1 integer
func isIntKey(v Value) bool {
	switch v.(type) {
	case Uint, NegInt:
		return true
	}
	return false
}

// compareInts orders integer values numerically. Both arguments must satisfy isIntKey
func compareInts(a, b Value) int {
	switch av := a.(type) {
	case Uint:
		bv, ok := b.(Uint)
		if !ok {
			// Any non-negative value sorts after any negative value
			return 1
		}
		return compareUint64(uint64(av), uint64(bv))
	case NegInt:
		bv, ok := b.(NegInt)
		if !ok {
			return -1
		}
		// A larger n means a more negative value
		return compareUint64(uint64(bv), uint64(av))
	}
	return 0
}

func compareUint64(a, b uint64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// Equal reports whether two values are structurally identical. Map entries are
// compared in order
func Equal(a, b Value) bool {
	switch av := a.(type) {
	case Uint:
		bv, ok := b.(Uint)
		return ok && av == bv
	case NegInt:
		bv, ok := b.(NegInt)
		return ok && av == bv
	case ByteString:
		bv, ok := b.(ByteString)
		return ok && bytes.Equal(av, bv)
	case TextString:
		bv, ok := b.(TextString)
		return ok && av == bv
	case Array:
		bv, ok := b.(Array)
		if !ok || len(av) != len(bv) {
			return false
		}
		for i := range av {
			if !Equal(av[i], bv[i]) {
				return false
			}
		}
		return true
	case Map:
		bv, ok := b.(Map)
		if !ok || len(av) != len(bv) {
			return false
		}
		for i := range av {
			if !Equal(av[i].Key, bv[i].Key) || !Equal(av[i].Value, bv[i].Value) {
				return false
			}
		}
		return true
	case Tagged:
		bv, ok := b.(Tagged)
		return ok && av.Number == bv.Number && Equal(av.Content, bv.Content)
	case Bool:
		bv, ok := b.(Bool)
		return ok && av == bv
	case Null:
		_, ok := b.(Null)
		return ok
	case Float64:
		bv, ok := b.(Float64)
		return ok && math.Float64bits(float64(av)) == math.Float64bits(float64(bv))
	}
	return false
}
