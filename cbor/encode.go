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
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"slices"
)

const (
	cborFalse   byte = 0xf4
	cborTrue    byte = 0xf5
	cborNull    byte = 0xf6
	cborFloat64 byte = 0xfb
)

// EncodeValue encodes a Value tree to CBOR.
//
// Lengths, integers and tag numbers always use the shortest head. Maps whose
// keys are all integers are emitted in ascending numeric key order; any other
// map is emitted in insertion order. Floats are always written as 8-byte doubles.
func EncodeValue(v Value) ([]byte, error) {
	return appendValue(make([]byte, 0, 64), v)
}

// AppendHead appends a CBOR head for the given major type and argument,
// selecting the shortest encoding
func AppendHead(dst []byte, majorType uint8, arg uint64) []byte {
	switch {
	case arg <= uint64(CborMaxUintSimple):
		return append(dst, majorType|byte(arg))
	case arg <= math.MaxUint8:
		return append(dst, majorType|24, byte(arg))
	case arg <= math.MaxUint16:
		dst = append(dst, majorType|25)
		return binary.BigEndian.AppendUint16(dst, uint16(arg))
	case arg <= math.MaxUint32:
		dst = append(dst, majorType|26)
		return binary.BigEndian.AppendUint32(dst, uint32(arg))
	default:
		dst = append(dst, majorType|27)
		return binary.BigEndian.AppendUint64(dst, arg)
	}
}

func appendValue(dst []byte, v Value) ([]byte, error) {
	var err error
	switch val := v.(type) {
	case Uint:
		return AppendHead(dst, CborTypeUint, uint64(val)), nil
	case NegInt:
		return AppendHead(dst, CborTypeNegInt, uint64(val)), nil
	case ByteString:
		dst = AppendHead(dst, CborTypeByteString, uint64(len(val)))
		return append(dst, val...), nil
	case TextString:
		dst = AppendHead(dst, CborTypeTextString, uint64(len(val)))
		return append(dst, val...), nil
	case Array:
		dst = AppendHead(dst, CborTypeArray, uint64(len(val)))
		for i, item := range val {
			if dst, err = appendValue(dst, item); err != nil {
				return nil, fmt.Errorf("array item %d: %w", i, err)
			}
		}
		return dst, nil
	case Map:
		dst = AppendHead(dst, CborTypeMap, uint64(len(val)))
		for _, entry := range canonicalEntries(val) {
			if dst, err = appendValue(dst, entry.Key); err != nil {
				return nil, fmt.Errorf("map key: %w", err)
			}
			if dst, err = appendValue(dst, entry.Value); err != nil {
				return nil, fmt.Errorf("map value: %w", err)
			}
		}
		return dst, nil
	case Tagged:
		dst = AppendHead(dst, CborTypeTag, val.Number)
		if dst, err = appendValue(dst, val.Content); err != nil {
			return nil, fmt.Errorf("tag %d content: %w", val.Number, err)
		}
		return dst, nil
	case Bool:
		if val {
			return append(dst, cborTrue), nil
		}
		return append(dst, cborFalse), nil
	case Null:
		return append(dst, cborNull), nil
	case Float64:
		dst = append(dst, cborFloat64)
		return binary.BigEndian.AppendUint64(dst, math.Float64bits(float64(val))), nil
	case nil:
		return nil, errors.New("cannot encode nil value")
	default:
		return nil, fmt.Errorf("unsupported CBOR value type: %T", v)
	}
}

// canonicalEntries returns the entries in the order they should be encoded.
// Only maps with exclusively integer keys are sorted; the input is never modified
func canonicalEntries(m Map) Map {
	if len(m) < 2 {
		return m
	}
	for _, entry := range m {
		if !isIntKey(entry.Key) {
			return m
		}
	}
	sorted := slices.Clone(m)
	slices.SortStableFunc(sorted, func(a, b MapEntry) int {
		return compareInts(a.Key, b.Key)
	})
	return sorted
}
