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
	"math"
)

// head is the parsed initial byte and argument of a CBOR data item
type head struct {
	majorType uint8
	info      uint8
	arg       uint64
	// offset of the first byte following the head
	next int
}

// readHead parses the head of the item starting at pos. Lengths wider than
// 32 bits are assembled from two big-endian 32-bit halves
func readHead(data []byte, pos int) (head, error) {
	if pos >= len(data) {
		return head{}, newDecodeError(pos, ErrUnexpectedEOF)
	}
	initial := data[pos]
	h := head{
		majorType: initial & CborTypeMask,
		info:      initial & CborAdditionalInfoMask,
		next:      pos + 1,
	}
	var argLen int
	switch {
	case h.info <= CborMaxUintSimple:
		h.arg = uint64(h.info)
		return h, nil
	case h.info == 24:
		argLen = 1
	case h.info == 25:
		argLen = 2
	case h.info == 26:
		argLen = 4
	case h.info == 27:
		argLen = 8
	case h.info == 31:
		return head{}, newDecodeError(pos, ErrIndefiniteLength)
	default:
		return head{}, newDecodeError(pos, ErrReservedInfo)
	}
	if len(data)-h.next < argLen {
		return head{}, newDecodeError(pos, ErrUnexpectedEOF)
	}
	argBytes := data[h.next : h.next+argLen]
	switch argLen {
	case 1:
		h.arg = uint64(argBytes[0])
	case 2:
		h.arg = uint64(binary.BigEndian.Uint16(argBytes))
	case 4:
		h.arg = uint64(binary.BigEndian.Uint32(argBytes))
	case 8:
		hi := binary.BigEndian.Uint32(argBytes[0:4])
		lo := binary.BigEndian.Uint32(argBytes[4:8])
		h.arg = uint64(hi)<<32 | uint64(lo)
	}
	h.next += argLen
	return h, nil
}

// remaining returns the number of bytes available from pos to the end of data
func remaining(data []byte, pos int) uint64 {
	if pos >= len(data) {
		return 0
	}
	return uint64(len(data) - pos)
}

type decoder struct {
	data     []byte
	pos      int
	keepTags bool
}

// DecodeValue decodes the first CBOR item in data and returns it along with the
// number of bytes consumed. Tag numbers are dropped and only the tagged content
// is returned. Indefinite-length items are rejected
func DecodeValue(data []byte) (Value, int, error) {
	d := &decoder{data: data}
	v, err := d.decodeItem(0)
	if err != nil {
		return nil, 0, err
	}
	return v, d.pos, nil
}

// DecodeValueFull decodes data as exactly one CBOR item, failing on trailing bytes
func DecodeValueFull(data []byte) (Value, error) {
	v, n, err := DecodeValue(data)
	if err != nil {
		return nil, err
	}
	if n != len(data) {
		return nil, newDecodeError(n, ErrTrailingData)
	}
	return v, nil
}

// DecodeValueWithTags behaves like DecodeValueFull but preserves tags as
// Tagged values, allowing an exact round trip through EncodeValue for
// canonically encoded input
func DecodeValueWithTags(data []byte) (Value, error) {
	d := &decoder{data: data, keepTags: true}
	v, err := d.decodeItem(0)
	if err != nil {
		return nil, err
	}
	if d.pos != len(data) {
		return nil, newDecodeError(d.pos, ErrTrailingData)
	}
	return v, nil
}

func (d *decoder) decodeItem(depth int) (Value, error) {
	start := d.pos
	if depth > MaxNestingDepth {
		return nil, newDecodeError(start, ErrMaxDepth)
	}
	h, err := readHead(d.data, d.pos)
	if err != nil {
		return nil, err
	}
	d.pos = h.next
	switch h.majorType {
	case CborTypeUint:
		return Uint(h.arg), nil
	case CborTypeNegInt:
		return NegInt(h.arg), nil
	case CborTypeByteString, CborTypeTextString:
		if h.arg > remaining(d.data, d.pos) {
			return nil, newDecodeError(start, ErrUnexpectedEOF)
		}
		strStart := d.pos
		// The cursor is advanced before the content is handed back
		d.pos += int(h.arg)
		content := d.data[strStart:d.pos]
		if h.majorType == CborTypeTextString {
			return TextString(content), nil
		}
		ret := make(ByteString, len(content))
		copy(ret, content)
		return ret, nil
	case CborTypeArray:
		// Every item needs at least one byte
		if h.arg > remaining(d.data, d.pos) {
			return nil, newDecodeError(start, ErrUnexpectedEOF)
		}
		ret := make(Array, 0, int(h.arg))
		for range h.arg {
			item, err := d.decodeItem(depth + 1)
			if err != nil {
				return nil, err
			}
			ret = append(ret, item)
		}
		return ret, nil
	case CborTypeMap:
		// Every pair needs at least two bytes
		if h.arg > remaining(d.data, d.pos)/2 {
			return nil, newDecodeError(start, ErrUnexpectedEOF)
		}
		ret := make(Map, 0, int(h.arg))
		for range h.arg {
			key, err := d.decodeItem(depth + 1)
			if err != nil {
				return nil, err
			}
			value, err := d.decodeItem(depth + 1)
			if err != nil {
				return nil, err
			}
			ret = append(ret, MapEntry{Key: key, Value: value})
		}
		return ret, nil
	case CborTypeTag:
		content, err := d.decodeItem(depth + 1)
		if err != nil {
			return nil, err
		}
		if d.keepTags {
			return Tagged{Number: h.arg, Content: content}, nil
		}
		return content, nil
	default:
		return decodeSimple(h, start)
	}
}

func decodeSimple(h head, start int) (Value, error) {
	switch h.info {
	case 20:
		return Bool(false), nil
	case 21:
		return Bool(true), nil
	case 22:
		return Null{}, nil
	case 27:
		return Float64(math.Float64frombits(h.arg)), nil
	default:
		return nil, newDecodeError(start, ErrUnsupportedSimple)
	}
}
