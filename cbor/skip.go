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

// SkipItem walks the complete CBOR item starting at offset and returns the
// offset of the first byte after it. Nothing is allocated or interpreted: the
// walk only follows heads, string lengths and container item counts, using the
// same length rules as DecodeValue
func SkipItem(data []byte, offset int) (int, error) {
	if offset < 0 {
		return 0, newDecodeError(offset, ErrUnexpectedEOF)
	}
	return skipItem(data, offset, 0)
}

func skipItem(data []byte, pos int, depth int) (int, error) {
	if depth > MaxNestingDepth {
		return 0, newDecodeError(pos, ErrMaxDepth)
	}
	h, err := readHead(data, pos)
	if err != nil {
		return 0, err
	}
	switch h.majorType {
	case CborTypeByteString, CborTypeTextString:
		if h.arg > remaining(data, h.next) {
			return 0, newDecodeError(pos, ErrUnexpectedEOF)
		}
		return h.next + int(h.arg), nil
	case CborTypeArray, CborTypeMap:
		count := h.arg
		if h.majorType == CborTypeMap {
			if count > remaining(data, h.next)/2 {
				return 0, newDecodeError(pos, ErrUnexpectedEOF)
			}
			count *= 2
		}
		if count > remaining(data, h.next) {
			return 0, newDecodeError(pos, ErrUnexpectedEOF)
		}
		next := h.next
		for range count {
			if next, err = skipItem(data, next, depth+1); err != nil {
				return 0, err
			}
		}
		return next, nil
	case CborTypeTag:
		return skipItem(data, h.next, depth+1)
	default:
		// Integers and simple values/floats have no content beyond the head
		return h.next, nil
	}
}

// ArrayHeadLength validates that data starts with a definite-length array head
// and returns the number of items and the size of the head in bytes
func ArrayHeadLength(data []byte) (uint64, int, error) {
	if len(data) == 0 || data[0]&CborTypeMask != CborTypeArray {
		return 0, 0, newDecodeError(0, ErrNotArray)
	}
	h, err := readHead(data, 0)
	if err != nil {
		return 0, 0, err
	}
	return h.arg, h.next, nil
}
