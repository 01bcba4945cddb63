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
	"errors"
	"sync"

	_cbor "github.com/fxamacker/cbor/v2"
)

const (
	CborTypeUint        uint8 = 0x00
	CborTypeNegInt      uint8 = 0x20
	CborTypeByteString  uint8 = 0x40
	CborTypeTextString  uint8 = 0x60
	CborTypeArray       uint8 = 0x80
	CborTypeMap         uint8 = 0xa0
	CborTypeTag         uint8 = 0xc0
	CborTypeSimpleFloat uint8 = 0xe0

	// Only the top 3 bits are used to specify the type
	CborTypeMask uint8 = 0xe0

	// Low 5 bits of the initial byte
	CborAdditionalInfoMask uint8 = 0x1f

	// Max value able to be stored in a single byte without type prefix
	CborMaxUintSimple uint8 = 0x17

	// MaxNestingDepth caps how deeply arrays, maps and tags may nest when
	// decoding or walking untrusted input
	MaxNestingDepth = 64
)

// Create an alias for RawMessage for convenience
type RawMessage = _cbor.RawMessage

// Alias for Tag for convenience
type Tag = _cbor.Tag

// Alias for RawTag for convenience
type RawTag = _cbor.RawTag

// Useful for embedding and easier to remember
type StructAsArray struct {
	// Tells the CBOR decoder to convert to/from a struct and a CBOR array
	_ struct{} `cbor:",toarray"`
}

var (
	cachedEncMode     _cbor.EncMode
	cachedEncModeErr  error
	cachedEncModeOnce sync.Once

	cachedDecMode     _cbor.DecMode
	cachedDecModeErr  error
	cachedDecModeOnce sync.Once
)

func getEncMode() (_cbor.EncMode, error) {
	cachedEncModeOnce.Do(func() {
		opts := _cbor.EncOptions{
			// Make sure that maps have ordered keys
			Sort: _cbor.SortCoreDeterministic,
		}
		cachedEncMode, cachedEncModeErr = opts.EncModeWithTags(customTagSet)
	})
	return cachedEncMode, cachedEncModeErr
}

// getDecMode returns a cached DecMode, initializing it on first use.
// Returns the cached error if initialization failed.
func getDecMode() (_cbor.DecMode, error) {
	cachedDecModeOnce.Do(func() {
		decOptions := _cbor.DecOptions{
			ExtraReturnErrors: _cbor.ExtraDecErrorUnknownField,
			MaxNestedLevels:   MaxNestingDepth,
			// Indefinite-length items never appear in the structures we parse
			IndefLength: _cbor.IndefLengthForbidden,
		}
		cachedDecMode, cachedDecModeErr = decOptions.DecModeWithTags(customTagSet)
	})
	return cachedDecMode, cachedDecModeErr
}

// Encode encodes a Go value to CBOR using the reflection-based encoder. This is
// used for typed structures; arbitrary trees should use EncodeValue
func Encode(data any) ([]byte, error) {
	em, err := getEncMode()
	if err != nil {
		return nil, err
	}
	buf := bytes.NewBuffer(nil)
	enc := em.NewEncoder(buf)
	if err := enc.Encode(data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Decode decodes CBOR into the typed destination and returns the number of
// bytes read
func Decode(dataBytes []byte, dest any) (int, error) {
	decMode, err := getDecMode()
	if err != nil {
		return 0, err
	}
	if decMode == nil {
		return 0, errors.New("CBOR decoder mode not initialized")
	}
	dec := decMode.NewDecoder(bytes.NewReader(dataBytes))
	err = dec.Decode(dest)
	return dec.NumBytesRead(), err
}
