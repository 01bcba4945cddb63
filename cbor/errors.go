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
	"errors"
	"fmt"
)

var (
	ErrUnexpectedEOF     = errors.New("unexpected end of data")
	ErrIndefiniteLength  = errors.New("indefinite-length items are not supported")
	ErrReservedInfo      = errors.New("reserved additional info value")
	ErrUnsupportedSimple = errors.New("unsupported simple value or float width")
	ErrMaxDepth          = errors.New("maximum nesting depth exceeded")
	ErrTrailingData      = errors.New("trailing data after CBOR item")
	ErrNotArray          = errors.New("expected a CBOR array")
)

// DecodeError describes a failure to decode or walk CBOR data at a specific offset
type DecodeError struct {
	Offset int
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("cbor: %s at offset %d", e.Err, e.Offset)
}

func (e *DecodeError) Unwrap() error { return e.Err }

func newDecodeError(offset int, err error) *DecodeError {
	return &DecodeError{Offset: offset, Err: err}
}
