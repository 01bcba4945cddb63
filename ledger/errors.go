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

package ledger

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidEnvelope   = errors.New("transaction is not a CBOR array of 2 to 4 elements")
	ErrInvalidWitnessSet = errors.New("invalid witness set")
	ErrNoVkeyWitnesses   = errors.New("witness set has no vkey witnesses")
	ErrBadSignature      = errors.New("vkey signature verification failed")
	ErrEmptyMessage      = errors.New("message metadata needs at least one line")
)

// EnvelopeLengthError indicates a top-level transaction array with an unexpected number of elements
type EnvelopeLengthError struct {
	Length int
}

func (e EnvelopeLengthError) Error() string {
	return fmt.Sprintf(
		"transaction array has %d elements, expected 2 to 4",
		e.Length,
	)
}

func (EnvelopeLengthError) Is(target error) bool {
	return target == ErrInvalidEnvelope
}

// SignatureError identifies the vkey witness whose signature did not verify
type SignatureError struct {
	Index   int
	KeyHash Blake2b224
	Err     error
}

func (e SignatureError) Error() string {
	return fmt.Sprintf(
		"vkey witness %d (key hash %s): %v",
		e.Index,
		e.KeyHash.String(),
		e.Err,
	)
}

func (e SignatureError) Unwrap() error { return e.Err }

func (SignatureError) Is(target error) bool {
	return target == ErrBadSignature
}
