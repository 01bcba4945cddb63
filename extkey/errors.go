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

package extkey

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidHex       = errors.New("signing key is not valid hex")
	ErrInvalidKeyLength = errors.New("invalid signing key length")
	ErrKeyWiped         = errors.New("signing key has been wiped")
)

// KeyLengthError reports a signing key with an unsupported length. Length is
// measured in hex characters
type KeyLengthError struct {
	Length int
}

func (e KeyLengthError) Error() string {
	return fmt.Sprintf(
		"signing key must be %d (extended) or %d (legacy) hex characters, got %d",
		ExtendedKeyHexLength,
		SeedHexLength,
		e.Length,
	)
}

func (KeyLengthError) Is(target error) bool {
	return target == ErrInvalidKeyLength
}
