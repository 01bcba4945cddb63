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
	"encoding/hex"
	"fmt"
)

const (
	ExtendedKeyHexLength = ExtendedKeySize * 2
	SeedHexLength        = SeedSize * 2
)

// CheckHex verifies that s is non-empty and only holds hex digits. The
// offending character is never included in the error
func CheckHex(s string) error {
	if s == "" {
		return fmt.Errorf("%w: empty string", ErrInvalidHex)
	}
	for i := range len(s) {
		if !isHexDigit(s[i]) {
			return fmt.Errorf("%w: non-hex character at position %d", ErrInvalidHex, i)
		}
	}
	return nil
}

func isHexDigit(c byte) bool {
	return ('0' <= c && c <= '9') || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}

// ParseSigningKey selects the signing scheme from the length of the hex key:
// 128 characters is an extended key, 64 characters is a legacy seed. Any other
// length fails before the key is decoded
func ParseSigningKey(keyHex string) (SigningKey, error) {
	if err := CheckHex(keyHex); err != nil {
		return nil, err
	}
	switch len(keyHex) {
	case ExtendedKeyHexLength, SeedHexLength:
	default:
		return nil, KeyLengthError{Length: len(keyHex)}
	}
	keyBytes, err := hex.DecodeString(keyHex)
	if err != nil {
		// Only reachable for odd lengths, which are rejected above
		return nil, fmt.Errorf("%w: decode failed", ErrInvalidHex)
	}
	defer clear(keyBytes)
	if len(keyBytes) == ExtendedKeySize {
		k, err := NewExtendedSigningKey(keyBytes)
		if err != nil {
			return nil, err
		}
		return k, nil
	}
	k, err := NewLegacySigningKey(keyBytes)
	if err != nil {
		return nil, err
	}
	return k, nil
}
