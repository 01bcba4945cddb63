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

package extkey_test

import (
	"encoding/hex"
	"strings"
	"testing"

	"github.com/blinklabs-io/cardano-txsign/extkey"
	"github.com/blinklabs-io/cardano-txsign/internal/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSigningKey(t *testing.T) {
	extendedHex := hex.EncodeToString(test.ExtendedKeyFromSeed("parse"))
	legacyHex := hex.EncodeToString(test.LegacySeed("parse"))
	testDefs := []struct {
		name    string
		keyHex  string
		keyType extkey.KeyType
		err     error
	}{
		{name: "extended", keyHex: extendedHex, keyType: extkey.KeyTypeExtended},
		{name: "extended upper case", keyHex: strings.ToUpper(extendedHex), keyType: extkey.KeyTypeExtended},
		{name: "legacy", keyHex: legacyHex, keyType: extkey.KeyTypeLegacy},
		{name: "63 characters", keyHex: legacyHex[:63], err: extkey.ErrInvalidKeyLength},
		{name: "129 characters", keyHex: extendedHex + "0", err: extkey.ErrInvalidKeyLength},
		{name: "130 characters", keyHex: extendedHex + "00", err: extkey.ErrInvalidKeyLength},
		{name: "96 characters", keyHex: strings.Repeat("ab", 48), err: extkey.ErrInvalidKeyLength},
		{name: "empty", keyHex: "", err: extkey.ErrInvalidHex},
		{name: "non-hex", keyHex: "zz" + extendedHex[2:], err: extkey.ErrInvalidHex},
		{name: "whitespace", keyHex: " " + legacyHex[1:], err: extkey.ErrInvalidHex},
	}
	for _, testDef := range testDefs {
		t.Run(testDef.name, func(t *testing.T) {
			k, err := extkey.ParseSigningKey(testDef.keyHex)
			if testDef.err != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, testDef.err)
				assert.Nil(t, k)
				if testDef.keyHex != "" {
					assert.NotContains(t, err.Error(), testDef.keyHex)
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, testDef.keyType, k.Type())
		})
	}
}

func TestParseSigningKeyMatchesConstructors(t *testing.T) {
	keyBytes := test.ExtendedKeyFromSeed("constructors")
	parsed, err := extkey.ParseSigningKey(hex.EncodeToString(keyBytes))
	require.NoError(t, err)
	direct, err := extkey.NewExtendedSigningKey(keyBytes)
	require.NoError(t, err)
	assert.Equal(t, direct.PublicKey(), parsed.PublicKey())
}

func TestKeyLengthErrorMessage(t *testing.T) {
	err := extkey.KeyLengthError{Length: 63}
	assert.Equal(
		t,
		"signing key must be 128 (extended) or 64 (legacy) hex characters, got 63",
		err.Error(),
	)
}

func TestCheckHexPosition(t *testing.T) {
	err := extkey.CheckHex("00x0")
	require.Error(t, err)
	assert.ErrorIs(t, err, extkey.ErrInvalidHex)
	assert.Contains(t, err.Error(), "position 2")
	assert.NoError(t, extkey.CheckHex("0aF"))
}
