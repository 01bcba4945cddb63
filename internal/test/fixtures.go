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

package test

import (
	"crypto/sha512"
	"strings"

	"github.com/blinklabs-io/cardano-txsign/cbor"
)

const (
	// Body with keys out of canonical order and a non-minimal integer head.
	// Re-encoding it would produce different bytes
	NonCanonicalBodyHex = "a3" +
		"021a000f4240" +
		"00d9010281825820" + "1111111111111111111111111111111111111111111111111111111111111111" + "1800" +
		"0180"

	// Full 4-element envelope around NonCanonicalBodyHex
	NonCanonicalTxHex = "84" + NonCanonicalBodyHex + "a0" + "f5" + "f6"

	// Witness set holding one existing vkey witness inside a tag 258 set
	ExistingWitnessSetHex = "a100d9010281825820" +
		"2222222222222222222222222222222222222222222222222222222222222222" +
		"5840" +
		"33333333333333333333333333333333333333333333333333333333333333333333333333333333333333333333333333333333333333333333333333333333"
)

// ExtendedKeyFromSeed deterministically derives a synthetic 64-byte extended
// key (kL||kR) from a string. kL gets the same bit pattern as a CIP-1852 root
// key, so it is larger than the group order and exercises scalar reduction
func ExtendedKeyFromSeed(seed string) []byte {
	h := sha512.Sum512([]byte(seed))
	h[0] &= 0xf8
	h[31] &= 0x1f
	h[31] |= 0x40
	return h[:]
}

// LegacySeed deterministically derives a 32-byte Ed25519 seed from a string
func LegacySeed(seed string) []byte {
	h := sha512.Sum512([]byte("legacy:" + seed))
	return h[:32]
}

// MinimalTxBody returns a small transaction body with a 1 ADA fee
func MinimalTxBody() cbor.Map {
	return cbor.Map{
		{
			Key: cbor.Uint(0),
			Value: cbor.NewSet(
				cbor.Array{cbor.ByteString(DecodeHexString(strings.Repeat("ab", 32))), cbor.Uint(0)},
			),
		},
		{
			Key: cbor.Uint(1),
			Value: cbor.Array{
				cbor.Array{cbor.ByteString(DecodeHexString("61" + strings.Repeat("cd", 28))), cbor.Uint(2000000)},
			},
		},
		{Key: cbor.Uint(2), Value: cbor.Uint(1000000)},
	}
}

// MinimalTx returns the CBOR for [body, {}]
func MinimalTx() []byte {
	return MustEncode(cbor.Array{MinimalTxBody(), cbor.Map{}})
}

// MustEncode encodes a value and panics on failure
func MustEncode(v cbor.Value) []byte {
	data, err := cbor.EncodeValue(v)
	if err != nil {
		panic(err)
	}
	return data
}
