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

// Package cbor provides the CBOR subset needed to sign Cardano transactions.
//
// # Value trees
//
// Value is a closed sum type covering unsigned and negative integers, byte and
// text strings, arrays, maps, tags, booleans, null and 64-bit floats.
// EncodeValue and DecodeValue convert between Value trees and bytes:
//
//	tx, err := cbor.DecodeValueFull(txBytes)
//	...
//	out, err := cbor.EncodeValue(cbor.Array{body, witnessSet})
//
// Encoding always selects the shortest head. Maps keyed only by integers are
// sorted ascending; maps with any other key are written in insertion order.
// Decoding drops tag numbers (DecodeValueWithTags keeps them) and rejects
// indefinite-length items.
//
// # Structural walk
//
// SkipItem advances over one item without materializing it. It is the basis
// for extracting the original transaction body bytes, which must be hashed
// exactly as supplied:
//
//  1. Hash computation: never hash a re-encoded body
//  2. Re-encoding may change head widths and map key order
//
// # Typed structures
//
// Encode and Decode wrap github.com/fxamacker/cbor/v2 for typed structs
// (embed StructAsArray for array-encoded structs).
package cbor
