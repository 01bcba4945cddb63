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
	"testing"
)

func FuzzDecodeValue(f *testing.F) {
	// Seed corpus with valid CBOR samples
	f.Add([]byte{0xa0})                         // empty map
	f.Add([]byte{0x80})                         // empty array
	f.Add([]byte{0xbf, 0xff})                   // indefinite map
	f.Add([]byte{0x9f, 0xff})                   // indefinite array
	f.Add([]byte{0x00})                         // integer 0
	f.Add([]byte{0x18, 0x64})                   // integer 100
	f.Add([]byte{0x19, 0x27, 0x10})             // integer 10000
	f.Add([]byte{0x1a, 0x00, 0x01, 0x86, 0xa0}) // integer 100000
	f.Add(
		[]byte{0x3a, 0x00, 0x01, 0x86, 0x9f},
	) // negative integer -100000
	f.Add([]byte{0x40})                               // empty bytestring
	f.Add([]byte{0x44, 0x01, 0x02, 0x03, 0x04})       // bytestring
	f.Add([]byte{0x65, 0x68, 0x65, 0x6c, 0x6c, 0x6f}) // "hello"
	f.Add([]byte{0xd9, 0x01, 0x02, 0x80})             // empty set
	f.Add([]byte{0xf4})                               // false
	f.Add([]byte{0xf6})                               // null

	f.Fuzz(func(t *testing.T, data []byte) {
		v, n, err := DecodeValue(data)
		end, skipErr := SkipItem(data, 0)
		if err != nil {
			return
		}
		// Anything that decodes must also walk to the same offset
		if skipErr != nil {
			t.Fatalf("decoded %x but skip failed: %s", data, skipErr)
		}
		if end != n {
			t.Fatalf("decode consumed %d bytes but skip ended at %d", n, end)
		}
		// and must re-encode and decode to the same tree
		encoded, err := EncodeValue(v)
		if err != nil {
			t.Fatalf("failed to re-encode decoded value: %s", err)
		}
		if _, _, err := DecodeValue(encoded); err != nil {
			t.Fatalf("failed to decode re-encoded value: %s", err)
		}
	})
}
