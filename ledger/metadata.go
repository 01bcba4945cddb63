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
	"unicode/utf8"

	"github.com/blinklabs-io/cardano-txsign/cbor"
)

const (
	// CIP-20 transaction message label
	MessageMetadataLabel = 674

	// Maximum size in bytes of a metadata text string
	MaxMetadataStringSize = 64

	metadataEllipsis = "..."
)

// TruncateMetadataString shortens a string to fit in a metadata text value.
// Longer strings are cut and end in "...". The cut never splits a UTF-8 sequence
func TruncateMetadataString(s string) string {
	if len(s) <= MaxMetadataStringSize {
		return s
	}
	cut := MaxMetadataStringSize - len(metadataEllipsis)
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + metadataEllipsis
}

// NewMessageMetadata builds CIP-20 auxiliary metadata {674: {"msg": [lines...]}}
func NewMessageMetadata(lines ...string) (cbor.Map, error) {
	if len(lines) == 0 {
		return nil, ErrEmptyMessage
	}
	msg := make(cbor.Array, 0, len(lines))
	for _, line := range lines {
		msg = append(msg, cbor.TextString(TruncateMetadataString(line)))
	}
	return cbor.Map{
		{
			Key: cbor.Uint(MessageMetadataLabel),
			Value: cbor.Map{
				{Key: cbor.TextString("msg"), Value: msg},
			},
		},
	}, nil
}

// MessageLines returns the CIP-20 message lines from decoded metadata, if present
func MessageLines(metadata cbor.Value) ([]string, bool) {
	m, ok := metadata.(cbor.Map)
	if !ok {
		return nil, false
	}
	entry, ok := m.Get(cbor.Uint(MessageMetadataLabel))
	if !ok {
		return nil, false
	}
	inner, ok := entry.(cbor.Map)
	if !ok {
		return nil, false
	}
	msgVal, ok := inner.Get(cbor.TextString("msg"))
	if !ok {
		return nil, false
	}
	msg, ok := msgVal.(cbor.Array)
	if !ok {
		return nil, false
	}
	ret := make([]string, 0, len(msg))
	for _, item := range msg {
		text, ok := item.(cbor.TextString)
		if !ok {
			return nil, false
		}
		ret = append(ret, string(text))
	}
	return ret, true
}
