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

package ledger_test

import (
	"encoding/hex"
	"strings"
	"testing"

	"github.com/blinklabs-io/cardano-txsign/cbor"
	"github.com/blinklabs-io/cardano-txsign/ledger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMessageMetadata(t *testing.T) {
	metadata, err := ledger.NewMessageMetadata("hello")
	require.NoError(t, err)
	data, err := cbor.EncodeValue(metadata)
	require.NoError(t, err)
	assert.Equal(t, "a11902a2a1636d73678165"+"68656c6c6f", hex.EncodeToString(data))
}

func TestNewMessageMetadataEmpty(t *testing.T) {
	_, err := ledger.NewMessageMetadata()
	assert.ErrorIs(t, err, ledger.ErrEmptyMessage)
}

func TestTruncateMetadataString(t *testing.T) {
	testDefs := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "short", input: "Blog Post Signature", expected: "Blog Post Signature"},
		{name: "exact", input: strings.Repeat("a", 64), expected: strings.Repeat("a", 64)},
		{name: "long", input: strings.Repeat("a", 65), expected: strings.Repeat("a", 61) + "..."},
		{
			name:     "multibyte boundary",
			input:    strings.Repeat("a", 60) + strings.Repeat("é", 5),
			expected: strings.Repeat("a", 60) + "...",
		},
	}
	for _, testDef := range testDefs {
		t.Run(testDef.name, func(t *testing.T) {
			out := ledger.TruncateMetadataString(testDef.input)
			assert.Equal(t, testDef.expected, out)
			assert.LessOrEqual(t, len(out), ledger.MaxMetadataStringSize)
		})
	}
}

func TestMessageLines(t *testing.T) {
	lines := []string{
		"Blog Post Signature",
		"Title: " + strings.Repeat("x", 80),
	}
	metadata, err := ledger.NewMessageMetadata(lines...)
	require.NoError(t, err)
	data, err := cbor.EncodeValue(metadata)
	require.NoError(t, err)
	decoded, err := cbor.DecodeValueFull(data)
	require.NoError(t, err)
	got, ok := ledger.MessageLines(decoded)
	require.True(t, ok)
	require.Len(t, got, 2)
	assert.Equal(t, lines[0], got[0])
	assert.Equal(t, ledger.TruncateMetadataString(lines[1]), got[1])
	_, ok = ledger.MessageLines(cbor.Map{})
	assert.False(t, ok)
}
