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
	"crypto/ed25519"
	"encoding/hex"
	"strings"
	"testing"

	"github.com/blinklabs-io/cardano-txsign/cbor"
	"github.com/blinklabs-io/cardano-txsign/internal/test"
	"github.com/blinklabs-io/cardano-txsign/ledger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testWitness(t *testing.T, seed string, body []byte) ledger.VkeyWitness {
	t.Helper()
	key := ed25519.NewKeyFromSeed(test.LegacySeed(seed))
	bodyHash := ledger.Blake2b256Hash(body)
	sig := ed25519.Sign(key, bodyHash.Bytes())
	w, err := ledger.NewVkeyWitness(key.Public().(ed25519.PublicKey), sig)
	require.NoError(t, err)
	return w
}

func witnessSetSpan(t *testing.T, tx []byte) []byte {
	t.Helper()
	_, headLen, err := cbor.ArrayHeadLength(tx)
	require.NoError(t, err)
	bodyEnd, err := cbor.SkipItem(tx, headLen)
	require.NoError(t, err)
	wsEnd, err := cbor.SkipItem(tx, bodyEnd)
	require.NoError(t, err)
	return tx[bodyEnd:wsEnd]
}

func TestNewVkeyWitnessSizes(t *testing.T) {
	_, err := ledger.NewVkeyWitness(make([]byte, 31), make([]byte, 64))
	assert.ErrorContains(t, err, "invalid vkey size: 31")
	_, err = ledger.NewVkeyWitness(make([]byte, 32), make([]byte, 65))
	assert.ErrorContains(t, err, "invalid signature size: 65")
}

func TestStandaloneWitnessSet(t *testing.T) {
	w := testWitness(t, "standalone", []byte{0xa0})
	data, err := ledger.StandaloneWitnessSet(w)
	require.NoError(t, err)
	expected := "a100d9010281825820" + hex.EncodeToString(w.Vkey) +
		"5840" + hex.EncodeToString(w.Signature)
	assert.Equal(t, expected, hex.EncodeToString(data))
	// The tag survives a tag-preserving decode
	v, err := cbor.DecodeValueWithTags(data)
	require.NoError(t, err)
	vkeys, ok := v.(cbor.Map).Get(cbor.Uint(0))
	require.True(t, ok)
	tagged, ok := vkeys.(cbor.Tagged)
	require.True(t, ok)
	assert.Equal(t, uint64(cbor.CborTagSet), tagged.Number)
	assert.Len(t, tagged.Content, 1)
}

func TestStandaloneWitnessSetMatchesTypedEncoder(t *testing.T) {
	w := testWitness(t, "typed", []byte{0xa0})
	data, err := ledger.StandaloneWitnessSet(w)
	require.NoError(t, err)
	typed, err := cbor.Encode(map[uint64]cbor.Set{0: {w}})
	require.NoError(t, err)
	assert.Equal(t, typed, data)
}

func TestMergeVkeyWitnessEmptyWitnessSet(t *testing.T) {
	tx := test.MinimalTx()
	decoded, err := cbor.DecodeValueFull(tx)
	require.NoError(t, err)
	items, err := ledger.CheckEnvelope(decoded)
	require.NoError(t, err)
	body, err := ledger.ExtractBodyBytes(tx)
	require.NoError(t, err)
	w := testWitness(t, "merge", body)
	merged, err := ledger.MergeVkeyWitness(items, w)
	require.NoError(t, err)
	bodyBytes, err := cbor.EncodeValue(items[0])
	require.NoError(t, err)
	standalone, err := ledger.StandaloneWitnessSet(w)
	require.NoError(t, err)
	expected := append([]byte{0x82}, bodyBytes...)
	expected = append(expected, standalone...)
	assert.Equal(t, expected, merged)
	// The decoded input is left untouched
	assert.Equal(t, cbor.Map{}, items[1])
}

func TestMergeVkeyWitnessAppendsToExisting(t *testing.T) {
	tx := test.DecodeHexString("82a0" + test.ExistingWitnessSetHex)
	decoded, err := cbor.DecodeValueFull(tx)
	require.NoError(t, err)
	w := testWitness(t, "append", []byte{0xa0})
	merged, err := ledger.MergeVkeyWitness(decoded.(cbor.Array), w)
	require.NoError(t, err)
	ws, err := ledger.DecodeWitnessSet(witnessSetSpan(t, merged))
	require.NoError(t, err)
	require.Len(t, ws.VkeyWitnesses, 2)
	assert.Equal(t, strings.Repeat("22", 32), hex.EncodeToString(ws.VkeyWitnesses[0].Vkey))
	assert.Equal(t, w.Vkey, ws.VkeyWitnesses[1].Vkey)
	assert.Equal(t, w.Signature, ws.VkeyWitnesses[1].Signature)
}

func TestMergeVkeyWitnessKeepsOtherEntries(t *testing.T) {
	// Witness set with only a native script list under key 1
	tx := test.DecodeHexString("82a0a1018100")
	decoded, err := cbor.DecodeValueFull(tx)
	require.NoError(t, err)
	w := testWitness(t, "other", []byte{0xa0})
	merged, err := ledger.MergeVkeyWitness(decoded.(cbor.Array), w)
	require.NoError(t, err)
	wsBytes := witnessSetSpan(t, merged)
	// Key 0 is written before key 1
	assert.Equal(t, "a200d9010281", hex.EncodeToString(wsBytes[:6]))
	ws, err := ledger.DecodeWitnessSet(wsBytes)
	require.NoError(t, err)
	assert.Len(t, ws.VkeyWitnesses, 1)
	assert.Equal(t, cbor.RawMessage{0x81, 0x00}, ws.Other[1])
}

func TestMergeVkeyWitnessErrors(t *testing.T) {
	w := testWitness(t, "errors", []byte{0xa0})
	testDefs := []struct {
		name string
		tx   cbor.Array
		err  error
	}{
		{
			name: "witness set is a list",
			tx:   cbor.Array{cbor.Map{}, cbor.Array{}},
			err:  ledger.ErrInvalidWitnessSet,
		},
		{
			name: "vkey witnesses are not a list",
			tx: cbor.Array{cbor.Map{}, cbor.Map{
				{Key: cbor.Uint(0), Value: cbor.Uint(1)},
			}},
			err: ledger.ErrInvalidWitnessSet,
		},
		{
			name: "missing witness set",
			tx:   cbor.Array{cbor.Map{}},
			err:  ledger.ErrInvalidEnvelope,
		},
	}
	for _, testDef := range testDefs {
		t.Run(testDef.name, func(t *testing.T) {
			_, err := ledger.MergeVkeyWitness(testDef.tx, w)
			assert.ErrorIs(t, err, testDef.err)
		})
	}
}

func TestDecodeWitnessSet(t *testing.T) {
	ws, err := ledger.DecodeWitnessSet(test.DecodeHexString(test.ExistingWitnessSetHex))
	require.NoError(t, err)
	require.Len(t, ws.VkeyWitnesses, 1)
	assert.Equal(t, strings.Repeat("33", 64), hex.EncodeToString(ws.VkeyWitnesses[0].Signature))
	assert.Empty(t, ws.Other)
	// Same witness without the set tag
	untagged := strings.Replace(test.ExistingWitnessSetHex, "d90102", "", 1)
	ws, err = ledger.DecodeWitnessSet(test.DecodeHexString(untagged))
	require.NoError(t, err)
	assert.Len(t, ws.VkeyWitnesses, 1)
}

func TestDecodeWitnessSetErrors(t *testing.T) {
	testDefs := []struct {
		name    string
		cborHex string
	}{
		{name: "not a map", cborHex: "80"},
		{name: "wrong tag", cborHex: strings.Replace(test.ExistingWitnessSetHex, "d90102", "d90103", 1)},
		{name: "trailing data", cborHex: test.ExistingWitnessSetHex + "00"},
		{name: "witness not a pair", cborHex: "a100d901028180"},
		{name: "truncated", cborHex: "a100"},
	}
	for _, testDef := range testDefs {
		t.Run(testDef.name, func(t *testing.T) {
			_, err := ledger.DecodeWitnessSet(test.DecodeHexString(testDef.cborHex))
			assert.ErrorIs(t, err, ledger.ErrInvalidWitnessSet)
		})
	}
}
