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

package signer

import (
	"errors"

	"github.com/blinklabs-io/cardano-txsign/cbor"
	"github.com/blinklabs-io/cardano-txsign/ledger"
)

// Inspection summarizes an encoded transaction without signing it
type Inspection struct {
	TxHash        ledger.Blake2b256 `json:"tx_hash"`
	BodySize      int               `json:"body_size"`
	Elements      int               `json:"elements"`
	VkeyWitnesses int               `json:"vkey_witnesses"`
	MessageLines  []string          `json:"message_lines,omitempty"`
	Diagnostic    string            `json:"diagnostic"`
}

// InspectTransaction decodes a transaction, keeping tags, and reports its
// body hash, witness count and any CIP-20 message. Malformed CBOR is reported
// as CborDecodeError with the failing offset
func InspectTransaction(txHex string) (*Inspection, error) {
	txBytes, err := decodeTxHex(txHex)
	if err != nil {
		return nil, newError(InvalidHex, StateHexDecoded, err)
	}
	decoded, err := cbor.DecodeValueWithTags(txBytes)
	if err != nil {
		return nil, newError(CborDecodeError, StateCborDecoded, err)
	}
	items, err := ledger.CheckEnvelope(decoded)
	if err != nil {
		return nil, newError(InvalidStructure, StateCborDecoded, err)
	}
	body, err := ledger.ExtractBodyBytes(txBytes)
	if err != nil {
		return nil, newError(CborDecodeError, StateBodyExtracted, err)
	}
	// The witness set directly follows the body
	_, headLen, err := cbor.ArrayHeadLength(txBytes)
	if err != nil {
		return nil, newError(CborDecodeError, StateBodyExtracted, err)
	}
	wsStart := headLen + len(body)
	wsEnd, err := cbor.SkipItem(txBytes, wsStart)
	if err != nil {
		return nil, newError(CborDecodeError, StateBodyExtracted, err)
	}
	ret := &Inspection{
		TxHash:     ledger.Blake2b256Hash(body),
		BodySize:   len(body),
		Elements:   len(items),
		Diagnostic: cbor.Diagnose(decoded),
	}
	ws, err := ledger.DecodeWitnessSet(txBytes[wsStart:wsEnd])
	if err != nil {
		return nil, newError(InvalidStructure, StateWitnessBuilt, err)
	}
	ret.VkeyWitnesses = len(ws.VkeyWitnesses)
	if len(items) == 4 {
		if lines, ok := ledger.MessageLines(stripTags(items[3])); ok {
			ret.MessageLines = lines
		}
	}
	return ret, nil
}

// stripTags unwraps a top-level tag, as used by Alonzo-era auxiliary data
func stripTags(v cbor.Value) cbor.Value {
	for {
		tagged, ok := v.(cbor.Tagged)
		if !ok {
			return v
		}
		v = tagged.Content
	}
}

// AsDecodeError returns the positional CBOR decode failure carried by err, if any
func AsDecodeError(err error) (*cbor.DecodeError, bool) {
	var decErr *cbor.DecodeError
	if errors.As(err, &decErr) {
		return decErr, true
	}
	return nil, false
}
