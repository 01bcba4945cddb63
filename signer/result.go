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
	"encoding/hex"

	"github.com/blinklabs-io/cardano-txsign/extkey"
	"github.com/blinklabs-io/cardano-txsign/ledger"
)

// SignOutput holds the products of a successful signing call
type SignOutput struct {
	// SignedTx is the encoded [body, witness_set] with the new witness merged in
	SignedTx []byte
	// WitnessSet is the encoded witness set holding only the new witness
	WitnessSet []byte
	PublicKey  []byte
	Signature  []byte
	TxHash     ledger.Blake2b256
	KeyHash    ledger.Blake2b224
	KeyType    extkey.KeyType
}

// SignResult is the flat, hex-encoded outcome of SignTransaction. When
// Success is false only Error and Kind are set
type SignResult struct {
	Success       bool      `json:"success"`
	SignedTxHex   string    `json:"signed_tx_hex,omitempty"`
	WitnessSetHex string    `json:"witness_set_hex,omitempty"`
	PublicKeyHex  string    `json:"public_key_hex,omitempty"`
	SignatureHex  string    `json:"signature_hex,omitempty"`
	TxHashHex     string    `json:"tx_hash,omitempty"`
	KeyHashHex    string    `json:"key_hash,omitempty"`
	KeyHashBech32 string    `json:"key_hash_bech32,omitempty"`
	Error         string    `json:"error,omitempty"`
	Kind          ErrorKind `json:"error_kind,omitempty"`
}

// Result converts the output into a successful SignResult
func (o *SignOutput) Result() SignResult {
	return SignResult{
		Success:       true,
		SignedTxHex:   hex.EncodeToString(o.SignedTx),
		WitnessSetHex: hex.EncodeToString(o.WitnessSet),
		PublicKeyHex:  hex.EncodeToString(o.PublicKey),
		SignatureHex:  hex.EncodeToString(o.Signature),
		TxHashHex:     o.TxHash.String(),
		KeyHashHex:    o.KeyHash.String(),
		KeyHashBech32: o.KeyHash.Bech32(ledger.KeyHashBech32Prefix),
	}
}

func failureResult(err error) SignResult {
	return SignResult{
		Success: false,
		Error:   err.Error(),
		Kind:    KindOf(err),
	}
}
