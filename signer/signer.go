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

// Package signer attaches a vkey witness to an encoded Cardano transaction.
//
// SignTransaction runs a strictly linear pipeline: decode hex, extract the
// original body bytes, hash them, decode the envelope, select the key scheme,
// sign, then build and encode the witness outputs. Each call is independent
// and safe to run concurrently.
package signer

import (
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/blinklabs-io/cardano-txsign/cbor"
	"github.com/blinklabs-io/cardano-txsign/extkey"
	"github.com/blinklabs-io/cardano-txsign/ledger"
)

// State identifies a step of the signing pipeline
type State string

const (
	StateHexDecoded    State = "hex-decode"
	StateBodyExtracted State = "body-extract"
	StateCborDecoded   State = "cbor-decode"
	StateKeySelected   State = "key-select"
	StateSigned        State = "sign"
	StateWitnessBuilt  State = "witness-build"
	StateEncoded       State = "encode"
	StateVerified      State = "self-verify"
)

// SignTransaction signs the transaction body and returns a flat result. It
// never panics on malformed input and never returns partial output
func SignTransaction(txHex string, signingKeyHex string, opts ...SignOptionFunc) SignResult {
	out, err := SignTransactionE(txHex, signingKeyHex, opts...)
	if err != nil {
		return failureResult(err)
	}
	return out.Result()
}

// SignTransactionE is like SignTransaction but returns the raw output and a
// *Error on failure
func SignTransactionE(txHex string, signingKeyHex string, opts ...SignOptionFunc) (*SignOutput, error) {
	cfg := newConfig(opts)
	logger := cfg.logger

	// Start -> HexDecoded
	txBytes, err := decodeTxHex(txHex)
	if err != nil {
		return nil, newError(InvalidHex, StateHexDecoded, err)
	}
	if err := extkey.CheckHex(signingKeyHex); err != nil {
		return nil, newError(InvalidHex, StateHexDecoded, err)
	}
	logger.Debug(
		"decoded transaction hex",
		"tx_size",
		len(txBytes),
	)

	// HexDecoded -> BodyExtracted
	body, err := ledger.ExtractBodyBytes(txBytes)
	if err != nil {
		return nil, newError(InvalidStructure, StateBodyExtracted, err)
	}

	// BodyExtracted -> BodyHashed
	txHash := ledger.Blake2b256Hash(body)
	logger.Debug(
		"hashed transaction body",
		"body_size",
		len(body),
		"tx_hash",
		txHash.String(),
	)

	// BodyHashed -> CborDecoded
	decoded, err := cbor.DecodeValueFull(txBytes)
	if err != nil {
		return nil, newError(InvalidStructure, StateCborDecoded, err)
	}
	items, err := ledger.CheckEnvelope(decoded)
	if err != nil {
		return nil, newError(InvalidStructure, StateCborDecoded, err)
	}

	// CborDecoded -> KeySelected
	key, err := extkey.ParseSigningKey(signingKeyHex)
	if err != nil {
		if errors.Is(err, extkey.ErrInvalidKeyLength) {
			return nil, newError(InvalidKeyLength, StateKeySelected, err)
		}
		return nil, newError(InvalidHex, StateKeySelected, err)
	}
	defer key.Wipe()
	logger.Debug(
		"selected signing key",
		"key_type",
		key.Type().String(),
	)

	// KeySelected -> Signed
	signature, err := key.Sign(txHash.Bytes())
	if err != nil {
		return nil, newError(SigningFailed, StateSigned, err)
	}
	publicKey := key.PublicKey()
	keyType := key.Type()
	key.Wipe()

	// Signed -> WitnessBuilt
	witness, err := ledger.NewVkeyWitness(publicKey, signature)
	if err != nil {
		return nil, newError(SigningFailed, StateWitnessBuilt, err)
	}
	signedTx, err := ledger.MergeVkeyWitness(items, witness)
	if err != nil {
		return nil, newError(InvalidStructure, StateWitnessBuilt, err)
	}

	// WitnessBuilt -> Encoded
	witnessSet, err := ledger.StandaloneWitnessSet(witness)
	if err != nil {
		return nil, newError(SigningFailed, StateEncoded, err)
	}
	if cfg.selfVerify {
		if _, err := ledger.VerifyVkeyWitnesses(body, witnessSet); err != nil {
			return nil, newError(SigningFailed, StateVerified, err)
		}
	}

	out := &SignOutput{
		SignedTx:   signedTx,
		WitnessSet: witnessSet,
		PublicKey:  publicKey,
		Signature:  signature,
		TxHash:     txHash,
		KeyHash:    witness.KeyHash(),
		KeyType:    keyType,
	}
	logger.Debug(
		"signed transaction",
		"tx_hash",
		txHash.String(),
		"key_hash",
		out.KeyHash.String(),
		"signed_tx_size",
		len(signedTx),
	)
	return out, nil
}

func decodeTxHex(txHex string) ([]byte, error) {
	if txHex == "" {
		return nil, errors.New("transaction hex is empty")
	}
	txBytes, err := hex.DecodeString(txHex)
	if err != nil {
		return nil, fmt.Errorf("transaction: %w", err)
	}
	return txBytes, nil
}
