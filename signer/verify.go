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
	"errors"
	"fmt"

	"github.com/blinklabs-io/cardano-txsign/ledger"
)

// VerifyWitnessSet checks every vkey witness in the hex-encoded witness set
// against the body of the hex-encoded transaction and returns the key hashes
// of the signers
func VerifyWitnessSet(txHex string, witnessSetHex string) ([]ledger.Blake2b224, error) {
	txBytes, err := decodeTxHex(txHex)
	if err != nil {
		return nil, newError(InvalidHex, StateHexDecoded, err)
	}
	witnessSet, err := hex.DecodeString(witnessSetHex)
	if err != nil {
		return nil, newError(InvalidHex, StateHexDecoded, fmt.Errorf("witness set: %w", err))
	}
	body, err := ledger.ExtractBodyBytes(txBytes)
	if err != nil {
		return nil, newError(InvalidStructure, StateBodyExtracted, err)
	}
	keyHashes, err := ledger.VerifyVkeyWitnesses(body, witnessSet)
	if err != nil {
		if errors.Is(err, ledger.ErrBadSignature) {
			return nil, newError(SigningFailed, StateVerified, err)
		}
		return nil, newError(InvalidStructure, StateVerified, err)
	}
	return keyHashes, nil
}
