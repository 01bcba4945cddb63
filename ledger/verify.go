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
	"crypto/ed25519"
	"errors"
	"fmt"
)

// VerifyVKeySignature verifies an ed25519 signature against the provided public key and message.
func VerifyVKeySignature(pubKey, sig, msg []byte) error {
	if len(pubKey) != ed25519.PublicKeySize {
		return fmt.Errorf("invalid public key size: %d", len(pubKey))
	}
	if len(sig) != ed25519.SignatureSize {
		return fmt.Errorf("invalid signature size: %d", len(sig))
	}
	if !ed25519.Verify(ed25519.PublicKey(pubKey), msg, sig) {
		return errors.New("signature verification failed")
	}
	return nil
}

// VerifyVkeyWitnesses checks every vkey witness in the encoded witness set
// against the Blake2b-256 hash of the body bytes. It returns the key hashes
// of the witnesses in order, or a SignatureError for the first one that fails
func VerifyVkeyWitnesses(body []byte, witnessSet []byte) ([]Blake2b224, error) {
	ws, err := DecodeWitnessSet(witnessSet)
	if err != nil {
		return nil, err
	}
	if len(ws.VkeyWitnesses) == 0 {
		return nil, ErrNoVkeyWitnesses
	}
	bodyHash := Blake2b256Hash(body)
	ret := make([]Blake2b224, 0, len(ws.VkeyWitnesses))
	for idx, vw := range ws.VkeyWitnesses {
		if err := VerifyVKeySignature(vw.Vkey, vw.Signature, bodyHash.Bytes()); err != nil {
			return nil, SignatureError{
				Index:   idx,
				KeyHash: vw.KeyHash(),
				Err:     err,
			}
		}
		ret = append(ret, vw.KeyHash())
	}
	return ret, nil
}
