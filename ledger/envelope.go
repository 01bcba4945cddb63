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
	"fmt"

	"github.com/blinklabs-io/cardano-txsign/cbor"
)

const (
	minEnvelopeLength = 2
	maxEnvelopeLength = 4
)

// TxEnvelope is a transaction split into its original body bytes and its
// decoded top-level array
type TxEnvelope struct {
	// Body is a sub-slice of the transaction bytes, exactly as supplied
	Body     []byte
	BodyHash Blake2b256
	Items    cbor.Array
}

// ExtractBodyBytes returns the bytes of the first element of the top-level
// transaction array. The returned slice aliases tx and is never re-encoded,
// so hashing it yields the transaction ID even for non-canonical encodings
func ExtractBodyBytes(tx []byte) ([]byte, error) {
	_, headLen, err := cbor.ArrayHeadLength(tx)
	if err != nil {
		return nil, err
	}
	bodyEnd, err := cbor.SkipItem(tx, headLen)
	if err != nil {
		return nil, fmt.Errorf("walk transaction body: %w", err)
	}
	return tx[headLen:bodyEnd], nil
}

// CheckEnvelope verifies that a decoded transaction is an array of 2 to 4
// elements: body, witness set and the optional validity flag and auxiliary data
func CheckEnvelope(v cbor.Value) (cbor.Array, error) {
	items, ok := v.(cbor.Array)
	if !ok {
		return nil, fmt.Errorf("%w: got major type 0x%02x", ErrInvalidEnvelope, v.MajorType())
	}
	if len(items) < minEnvelopeLength || len(items) > maxEnvelopeLength {
		return nil, EnvelopeLengthError{Length: len(items)}
	}
	return items, nil
}

// ParseTxEnvelope extracts and hashes the body and decodes the whole transaction
func ParseTxEnvelope(tx []byte) (*TxEnvelope, error) {
	body, err := ExtractBodyBytes(tx)
	if err != nil {
		return nil, err
	}
	decoded, err := cbor.DecodeValueFull(tx)
	if err != nil {
		return nil, err
	}
	items, err := CheckEnvelope(decoded)
	if err != nil {
		return nil, err
	}
	return &TxEnvelope{
		Body:     body,
		BodyHash: Blake2b256Hash(body),
		Items:    items,
	}, nil
}

// WitnessSet returns the decoded witness set element
func (e *TxEnvelope) WitnessSet() cbor.Value {
	return e.Items[1]
}
