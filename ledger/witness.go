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
	"fmt"
	"slices"

	"github.com/blinklabs-io/cardano-txsign/cbor"
)

// Witness set map key holding the vkey witnesses
const WitnessSetKeyVkey = 0

type VkeyWitness struct {
	cbor.StructAsArray
	Vkey      []byte
	Signature []byte
}

// NewVkeyWitness builds a witness from a 32-byte verification key and a 64-byte signature
func NewVkeyWitness(vkey []byte, signature []byte) (VkeyWitness, error) {
	if len(vkey) != ed25519.PublicKeySize {
		return VkeyWitness{}, fmt.Errorf("invalid vkey size: %d", len(vkey))
	}
	if len(signature) != ed25519.SignatureSize {
		return VkeyWitness{}, fmt.Errorf("invalid signature size: %d", len(signature))
	}
	return VkeyWitness{
		Vkey:      slices.Clone(vkey),
		Signature: slices.Clone(signature),
	}, nil
}

// ToValue returns the witness as the CBOR array [vkey, signature]
func (w VkeyWitness) ToValue() cbor.Value {
	return cbor.Array{
		cbor.ByteString(w.Vkey),
		cbor.ByteString(w.Signature),
	}
}

func (w VkeyWitness) KeyHash() Blake2b224 {
	return KeyHash(w.Vkey)
}

// MergeVkeyWitness appends a vkey witness to the witness set of a decoded
// transaction and encodes the result as [body, witness_set]. Existing vkey
// witnesses and all other witness set entries are kept; the vkey list is always
// written as a tag 258 set. The decoded transaction is not modified
func MergeVkeyWitness(tx cbor.Array, w VkeyWitness) ([]byte, error) {
	if len(tx) < minEnvelopeLength {
		return nil, EnvelopeLengthError{Length: len(tx)}
	}
	witnessSet, ok := tx[1].(cbor.Map)
	if !ok {
		return nil, fmt.Errorf(
			"%w: expected map, got major type 0x%02x",
			ErrInvalidWitnessSet,
			tx[1].MajorType(),
		)
	}
	vkeyKey := cbor.Uint(WitnessSetKeyVkey)
	var existing cbor.Array
	if v, ok := witnessSet.Get(vkeyKey); ok {
		// Tags are normally dropped by the decoder, but accept them here too
		if tagged, ok := v.(cbor.Tagged); ok {
			v = tagged.Content
		}
		existing, ok = v.(cbor.Array)
		if !ok {
			return nil, fmt.Errorf(
				"%w: vkey witnesses are not a list",
				ErrInvalidWitnessSet,
			)
		}
	}
	witnesses := make(cbor.Array, 0, len(existing)+1)
	witnesses = append(witnesses, existing...)
	witnesses = append(witnesses, w.ToValue())
	merged := witnessSet.Set(vkeyKey, cbor.NewSet(witnesses...))
	return cbor.EncodeValue(cbor.Array{tx[0], merged})
}

// StandaloneWitnessSet encodes a witness set holding only the provided witness
func StandaloneWitnessSet(w VkeyWitness) ([]byte, error) {
	return cbor.EncodeValue(cbor.Map{
		{
			Key:   cbor.Uint(WitnessSetKeyVkey),
			Value: cbor.NewSet(w.ToValue()),
		},
	})
}

// WitnessSet is a typed view of an encoded transaction witness set. Only the
// vkey witnesses are decoded; other entries are kept as raw CBOR
type WitnessSet struct {
	VkeyWitnesses []VkeyWitness
	Other         map[uint64]cbor.RawMessage
}

// DecodeWitnessSet parses an encoded witness set map. The vkey witness list
// is accepted with or without tag 258
func DecodeWitnessSet(data []byte) (*WitnessSet, error) {
	var raw map[uint64]cbor.RawMessage
	n, err := cbor.Decode(data, &raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidWitnessSet, err)
	}
	if n != len(data) {
		return nil, fmt.Errorf(
			"%w: %d trailing bytes",
			ErrInvalidWitnessSet,
			len(data)-n,
		)
	}
	ret := &WitnessSet{
		Other: make(map[uint64]cbor.RawMessage),
	}
	for key, value := range raw {
		if key != WitnessSetKeyVkey {
			ret.Other[key] = value
			continue
		}
		witnesses, err := decodeVkeyWitnesses(value)
		if err != nil {
			return nil, err
		}
		ret.VkeyWitnesses = witnesses
	}
	return ret, nil
}

func decodeVkeyWitnesses(data []byte) ([]VkeyWitness, error) {
	content := data
	if len(data) > 0 && data[0]&cbor.CborTypeMask == cbor.CborTypeTag {
		var tag cbor.RawTag
		if _, err := cbor.Decode(data, &tag); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidWitnessSet, err)
		}
		if tag.Number != cbor.CborTagSet {
			return nil, fmt.Errorf(
				"%w: unexpected tag %d on vkey witnesses",
				ErrInvalidWitnessSet,
				tag.Number,
			)
		}
		content = tag.Content
	}
	var ret []VkeyWitness
	if _, err := cbor.Decode(content, &ret); err != nil {
		return nil, fmt.Errorf("%w: vkey witnesses: %w", ErrInvalidWitnessSet, err)
	}
	return ret, nil
}
