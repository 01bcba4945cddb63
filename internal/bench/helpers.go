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

// Package bench provides benchmark utilities and synthetic transaction
// fixtures for memory profiling.
package bench

import (
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/blinklabs-io/cardano-txsign/cbor"
	"github.com/blinklabs-io/cardano-txsign/internal/test"
	"github.com/blinklabs-io/cardano-txsign/ledger"
)

// TxFixture contains a pre-built transaction for benchmarking.
type TxFixture struct {
	Name string
	Cbor []byte
	// Number of vkey witnesses already present
	Witnesses int
}

// FixtureNames returns the names accepted by LoadTxFixture
func FixtureNames() []string {
	return []string{"minimal", "large", "witnessed", "metadata"}
}

// LoadTxFixture builds the named synthetic transaction. The name is one of:
// "minimal", "large" (many inputs and outputs), "witnessed" (existing vkey
// witnesses) or "metadata" (CIP-20 auxiliary data)
func LoadTxFixture(name string) (*TxFixture, error) {
	var items cbor.Array
	witnesses := 0
	switch strings.ToLower(name) {
	case "minimal":
		items = cbor.Array{test.MinimalTxBody(), cbor.Map{}}
	case "large":
		items = cbor.Array{largeTxBody(100, 50), cbor.Map{}}
	case "witnessed":
		witnesses = 20
		items = cbor.Array{test.MinimalTxBody(), witnessSet(witnesses)}
	case "metadata":
		metadata, err := ledger.NewMessageMetadata(
			"Blog Post Signature",
			"Title: "+strings.Repeat("benchmark ", 10),
			"Signed with tx-sign",
		)
		if err != nil {
			return nil, err
		}
		items = cbor.Array{test.MinimalTxBody(), cbor.Map{}, cbor.Bool(true), metadata}
	default:
		return nil, fmt.Errorf("unknown fixture: %s", name)
	}
	data, err := cbor.EncodeValue(items)
	if err != nil {
		return nil, fmt.Errorf("encode %s fixture: %w", name, err)
	}
	return &TxFixture{
		Name:      name,
		Cbor:      data,
		Witnesses: witnesses,
	}, nil
}

// MustLoadTxFixture builds a fixture and panics on error.
// Use this in benchmark init() or setup code.
func MustLoadTxFixture(name string) *TxFixture {
	fixture, err := LoadTxFixture(name)
	if err != nil {
		panic(fmt.Sprintf("failed to load %s tx fixture: %v", name, err))
	}
	return fixture
}

// fakeHash returns a deterministic 32-byte value derived from the index
func fakeHash(idx int) cbor.ByteString {
	ret := make(cbor.ByteString, 32)
	binary.BigEndian.PutUint64(ret[24:], uint64(idx)+1)
	return ret
}

func largeTxBody(inputs int, outputs int) cbor.Map {
	inputList := make(cbor.Array, 0, inputs)
	for i := range inputs {
		inputList = append(inputList, cbor.Array{fakeHash(i), cbor.Uint(i % 4)})
	}
	outputList := make(cbor.Array, 0, outputs)
	for i := range outputs {
		addr := append(cbor.ByteString{0x61}, fakeHash(i)[4:]...)
		outputList = append(outputList, cbor.Array{addr, cbor.Uint(1000000 + i)})
	}
	return cbor.Map{
		{Key: cbor.Uint(0), Value: cbor.NewSet(inputList...)},
		{Key: cbor.Uint(1), Value: outputList},
		{Key: cbor.Uint(2), Value: cbor.Uint(250000)},
		{Key: cbor.Uint(3), Value: cbor.Uint(90000000)},
	}
}

func witnessSet(count int) cbor.Map {
	witnesses := make(cbor.Array, 0, count)
	for i := range count {
		sig := append(fakeHash(i), fakeHash(i+count)...)
		witnesses = append(witnesses, cbor.Array{fakeHash(i), sig})
	}
	return cbor.Map{
		{Key: cbor.Uint(0), Value: cbor.NewSet(witnesses...)},
	}
}
