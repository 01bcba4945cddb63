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

package cbor_test

import (
	"math"
	"testing"

	"github.com/blinklabs-io/cardano-txsign/cbor"
	"github.com/stretchr/testify/assert"
)

func TestNewInt(t *testing.T) {
	assert.Equal(t, cbor.Uint(0), cbor.NewInt(0))
	assert.Equal(t, cbor.Uint(42), cbor.NewInt(42))
	assert.Equal(t, cbor.NegInt(0), cbor.NewInt(-1))
	assert.Equal(t, cbor.NegInt(math.MaxInt64), cbor.NewInt(math.MinInt64))
}

func TestNegIntInt64(t *testing.T) {
	v, ok := cbor.NegInt(9).Int64()
	assert.True(t, ok)
	assert.Equal(t, int64(-10), v)
	_, ok = cbor.NegInt(math.MaxUint64).Int64()
	assert.False(t, ok)
}

func TestMapGetSet(t *testing.T) {
	m := cbor.Map{
		{Key: cbor.TextString("a"), Value: cbor.Uint(1)},
	}
	_, ok := m.Get(cbor.Uint(0))
	assert.False(t, ok)

	m2 := m.Set(cbor.Uint(0), cbor.Null{})
	assert.Len(t, m, 1, "Set must not modify the receiver")
	assert.Len(t, m2, 2)
	v, ok := m2.Get(cbor.Uint(0))
	assert.True(t, ok)
	assert.Equal(t, cbor.Null{}, v)

	m3 := m2.Set(cbor.TextString("a"), cbor.Uint(2))
	assert.Len(t, m3, 2)
	assert.Equal(t, cbor.TextString("a"), m3[0].Key, "existing entries keep their position")
	v, _ = m2.Get(cbor.TextString("a"))
	assert.Equal(t, cbor.Uint(1), v)
	v, _ = m3.Get(cbor.TextString("a"))
	assert.Equal(t, cbor.Uint(2), v)
}

func TestEqual(t *testing.T) {
	assert.True(t, cbor.Equal(cbor.ByteString{1}, cbor.ByteString{1}))
	assert.False(t, cbor.Equal(cbor.ByteString{1}, cbor.TextString("\x01")))
	assert.False(t, cbor.Equal(cbor.Uint(1), cbor.NegInt(1)))
	assert.False(t, cbor.Equal(cbor.Array{cbor.Uint(1)}, cbor.Array{}))
	assert.True(t, cbor.Equal(
		cbor.Tagged{Number: 258, Content: cbor.Array{}},
		cbor.NewSet(),
	))
	assert.False(t, cbor.Equal(
		cbor.Tagged{Number: 259, Content: cbor.Array{}},
		cbor.NewSet(),
	))
	assert.False(t, cbor.Equal(nil, cbor.Null{}))
	assert.True(t, cbor.Equal(cbor.Float64(math.NaN()), cbor.Float64(math.NaN())))
}

func TestMajorType(t *testing.T) {
	assert.Equal(t, cbor.CborTypeArray, cbor.Array{}.MajorType())
	assert.Equal(t, cbor.CborTypeTag, cbor.NewSet().MajorType())
	assert.Equal(t, cbor.CborTypeSimpleFloat, cbor.Null{}.MajorType())
}
