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

package cbor

import (
	"reflect"

	_cbor "github.com/fxamacker/cbor/v2"
)

const (
	// Useful tag numbers
	CborTagCbor     = 24
	CborTagRational = 30
	CborTagSet      = 258
	CborTagMap      = 259
)

var customTagSet _cbor.TagSet

func init() {
	// Build custom tagset
	customTagSet = _cbor.NewTagSet()
	tagOpts := _cbor.TagOptions{EncTag: _cbor.EncTagRequired, DecTag: _cbor.DecTagRequired}
	// Sets
	if err := customTagSet.Add(
		tagOpts,
		reflect.TypeOf(Set{}),
		CborTagSet,
	); err != nil {
		panic(err)
	}
}

// Set corresponds to CBOR tag 258 and is used to represent a mathematical finite set
// when encoding typed structures
type Set []any

// NewSet wraps the provided items in a tag 258 value for use with EncodeValue
func NewSet(items ...Value) Tagged {
	arr := make(Array, len(items))
	copy(arr, items)
	return Tagged{Number: CborTagSet, Content: arr}
}
