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
	"encoding/hex"
	"math"
	"strconv"
	"strings"
)

// Diagnose renders a value in CBOR diagnostic notation for debugging purposes.
// Byte strings are rendered as h'...', so it must never be given secret material
func Diagnose(v Value) string {
	var sb strings.Builder
	writeDiag(&sb, v)
	return sb.String()
}

func writeDiag(sb *strings.Builder, v Value) {
	switch val := v.(type) {
	case Uint:
		sb.WriteString(strconv.FormatUint(uint64(val), 10))
	case NegInt:
		if i, ok := val.Int64(); ok {
			sb.WriteString(strconv.FormatInt(i, 10))
		} else {
			// -1-n does not fit an int64
			sb.WriteString("-1-" + strconv.FormatUint(uint64(val), 10))
		}
	case ByteString:
		sb.WriteString("h'" + hex.EncodeToString(val) + "'")
	case TextString:
		sb.WriteString(strconv.Quote(string(val)))
	case Array:
		sb.WriteByte('[')
		for i, item := range val {
			if i > 0 {
				sb.WriteString(", ")
			}
			writeDiag(sb, item)
		}
		sb.WriteByte(']')
	case Map:
		sb.WriteByte('{')
		for i, entry := range val {
			if i > 0 {
				sb.WriteString(", ")
			}
			writeDiag(sb, entry.Key)
			sb.WriteString(": ")
			writeDiag(sb, entry.Value)
		}
		sb.WriteByte('}')
	case Tagged:
		sb.WriteString(strconv.FormatUint(val.Number, 10) + "(")
		writeDiag(sb, val.Content)
		sb.WriteByte(')')
	case Bool:
		sb.WriteString(strconv.FormatBool(bool(val)))
	case Null:
		sb.WriteString("null")
	case Float64:
		f := float64(val)
		switch {
		case math.IsNaN(f):
			sb.WriteString("NaN")
		case math.IsInf(f, 1):
			sb.WriteString("Infinity")
		case math.IsInf(f, -1):
			sb.WriteString("-Infinity")
		default:
			s := strconv.FormatFloat(f, 'g', -1, 64)
			if !strings.ContainsAny(s, ".eEn") {
				s += ".0"
			}
			sb.WriteString(s)
		}
	default:
		sb.WriteString("undefined")
	}
}
