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
	"errors"
	"fmt"
)

// ErrorKind classifies signing failures
type ErrorKind int

const (
	InvalidHex ErrorKind = iota + 1
	InvalidStructure
	InvalidKeyLength
	CborDecodeError
	SigningFailed
)

var (
	ErrInvalidHex       = errors.New("invalid hex")
	ErrInvalidStructure = errors.New("invalid transaction structure")
	ErrInvalidKeyLength = errors.New("invalid signing key length")
	ErrCborDecode       = errors.New("CBOR decode failed")
	ErrSigningFailed    = errors.New("signing failed")
)

func (k ErrorKind) String() string {
	switch k {
	case InvalidHex:
		return "InvalidHex"
	case InvalidStructure:
		return "InvalidStructure"
	case InvalidKeyLength:
		return "InvalidKeyLength"
	case CborDecodeError:
		return "CborDecodeError"
	case SigningFailed:
		return "SigningFailed"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

func (k ErrorKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *ErrorKind) UnmarshalText(text []byte) error {
	for kind := InvalidHex; kind <= SigningFailed; kind++ {
		if kind.String() == string(text) {
			*k = kind
			return nil
		}
	}
	return fmt.Errorf("unknown error kind: %q", string(text))
}

func (k ErrorKind) sentinel() error {
	switch k {
	case InvalidHex:
		return ErrInvalidHex
	case InvalidStructure:
		return ErrInvalidStructure
	case InvalidKeyLength:
		return ErrInvalidKeyLength
	case CborDecodeError:
		return ErrCborDecode
	case SigningFailed:
		return ErrSigningFailed
	}
	return nil
}

// Error is returned by every operation in this package. Op names the
// pipeline step that failed
type Error struct {
	Kind ErrorKind
	Op   State
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches the sentinel error for the error kind
func (e *Error) Is(target error) bool {
	return target != nil && target == e.Kind.sentinel()
}

func newError(kind ErrorKind, op State, err error) *Error {
	return &Error{Kind: kind, Op: op, Err: err}
}

// KindOf returns the kind of a signer error. Errors from outside this package
// are reported as SigningFailed
func KindOf(err error) ErrorKind {
	var signerErr *Error
	if errors.As(err, &signerErr) {
		return signerErr.Kind
	}
	return SigningFailed
}
