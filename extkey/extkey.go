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

// Package extkey signs messages with Cardano extended Ed25519 keys.
//
// An extended key is the 64-byte expansion kL||kR produced by BIP32-Ed25519
// style derivation. kL is already a scalar and must be used as is: hashing or
// clamping it again, as standard Ed25519 does with a 32-byte seed, would yield
// a different public key. kR is the nonce prefix.
//
// Legacy 32-byte seeds are also accepted and signed with standard Ed25519.
package extkey

import (
	"crypto/ed25519"
	"crypto/sha512"
	"fmt"
	"slices"

	"filippo.io/edwards25519"
)

const (
	// ExtendedKeySize is the size of an extended signing key (kL||kR) in bytes
	ExtendedKeySize = 64

	// SeedSize is the size of a legacy Ed25519 seed in bytes
	SeedSize = ed25519.SeedSize

	// PublicKeySize is the size of a verification key in bytes
	PublicKeySize = ed25519.PublicKeySize

	// SignatureSize is the size of a signature in bytes
	SignatureSize = ed25519.SignatureSize

	scalarSize = 32
)

type KeyType int

const (
	KeyTypeExtended KeyType = iota + 1
	KeyTypeLegacy
)

func (t KeyType) String() string {
	switch t {
	case KeyTypeExtended:
		return "extended"
	case KeyTypeLegacy:
		return "legacy"
	default:
		return fmt.Sprintf("KeyType(%d)", int(t))
	}
}

// SigningKey is a private key able to produce Ed25519 signatures that verify
// under its public key
type SigningKey interface {
	Type() KeyType
	PublicKey() []byte
	Sign(msg []byte) ([]byte, error)
	// Wipe zeroes the secret key material
	Wipe()
}

// ExtendedSigningKey is a 64-byte extended key kL||kR
type ExtendedSigningKey struct {
	key   [ExtendedKeySize]byte
	wiped bool
}

// NewExtendedSigningKey copies a 64-byte extended key. The caller keeps
// ownership of keyBytes and may wipe it independently
func NewExtendedSigningKey(keyBytes []byte) (*ExtendedSigningKey, error) {
	if len(keyBytes) != ExtendedKeySize {
		return nil, KeyLengthError{Length: len(keyBytes) * 2}
	}
	k := &ExtendedSigningKey{}
	copy(k.key[:], keyBytes)
	return k, nil
}

func (k *ExtendedSigningKey) Type() KeyType {
	return KeyTypeExtended
}

// scalar returns kL reduced modulo the group order. kL is read as a
// little-endian integer without clamping
func (k *ExtendedSigningKey) scalar() (*edwards25519.Scalar, error) {
	var wide [64]byte
	defer clear(wide[:])
	copy(wide[:scalarSize], k.key[:scalarSize])
	s := edwards25519.NewScalar()
	if _, err := s.SetUniformBytes(wide[:]); err != nil {
		return nil, err
	}
	return s, nil
}

// PublicKey returns kL*B, or nil once the key is wiped
func (k *ExtendedSigningKey) PublicKey() []byte {
	if k.wiped {
		return nil
	}
	s, err := k.scalar()
	if err != nil {
		// SetUniformBytes only fails on input that is not 64 bytes
		panic(fmt.Sprintf("unexpected error reducing scalar: %s", err))
	}
	return (&edwards25519.Point{}).ScalarBaseMult(s).Bytes()
}

// Sign produces a deterministic Ed25519 signature R||S over msg:
//
//	r = SHA-512(kR || msg) mod L
//	R = r*B
//	h = SHA-512(R || A || msg) mod L
//	S = r + h*kL mod L
func (k *ExtendedSigningKey) Sign(msg []byte) ([]byte, error) {
	if k.wiped {
		return nil, ErrKeyWiped
	}
	kL, err := k.scalar()
	if err != nil {
		return nil, err
	}
	A := (&edwards25519.Point{}).ScalarBaseMult(kL)

	h := sha512.New()
	h.Write(k.key[scalarSize:])
	h.Write(msg)
	nonceHash := h.Sum(nil)
	defer clear(nonceHash)
	r := edwards25519.NewScalar()
	if _, err := r.SetUniformBytes(nonceHash); err != nil {
		return nil, err
	}
	R := (&edwards25519.Point{}).ScalarBaseMult(r)

	h.Reset()
	h.Write(R.Bytes())
	h.Write(A.Bytes())
	h.Write(msg)
	hram := edwards25519.NewScalar()
	if _, err := hram.SetUniformBytes(h.Sum(nil)); err != nil {
		return nil, err
	}
	S := edwards25519.NewScalar().MultiplyAdd(hram, kL, r)

	sig := make([]byte, 0, SignatureSize)
	sig = append(sig, R.Bytes()...)
	sig = append(sig, S.Bytes()...)
	return sig, nil
}

func (k *ExtendedSigningKey) Wipe() {
	clear(k.key[:])
	k.wiped = true
}

// LegacySigningKey is a standard Ed25519 key generated from a 32-byte seed
type LegacySigningKey struct {
	key ed25519.PrivateKey
}

func NewLegacySigningKey(seed []byte) (*LegacySigningKey, error) {
	if len(seed) != SeedSize {
		return nil, KeyLengthError{Length: len(seed) * 2}
	}
	return &LegacySigningKey{
		key: ed25519.NewKeyFromSeed(seed),
	}, nil
}

func (k *LegacySigningKey) Type() KeyType {
	return KeyTypeLegacy
}

// PublicKey returns the verification key, or nil once the key is wiped
func (k *LegacySigningKey) PublicKey() []byte {
	if len(k.key) != ed25519.PrivateKeySize {
		return nil
	}
	return slices.Clone(k.key[SeedSize:])
}

func (k *LegacySigningKey) Sign(msg []byte) ([]byte, error) {
	if len(k.key) != ed25519.PrivateKeySize {
		return nil, ErrKeyWiped
	}
	return ed25519.Sign(k.key, msg), nil
}

func (k *LegacySigningKey) Wipe() {
	clear(k.key)
	k.key = nil
}
