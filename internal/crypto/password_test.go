// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

// cheapParams keep the tests fast.
var cheapParams = Params{Memory: 64, Iterations: 1, Parallelism: 1, SaltLength: 16, KeyLength: 32}

const knownDecoy = "$argon2id$v=19$m=15000,t=2,p=1$gZiV/M1gPc22ElAH/Jh1Hw$CWOrkoo7oJBQ/iyh7uJ0LO2aLEfrHwTWllSAxT0zRno"

func TestHash_Format(t *testing.T) {
	h := NewPasswordHasher(cheapParams)

	encoded, err := h.Hash("secret")
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}
	if !strings.HasPrefix(encoded, "$argon2id$v=19$m=64,t=1,p=1$") {
		t.Fatalf("unexpected PHC prefix: %s", encoded)
	}

	params, salt, key, err := DecodeHash(encoded)
	if err != nil {
		t.Fatalf("DecodeHash() error = %v", err)
	}
	if params.Memory != 64 || params.Iterations != 1 || params.Parallelism != 1 {
		t.Fatalf("params = %+v", params)
	}
	if len(salt) != 16 || len(key) != 32 {
		t.Fatalf("salt len = %d, key len = %d", len(salt), len(key))
	}
}

func TestHash_SaltIsRandom(t *testing.T) {
	h := NewPasswordHasher(cheapParams)

	a, err := h.Hash("secret")
	if err != nil {
		t.Fatal(err)
	}
	b, err := h.Hash("secret")
	if err != nil {
		t.Fatal(err)
	}
	if a == b {
		t.Fatal("two hashes of the same password must differ")
	}
}

func TestHash_SaltReadError(t *testing.T) {
	h := &argon2Hasher{params: cheapParams, rand: bytes.NewReader(nil)}

	if _, err := h.Hash("secret"); err == nil {
		t.Fatal("expected error when salt source is exhausted")
	}
}

func TestVerify_RoundTrip(t *testing.T) {
	h := NewPasswordHasher(cheapParams)

	encoded, err := h.Hash("correct horse")
	if err != nil {
		t.Fatal(err)
	}

	if err := h.Verify(encoded, "correct horse"); err != nil {
		t.Fatalf("Verify(correct) = %v, want nil", err)
	}
	if err := h.Verify(encoded, "wrong horse"); !errors.Is(err, ErrMismatchedHashAndPassword) {
		t.Fatalf("Verify(wrong) = %v, want ErrMismatchedHashAndPassword", err)
	}
	if err := h.Verify(encoded, ""); !errors.Is(err, ErrMismatchedHashAndPassword) {
		t.Fatalf("Verify(empty) = %v, want ErrMismatchedHashAndPassword", err)
	}
}

func TestVerify_UsesEncodedParams(t *testing.T) {
	encoded, err := NewPasswordHasher(cheapParams).Hash("pw")
	if err != nil {
		t.Fatal(err)
	}

	// a hasher configured differently must still verify older hashes
	other := NewPasswordHasher(Params{Memory: 128, Iterations: 2, Parallelism: 2, SaltLength: 8, KeyLength: 16})
	if err := other.Verify(encoded, "pw"); err != nil {
		t.Fatalf("Verify() = %v, want nil", err)
	}
}

func TestDecodeHash_Decoy(t *testing.T) {
	params, salt, key, err := DecodeHash(knownDecoy)
	if err != nil {
		t.Fatalf("DecodeHash(decoy) error = %v", err)
	}
	if params.Memory != 15000 || params.Iterations != 2 || params.Parallelism != 1 {
		t.Fatalf("params = %+v", params)
	}
	if len(salt) != 16 || len(key) != 32 {
		t.Fatalf("salt len = %d, key len = %d", len(salt), len(key))
	}
}

func TestDecodeHash_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		encoded string
		wantErr error
	}{
		{"empty", "", ErrInvalidHash},
		{"bcrypt", "$2a$10$abcdefghijklmnopqrstuu", ErrInvalidHash},
		{"argon2i", "$argon2i$v=19$m=64,t=1,p=1$c2FsdHNhbHQ$aGFzaA", ErrInvalidHash},
		{"wrong version", "$argon2id$v=16$m=64,t=1,p=1$c2FsdHNhbHQ$aGFzaA", ErrIncompatibleVersion},
		{"bad version", "$argon2id$v=x$m=64,t=1,p=1$c2FsdHNhbHQ$aGFzaA", ErrInvalidHash},
		{"bad params", "$argon2id$v=19$m=x,t=1,p=1$c2FsdHNhbHQ$aGFzaA", ErrInvalidHash},
		{"zero iterations", "$argon2id$v=19$m=64,t=0,p=1$c2FsdHNhbHQ$aGFzaA", ErrInvalidHash},
		{"bad salt", "$argon2id$v=19$m=64,t=1,p=1$***$aGFzaA", ErrInvalidHash},
		{"bad key", "$argon2id$v=19$m=64,t=1,p=1$c2FsdHNhbHQ$***", ErrInvalidHash},
		{"empty key", "$argon2id$v=19$m=64,t=1,p=1$c2FsdHNhbHQ$", ErrInvalidHash},
		{"leading garbage", "x$argon2id$v=19$m=64,t=1,p=1$c2FsdHNhbHQ$aGFzaA", ErrInvalidHash},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, _, err := DecodeHash(tt.encoded)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("DecodeHash() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestVerify_InvalidHash(t *testing.T) {
	err := NewPasswordHasher(cheapParams).Verify("not-a-hash", "pw")
	if !errors.Is(err, ErrInvalidHash) {
		t.Fatalf("Verify() = %v, want ErrInvalidHash", err)
	}
}
