// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "errors"

var (
	// ErrMismatchedHashAndPassword is returned when the password does not
	// produce the stored hash.
	ErrMismatchedHashAndPassword = errors.New("hashed password is not the hash of the given password")

	// ErrInvalidHash is returned when a stored hash is not a well-formed
	// Argon2id PHC string.
	ErrInvalidHash = errors.New("the encoded hash is not in the correct format")

	// ErrIncompatibleVersion is returned for PHC strings produced by another
	// Argon2 version.
	ErrIncompatibleVersion = errors.New("incompatible version of argon2")
)
