package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/password_hasher_mock.go -package=mock

// PasswordHasher produces and checks PHC-encoded Argon2id password hashes:
//
//	$argon2id$v=19$m=<memory KiB>,t=<iterations>,p=<parallelism>$<salt>$<hash>
//
// Both methods are CPU- and memory-intensive and should not run on a
// latency-sensitive goroutine without a bound on concurrency.
type PasswordHasher interface {
	// Hash derives a new PHC string for password with a random salt.
	Hash(password string) (string, error)

	// Verify recomputes the hash of password with the parameters and salt
	// stored in encodedHash. It returns nil on a match,
	// ErrMismatchedHashAndPassword on a mismatch, and ErrInvalidHash when
	// encodedHash cannot be parsed.
	Verify(encodedHash, password string) error
}
