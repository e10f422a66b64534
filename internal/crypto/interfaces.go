package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

// PasswordHasher derives and verifies password hashes with a slow, salted
// key-derivation function. Implementations must never retain or log the
// plaintext password.
type PasswordHasher interface {
	// GenerateSalt returns a fresh random per-user salt.
	GenerateSalt() ([]byte, error)

	// Hash derives the storable hash of password under salt.
	// Deterministic: the same password and salt always produce the same hash.
	Hash(password string, salt []byte) string

	// Verify recomputes the hash of password under salt and compares it to
	// storedHash in constant time with respect to the secret material.
	Verify(password string, salt []byte, storedHash string) bool
}

// EnvelopeCodec performs authenticated encryption of project secrets into a
// self-describing envelope: base64(iv || mac || ciphertext).
type EnvelopeCodec interface {
	// Encrypt seals plaintext into a fresh envelope. A new random IV is
	// generated on every call; two envelopes of the same plaintext differ.
	Encrypt(plaintext string) (string, error)

	// Decrypt opens an envelope. The second return value is false when the
	// blob is malformed, truncated, or fails MAC verification; such input
	// never yields plaintext and never panics.
	Decrypt(blob string) (string, bool)
}
