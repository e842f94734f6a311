package cryptography

import (
	"github.com/matthewhartstonge/argon2"
	"vaultline.io/infrastructure/logger"
)

type argonHasher struct{}

// HashString hashes with argon2. Passing a fixed salt makes the
// output deterministic, which the session layer relies on to build
// cache key namespaces that never expose the raw session ID.
func (ah argonHasher) HashString(data string, salt []byte) ([]byte, error) {
	config := argon2.DefaultConfig()
	raw, err := config.Hash([]byte(data), salt)
	if err != nil {
		logger.Error("argon - error while hashing data", logger.LoggerOptions{
			Key:  "error",
			Data: err,
		})
		return nil, err
	}
	return raw.Encode(), nil
}

func (ah argonHasher) VerifyHashData(hash string, data string) bool {
	raw, err := argon2.Decode([]byte(hash))
	if err != nil {
		logger.Error("argon - could not decode data", logger.LoggerOptions{
			Key:  "error",
			Data: err,
		})
		return false
	}
	ok, err := raw.Verify([]byte(data))
	if err != nil {
		logger.Error("argon - error while verifying data", logger.LoggerOptions{
			Key:  "error",
			Data: err,
		})
		ok = false
	}
	return ok
}
