package cryptography

import (
	"fmt"
	"math/big"

	rsaDomain "textbook_rsa_service/internal/domain/rsa"
	"textbook_rsa_service/internal/pkg/logger"
)

// modExpCipher struct that implements the Cipher interface. Both directions
// are pure modular exponentiation; big.Int.Exp squares under the modulus,
// never materializing the full power.
type modExpCipher struct {
	logger logger.Logger
}

// NewCipher creates and returns a new instance of modExpCipher
func NewCipher(logger logger.Logger) (rsaDomain.Cipher, error) {
	return &modExpCipher{
		logger: logger,
	}, nil
}

// Encrypt returns block^e mod n. A block at or above the modulus would be
// silently truncated by the reduction and never round-trip, so it is
// rejected loudly instead.
func (c *modExpCipher) Encrypt(block *big.Int, publicKey *rsaDomain.PublicKey) (*big.Int, error) {
	if publicKey == nil || publicKey.N == nil || publicKey.E == nil {
		return nil, fmt.Errorf("public key cannot be nil")
	}
	if block == nil || block.Sign() < 0 {
		return nil, fmt.Errorf("block must be a non-negative integer")
	}
	if block.Cmp(publicKey.N) >= 0 {
		return nil, fmt.Errorf("block %s >= modulus %s: %w",
			block.String(), publicKey.N.String(), rsaDomain.ErrBlockTooLarge)
	}

	return new(big.Int).Exp(block, publicKey.E, publicKey.N), nil
}

// Decrypt returns cipherBlock^d mod n.
func (c *modExpCipher) Decrypt(cipherBlock *big.Int, privateKey *rsaDomain.PrivateKey) (*big.Int, error) {
	if privateKey == nil || privateKey.N == nil || privateKey.D == nil {
		return nil, fmt.Errorf("private key cannot be nil")
	}
	if cipherBlock == nil || cipherBlock.Sign() < 0 {
		return nil, fmt.Errorf("cipher block must be a non-negative integer")
	}

	return new(big.Int).Exp(cipherBlock, privateKey.D, privateKey.N), nil
}
