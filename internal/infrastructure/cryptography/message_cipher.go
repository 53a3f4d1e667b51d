package cryptography

import (
	"fmt"
	"math/big"

	rsaDomain "textbook_rsa_service/internal/domain/rsa"
	"textbook_rsa_service/internal/pkg/logger"
)

// messageCipher struct that implements the MessageCipher interface by
// composing the block codec with the single-block cipher.
type messageCipher struct {
	codec  rsaDomain.BlockCodec
	cipher rsaDomain.Cipher
	logger logger.Logger
}

// NewMessageCipher creates and returns a new instance of messageCipher
func NewMessageCipher(codec rsaDomain.BlockCodec, cipher rsaDomain.Cipher, logger logger.Logger) (rsaDomain.MessageCipher, error) {
	if codec == nil {
		return nil, fmt.Errorf("block codec cannot be nil")
	}
	if cipher == nil {
		return nil, fmt.Errorf("cipher cannot be nil")
	}
	return &messageCipher{
		codec:  codec,
		cipher: cipher,
		logger: logger,
	}, nil
}

// EncryptMessage encodes text into blocks of up to chunkSize bytes and
// encrypts each one under the public key. An undersized modulus relative to
// chunkSize shows up here as ErrBlockTooLarge from the cipher; the codec
// never sees the modulus.
func (m *messageCipher) EncryptMessage(text string, publicKey *rsaDomain.PublicKey, chunkSize int) ([]*big.Int, error) {
	blocks, err := m.codec.Encode(text, chunkSize)
	if err != nil {
		return nil, fmt.Errorf("failed to encode message: %w", err)
	}

	cipherBlocks := make([]*big.Int, len(blocks))
	for i, block := range blocks {
		cipherBlock, err := m.cipher.Encrypt(block, publicKey)
		if err != nil {
			return nil, fmt.Errorf("failed to encrypt block %d: %w", i, err)
		}
		cipherBlocks[i] = cipherBlock
	}

	m.logger.Info("Encrypted message into ", len(cipherBlocks), " blocks")
	return cipherBlocks, nil
}

// DecryptMessage decrypts each block under the private key and decodes the
// recovered plaintext blocks back into text. Block order is preserved.
func (m *messageCipher) DecryptMessage(cipherBlocks []*big.Int, privateKey *rsaDomain.PrivateKey) (string, error) {
	blocks := make([]*big.Int, len(cipherBlocks))
	for i, cipherBlock := range cipherBlocks {
		block, err := m.cipher.Decrypt(cipherBlock, privateKey)
		if err != nil {
			return "", fmt.Errorf("failed to decrypt block %d: %w", i, err)
		}
		blocks[i] = block
	}

	text, err := m.codec.Decode(blocks)
	if err != nil {
		return "", fmt.Errorf("failed to decode message: %w", err)
	}

	return text, nil
}
