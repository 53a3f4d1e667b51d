package app

import (
	"context"
	"fmt"
	"math/big"

	"textbook_rsa_service/internal/domain/keys"
	rsaDomain "textbook_rsa_service/internal/domain/rsa"
	"textbook_rsa_service/internal/pkg/logger"
)

// messageService implements the MessageService interface
type messageService struct {
	repo          keys.KeypairRepository
	messageCipher rsaDomain.MessageCipher
	logger        logger.Logger
}

// NewMessageService creates a new messageService instance
func NewMessageService(repo keys.KeypairRepository, messageCipher rsaDomain.MessageCipher, logger logger.Logger) (keys.MessageService, error) {
	if repo == nil {
		return nil, fmt.Errorf("keypair repository cannot be nil")
	}
	if messageCipher == nil {
		return nil, fmt.Errorf("message cipher cannot be nil")
	}
	return &messageService{
		repo:          repo,
		messageCipher: messageCipher,
		logger:        logger,
	}, nil
}

// Encrypt encrypts text under the public half of the identified keypair.
func (s *messageService) Encrypt(ctx context.Context, keypairID, text string, chunkSize int) ([]*big.Int, error) {
	record, err := s.repo.GetByID(ctx, keypairID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve keypair: %w", err)
	}

	n, err := parseRecordInt(record.Modulus, "modulus")
	if err != nil {
		return nil, err
	}
	e, err := parseRecordInt(record.PublicExponent, "public exponent")
	if err != nil {
		return nil, err
	}

	publicKey := &rsaDomain.PublicKey{N: n, E: e}
	cipherBlocks, err := s.messageCipher.EncryptMessage(text, publicKey, chunkSize)
	if err != nil {
		return nil, fmt.Errorf("failed to encrypt message: %w", err)
	}

	return cipherBlocks, nil
}

// Decrypt decrypts cipher blocks under the private half of the identified
// keypair.
func (s *messageService) Decrypt(ctx context.Context, keypairID string, cipherBlocks []*big.Int) (string, error) {
	record, err := s.repo.GetByID(ctx, keypairID)
	if err != nil {
		return "", fmt.Errorf("failed to resolve keypair: %w", err)
	}

	n, err := parseRecordInt(record.Modulus, "modulus")
	if err != nil {
		return "", err
	}
	d, err := parseRecordInt(record.PrivateExponent, "private exponent")
	if err != nil {
		return "", err
	}

	privateKey := &rsaDomain.PrivateKey{N: n, D: d}
	text, err := s.messageCipher.DecryptMessage(cipherBlocks, privateKey)
	if err != nil {
		return "", fmt.Errorf("failed to decrypt message: %w", err)
	}

	return text, nil
}

// parseRecordInt converts a stored decimal string back into a big.Int.
func parseRecordInt(value, field string) (*big.Int, error) {
	parsed, ok := new(big.Int).SetString(value, 10)
	if !ok {
		return nil, fmt.Errorf("keypair record holds malformed %s %q", field, value)
	}
	return parsed, nil
}
