package keys

import (
	"context"
	"math/big"

	rsaDomain "textbook_rsa_service/internal/domain/rsa"
)

// KeypairRepository defines the interface for keypair record persistence.
type KeypairRepository interface {
	Create(ctx context.Context, record *KeypairRecord) error
	List(ctx context.Context, query *KeypairQuery) ([]*KeypairRecord, error)
	GetByID(ctx context.Context, id string) (*KeypairRecord, error)
	DeleteByID(ctx context.Context, id string) error
}

// KeypairService defines methods for generating and managing stored
// keypairs.
type KeypairService interface {
	// Generate produces a keypair from the given parameters, persists it as
	// a record and returns the record.
	Generate(ctx context.Context, params *rsaDomain.GenerateParams) (*KeypairRecord, error)

	// List retrieves keypair records considering a query filter when set.
	List(ctx context.Context, query *KeypairQuery) ([]*KeypairRecord, error)

	// GetByID retrieves a keypair record by its unique ID.
	GetByID(ctx context.Context, id string) (*KeypairRecord, error)

	// DeleteByID deletes a keypair record by ID.
	DeleteByID(ctx context.Context, id string) error
}

// MessageService defines whole-message encryption and decryption against a
// stored keypair.
type MessageService interface {
	// Encrypt encodes text into blocks and encrypts them under the public
	// half of the identified keypair.
	Encrypt(ctx context.Context, keypairID, text string, chunkSize int) ([]*big.Int, error)

	// Decrypt decrypts cipher blocks under the private half of the
	// identified keypair and decodes the original text.
	Decrypt(ctx context.Context, keypairID string, cipherBlocks []*big.Int) (string, error)
}
