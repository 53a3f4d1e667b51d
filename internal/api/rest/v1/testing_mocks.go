//go:build unit
// +build unit

package v1

import (
	"context"
	"math/big"

	"textbook_rsa_service/internal/domain/keys"
	rsaDomain "textbook_rsa_service/internal/domain/rsa"

	"github.com/stretchr/testify/mock"
)

// MockKeypairService is a mock implementation of KeypairService
type MockKeypairService struct {
	mock.Mock
}

func (m *MockKeypairService) Generate(ctx context.Context, params *rsaDomain.GenerateParams) (*keys.KeypairRecord, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*keys.KeypairRecord), args.Error(1)
}

func (m *MockKeypairService) List(ctx context.Context, query *keys.KeypairQuery) ([]*keys.KeypairRecord, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*keys.KeypairRecord), args.Error(1)
}

func (m *MockKeypairService) GetByID(ctx context.Context, id string) (*keys.KeypairRecord, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*keys.KeypairRecord), args.Error(1)
}

func (m *MockKeypairService) DeleteByID(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockMessageService is a mock implementation of MessageService
type MockMessageService struct {
	mock.Mock
}

func (m *MockMessageService) Encrypt(ctx context.Context, keypairID, text string, chunkSize int) ([]*big.Int, error) {
	args := m.Called(ctx, keypairID, text, chunkSize)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*big.Int), args.Error(1)
}

func (m *MockMessageService) Decrypt(ctx context.Context, keypairID string, cipherBlocks []*big.Int) (string, error) {
	args := m.Called(ctx, keypairID, cipherBlocks)
	return args.String(0), args.Error(1)
}
