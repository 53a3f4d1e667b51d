// Package app wires the arithmetic core to the keypair record store and
// exposes the service layer consumed by the REST API.
package app

import (
	"context"
	"fmt"
	"time"

	"textbook_rsa_service/internal/domain/keys"
	rsaDomain "textbook_rsa_service/internal/domain/rsa"
	"textbook_rsa_service/internal/pkg/logger"

	"github.com/google/uuid"
)

// keypairService implements the KeypairService interface
type keypairService struct {
	generator rsaDomain.KeypairGenerator
	repo      keys.KeypairRepository
	logger    logger.Logger
}

// NewKeypairService creates a new keypairService instance
func NewKeypairService(generator rsaDomain.KeypairGenerator, repo keys.KeypairRepository, logger logger.Logger) (keys.KeypairService, error) {
	if generator == nil {
		return nil, fmt.Errorf("keypair generator cannot be nil")
	}
	if repo == nil {
		return nil, fmt.Errorf("keypair repository cannot be nil")
	}
	return &keypairService{
		generator: generator,
		repo:      repo,
		logger:    logger,
	}, nil
}

// Generate produces a keypair and persists it as a record.
func (s *keypairService) Generate(ctx context.Context, params *rsaDomain.GenerateParams) (*keys.KeypairRecord, error) {
	keypair, err := s.generator.Generate(params)
	if err != nil {
		return nil, fmt.Errorf("failed to generate keypair: %w", err)
	}

	record := &keys.KeypairRecord{
		ID:              uuid.New().String(),
		DigitCount:      params.DigitCount,
		Modulus:         keypair.Public.N.String(),
		PublicExponent:  keypair.Public.E.String(),
		PrivateExponent: keypair.Private.D.String(),
		DateTimeCreated: time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to store keypair record: %w", err)
	}

	return record, nil
}

// List retrieves keypair records matching the query.
func (s *keypairService) List(ctx context.Context, query *keys.KeypairQuery) ([]*keys.KeypairRecord, error) {
	records, err := s.repo.List(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list keypair records: %w", err)
	}
	return records, nil
}

// GetByID retrieves a keypair record by ID.
func (s *keypairService) GetByID(ctx context.Context, id string) (*keys.KeypairRecord, error) {
	record, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch keypair record: %w", err)
	}
	return record, nil
}

// DeleteByID deletes a keypair record by ID.
func (s *keypairService) DeleteByID(ctx context.Context, id string) error {
	if err := s.repo.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("failed to delete keypair record: %w", err)
	}
	return nil
}
