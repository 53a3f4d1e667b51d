package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// KeyGenSettings bounds keypair generation for the API surface. The search
// attempt cap keeps an adversarial seed from pinning a worker on an unbounded
// prime scan.
type KeyGenSettings struct {
	DefaultDigitCount int `mapstructure:"default_digit_count" validate:"required,gt=0"`
	DefaultChunkSize  int `mapstructure:"default_chunk_size" validate:"required,gt=0"`
	MaxSearchAttempts int `mapstructure:"max_search_attempts" validate:"gte=0"`
}

// Validate checks that all fields in KeyGenSettings are valid
func (s *KeyGenSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for KeyGenSettings: %w", err)
	}

	return nil
}
