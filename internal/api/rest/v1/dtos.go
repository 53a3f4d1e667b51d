package v1

import (
	"fmt"
	"math/big"
	"time"

	rsaDomain "textbook_rsa_service/internal/domain/rsa"

	"github.com/go-playground/validator/v10"
)

// ErrorResponse is the uniform error payload.
type ErrorResponse struct {
	Message string `json:"message"`
}

// GenerateKeypairRequest carries keypair generation parameters. Seeds are
// optional decimal strings; supplying them makes generation reproducible.
type GenerateKeypairRequest struct {
	DigitCount   int    `json:"digit_count" validate:"required,gt=0"`
	FirstSeed    string `json:"first_seed" validate:"omitempty,number"`
	SecondSeed   string `json:"second_seed" validate:"omitempty,number"`
	ExponentSeed string `json:"exponent_seed" validate:"omitempty,number"`
}

// Validate checks the request fields.
func (r *GenerateKeypairRequest) Validate() error {
	validate := validator.New()
	if err := validate.Struct(r); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	return nil
}

// ToParams converts the request into domain generation parameters.
func (r *GenerateKeypairRequest) ToParams() (*rsaDomain.GenerateParams, error) {
	params := &rsaDomain.GenerateParams{DigitCount: r.DigitCount}

	for _, seed := range []struct {
		value  string
		target **big.Int
		name   string
	}{
		{r.FirstSeed, &params.FirstSeed, "first_seed"},
		{r.SecondSeed, &params.SecondSeed, "second_seed"},
		{r.ExponentSeed, &params.ExponentSeed, "exponent_seed"},
	} {
		if seed.value == "" {
			continue
		}
		parsed, ok := new(big.Int).SetString(seed.value, 10)
		if !ok {
			return nil, fmt.Errorf("%s is not a decimal integer: %q", seed.name, seed.value)
		}
		*seed.target = parsed
	}

	return params, nil
}

// KeypairRecordResponse mirrors a stored keypair record. The private
// exponent is included: this service is a teaching tool, not a vault.
type KeypairRecordResponse struct {
	ID              string    `json:"id"`
	DigitCount      int       `json:"digit_count"`
	Modulus         string    `json:"modulus"`
	PublicExponent  string    `json:"public_exponent"`
	PrivateExponent string    `json:"private_exponent"`
	DateTimeCreated time.Time `json:"date_time_created"`
}

// EncryptMessageRequest asks for a message to be encrypted under a stored
// keypair. ChunkSize defaults to 3 when omitted.
type EncryptMessageRequest struct {
	KeypairID string `json:"keypair_id" validate:"required,uuid"`
	Message   string `json:"message" validate:"required"`
	ChunkSize int    `json:"chunk_size" validate:"omitempty,gt=0"`
}

// Validate checks the request fields.
func (r *EncryptMessageRequest) Validate() error {
	validate := validator.New()
	if err := validate.Struct(r); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	return nil
}

// EncryptMessageResponse carries the ordered cipher blocks as decimal
// strings.
type EncryptMessageResponse struct {
	CipherBlocks []string `json:"cipher_blocks"`
}

// DecryptMessageRequest asks for cipher blocks to be decrypted under a
// stored keypair.
type DecryptMessageRequest struct {
	KeypairID    string   `json:"keypair_id" validate:"required,uuid"`
	CipherBlocks []string `json:"cipher_blocks" validate:"required,min=0,dive,number"`
}

// Validate checks the request fields.
func (r *DecryptMessageRequest) Validate() error {
	validate := validator.New()
	if err := validate.Struct(r); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	return nil
}

// DecryptMessageResponse carries the recovered plaintext.
type DecryptMessageResponse struct {
	Message string `json:"message"`
}
