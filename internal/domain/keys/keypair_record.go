// Package keys defines the keypair record domain: generated keypairs stored
// for classroom inspection. This is deliberately not a vault; exponents are
// persisted as plain decimal strings.
package keys

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// KeypairRecord is the persisted form of a generated keypair. Integer
// fields are decimal strings so records stay serialization-neutral and
// survive any modulus size.
type KeypairRecord struct {
	ID              string    `validate:"required,uuid"`
	DigitCount      int       `validate:"required,gt=0"`
	Modulus         string    `validate:"required"`
	PublicExponent  string    `validate:"required"`
	PrivateExponent string    `validate:"required"`
	DateTimeCreated time.Time `validate:"required"`
}

// Validate for validating KeypairRecord struct
func (r *KeypairRecord) Validate() error {
	validate := validator.New()

	err := validate.Struct(r)
	if err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			var messages []string
			for _, fieldErr := range validationErrors {
				messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
			}
			return fmt.Errorf("validation failed: %v", messages)
		}
		return fmt.Errorf("validation error: %w", err)
	}

	return nil
}

// KeypairQuery carries list filters and pagination for keypair records.
type KeypairQuery struct {
	DigitCount int    `validate:"gte=0"`
	Limit      int    `validate:"gte=0"`
	Offset     int    `validate:"gte=0"`
	SortBy     string `validate:"omitempty,oneof=date_time_created digit_count"`
	SortOrder  string `validate:"omitempty,oneof=asc desc"`
}

// NewKeypairQuery creates a query with sane defaults.
func NewKeypairQuery() *KeypairQuery {
	return &KeypairQuery{
		Limit:     10,
		Offset:    0,
		SortBy:    "date_time_created",
		SortOrder: "asc",
	}
}

// Validate for validating KeypairQuery struct
func (q *KeypairQuery) Validate() error {
	validate := validator.New()
	if err := validate.Struct(q); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	return nil
}
