// Package models holds the GORM database models for persisted records,
// kept separate from the domain entities they mirror.
package models

import (
	"time"

	"textbook_rsa_service/internal/domain/keys"
)

// KeypairModel is the GORM database model for keypair records
// (infrastructure concern)
type KeypairModel struct {
	ID              string    `gorm:"primaryKey;type:uuid"`
	DigitCount      int       `gorm:"not null;index"`
	Modulus         string    `gorm:"not null;type:text"`
	PublicExponent  string    `gorm:"not null;type:text"`
	PrivateExponent string    `gorm:"not null;type:text"`
	DateTimeCreated time.Time `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (KeypairModel) TableName() string {
	return "keypair_records"
}

// ToDomain converts GORM model to domain entity
func (m *KeypairModel) ToDomain() *keys.KeypairRecord {
	return &keys.KeypairRecord{
		ID:              m.ID,
		DigitCount:      m.DigitCount,
		Modulus:         m.Modulus,
		PublicExponent:  m.PublicExponent,
		PrivateExponent: m.PrivateExponent,
		DateTimeCreated: m.DateTimeCreated,
	}
}

// FromDomain converts domain entity to GORM model
func (m *KeypairModel) FromDomain(r *keys.KeypairRecord) {
	m.ID = r.ID
	m.DigitCount = r.DigitCount
	m.Modulus = r.Modulus
	m.PublicExponent = r.PublicExponent
	m.PrivateExponent = r.PrivateExponent
	m.DateTimeCreated = r.DateTimeCreated
}
