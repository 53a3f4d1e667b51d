//go:build unit
// +build unit

package v1

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateKeypairRequest_Validate(t *testing.T) {
	tests := []struct {
		name      string
		request   GenerateKeypairRequest
		shouldErr bool
	}{
		{"valid minimal", GenerateKeypairRequest{DigitCount: 4}, false},
		{"valid with seeds", GenerateKeypairRequest{DigitCount: 4, FirstSeed: "1000", SecondSeed: "5000"}, false},
		{"valid with exponent seed", GenerateKeypairRequest{DigitCount: 6, ExponentSeed: "65537"}, false},
		{"missing digit count", GenerateKeypairRequest{}, true},
		{"negative digit count", GenerateKeypairRequest{DigitCount: -1}, true},
		{"non-numeric seed", GenerateKeypairRequest{DigitCount: 4, FirstSeed: "ten"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if tt.shouldErr {
				require.Error(t, err, "expected validation error")
			} else {
				require.NoError(t, err, "expected no validation error")
			}
		})
	}
}

func TestGenerateKeypairRequest_ToParams(t *testing.T) {
	request := GenerateKeypairRequest{
		DigitCount: 4,
		FirstSeed:  "1000",
		SecondSeed: "5000",
	}

	params, err := request.ToParams()
	require.NoError(t, err)
	assert.Equal(t, 4, params.DigitCount)
	assert.Zero(t, params.FirstSeed.Cmp(big.NewInt(1000)))
	assert.Zero(t, params.SecondSeed.Cmp(big.NewInt(5000)))
	assert.Nil(t, params.ExponentSeed, "omitted seed stays nil for a random draw")
}

func TestGenerateKeypairRequest_ToParams_MalformedSeed(t *testing.T) {
	request := GenerateKeypairRequest{DigitCount: 4, ExponentSeed: "0x10001"}

	_, err := request.ToParams()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exponent_seed")
}

func TestEncryptMessageRequest_Validate(t *testing.T) {
	tests := []struct {
		name      string
		request   EncryptMessageRequest
		shouldErr bool
	}{
		{"valid", EncryptMessageRequest{KeypairID: "0d7bafa6-61cb-4bb5-bafa-9c5232bb1f01", Message: "AB", ChunkSize: 2}, false},
		{"chunk size omitted", EncryptMessageRequest{KeypairID: "0d7bafa6-61cb-4bb5-bafa-9c5232bb1f01", Message: "AB"}, false},
		{"missing keypair id", EncryptMessageRequest{Message: "AB"}, true},
		{"non-uuid keypair id", EncryptMessageRequest{KeypairID: "not-a-uuid", Message: "AB"}, true},
		{"missing message", EncryptMessageRequest{KeypairID: "0d7bafa6-61cb-4bb5-bafa-9c5232bb1f01"}, true},
		{"negative chunk size", EncryptMessageRequest{KeypairID: "0d7bafa6-61cb-4bb5-bafa-9c5232bb1f01", Message: "AB", ChunkSize: -2}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if tt.shouldErr {
				require.Error(t, err, "expected validation error")
			} else {
				require.NoError(t, err, "expected no validation error")
			}
		})
	}
}

func TestDecryptMessageRequest_Validate(t *testing.T) {
	valid := DecryptMessageRequest{
		KeypairID:    "0d7bafa6-61cb-4bb5-bafa-9c5232bb1f01",
		CipherBlocks: []string{"2440455", "17"},
	}
	require.NoError(t, valid.Validate())

	nonNumeric := DecryptMessageRequest{
		KeypairID:    "0d7bafa6-61cb-4bb5-bafa-9c5232bb1f01",
		CipherBlocks: []string{"2440455", "block"},
	}
	require.Error(t, nonNumeric.Validate())

	missingBlocks := DecryptMessageRequest{KeypairID: "0d7bafa6-61cb-4bb5-bafa-9c5232bb1f01"}
	require.Error(t, missingBlocks.Validate())
}
