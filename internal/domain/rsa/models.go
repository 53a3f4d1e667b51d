package rsa

import (
	"fmt"
	"math/big"
)

// PublicKey is the encrypting half of a keypair: the modulus n and the
// public exponent e. Treated as an immutable, opaque credential once issued.
type PublicKey struct {
	N *big.Int
	E *big.Int
}

// PrivateKey is the decrypting half of a keypair: the modulus n and the
// private exponent d with e*d = 1 (mod phi(n)).
type PrivateKey struct {
	N *big.Int
	D *big.Int
}

// Keypair is the result of key generation. Only the generator's caller ever
// holds both halves together.
type Keypair struct {
	Public  *PublicKey
	Private *PrivateKey
}

// GenerateParams controls keypair generation. DigitCount is the decimal
// digit length of each prime's search range. The seeds are optional: when
// nil the generator draws them itself; supplying them makes generation
// reproducible, which the tests rely on.
type GenerateParams struct {
	DigitCount   int
	FirstSeed    *big.Int
	SecondSeed   *big.Int
	ExponentSeed *big.Int
}

// Validate checks that the generation parameters are usable. Seed range
// checks are left to the generator, which knows the ranges it derives from
// DigitCount.
func (p *GenerateParams) Validate() error {
	if p.DigitCount <= 0 {
		return fmt.Errorf("digit count %d: %w", p.DigitCount, ErrInvalidDigitCount)
	}
	return nil
}
