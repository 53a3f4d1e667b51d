package cryptography

import (
	"math/big"

	rsaDomain "textbook_rsa_service/internal/domain/rsa"
	"textbook_rsa_service/internal/pkg/logger"
)

var (
	one = big.NewInt(1)
	two = big.NewInt(2)
)

// fermatOracle struct that implements the PrimalityOracle interface
type fermatOracle struct {
	logger logger.Logger
}

// NewFermatOracle creates and returns a new instance of fermatOracle
func NewFermatOracle(logger logger.Logger) (rsaDomain.PrimalityOracle, error) {
	return &fermatOracle{
		logger: logger,
	}, nil
}

// IsProbablePrime runs a single Fermat test to base 2: n is accepted iff
// 2^(n-1) mod n == 1. Exponentiation is done by squaring under the modulus,
// so the test is tractable for large n. Composites that satisfy the
// congruence (341, 561, ...) are accepted; that weakness is part of this
// oracle's contract. n = 2 is the one prime the congruence itself misses
// (2^1 mod 2 == 0) and is accepted explicitly.
func (f *fermatOracle) IsProbablePrime(n *big.Int) bool {
	if n.Cmp(two) < 0 {
		return false
	}
	if n.Cmp(two) == 0 {
		return true
	}

	exponent := new(big.Int).Sub(n, one)
	residue := new(big.Int).Exp(two, exponent, n)
	return residue.Cmp(one) == 0
}
