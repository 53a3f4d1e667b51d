package cryptography

import (
	"fmt"
	"math/big"

	rsaDomain "textbook_rsa_service/internal/domain/rsa"
	"textbook_rsa_service/internal/pkg/logger"
)

// primeSearcher struct that implements the PrimeSearcher interface
type primeSearcher struct {
	oracle      rsaDomain.PrimalityOracle
	maxAttempts int
	logger      logger.Logger
}

// NewPrimeSearcher creates and returns a new instance of primeSearcher.
// maxAttempts bounds the number of candidates examined per search; zero
// means unbounded, which is the textbook behavior. Callers must supply a
// start small enough that termination is practical.
func NewPrimeSearcher(oracle rsaDomain.PrimalityOracle, maxAttempts int, logger logger.Logger) (rsaDomain.PrimeSearcher, error) {
	if oracle == nil {
		return nil, fmt.Errorf("primality oracle cannot be nil")
	}
	return &primeSearcher{
		oracle:      oracle,
		maxAttempts: maxAttempts,
		logger:      logger,
	}, nil
}

// NextPrime scans start, start+1, start+2, ... and returns the first value
// the oracle accepts. Every candidate is tested; there is no even-skipping,
// the oracle alone governs cost. The caller's start value is not mutated.
func (s *primeSearcher) NextPrime(start *big.Int) (*big.Int, error) {
	candidate := new(big.Int).Set(start)

	for attempts := 0; s.maxAttempts == 0 || attempts < s.maxAttempts; attempts++ {
		if s.oracle.IsProbablePrime(candidate) {
			return candidate, nil
		}
		candidate.Add(candidate, one)
	}

	return nil, fmt.Errorf("no probable prime within %d candidates of %s: %w",
		s.maxAttempts, start.String(), rsaDomain.ErrSearchExhausted)
}
