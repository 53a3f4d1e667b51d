package cryptography

import (
	"crypto/rand"
	"fmt"
	"math/big"

	rsaDomain "textbook_rsa_service/internal/domain/rsa"
	"textbook_rsa_service/internal/pkg/logger"
)

var ten = big.NewInt(10)

// keypairGenerator struct that implements the KeypairGenerator interface
type keypairGenerator struct {
	searcher rsaDomain.PrimeSearcher
	solver   rsaDomain.ModularInverseSolver
	logger   logger.Logger
}

// NewKeypairGenerator creates and returns a new instance of keypairGenerator
func NewKeypairGenerator(searcher rsaDomain.PrimeSearcher, solver rsaDomain.ModularInverseSolver, logger logger.Logger) (rsaDomain.KeypairGenerator, error) {
	if searcher == nil {
		return nil, fmt.Errorf("prime searcher cannot be nil")
	}
	if solver == nil {
		return nil, fmt.Errorf("modular inverse solver cannot be nil")
	}
	return &keypairGenerator{
		searcher: searcher,
		solver:   solver,
		logger:   logger,
	}, nil
}

// Generate produces a keypair whose primes live in two disjoint ranges
// sized to params.DigitCount decimal digits: p in [10^(d-1), 5*10^(d-1)]
// and q in [5*10^(d-1), 10^d]. Seeds are drawn with crypto/rand unless the
// params carry explicit values for reproducible generation.
func (g *keypairGenerator) Generate(params *rsaDomain.GenerateParams) (*rsaDomain.Keypair, error) {
	if params == nil {
		return nil, fmt.Errorf("generate params cannot be nil")
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}

	// minimum = 10^(digits-1), middle = 5*minimum, maximum = 10*minimum.
	minimum := new(big.Int).Exp(ten, big.NewInt(int64(params.DigitCount-1)), nil)
	middle := new(big.Int).Mul(minimum, big.NewInt(5))
	maximum := new(big.Int).Mul(minimum, ten)

	firstSeed := params.FirstSeed
	if firstSeed == nil {
		seed, err := randomInRange(minimum, middle)
		if err != nil {
			return nil, fmt.Errorf("failed to draw first prime seed: %w", err)
		}
		firstSeed = seed
	}

	secondSeed := params.SecondSeed
	if secondSeed == nil {
		seed, err := randomInRange(middle, maximum)
		if err != nil {
			return nil, fmt.Errorf("failed to draw second prime seed: %w", err)
		}
		secondSeed = seed
	}

	p, err := g.searcher.NextPrime(firstSeed)
	if err != nil {
		return nil, fmt.Errorf("failed to find first prime: %w", err)
	}

	q, err := g.searcher.NextPrime(secondSeed)
	if err != nil {
		return nil, fmt.Errorf("failed to find second prime: %w", err)
	}

	// The ranges share the boundary 5*10^(d-1), so a collision is rare but
	// possible; restart the second search just past p.
	if p.Cmp(q) == 0 {
		q, err = g.searcher.NextPrime(new(big.Int).Add(p, one))
		if err != nil {
			return nil, fmt.Errorf("failed to find distinct second prime: %w", err)
		}
	}

	n := new(big.Int).Mul(p, q)
	phi := new(big.Int).Mul(
		new(big.Int).Sub(p, one),
		new(big.Int).Sub(q, one),
	)

	e, err := g.selectPublicExponent(phi, params.ExponentSeed)
	if err != nil {
		return nil, err
	}

	d, err := g.solver.Solve(e, phi)
	if err != nil {
		return nil, fmt.Errorf("failed to derive private exponent: %w", err)
	}

	g.logger.Info("Generated RSA keypair with ", params.DigitCount, "-digit primes")

	return &rsaDomain.Keypair{
		Public:  &rsaDomain.PublicKey{N: n, E: e},
		Private: &rsaDomain.PrivateKey{N: n, D: d},
	}, nil
}

// selectPublicExponent starts from a seed in [phi/10, phi] and decrements
// until the candidate is coprime with phi. Hitting 1 means selection failed;
// 1 is never silently substituted because e=1 would make the cipher the
// identity.
func (g *keypairGenerator) selectPublicExponent(phi, seed *big.Int) (*big.Int, error) {
	lower := new(big.Int).Quo(phi, ten)

	if seed == nil {
		drawn, err := randomInRange(lower, phi)
		if err != nil {
			return nil, fmt.Errorf("failed to draw exponent seed: %w", err)
		}
		seed = drawn
	}

	e := new(big.Int).Set(seed)
	gcd := new(big.Int)
	for gcd.GCD(nil, nil, e, phi).Cmp(one) != 0 && e.Cmp(one) > 0 {
		e.Sub(e, one)
	}

	if e.Cmp(one) <= 0 {
		return nil, fmt.Errorf("exponent scan from %s reached 1: %w",
			seed.String(), rsaDomain.ErrExponentSelectionFailed)
	}

	return e, nil
}

// randomInRange draws a uniform value in [low, high] inclusive.
func randomInRange(low, high *big.Int) (*big.Int, error) {
	width := new(big.Int).Sub(high, low)
	width.Add(width, one)
	if width.Sign() <= 0 {
		return nil, fmt.Errorf("empty range [%s, %s]", low.String(), high.String())
	}

	offset, err := rand.Int(rand.Reader, width)
	if err != nil {
		return nil, err
	}

	return offset.Add(offset, low), nil
}
