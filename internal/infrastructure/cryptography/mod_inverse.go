package cryptography

import (
	"fmt"
	"math/big"

	rsaDomain "textbook_rsa_service/internal/domain/rsa"
	"textbook_rsa_service/internal/pkg/logger"
)

// continuedFractionSolver struct that implements the ModularInverseSolver
// interface using the extended Euclidean algorithm in its continued-fraction
// form. A linear scan for d is not acceptable at production modulus sizes;
// this closed-form derivation replaces it.
type continuedFractionSolver struct {
	logger logger.Logger
}

// NewModularInverseSolver creates and returns a new instance of
// continuedFractionSolver
func NewModularInverseSolver(logger logger.Logger) (rsaDomain.ModularInverseSolver, error) {
	return &continuedFractionSolver{
		logger: logger,
	}, nil
}

// Solve returns d with 0 < d < phi and (e*d) mod phi == 1.
//
// The Euclidean algorithm applied to (phi, e) yields a quotient sequence
// q0, q1, ... ending with the division whose remainder is zero. Dropping
// that final quotient, reversing the rest and folding them through the
// convergent recurrence s[i] = s[i-1]*q + s[i-2] (seeded 0, 1) leaves the
// Bezout coefficient magnitudes as the last two terms: x for e (the larger)
// and y for phi. The sign of x*e - y*phi decides whether d is x itself or
// its negation modulo phi.
func (c *continuedFractionSolver) Solve(e, phi *big.Int) (*big.Int, error) {
	if e == nil || phi == nil {
		return nil, fmt.Errorf("exponent and totient cannot be nil")
	}
	if e.Sign() <= 0 || phi.Cmp(one) <= 0 {
		return nil, fmt.Errorf("need e > 0 and phi > 1, got e=%s phi=%s: %w",
			e.String(), phi.String(), rsaDomain.ErrNoModularInverse)
	}

	// Euclidean quotient sequence on (phi, e).
	var quotients []*big.Int
	a := new(big.Int).Set(phi)
	b := new(big.Int).Set(e)
	for b.Sign() != 0 {
		q, r := new(big.Int).QuoRem(a, b, new(big.Int))
		quotients = append(quotients, q)
		a, b = b, r
	}

	// a now holds gcd(phi, e).
	if a.Cmp(one) != 0 {
		return nil, fmt.Errorf("gcd(%s, %s) = %s: %w",
			e.String(), phi.String(), a.String(), rsaDomain.ErrNoModularInverse)
	}

	// The last quotient belongs to the remainder-zero division and carries
	// no convergent information.
	quotients = quotients[:len(quotients)-1]

	prev, last := big.NewInt(0), big.NewInt(1)
	for i := len(quotients) - 1; i >= 0; i-- {
		next := new(big.Int).Mul(last, quotients[i])
		next.Add(next, prev)
		prev, last = last, next
	}
	x, y := last, prev

	// x*e - y*phi is +1 or -1; the positive case means x is already the
	// inverse, otherwise normalize as (-x) mod phi.
	check := new(big.Int).Mul(x, e)
	check.Sub(check, new(big.Int).Mul(y, phi))

	d := new(big.Int)
	if check.Sign() > 0 {
		d.Set(x)
	} else {
		d.Neg(x)
		d.Mod(d, phi)
	}

	return d, nil
}
