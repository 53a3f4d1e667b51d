//go:build unit
// +build unit

package cryptography

import (
	"math/big"
	"testing"

	rsaDomain "textbook_rsa_service/internal/domain/rsa"
	"textbook_rsa_service/internal/pkg/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupSolver(t *testing.T) rsaDomain.ModularInverseSolver {
	t.Helper()
	log := testutil.SetupTestLogger(t)
	solver, err := NewModularInverseSolver(log)
	require.NoError(t, err)
	return solver
}

// checkInverse asserts the Solve post-conditions: 0 < d < phi and
// (e*d) mod phi == 1.
func checkInverse(t *testing.T, e, phi, d *big.Int) {
	t.Helper()
	assert.Positive(t, d.Sign(), "d must be positive")
	assert.Negative(t, d.Cmp(phi), "d must be below phi")

	product := new(big.Int).Mul(e, d)
	product.Mod(product, phi)
	assert.Equal(t, int64(1), product.Int64(), "e*d mod phi")
}

func TestModularInverseSolver(t *testing.T) {
	solver := setupSolver(t)

	t.Run("ClassicTextbookPair", func(t *testing.T) {
		// phi(61*53) = 3120, e = 17 gives the well-known d = 2753.
		d, err := solver.Solve(big.NewInt(17), big.NewInt(3120))
		require.NoError(t, err)
		assert.Equal(t, int64(2753), d.Int64())
	})

	t.Run("SatisfiesPostConditions", func(t *testing.T) {
		cases := []struct{ e, phi int64 }{
			{17, 3120},
			{7, 40},
			{3, 20},
			{65537, 5042016},
			{5, 5042016},
			{23, 120},
		}
		for _, tc := range cases {
			e, phi := big.NewInt(tc.e), big.NewInt(tc.phi)
			d, err := solver.Solve(e, phi)
			require.NoError(t, err, "e=%d phi=%d", tc.e, tc.phi)
			checkInverse(t, e, phi, d)
		}
	})

	t.Run("ExponentOneIsItsOwnInverse", func(t *testing.T) {
		d, err := solver.Solve(big.NewInt(1), big.NewInt(3120))
		require.NoError(t, err)
		assert.Equal(t, int64(1), d.Int64())
	})

	t.Run("AgreesWithStdlibOnLargeOperands", func(t *testing.T) {
		e, ok := new(big.Int).SetString("65537", 10)
		require.True(t, ok)
		// 2^127 - 1 is prime, so it is coprime with 65537.
		phi, ok := new(big.Int).SetString("170141183460469231731687303715884105727", 10)
		require.True(t, ok)

		want := new(big.Int).ModInverse(e, phi)
		require.NotNil(t, want, "test operands must be coprime")

		d, err := solver.Solve(e, phi)
		require.NoError(t, err)
		assert.Zero(t, d.Cmp(want))
	})

	t.Run("ErrorsWhenNoInverseExists", func(t *testing.T) {
		// gcd(6, 3120) = 6.
		_, err := solver.Solve(big.NewInt(6), big.NewInt(3120))
		require.Error(t, err)
		assert.ErrorIs(t, err, rsaDomain.ErrNoModularInverse)
	})

	t.Run("ErrorsOnDegenerateOperands", func(t *testing.T) {
		_, err := solver.Solve(big.NewInt(0), big.NewInt(3120))
		assert.ErrorIs(t, err, rsaDomain.ErrNoModularInverse)

		_, err = solver.Solve(big.NewInt(17), big.NewInt(1))
		assert.ErrorIs(t, err, rsaDomain.ErrNoModularInverse)

		_, err = solver.Solve(nil, big.NewInt(3120))
		assert.Error(t, err)
	})

	t.Run("DoesNotMutateOperands", func(t *testing.T) {
		e, phi := big.NewInt(17), big.NewInt(3120)
		_, err := solver.Solve(e, phi)
		require.NoError(t, err)
		assert.Equal(t, int64(17), e.Int64())
		assert.Equal(t, int64(3120), phi.Int64())
	})
}
