//go:build unit
// +build unit

package cryptography

import (
	"math/big"
	"testing"

	"textbook_rsa_service/internal/pkg/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupFermatOracle(t *testing.T) *fermatOracle {
	t.Helper()
	log := testutil.SetupTestLogger(t)
	oracle, err := NewFermatOracle(log)
	require.NoError(t, err)
	return oracle.(*fermatOracle)
}

func TestFermatOracle(t *testing.T) {
	oracle := setupFermatOracle(t)

	t.Run("AcceptsKnownPrimes", func(t *testing.T) {
		for _, n := range []int64{2, 3, 5, 7, 97, 1009, 5003, 7919} {
			assert.True(t, oracle.IsProbablePrime(big.NewInt(n)), "expected %d to be accepted", n)
		}
	})

	t.Run("RejectsComposites", func(t *testing.T) {
		for _, n := range []int64{4, 6, 9, 15, 100, 1001} {
			assert.False(t, oracle.IsProbablePrime(big.NewInt(n)), "expected %d to be rejected", n)
		}
	})

	t.Run("RejectsValuesBelowTwo", func(t *testing.T) {
		for _, n := range []int64{-7, -1, 0, 1} {
			assert.False(t, oracle.IsProbablePrime(big.NewInt(n)))
		}
	})

	// 341 = 11*31 satisfies 2^340 = 1 (mod 341). Accepting it is part of
	// the single-round Fermat contract, not a bug.
	t.Run("AcceptsBase2Pseudoprimes", func(t *testing.T) {
		for _, n := range []int64{341, 561, 645} {
			assert.True(t, oracle.IsProbablePrime(big.NewInt(n)), "expected pseudoprime %d to be accepted", n)
		}
	})

	t.Run("HandlesLargePrime", func(t *testing.T) {
		// 2^127 - 1, a Mersenne prime.
		mersenne, ok := new(big.Int).SetString("170141183460469231731687303715884105727", 10)
		require.True(t, ok)
		assert.True(t, oracle.IsProbablePrime(mersenne))
	})

	t.Run("DoesNotMutateInput", func(t *testing.T) {
		n := big.NewInt(97)
		oracle.IsProbablePrime(n)
		assert.Equal(t, int64(97), n.Int64())
	})
}
