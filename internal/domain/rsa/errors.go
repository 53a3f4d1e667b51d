package rsa

import "errors"

// Sentinel errors for the RSA core. Callers match them with errors.Is;
// implementations wrap them with additional context via fmt.Errorf and %w.
var (
	// ErrInvalidDigitCount indicates a non-positive prime digit request.
	ErrInvalidDigitCount = errors.New("digit count must be positive")

	// ErrExponentSelectionFailed indicates that no public exponent coprime
	// to the totient was found before the downward scan reached 1.
	ErrExponentSelectionFailed = errors.New("no coprime public exponent found")

	// ErrNoModularInverse indicates gcd(e, phi) != 1, so no private
	// exponent exists for the requested public exponent.
	ErrNoModularInverse = errors.New("modular inverse does not exist")

	// ErrByteOutOfRange indicates a message code unit above 255, which the
	// single-byte block packing cannot represent.
	ErrByteOutOfRange = errors.New("message code unit exceeds 255")

	// ErrBlockTooLarge indicates a plaintext block greater than or equal to
	// the modulus. Encrypting such a block would not round-trip.
	ErrBlockTooLarge = errors.New("block must be smaller than the modulus")

	// ErrSearchExhausted indicates that a bounded prime search gave up
	// before finding a probable prime.
	ErrSearchExhausted = errors.New("prime search exceeded the attempt bound")
)
