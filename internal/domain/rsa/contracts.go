package rsa

import "math/big"

// PrimalityOracle decides probable primality of an integer.
type PrimalityOracle interface {
	// IsProbablePrime reports whether n passes a single Fermat test to
	// base 2, i.e. 2^(n-1) mod n == 1. Deterministic for a given n.
	// Known base-2 pseudoprimes (341, 561, ...) are accepted.
	IsProbablePrime(n *big.Int) bool
}

// PrimeSearcher scans upward from a seed for the next probable prime.
type PrimeSearcher interface {
	// NextPrime returns the first value >= start accepted by the oracle.
	// The scan is linear and unbounded unless the searcher was configured
	// with an attempt cap, in which case exhausting the cap returns
	// ErrSearchExhausted.
	NextPrime(start *big.Int) (*big.Int, error)
}

// ModularInverseSolver derives the private exponent from the public one.
type ModularInverseSolver interface {
	// Solve returns d with 0 < d < phi and (e*d) mod phi == 1, computed by
	// the extended Euclidean algorithm over the continued-fraction
	// convergents of phi/e. Returns ErrNoModularInverse when gcd(e, phi)
	// is not 1.
	Solve(e, phi *big.Int) (*big.Int, error)
}

// BlockCodec converts text to and from bounded integer blocks.
type BlockCodec interface {
	// Encode partitions message into groups of up to chunkSize code units
	// and packs each group least-significant-byte-first into one integer.
	// Code units above 255 yield ErrByteOutOfRange.
	Encode(message string, chunkSize int) ([]*big.Int, error)

	// Decode reverses Encode, reconstructing the exact original text.
	Decode(blocks []*big.Int) (string, error)
}

// Cipher applies modular exponentiation to a single block.
type Cipher interface {
	// Encrypt returns block^e mod n. The block must be smaller than the
	// modulus; otherwise ErrBlockTooLarge is returned.
	Encrypt(block *big.Int, publicKey *PublicKey) (*big.Int, error)

	// Decrypt returns cipherBlock^d mod n.
	Decrypt(cipherBlock *big.Int, privateKey *PrivateKey) (*big.Int, error)
}

// KeypairGenerator produces full RSA keypairs.
type KeypairGenerator interface {
	// Generate searches two disjoint digit-sized ranges for primes p and q,
	// selects a public exponent coprime to (p-1)(q-1) and derives the
	// private exponent via the modular inverse.
	Generate(params *GenerateParams) (*Keypair, error)
}

// MessageCipher composes the block codec and the cipher into whole-message
// operations.
type MessageCipher interface {
	// EncryptMessage encodes text into blocks of up to chunkSize bytes and
	// encrypts each block under the public key.
	EncryptMessage(text string, publicKey *PublicKey, chunkSize int) ([]*big.Int, error)

	// DecryptMessage decrypts each block under the private key and decodes
	// the result back into text.
	DecryptMessage(cipherBlocks []*big.Int, privateKey *PrivateKey) (string, error)
}
