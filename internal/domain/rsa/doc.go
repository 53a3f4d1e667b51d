// Package rsa defines the domain contracts and models for the textbook
// RSA core: primality testing, prime search, keypair generation, the
// extended-Euclidean modular inverse, block encoding and the cipher itself.
//
// This is a classroom implementation, not a hardened cryptographic library.
// The primality check is a single-round Fermat test to base 2 and accepts
// known pseudoprimes; there is no padding scheme and no side-channel
// resistance. For production workloads use crypto/rsa.
package rsa
