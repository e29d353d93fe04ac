// Package aes implements the AES block cipher of FIPS-197 for 128, 192 and
// 256 bit keys.
//
// The package exposes every stage of the cipher: the static tables, GF(2^8)
// arithmetic, key expansion into a Schedule, the round transforms on a State,
// and a Context that runs complete encrypt and decrypt round sequences over
// independent 16-byte blocks. No chaining mode is applied; identical
// plaintext blocks produce identical ciphertext blocks.
package aes
