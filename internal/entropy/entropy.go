// Package entropy wraps golang.org/x/crypto/blake2b to provide
// deterministic, seed-reproducible randomness for the bigint test
// suite. Property-based tests over arbitrary-precision arithmetic need
// a large, varied stream of random operands; driving that stream from
// a hash instead of math/rand means a failing test can print its seed
// and be reproduced byte-for-byte later.
package entropy

import "golang.org/x/crypto/blake2b"

// Sum512 returns the 64-byte Blake2b-512 hash of data.
func Sum512(data []byte) [64]byte {
	return blake2b.Sum512(data)
}
