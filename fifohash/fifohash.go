// Package fifohash provides ready-made hashing and equality strategies for
// the FIFO-ordered collections. The collections hash with the language's
// built-in semantics by default; these strategies are for keys whose identity
// is not the built-in one (case-insensitive strings, custom foldings) or for
// callers that need a stable, seed-free hash.
package fifohash

import (
	"encoding/binary"
	"strings"

	"github.com/iotaledger/hive.go/constraints"
	"golang.org/x/crypto/blake2b"
)

// Integer returns a strategy that hashes any integer key by Fibonacci
// multiplication and compares with ==.
func Integer[T constraints.Integer]() (hash func(T) uint64, equals func(a, b T) bool) {
	return func(key T) uint64 {
			return uint64(key) * 0x9e3779b97f4a7c15
		}, func(a, b T) bool {
			return a == b
		}
}

// String returns a strategy that hashes string keys with blake2b and compares
// with ==. Unlike the built-in string hash, it is stable across processes.
func String[T ~string]() (hash func(T) uint64, equals func(a, b T) bool) {
	return func(key T) uint64 {
			return Fold([]byte(key))
		}, func(a, b T) bool {
			return a == b
		}
}

// CaseInsensitiveString returns a strategy under which string keys that only
// differ in letter case are the same key. The key that entered the container
// first decides the spelling that iteration yields.
func CaseInsensitiveString[T ~string]() (hash func(T) uint64, equals func(a, b T) bool) {
	return func(key T) uint64 {
			return Fold([]byte(strings.ToLower(string(key))))
		}, func(a, b T) bool {
			return strings.EqualFold(string(a), string(b))
		}
}

// Fold hashes arbitrary bytes with blake2b and folds the digest into a
// uint64.
func Fold(data []byte) uint64 {
	digest := blake2b.Sum256(data)

	return binary.BigEndian.Uint64(digest[:8])
}
