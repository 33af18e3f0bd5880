// Package primes answers the primality questions behind the HP rules.
package primes

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

const memoSize = 512

// nextPrimeMemo remembers recent NextPrime answers; HP values repeat a lot
// across a combat (every kill normalises the winner's HP).
var nextPrimeMemo *lru.Cache[int64, int64]

func init() {
	cache, err := lru.New[int64, int64](memoSize)
	if err != nil {
		panic(err)
	}
	nextPrimeMemo = cache
}

// IsPrime reports whether n is a prime number
func IsPrime(n int64) bool {
	if n <= 1 {
		return false
	}
	if n <= 3 {
		return true
	}
	if n%2 == 0 || n%3 == 0 {
		return false
	}
	for i := int64(5); i*i <= n; i += 6 {
		if n%i == 0 || n%(i+2) == 0 {
			return false
		}
	}
	return true
}

// NextPrime returns the smallest prime >= n. Anything <= 2 maps to 2.
func NextPrime(n int64) int64 {
	if n <= 2 {
		return 2
	}
	if cached, ok := nextPrimeMemo.Get(n); ok {
		return cached
	}

	candidate := n
	if candidate%2 == 0 {
		candidate++
	}
	for !IsPrime(candidate) {
		candidate += 2
	}

	nextPrimeMemo.Add(n, candidate)
	return candidate
}
