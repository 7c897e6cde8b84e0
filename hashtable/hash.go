package hashtable

import "hash/maphash"

// seed is the process-wide seed shared by the built-in hashers, fixed at
// startup so that one key hashes identically across every table in the
// process.
var seed = maphash.MakeSeed()

// StringHash hashes a string key. Strings are immutable, so the result
// is stable for the key's lifetime.
func StringHash(s string) uint64 {
	return maphash.String(seed, s)
}

// BytesHash hashes the current contents of b. Byte slices are mutable:
// the caller must not modify a key after insertion, per the package
// capability contract.
func BytesHash(b []byte) uint64 {
	return maphash.Bytes(seed, b)
}

// IntHash hashes an int key by mixing its bits (splitmix64 finalizer).
func IntHash(v int) uint64 {
	x := uint64(v)
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31

	return x
}

// RuneHash hashes a rune key; used by trie child maps.
func RuneHash(r rune) uint64 {
	return IntHash(int(r))
}

// StringEq, BytesEq, IntEq and RuneEq are the equality counterparts of
// the built-in hashers.
func StringEq(a, b string) bool { return a == b }

// IntEq reports whether two int keys are equal.
func IntEq(a, b int) bool { return a == b }

// RuneEq reports whether two rune keys are equal.
func RuneEq(a, b rune) bool { return a == b }

// BytesEq reports whether two byte-slice keys hold identical contents.
func BytesEq(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}
