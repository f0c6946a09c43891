// Package bitwise reads and writes single bits of a 32-bit word.
//
// Bit indexes start at 0 for the least significant bit. Indexes are not
// checked: an index of Width or more shifts the mask out of the word, so
// Read returns 0 and Set and Write return n unchanged. A negative index
// panics like any negative shift in Go.
package bitwise

// Width is the number of bits in the words handled by this package.
const Width = 32

// Read returns the bit at index bit of n, either 0 or 1.
func Read(n uint32, bit int) uint32 {
	return (n >> bit) & 1
}

// Set returns n with the bit at index bit turned on.
func Set(n uint32, bit int) uint32 {
	return n | (1 << bit) // OR
}

// Write returns n with the bit at index bit turned on when value is
// non-zero and turned off otherwise.
func Write(n uint32, bit int, value uint32) uint32 {
	if value != 0 {
		return Set(n, bit)
	}
	return unset(n, bit)
}

func unset(n uint32, bit int) uint32 {
	return n &^ (1 << bit) // AND NOT
}
