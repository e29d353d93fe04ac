package aes

// reduction is the low byte of the AES field polynomial x^8 + x^4 + x^3 + x + 1.
const reduction = 0x1b

// Xtime multiplies b by {02} in GF(2^8).
func Xtime(b byte) byte {
	return (b << 1) ^ ((b >> 7) * reduction)
}

// Multiply returns the product of a and b in GF(2^8) modulo x^8 + x^4 + x^3 + x + 1.
func Multiply(a, b byte) byte {
	var product byte

	for b != 0 {
		if b&1 != 0 {
			product ^= a
		}

		a = Xtime(a)
		b >>= 1
	}

	return product
}
