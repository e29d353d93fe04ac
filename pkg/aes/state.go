package aes

// State is one block viewed as a 4x4 byte matrix in column-major order:
// byte k sits at row k%4, column k/4.
type State [BlockSize]byte

// At returns the byte at row r, column c.
func (s *State) At(r, c int) byte { return s[c*4+r] }

// SubBytes replaces every byte with its S-box entry.
func (s *State) SubBytes() {
	for i, b := range s {
		s[i] = sbox[b]
	}
}

// InvSubBytes replaces every byte with its inverse S-box entry.
func (s *State) InvSubBytes() {
	for i, b := range s {
		s[i] = invSbox[b]
	}
}

// ShiftRows rotates row r left by r positions. Row 0 is untouched.
func (s *State) ShiftRows() {
	old := *s

	for c := range Nb {
		for r := 1; r < 4; r++ {
			s[c*4+r] = old[((c+r)%Nb)*4+r]
		}
	}
}

// InvShiftRows rotates row r right by r positions.
func (s *State) InvShiftRows() {
	old := *s

	for c := range Nb {
		for r := 1; r < 4; r++ {
			s[((c+r)%Nb)*4+r] = old[c*4+r]
		}
	}
}

// MixColumns multiplies each column by the circulant matrix {02,03,01,01}.
func (s *State) MixColumns() {
	for c := range Nb {
		col := (*[4]byte)(s[c*4 : c*4+4])
		*col = MixColumn(*col)
	}
}

// InvMixColumns multiplies each column by the circulant matrix {0e,0b,0d,09}.
func (s *State) InvMixColumns() {
	for c := range Nb {
		col := (*[4]byte)(s[c*4 : c*4+4])
		*col = InvMixColumn(*col)
	}
}

// AddRoundKey XORs the round key into the state.
func (s *State) AddRoundKey(rk *[BlockSize]byte) {
	for i := range s {
		s[i] ^= rk[i]
	}
}

// MixColumn applies the forward MixColumns matrix to a single column.
func MixColumn(a [4]byte) [4]byte {
	return [4]byte{
		Xtime(a[0]) ^ Multiply(a[1], 0x03) ^ a[2] ^ a[3],
		a[0] ^ Xtime(a[1]) ^ Multiply(a[2], 0x03) ^ a[3],
		a[0] ^ a[1] ^ Xtime(a[2]) ^ Multiply(a[3], 0x03),
		Multiply(a[0], 0x03) ^ a[1] ^ a[2] ^ Xtime(a[3]),
	}
}

// InvMixColumn applies the inverse MixColumns matrix to a single column.
func InvMixColumn(a [4]byte) [4]byte {
	return [4]byte{
		Multiply(a[0], 0x0e) ^ Multiply(a[1], 0x0b) ^ Multiply(a[2], 0x0d) ^ Multiply(a[3], 0x09),
		Multiply(a[0], 0x09) ^ Multiply(a[1], 0x0e) ^ Multiply(a[2], 0x0b) ^ Multiply(a[3], 0x0d),
		Multiply(a[0], 0x0d) ^ Multiply(a[1], 0x09) ^ Multiply(a[2], 0x0e) ^ Multiply(a[3], 0x0b),
		Multiply(a[0], 0x0b) ^ Multiply(a[1], 0x0d) ^ Multiply(a[2], 0x09) ^ Multiply(a[3], 0x0e),
	}
}
