package romsheet

// Braille is an 8 dot braille cell. Bit n is set when dot n+1 is raised,
// dots being numbered the unicode way:
//
//	+------+
//	|(1)(4)|
//	|(2)(5)|
//	|(3)(6)|
//	|(7)(8)|
//	+------+
//
// See https://en.wikipedia.org/wiki/Braille_Patterns#Identifying.2C_naming_and_ordering)
type Braille uint8

// dotBits maps x,y coordinates within the cell to bit positions.
var dotBits = [2][4]uint{
	{0, 1, 2, 6},
	{3, 4, 5, 7},
}

// Raise sets the dot in column x (0 or 1) and row y (0 to 3).
func (b *Braille) Raise(x, y int) {
	*b |= 1 << dotBits[x][y]
}

// Rune returns the unicode braille symbol for the cell.
func (b Braille) Rune() rune {
	return '\u2800' + rune(b)
}

func (b Braille) String() string {
	return string(b.Rune())
}
