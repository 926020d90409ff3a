package enc

import (
	"fmt"
)

// PadChar is the character used to fill the unused symbol slots of the final,
// incomplete group of a stream, as defined by RFC 4648.
const PadChar = '='

// Alphabet is an ordered table of 32 or 64 distinct symbol characters. The position
// of a character in the table is its numeric value. The padding character is never
// part of the table.
type Alphabet struct {
	symbols string
	values  [256]int8
}

// newAlphabet builds an Alphabet from the given symbol table. It is only called with
// package-level constants, so any problem with the table is a programming error and
// aborts the process.
func newAlphabet(symbols string) Alphabet {
	if len(symbols) != 32 && len(symbols) != 64 {
		panic(fmt.Sprintf("alphabet must have 32 or 64 symbols, got %d", len(symbols)))
	}

	a := Alphabet{
		symbols: symbols,
	}
	for i := range a.values {
		a.values[i] = -1
	}
	for i := 0; i < len(symbols); i++ {
		c := symbols[i]
		if c == PadChar {
			panic("alphabet must not contain the padding character")
		}
		if a.values[c] != -1 {
			panic(fmt.Sprintf("alphabet contains duplicate symbol %q", c))
		}
		a.values[c] = int8(i)
	}
	return a
}

// Len returns the number of symbols in the table, i.e. 32 or 64.
func (a *Alphabet) Len() int {
	return len(a.symbols)
}

// Symbol returns the character representing the given value. The value must be
// within 0..Len()-1.
func (a *Alphabet) Symbol(v int) byte {
	return a.symbols[v]
}

// Value returns the numeric value of the given character, or -1 when the character
// is not part of the table.
func (a *Alphabet) Value(c byte) int {
	return int(a.values[c])
}
