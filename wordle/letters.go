package wordle

import "math/bits"

// LetterSet has a bit for each letter a-z
type LetterSet uint32

func (s LetterSet) Add(letter byte) LetterSet {
	return s | 1<<(letter-'a')
}

func (s LetterSet) Has(letter byte) bool {
	return s&(1<<(letter-'a')) != 0
}

func (s LetterSet) Len() int {
	return bits.OnesCount32(uint32(s))
}

// Letters in alphabetical order
func (s LetterSet) Letters() []byte {
	ret := make([]byte, 0, s.Len())
	for s != 0 {
		i := bits.TrailingZeros32(uint32(s))
		ret = append(ret, byte('a'+i))
		s &= s - 1
	}
	return ret
}

func (s LetterSet) String() string {
	return string(s.Letters())
}
