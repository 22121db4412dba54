package common

import "math/rand"

var digitSet = []rune("0123456789")

// RandomDigitsN returns a string of n uniformly random decimal digits.
// Used for generated account passwords and claim tracking numbers.
func RandomDigitsN(n int) string {
	return RandomSequenceNWithRune(n, digitSet)
}

func RandomSequenceNWithRune(n int, set []rune) string {
	s := make([]rune, n)
	for i := range s {
		s[i] = set[rand.Intn(len(set))]
	}

	return string(s)
}
