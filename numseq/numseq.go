package numseq

import (
	"math/big"
	"regexp"
	"strings"
)

var digitRunRE = regexp.MustCompile(`[0-9]+`)

// Number is the canonical decimal form of a digit run: no leading zeros,
// "0" for a run of zeros. Keeping the string avoids any magnitude limit.
type Number string

// Sequence is the ordered list of numbers found in a text.
type Sequence []Number

func (n Number) String() string {
	return string(n)
}

// Big returns the value of n as an arbitrary-precision integer.
func (n Number) Big() *big.Int {
	v, ok := new(big.Int).SetString(string(n), 10)
	if !ok {
		return new(big.Int)
	}
	return v
}

// Canonical strips leading zeros from a run of ASCII digits.
func Canonical(run string) Number {
	trimmed := strings.TrimLeft(run, "0")
	if trimmed == "" {
		return "0"
	}
	return Number(trimmed)
}

// Extract returns every maximal run of 0-9 in text, left to right.
func Extract(text string) Sequence {
	runs := digitRunRE.FindAllString(text, -1)
	seq := make(Sequence, 0, len(runs))
	for _, run := range runs {
		seq = append(seq, Canonical(run))
	}
	return seq
}
