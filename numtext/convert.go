// Unexported conversion functions for Vietnamese number-to-text conversion.
package numtext

import (
	"math/big"
	"strconv"
	"strings"
)

const growConvert = 64 // estimated bytes for a typical cardinal conversion

// wordBuilder accumulates space-separated words.
type wordBuilder struct {
	strings.Builder
}

// word appends w, preceded by a space unless it is the first word.
func (b *wordBuilder) word(w string) {
	if b.Len() > 0 {
		b.WriteByte(' ')
	}
	b.WriteString(w)
}

// convert converts an int64 to Vietnamese cardinal text.
func convert(n int64) string {
	if n == 0 {
		return wordZero
	}

	var b wordBuilder
	b.Grow(growConvert)

	mag := uint64(n)
	if n < 0 {
		b.word(wordNegative)
		mag = -mag // two's complement; exact for math.MinInt64
	}

	b.writeDigits(strconv.FormatUint(mag, 10))
	return b.String()
}

// convertBig converts an arbitrary-precision integer to Vietnamese cardinal text.
func convertBig(n *big.Int) string {
	if n == nil {
		return ""
	}
	if n.IsInt64() {
		return convert(n.Int64())
	}

	digits := n.Text(10)

	var b wordBuilder
	b.Grow(len(digits) * 8)

	if digits[0] == '-' {
		b.word(wordNegative)
		digits = digits[1:]
	}

	b.writeDigits(digits)
	return b.String()
}

// writeDigits reads a positive decimal string without leading zeros.
// Groups are taken from the most significant end; zero groups are skipped.
func (b *wordBuilder) writeDigits(digits string) {
	k := (len(digits) + scalePeriod - 1) / scalePeriod
	head := len(digits) - (k-1)*scalePeriod

	group := digits[:head]
	for i := k - 1; i >= 0; i-- {
		if v := groupValue(group); v != 0 {
			b.writeTriplet(v, i != k-1)
			b.writeScale(i)
		}
		if i > 0 {
			off := head + (k-1-i)*scalePeriod
			group = digits[off : off+scalePeriod]
		}
	}
}

// writeTriplet writes a number in [0, 999].
func (b *wordBuilder) writeTriplet(n int, full bool) {
	h := n / 100
	t := n / 10 % 10
	u := n % 10

	hundreds := false
	switch {
	case h > 0:
		b.word(ones[h])
		b.word(wordHundred)
		hundreds = true
	case full && (t > 0 || u > 0):
		b.word(ones[0])
		b.word(wordHundred)
		hundreds = true
	}

	switch {
	case t > 1:
		b.word(ones[t])
		b.word(wordTens)
		if u != 0 {
			b.word(unitWord(&unitsAfterTens, u))
		}
	case t == 1:
		b.word(wordTen)
		if u != 0 {
			b.word(unitWord(&unitsAfterTen, u))
		}
	case u != 0:
		if hundreds || full {
			b.word(wordLink)
		}
		b.word(ones[u])
	}
}

// writeScale writes the scale word for magnitude index i.
func (b *wordBuilder) writeScale(i int) {
	if i <= 0 {
		return
	}
	if base := scaleBases[i%scalePeriod]; base != "" {
		b.word(base)
	}
	for range i / scalePeriod {
		b.word(wordBillion)
	}
}

// unitWord returns the irregular form of u from table, or its plain digit word.
func unitWord(table *[10]string, u int) string {
	if w := table[u]; w != "" {
		return w
	}
	return ones[u]
}

// groupValue converts a string of at most three ASCII digits to an int.
func groupValue(s string) int {
	v := 0
	for i := 0; i < len(s); i++ {
		v = v*10 + int(s[i]-'0')
	}
	return v
}

// convertOrdinal converts an int64 to Vietnamese ordinal text.
// Returns "" for n <= 0.
func convertOrdinal(n int64) string {
	if n <= 0 {
		return ""
	}
	if w, ok := ordinalIrregular[n]; ok {
		return wordOrdinal + " " + w
	}
	return wordOrdinal + " " + convert(n)
}

// convertOrdinalBig converts an arbitrary-precision integer to ordinal text.
func convertOrdinalBig(n *big.Int) string {
	if n == nil || n.Sign() <= 0 {
		return ""
	}
	if n.IsInt64() {
		return convertOrdinal(n.Int64())
	}
	return wordOrdinal + " " + convertBig(n)
}
