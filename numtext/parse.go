// Text-to-number parsing for Vietnamese cardinal text.
package numtext

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/FuandB/vn-numtext/internal/vncase"
)

// maxParseBytes bounds the input accepted by Parse.
const maxParseBytes = 1 << 16

// Folded (lowercase, diacritic-free) forms of the structural words.
const (
	foldNegative = "am"
	foldZero     = "khong"
	foldHundred  = "tram"
	foldTen      = "muoi" // both "mười" and "mươi"
)

// digitValues maps folded digit words to their value.
// "mốt" folds to "mot" and shares the entry of "một".
var digitValues = map[string]int{
	"khong": 0,
	"mot":   1,
	"hai":   2,
	"ba":    3,
	"bon":   4,
	"nam":   5,
	"sau":   6,
	"bay":   7,
	"tam":   8,
	"chin":  9,
}

// unitValues extends digitValues with the irregular unit forms
// accepted after "mươi", "mười" and "lẻ". Zero is never a trailing unit.
var unitValues = map[string]int{
	"mot":  1,
	"hai":  2,
	"ba":   3,
	"bon":  4,
	"tu":   4,
	"nam":  5,
	"lam":  5,
	"nham": 5,
	"sau":  6,
	"bay":  7,
	"tam":  8,
	"chin": 9,
}

// linkWords introduce a lone units digit ("một trăm lẻ năm").
var linkWords = map[string]bool{"le": true, "linh": true}

// baseScales maps folded base scale words to their magnitude index.
var baseScales = map[string]int{
	"nghin": 1,
	"ngan":  1,
	"trieu": 2,
}

// billionWords each add scalePeriod to the magnitude index.
var billionWords = map[string]bool{"ty": true, "ti": true}

var thousand = big.NewInt(groupBase)

// wordParser walks folded tokens left to right.
type wordParser struct {
	toks []string
	pos  int
}

// peek returns the token off positions ahead, or "" past the end.
func (p *wordParser) peek(off int) string {
	if p.pos+off < len(p.toks) {
		return p.toks[p.pos+off]
	}
	return ""
}

func (p *wordParser) done() bool {
	return p.pos >= len(p.toks)
}

// parse converts Vietnamese cardinal number text to an integer.
func parse(s string) (*big.Int, error) {
	if len(s) > maxParseBytes {
		return nil, fmt.Errorf("%w: input exceeds %d bytes", ErrSyntax, maxParseBytes)
	}

	toks := strings.Fields(vncase.Fold(s))
	if len(toks) == 0 {
		return nil, fmt.Errorf("%w: empty input", ErrSyntax)
	}

	negative := false
	if toks[0] == foldNegative {
		negative = true
		toks = toks[1:]
		if len(toks) == 0 {
			return nil, fmt.Errorf("%w: empty input after %q", ErrSyntax, wordNegative)
		}
	}

	// Handle lone "không" before entering the group loop.
	if len(toks) == 1 && toks[0] == foldZero {
		return new(big.Int), nil
	}

	p := &wordParser{toks: toks}
	result := new(big.Int)
	prev := -1

	for !p.done() {
		v, err := p.triplet()
		if err != nil {
			return nil, err
		}
		i := p.scale()

		if v == 0 {
			return nil, fmt.Errorf("%w: empty group before word %d", ErrSyntax, p.pos)
		}
		if prev >= 0 && i >= prev {
			return nil, fmt.Errorf("%w: group of magnitude %d follows magnitude %d", ErrSyntax, i, prev)
		}
		prev = i

		term := new(big.Int).Exp(thousand, big.NewInt(int64(i)), nil)
		term.Mul(term, big.NewInt(int64(v)))
		result.Add(result, term)
	}

	if negative {
		result.Neg(result)
	}
	return result, nil
}

// triplet consumes one three-digit group phrase and returns its value.
func (p *wordParser) triplet() (int, error) {
	h, hasHundreds := 0, false
	if d, ok := digitValues[p.peek(0)]; ok && p.peek(1) == foldHundred {
		h, hasHundreds = d, true
		p.pos += 2
	}

	tok := p.peek(0)
	switch {
	case linkWords[tok]:
		p.pos++
		u, ok := unitValues[p.peek(0)]
		if !ok {
			return 0, p.unexpected()
		}
		p.pos++
		return h*100 + u, nil

	case tok == foldTen:
		// "mươi" not preceded by a digit is "mười".
		p.pos++
		return h*100 + 10 + p.unit(), nil
	}

	if d, ok := digitValues[tok]; ok && d > 0 {
		if p.peek(1) == foldTen {
			if d == 1 {
				return 0, fmt.Errorf("%w: %q before %q", ErrSyntax, ones[1], wordTens)
			}
			p.pos += 2
			return h*100 + d*10 + p.unit(), nil
		}
		if !hasHundreds {
			p.pos++
			return d, nil
		}
	}

	if hasHundreds {
		return h * 100, nil
	}
	return 0, p.unexpected()
}

// unit consumes an optional trailing units word.
func (p *wordParser) unit() int {
	if u, ok := unitValues[p.peek(0)]; ok {
		p.pos++
		return u
	}
	return 0
}

// scale consumes an optional base scale word and any number of "tỷ".
func (p *wordParser) scale() int {
	i := 0
	if base, ok := baseScales[p.peek(0)]; ok {
		i = base
		p.pos++
	}
	for billionWords[p.peek(0)] {
		i += scalePeriod
		p.pos++
	}
	return i
}

// unexpected reports the token at the current position.
func (p *wordParser) unexpected() error {
	tok := p.peek(0)
	if tok == "" {
		return fmt.Errorf("%w: unexpected end of input", ErrSyntax)
	}
	if !knownWord(tok) {
		return fmt.Errorf("%w: unknown word %q", ErrSyntax, tok)
	}
	return fmt.Errorf("%w: unexpected word %q", ErrSyntax, tok)
}

func knownWord(tok string) bool {
	if _, ok := unitValues[tok]; ok {
		return true
	}
	if _, ok := baseScales[tok]; ok {
		return true
	}
	return tok == foldZero || tok == foldHundred || tok == foldTen ||
		tok == foldNegative || linkWords[tok] || billionWords[tok]
}
