// Sanitization of free-form numeric user input.
package numtext

import (
	"fmt"
	"math/big"
	"strings"
)

// parseInt trims s, takes an optional leading sign, drops every non-digit
// byte and parses the remaining digits.
func parseInt(raw string) (*big.Int, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil, fmt.Errorf("%w: empty input", ErrInvalidInput)
	}

	negative := false
	switch s[0] {
	case '-':
		negative = true
		s = s[1:]
	case '+':
		s = s[1:]
	}

	digits := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if c := s[i]; c >= '0' && c <= '9' {
			digits = append(digits, c)
		}
	}
	if len(digits) == 0 {
		return nil, fmt.Errorf("%w: no digits in %q", ErrInvalidInput, raw)
	}

	n, ok := new(big.Int).SetString(string(digits), 10)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidInput, raw)
	}
	if negative {
		n.Neg(n)
	}
	return n, nil
}
