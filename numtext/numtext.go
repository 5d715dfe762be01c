// Package numtext converts between integers and Vietnamese text representations.
//
// The package provides conversion in both directions:
//
//   - Convert and ConvertBig turn an integer into cardinal Vietnamese text.
//   - ConvertOrdinal produces ordinal forms ("thứ nhất", "thứ tư", "thứ năm").
//   - ParseInt sanitizes free-form user input ("1.234.567", " -42 ") into an integer.
//   - ConvertString combines ParseInt and ConvertBig.
//   - Parse turns Vietnamese number text back into an integer.
//
// Numbers are read in groups of three digits. Each group is named by Triplet
// and followed by the scale word returned by Scale ("nghìn", "triệu", "tỷ",
// "nghìn tỷ", ..., "tỷ tỷ"). Every group after the leading one is read in full
// mode, so inner zeros are spoken: 1001 is "một nghìn không trăm lẻ một".
//
// All functions are safe for concurrent use by multiple goroutines.
//
// Known limitations:
//
//   - There is no upper bound on magnitude; ConvertBig is linear in the number
//     of decimal digits after the initial base conversion.
//   - ParseInt only inspects the first character for a sign. Interior signs
//     are stripped with every other non-digit ("12-34" parses as 1234).
//   - Parse accepts the forms Convert writes plus common regional variants
//     ("ngàn", "linh", "tỉ", "nhăm"). It does not accept free word order.
package numtext

import (
	"errors"
	"math/big"
)

// ErrInvalidInput is returned by ParseInt and ConvertString when the input
// contains no digits.
var ErrInvalidInput = errors.New("numtext: invalid input")

// ErrSyntax is returned by Parse when the text is not a Vietnamese number.
var ErrSyntax = errors.New("numtext: syntax error")

// Convert returns the Vietnamese cardinal text for n.
// Zero returns "không". Negative numbers are prefixed with "âm".
func Convert(n int64) string {
	return convert(n)
}

// ConvertBig returns the Vietnamese cardinal text for n.
// It has no magnitude limit and does not modify n. A nil n returns "".
func ConvertBig(n *big.Int) string {
	return convertBig(n)
}

// ConvertString sanitizes raw with ParseInt and reads the result.
// Returns an error wrapping ErrInvalidInput if raw contains no digits.
func ConvertString(raw string) (string, error) {
	n, err := ParseInt(raw)
	if err != nil {
		return "", err
	}
	return convertBig(n), nil
}

// ConvertOrdinal returns the Vietnamese ordinal text for n.
// 1 and 4 use the Sino-Vietnamese forms "thứ nhất" and "thứ tư";
// every other positive n reads as "thứ" followed by its cardinal.
// Zero and negative numbers have no ordinal and return "".
func ConvertOrdinal(n int64) string {
	return convertOrdinal(n)
}

// ConvertOrdinalBig is ConvertOrdinal for arbitrary-precision integers.
func ConvertOrdinalBig(n *big.Int) string {
	return convertOrdinalBig(n)
}

// Triplet returns the reading of a three-digit group n in [0, 999].
//
// full reports that the group is not the leading group of the number, so a
// zero hundreds digit is spoken as "không trăm" and a lone units digit is
// linked with "lẻ". Triplet(0, false) and values outside [0, 999] return "".
func Triplet(n int, full bool) string {
	if n < 0 || n > maxTripletVal {
		return ""
	}
	var b wordBuilder
	b.writeTriplet(n, full)
	return b.String()
}

// Scale returns the scale word for the group at magnitude index i,
// counting from the least-significant group. Index 0 has no scale word.
//
//	Scale(1) == "nghìn"
//	Scale(4) == "nghìn tỷ"
//	Scale(6) == "tỷ tỷ"
func Scale(i int) string {
	var b wordBuilder
	b.writeScale(i)
	return b.String()
}

// ParseInt converts free-form user input into an integer.
//
// Surrounding whitespace is trimmed and a leading '+' or '-' is taken as the
// sign. Every other character that is not an ASCII digit is discarded, so
// thousands separators, spaces and stray letters are ignored.
//
// Returns an error wrapping ErrInvalidInput if no digits remain.
func ParseInt(raw string) (*big.Int, error) {
	return parseInt(raw)
}

// Parse converts Vietnamese cardinal number text to an integer.
// Input is case-insensitive and may omit diacritics and tone marks:
// "một trăm hai mươi ba" and "MOT TRAM HAI MUOI BA" both return 123.
//
// Returns an error wrapping ErrSyntax for empty or unparseable input.
func Parse(s string) (*big.Int, error) {
	return parse(s)
}
