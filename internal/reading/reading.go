// Package reading is the application layer shared by the CLI and HTTP
// shells. It bounds untrusted input, calls numtext and maps its errors to
// the messages shown to users.
package reading

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/FuandB/vn-numtext/numtext"
)

// User-facing messages.
const (
	MsgInvalidNumber = "Giá trị không hợp lệ. Hãy nhập số nguyên (có thể có dấu âm, dấu phẩy/dấu cách)."
	MsgInvalidText   = "Không nhận ra số trong văn bản."
	MsgNotOrdinal    = "Số thứ tự phải là số nguyên dương."
	MsgTooLong       = "Dữ liệu nhập quá dài."
	MsgInternal      = "Lỗi hệ thống."
)

var (
	// ErrTooLong is returned when input exceeds the configured byte limit.
	ErrTooLong = errors.New("reading: input too long")

	// ErrNotOrdinal is returned by Ordinal for zero and negative numbers.
	ErrNotOrdinal = errors.New("reading: ordinal requires a positive integer")
)

// Result is one reading. Value is the decimal form of the integer.
type Result struct {
	Input string `json:"input" yaml:"input"`
	Value string `json:"value" yaml:"value"`
	Text  string `json:"text"  yaml:"text"`
}

// Service reads numbers with an input size limit.
type Service struct {
	maxInputBytes int
}

// NewService returns a Service rejecting input longer than maxInputBytes.
// A non-positive limit disables the check.
func NewService(maxInputBytes int) *Service {
	return &Service{maxInputBytes: maxInputBytes}
}

// Cardinal sanitizes raw and returns its cardinal reading.
func (s *Service) Cardinal(raw string) (Result, error) {
	n, err := s.parseInt(raw)
	if err != nil {
		return Result{Input: raw}, err
	}
	return Result{Input: raw, Value: n.String(), Text: numtext.ConvertBig(n)}, nil
}

// Ordinal sanitizes raw and returns its ordinal reading.
func (s *Service) Ordinal(raw string) (Result, error) {
	n, err := s.parseInt(raw)
	if err != nil {
		return Result{Input: raw}, err
	}
	if n.Sign() <= 0 {
		return Result{Input: raw, Value: n.String()}, fmt.Errorf("%w: got %s", ErrNotOrdinal, n)
	}
	return Result{Input: raw, Value: n.String(), Text: numtext.ConvertOrdinalBig(n)}, nil
}

// Parse reads Vietnamese number text back into an integer. Text holds the
// canonical reading of the parsed value.
func (s *Service) Parse(text string) (Result, error) {
	if err := s.checkLen(text); err != nil {
		return Result{Input: text}, err
	}
	n, err := numtext.Parse(text)
	if err != nil {
		return Result{Input: text}, err
	}
	return Result{Input: text, Value: n.String(), Text: numtext.ConvertBig(n)}, nil
}

func (s *Service) parseInt(raw string) (*big.Int, error) {
	if err := s.checkLen(raw); err != nil {
		return nil, err
	}
	return numtext.ParseInt(raw)
}

func (s *Service) checkLen(raw string) error {
	if s.maxInputBytes > 0 && len(raw) > s.maxInputBytes {
		return fmt.Errorf("%w: %d bytes, limit %d", ErrTooLong, len(raw), s.maxInputBytes)
	}
	return nil
}

// IsUserError reports whether err was caused by the input rather than by
// the program.
func IsUserError(err error) bool {
	return errors.Is(err, numtext.ErrInvalidInput) ||
		errors.Is(err, numtext.ErrSyntax) ||
		errors.Is(err, ErrTooLong) ||
		errors.Is(err, ErrNotOrdinal)
}

// Message returns the user-facing message for err.
func Message(err error) string {
	switch {
	case errors.Is(err, ErrTooLong):
		return MsgTooLong
	case errors.Is(err, numtext.ErrInvalidInput):
		return MsgInvalidNumber
	case errors.Is(err, numtext.ErrSyntax):
		return MsgInvalidText
	case errors.Is(err, ErrNotOrdinal):
		return MsgNotOrdinal
	default:
		return MsgInternal
	}
}

