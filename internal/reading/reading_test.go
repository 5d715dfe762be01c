package reading

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FuandB/vn-numtext/numtext"
)

func TestCardinal(t *testing.T) {
	svc := NewService(64)

	tests := []struct {
		name    string
		in      string
		want    Result
		wantErr error
	}{
		{
			name: "plain",
			in:   "1005",
			want: Result{Input: "1005", Value: "1005", Text: "một nghìn không trăm lẻ năm"},
		},
		{
			name: "separators",
			in:   " -1.234.567 ",
			want: Result{Input: " -1.234.567 ", Value: "-1234567", Text: "âm một triệu hai trăm ba mươi tư nghìn năm trăm sáu mươi bảy"},
		},
		{
			name: "beyond int64",
			in:   "1000000000000000000000",
			want: Result{Input: "1000000000000000000000", Value: "1000000000000000000000", Text: "một nghìn tỷ tỷ"},
		},
		{name: "no digits", in: "abc", want: Result{Input: "abc"}, wantErr: numtext.ErrInvalidInput},
		{name: "too long", in: strings.Repeat("9", 65), want: Result{Input: strings.Repeat("9", 65)}, wantErr: ErrTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.Cardinal(tt.in)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOrdinal(t *testing.T) {
	svc := NewService(0)

	got, err := svc.Ordinal("4")
	require.NoError(t, err)
	assert.Equal(t, "thứ tư", got.Text)

	got, err = svc.Ordinal("21")
	require.NoError(t, err)
	assert.Equal(t, "thứ hai mươi mốt", got.Text)

	_, err = svc.Ordinal("0")
	assert.ErrorIs(t, err, ErrNotOrdinal)

	_, err = svc.Ordinal("-3")
	assert.ErrorIs(t, err, ErrNotOrdinal)

	_, err = svc.Ordinal("")
	assert.ErrorIs(t, err, numtext.ErrInvalidInput)
}

func TestParse(t *testing.T) {
	svc := NewService(128)

	got, err := svc.Parse("MOT NGAN LINH NAM")
	require.NoError(t, err)
	assert.Equal(t, Result{Input: "MOT NGAN LINH NAM", Value: "1005", Text: "một nghìn không trăm lẻ năm"}, got)

	_, err = svc.Parse("xin chào")
	assert.ErrorIs(t, err, numtext.ErrSyntax)

	_, err = svc.Parse(strings.Repeat("một ", 64))
	assert.ErrorIs(t, err, ErrTooLong)
}

func TestMessage(t *testing.T) {
	svc := NewService(4)

	_, errInvalid := svc.Cardinal("x")
	_, errLong := svc.Cardinal("123456")
	_, errSyntax := svc.Parse("abc")
	_, errOrdinal := svc.Ordinal("0")
	errOther := errors.New("disk on fire")

	tests := []struct {
		err      error
		want     string
		userFact bool
	}{
		{errInvalid, MsgInvalidNumber, true},
		{errLong, MsgTooLong, true},
		{errSyntax, MsgInvalidText, true},
		{errOrdinal, MsgNotOrdinal, true},
		{errOther, MsgInternal, false},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, Message(tt.err))
			assert.Equal(t, tt.userFact, IsUserError(tt.err))
		})
	}
}
