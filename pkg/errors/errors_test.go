package errors_test

import (
	stderrors "errors"
	"testing"

	"github.com/chubbymaggie/ecstasy/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "nesting_error",
			code:    errors.ErrNesting,
			message: "unmatched closing brace",
			wantStr: "[NESTING] unmatched closing brace",
		},
		{
			name:    "missing_argument",
			code:    errors.ErrMissingArgument,
			message: "ran out of arguments",
			wantStr: "[MISSING_ARGUMENT] ran out of arguments",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.code, tt.message)
			assert.Equal(t, tt.code, err.Code)
			assert.Equal(t, tt.wantStr, err.Error())
			assert.Equal(t, errors.NoOffset, err.Offset)
		})
	}
}

func TestWithOffset(t *testing.T) {
	err := errors.New(errors.ErrMalformedTag, "unterminated tag").WithOffset(7)
	assert.Equal(t, 7, err.Offset)
	assert.Equal(t, "[MALFORMED_TAG] unterminated tag (offset 7)", err.Error())
	assert.Equal(t, 7, errors.GetOffset(err))
}

func TestWrap(t *testing.T) {
	inner := stderrors.New("file missing")
	err := errors.Wrap(inner, errors.ErrConfigLoad, "loading config")
	assert.ErrorIs(t, err, inner)
	assert.Contains(t, err.Error(), "file missing")

	assert.Nil(t, errors.Wrap(nil, errors.ErrConfigLoad, "no-op"))
}

func TestIsErrorCode(t *testing.T) {
	err := errors.Newf(errors.ErrAttributeConflict, "duplicate attribute %q", "red")
	assert.True(t, errors.IsErrorCode(err, errors.ErrAttributeConflict))
	assert.False(t, errors.IsErrorCode(err, errors.ErrNesting))
	assert.False(t, errors.IsErrorCode(stderrors.New("plain"), errors.ErrNesting))
	assert.Equal(t, errors.ErrUnknown, errors.GetErrorCode(stderrors.New("plain")))
}

func TestErrorsIsByCode(t *testing.T) {
	err := errors.New(errors.ErrNesting, "one message")
	target := errors.New(errors.ErrNesting, "another message")
	assert.True(t, stderrors.Is(err, target))
}

func TestGetOffsetNonEcstasyError(t *testing.T) {
	assert.Equal(t, errors.NoOffset, errors.GetOffset(stderrors.New("plain")))
}

func TestPosition(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		offset int
		want   string
	}{
		{"single_line", "hello world", 6, "6"},
		{"multi_line_first", "ab\ncd", 1, "1:1"},
		{"multi_line_second", "ab\ncd", 4, "2:1"},
		{"line_start", "ab\ncd", 3, "2:0"},
		{"out_of_range", "ab", 9, "9"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, errors.Position(tt.input, tt.offset))
		})
	}
}

func TestWarningString(t *testing.T) {
	w := errors.Warning{Code: errors.ErrUnusedArgument, Message: "1 argument left over"}
	assert.Equal(t, "[UNUSED_ARGUMENT] 1 argument left over", w.String())
}
