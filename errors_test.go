package convref

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStructuredErrors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantType ErrorType
		wantOp   string
		checkFn  func(error) bool
	}{
		{
			name:     "Configuration Error",
			err:      NewConfigError("ParseEncoding", "invalid encoding", ErrUnknownEncoding),
			wantType: ErrTypeConfiguration,
			wantOp:   "ParseEncoding",
			checkFn:  IsConfigurationError,
		},
		{
			name:     "IO Error",
			err:      NewIOError("LoadFile", "in.bin", ErrShortBuffer),
			wantType: ErrTypeIO,
			wantOp:   "LoadFile",
			checkFn:  IsIOError,
		},
		{
			name:     "Mismatch Error",
			err:      NewMismatchError(3),
			wantType: ErrTypeMismatch,
			wantOp:   "Compare",
			checkFn:  IsMismatchError,
		},
		{
			name:     "Error Cap",
			err:      ErrErrorCapExceeded,
			wantType: ErrTypeErrorCap,
			wantOp:   "Compare",
			checkFn:  IsErrorCapExceeded,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ce *CheckError
			require.ErrorAs(t, tt.err, &ce)
			assert.Equal(t, tt.wantType, ce.Type)
			assert.Equal(t, tt.wantOp, ce.Op)
			assert.True(t, tt.checkFn(tt.err))
			assert.NotEmpty(t, tt.err.Error())
		})
	}
}

func TestErrorPredicatesSeeThroughWrapping(t *testing.T) {
	err := NewIOError("LoadFile", "out.bin", errors.New("permission denied"))
	wrapped := errors.Join(errors.New("loading output"), err)

	assert.True(t, IsIOError(wrapped))
	assert.False(t, IsConfigurationError(wrapped))
	assert.False(t, IsMismatchError(nil))
}

func TestErrorUnwrap(t *testing.T) {
	baseErr := errors.New("base error")
	wrappedErr := NewConfigError("Test", "wrapped error", baseErr)

	assert.True(t, errors.Is(wrappedErr, baseErr))
	assert.Contains(t, wrappedErr.Error(), "caused by: base error")
}

func TestErrorTypeString(t *testing.T) {
	tests := []struct {
		errType ErrorType
		want    string
	}{
		{ErrTypeConfiguration, "Configuration"},
		{ErrTypeIO, "IO"},
		{ErrTypeMismatch, "Mismatch"},
		{ErrTypeErrorCap, "ErrorCap"},
		{ErrorType(999), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.errType.String())
		})
	}
}
