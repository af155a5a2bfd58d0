package errors_test

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/arthur-debert/datapacks/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "not_found_error",
			code:    errors.ErrNotFound,
			message: "package not found",
			wantStr: "[NOT_FOUND] package not found",
		},
		{
			name:    "invalid_input_error",
			code:    errors.ErrInvalidInput,
			message: "unknown category",
			wantStr: "[INVALID_INPUT] unknown category",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.code, tt.message)

			assert.Equal(t, tt.code, err.Code)
			assert.Equal(t, tt.message, err.Message)
			assert.NotNil(t, err.Details)
			assert.Equal(t, tt.wantStr, err.Error())
		})
	}
}

func TestWrap(t *testing.T) {
	base := stderrors.New("permission denied")

	err := errors.Wrap(base, errors.ErrDirCreate, "cannot create levels directory").
		WithDetail("path", "/pkgs/P/levels")

	require.NotNil(t, err)
	assert.Equal(t, "[DIR_CREATE] cannot create levels directory: permission denied", err.Error())
	assert.True(t, stderrors.Is(err, base))
	assert.Equal(t, "/pkgs/P/levels", errors.GetErrorDetails(err)["path"])

	assert.Nil(t, errors.Wrap(nil, errors.ErrInternal, "nothing"))
	assert.Nil(t, errors.Wrapf(nil, errors.ErrInternal, "nothing %d", 1))
}

func TestErrorCodeHelpers(t *testing.T) {
	inner := errors.Newf(errors.ErrRelativize, "no root contains %s", "/tmp/x.png")
	outer := fmt.Errorf("saving level: %w", inner)

	assert.True(t, errors.IsErrorCode(outer, errors.ErrRelativize))
	assert.False(t, errors.IsErrorCode(outer, errors.ErrNotFound))
	assert.Equal(t, errors.ErrRelativize, errors.GetErrorCode(outer))
	assert.Equal(t, errors.ErrUnknown, errors.GetErrorCode(stderrors.New("plain")))
	assert.Nil(t, errors.GetErrorDetails(stderrors.New("plain")))
}

func TestIsMatchesByCode(t *testing.T) {
	err := errors.New(errors.ErrPackageNotFound, "no such package").WithDetail("package", "castle")

	assert.True(t, stderrors.Is(err, errors.New(errors.ErrPackageNotFound, "")))
	assert.False(t, stderrors.Is(err, errors.New(errors.ErrPackageInvalid, "")))
}
