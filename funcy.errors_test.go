package funcy

import (
	"errors"
	"testing"

	"github.com/itsatony/go-cuserr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnknownFunctionError(t *testing.T) {
	err := NewUnknownFunctionError(Tag{Start: 12, End: 30, Content: "lookup some key"})

	assert.Equal(t, "unknown function at char 12 in placeholder content: 'lookup some key'", err.Error())
	assert.True(t, errors.Is(err, ErrUnknownFunction))

	var customErr *cuserr.CustomError
	require.True(t, errors.As(err, &customErr))
	assert.Equal(t, ErrCodeUnknownFunction, customErr.Code)
	assert.Equal(t, cuserr.ErrorCategoryNotFound, customErr.Category)

	function, ok := customErr.GetMetadata(MetaKeyFunction)
	assert.True(t, ok)
	assert.Equal(t, "lookup", function)

	content, ok := customErr.GetMetadata(MetaKeyContent)
	assert.True(t, ok)
	assert.Equal(t, "lookup some key", content)

	start, ok := customErr.GetMetadata(MetaKeyStart)
	assert.True(t, ok)
	assert.Equal(t, "12", start)

	end, ok := customErr.GetMetadata(MetaKeyEnd)
	assert.True(t, ok)
	assert.Equal(t, "30", end)
}

func TestFunctionError(t *testing.T) {
	t.Run("with cause", func(t *testing.T) {
		cause := errors.New("disk on fire")
		err := NewFunctionError("read", cause)

		assert.Equal(t, "read", err.Name)
		assert.Equal(t, "disk on fire", err.Message)
		assert.Equal(t, "error in placeholder function read: 'disk on fire'", err.Error())
		assert.True(t, errors.Is(err, ErrFunctionFailed))
		assert.True(t, errors.Is(err, cause))

		var customErr *cuserr.CustomError
		require.True(t, errors.As(err, &customErr))
		assert.Equal(t, ErrCodeFunction, customErr.Code)
		assert.Equal(t, cuserr.ErrorCategoryInternal, customErr.Category)

		function, ok := customErr.GetMetadata(MetaKeyFunction)
		assert.True(t, ok)
		assert.Equal(t, "read", function)

		message, ok := customErr.GetMetadata(MetaKeyMessage)
		assert.True(t, ok)
		assert.Equal(t, "disk on fire", message)
	})

	t.Run("literal without cause", func(t *testing.T) {
		err := &FunctionError{Name: "x", Message: "boom"}

		assert.Equal(t, "error in placeholder function x: 'boom'", err.Error())

		var customErr *cuserr.CustomError
		require.True(t, errors.As(err, &customErr))
		assert.Equal(t, ErrCodeFunction, customErr.Code)
		message, ok := customErr.GetMetadata(MetaKeyMessage)
		assert.True(t, ok)
		assert.Equal(t, "boom", message)
	})

	t.Run("message is not interpreted", func(t *testing.T) {
		err := NewFunctionError("fmt", errors.New("100% '%s' done"))
		assert.Equal(t, "error in placeholder function fmt: '100% '%s' done'", err.Error())
	})
}
