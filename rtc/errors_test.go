package rtc

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorCodeString(t *testing.T) {
	assert.Equal(t, "INVALID_OPERATION", InvalidOperation.String())
	assert.Equal(t, "NO_ERROR", NoError.String())
	assert.Equal(t, "unknown error code 42", ErrorCode(42).String())
}

func TestCodeOf(t *testing.T) {
	err := &Error{Code: InvalidArgument, Msg: "bad index"}
	wrapped := fmt.Errorf("building scene: %w", err)

	assert.Equal(t, InvalidArgument, CodeOf(err))
	assert.Equal(t, InvalidArgument, CodeOf(wrapped))
	assert.Equal(t, UnknownError, CodeOf(errors.New("boom")))
	assert.Equal(t, NoError, CodeOf(nil))

	assert.Equal(t, "rtc: bad index (error: INVALID_ARGUMENT; code 2)", err.Error())
}
