package newsroom_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/fwojciec/newsroom"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := newsroom.Errorf(newsroom.ENOTFOUND, "corpus %q not found", "docs.json")

	assert.Equal(t, newsroom.ENOTFOUND, newsroom.ErrorCode(err))
	assert.Equal(t, "corpus \"docs.json\" not found", newsroom.ErrorMessage(err))
}

func TestErrorCode_WrappedError(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("load: %w", newsroom.Errorf(newsroom.EINVALID, "bad"))

	assert.Equal(t, newsroom.EINVALID, newsroom.ErrorCode(err))
	assert.Equal(t, "bad", newsroom.ErrorMessage(err))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	err := errors.New("disk full")

	assert.Equal(t, newsroom.EINTERNAL, newsroom.ErrorCode(err))
	assert.Equal(t, "disk full", newsroom.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, newsroom.ErrorCode(nil))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, newsroom.ErrorMessage(nil))
}
