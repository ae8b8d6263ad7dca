//go:build unit

package errs_test

import (
	"errors"
	"testing"

	"turnera/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMark(t *testing.T) {
	sentinel := errs.New("slot capacity exceeded")
	cause := errs.New("row lock wait")

	marked := errs.Mark(cause, sentinel)
	assert.True(t, errors.Is(marked, sentinel))
	assert.Equal(t, cause.Error(), marked.Error())

	assert.ErrorIs(t, errs.Mark(nil, sentinel), sentinel)
}

func TestWrapNil(t *testing.T) {
	assert.NoError(t, errs.Wrap(nil, "ignored"))
}

func TestExtractStackLines(t *testing.T) {
	err := errs.Wrap(errs.New("boom"), "outer")

	lines := errs.ExtractStackLines(err, 0)
	require.NotEmpty(t, lines)
	assert.Contains(t, lines[0], "boom")

	capped := errs.ExtractStackLines(err, 3)
	assert.LessOrEqual(t, len(capped), 3)

	assert.Nil(t, errs.ExtractStackLines(nil, 5))
}
