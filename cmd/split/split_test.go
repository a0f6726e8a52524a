package split_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"acordier/expense-extract/cmd/split"
)

func TestSplitCommandMetadata(t *testing.T) {
	assert.Equal(t, "split", split.Cmd.Use)
	assert.Contains(t, split.Cmd.Short, "per page")
	assert.NotNil(t, split.Cmd.Run)
	assert.NotNil(t, split.Cmd.Flags().Lookup("page"))
}
