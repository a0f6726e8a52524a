package batch_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"acordier/expense-extract/cmd/batch"
)

func TestBatchCommandMetadata(t *testing.T) {
	assert.Equal(t, "batch", batch.Cmd.Use)
	assert.Contains(t, batch.Cmd.Short, "directory")
	assert.Contains(t, batch.Cmd.Long, "never abort")
	assert.NotNil(t, batch.Cmd.Run)
}
