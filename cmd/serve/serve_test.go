package serve_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"acordier/expense-extract/cmd/serve"
)

func TestServeCommandMetadata(t *testing.T) {
	assert.Equal(t, "serve", serve.Cmd.Use)
	assert.Contains(t, serve.Cmd.Short, "HTTP")
	assert.NotNil(t, serve.Cmd.Run)
	assert.NotNil(t, serve.Cmd.Flags().Lookup("address"))
}
