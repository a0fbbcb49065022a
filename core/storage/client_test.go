package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient(t *testing.T) {
	t.Run("Scheme Is Trimmed", func(t *testing.T) {
		// Minio rejects endpoints carrying a scheme; NewClient must strip it.
		client, err := NewClient(Config{
			Endpoint:  "http://localhost:9000",
			AccessKey: "minioadmin",
			SecretKey: "minioadmin",
		})
		require.NoError(t, err)
		assert.NotNil(t, client)
	})

	t.Run("Invalid Endpoint", func(t *testing.T) {
		client, err := NewClient(Config{Endpoint: "host with spaces"})
		assert.Error(t, err)
		assert.Nil(t, client)
	})
}
