package storage

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEndpointURL(t *testing.T) {
	assert.Equal(t, "", endpointURL("", true))
	assert.Equal(t, "https://minio.local:9000", endpointURL("minio.local:9000", true))
	assert.Equal(t, "http://minio.local:9000", endpointURL("minio.local:9000", false))
	assert.Equal(t, "http://localhost:9000", endpointURL("http://localhost:9000", true))
}

func TestDisabledStorage(t *testing.T) {
	var fs FileStorage = Disabled{}
	assert.ErrorIs(t, fs.PutObject(context.Background(), "k", "text/plain", nil), ErrStorageDisabled)
	_, err := fs.GeneratePresignedDownloadURL(context.Background(), "k", time.Minute)
	assert.ErrorIs(t, err, ErrStorageDisabled)
}
