package storage_test

import (
	"testing"

	"go-ats-dashboard/pkg/storage"

	"github.com/stretchr/testify/assert"
)

func TestEndpoint(t *testing.T) {
	ep, err := storage.Config{Region: "eu-central-1"}.Endpoint()
	assert.NoError(t, err)
	assert.Equal(t, "s3.eu-central-1.wasabisys.com", ep)

	ep, err = storage.Config{Region: "eu-central-1", WasabiEndpoint: "s3.custom.example"}.Endpoint()
	assert.NoError(t, err)
	assert.Equal(t, "s3.custom.example", ep)

	_, err = storage.Config{Region: "mars-1"}.Endpoint()
	assert.Error(t, err)
}
