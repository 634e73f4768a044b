package storage

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestObjectURL(t *testing.T) {
	base := &url.URL{Scheme: "http", Host: "localhost:9000"}
	assert.Equal(t, "http://localhost:9000/covers/books/dune.jpg", ObjectURL(base, "covers", "books/dune.jpg"))

	secure := &url.URL{Scheme: "https", Host: "s3.example.com"}
	assert.Equal(t, "https://s3.example.com/covers/a.jpg", ObjectURL(secure, "covers", "a.jpg"))
}
