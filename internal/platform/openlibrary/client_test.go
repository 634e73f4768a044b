package openlibrary

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return NewClient("booklibrary-test", 1000, 1).WithBaseURL(srv.URL, srv.URL)
}

func TestClient_GetBook(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/books", r.URL.Path)
		assert.Equal(t, "ISBN:0261103571", r.URL.Query().Get("bibkeys"))
		assert.Equal(t, "booklibrary-test", r.Header.Get("User-Agent"))
		_, _ = w.Write([]byte(`{"ISBN:0261103571":{
			"title":"The Fellowship of the Ring",
			"publishers":[{"name":"HarperCollins"}],
			"publish_date":"1999",
			"number_of_pages":432,
			"authors":[{"url":"https://openlibrary.org/authors/OL26320A/J.R.R._Tolkien","name":"J.R.R. Tolkien"}],
			"ebooks":[{"preview_url":"https://archive.org/details/fellowship00tolk"}]
		}}`))
	})

	b, err := c.GetBook(context.Background(), "ISBN", "0261103571")
	require.NoError(t, err)
	assert.Equal(t, "The Fellowship of the Ring", b.Title)
	assert.Equal(t, 432, b.NumberOfPages)
	assert.Equal(t, "HarperCollins", b.Publishers[0].Name)
	assert.Equal(t, "OL26320A", AuthorKey(b.Authors[0].URL))
}

func TestClient_GetBookMissing(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	})

	_, err := c.GetBook(context.Background(), "OLID", "OL1M")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestClient_GetAuthorRetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		assert.Equal(t, "/authors/OL26320A.json", r.URL.Path)
		_, _ = w.Write([]byte(`{"name":"J. R. R. Tolkien","bio":{"type":"/type/text","value":"Philologist."},"photos":[6155606]}`))
	})

	a, err := c.GetAuthor(context.Background(), "OL26320A")
	require.NoError(t, err)
	assert.Equal(t, int32(2), calls.Load())
	assert.Equal(t, "J. R. R. Tolkien", a.Name)
	assert.Equal(t, "Philologist.", Text(a.Bio))
}

func TestClient_ClientErrorsAreNotRetried(t *testing.T) {
	var calls atomic.Int32
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadRequest)
	})

	_, err := c.GetAuthor(context.Background(), "OL1A")
	assert.Error(t, err)
	assert.Equal(t, int32(1), calls.Load())
}

func TestClient_Download(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/jpeg")
		_, _ = w.Write([]byte{0xff, 0xd8, 0xff})
	})

	data, ct, err := c.Download(context.Background(), c.AuthorPhotoURL(42, "M"))
	require.NoError(t, err)
	assert.Equal(t, "image/jpeg", ct)
	assert.Len(t, data, 3)
}

func TestHelpers(t *testing.T) {
	assert.Equal(t, "https://archive.org/embed/x", EmbedURL("https://archive.org/details/x"))
	assert.Equal(t, "", AuthorKey("https://openlibrary.org/works/OL1W"))

	y, ok := PublishYear("March 1999")
	assert.True(t, ok)
	assert.Equal(t, 1999, y)
	_, ok = PublishYear("unknown")
	assert.False(t, ok)

	assert.Equal(t, "plain", Text("plain"))
	assert.Equal(t, "", Text(nil))
}
