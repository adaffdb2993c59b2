package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-matcher/internal/db"
)

func TestCachedFetcherDefaults(t *testing.T) {
	f := NewCachedFetcher(nil, nil)
	assert.Equal(t, db.DefaultPostingTTL, f.cacheTTL)
	assert.NotNil(t, f.options)
	assert.False(t, f.skipCache)
}

func TestCachedFetcherNoDatabase(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(postingHTML))
	}))
	defer server.Close()

	f := NewCachedFetcher(nil, nil)
	posting, fromCache, err := f.Posting(context.Background(), server.URL)
	require.NoError(t, err)
	assert.False(t, fromCache)
	assert.Equal(t, "Data Engineer", posting.Title)
	assert.Empty(t, posting.ID, "no database means no assigned ID")
}

func TestPostingMultiplePartialFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(postingHTML))
	}))
	defer server.Close()

	f := NewCachedFetcher(nil, nil)
	postings, errs := f.PostingMultiple(context.Background(), []string{server.URL, "not-a-valid-url"})

	require.Len(t, postings, 2)
	require.Len(t, errs, 2)
	assert.NotNil(t, postings[0])
	assert.NoError(t, errs[0])
	assert.Nil(t, postings[1])
	assert.Error(t, errs[1])
}
