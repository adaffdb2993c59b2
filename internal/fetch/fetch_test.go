package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const postingHTML = `
<html>
<head>
	<title>Data Engineer | Acme Analytics</title>
	<meta property="og:title" content="Data Engineer">
	<meta property="og:site_name" content="Acme Analytics">
</head>
<body>
	<nav>Jobs Home About</nav>
	<main>
		<h1>Data Engineer</h1>
		<p>Design and operate batch and streaming pipelines.</p>
		<p>Requirements: 5+ years of experience with Python and SQL.</p>
	</main>
	<form class="application-form"><input name="email"></form>
	<footer>Equal opportunity employer.</footer>
</body>
</html>`

func TestGetSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(postingHTML))
	}))
	defer server.Close()

	page, err := Get(context.Background(), server.URL, nil)
	require.NoError(t, err)
	assert.Equal(t, server.URL, page.URL)
	assert.Contains(t, page.HTML, "Data Engineer")
	assert.Equal(t, http.StatusOK, page.StatusCode)
}

func TestGetInvalidURL(t *testing.T) {
	_, err := Get(context.Background(), "not-a-valid-url", nil)
	require.Error(t, err)

	var fetchErr *Error
	assert.ErrorAs(t, err, &fetchErr)
	assert.Contains(t, err.Error(), "invalid URL")
}

func TestGetHTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	page, err := Get(context.Background(), server.URL, nil)
	require.Error(t, err)
	require.NotNil(t, page)
	assert.Equal(t, http.StatusNotFound, page.StatusCode)
	assert.Contains(t, err.Error(), "404")
}

func TestExtractPosting(t *testing.T) {
	extraction, err := ExtractPosting(postingHTML, PlatformUnknown)
	require.NoError(t, err)

	assert.Equal(t, "Data Engineer", extraction.Title)
	assert.Equal(t, "Acme Analytics", extraction.Company)
	assert.Contains(t, extraction.Text, "batch and streaming pipelines")
	assert.Contains(t, extraction.Text, "5+ years of experience")
	assert.NotContains(t, extraction.Text, "Jobs Home About")
	assert.NotContains(t, extraction.Text, "Equal opportunity employer")
}

func TestExtractPostingTitleFallback(t *testing.T) {
	html := `<html><head><title>Backend Engineer</title></head>
		<body><main>Build services.</main></body></html>`

	extraction, err := ExtractPosting(html, PlatformUnknown)
	require.NoError(t, err)
	assert.Equal(t, "Backend Engineer", extraction.Title)
	assert.Empty(t, extraction.Company)
}

func TestPosting(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(postingHTML))
	}))
	defer server.Close()

	posting, err := Posting(context.Background(), server.URL, nil)
	require.NoError(t, err)
	assert.Equal(t, "Data Engineer", posting.Title)
	assert.Equal(t, "Acme Analytics", posting.Company)
	assert.Equal(t, server.URL, posting.URL)
	assert.Contains(t, posting.Description, "Python and SQL")
}

func TestPostingNoText(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`<html><body><nav>menu</nav></body></html>`))
	}))
	defer server.Close()

	_, err := Posting(context.Background(), server.URL, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no posting text")
}

func TestNeedsBrowser(t *testing.T) {
	assert.True(t, NeedsBrowser("Loading..."))
	assert.False(t, NeedsBrowser(strings.Repeat("posting text ", 50)))
}

func TestDetectPlatform(t *testing.T) {
	tests := []struct {
		url      string
		expected Platform
	}{
		{"https://boards.greenhouse.io/acme/jobs/123", PlatformGreenhouse},
		{"https://jobs.lever.co/acme/abc-def", PlatformLever},
		{"https://acme.wd5.myworkdayjobs.com/careers/job/123", PlatformWorkday},
		{"https://jobs.ashbyhq.com/acme/123", PlatformAshby},
		{"https://careers.example.com/jobs/123", PlatformUnknown},
		{"://bad", PlatformUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			assert.Equal(t, tt.expected, DetectPlatform(tt.url))
		})
	}
}

func TestPlatformSelectors(t *testing.T) {
	for _, platform := range []Platform{PlatformGreenhouse, PlatformLever, PlatformWorkday, PlatformAshby, PlatformUnknown} {
		assert.NotEmpty(t, platform.ContentSelectors())
		assert.NotEmpty(t, platform.NoiseSelectors())
	}
}
