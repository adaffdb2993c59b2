// Package fetch retrieves job postings from the web and reduces them to the
// plain text the parsing layer expects.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// DefaultTimeout is the default HTTP request timeout.
const DefaultTimeout = 30 * time.Second

// DefaultUserAgent is the user agent string for HTTP requests.
const DefaultUserAgent = "Mozilla/5.0 (compatible; ResumeMatcher/1.0)"

// Error represents an error during URL fetching.
type Error struct {
	URL     string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("fetch error for %s: %s: %v", e.URL, e.Message, e.Cause)
	}
	return fmt.Sprintf("fetch error for %s: %s", e.URL, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Options configures the fetch behavior.
type Options struct {
	Timeout    time.Duration
	UserAgent  string
	Headers    map[string]string
	UseBrowser bool // allow headless-browser fallback for SPA pages
}

// DefaultOptions returns sensible defaults for fetching.
func DefaultOptions() *Options {
	return &Options{
		Timeout:   DefaultTimeout,
		UserAgent: DefaultUserAgent,
	}
}

// Page holds the raw content retrieved from a URL.
type Page struct {
	URL         string
	HTML        string
	ContentType string
	StatusCode  int
}

// Get retrieves raw HTML from a URL. On a non-200 status the partial Page is
// returned alongside the error so callers can inspect the status code.
func Get(ctx context.Context, urlStr string, opts *Options) (*Page, error) {
	if opts == nil {
		opts = DefaultOptions()
	}

	parsedURL, err := url.Parse(urlStr)
	if err != nil || parsedURL.Scheme == "" || parsedURL.Host == "" {
		return nil, &Error{
			URL:     urlStr,
			Message: "invalid URL",
			Cause:   err,
		}
	}

	client := &http.Client{
		Timeout: opts.Timeout,
	}

	req, err := http.NewRequestWithContext(ctx, "GET", urlStr, nil)
	if err != nil {
		return nil, &Error{
			URL:     urlStr,
			Message: "failed to create request",
			Cause:   err,
		}
	}

	req.Header.Set("User-Agent", opts.UserAgent)
	for key, value := range opts.Headers {
		req.Header.Set(key, value)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, &Error{
			URL:     urlStr,
			Message: "HTTP request failed",
			Cause:   err,
		}
	}
	defer func() { _ = resp.Body.Close() }()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &Error{
			URL:     urlStr,
			Message: "failed to read response body",
			Cause:   err,
		}
	}

	page := &Page{
		URL:         urlStr,
		HTML:        string(bodyBytes),
		ContentType: resp.Header.Get("Content-Type"),
		StatusCode:  resp.StatusCode,
	}

	if resp.StatusCode != http.StatusOK {
		return page, &Error{
			URL:     urlStr,
			Message: fmt.Sprintf("HTTP status %d", resp.StatusCode),
		}
	}

	return page, nil
}

// Extraction holds the posting fields recovered from a page's HTML.
type Extraction struct {
	Title   string
	Company string
	Text    string
}

// ExtractPosting parses job posting HTML and pulls out the title, company,
// and the main description text. Noise elements (navigation, application
// forms, legal boilerplate) are stripped before text extraction.
func ExtractPosting(html string, platform Platform) (*Extraction, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	extraction := &Extraction{
		Title:   metaProperty(doc, "og:title"),
		Company: metaProperty(doc, "og:site_name"),
	}
	if extraction.Title == "" {
		extraction.Title = strings.TrimSpace(doc.Find("title").First().Text())
	}

	doc.Find("nav, footer, header, script, style, noscript, .ad, .ads, .sidebar, .cookie-banner, .popup").Remove()
	if noise := strings.Join(platform.NoiseSelectors(), ", "); noise != "" {
		doc.Find(noise).Remove()
	}

	var content *goquery.Selection
	for _, selector := range platform.ContentSelectors() {
		if selection := doc.Find(selector); selection.Length() > 0 {
			content = selection.First()
			break
		}
	}
	if content == nil {
		content = doc.Find("body")
	}

	extraction.Text = collapseBlankLines(content.Text())
	return extraction, nil
}

func metaProperty(doc *goquery.Document, property string) string {
	value, _ := doc.Find(fmt.Sprintf(`meta[property=%q]`, property)).First().Attr("content")
	return strings.TrimSpace(value)
}

// collapseBlankLines trims each line and drops empty ones, so downstream
// section segmentation sees one statement per line.
func collapseBlankLines(text string) string {
	lines := strings.Split(text, "\n")
	var cleaned []string
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line != "" {
			cleaned = append(cleaned, line)
		}
	}
	return strings.Join(cleaned, "\n")
}
