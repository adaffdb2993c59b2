package fetch

import (
	"context"

	"github.com/jonathan/resume-matcher/internal/types"
)

// Posting retrieves a job posting URL and reduces it to a JobPosting whose
// Description is plain text ready for parsing. When the plain HTTP fetch
// yields too little text and opts.UseBrowser is set, the page is re-rendered
// in a headless browser.
func Posting(ctx context.Context, urlStr string, opts *Options) (*types.JobPosting, error) {
	if opts == nil {
		opts = DefaultOptions()
	}

	page, err := Get(ctx, urlStr, opts)
	if err != nil {
		return nil, err
	}

	platform := DetectPlatform(urlStr)
	extraction, err := ExtractPosting(page.HTML, platform)
	if err != nil {
		return nil, &Error{URL: urlStr, Message: "failed to extract posting", Cause: err}
	}

	if NeedsBrowser(extraction.Text) && opts.UseBrowser {
		rendered, renderErr := RenderHTML(ctx, urlStr, opts.Timeout)
		if renderErr == nil {
			if re, exErr := ExtractPosting(rendered, platform); exErr == nil && len(re.Text) > len(extraction.Text) {
				extraction = re
			}
		}
	}

	if extraction.Text == "" {
		return nil, &Error{URL: urlStr, Message: "no posting text found"}
	}

	return &types.JobPosting{
		Title:       extraction.Title,
		Company:     extraction.Company,
		Description: extraction.Text,
		URL:         urlStr,
	}, nil
}
