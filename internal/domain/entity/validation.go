package entity

import (
	"fmt"
	"net/url"
)

// maxURLLength caps source URLs to keep pathological inputs out of the store.
const maxURLLength = 2048

// ValidateSourceURL validates the format of an article's source URL.
// It checks that the URL is well-formed, uses an HTTP/HTTPS scheme, and has a host.
// Returns a ValidationError describing the failing constraint.
func ValidateSourceURL(rawURL string) error {
	if rawURL == "" {
		return &ValidationError{Field: "source_url", Message: "is required"}
	}

	if len(rawURL) > maxURLLength {
		return &ValidationError{
			Field:   "source_url",
			Message: fmt.Sprintf("must not exceed %d characters", maxURLLength),
		}
	}

	parsed, err := url.Parse(rawURL)
	if err != nil {
		return &ValidationError{Field: "source_url", Message: "must be a valid URL"}
	}

	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return &ValidationError{Field: "source_url", Message: "must use http or https scheme"}
	}

	if parsed.Host == "" {
		return &ValidationError{Field: "source_url", Message: "must have a valid host"}
	}

	return nil
}
