// Package pathutil provides helpers for working with URL paths: extracting
// numeric IDs and normalizing dynamic paths for metrics labels.
package pathutil

import (
	"errors"
	"strconv"
	"strings"
)

// ErrInvalidID is returned when the ID in the URL path is invalid.
var ErrInvalidID = errors.New("invalid id")

// ExtractID extracts and parses a positive integer ID from a URL path after
// removing the given prefix.
//
//	id, err := ExtractID("/api/articles/123", "/api/articles/")
//	// Returns: 123, nil
//
// A trailing sub-resource segment is rejected; callers routing paths like
// /api/articles/123/tags must strip the suffix first.
func ExtractID(path, prefix string) (int64, error) {
	idStr := strings.TrimPrefix(path, prefix)
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrInvalidID
	}
	return id, nil
}
