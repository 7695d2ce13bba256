// Package article provides use cases for managing knowledge-base articles.
// It implements business logic for creating, updating, deleting and querying
// articles, including validation and interaction with the article repository.
package article

import "errors"

// Sentinel errors for article use case operations.
var (
	// ErrArticleNotFound indicates that the requested article was not found.
	ErrArticleNotFound = errors.New("article not found")

	// ErrInvalidArticleID indicates that the provided article ID is invalid.
	// Article IDs must be positive integers.
	ErrInvalidArticleID = errors.New("invalid article ID")

	// ErrNoUpdatableFields indicates that an update request carried none of
	// the allowed fields. The message is client-facing and must stay within
	// the respond package's safe vocabulary.
	ErrNoUpdatableFields = errors.New("request is missing updatable fields")
)
