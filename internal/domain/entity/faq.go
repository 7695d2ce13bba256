package entity

import "time"

// FAQ is a question/answer pair, optionally attached to an article.
type FAQ struct {
	ID        int64
	Question  string
	Answer    string
	ArticleID *int64
	CreatedAt time.Time
}
