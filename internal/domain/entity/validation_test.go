package entity_test

import (
	"errors"
	"strings"
	"testing"

	"knowledge-hub/internal/domain/entity"
)

func TestValidateSourceURL(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		wantErr bool
	}{
		{name: "valid https", url: "https://docs.example.com/guide", wantErr: false},
		{name: "valid http", url: "http://example.com", wantErr: false},
		{name: "empty", url: "", wantErr: true},
		{name: "missing scheme", url: "docs.example.com/guide", wantErr: true},
		{name: "ftp scheme", url: "ftp://example.com/file", wantErr: true},
		{name: "no host", url: "https://", wantErr: true},
		{name: "too long", url: "https://example.com/" + strings.Repeat("a", 3000), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := entity.ValidateSourceURL(tt.url)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidateSourceURL(%q) err=%v, wantErr=%v", tt.url, err, tt.wantErr)
			}
			if err != nil {
				var vErr *entity.ValidationError
				if !errors.As(err, &vErr) {
					t.Fatalf("error type = %T, want *entity.ValidationError", err)
				}
			}
		})
	}
}

func TestValidStatus(t *testing.T) {
	if !entity.ValidStatus(entity.StatusDraft) || !entity.ValidStatus(entity.StatusPublished) {
		t.Fatal("draft and published must be valid statuses")
	}
	if entity.ValidStatus("archived") {
		t.Fatal("archived must not be a valid status")
	}
}
