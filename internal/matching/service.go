package matching

import (
	"context"
	"strings"

	"github.com/MrJamesThe3rd/pocketbook/internal/category"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=matching
type Repository interface {
	FindMatch(ctx context.Context, note string) (string, error)
	CreateMapping(ctx context.Context, pattern, category string) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Suggest returns the category learned for the longest pattern contained in
// note, or an empty string if nothing matches.
func (s *Service) Suggest(ctx context.Context, note string) (string, error) {
	note = normalize(note)
	if note == "" {
		return "", nil
	}

	return s.repo.FindMatch(ctx, note)
}

// Learn remembers that notes containing pattern belong to category. Blank
// patterns and the sentinel category are ignored.
func (s *Service) Learn(ctx context.Context, pattern, cat string) error {
	pattern = normalize(pattern)
	if pattern == "" || cat == "" || category.Key(cat) == category.Other {
		return nil
	}

	return s.repo.CreateMapping(ctx, pattern, cat)
}

func normalize(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}
