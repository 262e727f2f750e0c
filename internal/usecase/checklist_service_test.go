package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/projectcart/backend/internal/domain"
)

// MockChecklistGenerator is a mock implementation of domain.ChecklistGenerator
type MockChecklistGenerator struct {
	items []domain.ChecklistItem
	err   error
	query string
}

func (m *MockChecklistGenerator) GenerateChecklist(ctx context.Context, projectQuery string) ([]domain.ChecklistItem, error) {
	m.query = projectQuery
	if m.err != nil {
		return nil, m.err
	}
	return m.items, nil
}

func TestGenerateChecklist(t *testing.T) {
	ctx := context.Background()

	t.Run("rejects empty project query", func(t *testing.T) {
		svc := NewChecklistService(&MockChecklistGenerator{})

		_, err := svc.GenerateChecklist(ctx, "")
		if !errors.Is(err, domain.ErrInvalidRequest) {
			t.Errorf("error = %v, want ErrInvalidRequest", err)
		}
	})

	t.Run("rejects whitespace-only project query", func(t *testing.T) {
		svc := NewChecklistService(&MockChecklistGenerator{})

		_, err := svc.GenerateChecklist(ctx, "   ")
		if !errors.Is(err, domain.ErrInvalidRequest) {
			t.Errorf("error = %v, want ErrInvalidRequest", err)
		}
	})

	t.Run("returns generated items", func(t *testing.T) {
		gen := &MockChecklistGenerator{
			items: []domain.ChecklistItem{
				{Name: "Bar counter", Priority: "essential"},
				{Name: "Bar stools", Priority: "essential"},
			},
		}
		svc := NewChecklistService(gen)

		items, err := svc.GenerateChecklist(ctx, "backyard bar")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(items) != 2 {
			t.Errorf("items = %d, want 2", len(items))
		}
		if gen.query != "backyard bar" {
			t.Errorf("generator got query %q, want %q", gen.query, "backyard bar")
		}
	})

	t.Run("trims project query before delegating", func(t *testing.T) {
		gen := &MockChecklistGenerator{
			items: []domain.ChecklistItem{{Name: "Hammer"}},
		}
		svc := NewChecklistService(gen)

		_, err := svc.GenerateChecklist(ctx, "  tree house  ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if gen.query != "tree house" {
			t.Errorf("generator got query %q, want trimmed", gen.query)
		}
	})

	t.Run("propagates generator failure", func(t *testing.T) {
		gen := &MockChecklistGenerator{err: domain.ErrChecklistGeneration}
		svc := NewChecklistService(gen)

		_, err := svc.GenerateChecklist(ctx, "backyard bar")
		if !errors.Is(err, domain.ErrChecklistGeneration) {
			t.Errorf("error = %v, want ErrChecklistGeneration", err)
		}
	})

	t.Run("empty generation is an error", func(t *testing.T) {
		gen := &MockChecklistGenerator{items: []domain.ChecklistItem{}}
		svc := NewChecklistService(gen)

		_, err := svc.GenerateChecklist(ctx, "backyard bar")
		if !errors.Is(err, domain.ErrChecklistGeneration) {
			t.Errorf("error = %v, want ErrChecklistGeneration", err)
		}
	})
}
