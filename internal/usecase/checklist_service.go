package usecase

import (
	"context"
	"strings"

	"github.com/projectcart/backend/internal/domain"
)

// ChecklistService turns a freeform project description into checklist items
// via the external generation collaborator
type ChecklistService struct {
	generator domain.ChecklistGenerator
}

// NewChecklistService creates a new checklist service
func NewChecklistService(generator domain.ChecklistGenerator) *ChecklistService {
	return &ChecklistService{generator: generator}
}

// GenerateChecklist validates the project description and delegates to the
// generation collaborator. The returned items are in the generator's order,
// essential items first.
func (s *ChecklistService) GenerateChecklist(ctx context.Context, projectQuery string) ([]domain.ChecklistItem, error) {
	query := strings.TrimSpace(projectQuery)
	if query == "" {
		return nil, domain.ErrInvalidRequest
	}

	items, err := s.generator.GenerateChecklist(ctx, query)
	if err != nil {
		return nil, err
	}

	if len(items) == 0 {
		return nil, domain.ErrChecklistGeneration
	}

	return items, nil
}
