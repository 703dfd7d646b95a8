package category

import (
	"log/slog"

	"github.com/frahmantamala/complaint-redressal/internal/complaint"
)

// Service exposes the fixed complaint categories. There is no table behind it;
// the list is the set the complaint package accepts.
type Service struct {
	logger *slog.Logger
}

func NewService(logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{logger: logger}
}

func (s *Service) GetAllCategories() []Category {
	out := make([]Category, 0, len(complaint.Categories))
	for _, c := range complaint.Categories {
		out = append(out, newCategory(c))
	}
	s.logger.Debug("retrieved categories", "count", len(out))
	return out
}

func (s *Service) GetCategoryByName(name string) (*Category, bool) {
	c, err := complaint.ParseCategory(name)
	if err != nil {
		return nil, false
	}
	cat := newCategory(c)
	return &cat, true
}

func (s *Service) IsValidCategory(name string) bool {
	_, ok := s.GetCategoryByName(name)
	return ok
}
