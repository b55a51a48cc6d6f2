package services

import (
	"context"
	"fmt"

	"github.com/fabiograbrielfr-cell/runandsport-pro/internal/apperrors"
	"github.com/fabiograbrielfr-cell/runandsport-pro/internal/core/domain"
	portsrepo "github.com/fabiograbrielfr-cell/runandsport-pro/internal/core/ports/repositories"
)

// PreferenceService manages the persisted display-currency preference.
type PreferenceService struct {
	BaseService

	prefRepo portsrepo.PreferenceRepository
}

// NewPreferenceService creates a PreferenceService.
func NewPreferenceService(prefRepo portsrepo.PreferenceRepository) *PreferenceService {
	return &PreferenceService{prefRepo: prefRepo}
}

// GetDisplayPreference reads the stored preference; missing or unreadable
// state reads as AUTO.
func (s *PreferenceService) GetDisplayPreference(ctx context.Context, ownerID string) (domain.DisplayPreference, error) {
	if ownerID == "" {
		return domain.DisplayAuto, fmt.Errorf("%w: ownerID is required", apperrors.ErrValidation)
	}
	pref, err := s.prefRepo.FindDisplayPreference(ctx, ownerID)
	if err != nil {
		return domain.DisplayAuto, fmt.Errorf("failed to get display preference in service: %w", err)
	}
	return pref, nil
}

// SaveDisplayPreference normalizes and stores a raw preference string.
func (s *PreferenceService) SaveDisplayPreference(ctx context.Context, ownerID string, raw string) (domain.DisplayPreference, error) {
	if ownerID == "" {
		return domain.DisplayAuto, fmt.Errorf("%w: ownerID is required", apperrors.ErrValidation)
	}
	pref := domain.ParseDisplayPreference(raw)
	if err := s.prefRepo.SaveDisplayPreference(ctx, ownerID, pref); err != nil {
		return domain.DisplayAuto, fmt.Errorf("failed to save display preference in service: %w", err)
	}
	return pref, nil
}
