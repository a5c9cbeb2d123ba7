package ordering

import (
	"fmt"
	"sync"

	apperrors "github.com/praxishq/praxis-cli/internal/errors"
	"github.com/praxishq/praxis-cli/internal/models"
)

// Store is the slice of the storage provider the ordering service needs.
type Store interface {
	GetGroup(id string) (models.Group, error)
	GetPracticesForGroup(groupID string) ([]models.Practice, error)
	SetDisplayOrder(practiceID string, position int) error
	MaxDisplayOrder(groupID string) (int, error)
}

type Service struct {
	store Store
}

func New(store Store) *Service {
	return &Service{store: store}
}

// Reorder persists a group's display order. Only the group owner may reorder;
// a non-owner gets ErrNotAuthorized before anything is written. Positions are
// dense and 1-based in the order given. Each position is written independently,
// so a partial failure leaves a mixed order; callers recover by re-reading the
// group, which is authoritative.
func (s *Service) Reorder(userID, groupID string, orderedIDs []string) error {
	group, err := s.store.GetGroup(groupID)
	if err != nil {
		return err
	}
	if !group.IsOwnedBy(userID) {
		return fmt.Errorf("only the group owner can reorder practices: %w", apperrors.ErrNotAuthorized)
	}

	practices, err := s.store.GetPracticesForGroup(groupID)
	if err != nil {
		return err
	}
	inGroup := make(map[string]bool, len(practices))
	for _, p := range practices {
		inGroup[p.ID] = true
	}

	seen := make(map[string]bool, len(orderedIDs))
	for _, id := range orderedIDs {
		if !inGroup[id] {
			return fmt.Errorf("practice %s is not in group %s: %w", id, groupID, apperrors.ErrNotFound)
		}
		if seen[id] {
			return fmt.Errorf("practice %s appears twice in the requested order", id)
		}
		seen[id] = true
	}

	var wg sync.WaitGroup
	errs := make([]error, len(orderedIDs))
	for i, id := range orderedIDs {
		wg.Add(1)
		go func(i int, id string) {
			defer wg.Done()
			errs[i] = s.store.SetDisplayOrder(id, i+1)
		}(i, id)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return fmt.Errorf("order partially saved, reload to see the current order: %w", err)
		}
	}

	return nil
}

// NextPosition returns the display position for a practice appended to the
// group: one past the highest assigned position.
func (s *Service) NextPosition(groupID string) (int, error) {
	max, err := s.store.MaxDisplayOrder(groupID)
	if err != nil {
		return 0, err
	}
	return max + 1, nil
}
