package usecase

import (
	"sync"

	"github.com/piresc/fleettrack/internal/pkg/models"
	"github.com/piresc/fleettrack/internal/pkg/tracking"
)

// draftStore keeps one route planner per operator in memory
type draftStore struct {
	mu      sync.Mutex
	catalog tracking.Catalog
	drafts  map[string]*tracking.RoutePlanner
}

func newDraftStore(catalog tracking.Catalog) *draftStore {
	return &draftStore{
		catalog: catalog,
		drafts:  make(map[string]*tracking.RoutePlanner),
	}
}

// view returns the operator's draft, or an empty one when none exists
func (s *draftStore) view(operatorID string) models.RouteDraft {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p, ok := s.drafts[operatorID]; ok {
		return p.Draft()
	}
	return tracking.NewRoutePlanner(s.catalog).Draft()
}

// update runs fn on the operator's planner, creating it if needed. A failed
// fn leaves the planner as it was.
func (s *draftStore) update(operatorID string, fn func(p *tracking.RoutePlanner) error) (models.RouteDraft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.drafts[operatorID]
	if !ok {
		p = tracking.NewRoutePlanner(s.catalog)
		s.drafts[operatorID] = p
	}
	err := fn(p)
	return p.Draft(), err
}

// take removes the operator's draft and returns its validated run tuple with
// the planner it came from. An incomplete draft stays in place.
func (s *draftStore) take(operatorID string) (models.RunSubmission, *tracking.RoutePlanner, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.drafts[operatorID]
	if !ok {
		p = tracking.NewRoutePlanner(s.catalog)
	}
	submission, err := p.Submission()
	if err != nil {
		return models.RunSubmission{}, nil, err
	}
	delete(s.drafts, operatorID)
	return submission, p, nil
}

// restore puts back a taken draft unless the operator already began a new one
func (s *draftStore) restore(operatorID string, p *tracking.RoutePlanner) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.drafts[operatorID]; !ok {
		s.drafts[operatorID] = p
	}
}

func (s *draftStore) discard(operatorID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.drafts, operatorID)
}
