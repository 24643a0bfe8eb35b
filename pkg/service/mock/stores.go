package mock

import (
	"context"
	"sync"

	"github.com/dreamlabs/season-progression/pkg/season"
)

// In-memory implementations of the store interfaces for testing the engine
// without Redis. Each mock supports Func-field overrides for failure injection
// and records calls for assertion.

// CatalogStore is a mock implementation of service.SeasonCatalogStore.
type CatalogStore struct {
	// FetchAllSeasonsFunc overrides FetchAllSeasons when set
	FetchAllSeasonsFunc func(ctx context.Context) ([]season.Season, error)

	// Seasons is returned when no override is set
	Seasons []season.Season

	// FetchCalls counts FetchAllSeasons invocations
	FetchCalls int
}

func (c *CatalogStore) FetchAllSeasons(ctx context.Context) ([]season.Season, error) {
	c.FetchCalls++
	if c.FetchAllSeasonsFunc != nil {
		return c.FetchAllSeasonsFunc(ctx)
	}
	out := make([]season.Season, len(c.Seasons))
	copy(out, c.Seasons)
	return out, nil
}

// ProgressStore is a mock implementation of service.UserProgressStore backed
// by a map keyed on userID+"/"+seasonID.
type ProgressStore struct {
	// PutFunc/CreateFunc override the corresponding methods when set
	PutFunc    func(ctx context.Context, progress *season.UserSeasonProgress) error
	CreateFunc func(ctx context.Context, progress *season.UserSeasonProgress) error

	// PutCalls and CreateCalls record the progress passed to each write
	PutCalls    []season.UserSeasonProgress
	CreateCalls []season.UserSeasonProgress

	mu      sync.Mutex
	records map[string]season.UserSeasonProgress
}

func progressKey(userID, seasonID string) string {
	return userID + "/" + seasonID
}

func (p *ProgressStore) Get(ctx context.Context, userID, seasonID string) (*season.UserSeasonProgress, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	rec, ok := p.records[progressKey(userID, seasonID)]
	if !ok {
		return nil, nil
	}
	out := rec
	return &out, nil
}

func (p *ProgressStore) Put(ctx context.Context, progress *season.UserSeasonProgress) error {
	p.PutCalls = append(p.PutCalls, *progress)
	if p.PutFunc != nil {
		return p.PutFunc(ctx, progress)
	}
	p.store(*progress)
	return nil
}

func (p *ProgressStore) Create(ctx context.Context, progress *season.UserSeasonProgress) error {
	p.CreateCalls = append(p.CreateCalls, *progress)
	if p.CreateFunc != nil {
		return p.CreateFunc(ctx, progress)
	}
	p.store(*progress)
	return nil
}

// Seed inserts a record directly, bypassing call tracking.
func (p *ProgressStore) Seed(progress season.UserSeasonProgress) {
	p.store(progress)
}

func (p *ProgressStore) store(progress season.UserSeasonProgress) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.records == nil {
		p.records = make(map[string]season.UserSeasonProgress)
	}
	p.records[progressKey(progress.UserID, progress.SeasonID)] = progress
}

// TransitionLedger is a mock implementation of service.UserTransitionLedger.
type TransitionLedger struct {
	// MarkTransitionProcessedFunc overrides MarkTransitionProcessed when set
	MarkTransitionProcessedFunc func(ctx context.Context, userID, fromSeasonID, toSeasonID string) (bool, error)

	// SetLastActiveCalls records every SetLastActiveSeason invocation
	SetLastActiveCalls []string

	mu         sync.Mutex
	lastActive map[string]string
	processed  map[string]bool
}

func transitionKey(userID, fromSeasonID, toSeasonID string) string {
	return userID + "/" + fromSeasonID + "_to_" + toSeasonID
}

func (l *TransitionLedger) GetLastActiveSeason(ctx context.Context, userID string) (string, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.lastActive[userID], nil
}

func (l *TransitionLedger) SetLastActiveSeason(ctx context.Context, userID, seasonID string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.lastActive == nil {
		l.lastActive = make(map[string]string)
	}
	l.lastActive[userID] = seasonID
	l.SetLastActiveCalls = append(l.SetLastActiveCalls, seasonID)
	return nil
}

func (l *TransitionLedger) IsTransitionProcessed(ctx context.Context, userID, fromSeasonID, toSeasonID string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.processed[transitionKey(userID, fromSeasonID, toSeasonID)], nil
}

func (l *TransitionLedger) MarkTransitionProcessed(ctx context.Context, userID, fromSeasonID, toSeasonID string) (bool, error) {
	if l.MarkTransitionProcessedFunc != nil {
		return l.MarkTransitionProcessedFunc(ctx, userID, fromSeasonID, toSeasonID)
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.processed == nil {
		l.processed = make(map[string]bool)
	}
	key := transitionKey(userID, fromSeasonID, toSeasonID)
	if l.processed[key] {
		return false, nil
	}
	l.processed[key] = true
	return true, nil
}

// SeedLastActive sets a user's last active season directly.
func (l *TransitionLedger) SeedLastActive(userID, seasonID string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.lastActive == nil {
		l.lastActive = make(map[string]string)
	}
	l.lastActive[userID] = seasonID
}

// SeedProcessed marks a transition as already processed directly.
func (l *TransitionLedger) SeedProcessed(userID, fromSeasonID, toSeasonID string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.processed == nil {
		l.processed = make(map[string]bool)
	}
	l.processed[transitionKey(userID, fromSeasonID, toSeasonID)] = true
}
