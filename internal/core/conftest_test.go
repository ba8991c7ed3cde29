package core

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"geniuses-backend-go/internal/db"
	"geniuses-backend-go/internal/models"
)

// fakeProfileRepo is an in-memory db.ProfileRepository.
type fakeProfileRepo struct {
	mu       sync.Mutex
	profiles map[string]*models.Profile

	getAllErr error
	mutateErr error
}

func newFakeProfileRepo(profiles ...*models.Profile) *fakeProfileRepo {
	m := make(map[string]*models.Profile, len(profiles))
	for _, p := range profiles {
		m[p.ID] = p
	}
	return &fakeProfileRepo{profiles: m}
}

func (f *fakeProfileRepo) GetByID(ctx context.Context, profileID string) (*models.Profile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.profiles[profileID]
	if !ok {
		return nil, fmt.Errorf("profile '%s': %w", profileID, db.ErrNotFound)
	}
	cp := *p
	cp.Businesses = append([]models.Listing(nil), p.Businesses...)
	return &cp, nil
}

func (f *fakeProfileRepo) Create(ctx context.Context, profile *models.Profile) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.profiles[profile.ID]; ok {
		return fmt.Errorf("profile '%s' already exists", profile.ID)
	}
	cp := *profile
	f.profiles[profile.ID] = &cp
	return nil
}

func (f *fakeProfileRepo) GetAll(ctx context.Context) ([]*models.Profile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.getAllErr != nil {
		return nil, f.getAllErr
	}
	var out []*models.Profile
	for _, p := range f.profiles {
		cp := *p
		cp.Businesses = append([]models.Listing(nil), p.Businesses...)
		out = append(out, &cp)
	}
	return out, nil
}

func (f *fakeProfileRepo) Mutate(ctx context.Context, profileID string, mutate func(p *models.Profile) error) (*models.Profile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.mutateErr != nil {
		return nil, f.mutateErr
	}
	p, ok := f.profiles[profileID]
	if !ok {
		return nil, fmt.Errorf("profile '%s': %w", profileID, db.ErrNotFound)
	}
	cp := *p
	cp.Businesses = append([]models.Listing(nil), p.Businesses...)
	if err := mutate(&cp); err != nil {
		return nil, err
	}
	cp.Revision++
	cp.UpdatedAt = time.Now() // the real repository lets the server re-stamp this
	f.profiles[profileID] = &cp
	out := cp
	return &out, nil
}

func (f *fakeProfileRepo) Delete(ctx context.Context, profileID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.profiles, profileID)
	return nil
}

// fakeLikesRepo is an in-memory db.LikesRepository.
type fakeLikesRepo struct {
	mu   sync.Mutex
	docs map[string][]string

	getErr    error
	addErr    error
	removeErr error
}

func newFakeLikesRepo() *fakeLikesRepo {
	return &fakeLikesRepo{docs: make(map[string][]string)}
}

func (f *fakeLikesRepo) Get(ctx context.Context, userID string) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.getErr != nil {
		return nil, f.getErr
	}
	return append([]string(nil), f.docs[userID]...), nil
}

func (f *fakeLikesRepo) Add(ctx context.Context, userID, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.addErr != nil {
		return f.addErr
	}
	for _, k := range f.docs[userID] {
		if k == key {
			return nil
		}
	}
	f.docs[userID] = append(f.docs[userID], key)
	return nil
}

func (f *fakeLikesRepo) Remove(ctx context.Context, userID, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.removeErr != nil {
		return f.removeErr
	}
	keys := f.docs[userID]
	out := keys[:0]
	for _, k := range keys {
		if k != key {
			out = append(out, k)
		}
	}
	f.docs[userID] = out
	return nil
}

// memLikesCache is an in-memory cache.LikesCache.
type memLikesCache struct {
	mu sync.Mutex
	m  map[string][]string

	setErr        error
	invalidations int
}

func newMemLikesCache() *memLikesCache {
	return &memLikesCache{m: make(map[string][]string)}
}

func (c *memLikesCache) Get(ctx context.Context, userID string) ([]string, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	keys, ok := c.m[userID]
	if !ok {
		return nil, false, nil
	}
	return append([]string(nil), keys...), true, nil
}

func (c *memLikesCache) Set(ctx context.Context, userID string, keys []string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.setErr != nil {
		return c.setErr
	}
	c.m[userID] = append([]string(nil), keys...)
	return nil
}

func (c *memLikesCache) Invalidate(ctx context.Context, userID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.m, userID)
	c.invalidations++
	return nil
}

func testLogger() *zap.Logger {
	return zap.NewNop()
}
