package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/careerpath/careerpath-go/internal/model"
)

type fakeCounselor struct {
	mu       sync.Mutex
	reply    string
	err      error
	analyzed []model.Profile
	profiles []*model.Profile
	ctxErrs  []error
	onCall   func()
}

func (f *fakeCounselor) Analyze(ctx context.Context, p model.Profile) (string, error) {
	if f.onCall != nil {
		f.onCall()
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.analyzed = append(f.analyzed, p)
	f.ctxErrs = append(f.ctxErrs, ctx.Err())
	return f.reply, f.err
}

func (f *fakeCounselor) Converse(ctx context.Context, _ string, p *model.Profile, _ string) (string, error) {
	if f.onCall != nil {
		f.onCall()
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.profiles = append(f.profiles, p)
	f.ctxErrs = append(f.ctxErrs, ctx.Err())
	return f.reply, f.err
}

// failingProfiles fails every call with a store error.
type failingProfiles struct{}

var errStoreDown = errors.New("store unavailable")

func (failingProfiles) Upsert(context.Context, *model.Profile) error { return errStoreDown }
func (failingProfiles) GetByUserID(context.Context, string) (*model.Profile, error) {
	return nil, errStoreDown
}

// stepClock returns a time that advances by one second per call.
func stepClock(start time.Time) func() time.Time {
	var mu sync.Mutex
	next := start
	return func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		t := next
		next = next.Add(time.Second)
		return t
	}
}

func strPtr(s string) *string { return &s }
