package domain

import (
	"context"
	"time"
)

// Span is one timed step of a request.
type Span struct {
	Name      string    `json:"name"`
	startTs   time.Time `json:"-"`
	ElapsedMs *int64    `json:"elapsedMs"`
}

func (s *Span) End() {
	if s.ElapsedMs == nil {
		t := time.Since(s.startTs).Milliseconds()
		s.ElapsedMs = &t
	}
}

// Profile is simply a list of spans for one request. Not thread safe; a
// profile belongs to a single request.
type Profile struct {
	Spans   []*Span `json:"spans"`
	startTs time.Time
	TotalMs *int64 `json:"totalMs"`
}

func NewProfile() (newProfile *Profile, endProfile func()) {
	newProfile = &Profile{
		Spans:   []*Span{},
		startTs: time.Now(),
	}
	return newProfile, newProfile.End
}

func (p *Profile) End() {
	if len(p.Spans) > 0 {
		p.Spans[len(p.Spans)-1].End()
	}
	if p.TotalMs == nil {
		t := time.Since(p.startTs).Milliseconds()
		p.TotalMs = &t
	}
}

// StartNewSpan ends the last span and begins a new one
func (p *Profile) StartNewSpan(name string) (newSpan *Span, endSpan func()) {
	newSpan = &Span{
		Name:    name,
		startTs: time.Now(),
	}
	if len(p.Spans) > 0 {
		p.Spans[len(p.Spans)-1].End()
	}
	p.Spans = append(p.Spans, newSpan)
	return newSpan, newSpan.End
}

type profileContextKey struct{}

func NewCtxWithProfile(ctx context.Context, profile *Profile) context.Context {
	return context.WithValue(ctx, profileContextKey{}, profile)
}

// GetProfile returns the request profile, or a detached one when ctx has
// none so callers never need a nil check.
func GetProfile(ctx context.Context) *Profile {
	profile, ok := ctx.Value(profileContextKey{}).(*Profile)
	if !ok {
		profile, _ = NewProfile()
	}
	return profile
}
