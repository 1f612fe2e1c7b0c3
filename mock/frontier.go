package mock

import (
	"context"

	"github.com/fwojciec/docbundle"
)

var _ docbundle.URLFrontier = (*URLFrontier)(nil)

// URLFrontier is a mock implementation of docbundle.URLFrontier.
type URLFrontier struct {
	PushFn    func(url string) bool
	PopFn     func() (string, bool)
	VisitFn   func(url string) bool
	VisitedFn func(url string) bool
	LenFn     func() int
}

func (f *URLFrontier) Push(url string) bool {
	return f.PushFn(url)
}

func (f *URLFrontier) Pop() (string, bool) {
	return f.PopFn()
}

func (f *URLFrontier) Visit(url string) bool {
	return f.VisitFn(url)
}

func (f *URLFrontier) Visited(url string) bool {
	return f.VisitedFn(url)
}

func (f *URLFrontier) Len() int {
	return f.LenFn()
}

var _ docbundle.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter is a mock implementation of docbundle.DomainLimiter.
type DomainLimiter struct {
	WaitFn func(ctx context.Context, domain string) error
}

func (l *DomainLimiter) Wait(ctx context.Context, domain string) error {
	return l.WaitFn(ctx, domain)
}
