package mock

import (
	"context"

	"github.com/fwojciec/docbundle"
)

// Compile-time interface verification.
var (
	_ docbundle.PageStore = (*PageStore)(nil)
	_ docbundle.Unifier   = (*Unifier)(nil)
)

// PageStore is a mock implementation of docbundle.PageStore.
type PageStore struct {
	SaveFn func(ctx context.Context, page *docbundle.Page) error
}

func (s *PageStore) Save(ctx context.Context, page *docbundle.Page) error {
	return s.SaveFn(ctx, page)
}

// Unifier is a mock implementation of docbundle.Unifier.
type Unifier struct {
	UnifyFn func(ctx context.Context, root string) (int, error)
}

func (u *Unifier) Unify(ctx context.Context, root string) (int, error) {
	return u.UnifyFn(ctx, root)
}
