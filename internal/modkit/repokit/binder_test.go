package repokit

import (
	"context"
	"testing"

	"spamwatch/internal/platform/store"
	"spamwatch/internal/platform/testkit"
)

type stubQuerier struct{}

func (stubQuerier) Exec(context.Context, string, ...any) (store.CommandTag, error) {
	return nil, nil
}
func (stubQuerier) Query(context.Context, string, ...any) (store.Rows, error) { return nil, nil }
func (stubQuerier) QueryRow(context.Context, string, ...any) store.Row        { return nil }

type fakeRepo struct{ q Queryer }

func TestBindFunc(t *testing.T) {
	b := BindFunc[*fakeRepo](func(q Queryer) *fakeRepo { return &fakeRepo{q: q} })

	q := stubQuerier{}
	repo := b.Bind(q)
	if repo.q != Queryer(q) {
		t.Fatal("binder did not pass the querier through")
	}
}

func TestMustBind_NilQuerierPanics(t *testing.T) {
	b := BindFunc[*fakeRepo](func(q Queryer) *fakeRepo { return &fakeRepo{q: q} })
	testkit.MustPanic(t, func() { MustBind[*fakeRepo](b, nil) })
}
