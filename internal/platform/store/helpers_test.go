package store

import (
	"context"
	"errors"
	"testing"

	perr "spamwatch/internal/platform/errors"
)

// fakeRows walks a fixed grid of rows, scanning into string or int pointers
type fakeRows struct {
	cols []string
	grid [][]any
	pos  int
	err  error
}

func (f *fakeRows) Next() bool { return f.pos < len(f.grid) }

func (f *fakeRows) Scan(dest ...any) error {
	if f.pos >= len(f.grid) {
		return errors.New("scan past end")
	}
	row := f.grid[f.pos]
	f.pos++
	for i := range dest {
		switch d := dest[i].(type) {
		case *string:
			*d = row[i].(string)
		case *int:
			*d = row[i].(int)
		default:
			return errors.New("unsupported scan dest")
		}
	}
	return nil
}

func (f *fakeRows) Err() error        { return f.err }
func (f *fakeRows) Close()            {}
func (f *fakeRows) Columns() []string { return f.cols }

type fakeTag struct {
	s string
	n int64
}

func (t fakeTag) String() string      { return t.s }
func (t fakeTag) RowsAffected() int64 { return t.n }

// fakeQuerier serves canned rows and records the last sql seen
type fakeQuerier struct {
	rows    *fakeRows
	execTag fakeTag
	execErr error
	lastSQL string
}

func (f *fakeQuerier) Exec(_ context.Context, sql string, _ ...any) (CommandTag, error) {
	f.lastSQL = sql
	return f.execTag, f.execErr
}

func (f *fakeQuerier) Query(_ context.Context, sql string, _ ...any) (Rows, error) {
	f.lastSQL = sql
	return f.rows, nil
}

func (f *fakeQuerier) QueryRow(_ context.Context, sql string, _ ...any) Row {
	f.lastSQL = sql
	return cursorRow{rows: f.rows}
}

func TestScalar(t *testing.T) {
	q := &fakeQuerier{rows: &fakeRows{cols: []string{"n"}, grid: [][]any{{42}}}}
	got, err := Scalar[int](context.Background(), q, "select 42")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got != 42 {
		t.Fatalf("got %d, want 42", got)
	}
}

func TestOne_ReturnsRow(t *testing.T) {
	q := &fakeQuerier{rows: &fakeRows{cols: []string{"name"}, grid: [][]any{{"alpha"}}}}
	got, err := One(context.Background(), q, func(r Row) (string, error) {
		var s string
		err := r.Scan(&s)
		return s, err
	}, "select name from t")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got != "alpha" {
		t.Fatalf("got %q", got)
	}
}

func TestOne_EmptyIsNotFound(t *testing.T) {
	q := &fakeQuerier{rows: &fakeRows{cols: []string{"name"}}}
	_, err := One(context.Background(), q, func(r Row) (string, error) {
		var s string
		err := r.Scan(&s)
		return s, err
	}, "select name from t")
	if !errors.Is(err, perr.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestOne_MoreThanOneRowErrors(t *testing.T) {
	q := &fakeQuerier{rows: &fakeRows{cols: []string{"name"}, grid: [][]any{{"a"}, {"b"}}}}
	_, err := One(context.Background(), q, func(r Row) (string, error) {
		var s string
		err := r.Scan(&s)
		return s, err
	}, "select name from t")
	if err == nil {
		t.Fatal("want error for extra rows")
	}
}

func TestMany_CollectsAllRows(t *testing.T) {
	q := &fakeQuerier{rows: &fakeRows{cols: []string{"name"}, grid: [][]any{{"a"}, {"b"}, {"c"}}}}
	got, err := Many(context.Background(), q, func(r Row) (string, error) {
		var s string
		err := r.Scan(&s)
		return s, err
	}, "select name from t")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(got) != 3 || got[0] != "a" || got[2] != "c" {
		t.Fatalf("got %v", got)
	}
}

func TestExecOne(t *testing.T) {
	q := &fakeQuerier{execTag: fakeTag{s: "INSERT 0 1", n: 1}}
	if err := ExecOne(context.Background(), q, "insert"); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	q = &fakeQuerier{execTag: fakeTag{s: "UPDATE 2", n: 2}}
	if err := ExecOne(context.Background(), q, "update"); err == nil {
		t.Fatal("want error for 2 rows affected")
	}
}
