package database

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

func TestFakeDB(t *testing.T) {
	db := &FakeDB{}
	require.Panics(t, func() { db.Exec(context.Background(), "", nil) })
	require.Panics(t, func() { db.Query(context.Background(), "") })
	require.Panics(t, func() { db.QueryRow(context.Background(), "") })
	require.Panics(t, func() { db.Ping(context.Background()) })
	db.Close()

	execCalled := false
	queryCalled := false
	rowCalled := false
	pingCalled := false
	closeCalled := false

	db.ExecFn = func(ctx context.Context, s string, args ...any) (pgconn.CommandTag, error) {
		execCalled = true
		return pgconn.CommandTag{}, errors.New("e")
	}
	db.QueryFn = func(ctx context.Context, s string, args ...any) (pgx.Rows, error) {
		queryCalled = true
		return &FakeRows{}, nil
	}
	db.QueryRowFn = func(ctx context.Context, s string, args ...any) pgx.Row {
		rowCalled = true
		return FakeRow{}
	}
	db.PingFn = func(ctx context.Context) error { pingCalled = true; return nil }
	db.CloseFn = func() { closeCalled = true }

	_, err := db.Exec(context.Background(), "sql")
	require.Error(t, err)
	_, err = db.Query(context.Background(), "sql")
	require.NoError(t, err)
	_ = db.QueryRow(context.Background(), "sql")
	require.NoError(t, db.Ping(context.Background()))
	db.Close()
	require.True(t, execCalled)
	require.True(t, queryCalled)
	require.True(t, rowCalled)
	require.True(t, pingCalled)
	require.True(t, closeCalled)
}

func TestFakeRows(t *testing.T) {
	now := time.Now()
	rows := &FakeRows{Data: [][]any{
		{"a", 1, now},
		{"b", 2, now.Add(time.Hour)},
	}}

	var (
		names []string
		sum   int
	)
	for rows.Next() {
		var (
			name string
			n    int
			ts   time.Time
		)
		require.NoError(t, rows.Scan(&name, &n, &ts))
		names = append(names, name)
		sum += n
	}
	rows.Close()
	require.True(t, rows.Closed())
	require.False(t, rows.Next())
	require.Equal(t, []string{"a", "b"}, names)
	require.Equal(t, 3, sum)

	// 型別可轉換時自動轉換
	type label string
	rows = &FakeRows{Data: [][]any{{"x", int64(4)}}}
	require.True(t, rows.Next())
	var l label
	var n int
	require.NoError(t, rows.Scan(&l, &n))
	require.Equal(t, label("x"), l)
	require.Equal(t, 4, n)

	// 目標數量錯誤
	require.Error(t, rows.Scan(&l))

	// 不可轉換
	var b bool
	require.Error(t, rows.Scan(&b, &n))

	rows = &FakeRows{Data: [][]any{{1}}, ScanErr: errors.New("scan")}
	require.True(t, rows.Next())
	require.EqualError(t, rows.Scan(&n), "scan")
}

func TestFakeRow(t *testing.T) {
	var s string
	require.NoError(t, FakeRow{Values: []any{"v"}}.Scan(&s))
	require.Equal(t, "v", s)
	require.ErrorIs(t, FakeRow{Err: pgx.ErrNoRows}.Scan(&s), pgx.ErrNoRows)
	require.Error(t, FakeRow{Values: []any{"v"}}.Scan(s))
}
