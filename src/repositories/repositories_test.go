package repositories

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"testing"
	"time"

	"invest/src/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRow struct {
	values []any
	err    error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	if len(dest) != len(r.values) {
		return fmt.Errorf("scan: expected %d destinations, got %d", len(r.values), len(dest))
	}
	for i, value := range r.values {
		reflect.ValueOf(dest[i]).Elem().Set(reflect.ValueOf(value))
	}
	return nil
}

type fakeDB struct {
	row      fakeRow
	queryErr error
	queries  []string
	args     [][]any
}

func (f *fakeDB) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	f.queries = append(f.queries, sql)
	f.args = append(f.args, args)
	return pgconn.CommandTag{}, f.queryErr
}

func (f *fakeDB) Query(_ context.Context, sql string, args ...any) (pgx.Rows, error) {
	f.queries = append(f.queries, sql)
	f.args = append(f.args, args)
	return nil, f.queryErr
}

func (f *fakeDB) QueryRow(_ context.Context, sql string, args ...any) pgx.Row {
	f.queries = append(f.queries, sql)
	f.args = append(f.args, args)
	return f.row
}

func uniqueErr(constraint string) error {
	return &pgconn.PgError{Code: "23505", ConstraintName: constraint, Message: "duplicate key value violates unique constraint"}
}

func TestTranslateError(t *testing.T) {
	t.Run("nil stays nil", func(t *testing.T) {
		assert.NoError(t, TranslateError("Create", "client", nil))
	})

	t.Run("registered unique constraint becomes conflict", func(t *testing.T) {
		err := TranslateError("Create", "client", fmt.Errorf("insert: %w", uniqueErr("clients_email_key")))

		var conflict *ConflictError
		require.ErrorAs(t, err, &conflict)
		assert.Equal(t, "email", conflict.Field)
		assert.Equal(t, "Email já cadastrado", conflict.Message)
		assert.Equal(t, "clients_email_key", conflict.Constraint)

		var pgErr *pgconn.PgError
		assert.ErrorAs(t, err, &pgErr)
	})

	t.Run("update reports its own conflict message", func(t *testing.T) {
		err := TranslateError("Update", "client", uniqueErr("clients_email_key"))

		var conflict *ConflictError
		require.ErrorAs(t, err, &conflict)
		assert.Equal(t, "email", conflict.Field)
		assert.Equal(t, "Este e-mail já está cadastrado.", conflict.Message)
	})

	t.Run("unregistered unique constraint is a store error", func(t *testing.T) {
		err := TranslateError("Create", "client", uniqueErr("clients_pkey"))

		var conflict *ConflictError
		assert.False(t, errors.As(err, &conflict))
		var storeErr *StoreError
		require.ErrorAs(t, err, &storeErr)
		assert.Equal(t, "Create", storeErr.Op)
		assert.Equal(t, "client", storeErr.Entity)
	})

	t.Run("foreign key violation is a store error", func(t *testing.T) {
		err := TranslateError("Create", "asset", &pgconn.PgError{Code: "23503", ConstraintName: "assets_client_id_fkey"})

		var storeErr *StoreError
		require.ErrorAs(t, err, &storeErr)
		assert.Equal(t, "asset", storeErr.Entity)
	})

	t.Run("connectivity failure is a store error", func(t *testing.T) {
		cause := errors.New("dial tcp: connection refused")
		err := TranslateError("GetAll", "client", cause)

		var storeErr *StoreError
		require.ErrorAs(t, err, &storeErr)
		assert.ErrorIs(t, err, cause)
	})
}

func TestClientRepository(t *testing.T) {
	ctx := context.Background()
	now := time.Now()

	t.Run("Create assigns id", func(t *testing.T) {
		db := &fakeDB{row: fakeRow{values: []any{int64(42), now, now}}}
		repo := NewClientRepository(db)

		client := &models.Client{Name: "Ana", Email: "ana@x.com", Status: true}
		require.NoError(t, repo.Create(ctx, client))

		assert.Equal(t, int64(42), client.ID)
		assert.Equal(t, now, client.CreatedAt)
		require.Len(t, db.queries, 1)
		assert.Equal(t, []any{"Ana", "ana@x.com", true}, db.args[0])
	})

	t.Run("Create with taken email", func(t *testing.T) {
		db := &fakeDB{row: fakeRow{err: uniqueErr("clients_email_key")}}
		repo := NewClientRepository(db)

		err := repo.Create(ctx, &models.Client{Name: "Ana", Email: "ana@x.com", Status: false})

		var conflict *ConflictError
		require.ErrorAs(t, err, &conflict)
		assert.Equal(t, "email", conflict.Field)
	})

	t.Run("Update with taken email", func(t *testing.T) {
		db := &fakeDB{row: fakeRow{err: uniqueErr("clients_email_key")}}
		repo := NewClientRepository(db)

		err := repo.Update(ctx, &models.Client{ID: 1, Name: "Ana", Email: "bia@x.com"})

		var conflict *ConflictError
		assert.ErrorAs(t, err, &conflict)
	})

	t.Run("Update of a missing client", func(t *testing.T) {
		db := &fakeDB{row: fakeRow{err: pgx.ErrNoRows}}
		repo := NewClientRepository(db)

		err := repo.Update(ctx, &models.Client{ID: 999, Name: "Ana", Email: "ana@x.com"})
		assert.ErrorIs(t, err, ErrNotFound)
		assert.Equal(t, []any{"Ana", "ana@x.com", false, int64(999)}, db.args[0])
	})

	t.Run("GetByID of a missing client is not an error", func(t *testing.T) {
		db := &fakeDB{row: fakeRow{err: pgx.ErrNoRows}}
		repo := NewClientRepository(db)

		client, err := repo.GetByID(ctx, 999)
		assert.NoError(t, err)
		assert.Nil(t, client)
	})

	t.Run("GetByID fills an empty asset list", func(t *testing.T) {
		db := &fakeDB{row: fakeRow{values: []any{int64(1), "Ana", "ana@x.com", true, now, now, []models.Asset(nil)}}}
		repo := NewClientRepository(db)

		client, err := repo.GetByID(ctx, 1)
		require.NoError(t, err)
		require.NotNil(t, client)
		assert.Equal(t, "Ana", client.Name)
		assert.NotNil(t, client.Assets)
		assert.Empty(t, client.Assets)
	})

	t.Run("GetByID store failure", func(t *testing.T) {
		db := &fakeDB{row: fakeRow{err: errors.New("conn closed")}}
		repo := NewClientRepository(db)

		_, err := repo.GetByID(ctx, 1)
		var storeErr *StoreError
		assert.ErrorAs(t, err, &storeErr)
	})

	t.Run("GetAll store failure", func(t *testing.T) {
		db := &fakeDB{queryErr: errors.New("conn closed")}
		repo := NewClientRepository(db)

		clients, err := repo.GetAll(ctx)
		assert.Nil(t, clients)
		var storeErr *StoreError
		assert.ErrorAs(t, err, &storeErr)
	})

	t.Run("GetByStatus passes the filter", func(t *testing.T) {
		db := &fakeDB{queryErr: errors.New("conn closed")}
		repo := NewClientRepository(db)

		_, err := repo.GetByStatus(ctx, true)
		assert.Error(t, err)
		assert.Equal(t, []any{true}, db.args[0])
	})
}

func TestAssetRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("Create assigns id", func(t *testing.T) {
		stored := models.NewAmount(decimal.RequireFromString("1000.50"))
		db := &fakeDB{row: fakeRow{values: []any{int64(5), stored, time.Now()}}}
		repo := NewAssetRepository(db)

		asset := &models.Asset{Name: "Ações XYZ", Value: models.NewAmount(decimal.RequireFromString("1000.5")), ClientID: 1}
		require.NoError(t, repo.Create(ctx, asset))

		assert.Equal(t, int64(5), asset.ID)
		assert.True(t, asset.Value.Equal(stored.Decimal))
	})

	t.Run("Create for an unknown client", func(t *testing.T) {
		db := &fakeDB{row: fakeRow{err: &pgconn.PgError{Code: "23503", ConstraintName: "assets_client_id_fkey"}}}
		repo := NewAssetRepository(db)

		err := repo.Create(ctx, &models.Asset{Name: "X", ClientID: 404})

		var conflict *ConflictError
		assert.False(t, errors.As(err, &conflict))
		var storeErr *StoreError
		assert.ErrorAs(t, err, &storeErr)
	})

	t.Run("GetAll store failure", func(t *testing.T) {
		db := &fakeDB{queryErr: errors.New("relation \"assets\" does not exist")}
		repo := NewAssetRepository(db)

		_, err := repo.GetAll(ctx)
		var storeErr *StoreError
		assert.ErrorAs(t, err, &storeErr)
	})
}
