package service_test

import (
	"context"
	"testing"

	"github.com/schoolworks/campus-backend/internal/model"
	"github.com/schoolworks/campus-backend/internal/service"
	"github.com/stretchr/testify/require"
)

type fakeAuditStore struct {
	entries []model.AuditLogEntry

	gotLimit  int
	gotOffset int
}

func (f *fakeAuditStore) ListPaginated(_ context.Context, limit, offset int) ([]model.AuditLogEntry, int, error) {
	f.gotLimit = limit
	f.gotOffset = offset

	if offset >= len(f.entries) {
		return nil, len(f.entries), nil
	}
	end := offset + limit
	if end > len(f.entries) {
		end = len(f.entries)
	}
	return f.entries[offset:end], len(f.entries), nil
}

func TestAuditLogListPagination(t *testing.T) {
	store := &fakeAuditStore{}
	for i := 0; i < 45; i++ {
		store.entries = append(store.entries, model.AuditLogEntry{ID: int64(i + 1)})
	}
	svc := service.NewAuditLogService(store)

	entries, pagination, err := svc.List(context.Background(), 2, 20)
	require.NoError(t, err)
	require.Len(t, entries, 20)
	require.Equal(t, 20, store.gotLimit)
	require.Equal(t, 20, store.gotOffset)
	require.Equal(t, 2, pagination.Page)
	require.Equal(t, 45, pagination.TotalItems)
	require.Equal(t, 3, pagination.TotalPages)
}

func TestAuditLogListClampsInputs(t *testing.T) {
	store := &fakeAuditStore{}
	svc := service.NewAuditLogService(store)

	entries, pagination, err := svc.List(context.Background(), -1, 1000)
	require.NoError(t, err)
	require.NotNil(t, entries)
	require.Equal(t, 1, pagination.Page)
	require.Equal(t, 100, pagination.PerPage)
	require.Equal(t, 100, store.gotLimit)
	require.Equal(t, 0, store.gotOffset)
}
