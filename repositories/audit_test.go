package repositories

import (
	"bank-lab/domain"
	"log/slog"
	"testing"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
)

func openDB(t *testing.T) *badger.DB {
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).WithLoggingLevel(badger.ERROR))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func Test_Store_And_Read_Audit_Entries_In_Order(t *testing.T) {
	req := require.New(t)
	repository := NewAuditRepository(openDB(t), slog.Default(), nil)
	at := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

	entries := []DiskAuditEntry{
		{uuid.New(), at.Add(2 * time.Minute), "WITHDRAW", []domain.AuditArg{{Key: "cpf", Value: "52998224725"}, {Key: "amount", Value: "50.00"}}, "ok"},
		{uuid.New(), at, "CREATE_CLIENT", []domain.AuditArg{{Key: "cpf", Value: "52998224725"}}, "ok"},
		{uuid.New(), at.Add(1 * time.Minute), "DEPOSIT", []domain.AuditArg{{Key: "cpf", Value: "52998224725"}, {Key: "amount", Value: "100.00"}}, "ok"},
	}
	for _, e := range entries {
		req.NoError(repository.StoreEntry(e))
	}

	got, cursor, err := repository.GetEntries(nil)
	req.NoError(err)
	req.NotNil(cursor)
	req.Len(got, 3)
	req.Equal([]string{"CREATE_CLIENT", "DEPOSIT", "WITHDRAW"}, lo.Map(got, func(e DiskAuditEntry, _ int) string {
		return e.Operation
	}))
	req.Equal(entries[0], got[2])
}

func Test_Audit_Entries_Are_Paginated_With_Cursor(t *testing.T) {
	req := require.New(t)
	limit := 2
	repository := NewAuditRepository(openDB(t), slog.Default(), &limit)
	at := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

	for i := range 5 {
		req.NoError(repository.StoreEntry(DiskAuditEntry{
			ID:        uuid.New(),
			At:        at.Add(time.Duration(i) * time.Second),
			Operation: "DEPOSIT",
			Outcome:   "ok",
		}))
	}

	first, cursor, err := repository.GetEntries(nil)
	req.NoError(err)
	req.Len(first, 2)

	second, cursor, err := repository.GetEntries(cursor)
	req.NoError(err)
	req.Len(second, 2)
	req.True(second[0].At.After(first[1].At))

	last, _, err := repository.GetEntries(cursor)
	req.NoError(err)
	req.Len(last, 1)
	req.Equal(at.Add(4*time.Second), last[0].At)
}

func Test_Empty_Audit_Store(t *testing.T) {
	req := require.New(t)
	repository := NewAuditRepository(openDB(t), slog.Default(), nil)

	got, _, err := repository.GetEntries(nil)
	req.NoError(err)
	req.Empty(got)
}

func Test_Cursor_Is_Kept_When_Nothing_New(t *testing.T) {
	req := require.New(t)
	repository := NewAuditRepository(openDB(t), slog.Default(), nil)
	req.NoError(repository.StoreEntry(DiskAuditEntry{ID: uuid.New(), At: time.Now().UTC(), Operation: "DEPOSIT"}))

	_, cursor, err := repository.GetEntries(nil)
	req.NoError(err)

	got, next, err := repository.GetEntries(cursor)
	req.NoError(err)
	req.Empty(got)
	req.Equal(*cursor, *next)
}
