//go:generate go run go.uber.org/mock/mockgen -source=audit.go -destination=../mocks/mock_audit_repository.go -package=mocks
package repositories

import (
	"bank-lab/domain"
	"fmt"
	"log/slog"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/samber/lo"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
)

const auditPrefix = "audit:"

type IAuditRepository interface {
	StoreEntry(entry DiskAuditEntry) error
	GetEntries(cursor *string) ([]DiskAuditEntry, *string, error)
}

type AuditRepository struct {
	db           *badger.DB
	log          *slog.Logger
	limitEntries *int
}

func NewAuditRepository(db *badger.DB, log *slog.Logger, limitEntries *int) AuditRepository {
	return AuditRepository{db: db, log: log, limitEntries: limitEntries}
}

type DiskAuditEntry struct {
	ID        uuid.UUID
	At        time.Time
	Operation string
	Args      []domain.AuditArg
	Outcome   string
}

// StoreEntry persists an audit entry in BadgerDB.
// The key is formatted as "audit:{timestamp_padded}:{uuid}" so that a prefix
// scan returns entries in chronological order, the UUID breaking ties
// between entries written in the same nanosecond.
func (r AuditRepository) StoreEntry(entry DiskAuditEntry) error {
	key := fmt.Sprintf("%s%019d:%s", auditPrefix, entry.At.UnixNano(), entry.ID)
	value, err := fromDiskAuditEntry(entry)
	if err != nil {
		return err
	}
	bytes, err := proto.Marshal(value)
	if err != nil {
		return err
	}
	return r.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), bytes)
	})
}

// GetEntries scans the trail from the oldest entry, or from just after cursor.
// It stops once limitEntries is reached and returns the cursor of the last
// entry read, or the given cursor when nothing new was found.
func (r AuditRepository) GetEntries(cursor *string) ([]DiskAuditEntry, *string, error) {
	var byteEntries [][]byte
	lastKey := lo.FromPtr(cursor)
	err := r.db.View(func(txn *badger.Txn) error {
		prefix := []byte(auditPrefix)
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		seekKey := prefix
		if cursor != nil {
			seekKey = append([]byte(auditPrefix), []byte(*cursor)...)
		}
		it.Seek(seekKey)

		if cursor != nil && it.ValidForPrefix(prefix) && string(it.Item().Key()) == string(seekKey) {
			it.Next()
		}

		for ; it.ValidForPrefix(prefix); it.Next() {
			if r.limitEntries != nil && len(byteEntries) == *r.limitEntries {
				r.log.Debug(fmt.Sprintf("Maximum of %d audit entries reached", *r.limitEntries))
				break
			}
			item := it.Item()
			lastKey = string(item.Key()[len(prefix):])
			err := item.Value(func(value []byte) error {
				byteEntries = append(byteEntries, value)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	entries := make([]DiskAuditEntry, 0, len(byteEntries))
	for _, b := range byteEntries {
		var s structpb.Struct
		if err = proto.Unmarshal(b, &s); err != nil {
			return nil, nil, err
		}
		entry, err := toDiskAuditEntry(&s)
		if err != nil {
			return nil, nil, err
		}
		entries = append(entries, entry)
	}
	return entries, &lastKey, nil
}

func fromDiskAuditEntry(entry DiskAuditEntry) (*structpb.Struct, error) {
	args := make([]any, 0, len(entry.Args))
	for _, a := range entry.Args {
		args = append(args, map[string]any{"key": a.Key, "value": a.Value})
	}
	return structpb.NewStruct(map[string]any{
		"id":        entry.ID.String(),
		"at":        entry.At.UTC().Format(time.RFC3339Nano),
		"operation": entry.Operation,
		"args":      args,
		"outcome":   entry.Outcome,
	})
}

func toDiskAuditEntry(s *structpb.Struct) (DiskAuditEntry, error) {
	fields := s.GetFields()
	id, err := uuid.Parse(fields["id"].GetStringValue())
	if err != nil {
		return DiskAuditEntry{}, err
	}
	at, err := time.Parse(time.RFC3339Nano, fields["at"].GetStringValue())
	if err != nil {
		return DiskAuditEntry{}, err
	}
	var args []domain.AuditArg
	for _, v := range fields["args"].GetListValue().GetValues() {
		arg := v.GetStructValue().GetFields()
		args = append(args, domain.AuditArg{
			Key:   arg["key"].GetStringValue(),
			Value: arg["value"].GetStringValue(),
		})
	}
	return DiskAuditEntry{
		ID:        id,
		At:        at.UTC(),
		Operation: fields["operation"].GetStringValue(),
		Args:      args,
		Outcome:   fields["outcome"].GetStringValue(),
	}, nil
}
