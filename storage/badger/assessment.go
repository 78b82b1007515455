package badger

import (
	"context"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/skillsift/skillsift/core"
	"github.com/skillsift/skillsift/storage"
)

// AssessmentRepository implements storage.AssessmentRepository for BadgerDB.
type AssessmentRepository struct {
	backend *Backend
}

var _ storage.AssessmentRepository = (*AssessmentRepository)(nil)

// NewAssessmentRepository creates a new AssessmentRepository.
func NewAssessmentRepository(backend *Backend) (*AssessmentRepository, error) {
	return &AssessmentRepository{
		backend: backend,
	}, nil
}

// Close releases resources. The backend is owned by the caller.
func (r *AssessmentRepository) Close() error {
	return nil
}

// QuerySimilar delegates to the backend.
func (r *AssessmentRepository) QuerySimilar(ctx context.Context, vector []float32, filter *storage.Filter, topK int) ([]*storage.Candidate, error) {
	return r.backend.QuerySimilar(ctx, vector, filter, topK)
}

// WithTransaction delegates to the backend.
func (r *AssessmentRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.backend.WithTransaction(ctx, fn)
}

// UpsertAssessments stores one or more assessment records. IDs are derived
// from record identity, so re-ingesting the same catalog entry overwrites
// the stored copy instead of duplicating it.
func (r *AssessmentRepository) UpsertAssessments(ctx context.Context, records ...*core.AssessmentRecord) ([]*core.AssessmentRecord, error) {
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		now := time.Now().UTC()
		for _, record := range records {
			if err := core.ValidateAssessmentRecord(record); err != nil {
				return err
			}
			if record.Id == 0 {
				record.Id = core.IDFromContent(record.Identity())
			}

			key := makeAssessmentKey(record.Id)

			// Preserve the original insertion time on overwrite.
			existing, err := readAssessment(tx, record.Id)
			if err != nil {
				return err
			}
			if existing != nil {
				record.InsertedAt = existing.InsertedAt
			} else {
				record.InsertedAt = now
			}
			record.UpdatedAt = now

			stored, err := storage.EncodeAssessment(record)
			if err != nil {
				return err
			}
			value, err := storage.MarshalStored(stored)
			if err != nil {
				return err
			}
			if err := tx.Set(key, value); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)

	return records, err
}

// GetAssessment retrieves a single assessment record by ID.
func (r *AssessmentRepository) GetAssessment(ctx context.Context, id core.ID) (*core.AssessmentRecord, error) {
	var result *core.AssessmentRecord
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		var err error
		result, err = readAssessment(tx, id)
		if err != nil {
			return err
		}
		if result == nil {
			return storage.ErrNotFound
		}
		return nil
	}, false)
	return result, err
}

// GetAssessments retrieves multiple assessment records by their IDs.
// Missing records are skipped rather than reported.
func (r *AssessmentRepository) GetAssessments(ctx context.Context, ids ...core.ID) ([]*core.AssessmentRecord, error) {
	var result []*core.AssessmentRecord
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, id := range ids {
			record, err := readAssessment(tx, id)
			if err != nil {
				return err
			}
			if record != nil {
				result = append(result, record)
			}
		}
		return nil
	}, false)
	return result, err
}

// DeleteAssessments removes assessment records by their IDs.
func (r *AssessmentRepository) DeleteAssessments(ctx context.Context, ids ...core.ID) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		for _, id := range ids {
			key := makeAssessmentKey(id)

			if _, err := tx.Get(key); err != nil {
				if err == badger.ErrKeyNotFound {
					return storage.ErrNotFound
				}
				return err
			}
			if err := tx.Delete(key); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
}

// CountAssessments returns the number of stored assessment records.
func (r *AssessmentRepository) CountAssessments(ctx context.Context) (int, error) {
	count := 0
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = assessmentScanPrefix()
		opts.PrefetchValues = false
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			count++
		}
		return nil
	}, false)
	return count, err
}

// readAssessment reads an assessment record from the transaction.
// Returns nil without error when the key is absent.
func readAssessment(tx *badger.Txn, id core.ID) (*core.AssessmentRecord, error) {
	item, err := tx.Get(makeAssessmentKey(id))
	if err != nil {
		if err == badger.ErrKeyNotFound {
			return nil, nil
		}
		return nil, err
	}

	var record *core.AssessmentRecord
	err = item.Value(func(val []byte) error {
		stored, err := storage.UnmarshalStored(val)
		if err != nil {
			return err
		}
		record = storage.DecodeAssessment(id, stored)
		return nil
	})
	return record, err
}
