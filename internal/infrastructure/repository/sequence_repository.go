package repository

import (
	"context"

	"github.com/bizledger/bizledger-api/internal/domain/entity"
	domainRepo "github.com/bizledger/bizledger-api/internal/domain/repository"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type sequenceRepository struct {
	db *gorm.DB
}

// NewSequenceRepository creates a new document sequence repository
func NewSequenceRepository(db *gorm.DB) domainRepo.SequenceRepository {
	return &sequenceRepository{db: db}
}

// Next atomically increments and returns the counter for (docType, year).
// A single upsert with RETURNING keeps two concurrent callers from ever
// seeing the same value.
func (r *sequenceRepository) Next(ctx context.Context, docType string, year int) (int64, error) {
	seq := entity.DocumentSequence{
		DocType: docType,
		Year:    year,
		Value:   1,
	}

	err := r.db.WithContext(ctx).Clauses(
		clause.OnConflict{
			Columns: []clause.Column{{Name: "doc_type"}, {Name: "year"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"value": gorm.Expr("document_sequences.value + 1"),
			}),
		},
		clause.Returning{Columns: []clause.Column{{Name: "value"}}},
	).Create(&seq).Error
	if err != nil {
		return 0, err
	}
	return seq.Value, nil
}
