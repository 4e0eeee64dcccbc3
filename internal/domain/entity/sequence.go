package entity

// DocumentSequence backs year-scoped document numbering (SO-2025-003,
// INV-2025-007). A dedicated counter row per (doc type, year) keeps numbers
// gapless and duplicate-free under concurrent creation, which counting the
// collection cannot guarantee.
type DocumentSequence struct {
	DocType string `gorm:"size:20;primaryKey" json:"doc_type"`
	Year    int    `gorm:"primaryKey" json:"year"`
	Value   int64  `gorm:"not null;default:0" json:"value"`
}

// TableName returns the table name for the DocumentSequence model
func (DocumentSequence) TableName() string {
	return "document_sequences"
}
