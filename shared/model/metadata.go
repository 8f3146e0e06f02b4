package model

import "time"

// Metadata is the audit trail embedded in every persisted entity. The
// application sets the values itself so cached copies and API responses
// agree with the stored row.
type Metadata struct {
	CreatedAt  time.Time `db:"created_at"  json:"created_at"`
	ModifiedAt time.Time `db:"modified_at" json:"modified_at"`
	CreatedBy  string    `db:"created_by"  json:"created_by"`
	ModifiedBy string    `db:"modified_by" json:"modified_by"`
}
