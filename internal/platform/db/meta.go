package db

import "time"

// Meta is the metadata envelope composed into every mutable document.
// createdAt is written once at create time; updatedAt is refreshed on
// every write; both are stamped by the repository layer, never supplied
// by callers.
type Meta struct {
	CreatedAt time.Time `bson:"createdAt" json:"created_at"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updated_at"`
	CreatedBy string    `bson:"createdBy,omitempty" json:"created_by,omitempty"`
}

// StampCreate sets both timestamps to now and records who created the
// document.
func (m *Meta) StampCreate(createdBy string) {
	now := Now()
	m.CreatedAt = now
	m.UpdatedAt = now
	m.CreatedBy = createdBy
}

// Now is the timestamp source for all repository writes.
func Now() time.Time {
	return time.Now().UTC()
}
