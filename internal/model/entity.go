package model

import "time"

// Entity carries the audit columns shared by every stored record.
type Entity struct {
	ID         int64      `json:"id"`
	CreatedBy  string     `json:"createdBy"`
	CreatedOn  time.Time  `json:"createdOn"`
	ModifiedBy *string    `json:"modifiedBy,omitempty"`
	ModifiedOn *time.Time `json:"modifiedOn,omitempty"`
}

// AuditFields exposes the embedded entity to the audit stamper.
func (e *Entity) AuditFields() *Entity {
	return e
}
