// Package audit stamps created/modified metadata onto entities right before
// they are written.
package audit

import (
	"time"

	"github.com/BuzzLyutic/plm-api/internal/model"
)

// Auditable is implemented by every type that embeds model.Entity.
type Auditable interface {
	AuditFields() *model.Entity
}

// Changeset is everything one transaction is about to write.
// Values that do not implement Auditable are ignored.
type Changeset struct {
	Inserted []any
	Modified []any
}

type Stamper struct {
	now func() time.Time
}

func NewStamper() *Stamper {
	return &Stamper{now: time.Now}
}

// NewStamperWithClock is used by tests that need deterministic timestamps.
func NewStamperWithClock(now func() time.Time) *Stamper {
	return &Stamper{now: now}
}

// Prepare must run once per write, after all application changes and before
// the statement is sent to storage.
func (s *Stamper) Prepare(user model.User, cs Changeset) {
	who := user.AuditName()
	now := s.now().UTC()

	for _, v := range cs.Inserted {
		if a, ok := v.(Auditable); ok {
			e := a.AuditFields()
			e.CreatedBy = who
			e.CreatedOn = now
		}
	}

	for _, v := range cs.Modified {
		if a, ok := v.(Auditable); ok {
			e := a.AuditFields()
			by, on := who, now
			e.ModifiedBy = &by
			e.ModifiedOn = &on
		}
	}
}
