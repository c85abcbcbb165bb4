// Package content validates and stores the editable parts of the site:
// hero banner, mosque settings, prayer times, kajian, activities and
// announcements.
package content

import (
	"database/sql"
	"errors"
	"time"

	"github.com/Nixie-Tech-LLC/takmir/internal/db"
)

const (
	FeaturedKajianLimit = 3
	UpcomingKajianLimit = 10
)

type Service struct {
	store db.Store
	loc   *time.Location
	now   func() time.Time
}

// NewService builds the service. "Today" is read in loc; nil means UTC.
func NewService(store db.Store, loc *time.Location) *Service {
	if loc == nil {
		loc = time.UTC
	}
	return &Service{store: store, loc: loc, now: time.Now}
}

func (s *Service) today() string {
	return s.now().In(s.loc).Format(dateLayout)
}

// fromStore converts a store error, mapping sql.ErrNoRows to msg.
func fromStore(op string, err error, msg string) error {
	if errors.Is(err, sql.ErrNoRows) {
		return notFound(msg)
	}
	return storeError(op, err)
}
