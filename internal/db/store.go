// exposes a Store interface that is passed to services and API modules
package db

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/Nixie-Tech-LLC/takmir/internal/model"
)

type Store interface {
	// user functions
	CreateUser(ctx context.Context, email, hashedPassword string, name *string) (string, error)
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
	GetUserByID(ctx context.Context, id string) (*model.User, error)
	UpdateUserProfile(ctx context.Context, id, email string, name *string) error

	// singletons: reads return nil, nil when the row does not exist
	GetHeroContent(ctx context.Context) (*model.HeroContent, error)
	CreateHeroContent(ctx context.Context, h model.HeroContent) (*model.HeroContent, error)
	UpdateHeroContent(ctx context.Context, id string, u model.HeroContentUpdate) (*model.HeroContent, error)
	GetMosqueSettings(ctx context.Context) (*model.MosqueSettings, error)
	CreateMosqueSettings(ctx context.Context, s model.MosqueSettings) (*model.MosqueSettings, error)
	UpdateMosqueSettings(ctx context.Context, id string, u model.MosqueSettingsUpdate) (*model.MosqueSettings, error)

	// prayer time functions
	ListPrayerTimes(ctx context.Context) ([]model.PrayerTimeRow, error)
	CreatePrayerTime(ctx context.Context, name, time string) (*model.PrayerTimeRow, error)
	UpdatePrayerTime(ctx context.Context, id, time string) (*model.PrayerTimeRow, error)

	// kajian functions
	ListKajian(ctx context.Context) ([]model.Kajian, error)
	GetKajian(ctx context.Context, id string) (*model.Kajian, error)
	CreateKajian(ctx context.Context, k model.Kajian) (*model.Kajian, error)
	UpdateKajian(ctx context.Context, id string, u model.KajianUpdate) (*model.Kajian, error)
	DeleteKajian(ctx context.Context, id string) error
	ListFeaturedKajian(ctx context.Context, limit int) ([]model.Kajian, error)
	ListUpcomingKajian(ctx context.Context, today string, limit int) ([]model.Kajian, error)

	// activity functions
	ListActivities(ctx context.Context) ([]model.Activity, error)
	CreateActivity(ctx context.Context, a model.Activity) (*model.Activity, error)

	// announcement functions
	ListActiveAnnouncements(ctx context.Context, today string) ([]model.Announcement, error)
	CreateAnnouncement(ctx context.Context, a model.Announcement) (*model.Announcement, error)
}

type pgStore struct {
	db *sqlx.DB
}

// compile-time check that pgStore implements Store
var _ Store = (*pgStore)(nil)

// NewStore wraps conn, or the package-level DB when conn is nil.
func NewStore(conn *sqlx.DB) Store {
	if conn == nil {
		conn = DB
	}
	return &pgStore{db: conn}
}
