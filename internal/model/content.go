package model

import "time"

// HeroContent is the singleton banner shown at the top of the landing page.
type HeroContent struct {
	ID                  string    `db:"id"                    json:"id"`
	Title               string    `db:"title"                 json:"title"`
	Subtitle            *string   `db:"subtitle"              json:"subtitle"`
	MosqueBadge         *string   `db:"mosque_badge"          json:"mosque_badge"`
	ButtonPrimaryText   string    `db:"button_primary_text"   json:"button_primary_text"`
	ButtonSecondaryText string    `db:"button_secondary_text" json:"button_secondary_text"`
	CreatedAt           time.Time `db:"created_at"            json:"created_at"`
	UpdatedAt           time.Time `db:"updated_at"            json:"updated_at"`
}

type HeroContentUpdate struct {
	Title               *string `json:"title"`
	Subtitle            *string `json:"subtitle"`
	MosqueBadge         *string `json:"mosque_badge"`
	ButtonPrimaryText   *string `json:"button_primary_text"`
	ButtonSecondaryText *string `json:"button_secondary_text"`
}

// MosqueSettings is the singleton describing the mosque and how its
// prayer times are obtained.
type MosqueSettings struct {
	ID                string    `db:"id"                 json:"id"`
	Name              string    `db:"name"               json:"name"`
	Address           *string   `db:"address"            json:"address"`
	Contact           *string   `db:"contact"            json:"contact"`
	LogoURL           *string   `db:"logo_url"           json:"logo_url"`
	City              string    `db:"city"               json:"city"`
	Country           string    `db:"country"            json:"country"`
	Latitude          *float64  `db:"latitude"           json:"latitude"`
	Longitude         *float64  `db:"longitude"          json:"longitude"`
	CalculationMethod int       `db:"calculation_method" json:"calculation_method"`
	UseAPI            bool      `db:"use_api"            json:"use_api"`
	CreatedAt         time.Time `db:"created_at"         json:"created_at"`
	UpdatedAt         time.Time `db:"updated_at"         json:"updated_at"`
}

type MosqueSettingsUpdate struct {
	Name              *string  `json:"name"`
	Address           *string  `json:"address"`
	Contact           *string  `json:"contact"`
	LogoURL           *string  `json:"logo_url"`
	City              *string  `json:"city"`
	Country           *string  `json:"country"`
	Latitude          *float64 `json:"latitude"`
	Longitude         *float64 `json:"longitude"`
	CalculationMethod *int     `json:"calculation_method"`
	UseAPI            *bool    `json:"use_api"`
}

// PrayerTimeRow is a manually maintained prayer time.
type PrayerTimeRow struct {
	ID        string    `db:"id"         json:"id"`
	Name      string    `db:"name"       json:"name"` // subuh, dzuhur, ashar, maghrib, isya
	Time      string    `db:"time"       json:"time"`
	IsActive  bool      `db:"is_active"  json:"is_active"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

type KajianStatus string

const (
	KajianUpcoming  KajianStatus = "upcoming"
	KajianOngoing   KajianStatus = "ongoing"
	KajianCompleted KajianStatus = "completed"
	KajianCancelled KajianStatus = "cancelled"
)

// Kajian is a scheduled lecture.
type Kajian struct {
	ID          string       `db:"id"          json:"id"`
	Title       string       `db:"title"       json:"title"`
	Description *string      `db:"description" json:"description"`
	Speaker     string       `db:"speaker"     json:"speaker"`
	Date        string       `db:"date"        json:"date"`
	StartTime   string       `db:"start_time"  json:"start_time"`
	EndTime     string       `db:"end_time"    json:"end_time"`
	Location    string       `db:"location"    json:"location"`
	ImageURL    *string      `db:"image_url"   json:"image_url"`
	VideoURL    *string      `db:"video_url"   json:"video_url"`
	Status      KajianStatus `db:"status"      json:"status"`
	IsFeatured  bool         `db:"is_featured" json:"is_featured"`
	CreatedAt   time.Time    `db:"created_at"  json:"created_at"`
	UpdatedAt   time.Time    `db:"updated_at"  json:"updated_at"`
}

type KajianUpdate struct {
	Title       *string       `json:"title"`
	Description *string       `json:"description"`
	Speaker     *string       `json:"speaker"`
	Date        *string       `json:"date"`
	StartTime   *string       `json:"start_time"`
	EndTime     *string       `json:"end_time"`
	Location    *string       `json:"location"`
	ImageURL    *string       `json:"image_url"`
	VideoURL    *string       `json:"video_url"`
	Status      *KajianStatus `json:"status"`
	IsFeatured  *bool         `json:"is_featured"`
}

// Activity is an entry in the activity slider.
type Activity struct {
	ID          string    `db:"id"          json:"id"`
	Title       string    `db:"title"       json:"title"`
	Description *string   `db:"description" json:"description"`
	Date        string    `db:"date"        json:"date"`
	Time        *string   `db:"time"        json:"time"`
	Location    *string   `db:"location"    json:"location"`
	Category    string    `db:"category"    json:"category"` // kajian, event, pengumuman, kegiatan
	ImageURL    *string   `db:"image_url"   json:"image_url"`
	IsActive    bool      `db:"is_active"   json:"is_active"`
	CreatedAt   time.Time `db:"created_at"  json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"  json:"updated_at"`
}

// Announcement is shown while today falls inside [StartDate, EndDate].
type Announcement struct {
	ID        string    `db:"id"         json:"id"`
	Title     string    `db:"title"      json:"title"`
	Content   string    `db:"content"    json:"content"`
	Priority  string    `db:"priority"   json:"priority"` // low, medium, high
	IsActive  bool      `db:"is_active"  json:"is_active"`
	StartDate string    `db:"start_date" json:"start_date"`
	EndDate   *string   `db:"end_date"   json:"end_date"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}
