package packets

import (
	"github.com/Nixie-Tech-LLC/takmir/internal/content"
	"github.com/Nixie-Tech-LLC/takmir/internal/model"
)

type CreateHeroRequest struct {
	Title               string  `json:"title" binding:"required"`
	Subtitle            *string `json:"subtitle"`
	MosqueBadge         *string `json:"mosque_badge"`
	ButtonPrimaryText   string  `json:"button_primary_text"`
	ButtonSecondaryText string  `json:"button_secondary_text"`
}

func (r CreateHeroRequest) ToModel() model.HeroContent {
	return model.HeroContent{
		Title:               r.Title,
		Subtitle:            r.Subtitle,
		MosqueBadge:         r.MosqueBadge,
		ButtonPrimaryText:   r.ButtonPrimaryText,
		ButtonSecondaryText: r.ButtonSecondaryText,
	}
}

type CreateSettingsRequest struct {
	Name              string   `json:"name" binding:"required"`
	Address           *string  `json:"address"`
	Contact           *string  `json:"contact"`
	LogoURL           *string  `json:"logo_url"`
	City              string   `json:"city"`
	Country           string   `json:"country"`
	Latitude          *float64 `json:"latitude"`
	Longitude         *float64 `json:"longitude"`
	CalculationMethod int      `json:"calculation_method"`
	UseAPI            *bool    `json:"use_api"`
}

func (r CreateSettingsRequest) ToModel() model.MosqueSettings {
	useAPI := true
	if r.UseAPI != nil {
		useAPI = *r.UseAPI
	}
	return model.MosqueSettings{
		Name:              r.Name,
		Address:           r.Address,
		Contact:           r.Contact,
		LogoURL:           r.LogoURL,
		City:              r.City,
		Country:           r.Country,
		Latitude:          r.Latitude,
		Longitude:         r.Longitude,
		CalculationMethod: r.CalculationMethod,
		UseAPI:            useAPI,
	}
}

type UpdatePrayerTimesRequest struct {
	Times []content.PrayerTimeChange `json:"times" binding:"required,min=1,dive"`
}

type UpdatePrayerTimeRequest struct {
	Time string `json:"time" binding:"required"`
}

// Field checks happen in the content service so the messages stay the
// same for every client.
type CreateKajianRequest struct {
	Title       string             `json:"title"`
	Description *string            `json:"description"`
	Speaker     string             `json:"speaker"`
	Date        string             `json:"date"`
	StartTime   string             `json:"start_time"`
	EndTime     string             `json:"end_time"`
	Location    string             `json:"location"`
	ImageURL    *string            `json:"image_url"`
	VideoURL    *string            `json:"video_url"`
	Status      model.KajianStatus `json:"status"`
	IsFeatured  bool               `json:"is_featured"`
}

func (r CreateKajianRequest) ToModel() model.Kajian {
	return model.Kajian{
		Title:       r.Title,
		Description: r.Description,
		Speaker:     r.Speaker,
		Date:        r.Date,
		StartTime:   r.StartTime,
		EndTime:     r.EndTime,
		Location:    r.Location,
		ImageURL:    r.ImageURL,
		VideoURL:    r.VideoURL,
		Status:      r.Status,
		IsFeatured:  r.IsFeatured,
	}
}

type CreateActivityRequest struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Date        string  `json:"date"`
	Time        *string `json:"time"`
	Location    *string `json:"location"`
	Category    string  `json:"category"`
	ImageURL    *string `json:"image_url"`
	IsActive    *bool   `json:"is_active"`
}

func (r CreateActivityRequest) ToModel() model.Activity {
	return model.Activity{
		Title:       r.Title,
		Description: r.Description,
		Date:        r.Date,
		Time:        r.Time,
		Location:    r.Location,
		Category:    r.Category,
		ImageURL:    r.ImageURL,
		IsActive:    r.IsActive == nil || *r.IsActive,
	}
}

type CreateAnnouncementRequest struct {
	Title     string  `json:"title"`
	Content   string  `json:"content"`
	Priority  string  `json:"priority"`
	IsActive  *bool   `json:"is_active"`
	StartDate string  `json:"start_date"`
	EndDate   *string `json:"end_date"`
}

func (r CreateAnnouncementRequest) ToModel() model.Announcement {
	return model.Announcement{
		Title:     r.Title,
		Content:   r.Content,
		Priority:  r.Priority,
		IsActive:  r.IsActive == nil || *r.IsActive,
		StartDate: r.StartDate,
		EndDate:   r.EndDate,
	}
}

type VideoRequest struct {
	URL string `json:"url" binding:"required"`
}
