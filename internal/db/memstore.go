package db

import (
	"context"
	"database/sql"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Nixie-Tech-LLC/takmir/internal/model"
)

// MemStore is an in-process Store for tests. Err, when set, is returned
// by every call.
type MemStore struct {
	mu sync.Mutex

	Err     error
	Inserts int

	users         map[string]model.User
	hero          *model.HeroContent
	settings      *model.MosqueSettings
	prayerTimes   []model.PrayerTimeRow
	kajian        map[string]model.Kajian
	activities    []model.Activity
	announcements []model.Announcement
}

var _ Store = (*MemStore)(nil)

func NewMemStore() *MemStore {
	return &MemStore{
		users:  map[string]model.User{},
		kajian: map[string]model.Kajian{},
	}
}

func (m *MemStore) stamp() (string, time.Time) {
	m.Inserts++
	return uuid.NewString(), time.Now()
}

func (m *MemStore) CreateUser(_ context.Context, email, hashedPassword string, name *string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return "", m.Err
	}
	id, now := m.stamp()
	m.users[id] = model.User{ID: id, Email: email, HashedPassword: hashedPassword, Name: name, CreatedAt: now, UpdatedAt: now}
	return id, nil
}

func (m *MemStore) GetUserByEmail(_ context.Context, email string) (*model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	for _, u := range m.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (m *MemStore) GetUserByID(_ context.Context, id string) (*model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	u, ok := m.users[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return &u, nil
}

func (m *MemStore) UpdateUserProfile(_ context.Context, id, email string, name *string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	u, ok := m.users[id]
	if !ok {
		return ErrNoSuchUser
	}
	u.Email, u.Name, u.UpdatedAt = email, name, time.Now()
	m.users[id] = u
	return nil
}

func (m *MemStore) GetHeroContent(context.Context) (*model.HeroContent, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	if m.hero == nil {
		return nil, nil
	}
	h := *m.hero
	return &h, nil
}

func (m *MemStore) CreateHeroContent(_ context.Context, h model.HeroContent) (*model.HeroContent, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	h.ID, h.CreatedAt = m.stamp()
	h.UpdatedAt = h.CreatedAt
	m.hero = &h
	out := h
	return &out, nil
}

func (m *MemStore) UpdateHeroContent(_ context.Context, id string, u model.HeroContentUpdate) (*model.HeroContent, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	if m.hero == nil || m.hero.ID != id {
		return nil, sql.ErrNoRows
	}
	h := m.hero
	set(&h.Title, u.Title)
	setPtr(&h.Subtitle, u.Subtitle)
	setPtr(&h.MosqueBadge, u.MosqueBadge)
	set(&h.ButtonPrimaryText, u.ButtonPrimaryText)
	set(&h.ButtonSecondaryText, u.ButtonSecondaryText)
	h.UpdatedAt = time.Now()
	out := *h
	return &out, nil
}

func (m *MemStore) GetMosqueSettings(context.Context) (*model.MosqueSettings, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	if m.settings == nil {
		return nil, nil
	}
	s := *m.settings
	return &s, nil
}

func (m *MemStore) CreateMosqueSettings(_ context.Context, s model.MosqueSettings) (*model.MosqueSettings, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	s.ID, s.CreatedAt = m.stamp()
	s.UpdatedAt = s.CreatedAt
	m.settings = &s
	out := s
	return &out, nil
}

func (m *MemStore) UpdateMosqueSettings(_ context.Context, id string, u model.MosqueSettingsUpdate) (*model.MosqueSettings, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	if m.settings == nil || m.settings.ID != id {
		return nil, sql.ErrNoRows
	}
	s := m.settings
	set(&s.Name, u.Name)
	setPtr(&s.Address, u.Address)
	setPtr(&s.Contact, u.Contact)
	setPtr(&s.LogoURL, u.LogoURL)
	set(&s.City, u.City)
	set(&s.Country, u.Country)
	setPtr(&s.Latitude, u.Latitude)
	setPtr(&s.Longitude, u.Longitude)
	set(&s.CalculationMethod, u.CalculationMethod)
	set(&s.UseAPI, u.UseAPI)
	s.UpdatedAt = time.Now()
	out := *s
	return &out, nil
}

var prayerOrder = map[string]int{"subuh": 1, "dzuhur": 2, "ashar": 3, "maghrib": 4, "isya": 5}

func (m *MemStore) ListPrayerTimes(context.Context) ([]model.PrayerTimeRow, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	out := []model.PrayerTimeRow{}
	for _, p := range m.prayerTimes {
		if p.IsActive {
			out = append(out, p)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return prayerOrder[out[i].Name] < prayerOrder[out[j].Name] })
	return out, nil
}

func (m *MemStore) CreatePrayerTime(_ context.Context, name, hhmm string) (*model.PrayerTimeRow, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	id, now := m.stamp()
	row := model.PrayerTimeRow{ID: id, Name: name, Time: hhmm, IsActive: true, CreatedAt: now, UpdatedAt: now}
	m.prayerTimes = append(m.prayerTimes, row)
	return &row, nil
}

func (m *MemStore) UpdatePrayerTime(_ context.Context, id, hhmm string) (*model.PrayerTimeRow, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	for i := range m.prayerTimes {
		if m.prayerTimes[i].ID == id {
			m.prayerTimes[i].Time = hhmm
			m.prayerTimes[i].UpdatedAt = time.Now()
			row := m.prayerTimes[i]
			return &row, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (m *MemStore) sortedKajian(keep func(model.Kajian) bool, asc bool, limit int) []model.Kajian {
	out := []model.Kajian{}
	for _, k := range m.kajian {
		if keep(k) {
			out = append(out, k)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i].Date+out[i].StartTime, out[j].Date+out[j].StartTime
		if asc {
			return a < b
		}
		return a > b
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

func (m *MemStore) ListKajian(context.Context) ([]model.Kajian, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	return m.sortedKajian(func(model.Kajian) bool { return true }, false, 0), nil
}

func (m *MemStore) GetKajian(_ context.Context, id string) (*model.Kajian, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	k, ok := m.kajian[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return &k, nil
}

func (m *MemStore) CreateKajian(_ context.Context, k model.Kajian) (*model.Kajian, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	k.ID, k.CreatedAt = m.stamp()
	k.UpdatedAt = k.CreatedAt
	m.kajian[k.ID] = k
	return &k, nil
}

func (m *MemStore) UpdateKajian(_ context.Context, id string, u model.KajianUpdate) (*model.Kajian, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	k, ok := m.kajian[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	set(&k.Title, u.Title)
	setPtr(&k.Description, u.Description)
	set(&k.Speaker, u.Speaker)
	set(&k.Date, u.Date)
	set(&k.StartTime, u.StartTime)
	set(&k.EndTime, u.EndTime)
	set(&k.Location, u.Location)
	setPtr(&k.ImageURL, u.ImageURL)
	setPtr(&k.VideoURL, u.VideoURL)
	set(&k.Status, u.Status)
	set(&k.IsFeatured, u.IsFeatured)
	k.UpdatedAt = time.Now()
	m.kajian[id] = k
	return &k, nil
}

func (m *MemStore) DeleteKajian(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	if _, ok := m.kajian[id]; !ok {
		return sql.ErrNoRows
	}
	delete(m.kajian, id)
	return nil
}

func (m *MemStore) ListFeaturedKajian(_ context.Context, limit int) ([]model.Kajian, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	return m.sortedKajian(func(k model.Kajian) bool {
		return k.IsFeatured && k.Status == model.KajianUpcoming
	}, true, limit), nil
}

func (m *MemStore) ListUpcomingKajian(_ context.Context, today string, limit int) ([]model.Kajian, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	return m.sortedKajian(func(k model.Kajian) bool {
		return k.Status == model.KajianUpcoming && k.Date >= today
	}, true, limit), nil
}

func (m *MemStore) ListActivities(context.Context) ([]model.Activity, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	out := []model.Activity{}
	for _, a := range m.activities {
		if a.IsActive {
			out = append(out, a)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date > out[j].Date })
	return out, nil
}

func (m *MemStore) CreateActivity(_ context.Context, a model.Activity) (*model.Activity, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	a.ID, a.CreatedAt = m.stamp()
	a.UpdatedAt = a.CreatedAt
	m.activities = append(m.activities, a)
	return &a, nil
}

var priorityRank = map[string]int{"high": 3, "medium": 2, "low": 1}

func (m *MemStore) ListActiveAnnouncements(_ context.Context, today string) ([]model.Announcement, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	out := []model.Announcement{}
	for _, a := range m.announcements {
		if a.IsActive && a.StartDate <= today && (a.EndDate == nil || *a.EndDate >= today) {
			out = append(out, a)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if pi, pj := priorityRank[out[i].Priority], priorityRank[out[j].Priority]; pi != pj {
			return pi > pj
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (m *MemStore) CreateAnnouncement(_ context.Context, a model.Announcement) (*model.Announcement, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	a.ID, a.CreatedAt = m.stamp()
	a.UpdatedAt = a.CreatedAt
	m.announcements = append(m.announcements, a)
	return &a, nil
}

func set[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

func setPtr[T any](dst **T, src *T) {
	if src != nil {
		v := *src
		*dst = &v
	}
}
