package db

import (
	"context"
	"database/sql"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nixie-Tech-LLC/takmir/internal/model"
)

func setupTestStore(t *testing.T) Store {
	t.Helper()
	if os.Getenv("TEST_DATABASE_URL") == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}
	require.NoError(t, InitTestDB("../../migrations"))

	_, err := DB.Exec(`TRUNCATE users, hero_content, mosque_settings, prayer_times, kajian, activities, announcements;`)
	require.NoError(t, err)
	return TestStore
}

func strPtr(s string) *string { return &s }

// TestStoreIntegration exercises the store against a real PostgreSQL.
func TestStoreIntegration(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	t.Run("User Management", func(t *testing.T) {
		id, err := store.CreateUser(ctx, "admin@example.com", "hashed", nil)
		require.NoError(t, err)
		assert.NotEmpty(t, id)

		u, err := store.GetUserByEmail(ctx, "admin@example.com")
		require.NoError(t, err)
		assert.Equal(t, id, u.ID)

		err = store.UpdateUserProfile(ctx, id, "takmir@example.com", strPtr("Takmir"))
		require.NoError(t, err)

		u, err = store.GetUserByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, "takmir@example.com", u.Email)

		_, err = store.GetUserByEmail(ctx, "missing@example.com")
		assert.ErrorIs(t, err, sql.ErrNoRows)
	})

	t.Run("Singletons", func(t *testing.T) {
		h, err := store.GetHeroContent(ctx)
		require.NoError(t, err)
		assert.Nil(t, h)

		created, err := store.CreateHeroContent(ctx, model.HeroContent{
			Title: "Takmir Pinter", ButtonPrimaryText: "a", ButtonSecondaryText: "b",
		})
		require.NoError(t, err)

		updated, err := store.UpdateHeroContent(ctx, created.ID, model.HeroContentUpdate{Title: strPtr("Baru")})
		require.NoError(t, err)
		assert.Equal(t, "Baru", updated.Title)
		assert.Equal(t, "a", updated.ButtonPrimaryText)

		s, err := store.GetMosqueSettings(ctx)
		require.NoError(t, err)
		assert.Nil(t, s)

		ms, err := store.CreateMosqueSettings(ctx, model.MosqueSettings{
			Name: "Masjid", City: "Jakarta", Country: "Indonesia", CalculationMethod: 20, UseAPI: true,
		})
		require.NoError(t, err)
		method := 3
		ms, err = store.UpdateMosqueSettings(ctx, ms.ID, model.MosqueSettingsUpdate{CalculationMethod: &method})
		require.NoError(t, err)
		assert.Equal(t, 3, ms.CalculationMethod)
		assert.Equal(t, "Masjid", ms.Name)
	})

	t.Run("Prayer Times", func(t *testing.T) {
		for _, p := range [][2]string{{"isya", "20:00"}, {"subuh", "04:45"}, {"dzuhur", "12:15"}} {
			_, err := store.CreatePrayerTime(ctx, p[0], p[1])
			require.NoError(t, err)
		}
		rows, err := store.ListPrayerTimes(ctx)
		require.NoError(t, err)
		require.Len(t, rows, 3)
		assert.Equal(t, "subuh", rows[0].Name)
		assert.Equal(t, "04:45", rows[0].Time)
		assert.Equal(t, "isya", rows[2].Name)

		row, err := store.UpdatePrayerTime(ctx, rows[0].ID, "04:40")
		require.NoError(t, err)
		assert.Equal(t, "04:40", row.Time)
	})

	t.Run("Kajian", func(t *testing.T) {
		today := time.Now().Format("2006-01-02")
		k, err := store.CreateKajian(ctx, model.Kajian{
			Title: "Tafsir", Speaker: "Ustadz A", Date: today, StartTime: "19:30", EndTime: "21:00",
			Location: "Aula", Status: model.KajianUpcoming, IsFeatured: true,
		})
		require.NoError(t, err)
		assert.Equal(t, today, k.Date)
		assert.Equal(t, "19:30", k.StartTime)

		featured, err := store.ListFeaturedKajian(ctx, 3)
		require.NoError(t, err)
		assert.Len(t, featured, 1)

		upcoming, err := store.ListUpcomingKajian(ctx, today, 10)
		require.NoError(t, err)
		assert.Len(t, upcoming, 1)

		done := model.KajianCompleted
		k, err = store.UpdateKajian(ctx, k.ID, model.KajianUpdate{Status: &done})
		require.NoError(t, err)
		assert.Equal(t, model.KajianCompleted, k.Status)

		require.NoError(t, store.DeleteKajian(ctx, k.ID))
		assert.ErrorIs(t, store.DeleteKajian(ctx, k.ID), sql.ErrNoRows)
		_, err = store.GetKajian(ctx, k.ID)
		assert.ErrorIs(t, err, sql.ErrNoRows)
	})

	t.Run("Announcements", func(t *testing.T) {
		today := time.Now().Format("2006-01-02")
		for _, p := range []string{"low", "high", "medium"} {
			_, err := store.CreateAnnouncement(ctx, model.Announcement{
				Title: p, Content: "x", Priority: p, IsActive: true, StartDate: today,
			})
			require.NoError(t, err)
		}
		all, err := store.ListActiveAnnouncements(ctx, today)
		require.NoError(t, err)
		require.Len(t, all, 3)
		assert.Equal(t, "high", all[0].Priority)
		assert.Equal(t, "medium", all[1].Priority)
		assert.Equal(t, "low", all[2].Priority)
	})

	t.Run("Activities", func(t *testing.T) {
		_, err := store.CreateActivity(ctx, model.Activity{
			Title: "Bakti sosial", Date: "2026-03-01", Category: "kegiatan", IsActive: true,
		})
		require.NoError(t, err)
		all, err := store.ListActivities(ctx)
		require.NoError(t, err)
		assert.Len(t, all, 1)
		assert.Nil(t, all[0].Time)
	})
}
