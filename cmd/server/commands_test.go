package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nixie-Tech-LLC/takmir/internal/config"
	"github.com/Nixie-Tech-LLC/takmir/internal/db"
	"github.com/Nixie-Tech-LLC/takmir/internal/http/middleware"
	"github.com/Nixie-Tech-LLC/takmir/internal/model"
	"github.com/Nixie-Tech-LLC/takmir/internal/timings"
)

func TestRootCommands(t *testing.T) {
	root := newRootCmd("test")
	var names []string
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	for _, want := range []string{"serve", "migrate", "seed", "admin", "today", "methods"} {
		assert.Contains(t, names, want)
	}
}

func TestMethodsCommand(t *testing.T) {
	root := newRootCmd("test")
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"methods"})

	require.NoError(t, root.Execute())
	assert.Contains(t, out.String(), "Kementerian Agama, Indonesia")
	for _, line := range strings.Split(out.String(), "\n") {
		if strings.HasPrefix(line, "20 ") {
			assert.Contains(t, line, "(default)")
		}
	}
}

func TestTodayRejectsHalfCoordinates(t *testing.T) {
	root := newRootCmd("test")
	root.SetArgs([]string{"today", "--lat", "-6.9"})
	assert.ErrorContains(t, root.Execute(), "--lat and --lng")
}

func TestRequireDatabase(t *testing.T) {
	assert.Error(t, requireDatabase(&config.Config{}, false))
	assert.Error(t, requireDatabase(&config.Config{DatabaseURL: "postgres://x"}, true))
	assert.NoError(t, requireDatabase(&config.Config{DatabaseURL: "postgres://x", JWTSecret: "s"}, true))
}

func TestCreateAdmin(t *testing.T) {
	store := db.NewMemStore()
	cmd := &cobra.Command{}
	cmd.SetContext(context.Background())

	id, err := createAdmin(cmd, store, " Admin@Masjid.id ", "bismillah123", "Pak Takmir")
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	user, err := middleware.Authenticate(context.Background(), store, "admin@masjid.id", "bismillah123")
	require.NoError(t, err)
	require.NotNil(t, user.Name)
	assert.Equal(t, "Pak Takmir", *user.Name)

	_, err = createAdmin(cmd, store, "admin@masjid.id", "another-pass", "")
	assert.ErrorContains(t, err, "already registered")

	_, err = createAdmin(cmd, store, "short@masjid.id", "short", "")
	assert.Error(t, err)
}

func TestWriteBoard(t *testing.T) {
	var out bytes.Buffer
	err := writeBoard(&out, timings.Result{
		Source:   timings.SourceFallback,
		Reason:   "timings request failed",
		Date:     "2026-03-01",
		Method:   20,
		Location: &model.Coordinates{City: "Jakarta", Country: "Indonesia"},
		Prayers: []model.Prayer{
			{ID: 1, Name: "Subuh", Time: "04:45", Status: model.StatusCompleted},
			{ID: 3, Name: "Ashar", Time: "15:30", Status: model.StatusCurrent},
		},
	})
	require.NoError(t, err)

	text := out.String()
	assert.Contains(t, text, "2026-03-01  Jakarta  (source: fallback, method 20)")
	assert.Contains(t, text, "note: timings request failed")
	assert.Regexp(t, `Ashar\s+15:30\s+current`, text)
}
