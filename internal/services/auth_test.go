package services_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/babanaplo/babanaplo/internal/api"
	"github.com/babanaplo/babanaplo/internal/models"
	"github.com/babanaplo/babanaplo/internal/services"
	"github.com/babanaplo/babanaplo/internal/token"
)

// TestLoginPersistsTokenAndAuthenticatesLaterCalls is the end-to-end path: a
// successful login stores the token, and the very next service call carries
// it as a bearer header without any caller involvement.
func TestLoginPersistsTokenAndAuthenticatesLaterCalls(t *testing.T) {
	backend := newTestBackend()
	srv := httptest.NewServer(backend.router())
	t.Cleanup(srv.Close)

	tokens, err := token.Open(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { _ = tokens.Close() })

	client := api.NewClient(srv.URL, 0, tokens, testLogger())
	auth := services.NewAuthService(client, tokens, testLogger())

	resp, err := auth.Login(context.Background(), &models.LoginData{Email: "a@b.com", Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, "abc", resp.Token)
	assert.Equal(t, "2099-01-01", resp.Expiration)

	stored, err := tokens.Token()
	require.NoError(t, err)
	assert.Equal(t, "abc", stored)

	feedings := services.NewFeedingService(client)
	_, err = feedings.Create(context.Background(), &models.FeedingData{
		BabyID:    1,
		StartTime: time.Now().UTC(),
		Type:      models.FeedingBottle,
	})
	require.NoError(t, err)
	assert.Equal(t, "Bearer abc", backend.lastAuthHeader)
}

func TestLoginBadCredentialsSurfacesServerMessage(t *testing.T) {
	backend := newTestBackend()
	srv := httptest.NewServer(backend.router())
	t.Cleanup(srv.Close)

	tokens, err := token.Open(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { _ = tokens.Close() })

	client := api.NewClient(srv.URL, 0, tokens, testLogger())
	auth := services.NewAuthService(client, tokens, testLogger())

	_, err = auth.Login(context.Background(), &models.LoginData{Email: "a@b.com", Password: "wrong"})
	require.Error(t, err)
	assert.Equal(t, "Bejelentkezési hiba: Hibás email vagy jelszó", err.Error())

	stored, err := tokens.Token()
	require.NoError(t, err)
	assert.Empty(t, stored, "a failed login must not persist a token")
}

type brokenTokenWriter struct {
	cleared bool
}

func (w *brokenTokenWriter) Save(token, expiration string) error { return errors.New("disk full") }
func (w *brokenTokenWriter) Clear() error {
	w.cleared = true
	return errors.New("disk full")
}

// TestLogoutSwallowsStorageErrors: logout must always succeed from the
// caller's point of view, whatever the token store does.
func TestLogoutSwallowsStorageErrors(t *testing.T) {
	writer := &brokenTokenWriter{}
	client := api.NewClient("http://unused", 0, staticToken(""), testLogger())
	auth := services.NewAuthService(client, writer, testLogger())

	assert.NotPanics(t, func() { auth.Logout() })
	assert.True(t, writer.cleared, "logout must still attempt the clear")
}

// TestSleepCreateSendsUnvalidatedTimes documents that ordering invariants are
// server-enforced only: an end time before the start time goes out as-is.
func TestSleepCreateSendsUnvalidatedTimes(t *testing.T) {
	backend := newTestBackend()
	srv := httptest.NewServer(backend.router())
	t.Cleanup(srv.Close)

	client := api.NewClient(srv.URL, 0, staticToken("abc"), testLogger())
	sleep := services.NewSleepService(client)

	start := time.Date(2024, 3, 1, 22, 0, 0, 0, time.UTC)
	end := start.Add(-2 * time.Hour)
	_, err := sleep.Create(context.Background(), &models.SleepData{
		BabyID:    1,
		StartTime: start,
		EndTime:   &end,
	})
	require.NoError(t, err)

	var sent models.SleepData
	require.NoError(t, json.Unmarshal(backend.lastSleepBody, &sent))
	require.NotNil(t, sent.EndTime)
	assert.True(t, sent.EndTime.Before(sent.StartTime), "client must not reorder or reject the times")
}
