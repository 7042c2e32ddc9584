package services_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"sync"
	"time"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/babanaplo/babanaplo/internal/models"
)

type staticToken string

func (s staticToken) Token() (string, error) { return string(s), nil }

func testLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// testBackend is an in-memory rendition of the REST backend, just enough of
// it to exercise the client services.
type testBackend struct {
	mu     sync.Mutex
	nextID int64

	feedings map[int64]*models.Feeding
	routines map[int64]*models.DailyRoutine // dated routines by id
	defaults map[int64]*models.DailyRoutine // default templates by baby id

	lastAuthHeader string
	lastRangeQuery url.Values
	lastSleepBody  []byte
}

func newTestBackend() *testBackend {
	return &testBackend{
		feedings: make(map[int64]*models.Feeding),
		routines: make(map[int64]*models.DailyRoutine),
		defaults: make(map[int64]*models.DailyRoutine),
	}
}

func (b *testBackend) router() http.Handler {
	r := mux.NewRouter()

	r.HandleFunc("/auth/login", b.handleLogin).Methods(http.MethodPost)

	r.HandleFunc("/feeding", b.handleCreateFeeding).Methods(http.MethodPost)
	r.HandleFunc("/feeding/baby/{babyId}", b.handleListFeedings).Methods(http.MethodGet)
	r.HandleFunc("/feeding/baby/{babyId}/range", b.handleFeedingRange).Methods(http.MethodGet)
	r.HandleFunc("/feeding/{id}", b.handleGetFeeding).Methods(http.MethodGet)
	r.HandleFunc("/feeding/{id}", b.handleDeleteFeeding).Methods(http.MethodDelete)

	r.HandleFunc("/sleep", b.handleCreateSleep).Methods(http.MethodPost)

	r.HandleFunc("/dailyroutine", b.handleCreateRoutine).Methods(http.MethodPost)
	r.HandleFunc("/dailyroutine/baby/{babyId}/default", b.handleGetDefault).Methods(http.MethodGet)
	r.HandleFunc("/dailyroutine/baby/{babyId}/default", b.handleSetDefault).Methods(http.MethodPost)
	r.HandleFunc("/dailyroutine/baby/{babyId}/date", b.handleRoutineForDate).Methods(http.MethodGet)

	// Every handler needs the auth header captured.
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			b.mu.Lock()
			b.lastAuthHeader = req.Header.Get("Authorization")
			b.mu.Unlock()
			next.ServeHTTP(w, req)
		})
	})

	return r
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"message": message})
}

func pathInt64(r *http.Request, name string) int64 {
	v, _ := strconv.ParseInt(mux.Vars(r)[name], 10, 64)
	return v
}

func (b *testBackend) handleLogin(w http.ResponseWriter, r *http.Request) {
	var data models.LoginData
	_ = json.NewDecoder(r.Body).Decode(&data)
	if data.Email == "a@b.com" && data.Password == "secret" {
		writeJSON(w, http.StatusOK, models.AuthResponse{Token: "abc", Expiration: "2099-01-01"})
		return
	}
	writeMessage(w, http.StatusUnauthorized, "Hibás email vagy jelszó")
}

func (b *testBackend) handleCreateFeeding(w http.ResponseWriter, r *http.Request) {
	var data models.FeedingData
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
		writeMessage(w, http.StatusBadRequest, "érvénytelen kérés")
		return
	}
	b.mu.Lock()
	b.nextID++
	feeding := &models.Feeding{
		ID:        b.nextID,
		BabyID:    data.BabyID,
		StartTime: data.StartTime,
		EndTime:   data.EndTime,
		Type:      data.Type,
		Amount:    data.Amount,
		Notes:     data.Notes,
	}
	b.feedings[feeding.ID] = feeding
	b.mu.Unlock()
	writeJSON(w, http.StatusCreated, feeding)
}

func (b *testBackend) handleGetFeeding(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	feeding, ok := b.feedings[pathInt64(r, "id")]
	b.mu.Unlock()
	if !ok {
		writeMessage(w, http.StatusNotFound, "az etetési adat nem található")
		return
	}
	writeJSON(w, http.StatusOK, feeding)
}

func (b *testBackend) handleDeleteFeeding(w http.ResponseWriter, r *http.Request) {
	id := pathInt64(r, "id")
	b.mu.Lock()
	_, ok := b.feedings[id]
	delete(b.feedings, id)
	b.mu.Unlock()
	if !ok {
		writeMessage(w, http.StatusNotFound, "az etetési adat nem található")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (b *testBackend) handleListFeedings(w http.ResponseWriter, r *http.Request) {
	babyID := pathInt64(r, "babyId")
	b.mu.Lock()
	out := []*models.Feeding{}
	for _, f := range b.feedings {
		if f.BabyID == babyID {
			out = append(out, f)
		}
	}
	b.mu.Unlock()
	writeJSON(w, http.StatusOK, out)
}

func (b *testBackend) handleFeedingRange(w http.ResponseWriter, r *http.Request) {
	babyID := pathInt64(r, "babyId")
	b.mu.Lock()
	b.lastRangeQuery = r.URL.Query()
	start, _ := time.Parse(time.RFC3339, r.URL.Query().Get("startDate"))
	end, _ := time.Parse(time.RFC3339, r.URL.Query().Get("endDate"))
	out := []*models.Feeding{}
	for _, f := range b.feedings {
		if f.BabyID == babyID && !f.StartTime.Before(start) && !f.StartTime.After(end) {
			out = append(out, f)
		}
	}
	b.mu.Unlock()
	writeJSON(w, http.StatusOK, out)
}

// handleCreateSleep stores nothing; it captures the raw body so tests can
// assert the client sends records unvalidated.
func (b *testBackend) handleCreateSleep(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)
	b.mu.Lock()
	b.lastSleepBody = body
	b.nextID++
	id := b.nextID
	b.mu.Unlock()

	var data models.SleepData
	_ = json.Unmarshal(body, &data)
	writeJSON(w, http.StatusCreated, &models.SleepPeriod{
		ID:        id,
		BabyID:    data.BabyID,
		StartTime: data.StartTime,
		EndTime:   data.EndTime,
		Quality:   data.Quality,
		Location:  data.Location,
		Notes:     data.Notes,
	})
}

func (b *testBackend) newRoutine(data *models.RoutineData) *models.DailyRoutine {
	b.nextID++
	now := time.Now().UTC()
	return &models.DailyRoutine{
		ID:           b.nextID,
		BabyID:       data.BabyID,
		Date:         data.Date,
		WakeUpTime:   data.WakeUpTime,
		BedTime:      data.BedTime,
		NapCount:     data.NapCount,
		FeedingCount: data.FeedingCount,
		Notes:        data.Notes,
		IsDefault:    data.IsDefault,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func (b *testBackend) handleCreateRoutine(w http.ResponseWriter, r *http.Request) {
	var data models.RoutineData
	_ = json.NewDecoder(r.Body).Decode(&data)
	b.mu.Lock()
	routine := b.newRoutine(&data)
	b.routines[routine.ID] = routine
	b.mu.Unlock()
	writeJSON(w, http.StatusCreated, routine)
}

func (b *testBackend) handleGetDefault(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	routine, ok := b.defaults[pathInt64(r, "babyId")]
	b.mu.Unlock()
	if !ok {
		writeMessage(w, http.StatusNotFound, "nincs alapértelmezett rutin")
		return
	}
	writeJSON(w, http.StatusOK, routine)
}

func (b *testBackend) handleSetDefault(w http.ResponseWriter, r *http.Request) {
	babyID := pathInt64(r, "babyId")
	var data models.RoutineData
	_ = json.NewDecoder(r.Body).Decode(&data)
	data.IsDefault = true
	data.BabyID = babyID
	b.mu.Lock()
	routine := b.newRoutine(&data)
	b.defaults[babyID] = routine
	b.mu.Unlock()
	writeJSON(w, http.StatusOK, routine)
}

// handleRoutineForDate resolves a dated routine, falling back to the default
// template the way the real backend does.
func (b *testBackend) handleRoutineForDate(w http.ResponseWriter, r *http.Request) {
	babyID := pathInt64(r, "babyId")
	date, _ := time.Parse(time.RFC3339, r.URL.Query().Get("date"))

	b.mu.Lock()
	defer b.mu.Unlock()
	for _, routine := range b.routines {
		if routine.BabyID == babyID && sameDay(routine.Date, date) {
			writeJSON(w, http.StatusOK, routine)
			return
		}
	}
	if def, ok := b.defaults[babyID]; ok {
		writeJSON(w, http.StatusOK, def)
		return
	}
	writeMessage(w, http.StatusNotFound, "nincs rutin erre a napra")
}

func sameDay(a, b time.Time) bool {
	return a.UTC().Truncate(24*time.Hour) == b.UTC().Truncate(24*time.Hour)
}
