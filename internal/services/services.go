package services

import (
	"net/url"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/babanaplo/babanaplo/internal/api"
)

// Operation labels used in normalized error messages.
const (
	opGet     = "lekérési"
	opCreate  = "létrehozási"
	opUpdate  = "frissítési"
	opDelete  = "törlési"
	opByRange = "dátum szerinti lekérési"
	opSet     = "beállítási"
	opUpload  = "feltöltési"
)

// Services bundles every backend service behind one wiring point
type Services struct {
	Auth     AuthService
	Profile  ProfileService
	Babies   BabyService
	Routines DailyRoutineService
	Feedings FeedingService
	Growth   GrowthService
	Sleep    SleepService
	Crying   CryingService
	Notes    NoteService
}

// New wires all services onto a shared client and token store
func New(client *api.Client, tokens TokenWriter, logger *logrus.Logger) *Services {
	return &Services{
		Auth:     NewAuthService(client, tokens, logger),
		Profile:  NewProfileService(client),
		Babies:   NewBabyService(client),
		Routines: NewDailyRoutineService(client),
		Feedings: NewFeedingService(client),
		Growth:   NewGrowthService(client),
		Sleep:    NewSleepService(client),
		Crying:   NewCryingService(client),
		Notes:    NewNoteService(client),
	}
}

// rangeQuery serializes an ISO-8601 date range the way the backend expects
func rangeQuery(start, end time.Time) url.Values {
	q := url.Values{}
	q.Set("startDate", start.Format(time.RFC3339))
	q.Set("endDate", end.Format(time.RFC3339))
	return q
}
