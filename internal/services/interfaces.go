package services

import (
	"context"
	"time"

	"github.com/babanaplo/babanaplo/internal/models"
)

// AuthService defines login, registration and logout. Login and Register
// persist the returned bearer token as a side effect; Logout removes it and
// never fails.
type AuthService interface {
	Login(ctx context.Context, data *models.LoginData) (*models.AuthResponse, error)
	Register(ctx context.Context, data *models.RegisterData) (*models.AuthResponse, error)
	Logout()
}

// ProfileService defines operations on the authenticated user's profile
type ProfileService interface {
	GetProfile(ctx context.Context) (*models.UserProfile, error)
	UpdateProfile(ctx context.Context, data *models.UpdateProfileData) (*models.UserProfile, error)
	UploadProfileImage(ctx context.Context, localPath string) (string, error)
}

// BabyService defines the interface for baby CRUD operations
type BabyService interface {
	GetAll(ctx context.Context) ([]*models.Baby, error)
	GetByID(ctx context.Context, id int64) (*models.Baby, error)
	Create(ctx context.Context, data *models.CreateBabyData) (*models.Baby, error)
	Update(ctx context.Context, id int64, data *models.UpdateBabyData) (*models.Baby, error)
	Delete(ctx context.Context, id int64) error
}

// DailyRoutineService defines the interface for daily routine operations.
// Beyond the uniform resource operations it resolves default and
// date-specific routines; the server performs the fallback-to-default
// resolution, the client never merges defaults locally.
type DailyRoutineService interface {
	GetAllByBaby(ctx context.Context, babyID int64) ([]*models.DailyRoutine, error)
	GetByID(ctx context.Context, id int64) (*models.DailyRoutine, error)
	Create(ctx context.Context, data *models.RoutineData) (*models.DailyRoutine, error)
	Update(ctx context.Context, id int64, routine *models.DailyRoutine) (*models.DailyRoutine, error)
	Delete(ctx context.Context, id int64) error
	GetByDateRange(ctx context.Context, babyID int64, start, end time.Time) ([]*models.DailyRoutine, error)
	GetDefaultRoutine(ctx context.Context, babyID int64) (*models.DailyRoutine, error)
	SetDefaultRoutine(ctx context.Context, babyID int64, data *models.RoutineData) (*models.DailyRoutine, error)
	GetRoutineForDate(ctx context.Context, babyID int64, date time.Time) (*models.DailyRoutine, error)
}

// FeedingService defines the interface for feeding record operations
type FeedingService interface {
	GetAllByBaby(ctx context.Context, babyID int64) ([]*models.Feeding, error)
	GetByID(ctx context.Context, id int64) (*models.Feeding, error)
	Create(ctx context.Context, data *models.FeedingData) (*models.Feeding, error)
	Update(ctx context.Context, id int64, feeding *models.Feeding) (*models.Feeding, error)
	Delete(ctx context.Context, id int64) error
	GetByDateRange(ctx context.Context, babyID int64, start, end time.Time) ([]*models.Feeding, error)
}

// GrowthService defines the interface for growth record operations
type GrowthService interface {
	GetAllByBaby(ctx context.Context, babyID int64) ([]*models.Growth, error)
	GetByID(ctx context.Context, id int64) (*models.Growth, error)
	Create(ctx context.Context, data *models.GrowthData) (*models.Growth, error)
	Update(ctx context.Context, id int64, growth *models.Growth) (*models.Growth, error)
	Delete(ctx context.Context, id int64) error
	GetByDateRange(ctx context.Context, babyID int64, start, end time.Time) ([]*models.Growth, error)
}

// SleepService defines the interface for sleep period operations
type SleepService interface {
	GetAllByBaby(ctx context.Context, babyID int64) ([]*models.SleepPeriod, error)
	GetByID(ctx context.Context, id int64) (*models.SleepPeriod, error)
	Create(ctx context.Context, data *models.SleepData) (*models.SleepPeriod, error)
	Update(ctx context.Context, id int64, sleep *models.SleepPeriod) (*models.SleepPeriod, error)
	Delete(ctx context.Context, id int64) error
	GetByDateRange(ctx context.Context, babyID int64, start, end time.Time) ([]*models.SleepPeriod, error)
}

// CryingService defines the interface for crying period operations
type CryingService interface {
	GetAllByBaby(ctx context.Context, babyID int64) ([]*models.CryingPeriod, error)
	GetByID(ctx context.Context, id int64) (*models.CryingPeriod, error)
	Create(ctx context.Context, data *models.CryingData) (*models.CryingPeriod, error)
	Update(ctx context.Context, id int64, crying *models.CryingPeriod) (*models.CryingPeriod, error)
	Delete(ctx context.Context, id int64) error
	GetByDateRange(ctx context.Context, babyID int64, start, end time.Time) ([]*models.CryingPeriod, error)
}

// NoteService defines the interface for note operations
type NoteService interface {
	GetAllByBaby(ctx context.Context, babyID int64) ([]*models.Note, error)
	GetByID(ctx context.Context, id int64) (*models.Note, error)
	Create(ctx context.Context, data *models.NoteData) (*models.Note, error)
	Update(ctx context.Context, id int64, note *models.Note) (*models.Note, error)
	Delete(ctx context.Context, id int64) error
	GetByDateRange(ctx context.Context, babyID int64, start, end time.Time) ([]*models.Note, error)
}
