package store_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/babanaplo/babanaplo/internal/models"
	"github.com/babanaplo/babanaplo/internal/store"
)

// fakeRoutineService covers only the operations RoutineStore reaches for;
// the rest panic so an unexpected call fails loudly.
type fakeRoutineService struct {
	getForDate func(ctx context.Context, babyID int64, date time.Time) (*models.DailyRoutine, error)
	getDefault func(ctx context.Context, babyID int64) (*models.DailyRoutine, error)
	create     func(ctx context.Context, data *models.RoutineData) (*models.DailyRoutine, error)
	setDefault func(ctx context.Context, babyID int64, data *models.RoutineData) (*models.DailyRoutine, error)
}

func (f *fakeRoutineService) GetRoutineForDate(ctx context.Context, babyID int64, date time.Time) (*models.DailyRoutine, error) {
	return f.getForDate(ctx, babyID, date)
}

func (f *fakeRoutineService) GetDefaultRoutine(ctx context.Context, babyID int64) (*models.DailyRoutine, error) {
	return f.getDefault(ctx, babyID)
}

func (f *fakeRoutineService) Create(ctx context.Context, data *models.RoutineData) (*models.DailyRoutine, error) {
	return f.create(ctx, data)
}

func (f *fakeRoutineService) SetDefaultRoutine(ctx context.Context, babyID int64, data *models.RoutineData) (*models.DailyRoutine, error) {
	return f.setDefault(ctx, babyID, data)
}

func (f *fakeRoutineService) GetAllByBaby(ctx context.Context, babyID int64) ([]*models.DailyRoutine, error) {
	panic("unexpected GetAllByBaby")
}

func (f *fakeRoutineService) GetByID(ctx context.Context, id int64) (*models.DailyRoutine, error) {
	panic("unexpected GetByID")
}

func (f *fakeRoutineService) Update(ctx context.Context, id int64, routine *models.DailyRoutine) (*models.DailyRoutine, error) {
	panic("unexpected Update")
}

func (f *fakeRoutineService) Delete(ctx context.Context, id int64) error {
	panic("unexpected Delete")
}

func (f *fakeRoutineService) GetByDateRange(ctx context.Context, babyID int64, start, end time.Time) ([]*models.DailyRoutine, error) {
	panic("unexpected GetByDateRange")
}

// babyStoreWithSelection builds a baby store whose current selection is the
// given baby; nil leaves nothing selected.
func babyStoreWithSelection(selected *models.Baby) *store.BabyStore {
	s := store.NewBabyStore(&fakeBabyService{}, testLogger())
	s.SetCurrentBaby(selected)
	return s
}

func TestRoutineOpsNoopWithoutSelectedBaby(t *testing.T) {
	svc := &fakeRoutineService{
		getForDate: func(ctx context.Context, babyID int64, date time.Time) (*models.DailyRoutine, error) {
			panic("service must not be called without a selected baby")
		},
		getDefault: func(ctx context.Context, babyID int64) (*models.DailyRoutine, error) {
			panic("service must not be called without a selected baby")
		},
		create: func(ctx context.Context, data *models.RoutineData) (*models.DailyRoutine, error) {
			panic("service must not be called without a selected baby")
		},
		setDefault: func(ctx context.Context, babyID int64, data *models.RoutineData) (*models.DailyRoutine, error) {
			panic("service must not be called without a selected baby")
		},
	}
	s := store.NewRoutineStore(svc, babyStoreWithSelection(nil), testLogger())
	ctx := context.Background()

	assert.NoError(t, s.LoadDailyRoutine(ctx, time.Now()))
	assert.NoError(t, s.LoadDefaultRoutine(ctx))
	assert.NoError(t, s.SaveDailyRoutine(ctx, &models.RoutineData{}))
	assert.NoError(t, s.SaveDefaultRoutine(ctx, &models.RoutineData{}))
	assert.NoError(t, s.LoadAll(ctx, time.Now()))

	assert.Nil(t, s.DailyRoutine())
	assert.Nil(t, s.DefaultRoutine())
	assert.False(t, s.IsLoading())
	assert.Empty(t, s.Err())
}

func TestLoadDailyRoutineCachesResult(t *testing.T) {
	date := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)
	routine := &models.DailyRoutine{ID: 7, BabyID: 1, Date: date}
	svc := &fakeRoutineService{
		getForDate: func(ctx context.Context, babyID int64, d time.Time) (*models.DailyRoutine, error) {
			assert.Equal(t, int64(1), babyID)
			assert.True(t, d.Equal(date))
			return routine, nil
		},
	}
	s := store.NewRoutineStore(svc, babyStoreWithSelection(baby(1, "Anna")), testLogger())

	require.NoError(t, s.LoadDailyRoutine(context.Background(), date))
	assert.Same(t, routine, s.DailyRoutine())
	assert.Empty(t, s.Err())
}

func TestLoadDailyRoutineFailureSetsFixedMessage(t *testing.T) {
	svc := &fakeRoutineService{
		getForDate: func(ctx context.Context, babyID int64, d time.Time) (*models.DailyRoutine, error) {
			return nil, errors.New("boom")
		},
	}
	s := store.NewRoutineStore(svc, babyStoreWithSelection(baby(1, "Anna")), testLogger())

	require.Error(t, s.LoadDailyRoutine(context.Background(), time.Now()))
	assert.Equal(t, "Nem sikerült betölteni a napi rutint", s.Err())
	assert.Nil(t, s.DailyRoutine())
}

func TestSaveDefaultRoutineCachesTemplate(t *testing.T) {
	def := &models.DailyRoutine{ID: 9, BabyID: 1, IsDefault: true}
	svc := &fakeRoutineService{
		setDefault: func(ctx context.Context, babyID int64, data *models.RoutineData) (*models.DailyRoutine, error) {
			assert.Equal(t, int64(1), babyID)
			return def, nil
		},
	}
	s := store.NewRoutineStore(svc, babyStoreWithSelection(baby(1, "Anna")), testLogger())

	require.NoError(t, s.SaveDefaultRoutine(context.Background(), &models.RoutineData{IsDefault: true}))
	assert.Same(t, def, s.DefaultRoutine())
}

// TestLoadAllCollectsBothFailures: LoadAll keeps going after the first
// failure and reports every error it saw.
func TestLoadAllCollectsBothFailures(t *testing.T) {
	svc := &fakeRoutineService{
		getForDate: func(ctx context.Context, babyID int64, d time.Time) (*models.DailyRoutine, error) {
			return nil, errors.New("daily failed")
		},
		getDefault: func(ctx context.Context, babyID int64) (*models.DailyRoutine, error) {
			return nil, errors.New("default failed")
		},
	}
	s := store.NewRoutineStore(svc, babyStoreWithSelection(baby(1, "Anna")), testLogger())

	err := s.LoadAll(context.Background(), time.Now())
	require.Error(t, err)

	var merr *multierror.Error
	require.ErrorAs(t, err, &merr)
	assert.Len(t, merr.Errors, 2)
}

func TestLoadAllPartialFailureStillLoadsDefault(t *testing.T) {
	def := &models.DailyRoutine{ID: 3, BabyID: 1, IsDefault: true}
	svc := &fakeRoutineService{
		getForDate: func(ctx context.Context, babyID int64, d time.Time) (*models.DailyRoutine, error) {
			return nil, errors.New("daily failed")
		},
		getDefault: func(ctx context.Context, babyID int64) (*models.DailyRoutine, error) {
			return def, nil
		},
	}
	s := store.NewRoutineStore(svc, babyStoreWithSelection(baby(1, "Anna")), testLogger())

	require.Error(t, s.LoadAll(context.Background(), time.Now()))
	assert.Same(t, def, s.DefaultRoutine())
}
