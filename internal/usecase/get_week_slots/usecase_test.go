package get_week_slots

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-PublicBooker/internal/domain"
	"github.com/m04kA/SMC-PublicBooker/internal/integrations/publiccalendar"
	"github.com/m04kA/SMC-PublicBooker/pkg/logger"
)

type fakeClient struct {
	mu      sync.Mutex
	failing map[string]error
	calls   []string
}

func (f *fakeClient) GetDayWithGracefulDegradation(_ context.Context, _ string, date time.Time) ([]domain.TimeSlot, error) {
	key := date.Format(domain.DateFormat)

	f.mu.Lock()
	f.calls = append(f.calls, key)
	err := f.failing[key]
	f.mu.Unlock()

	if err != nil {
		return nil, err
	}
	return []domain.TimeSlot{{StartTime: "09:00", EndTime: "10:00", Status: domain.SlotAvailable}}, nil
}

var monday = time.Date(2024, time.June, 3, 0, 0, 0, 0, time.UTC)

func TestExecute_DefaultWeek(t *testing.T) {
	client := &fakeClient{}
	uc := NewUseCase(client, nil, logger.NewNop())

	resp, err := uc.Execute(context.Background(), &Request{Token: "abc", Start: monday})
	require.NoError(t, err)
	require.Len(t, resp.Days, 7)

	for i, day := range resp.Days {
		assert.Equal(t, monday.AddDate(0, 0, i), day.Date)
		assert.False(t, day.Degraded)
		assert.Len(t, day.Slots, 1)
	}
	assert.Len(t, client.calls, 7)
}

func TestExecute_IsolatesFailingDay(t *testing.T) {
	client := &fakeClient{failing: map[string]error{
		"2024-06-04": publiccalendar.ErrServiceDegraded,
	}}
	uc := NewUseCase(client, nil, logger.NewNop())

	resp, err := uc.Execute(context.Background(), &Request{Token: "abc", Start: monday, Days: 3})
	require.NoError(t, err)
	require.Len(t, resp.Days, 3)

	assert.False(t, resp.Days[0].Degraded)
	assert.True(t, resp.Days[1].Degraded)
	assert.Empty(t, resp.Days[1].Slots)
	assert.False(t, resp.Days[2].Degraded)
	assert.Len(t, resp.Days[2].Slots, 1)
	assert.Equal(t, 1, resp.DegradedDays())
}

func TestExecute_NotFoundIsTerminal(t *testing.T) {
	client := &fakeClient{failing: map[string]error{
		"2024-06-05": publiccalendar.ErrCalendarNotFound,
	}}
	uc := NewUseCase(client, nil, logger.NewNop())

	_, err := uc.Execute(context.Background(), &Request{Token: "abc", Start: monday, Days: 3})
	assert.ErrorIs(t, err, ErrCalendarNotFound)
	// Остальные дни все равно запрошены
	assert.Len(t, client.calls, 3)
}

func TestExecute_Validation(t *testing.T) {
	uc := NewUseCase(&fakeClient{}, nil, logger.NewNop())

	_, err := uc.Execute(context.Background(), &Request{Token: "abc", Start: monday, Days: MaxDays + 1})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{Token: "abc"})
	assert.True(t, errors.Is(err, ErrInvalidInput))
}
