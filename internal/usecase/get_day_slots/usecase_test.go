package get_day_slots

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-PublicBooker/internal/domain"
	"github.com/m04kA/SMC-PublicBooker/internal/integrations/publiccalendar"
	"github.com/m04kA/SMC-PublicBooker/pkg/logger"
)

type fakeClient struct {
	slots []domain.TimeSlot
	err   error
}

func (f *fakeClient) GetDayWithGracefulDegradation(_ context.Context, _ string, _ time.Time) ([]domain.TimeSlot, error) {
	return f.slots, f.err
}

var june3 = time.Date(2024, time.June, 3, 0, 0, 0, 0, time.UTC)

func TestExecute_Success(t *testing.T) {
	client := &fakeClient{slots: []domain.TimeSlot{
		{StartTime: "09:00", EndTime: "10:00", Status: domain.SlotAvailable},
	}}
	uc := NewUseCase(client, nil, logger.NewNop())

	resp, err := uc.Execute(context.Background(), &Request{Token: "abc", Date: june3})
	require.NoError(t, err)
	assert.False(t, resp.Day.Degraded)
	assert.Len(t, resp.Day.Slots, 1)
	assert.Equal(t, june3, resp.Day.Date)
}

func TestExecute_Degraded(t *testing.T) {
	err := fmt.Errorf("%w: date=2024-06-03", publiccalendar.ErrServiceDegraded)
	uc := NewUseCase(&fakeClient{err: err}, nil, logger.NewNop())

	resp, execErr := uc.Execute(context.Background(), &Request{Token: "abc", Date: june3})
	require.NoError(t, execErr)
	assert.True(t, resp.Day.Degraded)
	assert.NotNil(t, resp.Day.Slots)
	assert.Empty(t, resp.Day.Slots)
}

func TestExecute_NotFound(t *testing.T) {
	uc := NewUseCase(&fakeClient{err: publiccalendar.ErrCalendarNotFound}, nil, logger.NewNop())

	_, err := uc.Execute(context.Background(), &Request{Token: "abc", Date: june3})
	assert.ErrorIs(t, err, ErrCalendarNotFound)
}

func TestExecute_MissingDate(t *testing.T) {
	uc := NewUseCase(&fakeClient{}, nil, logger.NewNop())

	_, err := uc.Execute(context.Background(), &Request{Token: "abc"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
