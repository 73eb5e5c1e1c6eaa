package get_month

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-PublicBooker/internal/domain"
	"github.com/m04kA/SMC-PublicBooker/internal/integrations/publiccalendar"
	"github.com/m04kA/SMC-PublicBooker/pkg/logger"
)

type fakeClient struct {
	month *domain.MonthAvailability
	err   error
}

func (f *fakeClient) GetMonth(_ context.Context, _ string, _ int, _ time.Month) (*domain.MonthAvailability, error) {
	return f.month, f.err
}

type fakeMetrics struct {
	degraded map[string]int
}

func (m *fakeMetrics) IncDegradedFetch(kind string) {
	if m.degraded == nil {
		m.degraded = map[string]int{}
	}
	m.degraded[kind]++
}

func TestExecute_Normalizes(t *testing.T) {
	client := &fakeClient{month: &domain.MonthAvailability{
		Year:  2024,
		Month: time.June,
		Days: []domain.DayAvailability{
			{Date: time.Date(2024, time.June, 3, 0, 0, 0, 0, time.UTC), Status: domain.DayAvailable},
		},
	}}
	uc := NewUseCase(client, &fakeMetrics{}, logger.NewNop())

	resp, err := uc.Execute(context.Background(), &Request{Token: "abc", Year: 2024, Month: 6})
	require.NoError(t, err)
	assert.False(t, resp.Degraded)
	require.Len(t, resp.Month.Days, 30)
	assert.Equal(t, domain.DayAvailable, resp.Month.Days[2].Status)
}

func TestExecute_DegradesToBlockedMonth(t *testing.T) {
	metrics := &fakeMetrics{}
	uc := NewUseCase(&fakeClient{err: errors.New("timeout")}, metrics, logger.NewNop())

	resp, err := uc.Execute(context.Background(), &Request{Token: "abc", Year: 2024, Month: 2})
	require.NoError(t, err)
	assert.True(t, resp.Degraded)
	require.Len(t, resp.Month.Days, 29)
	for _, day := range resp.Month.Days {
		assert.False(t, day.Status.IsSelectable())
	}
	assert.Equal(t, 1, metrics.degraded["month"])
}

func TestExecute_NotFoundIsTerminal(t *testing.T) {
	uc := NewUseCase(&fakeClient{err: publiccalendar.ErrCalendarNotFound}, nil, logger.NewNop())

	_, err := uc.Execute(context.Background(), &Request{Token: "abc", Year: 2024, Month: 6})
	assert.ErrorIs(t, err, ErrCalendarNotFound)
}

func TestExecute_InvalidMonth(t *testing.T) {
	uc := NewUseCase(&fakeClient{}, nil, logger.NewNop())

	for _, month := range []int{0, 13} {
		_, err := uc.Execute(context.Background(), &Request{Token: "abc", Year: 2024, Month: month})
		assert.ErrorIs(t, err, ErrInvalidInput)
	}
}
