package types

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    TimeString
		wantErr bool
	}{
		{name: "plain", input: "09:00", want: "09:00"},
		{name: "with seconds", input: "18:15:00", want: "18:15"},
		{name: "end of day", input: "24:00", want: "24:00"},
		{name: "padded whitespace", input: " 10:30 ", want: "10:30"},
		{name: "single digit hour", input: "9:00", wantErr: true},
		{name: "hour overflow", input: "25:00", wantErr: true},
		{name: "minute overflow", input: "10:60", wantErr: true},
		{name: "past end of day", input: "24:01", wantErr: true},
		{name: "garbage", input: "ab:cd", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidTimeString)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimeString_Arithmetic(t *testing.T) {
	start := TimeString("09:30")

	end, err := start.AddMinutes(45)
	require.NoError(t, err)
	assert.Equal(t, TimeString("10:15"), end)

	assert.True(t, start.IsBefore(end))
	assert.True(t, end.IsAfter(start))
	assert.False(t, start.IsBefore(start))

	_, err = TimeString("23:30").AddMinutes(60)
	assert.ErrorIs(t, err, ErrInvalidTimeString)

	midnight, err := TimeString("23:00").AddMinutes(60)
	require.NoError(t, err)
	assert.Equal(t, TimeString("24:00"), midnight)
}

func TestTimeString_Format12h(t *testing.T) {
	assert.Equal(t, "9:00am", TimeString("09:00").Format12h())
	assert.Equal(t, "12:00am", TimeString("00:00").Format12h())
	assert.Equal(t, "12:30pm", TimeString("12:30").Format12h())
	assert.Equal(t, "11:05pm", TimeString("23:05").Format12h())
}

func TestTimeString_HelperConstructors(t *testing.T) {
	assert.Equal(t, TimeString("07:00"), HourStart(7))
	assert.Equal(t, TimeString("14:20"), NewTimeString(time.Date(2024, 6, 3, 14, 20, 59, 0, time.UTC)))
	assert.Equal(t, 14, TimeString("14:20").Hour())
	assert.Equal(t, -1, TimeString("bad").Minutes())
}

func TestTimeString_UnmarshalJSON(t *testing.T) {
	var payload struct {
		Start TimeString `json:"start_time"`
		End   TimeString `json:"end_time"`
	}

	require.NoError(t, json.Unmarshal([]byte(`{"start_time":"09:00:00","end_time":null}`), &payload))
	assert.Equal(t, TimeString("09:00"), payload.Start)
	assert.True(t, payload.End.IsZero())

	err := json.Unmarshal([]byte(`{"start_time":"9am"}`), &payload)
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}
