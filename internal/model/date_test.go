package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateJSONRoundTrip(t *testing.T) {
	d := NewDate(2026, time.August, 1)

	raw, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2026-08-01"`, string(raw))

	var back Date
	require.NoError(t, json.Unmarshal(raw, &back))
	assert.Equal(t, d, back)
}

func TestDateUnmarshalToleratesRFC3339(t *testing.T) {
	var d Date
	require.NoError(t, json.Unmarshal([]byte(`"2026-08-01T15:04:05Z"`), &d))
	assert.Equal(t, NewDate(2026, time.August, 1), d)
}

func TestDateOfTruncatesTime(t *testing.T) {
	d := DateOf(time.Date(2026, time.August, 1, 23, 59, 59, 0, time.UTC))
	assert.Equal(t, NewDate(2026, time.August, 1), d)
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2026-08-01")
	require.NoError(t, err)
	assert.Equal(t, NewDate(2026, time.August, 1), d)

	_, err = ParseDate("not a date")
	assert.Error(t, err)
}
