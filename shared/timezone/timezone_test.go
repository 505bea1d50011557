package timezone_test

import (
	"resort/shared/timezone"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNowAndLocation(t *testing.T) {
	assert.False(t, timezone.Now().IsZero())
	assert.NotNil(t, timezone.GetLocation())
	assert.Equal(t, timezone.GetLocation(), timezone.ToAppTime(time.Now().UTC()).Location())
}

func TestFormatAndParse(t *testing.T) {
	parsed, err := timezone.Parse(time.DateOnly, "2026-03-01")
	require.NoError(t, err)

	assert.Equal(t, "2026-03-01", timezone.Format(parsed, time.DateOnly))
}

func TestParseDate(t *testing.T) {
	date, err := timezone.ParseDate("2026-02-28")
	require.NoError(t, err)

	assert.Equal(t, time.UTC, date.Location())
	assert.Equal(t, "2026-03-01", date.AddDate(0, 0, 1).Format(time.DateOnly))

	_, err = timezone.ParseDate("28-02-2026")
	assert.Error(t, err)
}
