package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPriorityTag(t *testing.T) {
	assert.Equal(t, "{LOW}", PriorityLow.Tag())
	assert.Equal(t, "{MEDIUM}", PriorityMedium.Tag())
	assert.Equal(t, "{HIGH}", PriorityHigh.Tag())
	assert.Equal(t, "{URGENT}", PriorityUrgent.Tag())
}

func TestPriorityFromLine_RoundTrip(t *testing.T) {
	for _, p := range []Priority{PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent} {
		assert.Equal(t, p, PriorityFromLine("do the thing "+p.Tag()))
	}
}

func TestPriorityFromLine_NoTagIsMedium(t *testing.T) {
	assert.Equal(t, PriorityMedium, PriorityFromLine("no tag here"))
	assert.Equal(t, PriorityMedium, PriorityFromLine(""))
}

func TestPriorityFromLine_Precedence(t *testing.T) {
	// Urgent wins over any other tag on the same line.
	assert.Equal(t, PriorityUrgent, PriorityFromLine("{LOW} {URGENT}"))
	assert.Equal(t, PriorityHigh, PriorityFromLine("{MEDIUM} {HIGH} {LOW}"))
}

func TestPriorityFromLine_TagAnywhere(t *testing.T) {
	assert.Equal(t, PriorityHigh, PriorityFromLine("{HIGH} fix the build"))
	assert.Equal(t, PriorityLow, PriorityFromLine("water {LOW} plants"))
}

func TestStripTags(t *testing.T) {
	assert.Equal(t, "buy milk", StripTags("buy milk {MEDIUM}"))
	assert.Equal(t, "buy  milk", StripTags("buy {HIGH} milk {LOW}"))
	assert.Equal(t, "", StripTags(" {URGENT} "))
}

func TestParsePriority(t *testing.T) {
	p, err := ParsePriority("URGENT")
	require.NoError(t, err)
	assert.Equal(t, PriorityUrgent, p)

	_, err = ParsePriority("critical")
	assert.Error(t, err)
}

func TestStatusFilterMatches(t *testing.T) {
	assert.True(t, FilterAll.Matches(true))
	assert.True(t, FilterAll.Matches(false))
	assert.True(t, FilterCompleted.Matches(true))
	assert.False(t, FilterCompleted.Matches(false))
	assert.True(t, FilterPending.Matches(false))
	assert.False(t, FilterPending.Matches(true))
}

func TestParseStatusFilter(t *testing.T) {
	f, err := ParseStatusFilter("pending")
	require.NoError(t, err)
	assert.Equal(t, FilterPending, f)

	_, err = ParseStatusFilter("done")
	assert.Error(t, err)
}
