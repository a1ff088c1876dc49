package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCreateBookingRequest_Validate(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	req := CreateBookingRequest{
		UserID:       "user-1",
		GuideID:      "guide-1",
		Date:         now.Add(48 * time.Hour),
		Participants: 2,
	}
	assert.NoError(t, req.Validate(now))

	bad := req
	bad.Date = now.Add(-time.Hour)
	assert.Error(t, bad.Validate(now))

	bad = req
	bad.Participants = 0
	assert.Error(t, bad.Validate(now))

	bad = req
	bad.GuideID = ""
	assert.Error(t, bad.Validate(now))
}

func TestBookingStatus_Valid(t *testing.T) {
	assert.True(t, BookingStatusPending.Valid())
	assert.True(t, BookingStatusConfirmed.Valid())
	assert.True(t, BookingStatusCancelled.Valid())
	assert.False(t, BookingStatus("done").Valid())
}
