package kafka

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeNotification(t *testing.T) {
	event := NotificationEvent{
		EventID:    "e1",
		Type:       EventTurfApproved,
		UserID:     "ownerA",
		Title:      "Turf approved",
		Body:       "Your turf \"Green Arena\" is now live and open for bookings.",
		Data:       map[string]string{"turf_id": "t1"},
		OccurredAt: time.Now().UTC().Truncate(time.Second),
	}
	payload, err := json.Marshal(event)
	require.NoError(t, err)

	decoded, err := decodeNotification(payload)

	require.NoError(t, err)
	assert.Equal(t, event, decoded)
}

func TestDecodeNotification_BadPayload(t *testing.T) {
	_, err := decodeNotification([]byte("not json"))
	assert.Error(t, err)
}
