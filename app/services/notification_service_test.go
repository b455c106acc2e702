package services

import (
	"testing"

	"github.com/shramana263/neighbourlink/app/models"
	"github.com/shramana263/neighbourlink/app/repositories/mock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotifyStoresAndPushes(t *testing.T) {
	pusher := &recordingPusher{}
	svc := NewNotificationService(mock.NewNotificationRepository(), pusher)

	svc.Notify("user-1", models.NotificationResponseReceived, "New response", "Someone offered to help", "post-1")

	list, err := svc.List("user-1", 1, 10)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "post-1", list[0].PostID)
	assert.False(t, list[0].Read)

	require.Len(t, pusher.pushes, 1)
	assert.Equal(t, "user-1", pusher.pushes[0].userID)
}

func TestNotifyWithoutPusher(t *testing.T) {
	svc := NewNotificationService(mock.NewNotificationRepository(), nil)
	svc.Notify("user-1", models.NotificationResponseAccepted, "Accepted", "", "post-1")

	list, err := svc.List("user-1", 1, 10)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestMarkRead(t *testing.T) {
	svc := NewNotificationService(mock.NewNotificationRepository(), nil)
	svc.Notify("user-1", models.NotificationResponseReceived, "New response", "", "post-1")

	list, err := svc.List("user-1", 1, 10)
	require.NoError(t, err)
	require.Len(t, list, 1)

	marked, err := svc.MarkRead("user-1", list[0].ID)
	require.NoError(t, err)
	assert.True(t, marked.Read)

	_, err = svc.MarkRead("", list[0].ID)
	assert.ErrorIs(t, err, ErrUnauthenticated)
}
