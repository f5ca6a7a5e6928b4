package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateNotificationStartsUnread(t *testing.T) {
	db := newTestDB(t)
	svc := NewNotificationService(db)
	user := createTestUser(t, db, "alice@example.com")

	notification, err := svc.CreateNotification(user.ID, "welcome", "hello there", "/api/v1/teams")
	require.NoError(t, err)
	assert.False(t, notification.IsRead)

	_, err = svc.CreateNotification(user.ID, "", "no title", "")
	assert.Equal(t, "400-1", resultCode(t, err))

	_, err = svc.CreateNotification(9999, "ghost", "", "")
	assert.Equal(t, "404-USER_NOT_FOUND", resultCode(t, err))
}

func TestGetNotificationsScopedToUser(t *testing.T) {
	db := newTestDB(t)
	svc := NewNotificationService(db)

	alice := createTestUser(t, db, "alice@example.com")
	bob := createTestUser(t, db, "bob@example.com")

	_, err := svc.CreateNotification(alice.ID, "for alice", "", "")
	require.NoError(t, err)
	_, err = svc.CreateNotification(bob.ID, "for bob", "", "")
	require.NoError(t, err)

	mine, err := svc.GetNotifications(alice.ID)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "for alice", mine[0].Title)
}

func TestUpdateStatusToggles(t *testing.T) {
	db := newTestDB(t)
	svc := NewNotificationService(db)
	user := createTestUser(t, db, "alice@example.com")

	notification, err := svc.CreateNotification(user.ID, "toggle me", "", "")
	require.NoError(t, err)

	read, err := svc.UpdateStatus(notification.ID)
	require.NoError(t, err)
	assert.True(t, read.IsRead)

	unread, err := svc.UpdateStatus(notification.ID)
	require.NoError(t, err)
	assert.False(t, unread.IsRead)

	_, err = svc.UpdateStatus(9999)
	assert.Equal(t, "404-NOTIFICATION_NOT_FOUND", resultCode(t, err))
}

func TestDeleteNotification(t *testing.T) {
	db := newTestDB(t)
	svc := NewNotificationService(db)
	user := createTestUser(t, db, "alice@example.com")

	notification, err := svc.CreateNotification(user.ID, "ephemeral", "", "")
	require.NoError(t, err)

	require.NoError(t, svc.DeleteNotification(notification.ID))

	_, err = svc.GetNotification(notification.ID)
	assert.Equal(t, "404-NOTIFICATION_NOT_FOUND", resultCode(t, err))

	err = svc.DeleteNotification(notification.ID)
	assert.Equal(t, "404-NOTIFICATION_NOT_FOUND", resultCode(t, err))
}
