package services

import (
	"fmt"
	"testing"
	"time"
	"tododuk/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateReminder(t *testing.T) {
	db := newTestDB(t)
	reminders := NewReminderService(db)
	todos := NewTodoService(db)

	user := createTestUser(t, db, "alice@example.com")
	todo, err := todos.CreateTodo(user.ID, PersonalScope, "call dentist", "", 0, nil, nil)
	require.NoError(t, err)

	reminder, err := reminders.CreateReminder(user.ID, todo.ID, time.Now().Add(time.Hour), "email")
	require.NoError(t, err)
	assert.False(t, reminder.Fired)

	_, err = reminders.CreateReminder(user.ID, todo.ID, time.Time{}, "email")
	assert.Equal(t, "400-1", resultCode(t, err))

	_, err = reminders.CreateReminder(user.ID, 9999, time.Now(), "email")
	assert.Equal(t, "404-TODO_NOT_FOUND", resultCode(t, err))
}

func TestCreateReminderScopeEnforcement(t *testing.T) {
	db := newTestDB(t)
	reminders := NewReminderService(db)
	todos := NewTodoService(db)

	alice := createTestUser(t, db, "alice@example.com")
	bob := createTestUser(t, db, "bob@example.com")

	todo, err := todos.CreateTodo(alice.ID, PersonalScope, "private", "", 0, nil, nil)
	require.NoError(t, err)

	_, err = reminders.CreateReminder(bob.ID, todo.ID, time.Now().Add(time.Hour), "email")
	assert.Equal(t, "403-NO_PERMISSION", resultCode(t, err))

	_, err = reminders.GetReminders(bob.ID, todo.ID)
	assert.Equal(t, "403-NO_PERMISSION", resultCode(t, err))
}

func TestFireReminderCreatesOneNotification(t *testing.T) {
	db := newTestDB(t)
	reminders := NewReminderService(db)
	todos := NewTodoService(db)
	notifications := NewNotificationService(db)

	user := createTestUser(t, db, "alice@example.com")
	todo, err := todos.CreateTodo(user.ID, PersonalScope, "water plants", "the ficus too", 0, nil, nil)
	require.NoError(t, err)

	reminder, err := reminders.CreateReminder(user.ID, todo.ID, time.Now().Add(-time.Minute), "email")
	require.NoError(t, err)

	notification, err := reminders.FireReminder(reminder.ID)
	require.NoError(t, err)
	assert.Equal(t, user.ID, notification.UserID)
	assert.Equal(t, "water plants", notification.Title)
	assert.Equal(t, "Reminder for: the ficus too", notification.Description)
	assert.Equal(t, fmt.Sprintf("/api/v1/todos/%d", todo.ID), notification.URL)

	// A second fire on the same reminder is rejected and adds nothing.
	_, err = reminders.FireReminder(reminder.ID)
	assert.Equal(t, "409-1", resultCode(t, err))

	inbox, err := notifications.GetNotifications(user.ID)
	require.NoError(t, err)
	assert.Len(t, inbox, 1)
}

func TestFireDueReminders(t *testing.T) {
	db := newTestDB(t)
	reminders := NewReminderService(db)
	todos := NewTodoService(db)
	notifications := NewNotificationService(db)

	user := createTestUser(t, db, "alice@example.com")
	todo, err := todos.CreateTodo(user.ID, PersonalScope, "renew passport", "", 0, nil, nil)
	require.NoError(t, err)

	now := time.Now()
	_, err = reminders.CreateReminder(user.ID, todo.ID, now.Add(-time.Hour), "email")
	require.NoError(t, err)
	_, err = reminders.CreateReminder(user.ID, todo.ID, now.Add(-time.Minute), "push")
	require.NoError(t, err)
	_, err = reminders.CreateReminder(user.ID, todo.ID, now.Add(time.Hour), "email")
	require.NoError(t, err)

	fired, err := reminders.FireDueReminders(now)
	require.NoError(t, err)
	assert.Equal(t, 2, fired)

	// A second pass fires nothing: the due ones are claimed, the last one
	// is still in the future.
	fired, err = reminders.FireDueReminders(now)
	require.NoError(t, err)
	assert.Equal(t, 0, fired)

	inbox, err := notifications.GetNotifications(user.ID)
	require.NoError(t, err)
	assert.Len(t, inbox, 2)

	var unfired int64
	db.Model(&models.Reminder{}).Where("fired = ?", false).Count(&unfired)
	assert.EqualValues(t, 1, unfired)
}

func TestDeleteReminder(t *testing.T) {
	db := newTestDB(t)
	reminders := NewReminderService(db)
	todos := NewTodoService(db)

	user := createTestUser(t, db, "alice@example.com")
	todo, err := todos.CreateTodo(user.ID, PersonalScope, "one-off", "", 0, nil, nil)
	require.NoError(t, err)

	reminder, err := reminders.CreateReminder(user.ID, todo.ID, time.Now().Add(time.Hour), "email")
	require.NoError(t, err)

	require.NoError(t, reminders.DeleteReminder(reminder.ID))

	err = reminders.DeleteReminder(reminder.ID)
	assert.Equal(t, "404-REMINDER_NOT_FOUND", resultCode(t, err))
}
