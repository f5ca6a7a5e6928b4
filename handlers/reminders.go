// handlers/reminders.go - Reminder endpoints
package handlers

import (
	"time"
	"tododuk/middleware"
	"tododuk/utils"

	"github.com/gofiber/fiber/v2"
)

type CreateReminderRequest struct {
	RemindAt time.Time `json:"remind_at"`
	Method   string    `json:"method"`
}

// CreateReminder schedules a reminder for a todo in the actor's scope.
// POST /api/v1/todos/:todoId/reminders
func CreateReminder(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return err
	}
	todoID, err := parseIDParam(c, "todoId")
	if err != nil {
		return err
	}

	var req CreateReminderRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest("invalid request body")
	}

	reminder, err := reminderService.CreateReminder(userID, todoID, req.RemindAt, req.Method)
	if err != nil {
		return err
	}
	return utils.Created(c, "reminder created", reminder)
}

// GetReminders lists a todo's reminders.
// GET /api/v1/todos/:todoId/reminders
func GetReminders(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return err
	}
	todoID, err := parseIDParam(c, "todoId")
	if err != nil {
		return err
	}

	reminders, err := reminderService.GetReminders(userID, todoID)
	if err != nil {
		return err
	}
	return utils.OK(c, "reminders loaded", reminders)
}

// DeleteReminder removes a reminder.
// DELETE /api/v1/reminders/:id
func DeleteReminder(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	if err := reminderService.DeleteReminder(id); err != nil {
		return err
	}
	return utils.OK(c, "reminder deleted", nil)
}
