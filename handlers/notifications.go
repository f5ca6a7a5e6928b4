// handlers/notifications.go - Notification endpoints (poll-based)
package handlers

import (
	"tododuk/middleware"
	"tododuk/utils"

	"github.com/gofiber/fiber/v2"
)

type CreateNotificationRequest struct {
	UserEmail   string `json:"userEmail"`
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
}

// CreateNotification creates a notification. The target defaults to the
// actor; an explicit userEmail addresses another account.
// POST /api/v1/notifications
func CreateNotification(c *fiber.Ctx) error {
	actorID, err := middleware.GetUserID(c)
	if err != nil {
		return err
	}

	var req CreateNotificationRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest("invalid request body")
	}

	targetID := actorID
	if req.UserEmail != "" {
		target, err := userService.FindByEmail(req.UserEmail)
		if err != nil {
			return err
		}
		targetID = target.ID
	}

	notification, err := notificationService.CreateNotification(targetID, req.Title, req.Description, req.URL)
	if err != nil {
		return err
	}
	return utils.Created(c, "notification created", notification)
}

// GetNotifications lists the actor's notifications.
// GET /api/v1/notifications
func GetNotifications(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return err
	}

	notifications, err := notificationService.GetNotifications(userID)
	if err != nil {
		return err
	}
	return utils.OK(c, "notifications loaded", notifications)
}

// GetNotification returns one notification.
// GET /api/v1/notifications/:id
func GetNotification(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	notification, err := notificationService.GetNotification(id)
	if err != nil {
		return err
	}
	return utils.OK(c, "notification loaded", notification)
}

// SetNotificationStatus toggles the read flag.
// POST /api/v1/notifications/setStatus/:id
func SetNotificationStatus(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	notification, err := notificationService.UpdateStatus(id)
	if err != nil {
		return err
	}
	return utils.OK(c, "notification status updated", notification)
}

// DeleteNotification removes a notification.
// DELETE /api/v1/notifications/:id
func DeleteNotification(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	if err := notificationService.DeleteNotification(id); err != nil {
		return err
	}
	return utils.OK(c, "notification deleted", nil)
}
