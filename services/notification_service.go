// services/notification_service.go - Notification rows, consumed by polling
package services

import (
	"tododuk/models"
	"tododuk/utils"

	"gorm.io/gorm"
)

type NotificationService struct {
	db *gorm.DB
}

func NewNotificationService(db *gorm.DB) *NotificationService {
	return &NotificationService{db: db}
}

// CreateNotification persists an unread notification for the user. There is
// no delivery beyond the row itself; clients poll.
func (s *NotificationService) CreateNotification(userID uint, title, description, url string) (*models.Notification, error) {
	if title == "" {
		return nil, utils.BadRequest("notification title is required")
	}

	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		return nil, utils.NotFound("USER_NOT_FOUND", "user not found")
	}

	notification := &models.Notification{
		UserID:      userID,
		Title:       title,
		Description: description,
		URL:         url,
	}
	if err := s.db.Create(notification).Error; err != nil {
		return nil, utils.NewServiceError("500-1", "failed to create notification")
	}
	return notification, nil
}

func (s *NotificationService) GetNotifications(userID uint) ([]models.Notification, error) {
	var notifications []models.Notification
	err := s.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&notifications).Error
	if err != nil {
		return nil, utils.NewServiceError("500-1", "failed to load notifications")
	}
	return notifications, nil
}

func (s *NotificationService) GetNotification(id uint) (*models.Notification, error) {
	var notification models.Notification
	if err := s.db.First(&notification, id).Error; err != nil {
		return nil, utils.NotFound("NOTIFICATION_NOT_FOUND", "notification not found")
	}
	return &notification, nil
}

// UpdateStatus toggles the read flag.
func (s *NotificationService) UpdateStatus(id uint) (*models.Notification, error) {
	notification, err := s.GetNotification(id)
	if err != nil {
		return nil, err
	}

	notification.IsRead = !notification.IsRead
	if err := s.db.Model(notification).Update("is_read", notification.IsRead).Error; err != nil {
		return nil, utils.NewServiceError("500-1", "failed to update notification")
	}
	return notification, nil
}

func (s *NotificationService) DeleteNotification(id uint) error {
	notification, err := s.GetNotification(id)
	if err != nil {
		return err
	}
	if err := s.db.Delete(notification).Error; err != nil {
		return utils.NewServiceError("500-1", "failed to delete notification")
	}
	return nil
}
