// services/reminder_service.go - Reminders and the notifications they fire
package services

import (
	"fmt"
	"time"
	"tododuk/models"
	"tododuk/utils"

	"gorm.io/gorm"
)

type ReminderService struct {
	db      *gorm.DB
	members *TeamMemberService
}

func NewReminderService(db *gorm.DB) *ReminderService {
	return &ReminderService{db: db, members: NewTeamMemberService(db)}
}

// scopedTodoList resolves the list a todo belongs to, enforcing the same
// scope rule as todo reads: personal lists belong to their owner, team
// lists require membership.
func (s *ReminderService) scopedTodoList(userID, todoID uint) (*models.Todo, *models.TodoList, error) {
	var todo models.Todo
	if err := s.db.First(&todo, todoID).Error; err != nil {
		return nil, nil, utils.NotFound("TODO_NOT_FOUND", "todo not found")
	}

	var list models.TodoList
	if err := s.db.First(&list, todo.TodoListID).Error; err != nil {
		return nil, nil, utils.NotFound("TODO_NOT_FOUND", "todo list not found")
	}

	if list.TeamID == PersonalScope {
		if list.UserID != userID {
			return nil, nil, utils.Forbidden("not your todo")
		}
	} else if !s.members.IsMember(list.TeamID, userID) {
		return nil, nil, utils.Forbidden("not a member of this team")
	}

	return &todo, &list, nil
}

func (s *ReminderService) CreateReminder(userID, todoID uint, remindAt time.Time, method string) (*models.Reminder, error) {
	if remindAt.IsZero() {
		return nil, utils.BadRequest("remind_at is required")
	}

	todo, _, err := s.scopedTodoList(userID, todoID)
	if err != nil {
		return nil, err
	}

	reminder := &models.Reminder{
		TodoID:   todo.ID,
		RemindAt: remindAt,
		Method:   method,
	}
	if err := s.db.Create(reminder).Error; err != nil {
		return nil, utils.NewServiceError("500-1", "failed to create reminder")
	}
	return reminder, nil
}

func (s *ReminderService) GetReminders(userID, todoID uint) ([]models.Reminder, error) {
	if _, _, err := s.scopedTodoList(userID, todoID); err != nil {
		return nil, err
	}

	var reminders []models.Reminder
	err := s.db.Where("todo_id = ?", todoID).
		Order("remind_at ASC").
		Find(&reminders).Error
	if err != nil {
		return nil, utils.NewServiceError("500-1", "failed to load reminders")
	}
	return reminders, nil
}

func (s *ReminderService) DeleteReminder(id uint) error {
	var reminder models.Reminder
	if err := s.db.First(&reminder, id).Error; err != nil {
		return utils.NotFound("REMINDER_NOT_FOUND", "reminder not found")
	}
	if err := s.db.Delete(&reminder).Error; err != nil {
		return utils.NewServiceError("500-1", "failed to delete reminder")
	}
	return nil
}

// FireReminder fires a single reminder: it flips the fired flag and creates
// the derived notification in one transaction. The conditional update makes
// the flip race-safe, so each reminder produces exactly one notification
// even if two firing passes overlap.
func (s *ReminderService) FireReminder(reminderID uint) (*models.Notification, error) {
	var reminder models.Reminder
	if err := s.db.First(&reminder, reminderID).Error; err != nil {
		return nil, utils.NotFound("REMINDER_NOT_FOUND", "reminder not found")
	}

	var notification *models.Notification
	err := s.db.Transaction(func(tx *gorm.DB) error {
		claimed := tx.Model(&models.Reminder{}).
			Where("id = ? AND fired = ?", reminder.ID, false).
			Update("fired", true)
		if claimed.Error != nil {
			return claimed.Error
		}
		if claimed.RowsAffected == 0 {
			return utils.Conflict("reminder already fired")
		}

		var todo models.Todo
		if err := tx.First(&todo, reminder.TodoID).Error; err != nil {
			return utils.NotFound("TODO_NOT_FOUND", "todo for reminder not found")
		}
		var list models.TodoList
		if err := tx.First(&list, todo.TodoListID).Error; err != nil {
			return utils.NotFound("TODO_NOT_FOUND", "todo list for reminder not found")
		}

		notification = &models.Notification{
			UserID:      list.UserID,
			Title:       todo.Title,
			Description: "Reminder for: " + todo.Description,
			URL:         fmt.Sprintf("/api/v1/todos/%d", todo.ID),
		}
		return tx.Create(notification).Error
	})
	if err != nil {
		if svcErr, isSvc := err.(*utils.ServiceError); isSvc {
			return nil, svcErr
		}
		return nil, utils.NewServiceError("500-1", "failed to fire reminder")
	}

	return notification, nil
}

// FireDueReminders fires every unfired reminder due at or before now and
// returns how many notifications were created.
func (s *ReminderService) FireDueReminders(now time.Time) (int, error) {
	var due []models.Reminder
	err := s.db.Where("fired = ? AND remind_at <= ?", false, now).
		Find(&due).Error
	if err != nil {
		return 0, utils.NewServiceError("500-1", "failed to load due reminders")
	}

	fired := 0
	for _, reminder := range due {
		if _, err := s.FireReminder(reminder.ID); err == nil {
			fired++
		}
	}
	return fired, nil
}
