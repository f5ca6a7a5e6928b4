// services/todo_service.go - Scoped todo and list management
package services

import (
	"time"
	"tododuk/models"
	"tododuk/utils"

	"gorm.io/gorm"
)

// PersonalScope is the sentinel team id for a user's private list.
const PersonalScope uint = 0

type TodoService struct {
	db      *gorm.DB
	members *TeamMemberService
}

func NewTodoService(db *gorm.DB) *TodoService {
	return &TodoService{db: db, members: NewTeamMemberService(db)}
}

// checkScope gates every read and write: team scope requires membership,
// personal scope is always the caller's own.
func (s *TodoService) checkScope(userID, teamID uint) error {
	if teamID == PersonalScope {
		return nil
	}
	var team models.Team
	if err := s.db.First(&team, teamID).Error; err != nil {
		return utils.NotFound("TEAM_NOT_FOUND", "team not found")
	}
	if !s.members.IsMember(teamID, userID) {
		return utils.Forbidden("not a member of this team")
	}
	return nil
}

// getOrCreateList resolves the backing list for a (user, team) pair,
// creating it on first use. FirstOrCreate rides on the unique
// (user_id, team_id) index, so concurrent first writes converge on one row.
func getOrCreateList(tx *gorm.DB, userID, teamID uint) (*models.TodoList, error) {
	name := "My Todos"
	if teamID != PersonalScope {
		name = "Team Todos"
	}

	var list models.TodoList
	err := tx.Where(models.TodoList{UserID: userID, TeamID: teamID}).
		Attrs(models.TodoList{Name: name}).
		FirstOrCreate(&list).Error
	if err != nil {
		return nil, utils.NewServiceError("500-1", "failed to resolve todo list")
	}
	return &list, nil
}

func validatePriority(priority int) error {
	if priority < models.PriorityLow || priority > models.PriorityHigh {
		return utils.NewServiceError("400-2", "priority must be 1 (low), 2 (medium) or 3 (high)")
	}
	return nil
}

// CreateTodo adds a todo to the caller's list in the given scope.
func (s *TodoService) CreateTodo(userID, teamID uint, title, description string, priority int, dueDate *time.Time, assignedMemberID *uint) (*models.Todo, error) {
	if title == "" {
		return nil, utils.BadRequest("todo title is required")
	}
	if priority == 0 {
		priority = models.PriorityMedium
	}
	if err := validatePriority(priority); err != nil {
		return nil, err
	}
	if err := s.checkScope(userID, teamID); err != nil {
		return nil, err
	}

	var todo *models.Todo
	err := s.db.Transaction(func(tx *gorm.DB) error {
		list, err := getOrCreateList(tx, userID, teamID)
		if err != nil {
			return err
		}

		todo = &models.Todo{
			TodoListID:       list.ID,
			Title:            title,
			Description:      description,
			Priority:         priority,
			StartDate:        time.Now(),
			DueDate:          dueDate,
			AssignedMemberID: assignedMemberID,
		}
		return tx.Create(todo).Error
	})
	if err != nil {
		if svcErr, isSvc := err.(*utils.ServiceError); isSvc {
			return nil, svcErr
		}
		return nil, utils.NewServiceError("500-1", "failed to create todo")
	}

	return todo, nil
}

// GetTodos lists the todos in the caller's scope. A scope whose list was
// never created yields an empty slice, not an error.
func (s *TodoService) GetTodos(userID, teamID uint) ([]models.Todo, error) {
	if err := s.checkScope(userID, teamID); err != nil {
		return nil, err
	}

	var list models.TodoList
	if err := s.db.Where("user_id = ? AND team_id = ?", userID, teamID).
		First(&list).Error; err != nil {
		return []models.Todo{}, nil
	}

	var todos []models.Todo
	if err := s.db.Where("todo_list_id = ?", list.ID).
		Order("created_at ASC").
		Find(&todos).Error; err != nil {
		return nil, utils.NewServiceError("500-1", "failed to load todos")
	}
	return todos, nil
}

// findScopedTodo loads a todo only if it lives in the caller's list for
// the given scope; anything else is a not-found, never partial data.
func (s *TodoService) findScopedTodo(userID, teamID, todoID uint) (*models.Todo, error) {
	var todo models.Todo
	err := s.db.Joins("JOIN todo_lists ON todo_lists.id = todos.todo_list_id").
		Where("todos.id = ? AND todo_lists.user_id = ? AND todo_lists.team_id = ?", todoID, userID, teamID).
		First(&todo).Error
	if err != nil {
		return nil, utils.NotFound("TODO_NOT_FOUND", "todo not found")
	}
	return &todo, nil
}

func (s *TodoService) GetTodo(userID, teamID, todoID uint) (*models.Todo, error) {
	if err := s.checkScope(userID, teamID); err != nil {
		return nil, err
	}
	return s.findScopedTodo(userID, teamID, todoID)
}

// UpdateTodo replaces the todo's mutable fields.
func (s *TodoService) UpdateTodo(userID, teamID, todoID uint, title, description string, priority int, isCompleted bool, dueDate *time.Time, assignedMemberID *uint) (*models.Todo, error) {
	if title == "" {
		return nil, utils.BadRequest("todo title is required")
	}
	if priority == 0 {
		priority = models.PriorityMedium
	}
	if err := validatePriority(priority); err != nil {
		return nil, err
	}
	if err := s.checkScope(userID, teamID); err != nil {
		return nil, err
	}

	todo, err := s.findScopedTodo(userID, teamID, todoID)
	if err != nil {
		return nil, err
	}

	todo.Title = title
	todo.Description = description
	todo.Priority = priority
	todo.IsCompleted = isCompleted
	todo.DueDate = dueDate
	todo.AssignedMemberID = assignedMemberID

	if err := s.db.Model(todo).Select("title", "description", "priority", "is_completed", "due_date", "assigned_member_id").
		Updates(todo).Error; err != nil {
		return nil, utils.NewServiceError("500-1", "failed to update todo")
	}
	return todo, nil
}

// DeleteTodo removes the todo together with its label joins and reminders.
func (s *TodoService) DeleteTodo(userID, teamID, todoID uint) error {
	if err := s.checkScope(userID, teamID); err != nil {
		return err
	}

	todo, err := s.findScopedTodo(userID, teamID, todoID)
	if err != nil {
		return err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("todo_id = ?", todo.ID).Delete(&models.TodoLabel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("todo_id = ?", todo.ID).Delete(&models.Reminder{}).Error; err != nil {
			return err
		}
		return tx.Delete(todo).Error
	})
	if err != nil {
		return utils.NewServiceError("500-1", "failed to delete todo")
	}
	return nil
}
