// handlers/todos.go - Scoped todo endpoints (teamId 0 = personal)
package handlers

import (
	"time"
	"tododuk/middleware"
	"tododuk/utils"

	"github.com/gofiber/fiber/v2"
)

type TodoRequest struct {
	Title            string     `json:"title"`
	Description      string     `json:"description"`
	Priority         int        `json:"priority"`
	IsCompleted      bool       `json:"is_completed"`
	DueDate          *time.Time `json:"due_date"`
	AssignedMemberID *uint      `json:"assigned_member_id"`
}

// CreateTodo adds a todo to the actor's list in the given scope.
// POST /api/v1/teams/:teamId/todos
func CreateTodo(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return err
	}
	teamID, err := parseIDParam(c, "teamId")
	if err != nil {
		return err
	}

	var req TodoRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest("invalid request body")
	}

	todo, err := todoService.CreateTodo(userID, teamID, req.Title, req.Description, req.Priority, req.DueDate, req.AssignedMemberID)
	if err != nil {
		return err
	}
	return utils.Created(c, "todo created", todo)
}

// GetTodos lists the todos in the actor's scope.
// GET /api/v1/teams/:teamId/todos
func GetTodos(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return err
	}
	teamID, err := parseIDParam(c, "teamId")
	if err != nil {
		return err
	}

	todos, err := todoService.GetTodos(userID, teamID)
	if err != nil {
		return err
	}
	return utils.OK(c, "todos loaded", todos)
}

// GetTodo returns one todo from the actor's scope.
// GET /api/v1/teams/:teamId/todos/:todoId
func GetTodo(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return err
	}
	teamID, err := parseIDParam(c, "teamId")
	if err != nil {
		return err
	}
	todoID, err := parseIDParam(c, "todoId")
	if err != nil {
		return err
	}

	todo, err := todoService.GetTodo(userID, teamID, todoID)
	if err != nil {
		return err
	}
	return utils.OK(c, "todo loaded", todo)
}

// UpdateTodo replaces a todo's fields.
// PUT /api/v1/teams/:teamId/todos/:todoId
func UpdateTodo(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return err
	}
	teamID, err := parseIDParam(c, "teamId")
	if err != nil {
		return err
	}
	todoID, err := parseIDParam(c, "todoId")
	if err != nil {
		return err
	}

	var req TodoRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest("invalid request body")
	}

	todo, err := todoService.UpdateTodo(userID, teamID, todoID, req.Title, req.Description, req.Priority, req.IsCompleted, req.DueDate, req.AssignedMemberID)
	if err != nil {
		return err
	}
	return utils.OK(c, "todo updated", todo)
}

// DeleteTodo removes a todo.
// DELETE /api/v1/teams/:teamId/todos/:todoId
func DeleteTodo(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return err
	}
	teamID, err := parseIDParam(c, "teamId")
	if err != nil {
		return err
	}
	todoID, err := parseIDParam(c, "todoId")
	if err != nil {
		return err
	}

	if err := todoService.DeleteTodo(userID, teamID, todoID); err != nil {
		return err
	}
	return utils.OK(c, "todo deleted", nil)
}
