// handlers/labels.go - Label catalog and todo-label association endpoints
package handlers

import (
	"tododuk/utils"

	"github.com/gofiber/fiber/v2"
)

type CreateLabelRequest struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

type SetTodoLabelsRequest struct {
	LabelIDs []uint `json:"labelIds"`
}

// CreateLabel adds a label to the global catalog.
// POST /api/v1/labels
func CreateLabel(c *fiber.Ctx) error {
	var req CreateLabelRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest("invalid request body")
	}

	label, err := labelService.CreateLabel(req.Name, req.Color)
	if err != nil {
		return err
	}
	return utils.Created(c, "label created", label)
}

// GetLabels lists the catalog.
// GET /api/v1/labels
func GetLabels(c *fiber.Ctx) error {
	labels, err := labelService.GetLabels()
	if err != nil {
		return err
	}
	return utils.OK(c, "labels loaded", labels)
}

// GetLabel returns one label.
// GET /api/v1/labels/:id
func GetLabel(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	label, err := labelService.GetLabel(id)
	if err != nil {
		return err
	}
	return utils.OK(c, "label loaded", label)
}

// DeleteLabel removes a label and its todo associations.
// DELETE /api/v1/labels/:id
func DeleteLabel(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	if err := labelService.DeleteLabel(id); err != nil {
		return err
	}
	return utils.OK(c, "label deleted", nil)
}

// SetTodoLabels replaces a todo's label set wholesale.
// PUT /api/v1/todos/:todoId/labels
func SetTodoLabels(c *fiber.Ctx) error {
	todoID, err := parseIDParam(c, "todoId")
	if err != nil {
		return err
	}

	var req SetTodoLabelsRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest("invalid request body")
	}

	if err := labelService.SetTodoLabels(todoID, req.LabelIDs); err != nil {
		return err
	}

	ids, err := labelService.GetTodoLabelIDs(todoID)
	if err != nil {
		return err
	}
	return utils.OK(c, "todo labels updated", fiber.Map{"labelIds": ids})
}

// GetTodoLabels returns the ids of a todo's labels.
// GET /api/v1/todos/:todoId/labels
func GetTodoLabels(c *fiber.Ctx) error {
	todoID, err := parseIDParam(c, "todoId")
	if err != nil {
		return err
	}

	ids, err := labelService.GetTodoLabelIDs(todoID)
	if err != nil {
		return err
	}
	return utils.OK(c, "todo labels loaded", fiber.Map{"labelIds": ids})
}
