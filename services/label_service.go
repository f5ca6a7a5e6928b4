// services/label_service.go - Global label catalog and todo associations
package services

import (
	"tododuk/models"
	"tododuk/utils"

	"gorm.io/gorm"
)

type LabelService struct {
	db *gorm.DB
}

func NewLabelService(db *gorm.DB) *LabelService {
	return &LabelService{db: db}
}

func (s *LabelService) CreateLabel(name, color string) (*models.Label, error) {
	if name == "" {
		return nil, utils.BadRequest("label name is required")
	}

	label := &models.Label{Name: name, Color: color}
	if err := s.db.Create(label).Error; err != nil {
		return nil, utils.NewServiceError("500-1", "failed to create label")
	}
	return label, nil
}

func (s *LabelService) GetLabels() ([]models.Label, error) {
	var labels []models.Label
	if err := s.db.Order("name ASC").Find(&labels).Error; err != nil {
		return nil, utils.NewServiceError("500-1", "failed to load labels")
	}
	return labels, nil
}

func (s *LabelService) GetLabel(id uint) (*models.Label, error) {
	var label models.Label
	if err := s.db.First(&label, id).Error; err != nil {
		return nil, utils.NotFound("LABEL_NOT_FOUND", "label not found")
	}
	return &label, nil
}

// DeleteLabel removes the label and every todo association pointing at it.
func (s *LabelService) DeleteLabel(id uint) error {
	label, err := s.GetLabel(id)
	if err != nil {
		return err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("label_id = ?", label.ID).Delete(&models.TodoLabel{}).Error; err != nil {
			return err
		}
		return tx.Delete(label).Error
	})
	if err != nil {
		return utils.NewServiceError("500-1", "failed to delete label")
	}
	return nil
}

// SetTodoLabels replaces the todo's association set wholesale. Delete-all
// then insert-all runs in one transaction so readers never observe the
// empty window, and calling it twice with the same set is a no-op.
func (s *LabelService) SetTodoLabels(todoID uint, labelIDs []uint) error {
	var todo models.Todo
	if err := s.db.First(&todo, todoID).Error; err != nil {
		return utils.NotFound("TODO_NOT_FOUND", "todo not found")
	}

	if len(labelIDs) > 0 {
		var count int64
		s.db.Model(&models.Label{}).Where("id IN ?", labelIDs).Count(&count)
		if count != int64(len(uniqueIDs(labelIDs))) {
			return utils.NotFound("LABEL_NOT_FOUND", "one or more labels do not exist")
		}
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("todo_id = ?", todoID).Delete(&models.TodoLabel{}).Error; err != nil {
			return err
		}
		for _, labelID := range uniqueIDs(labelIDs) {
			if err := tx.Create(&models.TodoLabel{TodoID: todoID, LabelID: labelID}).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return utils.NewServiceError("500-1", "failed to set todo labels")
	}
	return nil
}

// GetTodoLabelIDs returns the ids of the labels associated with the todo.
func (s *LabelService) GetTodoLabelIDs(todoID uint) ([]uint, error) {
	var todo models.Todo
	if err := s.db.First(&todo, todoID).Error; err != nil {
		return nil, utils.NotFound("TODO_NOT_FOUND", "todo not found")
	}

	var ids []uint
	err := s.db.Model(&models.TodoLabel{}).
		Where("todo_id = ?", todoID).
		Order("label_id ASC").
		Pluck("label_id", &ids).Error
	if err != nil {
		return nil, utils.NewServiceError("500-1", "failed to load todo labels")
	}
	return ids, nil
}

func uniqueIDs(ids []uint) []uint {
	seen := make(map[uint]bool, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}
