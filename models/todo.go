// models/todo.go
package models

import "time"

// TodoList backs the todos of one (user, team) scope. TeamID 0 is the
// user's personal list. The composite unique index makes lookup-or-create
// idempotent under concurrent first writes.
type TodoList struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"size:100"`
	Description string    `json:"description" gorm:"type:text"`
	UserID      uint      `json:"user_id" gorm:"not null;uniqueIndex:idx_todo_lists_scope"`
	TeamID      uint      `json:"team_id" gorm:"not null;default:0;uniqueIndex:idx_todo_lists_scope"`
	Todos       []Todo    `json:"todos,omitempty" gorm:"foreignKey:TodoListID"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (TodoList) TableName() string {
	return "todo_lists"
}

// Todo priorities.
const (
	PriorityLow    = 1
	PriorityMedium = 2
	PriorityHigh   = 3
)

type Todo struct {
	ID               uint       `json:"id" gorm:"primaryKey"`
	TodoListID       uint       `json:"todo_list_id" gorm:"not null;index"`
	Title            string     `json:"title" gorm:"not null;size:200"`
	Description      string     `json:"description" gorm:"type:text"`
	IsCompleted      bool       `json:"is_completed" gorm:"default:false"`
	Priority         int        `json:"priority" gorm:"default:2"`
	StartDate        time.Time  `json:"start_date"`
	DueDate          *time.Time `json:"due_date,omitempty"`
	AssignedMemberID *uint      `json:"assigned_member_id,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

func (Todo) TableName() string {
	return "todos"
}
