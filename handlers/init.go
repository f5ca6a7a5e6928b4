// handlers/init.go - Handler wiring
package handlers

import (
	"tododuk/services"

	"gorm.io/gorm"
)

var (
	userService         *services.UserService
	authTokenService    *services.AuthTokenService
	teamService         *services.TeamService
	teamMemberService   *services.TeamMemberService
	todoService         *services.TodoService
	labelService        *services.LabelService
	notificationService *services.NotificationService
	reminderService     *services.ReminderService
)

// InitHandlers wires every handler's service against the given connection.
func InitHandlers(db *gorm.DB) {
	userService = services.NewUserService(db)
	authTokenService = services.NewAuthTokenService()
	teamService = services.NewTeamService(db)
	teamMemberService = services.NewTeamMemberService(db)
	todoService = services.NewTodoService(db)
	labelService = services.NewLabelService(db)
	notificationService = services.NewNotificationService(db)
	reminderService = services.NewReminderService(db)
}
