// database/migrate.go - Database Migration Runner
package database

import (
	"log"
	"tododuk/models"

	"gorm.io/gorm"
)

// RunMigrations runs all database migrations against the given connection.
// Tests call this directly with an in-memory database.
func RunMigrations(db *gorm.DB) {
	log.Println("Running database migrations...")

	if err := db.AutoMigrate(
		&models.User{},
		&models.Team{},
		&models.TeamMember{},
		&models.TodoList{},
		&models.Todo{},
		&models.Label{},
		&models.TodoLabel{},
		&models.Notification{},
		&models.Reminder{},
	); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	createIndexes(db)

	log.Println("All migrations completed successfully")
}

// createIndexes creates secondary indexes; the uniqueness-bearing indexes
// (team member pair, todo list scope, todo label pair) come from the model
// tags in AutoMigrate.
func createIndexes(db *gorm.DB) {
	db.Exec("CREATE INDEX IF NOT EXISTS idx_team_members_role ON team_members(team_id, role)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_todos_list ON todos(todo_list_id)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_notifications_user ON notifications(user_id, is_read)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_reminders_due ON reminders(fired, remind_at)")
}
