// services/team_service.go - Team lifecycle
package services

import (
	"tododuk/models"
	"tododuk/utils"

	"gorm.io/gorm"
)

type TeamService struct {
	db      *gorm.DB
	members *TeamMemberService
}

func NewTeamService(db *gorm.DB) *TeamService {
	return &TeamService{db: db, members: NewTeamMemberService(db)}
}

// CreateTeam persists the team and the creator's leader membership in one
// transaction. A team without a leader is never observable.
func (s *TeamService) CreateTeam(name, description string, creatorID uint) (*models.Team, error) {
	if name == "" {
		return nil, utils.BadRequest("team name is required")
	}

	var creator models.User
	if err := s.db.First(&creator, creatorID).Error; err != nil {
		return nil, utils.NotFound("USER_NOT_FOUND", "creator not found")
	}

	team := &models.Team{
		Name:        name,
		Description: description,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(team).Error; err != nil {
			return err
		}
		return createLeaderMember(tx, team.ID, creatorID)
	})
	if err != nil {
		return nil, utils.NewServiceError("500-1", "failed to create team")
	}

	return team, nil
}

// GetAllTeams returns every team.
func (s *TeamService) GetAllTeams() ([]models.Team, error) {
	var teams []models.Team
	if err := s.db.Order("created_at DESC").Find(&teams).Error; err != nil {
		return nil, utils.NewServiceError("500-1", "failed to load teams")
	}
	return teams, nil
}

// GetMyTeams returns the teams the user belongs to.
func (s *TeamService) GetMyTeams(userID uint) ([]models.Team, error) {
	var teams []models.Team
	err := s.db.Joins("JOIN team_members ON team_members.team_id = teams.id").
		Where("team_members.user_id = ?", userID).
		Find(&teams).Error
	if err != nil {
		return nil, utils.NewServiceError("500-1", "failed to load teams")
	}
	return teams, nil
}

// GetTeamDetails returns the team with its roster. Members only.
func (s *TeamService) GetTeamDetails(teamID, viewerID uint) (*models.Team, error) {
	var team models.Team
	if err := s.db.Preload("Members").Preload("Members.User").
		First(&team, teamID).Error; err != nil {
		return nil, utils.NotFound("TEAM_NOT_FOUND", "team not found")
	}

	if !s.members.IsMember(teamID, viewerID) {
		return nil, utils.Forbidden("not a member of this team")
	}

	return &team, nil
}

// UpdateTeamInfo overwrites only non-empty fields. Leader only.
func (s *TeamService) UpdateTeamInfo(teamID uint, name, description string, modifierID uint) (*models.Team, error) {
	var team models.Team
	if err := s.db.First(&team, teamID).Error; err != nil {
		return nil, utils.NotFound("TEAM_NOT_FOUND", "team not found")
	}

	if !s.members.HasRole(teamID, modifierID, models.TeamRoleLeader) {
		return nil, utils.Forbidden("only a team leader can update the team")
	}

	updates := map[string]interface{}{}
	if name != "" {
		updates["name"] = name
		team.Name = name
	}
	if description != "" {
		updates["description"] = description
		team.Description = description
	}

	if len(updates) > 0 {
		if err := s.db.Model(&team).Updates(updates).Error; err != nil {
			return nil, utils.NewServiceError("500-1", "failed to update team")
		}
	}

	return &team, nil
}

// DeleteTeam removes the team and everything scoped to it: memberships,
// todo lists, todos, their label joins and reminders. Leader only.
// Deletion is permanent; deleting twice is a not-found the second time.
func (s *TeamService) DeleteTeam(teamID, deleterID uint) error {
	var team models.Team
	if err := s.db.First(&team, teamID).Error; err != nil {
		return utils.NotFound("TEAM_NOT_FOUND", "team not found")
	}

	if !s.members.HasRole(teamID, deleterID, models.TeamRoleLeader) {
		return utils.Forbidden("only a team leader can delete the team")
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		todoIDs := tx.Model(&models.Todo{}).Select("todos.id").
			Joins("JOIN todo_lists ON todo_lists.id = todos.todo_list_id").
			Where("todo_lists.team_id = ?", teamID)

		if err := tx.Where("todo_id IN (?)", todoIDs).Delete(&models.TodoLabel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("todo_id IN (?)", todoIDs).Delete(&models.Reminder{}).Error; err != nil {
			return err
		}

		listIDs := tx.Model(&models.TodoList{}).Select("id").Where("team_id = ?", teamID)
		if err := tx.Where("todo_list_id IN (?)", listIDs).Delete(&models.Todo{}).Error; err != nil {
			return err
		}
		if err := tx.Where("team_id = ?", teamID).Delete(&models.TodoList{}).Error; err != nil {
			return err
		}
		if err := tx.Where("team_id = ?", teamID).Delete(&models.TeamMember{}).Error; err != nil {
			return err
		}
		return tx.Delete(&team).Error
	})
	if err != nil {
		return utils.NewServiceError("500-1", "failed to delete team")
	}

	return nil
}
