// services/team_member_service.go - Membership store and role-based authorization
package services

import (
	"errors"
	"time"
	"tododuk/models"
	"tododuk/utils"

	"gorm.io/gorm"
)

// TeamMemberService is the sole writer of the team-user edge. Authorization
// is role-based per team: the same user may be leader in one team and a
// plain member, or absent, in another.
type TeamMemberService struct {
	db *gorm.DB
}

func NewTeamMemberService(db *gorm.DB) *TeamMemberService {
	return &TeamMemberService{db: db}
}

// IsMember reports whether the user belongs to the team in any role.
func (s *TeamMemberService) IsMember(teamID, userID uint) bool {
	var count int64
	s.db.Model(&models.TeamMember{}).
		Where("team_id = ? AND user_id = ?", teamID, userID).
		Count(&count)
	return count > 0
}

// HasRole reports whether the user holds exactly the given role in the team.
func (s *TeamMemberService) HasRole(teamID, userID uint, role models.TeamRole) bool {
	var count int64
	s.db.Model(&models.TeamMember{}).
		Where("team_id = ? AND user_id = ? AND role = ?", teamID, userID, role).
		Count(&count)
	return count > 0
}

// CountByRole counts team members holding the given role.
func (s *TeamMemberService) CountByRole(teamID uint, role models.TeamRole) int64 {
	var count int64
	s.db.Model(&models.TeamMember{}).
		Where("team_id = ? AND role = ?", teamID, role).
		Count(&count)
	return count
}

// createLeaderMember inserts the creator's leader membership inside the
// team-creation transaction.
func createLeaderMember(tx *gorm.DB, teamID, userID uint) error {
	member := &models.TeamMember{
		TeamID:   teamID,
		UserID:   userID,
		Role:     models.TeamRoleLeader,
		JoinedAt: time.Now(),
	}
	return tx.Create(member).Error
}

// GetTeamMembers returns the roster. Any member may read it.
func (s *TeamMemberService) GetTeamMembers(teamID, requesterID uint) ([]models.TeamMember, error) {
	if !s.IsMember(teamID, requesterID) {
		return nil, utils.Forbidden("not a member of this team")
	}

	var members []models.TeamMember
	err := s.db.Where("team_id = ?", teamID).
		Preload("User").
		Order("joined_at ASC").
		Find(&members).Error
	if err != nil {
		return nil, utils.NewServiceError("500-1", "failed to load team members")
	}
	return members, nil
}

// AddTeamMember adds a user to the team. Leader only; a pair that already
// exists is a conflict for any role value. The unique index on
// (team_id, user_id) serializes concurrent adds; the lookup here is only
// an early exit.
func (s *TeamMemberService) AddTeamMember(teamID, userID uint, role models.TeamRole, inviterID uint) (*models.TeamMember, error) {
	if !role.Valid() {
		return nil, utils.BadRequest("unknown role: " + string(role))
	}

	var team models.Team
	if err := s.db.First(&team, teamID).Error; err != nil {
		return nil, utils.NotFound("TEAM_NOT_FOUND", "team not found")
	}

	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		return nil, utils.NotFound("USER_NOT_FOUND", "user to add not found")
	}

	if !s.HasRole(teamID, inviterID, models.TeamRoleLeader) {
		return nil, utils.Forbidden("only a team leader can add members")
	}

	if s.IsMember(teamID, userID) {
		return nil, utils.Conflict("user is already a member of this team")
	}

	member := &models.TeamMember{
		TeamID:   teamID,
		UserID:   userID,
		Role:     role,
		JoinedAt: time.Now(),
	}
	if err := s.db.Create(member).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, utils.Conflict("user is already a member of this team")
		}
		return nil, utils.NewServiceError("500-1", "failed to add team member")
	}

	return member, nil
}

// UpdateTeamMemberRole changes a member's role. Leader only. Demoting the
// sole leader would leave the team leaderless, so the leader count is
// re-checked inside the same transaction as the update.
func (s *TeamMemberService) UpdateTeamMemberRole(teamID, userID uint, newRole models.TeamRole, requesterID uint) (*models.TeamMember, error) {
	if !newRole.Valid() {
		return nil, utils.BadRequest("unknown role: " + string(newRole))
	}

	var team models.Team
	if err := s.db.First(&team, teamID).Error; err != nil {
		return nil, utils.NotFound("TEAM_NOT_FOUND", "team not found")
	}

	if !s.HasRole(teamID, requesterID, models.TeamRoleLeader) {
		return nil, utils.Forbidden("only a team leader can change member roles")
	}

	var member models.TeamMember
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("team_id = ? AND user_id = ?", teamID, userID).
			First(&member).Error; err != nil {
			return utils.NotFound("MEMBER_NOT_FOUND", "member not found in this team")
		}

		if member.Role == models.TeamRoleLeader && newRole != models.TeamRoleLeader {
			var leaders int64
			tx.Model(&models.TeamMember{}).
				Where("team_id = ? AND role = ?", teamID, models.TeamRoleLeader).
				Count(&leaders)
			if leaders <= 1 {
				return utils.NewServiceError("422-LAST_LEADER", "cannot demote the team's last leader")
			}
		}

		member.Role = newRole
		return tx.Model(&member).Update("role", newRole).Error
	})
	if err != nil {
		var svcErr *utils.ServiceError
		if errors.As(err, &svcErr) {
			return nil, svcErr
		}
		return nil, utils.NewServiceError("500-1", "failed to update member role")
	}

	return &member, nil
}

// RemoveTeamMember removes a member. Leader only. Removing the sole
// remaining leader is a business-rule violation, not a permission error;
// the count and the delete share one transaction so two concurrent
// removals cannot both slip past the guard.
func (s *TeamMemberService) RemoveTeamMember(teamID, targetUserID, removerID uint) error {
	var team models.Team
	if err := s.db.First(&team, teamID).Error; err != nil {
		return utils.NotFound("TEAM_NOT_FOUND", "team not found")
	}

	if !s.HasRole(teamID, removerID, models.TeamRoleLeader) {
		return utils.Forbidden("only a team leader can remove members")
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var member models.TeamMember
		if err := tx.Where("team_id = ? AND user_id = ?", teamID, targetUserID).
			First(&member).Error; err != nil {
			return utils.NotFound("MEMBER_NOT_FOUND", "member not found in this team")
		}

		if member.Role == models.TeamRoleLeader {
			var leaders int64
			tx.Model(&models.TeamMember{}).
				Where("team_id = ? AND role = ?", teamID, models.TeamRoleLeader).
				Count(&leaders)
			if leaders <= 1 {
				return utils.NewServiceError("422-LAST_LEADER", "cannot remove the team's last leader")
			}
		}

		return tx.Delete(&member).Error
	})
	if err != nil {
		var svcErr *utils.ServiceError
		if errors.As(err, &svcErr) {
			return svcErr
		}
		return utils.NewServiceError("500-1", "failed to remove team member")
	}

	return nil
}
