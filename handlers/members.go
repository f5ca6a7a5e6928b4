// handlers/members.go - Team membership endpoints
package handlers

import (
	"tododuk/middleware"
	"tododuk/models"
	"tododuk/utils"

	"github.com/gofiber/fiber/v2"
)

type AddMemberRequest struct {
	UserID uint            `json:"userId"`
	Role   models.TeamRole `json:"role"`
}

type UpdateMemberRoleRequest struct {
	Role models.TeamRole `json:"role"`
}

// GetTeamMembers returns the roster. Members only.
// GET /api/v1/teams/:teamId/members
func GetTeamMembers(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return err
	}
	teamID, err := parseIDParam(c, "teamId")
	if err != nil {
		return err
	}

	members, err := teamMemberService.GetTeamMembers(teamID, userID)
	if err != nil {
		return err
	}
	return utils.OK(c, "team members loaded", members)
}

// AddTeamMember adds a user to the team. Leader only.
// POST /api/v1/teams/:teamId/members
func AddTeamMember(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return err
	}
	teamID, err := parseIDParam(c, "teamId")
	if err != nil {
		return err
	}

	var req AddMemberRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest("invalid request body")
	}
	if req.UserID == 0 {
		return utils.BadRequest("userId is required")
	}
	if req.Role == "" {
		req.Role = models.TeamRoleMember
	}

	member, err := teamMemberService.AddTeamMember(teamID, req.UserID, req.Role, userID)
	if err != nil {
		return err
	}
	return utils.Created(c, "team member added", member)
}

// UpdateTeamMemberRole changes a member's role. Leader only.
// PATCH /api/v1/teams/:teamId/members/:userId/role
func UpdateTeamMemberRole(c *fiber.Ctx) error {
	requesterID, err := middleware.GetUserID(c)
	if err != nil {
		return err
	}
	teamID, err := parseIDParam(c, "teamId")
	if err != nil {
		return err
	}
	targetID, err := parseIDParam(c, "userId")
	if err != nil {
		return err
	}

	var req UpdateMemberRoleRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest("invalid request body")
	}

	member, err := teamMemberService.UpdateTeamMemberRole(teamID, targetID, req.Role, requesterID)
	if err != nil {
		return err
	}
	return utils.OK(c, "member role updated", member)
}

// RemoveTeamMember removes a member. Leader only; the last leader stays.
// DELETE /api/v1/teams/:teamId/members/:userId
func RemoveTeamMember(c *fiber.Ctx) error {
	removerID, err := middleware.GetUserID(c)
	if err != nil {
		return err
	}
	teamID, err := parseIDParam(c, "teamId")
	if err != nil {
		return err
	}
	targetID, err := parseIDParam(c, "userId")
	if err != nil {
		return err
	}

	if err := teamMemberService.RemoveTeamMember(teamID, targetID, removerID); err != nil {
		return err
	}
	return utils.OK(c, "team member removed", nil)
}
