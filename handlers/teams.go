// handlers/teams.go - Team lifecycle endpoints
package handlers

import (
	"strconv"
	"tododuk/middleware"
	"tododuk/utils"

	"github.com/gofiber/fiber/v2"
)

type CreateTeamRequest struct {
	TeamName    string `json:"teamName"`
	Description string `json:"description"`
}

type UpdateTeamRequest struct {
	TeamName    string `json:"teamName"`
	Description string `json:"description"`
}

func parseIDParam(c *fiber.Ctx, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Params(name), 10, 32)
	if err != nil {
		return 0, utils.BadRequest("invalid " + name)
	}
	return uint(id), nil
}

// CreateTeam creates a team with the actor as its first leader.
// POST /api/v1/teams
func CreateTeam(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return err
	}

	var req CreateTeamRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest("invalid request body")
	}

	team, err := teamService.CreateTeam(req.TeamName, req.Description, userID)
	if err != nil {
		return err
	}

	return utils.Created(c, "team created successfully", team)
}

// GetTeams lists every team.
// GET /api/v1/teams
func GetTeams(c *fiber.Ctx) error {
	teams, err := teamService.GetAllTeams()
	if err != nil {
		return err
	}
	return utils.OK(c, "teams loaded", teams)
}

// GetMyTeams lists the teams the actor belongs to.
// GET /api/v1/teams/my
func GetMyTeams(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return err
	}

	teams, err := teamService.GetMyTeams(userID)
	if err != nil {
		return err
	}
	return utils.OK(c, "my teams loaded", teams)
}

// GetTeam returns team details with its roster. Members only.
// GET /api/v1/teams/:teamId
func GetTeam(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return err
	}
	teamID, err := parseIDParam(c, "teamId")
	if err != nil {
		return err
	}

	team, err := teamService.GetTeamDetails(teamID, userID)
	if err != nil {
		return err
	}
	return utils.OK(c, "team details loaded", team)
}

// UpdateTeam updates name/description. Leader only.
// PATCH /api/v1/teams/:teamId
func UpdateTeam(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return err
	}
	teamID, err := parseIDParam(c, "teamId")
	if err != nil {
		return err
	}

	var req UpdateTeamRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest("invalid request body")
	}

	team, err := teamService.UpdateTeamInfo(teamID, req.TeamName, req.Description, userID)
	if err != nil {
		return err
	}
	return utils.OK(c, "team updated successfully", team)
}

// DeleteTeam deletes the team and everything scoped to it. Leader only.
// DELETE /api/v1/teams/:teamId
func DeleteTeam(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return err
	}
	teamID, err := parseIDParam(c, "teamId")
	if err != nil {
		return err
	}

	if err := teamService.DeleteTeam(teamID, userID); err != nil {
		return err
	}
	return utils.OK(c, "team deleted successfully", nil)
}
