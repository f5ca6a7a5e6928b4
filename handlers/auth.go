// handlers/auth.go - Registration, login and profile endpoints
package handlers

import (
	"tododuk/middleware"
	"tododuk/models"
	"tododuk/utils"

	"github.com/gofiber/fiber/v2"
)

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Nickname string `json:"nickname"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UserResponse struct {
	ID            uint   `json:"id"`
	Email         string `json:"email"`
	Nickname      string `json:"nickname"`
	ProfileImgURL string `json:"profile_img_url"`
}

func toUserResponse(user *models.User) UserResponse {
	return UserResponse{
		ID:            user.ID,
		Email:         user.Email,
		Nickname:      user.Nickname,
		ProfileImgURL: user.ProfileImgURL,
	}
}

// Register creates an account and returns its long-lived API key.
// POST /api/v1/user/register
func Register(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest("invalid request body")
	}

	user, err := userService.Register(req.Email, req.Password, req.Nickname)
	if err != nil {
		return err
	}

	return utils.Created(c, "welcome, "+user.Nickname+", your registration is complete", fiber.Map{
		"user":   toUserResponse(user),
		"apiKey": user.APIKey,
	})
}

// Login verifies credentials, sets credential cookies and returns the API
// key plus a fresh access token.
// POST /api/v1/user/login
func Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest("invalid request body")
	}

	user, err := userService.Login(req.Email, req.Password)
	if err != nil {
		return err
	}

	accessToken, err := authTokenService.GenAccessToken(user)
	if err != nil {
		return utils.NewServiceError("500-1", "failed to generate access token")
	}

	setCredentialCookie(c, "apiKey", user.APIKey)
	setCredentialCookie(c, "accessToken", accessToken)

	return utils.Created(c, "welcome back, "+user.Nickname, fiber.Map{
		"user":        toUserResponse(user),
		"apiKey":      user.APIKey,
		"accessToken": accessToken,
	})
}

// Logout clears the credential cookies.
// POST /api/v1/user/logout
func Logout(c *fiber.Ctx) error {
	setCredentialCookie(c, "apiKey", "")
	setCredentialCookie(c, "accessToken", "")
	return utils.OK(c, "logged out", nil)
}

// GetMe returns the actor's profile.
// GET /api/v1/user/me
func GetMe(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return err
	}

	user, err := userService.FindByID(userID)
	if err != nil {
		return err
	}

	return utils.OK(c, "profile loaded", toUserResponse(user))
}

type UpdateMeRequest struct {
	Nickname      string `json:"nickname"`
	ProfileImgURL string `json:"profile_img_url"`
}

// UpdateMe updates nickname and profile image.
// POST /api/v1/user/me
func UpdateMe(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return err
	}

	var req UpdateMeRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest("invalid request body")
	}

	user, err := userService.UpdateProfile(userID, req.Nickname, req.ProfileImgURL)
	if err != nil {
		return err
	}

	return utils.OK(c, "profile updated", toUserResponse(user))
}

func setCredentialCookie(c *fiber.Ctx, name, value string) {
	c.Cookie(&fiber.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		HTTPOnly: true,
	})
}
