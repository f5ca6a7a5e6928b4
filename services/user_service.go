// services/user_service.go - Registration, login and profile management
package services

import (
	"errors"
	"time"
	"tododuk/models"
	"tododuk/utils"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

// Register creates a new account. The API key minted here is the user's
// long-lived credential; it never expires and never rotates.
func (s *UserService) Register(email, password, nickname string) (*models.User, error) {
	if email == "" || password == "" || nickname == "" {
		return nil, utils.BadRequest("email, password and nickname are required")
	}

	var existing models.User
	if err := s.db.Where("email = ?", email).First(&existing).Error; err == nil {
		return nil, utils.Conflict("email is already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, utils.NewServiceError("500-1", "failed to hash password")
	}

	user := &models.User{
		Email:     email,
		Password:  string(hash),
		Nickname:  nickname,
		APIKey:    uuid.New().String(),
		CreatedAt: time.Now(),
	}

	if err := s.db.Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, utils.Conflict("email is already registered")
		}
		return nil, utils.NewServiceError("500-1", "failed to create user")
	}

	return user, nil
}

// Login verifies the credentials and returns the account. Unknown email and
// wrong password are indistinguishable to the caller.
func (s *UserService) Login(email, password string) (*models.User, error) {
	if email == "" || password == "" {
		return nil, utils.BadRequest("email and password are required")
	}

	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, utils.Unauthorized("invalid email or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, utils.Unauthorized("invalid email or password")
	}

	return &user, nil
}

func (s *UserService) FindByID(id uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		return nil, utils.NotFound("USER_NOT_FOUND", "user not found")
	}
	return &user, nil
}

func (s *UserService) FindByEmail(email string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, utils.NotFound("USER_NOT_FOUND", "user not found")
	}
	return &user, nil
}

func (s *UserService) FindByAPIKey(apiKey string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("api_key = ?", apiKey).First(&user).Error; err != nil {
		return nil, utils.Unauthorized("unknown API key")
	}
	return &user, nil
}

// UpdateProfile overwrites only the fields the caller supplied.
func (s *UserService) UpdateProfile(userID uint, nickname, profileImgURL string) (*models.User, error) {
	user, err := s.FindByID(userID)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if nickname != "" {
		updates["nickname"] = nickname
	}
	if profileImgURL != "" {
		updates["profile_img_url"] = profileImgURL
	}

	if len(updates) > 0 {
		if err := s.db.Model(user).Updates(updates).Error; err != nil {
			return nil, utils.NewServiceError("500-1", "failed to update profile")
		}
	}

	return user, nil
}
