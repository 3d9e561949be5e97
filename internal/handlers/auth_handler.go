package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/belezasmart/internal/config"
	"github.com/BruksfildServices01/belezasmart/internal/httperr"
	"github.com/BruksfildServices01/belezasmart/internal/models"
	"github.com/BruksfildServices01/belezasmart/internal/timezone"
	"github.com/BruksfildServices01/belezasmart/internal/validators"
)

type AuthHandler struct {
	db     *gorm.DB
	config *config.Config
	log    logrus.FieldLogger
}

func NewAuthHandler(db *gorm.DB, cfg *config.Config, log logrus.FieldLogger) *AuthHandler {
	return &AuthHandler{db: db, config: cfg, log: log}
}

// --------- Requests ---------

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`

	FullName     string `json:"full_name" binding:"required,max=100"`
	Phone        string `json:"phone" binding:"omitempty,max=20"`
	BusinessName string `json:"business_name" binding:"omitempty,max=100"`
	BusinessType string `json:"business_type" binding:"omitempty,max=50"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// --------- Handlers ---------

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if !bindJSON(c, &req) {
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	if !validators.IsEmailFormatValid(email) {
		httperr.BadRequest(c, "invalid_email", httperr.Message("invalid_email"))
		return
	}
	if h.config.CheckEmailDomain && !validators.IsEmailDomainValid(email) {
		httperr.BadRequest(c, "invalid_email_domain", httperr.Message("invalid_email_domain"))
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, "failed_to_hash_password", httperr.Message("failed_to_hash_password"))
		return
	}

	tz := h.config.DefaultTimezone
	if !timezone.IsValid(tz) {
		tz = timezone.DefaultTimezone
	}

	user := models.User{
		Email:        email,
		PasswordHash: string(hashed),
	}
	var profile models.Profile

	err = h.db.WithContext(c.Request.Context()).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return httperr.ErrBusiness("email_taken")
		}

		if err := tx.Create(&user).Error; err != nil {
			return err
		}

		profile = models.Profile{
			ID:           user.ID,
			Email:        email,
			FullName:     strings.TrimSpace(req.FullName),
			Phone:        strings.TrimSpace(req.Phone),
			BusinessName: strings.TrimSpace(req.BusinessName),
			BusinessType: strings.TrimSpace(req.BusinessType),
			Timezone:     tz,
		}
		return tx.Create(&profile).Error
	})
	if err != nil {
		respondError(c, h.log, err, "failed_to_create_user")
		return
	}

	token, err := h.generateToken(&user)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", httperr.Message("failed_to_generate_token"))
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"user":    gin.H{"id": user.ID, "email": user.Email},
		"profile": profile,
		"token":   token,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var user models.User
	if err := h.db.WithContext(c.Request.Context()).
		Where("email = ?", email).
		First(&user).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.Unauthorized(c, "invalid_credentials", httperr.Message("invalid_credentials"))
			return
		}
		respondError(c, h.log, err, "internal_error")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		httperr.Unauthorized(c, "invalid_credentials", httperr.Message("invalid_credentials"))
		return
	}

	token, err := h.generateToken(&user)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", httperr.Message("failed_to_generate_token"))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":  gin.H{"id": user.ID, "email": user.Email},
		"token": token,
	})
}

// --------- JWT ---------

func (h *AuthHandler) generateToken(user *models.User) (string, error) {
	return GenerateToken(h.config.JWTSecret, user, time.Now())
}

// GenerateToken assina o JWT da sessão: sub = id do usuário (dono da conta).
func GenerateToken(secret string, user *models.User, now time.Time) (string, error) {
	claims := jwt.MapClaims{
		"sub":   user.ID,
		"email": user.Email,
		"exp":   now.Add(24 * time.Hour).Unix(),
		"iat":   now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
