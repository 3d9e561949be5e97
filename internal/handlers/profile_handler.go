package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/BruksfildServices01/belezasmart/internal/httperr"
	"github.com/BruksfildServices01/belezasmart/internal/middleware"
	"github.com/BruksfildServices01/belezasmart/internal/storage"
	ucProfile "github.com/BruksfildServices01/belezasmart/internal/usecase/profile"
)

type ProfileHandler struct {
	repo     ucProfile.Repository
	updateUC *ucProfile.UpdateProfile
	avatarUC *ucProfile.UploadAvatar
	log      logrus.FieldLogger
}

func NewProfileHandler(
	repo ucProfile.Repository,
	updateUC *ucProfile.UpdateProfile,
	avatarUC *ucProfile.UploadAvatar,
	log logrus.FieldLogger,
) *ProfileHandler {
	return &ProfileHandler{
		repo:     repo,
		updateUC: updateUC,
		avatarUC: avatarUC,
		log:      log,
	}
}

type UpdateProfileRequest struct {
	FullName     *string `json:"full_name" binding:"omitempty,max=100"`
	Phone        *string `json:"phone" binding:"omitempty,max=20"`
	BusinessName *string `json:"business_name" binding:"omitempty,max=100"`
	BusinessType *string `json:"business_type" binding:"omitempty,max=50"`
	Timezone     *string `json:"timezone" binding:"omitempty,max=50"`
}

func (h *ProfileHandler) Get(c *gin.Context) {
	p, err := h.repo.GetProfile(c.Request.Context(), middleware.OwnerID(c))
	if err != nil {
		respondError(c, h.log, err, "failed_to_load_profile")
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *ProfileHandler) Update(c *gin.Context) {
	var req UpdateProfileRequest
	if !bindJSON(c, &req) {
		return
	}

	p, err := h.updateUC.Execute(c.Request.Context(), middleware.OwnerID(c), ucProfile.UpdateProfileInput{
		FullName:     req.FullName,
		Phone:        req.Phone,
		BusinessName: req.BusinessName,
		BusinessType: req.BusinessType,
		Timezone:     req.Timezone,
	})
	if err != nil {
		respondError(c, h.log, err, "failed_to_update_profile")
		return
	}
	c.JSON(http.StatusOK, p)
}

// UploadAvatar recebe multipart com o campo "avatar".
func (h *ProfileHandler) UploadAvatar(c *gin.Context) {
	fh, err := c.FormFile("avatar")
	if err != nil {
		httperr.BadRequest(c, "missing_file", "Arquivo não enviado.")
		return
	}
	if fh.Size > storage.AvatarMaxBytes {
		httperr.BadRequest(c, "image_too_large", httperr.Message("image_too_large"))
		return
	}

	f, err := fh.Open()
	if err != nil {
		httperr.BadRequest(c, "invalid_image", httperr.Message("invalid_image"))
		return
	}
	defer f.Close()

	p, err := h.avatarUC.Execute(c.Request.Context(), middleware.OwnerID(c), f)
	if err != nil {
		respondError(c, h.log, err, "failed_to_upload_avatar")
		return
	}
	c.JSON(http.StatusOK, p)
}
