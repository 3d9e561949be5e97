package profile

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/BruksfildServices01/belezasmart/internal/audit"
	"github.com/BruksfildServices01/belezasmart/internal/httperr"
	"github.com/BruksfildServices01/belezasmart/internal/models"
	"github.com/BruksfildServices01/belezasmart/internal/storage"
	"github.com/BruksfildServices01/belezasmart/internal/timezone"
)

type Repository interface {
	GetProfile(ctx context.Context, userID uint) (*models.Profile, error)
	UpdateProfile(ctx context.Context, userID uint, fields map[string]any) (*models.Profile, error)
}

// ======================================================
// UPDATE
// ======================================================

type UpdateProfileInput struct {
	FullName     *string
	Phone        *string
	BusinessName *string
	BusinessType *string
	Timezone     *string
}

type UpdateProfile struct {
	repo  Repository
	audit *audit.Dispatcher
}

func NewUpdateProfile(repo Repository, audit *audit.Dispatcher) *UpdateProfile {
	return &UpdateProfile{repo: repo, audit: audit}
}

func (uc *UpdateProfile) Execute(
	ctx context.Context,
	userID uint,
	in UpdateProfileInput,
) (*models.Profile, error) {

	fields := map[string]any{}

	if in.FullName != nil {
		fields["full_name"] = strings.TrimSpace(*in.FullName)
	}
	if in.Phone != nil {
		fields["phone"] = strings.TrimSpace(*in.Phone)
	}
	if in.BusinessName != nil {
		fields["business_name"] = strings.TrimSpace(*in.BusinessName)
	}
	if in.BusinessType != nil {
		fields["business_type"] = strings.TrimSpace(*in.BusinessType)
	}
	if in.Timezone != nil {
		if !timezone.IsValid(*in.Timezone) {
			return nil, httperr.ErrBusiness("invalid_timezone")
		}
		fields["timezone"] = *in.Timezone
	}

	p, err := uc.repo.UpdateProfile(ctx, userID, fields)
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   userID,
		Action:   "profile_updated",
		Entity:   "profile",
		EntityID: &userID,
	})
	return p, nil
}

// ======================================================
// AVATAR
// ======================================================

type UploadAvatar struct {
	repo     Repository
	uploader storage.Uploader
	now      func() time.Time
}

// NewUploadAvatar aceita uploader nil quando o armazenamento não está
// configurado; nesse caso o upload devolve storage_unavailable.
func NewUploadAvatar(repo Repository, uploader storage.Uploader) *UploadAvatar {
	return &UploadAvatar{repo: repo, uploader: uploader, now: time.Now}
}

func (uc *UploadAvatar) Execute(
	ctx context.Context,
	userID uint,
	r io.Reader,
) (*models.Profile, error) {

	if uc.uploader == nil {
		return nil, httperr.ErrBusiness("storage_unavailable")
	}

	img, err := storage.AvatarWebP(r, storage.AvatarMaxSide)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_image")
	}

	key := fmt.Sprintf("avatars/%d/%d.webp", userID, uc.now().UnixNano())
	url, err := uc.uploader.Put(ctx, key, img, storage.WebPContentType)
	if err != nil {
		return nil, err
	}

	return uc.repo.UpdateProfile(ctx, userID, map[string]any{"avatar_url": url})
}
