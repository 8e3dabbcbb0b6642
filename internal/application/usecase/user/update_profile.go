// Package user contains user profile use cases.
package user

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/wallet-tracker/backend/internal/application/adapter"
	"github.com/wallet-tracker/backend/internal/domain/entity"
	domainerror "github.com/wallet-tracker/backend/internal/domain/error"
)

// AvatarFolder is the image CDN folder for user avatars.
const AvatarFolder = "avatars"

// UpdateProfileInput represents the input for profile updates. Nil pointer
// fields are left unchanged.
type UpdateProfileInput struct {
	UserID      uuid.UUID
	Name        *string
	ImageSource *string
}

// UpdateProfileOutput represents the output of profile updates.
type UpdateProfileOutput struct {
	User *entity.User
}

// UpdateProfileUseCase handles user profile updates.
type UpdateProfileUseCase struct {
	userRepo     adapter.UserRepository
	imageService adapter.ImageService
}

// NewUpdateProfileUseCase creates a new UpdateProfileUseCase instance.
func NewUpdateProfileUseCase(userRepo adapter.UserRepository, imageService adapter.ImageService) *UpdateProfileUseCase {
	return &UpdateProfileUseCase{
		userRepo:     userRepo,
		imageService: imageService,
	}
}

// Execute performs the profile update.
func (uc *UpdateProfileUseCase) Execute(ctx context.Context, input UpdateProfileInput) (*UpdateProfileOutput, error) {
	user, err := uc.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeUserNotFound,
			"user not found",
			domainerror.ErrUserNotFound,
		)
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name != "" {
			user.Name = name
		}
	}

	if input.ImageSource != nil && *input.ImageSource != "" {
		url, err := uc.imageService.Upload(ctx, *input.ImageSource, AvatarFolder)
		if err != nil {
			return nil, domainerror.NewAuthError(
				domainerror.ErrCodeAvatarUploadFailed,
				"failed to upload avatar",
				domainerror.ErrAvatarUploadFailed,
			)
		}
		user.AvatarURL = url
	}

	user.UpdatedAt = time.Now().UTC()

	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	return &UpdateProfileOutput{User: user}, nil
}
