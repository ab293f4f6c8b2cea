package dto

import (
	"time"

	"petstar/internal/domain/model"
)

type VideoInfoRequest struct {
	Title       string            `json:"title" validate:"required,max=255"`
	Description string            `json:"description"`
	Visibility  *model.Visibility `json:"visibility" validate:"omitempty,oneof=PUBLIC PRIVATE"`
	Tags        []string          `json:"tags" validate:"omitempty,dive,max=50"`
}

// VideoUpdateRequest carries a partial update. A present tags list, even an empty one,
// replaces the stored list.
type VideoUpdateRequest struct {
	Title       *string           `json:"title" validate:"omitempty,max=255"`
	Description *string           `json:"description"`
	Visibility  *model.Visibility `json:"visibility" validate:"omitempty,oneof=PUBLIC PRIVATE"`
	Tags        []string          `json:"tags" validate:"omitempty,dive,max=50"`
}

type VideoResponse struct {
	ID           string            `json:"id"`
	PetID        string            `json:"petId"`
	OwnerID      string            `json:"ownerId"`
	Title        string            `json:"title"`
	Description  string            `json:"description"`
	Status       model.VideoStatus `json:"status"`
	Visibility   model.Visibility  `json:"visibility"`
	DurationSec  int               `json:"durationSec"`
	SourceKey    string            `json:"sourceKey"`
	ThumbnailKey string            `json:"thumbnailKey,omitempty"`
	ViewCount    int               `json:"viewCount"`
	LikeCount    int               `json:"likeCount"`
	CommentCount int               `json:"commentCount"`
	Tags         []string          `json:"tags"`
	CreatedAt    time.Time         `json:"createdAt"`
	UpdatedAt    time.Time         `json:"updatedAt"`
	PublishedAt  *time.Time        `json:"publishedAt"`
}

func VideoFromModel(v *model.Video) VideoResponse {
	return VideoResponse{
		ID:           v.ID,
		PetID:        v.PetID,
		OwnerID:      v.OwnerID,
		Title:        v.Title,
		Description:  v.Description,
		Status:       v.Status,
		Visibility:   v.Visibility,
		DurationSec:  v.DurationSec,
		SourceKey:    v.SourceKey,
		ThumbnailKey: v.ThumbnailKey,
		ViewCount:    v.ViewCount,
		LikeCount:    v.LikeCount,
		CommentCount: v.CommentCount,
		Tags:         v.Tags,
		CreatedAt:    v.CreatedAt,
		UpdatedAt:    v.UpdatedAt,
		PublishedAt:  v.PublishedAt,
	}
}
