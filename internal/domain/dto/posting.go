package dto

import (
	"time"

	"petstar/internal/domain/model"
)

type PostingRequest struct {
	PetID      string            `json:"petId" validate:"required"`
	Title      string            `json:"title" validate:"required,max=255"`
	Content    string            `json:"content"`
	Visibility *model.Visibility `json:"visibility" validate:"omitempty,oneof=PUBLIC PRIVATE"`
}

// PostingUpdateRequest carries a partial update: nil fields stay unchanged.
type PostingUpdateRequest struct {
	Title      *string           `json:"title" validate:"omitempty,max=255"`
	Content    *string           `json:"content"`
	Visibility *model.Visibility `json:"visibility" validate:"omitempty,oneof=PUBLIC PRIVATE"`
}

type PostingResponse struct {
	ID           string           `json:"id"`
	PetID        string           `json:"petId"`
	OwnerID      string           `json:"ownerId"`
	Title        string           `json:"title"`
	Content      string           `json:"content"`
	Visibility   model.Visibility `json:"visibility"`
	LikeCount    int              `json:"likeCount"`
	CommentCount int              `json:"commentCount"`
	ImageKeys    []string         `json:"imageKeys"`
	CreatedAt    time.Time        `json:"createdAt"`
	UpdatedAt    time.Time        `json:"updatedAt"`
	PublishedAt  *time.Time       `json:"publishedAt"`
}

func PostingFromModel(p *model.Posting) PostingResponse {
	return PostingResponse{
		ID:           p.ID,
		PetID:        p.PetID,
		OwnerID:      p.OwnerID,
		Title:        p.Title,
		Content:      p.Content,
		Visibility:   p.Visibility,
		LikeCount:    p.LikeCount,
		CommentCount: p.CommentCount,
		ImageKeys:    p.ImageKeys,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
		PublishedAt:  p.PublishedAt,
	}
}
