package model

import "time"

const KindPosting = "posts"

type Posting struct {
	ID           string     `bson:"_id"`
	PetID        string     `bson:"pet_id"`
	OwnerID      string     `bson:"owner_id"`
	Title        string     `bson:"title"`
	Content      string     `bson:"content"`
	Visibility   Visibility `bson:"visibility"`
	LikeCount    int        `bson:"like_count"`
	CommentCount int        `bson:"comment_count"`
	ImageKeys    []string   `bson:"image_keys"`
	CreatedAt    time.Time  `bson:"created_at"`
	UpdatedAt    time.Time  `bson:"updated_at"`
	PublishedAt  *time.Time `bson:"published_at"`
}

func NewPosting(id, petID, ownerID, title, content string, visibility *Visibility,
	imageKeys []string, now time.Time,
) *Posting {
	keys := make([]string, 0, len(imageKeys))
	keys = append(keys, imageKeys...)

	return &Posting{
		ID:         id,
		PetID:      petID,
		OwnerID:    ownerID,
		Title:      title,
		Content:    content,
		Visibility: VisibilityOrDefault(visibility),
		ImageKeys:  keys,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// UpdateMeta overwrites every non-nil field and always moves UpdatedAt to now.
func (p *Posting) UpdateMeta(title, content *string, visibility *Visibility, now time.Time) *Posting {
	if title != nil {
		p.Title = *title
	}
	if content != nil {
		p.Content = *content
	}
	if visibility != nil {
		p.Visibility = *visibility
	}
	p.UpdatedAt = now

	return p
}
