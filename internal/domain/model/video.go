package model

import "time"

const KindVideo = "videos"

type VideoStatus string

const (
	VideoStatusUploading   VideoStatus = "UPLOADING"
	VideoStatusTranscoding VideoStatus = "TRANSCODING"
	VideoStatusReady       VideoStatus = "READY"
	VideoStatusFailed      VideoStatus = "FAILED"
)

type Video struct {
	ID           string      `bson:"_id"`
	PetID        string      `bson:"pet_id"`
	OwnerID      string      `bson:"owner_id"`
	Title        string      `bson:"title"`
	Description  string      `bson:"description"`
	Status       VideoStatus `bson:"status"`
	Visibility   Visibility  `bson:"visibility"`
	SourceKey    string      `bson:"source_key"`
	ThumbnailKey string      `bson:"thumbnail_key,omitempty"`
	DurationSec  int         `bson:"duration_sec"`
	ViewCount    int         `bson:"view_count"`
	LikeCount    int         `bson:"like_count"`
	CommentCount int         `bson:"comment_count"`
	Tags         []string    `bson:"tags"`
	CreatedAt    time.Time   `bson:"created_at"`
	UpdatedAt    time.Time   `bson:"updated_at"`
	PublishedAt  *time.Time  `bson:"published_at"`
}

type NewVideoParams struct {
	ID           string
	PetID        string
	OwnerID      string
	Title        string
	Description  string
	Visibility   *Visibility
	SourceKey    string
	ThumbnailKey string
	DurationSec  int
	Tags         []string
}

func NewVideo(p NewVideoParams, now time.Time) *Video {
	tags := make([]string, 0, len(p.Tags))
	tags = append(tags, p.Tags...)

	return &Video{
		ID:           p.ID,
		PetID:        p.PetID,
		OwnerID:      p.OwnerID,
		Title:        p.Title,
		Description:  p.Description,
		Status:       VideoStatusUploading,
		Visibility:   VisibilityOrDefault(p.Visibility),
		SourceKey:    p.SourceKey,
		ThumbnailKey: p.ThumbnailKey,
		DurationSec:  p.DurationSec,
		Tags:         tags,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// UpdateMeta overwrites every non-nil field; tags are replaced as a whole list.
func (v *Video) UpdateMeta(title, description *string, visibility *Visibility, tags []string,
	now time.Time,
) *Video {
	if title != nil {
		v.Title = *title
	}
	if description != nil {
		v.Description = *description
	}
	if visibility != nil {
		v.Visibility = *visibility
	}
	if tags != nil {
		v.Tags = append(make([]string, 0, len(tags)), tags...)
	}
	v.UpdatedAt = now

	return v
}

func (v *Video) UpdateThumbnail(key string, now time.Time) *Video {
	v.ThumbnailKey = key
	v.UpdatedAt = now

	return v
}

// MediaKeys returns every stored object the video references.
func (v *Video) MediaKeys() []string {
	keys := []string{v.SourceKey}
	if v.ThumbnailKey != "" {
		keys = append(keys, v.ThumbnailKey)
	}

	return keys
}
