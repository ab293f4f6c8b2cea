package usecase

import (
	"context"
	"time"

	"petstar/internal/domain/apperr"
	"petstar/internal/domain/dto"
	"petstar/internal/domain/entity"
	"petstar/internal/domain/model"
	"petstar/internal/domain/repository/broker"
	"petstar/internal/domain/repository/database"
)

// DurationProber reads the playback length of a video source in seconds.
type DurationProber interface {
	DurationSec(ctx context.Context, file *entity.UploadFile) (int, error)
}

type VideoService struct {
	repo        database.VideoRepository
	coordinator *MediaCoordinator
	prober      DurationProber
	publisher   broker.Publisher
	now         func() time.Time
}

func NewVideoService(repo database.VideoRepository, coordinator *MediaCoordinator, prober DurationProber,
	publisher broker.Publisher,
) *VideoService {
	return &VideoService{
		repo:        repo,
		coordinator: coordinator,
		prober:      prober,
		publisher:   publisher,
		now:         time.Now,
	}
}

// Create rejects a missing source before anything else happens, probes its duration and then
// uploads the source and the optional thumbnail.
func (s *VideoService) Create(ctx context.Context, requester entity.Principal, petID string,
	req dto.VideoInfoRequest, source, thumbnail *entity.UploadFile,
) (string, error) {
	if source.Empty() {
		return "", apperr.ErrSourceRequired
	}
	if requester.Anonymous() {
		return "", apperr.ErrAuthenticationRequired
	}

	durationSec, err := s.prober.DurationSec(ctx, source)
	if err != nil {
		return "", err
	}

	files := []SlotFile{
		{Slot: SlotSource, File: source},
		{Slot: SlotThumbnail, File: thumbnail},
	}

	var video *model.Video
	id, err := s.coordinator.Create(ctx, model.KindVideo, files, func(id string, keys UploadedKeys) error {
		video = model.NewVideo(model.NewVideoParams{
			ID:           id,
			PetID:        petID,
			OwnerID:      requester.ID,
			Title:        req.Title,
			Description:  req.Description,
			Visibility:   req.Visibility,
			SourceKey:    keys.First(SlotSource),
			ThumbnailKey: keys.First(SlotThumbnail),
			DurationSec:  durationSec,
			Tags:         req.Tags,
		}, s.now())

		return s.repo.Insert(ctx, video)
	})
	if err != nil {
		return "", err
	}

	publish(ctx, s.publisher, entity.EventVideoCreated, id, video.OwnerID, video.MediaKeys(), s.now())

	return id, nil
}

func (s *VideoService) Get(ctx context.Context, id string, requester entity.Principal) (*model.Video, error) {
	video, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := CheckVisible(video.Visibility, video.OwnerID, requester); err != nil {
		return nil, err
	}

	return video, nil
}

// Update merges the metadata and, when a thumbnail is given, overwrites the thumbnail slot.
func (s *VideoService) Update(ctx context.Context, id string, requester entity.Principal,
	req dto.VideoUpdateRequest, thumbnail *entity.UploadFile,
) (*model.Video, error) {
	video, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := CheckOwner(video.OwnerID, requester); err != nil {
		return nil, err
	}

	video.UpdateMeta(req.Title, req.Description, req.Visibility, req.Tags, s.now())

	if thumbnail.Empty() {
		err = s.repo.Update(ctx, video)
	} else {
		err = s.coordinator.Replace(ctx, model.KindVideo, id, SlotThumbnail, thumbnail, func(key string) error {
			video.UpdateThumbnail(key, s.now())

			return s.repo.Update(ctx, video)
		})
	}
	if err != nil {
		return nil, err
	}

	publish(ctx, s.publisher, entity.EventVideoUpdated, id, video.OwnerID, nil, s.now())

	return video, nil
}

func (s *VideoService) Delete(ctx context.Context, id string, requester entity.Principal) error {
	video, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := CheckOwner(video.OwnerID, requester); err != nil {
		return err
	}

	s.coordinator.RemoveAll(ctx, model.KindVideo, id, video.MediaKeys())

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	publish(ctx, s.publisher, entity.EventVideoDeleted, id, video.OwnerID, video.MediaKeys(), s.now())

	return nil
}
