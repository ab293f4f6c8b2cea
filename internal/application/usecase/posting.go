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

type PostingService struct {
	repo        database.PostingRepository
	coordinator *MediaCoordinator
	publisher   broker.Publisher
	now         func() time.Time
}

func NewPostingService(repo database.PostingRepository, coordinator *MediaCoordinator,
	publisher broker.Publisher,
) *PostingService {
	return &PostingService{
		repo:        repo,
		coordinator: coordinator,
		publisher:   publisher,
		now:         time.Now,
	}
}

// Create stores the images in order and inserts the posting with their keys.
func (s *PostingService) Create(ctx context.Context, requester entity.Principal, req dto.PostingRequest,
	images []*entity.UploadFile,
) (string, error) {
	if requester.Anonymous() {
		return "", apperr.ErrAuthenticationRequired
	}

	files := make([]SlotFile, 0, len(images))
	for _, image := range images {
		files = append(files, SlotFile{Slot: SlotImages, File: image})
	}

	var posting *model.Posting
	id, err := s.coordinator.Create(ctx, model.KindPosting, files, func(id string, keys UploadedKeys) error {
		posting = model.NewPosting(id, req.PetID, requester.ID, req.Title, req.Content, req.Visibility,
			keys.InSlot(SlotImages), s.now())

		return s.repo.Insert(ctx, posting)
	})
	if err != nil {
		return "", err
	}

	publish(ctx, s.publisher, entity.EventPostingCreated, id, posting.OwnerID, posting.ImageKeys, s.now())

	return id, nil
}

func (s *PostingService) Get(ctx context.Context, id string, requester entity.Principal) (*model.Posting, error) {
	posting, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := CheckVisible(posting.Visibility, posting.OwnerID, requester); err != nil {
		return nil, err
	}

	return posting, nil
}

func (s *PostingService) Update(ctx context.Context, id string, requester entity.Principal,
	req dto.PostingUpdateRequest,
) (*model.Posting, error) {
	posting, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := CheckOwner(posting.OwnerID, requester); err != nil {
		return nil, err
	}

	posting.UpdateMeta(req.Title, req.Content, req.Visibility, s.now())
	if err := s.repo.Update(ctx, posting); err != nil {
		return nil, err
	}

	publish(ctx, s.publisher, entity.EventPostingUpdated, id, posting.OwnerID, nil, s.now())

	return posting, nil
}

// Delete removes the images first and the record afterwards, even if some images remain.
func (s *PostingService) Delete(ctx context.Context, id string, requester entity.Principal) error {
	posting, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := CheckOwner(posting.OwnerID, requester); err != nil {
		return err
	}

	s.coordinator.RemoveAll(ctx, model.KindPosting, id, posting.ImageKeys)

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	publish(ctx, s.publisher, entity.EventPostingDeleted, id, posting.OwnerID, posting.ImageKeys, s.now())

	return nil
}
