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

// PetService manages pet profiles. Update and delete are not restricted to the owner.
type PetService struct {
	repo        database.PetRepository
	coordinator *MediaCoordinator
	publisher   broker.Publisher
	now         func() time.Time
}

func NewPetService(repo database.PetRepository, coordinator *MediaCoordinator,
	publisher broker.Publisher,
) *PetService {
	return &PetService{
		repo:        repo,
		coordinator: coordinator,
		publisher:   publisher,
		now:         time.Now,
	}
}

func (s *PetService) Create(ctx context.Context, requester entity.Principal, req dto.PetRequest,
	image *entity.UploadFile,
) (string, error) {
	if requester.Anonymous() {
		return "", apperr.ErrAuthenticationRequired
	}

	files := []SlotFile{{Slot: SlotProfile, File: image}}

	var pet *model.Pet
	id, err := s.coordinator.Create(ctx, model.KindPet, files, func(id string, keys UploadedKeys) error {
		pet = model.NewPet(id, requester.ID, req.Profile(), keys.First(SlotProfile), s.now())

		return s.repo.Insert(ctx, pet)
	})
	if err != nil {
		return "", err
	}

	publish(ctx, s.publisher, entity.EventPetCreated, id, pet.OwnerID, petMedia(pet), s.now())

	return id, nil
}

func (s *PetService) Get(ctx context.Context, id string) (*model.Pet, error) {
	return s.repo.GetByID(ctx, id)
}

// Update replaces the whole profile. A new image overwrites the profile image slot.
func (s *PetService) Update(ctx context.Context, id string, req dto.PetRequest,
	image *entity.UploadFile,
) (*model.Pet, error) {
	pet, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	pet.Replace(req.Profile(), s.now())

	if image.Empty() {
		err = s.repo.Update(ctx, pet)
	} else {
		err = s.coordinator.Replace(ctx, model.KindPet, id, SlotProfile, image, func(key string) error {
			pet.ProfileImageKey = key

			return s.repo.Update(ctx, pet)
		})
	}
	if err != nil {
		return nil, err
	}

	publish(ctx, s.publisher, entity.EventPetUpdated, id, pet.OwnerID, nil, s.now())

	return pet, nil
}

func (s *PetService) Delete(ctx context.Context, id string) error {
	pet, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	s.coordinator.RemoveAll(ctx, model.KindPet, id, petMedia(pet))

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	publish(ctx, s.publisher, entity.EventPetDeleted, id, pet.OwnerID, petMedia(pet), s.now())

	return nil
}

func petMedia(pet *model.Pet) []string {
	if pet.ProfileImageKey == "" {
		return nil
	}

	return []string{pet.ProfileImageKey}
}
