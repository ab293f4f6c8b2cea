package abstraction

import (
	"context"

	"petstar/internal/domain/dto"
	"petstar/internal/domain/entity"
	"petstar/internal/domain/model"
)

type PetService interface {
	Create(ctx context.Context, requester entity.Principal, req dto.PetRequest,
		image *entity.UploadFile) (string, error)
	Get(ctx context.Context, id string) (*model.Pet, error)
	Update(ctx context.Context, id string, req dto.PetRequest, image *entity.UploadFile) (*model.Pet, error)
	Delete(ctx context.Context, id string) error
}
