package abstraction

import (
	"context"

	"petstar/internal/domain/dto"
	"petstar/internal/domain/entity"
	"petstar/internal/domain/model"
)

type VideoService interface {
	Create(ctx context.Context, requester entity.Principal, petID string, req dto.VideoInfoRequest,
		source, thumbnail *entity.UploadFile) (string, error)
	Get(ctx context.Context, id string, requester entity.Principal) (*model.Video, error)
	Update(ctx context.Context, id string, requester entity.Principal, req dto.VideoUpdateRequest,
		thumbnail *entity.UploadFile) (*model.Video, error)
	Delete(ctx context.Context, id string, requester entity.Principal) error
}
