package abstraction

import (
	"context"

	"petstar/internal/domain/dto"
	"petstar/internal/domain/entity"
	"petstar/internal/domain/model"
)

type PostingService interface {
	Create(ctx context.Context, requester entity.Principal, req dto.PostingRequest,
		images []*entity.UploadFile) (string, error)
	Get(ctx context.Context, id string, requester entity.Principal) (*model.Posting, error)
	Update(ctx context.Context, id string, requester entity.Principal,
		req dto.PostingUpdateRequest) (*model.Posting, error)
	Delete(ctx context.Context, id string, requester entity.Principal) error
}
