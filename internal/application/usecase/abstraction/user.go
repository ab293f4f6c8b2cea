package abstraction

import (
	"context"

	"petstar/internal/domain/dto"
	"petstar/internal/domain/entity"
	"petstar/internal/domain/model"
)

type UserService interface {
	Create(ctx context.Context, req dto.UserCreateRequest) (*model.User, error)
	Get(ctx context.Context, id string) (*model.User, error)
	Me(ctx context.Context, requester entity.Principal) (*model.User, error)
}
