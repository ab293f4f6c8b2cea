package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"petstar/internal/domain/apperr"
	"petstar/internal/domain/dto"
	"petstar/internal/domain/entity"
	"petstar/internal/domain/model"
	"petstar/internal/domain/repository/broker"
	"petstar/internal/domain/repository/database"
)

type UserService struct {
	repo      database.UserRepository
	publisher broker.Publisher
	newID     func() string
	now       func() time.Time
}

func NewUserService(repo database.UserRepository, publisher broker.Publisher) *UserService {
	return &UserService{
		repo:      repo,
		publisher: publisher,
		newID:     uuid.NewString,
		now:       time.Now,
	}
}

// Create registers a user. The email must not be taken yet.
func (s *UserService) Create(ctx context.Context, req dto.UserCreateRequest) (*model.User, error) {
	email := strings.TrimSpace(req.Email)

	exists, err := s.repo.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperr.Detail(apperr.ErrConflict, "email %s is already registered", email)
	}

	user := model.NewUser(s.newID(), email, strings.TrimSpace(req.DisplayName), s.now())
	if err := s.repo.Insert(ctx, user); err != nil {
		return nil, err
	}

	publish(ctx, s.publisher, entity.EventUserCreated, user.ID, user.ID, nil, s.now())

	return user, nil
}

func (s *UserService) Get(ctx context.Context, id string) (*model.User, error) {
	return s.repo.GetByID(ctx, id)
}

// Me returns the requester's own user record.
func (s *UserService) Me(ctx context.Context, requester entity.Principal) (*model.User, error) {
	if requester.Anonymous() {
		return nil, apperr.ErrAuthenticationRequired
	}

	return s.repo.GetByID(ctx, requester.ID)
}
