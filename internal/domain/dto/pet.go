package dto

import "petstar/internal/domain/model"

type PetRequest struct {
	Name    string       `json:"name" validate:"required,max=50"`
	Age     *int         `json:"age" validate:"omitempty,min=0"`
	Species string       `json:"species" validate:"max=100"`
	Gender  model.Gender `json:"gender" validate:"required,oneof=MALE FEMALE"`
	Bio     string       `json:"bio"`
}

func (r PetRequest) Profile() model.PetProfile {
	return model.PetProfile{
		Name:    r.Name,
		Age:     r.Age,
		Species: r.Species,
		Gender:  r.Gender,
		Bio:     r.Bio,
	}
}

type PetInfoResponse struct {
	ID                string       `json:"id"`
	OwnerID           string       `json:"ownerId"`
	ProfileImageKey   string       `json:"profileImageKey,omitempty"`
	Name              string       `json:"name"`
	Age               *int         `json:"age"`
	Species           string       `json:"species"`
	Gender            model.Gender `json:"gender"`
	Bio               string       `json:"bio"`
	SubscriptionCount int          `json:"subscriptionCount"`
}

func PetFromModel(p *model.Pet) PetInfoResponse {
	return PetInfoResponse{
		ID:                p.ID,
		OwnerID:           p.OwnerID,
		ProfileImageKey:   p.ProfileImageKey,
		Name:              p.Name,
		Age:               p.Age,
		Species:           p.Species,
		Gender:            p.Gender,
		Bio:               p.Bio,
		SubscriptionCount: p.SubscriptionCount,
	}
}
