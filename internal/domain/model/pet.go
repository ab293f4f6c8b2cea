package model

import "time"

const KindPet = "pets"

type Gender string

const (
	GenderMale   Gender = "MALE"
	GenderFemale Gender = "FEMALE"
)

type Pet struct {
	ID                string    `bson:"_id"`
	OwnerID           string    `bson:"owner_id"`
	Name              string    `bson:"name"`
	Age               *int      `bson:"age"`
	Species           string    `bson:"species"`
	Gender            Gender    `bson:"gender"`
	Bio               string    `bson:"bio"`
	ProfileImageKey   string    `bson:"profile_image_key,omitempty"`
	SubscriptionCount int       `bson:"subscription_count"`
	CreatedAt         time.Time `bson:"created_at"`
	UpdatedAt         time.Time `bson:"updated_at"`
}

type PetProfile struct {
	Name    string
	Age     *int
	Species string
	Gender  Gender
	Bio     string
}

func NewPet(id, ownerID string, profile PetProfile, imageKey string, now time.Time) *Pet {
	pet := &Pet{
		ID:              id,
		OwnerID:         ownerID,
		ProfileImageKey: imageKey,
		CreatedAt:       now,
	}

	return pet.Replace(profile, now)
}

// Replace overwrites the whole profile.
func (p *Pet) Replace(profile PetProfile, now time.Time) *Pet {
	p.Name = profile.Name
	p.Age = profile.Age
	p.Species = profile.Species
	p.Gender = profile.Gender
	p.Bio = profile.Bio
	p.UpdatedAt = now

	return p
}
