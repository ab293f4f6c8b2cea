package model

import "time"

type UserRole string

const (
	UserRoleUser  UserRole = "USER"
	UserRoleAdmin UserRole = "ADMIN"
)

type UserStatus string

const (
	UserStatusActive  UserStatus = "ACTIVE"
	UserStatusDeleted UserStatus = "DELETED"
)

type User struct {
	ID          string     `bson:"_id"`
	Email       string     `bson:"email"`
	DisplayName string     `bson:"display_name"`
	Role        UserRole   `bson:"role"`
	Status      UserStatus `bson:"status"`
	Bio         string     `bson:"bio"`
	CreatedAt   time.Time  `bson:"created_at"`
}

func NewUser(id, email, displayName string, now time.Time) *User {
	return &User{
		ID:          id,
		Email:       email,
		DisplayName: displayName,
		Role:        UserRoleUser,
		Status:      UserStatusActive,
		CreatedAt:   now,
	}
}
