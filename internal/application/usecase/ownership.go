package usecase

import (
	"petstar/internal/domain/apperr"
	"petstar/internal/domain/entity"
	"petstar/internal/domain/model"
)

// CheckOwner gates every mutation of an owned record.
func CheckOwner(ownerID string, requester entity.Principal) error {
	if requester.Anonymous() {
		return apperr.ErrAuthenticationRequired
	}
	if requester.ID != ownerID {
		return apperr.ErrNotOwner
	}

	return nil
}

// CheckVisible lets anyone read a public record and only the owner read a private one.
func CheckVisible(visibility model.Visibility, ownerID string, requester entity.Principal) error {
	if visibility != model.VisibilityPrivate {
		return nil
	}

	return CheckOwner(ownerID, requester)
}
