package entity

import "strings"

// Principal is the caller identity handed to usecases by the boundary layer.
// The zero value is an anonymous caller.
type Principal struct {
	ID string
}

func NewPrincipal(id string) Principal {
	return Principal{ID: strings.TrimSpace(id)}
}

func (p Principal) Anonymous() bool {
	return strings.TrimSpace(p.ID) == ""
}
