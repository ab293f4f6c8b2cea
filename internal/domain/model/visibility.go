package model

type Visibility string

const (
	VisibilityPublic  Visibility = "PUBLIC"
	VisibilityPrivate Visibility = "PRIVATE"
)

// VisibilityOrDefault returns v, or PUBLIC when v is unset.
func VisibilityOrDefault(v *Visibility) Visibility {
	if v == nil || *v == "" {
		return VisibilityPublic
	}

	return *v
}
