package presentation

const (
	RequesterHeader = "X-REQUESTER-ID"
	PrincipalKey    = "principal"
	IDParam         = "id"
	ReasonTag       = "X-Reason"
)
