package broker

import "petstar/internal/domain/entity"

type Message interface {
	Body() string
	Event() (entity.Event, error)
	Ack() error
}
