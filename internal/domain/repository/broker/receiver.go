package broker

import "context"

type Receiver interface {
	Messages(ctx context.Context, consumer string) (<-chan Message, error)
}
