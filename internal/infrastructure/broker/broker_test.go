package broker

import (
	"context"
	"fmt"
	"net"
	"testing"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	RedisImage = "redis:7-alpine"
	StreamName = "test-stream"
	GroupName  = "test-group"
	Consumer   = "test-consumer"
)

func setupRedis(t *testing.T) string {
	t.Helper()
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        RedisImage,
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp"),
	}

	redisC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		t.Fatalf("failed to start Redis container: %v", err)
	}
	t.Cleanup(func() {
		_ = redisC.Terminate(context.Background())
	})

	host, err := redisC.Host(ctx)
	if err != nil {
		t.Fatalf("failed to get Redis container host: %v", err)
	}

	port, err := redisC.MappedPort(ctx, "6379")
	if err != nil {
		t.Fatalf("failed to get Redis container port: %v", err)
	}

	return fmt.Sprintf("redis://%s", net.JoinHostPort(host, port.Port()))
}

func newTestClient(t *testing.T) *Client {
	t.Helper()

	client, err := NewClient(Config{
		URI:        setupRedis(t),
		StreamName: StreamName,
		GroupName:  GroupName,
	})
	if err != nil {
		t.Fatalf("failed to create Redis client: %v", err)
	}
	t.Cleanup(func() {
		_ = client.Close()
	})

	return client
}
