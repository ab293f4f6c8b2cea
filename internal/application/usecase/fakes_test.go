package usecase

import (
	"context"
	"fmt"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"petstar/internal/domain/apperr"
	"petstar/internal/domain/entity"
	"petstar/internal/domain/model"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01")

func pngFile(name string) *entity.UploadFile {
	return entity.NewUploadFileFromBytes(name, pngHeader)
}

type fakePut struct {
	key         string
	contentType string
	size        int64
	body        []byte
}

type fakeUploader struct {
	mu       sync.Mutex
	attempts int
	failAt   int
	err      error
	puts     []fakePut
}

func (u *fakeUploader) Put(_ context.Context, key string, body io.Reader, size int64,
	contentType string,
) (string, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	u.attempts++
	if u.failAt == u.attempts {
		return "", u.err
	}

	data, err := io.ReadAll(body)
	if err != nil {
		return "", err
	}
	u.puts = append(u.puts, fakePut{key: key, contentType: contentType, size: size, body: data})

	return key, nil
}

func (u *fakeUploader) keys() []string {
	keys := make([]string, 0, len(u.puts))
	for _, p := range u.puts {
		keys = append(keys, p.key)
	}

	return keys
}

type fakeRemover struct {
	mu      sync.Mutex
	errs    map[string]error
	removed []string
	batches [][]string
}

func (r *fakeRemover) Remove(_ context.Context, key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.removed = append(r.removed, key)

	return r.errs[key]
}

func (r *fakeRemover) RemoveMany(_ context.Context, keys []string) map[string]error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.batches = append(r.batches, append([]string(nil), keys...))
	failed := make(map[string]error)
	for _, key := range keys {
		if err := r.errs[key]; err != nil {
			failed[key] = err
		}
	}

	return failed
}

// memRepo stores copies so a test only sees what was explicitly written.
type memRepo[T any] struct {
	mu        sync.Mutex
	idOf      func(*T) string
	records   map[string]T
	inserts   int
	updates   int
	deletes   int
	insertErr error
	updateErr error
}

func newMemRepo[T any](idOf func(*T) string) *memRepo[T] {
	return &memRepo[T]{
		idOf:    idOf,
		records: make(map[string]T),
	}
}

func (r *memRepo[T]) GetByID(_ context.Context, id string) (*T, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	record, ok := r.records[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", apperr.ErrNotFound, id)
	}

	return &record, nil
}

func (r *memRepo[T]) Insert(_ context.Context, record *T) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.inserts++
	if r.insertErr != nil {
		return r.insertErr
	}
	r.records[r.idOf(record)] = *record

	return nil
}

func (r *memRepo[T]) Update(_ context.Context, record *T) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.updates++
	if r.updateErr != nil {
		return r.updateErr
	}
	id := r.idOf(record)
	if _, ok := r.records[id]; !ok {
		return fmt.Errorf("%w: %s", apperr.ErrNotFound, id)
	}
	r.records[id] = *record

	return nil
}

func (r *memRepo[T]) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.records[id]; !ok {
		return fmt.Errorf("%w: %s", apperr.ErrNotFound, id)
	}
	r.deletes++
	delete(r.records, id)

	return nil
}

func (r *memRepo[T]) put(record T) {
	r.records[r.idOf(&record)] = record
}

type memUserRepo struct {
	*memRepo[model.User]
}

func (r *memUserRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.records {
		if u.Email == email {
			return true, nil
		}
	}

	return false, nil
}

type mockPublisher struct {
	mock.Mock
}

func (m *mockPublisher) Publish(ctx context.Context, event entity.Event) error {
	args := m.Called(ctx, event)

	return args.Error(0)
}

func newMockPublisher(t *testing.T) *mockPublisher {
	t.Helper()

	publisher := &mockPublisher{}
	publisher.On("Publish", mock.Anything, mock.Anything).Return(nil).Maybe()

	return publisher
}

func eventOf(eventType entity.EventType, id string) any {
	return mock.MatchedBy(func(e entity.Event) bool {
		return e.Type == eventType && e.ID == id
	})
}

type fakeProber struct {
	calls    int
	duration int
	err      error
}

func (p *fakeProber) DurationSec(_ context.Context, _ *entity.UploadFile) (int, error) {
	p.calls++

	return p.duration, p.err
}

type fixedClock struct {
	now time.Time
}

func (c *fixedClock) Now() time.Time {
	return c.now
}

func (c *fixedClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

func newTestCoordinator(uploader *fakeUploader, remover *fakeRemover, id string) *MediaCoordinator {
	c := NewMediaCoordinator(uploader, remover)
	c.newID = func() string { return id }

	return c
}
