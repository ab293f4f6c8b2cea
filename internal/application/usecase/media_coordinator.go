package usecase

import (
	"context"
	"fmt"
	"io"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"

	"petstar/internal/domain/apperr"
	"petstar/internal/domain/entity"
	"petstar/internal/domain/repository/minio"
	"petstar/internal/infrastructure/metrics"
	"petstar/pkg/logger"
	"petstar/pkg/utils"
)

const (
	SlotImages    = "images"
	SlotSource    = "source"
	SlotThumbnail = "thumbnail"
	SlotProfile   = "profile"
)

// SlotFile is a candidate upload and the slot it is stored under.
type SlotFile struct {
	Slot string
	File *entity.UploadFile
}

type UploadedKey struct {
	Slot string
	Key  string
}

// UploadedKeys keeps upload order.
type UploadedKeys []UploadedKey

func (k UploadedKeys) Keys() []string {
	keys := make([]string, 0, len(k))
	for _, u := range k {
		keys = append(keys, u.Key)
	}

	return keys
}

func (k UploadedKeys) InSlot(slot string) []string {
	keys := make([]string, 0, len(k))
	for _, u := range k {
		if u.Slot == slot {
			keys = append(keys, u.Key)
		}
	}

	return keys
}

// First returns the first key of slot, or "" when nothing was uploaded there.
func (k UploadedKeys) First(slot string) string {
	for _, u := range k {
		if u.Slot == slot {
			return u.Key
		}
	}

	return ""
}

// MediaKey builds the object key of one media file of a record.
func MediaKey(kind, id, slot, suffix, ext string) string {
	return fmt.Sprintf("%s/%s/%s/%s%s", kind, id, slot, suffix, ext)
}

// MediaCoordinator creates records that own media files. Uploads run in input order before the
// record is persisted, and every uploaded key is removed again when a later step fails.
type MediaCoordinator struct {
	uploader  minio.Uploader
	remover   minio.Remover
	newID     func() string
	newSuffix func() string
}

func NewMediaCoordinator(uploader minio.Uploader, remover minio.Remover) *MediaCoordinator {
	return &MediaCoordinator{
		uploader:  uploader,
		remover:   remover,
		newID:     uuid.NewString,
		newSuffix: uuid.NewString,
	}
}

// Create generates the record id, uploads every non-empty file and calls insert with the keys.
// On failure the original error is returned after compensation.
func (c *MediaCoordinator) Create(ctx context.Context, kind string, files []SlotFile,
	insert func(id string, keys UploadedKeys) error,
) (string, error) {
	id := c.newID()
	uploaded := make(UploadedKeys, 0, len(files))

	for _, f := range files {
		if f.File.Empty() {
			continue
		}

		key, err := c.upload(ctx, kind, id, f.Slot, f.File)
		metrics.RecordUpload(kind, f.Slot, err)
		if err != nil {
			c.compensate(ctx, kind, id, uploaded.Keys())

			return "", err
		}

		uploaded = append(uploaded, UploadedKey{Slot: f.Slot, Key: key})
	}

	if err := insert(id, uploaded); err != nil {
		c.compensate(ctx, kind, id, uploaded.Keys())

		return "", err
	}

	return id, nil
}

// Replace uploads file into a single-key slot of an existing record and calls update with the
// new key. The new object is removed when update fails. The key it replaces is left in place.
func (c *MediaCoordinator) Replace(ctx context.Context, kind, id, slot string, file *entity.UploadFile,
	update func(key string) error,
) error {
	key, err := c.upload(ctx, kind, id, slot, file)
	metrics.RecordUpload(kind, slot, err)
	if err != nil {
		return err
	}

	if err := update(key); err != nil {
		c.compensate(ctx, kind, id, []string{key})

		return err
	}

	return nil
}

func (c *MediaCoordinator) upload(ctx context.Context, kind, id, slot string,
	file *entity.UploadFile,
) (string, error) {
	r, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("%w: open %s: %w", apperr.ErrStorage, file.Name, err)
	}
	defer r.Close()

	mtype, err := mimetype.DetectReader(r)
	if err != nil {
		return "", fmt.Errorf("%w: detect type of %s: %w", apperr.ErrStorage, file.Name, err)
	}
	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return "", fmt.Errorf("%w: rewind %s: %w", apperr.ErrStorage, file.Name, err)
	}

	key := MediaKey(kind, id, slot, c.newSuffix(), utils.ExtensionForMIME(mtype.String()))
	stored, err := c.uploader.Put(ctx, key, r, file.Size, mtype.String())
	if err != nil {
		return "", fmt.Errorf("%w: %w", apperr.ErrStorage, err)
	}

	return stored, nil
}

// compensate tries every key exactly once. Failures are logged and never returned.
func (c *MediaCoordinator) compensate(ctx context.Context, kind, id string, keys []string) {
	ctx = context.WithoutCancel(ctx)

	for _, key := range keys {
		err := c.remover.Remove(ctx, key)
		metrics.RecordCompensation(kind, err)
		if err != nil {
			logger.Error("failed to remove uploaded media after failed creation",
				"kind", kind, "id", id, "key", key, "err", err)
		}
	}
}

// RemoveAll deletes the media of a removed record in one batch. Failures are logged and never
// returned.
func (c *MediaCoordinator) RemoveAll(ctx context.Context, kind, id string, keys []string) {
	if len(keys) == 0 {
		return
	}

	for key, err := range c.remover.RemoveMany(ctx, keys) {
		logger.Error("failed to remove media of deleted record",
			"kind", kind, "id", id, "key", key, "err", err)
	}
}
