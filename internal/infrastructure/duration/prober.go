// Package duration reads the playback length of uploaded videos.
package duration

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"path/filepath"
	"strings"

	"github.com/abema/go-mp4"
	"github.com/gabriel-vasile/mimetype"

	"petstar/internal/domain/apperr"
	"petstar/internal/domain/entity"
	"petstar/pkg/logger"
)

const mp4MIME = "video/mp4"

var errInvalidTimescale = errors.New("invalid mp4: timescale is zero")

// MP4Prober reads the movie header of an MP4 file. Other containers are rejected.
type MP4Prober struct{}

func NewMP4Prober() *MP4Prober {
	return &MP4Prober{}
}

// DurationSec returns the duration rounded to the nearest second.
func (p *MP4Prober) DurationSec(_ context.Context, file *entity.UploadFile) (int, error) {
	if file.Empty() {
		return 0, apperr.ErrSourceRequired
	}

	r, err := file.Open()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", apperr.ErrDurationExtract, err)
	}
	defer r.Close()

	mp4File, err := isMP4(r, file.Name)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", apperr.ErrDurationExtract, err)
	}
	if !mp4File {
		return 0, apperr.ErrInvalidVideoFormat
	}

	info, err := mp4.Probe(r)
	if err != nil {
		logger.Warn("failed to parse mp4", "name", file.Name, "err", err)

		return 0, fmt.Errorf("%w: %w", apperr.ErrDurationExtract, err)
	}
	if info.Timescale == 0 {
		return 0, fmt.Errorf("%w: %w", apperr.ErrDurationExtract, errInvalidTimescale)
	}

	return int(math.Round(float64(info.Duration) / float64(info.Timescale))), nil
}

// isMP4 sniffs the content and falls back to the file name. r is rewound afterwards.
func isMP4(r io.ReadSeeker, name string) (bool, error) {
	mtype, err := mimetype.DetectReader(r)
	if err != nil {
		return false, err
	}
	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return false, err
	}

	if mtype.Is(mp4MIME) {
		return true, nil
	}

	return strings.EqualFold(filepath.Ext(name), ".mp4"), nil
}
