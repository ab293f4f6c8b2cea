package handler

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"petstar/internal/domain/apperr"
	"petstar/internal/domain/dto"
	"petstar/internal/domain/entity"
	"petstar/internal/domain/model"
)

func TestVideoHandler_Create(t *testing.T) {
	t.Parallel()

	t.Run("source and thumbnail", func(t *testing.T) {
		t.Parallel()
		s := newTestServer(t)

		s.videos.On("Create", mock.Anything, entity.NewPrincipal("owner-1"), "pet-1",
			dto.VideoInfoRequest{Title: "walk", Tags: []string{"dog"}},
			mock.MatchedBy(func(f *entity.UploadFile) bool { return f != nil && f.Name == "clip.mp4" }),
			mock.MatchedBy(func(f *entity.UploadFile) bool { return f != nil && f.Name == "thumb.png" }),
		).Return("video-1", nil).Once()

		rec := s.do(multipartRequest(t, http.MethodPost, "/api/videos", "owner-1",
			field("info", `{"title":"walk","tags":["dog"]}`),
			field("petId", "pet-1"),
			file("videoSource", "clip.mp4", []byte("movie")),
			file("thumbnail", "thumb.png", []byte("png")),
		))
		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("missing source is rejected by the service", func(t *testing.T) {
		t.Parallel()
		s := newTestServer(t)

		s.videos.On("Create", mock.Anything, mock.Anything, "pet-1", mock.Anything,
			(*entity.UploadFile)(nil), (*entity.UploadFile)(nil)).Return("", apperr.ErrSourceRequired).Once()

		rec := s.do(multipartRequest(t, http.MethodPost, "/api/videos", "owner-1",
			field("info", `{"title":"walk"}`),
			field("petId", "pet-1"),
		))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, apperr.ErrSourceRequired.Error(), decodeError(t, rec).Message)
	})

	t.Run("malformed info part", func(t *testing.T) {
		t.Parallel()
		s := newTestServer(t)

		rec := s.do(multipartRequest(t, http.MethodPost, "/api/videos", "owner-1",
			field("info", `{"title":`),
			field("petId", "pet-1"),
		))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, `validation failed: malformed "info" part`, decodeError(t, rec).Message)
	})

	t.Run("unreadable mp4 hides the parser error", func(t *testing.T) {
		t.Parallel()
		s := newTestServer(t)

		s.videos.On("Create", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything,
			mock.Anything).Return("", fmt.Errorf("%w: mp4: read box header: unexpected EOF",
			apperr.ErrDurationExtract)).Once()

		rec := s.do(multipartRequest(t, http.MethodPost, "/api/videos", "owner-1",
			field("info", `{"title":"walk"}`),
			field("petId", "pet-1"),
			file("videoSource", "clip.mp4", []byte("movie")),
		))
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Equal(t, apperr.ErrDurationExtract.Error(), decodeError(t, rec).Message)
	})

	t.Run("missing pet id", func(t *testing.T) {
		t.Parallel()
		s := newTestServer(t)

		rec := s.do(multipartRequest(t, http.MethodPost, "/api/videos", "owner-1",
			field("info", `{"title":"walk"}`),
			file("videoSource", "clip.mp4", []byte("movie")),
		))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	for name, tc := range map[string]struct {
		err    error
		status int
	}{
		"not mp4":         {apperr.ErrInvalidVideoFormat, http.StatusBadRequest},
		"unreadable mp4":  {fmt.Errorf("%w: no moov", apperr.ErrDurationExtract), http.StatusUnprocessableEntity},
		"storage failure": {fmt.Errorf("%w: down", apperr.ErrStorage), http.StatusInternalServerError},
	} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			s := newTestServer(t)

			s.videos.On("Create", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything,
				mock.Anything).Return("", tc.err).Once()

			rec := s.do(multipartRequest(t, http.MethodPost, "/api/videos", "owner-1",
				field("info", `{"title":"walk"}`),
				field("petId", "pet-1"),
				file("videoSource", "clip.mov", []byte("movie")),
			))
			assert.Equal(t, tc.status, rec.Code)
		})
	}
}

func TestVideoHandler_Update(t *testing.T) {
	t.Parallel()

	t.Run("thumbnail only", func(t *testing.T) {
		t.Parallel()
		s := newTestServer(t)

		s.videos.On("Update", mock.Anything, "video-1", entity.NewPrincipal("owner-1"), dto.VideoUpdateRequest{},
			mock.MatchedBy(func(f *entity.UploadFile) bool { return f != nil && f.Name == "new.png" }),
		).Return(&model.Video{ID: "video-1"}, nil).Once()

		rec := s.do(multipartRequest(t, http.MethodPatch, "/api/videos/video-1", "owner-1",
			file("thumbnail", "new.png", []byte("png"))))
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("info only", func(t *testing.T) {
		t.Parallel()
		s := newTestServer(t)

		title := "renamed"
		s.videos.On("Update", mock.Anything, "video-1", mock.Anything, dto.VideoUpdateRequest{Title: &title},
			(*entity.UploadFile)(nil)).Return(&model.Video{ID: "video-1"}, nil).Once()

		rec := s.do(multipartRequest(t, http.MethodPatch, "/api/videos/video-1", "owner-1",
			field("info", `{"title":"renamed"}`)))
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("stranger", func(t *testing.T) {
		t.Parallel()
		s := newTestServer(t)

		s.videos.On("Update", mock.Anything, "video-1", mock.Anything, mock.Anything, mock.Anything).
			Return(nil, apperr.ErrNotOwner).Once()

		rec := s.do(multipartRequest(t, http.MethodPatch, "/api/videos/video-1", "other",
			field("info", `{}`)))
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}

func TestVideoHandler_GetAndDelete(t *testing.T) {
	t.Parallel()

	s := newTestServer(t)

	s.videos.On("Get", mock.Anything, "video-1", entity.NewPrincipal("owner-1")).
		Return(&model.Video{ID: "video-1", Status: model.VideoStatusUploading, DurationSec: 7}, nil).Once()
	s.videos.On("Delete", mock.Anything, "video-1", entity.NewPrincipal("owner-1")).Return(nil).Once()

	rec := s.do(jsonRequest(t, http.MethodGet, "/api/videos/video-1", "owner-1", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"durationSec":7`)
	assert.Contains(t, rec.Body.String(), `"status":"UPLOADING"`)

	rec = s.do(jsonRequest(t, http.MethodDelete, "/api/videos/video-1", "owner-1", nil))
	assert.Equal(t, http.StatusNoContent, rec.Code)
}
