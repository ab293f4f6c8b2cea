package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"petstar/internal/application/usecase/abstraction"
	"petstar/internal/domain/apperr"
	"petstar/internal/domain/dto"
	"petstar/internal/presentation"
)

const (
	videoInfoPart      = "info"
	videoSourcePart    = "videoSource"
	videoThumbnailPart = "thumbnail"
	videoPetIDField    = "petId"
)

type VideoHandler struct {
	videos abstraction.VideoService
}

func NewVideoHandler(videos abstraction.VideoService) *VideoHandler {
	return &VideoHandler{
		videos: videos,
	}
}

// HandleCreate handles POST /api/videos multipart requests.
func (h *VideoHandler) HandleCreate(c echo.Context) error {
	form, err := multipartForm(c)
	if err != nil {
		return presentation.ErrorJSON(c, err)
	}

	var info dto.VideoInfoRequest
	if err := bindJSONPart(c, form, videoInfoPart, &info, true); err != nil {
		return presentation.ErrorJSON(c, err)
	}

	petID := formValue(form, videoPetIDField)
	if petID == "" {
		return presentation.ErrorJSON(c, apperr.Detail(apperr.ErrValidation, "%s is required", videoPetIDField))
	}

	id, err := h.videos.Create(c.Request().Context(), presentation.PrincipalFrom(c), petID, info,
		formFile(form, videoSourcePart), formFile(form, videoThumbnailPart))
	if err != nil {
		return presentation.ErrorJSON(c, err)
	}

	return c.JSON(http.StatusCreated, dto.MessageResponse{Message: id})
}

// HandleGet handles GET /api/videos/:id requests.
func (h *VideoHandler) HandleGet(c echo.Context) error {
	video, err := h.videos.Get(c.Request().Context(), c.Param(presentation.IDParam),
		presentation.PrincipalFrom(c))
	if err != nil {
		return presentation.ErrorJSON(c, err)
	}

	return c.JSON(http.StatusOK, dto.VideoFromModel(video))
}

// HandleUpdate handles PATCH /api/videos/:id multipart requests. Both parts are optional.
func (h *VideoHandler) HandleUpdate(c echo.Context) error {
	form, err := multipartForm(c)
	if err != nil {
		return presentation.ErrorJSON(c, err)
	}

	var info dto.VideoUpdateRequest
	if err := bindJSONPart(c, form, videoInfoPart, &info, false); err != nil {
		return presentation.ErrorJSON(c, err)
	}

	if _, err := h.videos.Update(c.Request().Context(), c.Param(presentation.IDParam),
		presentation.PrincipalFrom(c), info, formFile(form, videoThumbnailPart)); err != nil {
		return presentation.ErrorJSON(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// HandleDelete handles DELETE /api/videos/:id requests.
func (h *VideoHandler) HandleDelete(c echo.Context) error {
	if err := h.videos.Delete(c.Request().Context(), c.Param(presentation.IDParam),
		presentation.PrincipalFrom(c)); err != nil {
		return presentation.ErrorJSON(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
