package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"petstar/internal/application/usecase/abstraction"
	"petstar/internal/domain/dto"
	"petstar/internal/presentation"
)

const (
	postingRequestPart = "request"
	postingImagesPart  = "images"
)

type PostingHandler struct {
	postings abstraction.PostingService
}

func NewPostingHandler(postings abstraction.PostingService) *PostingHandler {
	return &PostingHandler{
		postings: postings,
	}
}

// HandleCreate handles POST /api/posts multipart requests.
func (h *PostingHandler) HandleCreate(c echo.Context) error {
	form, err := multipartForm(c)
	if err != nil {
		return presentation.ErrorJSON(c, err)
	}

	var req dto.PostingRequest
	if err := bindJSONPart(c, form, postingRequestPart, &req, true); err != nil {
		return presentation.ErrorJSON(c, err)
	}

	id, err := h.postings.Create(c.Request().Context(), presentation.PrincipalFrom(c), req,
		formFiles(form, postingImagesPart))
	if err != nil {
		return presentation.ErrorJSON(c, err)
	}

	return c.JSON(http.StatusCreated, dto.MessageResponse{Message: id})
}

// HandleGet handles GET /api/posts/:id requests.
func (h *PostingHandler) HandleGet(c echo.Context) error {
	posting, err := h.postings.Get(c.Request().Context(), c.Param(presentation.IDParam),
		presentation.PrincipalFrom(c))
	if err != nil {
		return presentation.ErrorJSON(c, err)
	}

	return c.JSON(http.StatusOK, dto.PostingFromModel(posting))
}

// HandleUpdate handles PATCH /api/posts/:id JSON requests.
func (h *PostingHandler) HandleUpdate(c echo.Context) error {
	var req dto.PostingUpdateRequest
	if err := bindJSON(c, &req); err != nil {
		return presentation.ErrorJSON(c, err)
	}

	if _, err := h.postings.Update(c.Request().Context(), c.Param(presentation.IDParam),
		presentation.PrincipalFrom(c), req); err != nil {
		return presentation.ErrorJSON(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// HandleDelete handles DELETE /api/posts/:id requests.
func (h *PostingHandler) HandleDelete(c echo.Context) error {
	if err := h.postings.Delete(c.Request().Context(), c.Param(presentation.IDParam),
		presentation.PrincipalFrom(c)); err != nil {
		return presentation.ErrorJSON(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
