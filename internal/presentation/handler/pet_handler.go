package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"petstar/internal/application/usecase/abstraction"
	"petstar/internal/domain/dto"
	"petstar/internal/presentation"
)

const (
	petDataPart  = "data"
	petImagePart = "image"
)

type PetHandler struct {
	pets abstraction.PetService
}

func NewPetHandler(pets abstraction.PetService) *PetHandler {
	return &PetHandler{
		pets: pets,
	}
}

// HandleCreate handles POST /api/pets multipart requests.
func (h *PetHandler) HandleCreate(c echo.Context) error {
	form, err := multipartForm(c)
	if err != nil {
		return presentation.ErrorJSON(c, err)
	}

	var req dto.PetRequest
	if err := bindJSONPart(c, form, petDataPart, &req, true); err != nil {
		return presentation.ErrorJSON(c, err)
	}

	id, err := h.pets.Create(c.Request().Context(), presentation.PrincipalFrom(c), req,
		formFile(form, petImagePart))
	if err != nil {
		return presentation.ErrorJSON(c, err)
	}

	return c.JSON(http.StatusCreated, dto.MessageResponse{Message: id})
}

// HandleGet handles GET /api/pets/:id requests.
func (h *PetHandler) HandleGet(c echo.Context) error {
	pet, err := h.pets.Get(c.Request().Context(), c.Param(presentation.IDParam))
	if err != nil {
		return presentation.ErrorJSON(c, err)
	}

	return c.JSON(http.StatusOK, dto.PetFromModel(pet))
}

// HandleUpdate handles PUT /api/pets/:id multipart requests.
func (h *PetHandler) HandleUpdate(c echo.Context) error {
	form, err := multipartForm(c)
	if err != nil {
		return presentation.ErrorJSON(c, err)
	}

	var req dto.PetRequest
	if err := bindJSONPart(c, form, petDataPart, &req, true); err != nil {
		return presentation.ErrorJSON(c, err)
	}

	pet, err := h.pets.Update(c.Request().Context(), c.Param(presentation.IDParam), req,
		formFile(form, petImagePart))
	if err != nil {
		return presentation.ErrorJSON(c, err)
	}

	return c.JSON(http.StatusOK, dto.PetFromModel(pet))
}

// HandleDelete handles DELETE /api/pets/:id requests.
func (h *PetHandler) HandleDelete(c echo.Context) error {
	if err := h.pets.Delete(c.Request().Context(), c.Param(presentation.IDParam)); err != nil {
		return presentation.ErrorJSON(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
