package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/wardenapp/corrections-api/internal/models"
	"github.com/wardenapp/corrections-api/internal/services"
	"github.com/wardenapp/corrections-api/internal/types"
	"github.com/wardenapp/corrections-api/internal/utils"
	"gorm.io/gorm"
)

// PrisonHandler handles the /prison routes.
type PrisonHandler struct {
	DB *gorm.DB
}

type prisonRequest struct {
	PrisonID      string        `json:"prisonID"`
	Location      string        `json:"location"`
	Capacity      types.FlexInt `json:"capacity"`
	SecurityLevel string        `json:"securityLevel"`
}

type prisonUpdateRequest struct {
	PrisonID      *string        `json:"prisonID"`
	Location      *string        `json:"location"`
	Capacity      *types.FlexInt `json:"capacity"`
	SecurityLevel *string        `json:"securityLevel"`
}

// Create handles POST /prison/add
// @Summary Create a prison
// @Tags Prison
// @Accept json
// @Produce json
// @Param body body handlers.prisonRequest true "prison fields"
// @Success 200 {object} models.Prison
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /prison/add [post]
func (h *PrisonHandler) Create(c *fiber.Ctx) error {
	var body prisonRequest
	if err := parseBody(c, &body); err != nil {
		return utils.FromError(c, err)
	}

	switch {
	case body.PrisonID == "":
		return utils.FromError(c, types.ValidationError("Prison ID is required"))
	case body.Location == "":
		return utils.FromError(c, types.ValidationError("Location is required"))
	case int(body.Capacity) <= 0:
		return utils.FromError(c, types.ValidationError("Capacity must be a positive number"))
	case !models.ValidSecurityLevel(body.SecurityLevel):
		return utils.FromError(c, types.ValidationError("Unknown security level"))
	}

	prison, err := services.CreatePrison(h.DB, services.PrisonInput{
		PrisonID:      body.PrisonID,
		Location:      body.Location,
		Capacity:      int(body.Capacity),
		SecurityLevel: body.SecurityLevel,
	})
	if err != nil {
		return utils.FromError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(prison)
}

// List handles GET /prison/getAll
// @Summary List all prisons with cell blocks expanded
// @Tags Prison
// @Produce json
// @Success 200 {array} models.Prison
// @Router /prison/getAll [get]
func (h *PrisonHandler) List(c *fiber.Ctx) error {
	prisons, err := services.ListPrisons(h.DB)
	if err != nil {
		return utils.FromError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(prisons)
}

// Get handles GET /prison/get/:id
// @Summary Fetch one prison by id
// @Tags Prison
// @Produce json
// @Param id path string true "prison id"
// @Success 200 {object} models.Prison
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /prison/get/{id} [get]
func (h *PrisonHandler) Get(c *fiber.Ctx) error {
	prison, err := services.GetPrison(h.DB, c.Params("id"))
	if err != nil {
		return utils.FromError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(prison)
}

// Update handles PUT /prison/update/:id
// @Summary Update a prison
// @Tags Prison
// @Accept json
// @Produce json
// @Param id path string true "prison id"
// @Param body body handlers.prisonUpdateRequest true "fields to change"
// @Success 200 {object} models.Prison
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /prison/update/{id} [put]
func (h *PrisonHandler) Update(c *fiber.Ctx) error {
	var body prisonUpdateRequest
	if err := parseBody(c, &body); err != nil {
		return utils.FromError(c, err)
	}

	if body.Capacity != nil && int(*body.Capacity) <= 0 {
		return utils.FromError(c, types.ValidationError("Capacity must be a positive number"))
	}
	if body.SecurityLevel != nil && !models.ValidSecurityLevel(*body.SecurityLevel) {
		return utils.FromError(c, types.ValidationError("Unknown security level"))
	}

	up := services.PrisonUpdate{
		PrisonID:      body.PrisonID,
		Location:      body.Location,
		SecurityLevel: body.SecurityLevel,
	}
	if body.Capacity != nil {
		capacity := int(*body.Capacity)
		up.Capacity = &capacity
	}

	prison, err := services.UpdatePrison(h.DB, c.Params("id"), up)
	if err != nil {
		return utils.FromError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(prison)
}

// Delete handles DELETE /prison/delete/:id
// @Summary Delete a prison and everything housed in it
// @Tags Prison
// @Produce json
// @Param id path string true "prison id"
// @Success 200 {object} utils.DeleteResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /prison/delete/{id} [delete]
func (h *PrisonHandler) Delete(c *fiber.Ctx) error {
	if err := services.DeletePrison(h.DB, c.Params("id")); err != nil {
		return utils.FromError(c, err)
	}
	return utils.DeleteSuccessResponse(c, "Prison and all associated records removed")
}
