package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/wardenapp/corrections-api/internal/models"
	"github.com/wardenapp/corrections-api/internal/services"
	"github.com/wardenapp/corrections-api/internal/types"
	"github.com/wardenapp/corrections-api/internal/utils"
	"gorm.io/gorm"
)

// CellHandler handles the /cell routes.
type CellHandler struct {
	DB *gorm.DB
}

type cellRequest struct {
	CellID        string        `json:"cellID"`
	Capacity      types.FlexInt `json:"capacity"`
	SecurityLevel string        `json:"securityLevel"`
	Prison        string        `json:"prison"`
}

type cellUpdateRequest struct {
	CellID        *string        `json:"cellID"`
	Capacity      *types.FlexInt `json:"capacity"`
	SecurityLevel *string        `json:"securityLevel"`
	Prison        *string        `json:"prison"`
}

// Create handles POST /cell/add
// @Summary Create a cell block inside a prison
// @Tags Cell
// @Accept json
// @Produce json
// @Param body body handlers.cellRequest true "cell fields; prison is the parent prison id"
// @Success 200 {object} models.Cell
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /cell/add [post]
func (h *CellHandler) Create(c *fiber.Ctx) error {
	var body cellRequest
	if err := parseBody(c, &body); err != nil {
		return utils.FromError(c, err)
	}

	switch {
	case body.CellID == "":
		return utils.FromError(c, types.ValidationError("Cell ID is required"))
	case int(body.Capacity) <= 0:
		return utils.FromError(c, types.ValidationError("Capacity must be a positive number"))
	case !models.ValidSecurityLevel(body.SecurityLevel):
		return utils.FromError(c, types.ValidationError("Unknown security level"))
	case body.Prison == "":
		return utils.FromError(c, types.ValidationError("Prison reference is required"))
	}

	cell, err := services.CreateCell(h.DB, services.CellInput{
		CellID:        body.CellID,
		Capacity:      int(body.Capacity),
		SecurityLevel: body.SecurityLevel,
		Prison:        body.Prison,
	})
	if err != nil {
		return utils.FromError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(cell)
}

// List handles GET /cell/getAll
// @Summary List all cell blocks with the parent prison expanded
// @Tags Cell
// @Produce json
// @Success 200 {array} models.Cell
// @Router /cell/getAll [get]
func (h *CellHandler) List(c *fiber.Ctx) error {
	cells, err := services.ListCells(h.DB)
	if err != nil {
		return utils.FromError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(cells)
}

// Get handles GET /cell/get/:id
// @Summary Fetch one cell block by id
// @Tags Cell
// @Produce json
// @Param id path string true "cell id"
// @Success 200 {object} models.Cell
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /cell/get/{id} [get]
func (h *CellHandler) Get(c *fiber.Ctx) error {
	cell, err := services.GetCell(h.DB, c.Params("id"))
	if err != nil {
		return utils.FromError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(cell)
}

// Update handles PUT /cell/update/:id
// @Summary Update a cell block, optionally moving it to another prison
// @Tags Cell
// @Accept json
// @Produce json
// @Param id path string true "cell id"
// @Param body body handlers.cellUpdateRequest true "fields to change"
// @Success 200 {object} models.Cell
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /cell/update/{id} [put]
func (h *CellHandler) Update(c *fiber.Ctx) error {
	var body cellUpdateRequest
	if err := parseBody(c, &body); err != nil {
		return utils.FromError(c, err)
	}

	if body.Capacity != nil && int(*body.Capacity) <= 0 {
		return utils.FromError(c, types.ValidationError("Capacity must be a positive number"))
	}
	if body.SecurityLevel != nil && !models.ValidSecurityLevel(*body.SecurityLevel) {
		return utils.FromError(c, types.ValidationError("Unknown security level"))
	}

	up := services.CellUpdate{
		CellID:        body.CellID,
		SecurityLevel: body.SecurityLevel,
		Prison:        body.Prison,
	}
	if body.Capacity != nil {
		capacity := int(*body.Capacity)
		up.Capacity = &capacity
	}

	cell, err := services.UpdateCell(h.DB, c.Params("id"), up)
	if err != nil {
		return utils.FromError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(cell)
}

// Delete handles DELETE /cell/delete/:id
// @Summary Delete a cell block and every inmate housed in it
// @Tags Cell
// @Produce json
// @Param id path string true "cell id"
// @Success 200 {object} utils.DeleteResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /cell/delete/{id} [delete]
func (h *CellHandler) Delete(c *fiber.Ctx) error {
	if err := services.DeleteCell(h.DB, c.Params("id")); err != nil {
		return utils.FromError(c, err)
	}
	return utils.DeleteSuccessResponse(c, "Cell Block removed")
}
