package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/wardenapp/corrections-api/internal/models"
	"github.com/wardenapp/corrections-api/internal/services"
	"github.com/wardenapp/corrections-api/internal/types"
	"github.com/wardenapp/corrections-api/internal/utils"
	"gorm.io/gorm"
)

// CrimeHandler handles the /crime routes.
type CrimeHandler struct {
	DB *gorm.DB
}

type crimeRequest struct {
	Nature          string `json:"nature"`
	Severity        string `json:"severity"`
	LegalReferences string `json:"legalReferences"`
	Description     string `json:"description"`
	Evidence        string `json:"evidence"`
}

type crimeUpdateRequest struct {
	Nature          *string `json:"nature"`
	Severity        *string `json:"severity"`
	LegalReferences *string `json:"legalReferences"`
	Description     *string `json:"description"`
	Evidence        *string `json:"evidence"`
}

// Create handles POST /crime/add
// @Summary Create a crime record
// @Tags Crime
// @Accept json
// @Produce json
// @Param body body handlers.crimeRequest true "crime fields"
// @Success 200 {object} models.Crime
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /crime/add [post]
func (h *CrimeHandler) Create(c *fiber.Ctx) error {
	var body crimeRequest
	if err := parseBody(c, &body); err != nil {
		return utils.FromError(c, err)
	}

	switch {
	case body.Nature == "":
		return utils.FromError(c, types.ValidationError("Nature of the crime is required"))
	case !models.ValidCrimeSeverity(body.Severity):
		return utils.FromError(c, types.ValidationError("Unknown severity"))
	case body.LegalReferences == "":
		return utils.FromError(c, types.ValidationError("Legal references are required"))
	case body.Description == "":
		return utils.FromError(c, types.ValidationError("Description is required"))
	}

	crime, err := services.CreateCrime(h.DB, services.CrimeInput{
		Nature:          body.Nature,
		Severity:        body.Severity,
		LegalReferences: body.LegalReferences,
		Description:     body.Description,
		Evidence:        body.Evidence,
	})
	if err != nil {
		return utils.FromError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(crime)
}

// List handles GET /crime/getAll
// @Summary List all crimes with connected inmates expanded
// @Tags Crime
// @Produce json
// @Success 200 {array} models.Crime
// @Router /crime/getAll [get]
func (h *CrimeHandler) List(c *fiber.Ctx) error {
	crimes, err := services.ListCrimes(h.DB)
	if err != nil {
		return utils.FromError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(crimes)
}

// Get handles GET /crime/get/:id
// @Summary Fetch one crime by id
// @Tags Crime
// @Produce json
// @Param id path string true "crime id"
// @Success 200 {object} models.Crime
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /crime/get/{id} [get]
func (h *CrimeHandler) Get(c *fiber.Ctx) error {
	crime, err := services.GetCrime(h.DB, c.Params("id"))
	if err != nil {
		return utils.FromError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(crime)
}

// Update handles PUT /crime/update/:id
// @Summary Update a crime record
// @Tags Crime
// @Accept json
// @Produce json
// @Param id path string true "crime id"
// @Param body body handlers.crimeUpdateRequest true "fields to change"
// @Success 200 {object} models.Crime
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /crime/update/{id} [put]
func (h *CrimeHandler) Update(c *fiber.Ctx) error {
	var body crimeUpdateRequest
	if err := parseBody(c, &body); err != nil {
		return utils.FromError(c, err)
	}

	if body.Severity != nil && !models.ValidCrimeSeverity(*body.Severity) {
		return utils.FromError(c, types.ValidationError("Unknown severity"))
	}

	crime, err := services.UpdateCrime(h.DB, c.Params("id"), services.CrimeUpdate{
		Nature:          body.Nature,
		Severity:        body.Severity,
		LegalReferences: body.LegalReferences,
		Description:     body.Description,
		Evidence:        body.Evidence,
	})
	if err != nil {
		return utils.FromError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(crime)
}

// Delete handles DELETE /crime/delete/:id
// @Summary Delete a crime record
// @Tags Crime
// @Produce json
// @Param id path string true "crime id"
// @Success 200 {object} utils.DeleteResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /crime/delete/{id} [delete]
func (h *CrimeHandler) Delete(c *fiber.Ctx) error {
	if err := services.DeleteCrime(h.DB, c.Params("id")); err != nil {
		return utils.FromError(c, err)
	}
	return utils.DeleteSuccessResponse(c, "Crime removed")
}
