package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/wardenapp/corrections-api/internal/services"
	"github.com/wardenapp/corrections-api/internal/types"
	"github.com/wardenapp/corrections-api/internal/utils"
	"gorm.io/gorm"
)

// InmateHandler handles the /inmate routes.
type InmateHandler struct {
	DB *gorm.DB
}

type inmateRequest struct {
	InmateID       string `json:"inmateId"`
	FullName       string `json:"fullName"`
	DateOfBirth    string `json:"dateOfBirth"`
	CrimeCommitted string `json:"crimeCommitted"`
	CellBlock      string `json:"cellBlock"`
	MedicalHistory string `json:"medicalHistory"`
}

type inmateUpdateRequest struct {
	InmateID       *string `json:"inmateId"`
	FullName       *string `json:"fullName"`
	DateOfBirth    *string `json:"dateOfBirth"`
	CrimeCommitted *string `json:"crimeCommitted"`
	CellBlock      *string `json:"cellBlock"`
	MedicalHistory *string `json:"medicalHistory"`
}

// validDate reports whether s is a parsable YYYY-MM-DD date.
func validDate(s string) bool {
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}

// Create handles POST /inmate/add
// @Summary Create an inmate assigned to a cell block and a crime record
// @Tags Inmate
// @Accept json
// @Produce json
// @Param body body handlers.inmateRequest true "inmate fields; cellBlock and crimeCommitted are record ids"
// @Success 200 {object} models.Inmate
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /inmate/add [post]
func (h *InmateHandler) Create(c *fiber.Ctx) error {
	var body inmateRequest
	if err := parseBody(c, &body); err != nil {
		return utils.FromError(c, err)
	}

	switch {
	case body.InmateID == "":
		return utils.FromError(c, types.ValidationError("Inmate ID is required"))
	case body.FullName == "":
		return utils.FromError(c, types.ValidationError("Full name is required"))
	case !validDate(body.DateOfBirth):
		return utils.FromError(c, types.ValidationError("Date of birth must be a valid date"))
	case body.CrimeCommitted == "":
		return utils.FromError(c, types.ValidationError("Crime reference is required"))
	case body.CellBlock == "":
		return utils.FromError(c, types.ValidationError("Cell Block reference is required"))
	}

	inmate, err := services.CreateInmate(h.DB, services.InmateInput{
		InmateID:       body.InmateID,
		FullName:       body.FullName,
		DateOfBirth:    body.DateOfBirth,
		CrimeCommitted: body.CrimeCommitted,
		CellBlock:      body.CellBlock,
		MedicalHistory: body.MedicalHistory,
	})
	if err != nil {
		return utils.FromError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(inmate)
}

// List handles GET /inmate/getAll
// @Summary List all inmates with crime and cell block expanded
// @Tags Inmate
// @Produce json
// @Success 200 {array} models.Inmate
// @Router /inmate/getAll [get]
func (h *InmateHandler) List(c *fiber.Ctx) error {
	inmates, err := services.ListInmates(h.DB)
	if err != nil {
		return utils.FromError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(inmates)
}

// Get handles GET /inmate/get/:id
// @Summary Fetch one inmate by id
// @Tags Inmate
// @Produce json
// @Param id path string true "inmate id"
// @Success 200 {object} models.Inmate
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /inmate/get/{id} [get]
func (h *InmateHandler) Get(c *fiber.Ctx) error {
	inmate, err := services.GetInmate(h.DB, c.Params("id"))
	if err != nil {
		return utils.FromError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(inmate)
}

// Update handles PUT /inmate/update/:id
// @Summary Update an inmate, optionally reassigning cell block or crime
// @Tags Inmate
// @Accept json
// @Produce json
// @Param id path string true "inmate id"
// @Param body body handlers.inmateUpdateRequest true "fields to change"
// @Success 200 {object} models.Inmate
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /inmate/update/{id} [put]
func (h *InmateHandler) Update(c *fiber.Ctx) error {
	var body inmateUpdateRequest
	if err := parseBody(c, &body); err != nil {
		return utils.FromError(c, err)
	}

	if body.DateOfBirth != nil && !validDate(*body.DateOfBirth) {
		return utils.FromError(c, types.ValidationError("Date of birth must be a valid date"))
	}

	inmate, err := services.UpdateInmate(h.DB, c.Params("id"), services.InmateUpdate{
		InmateID:       body.InmateID,
		FullName:       body.FullName,
		DateOfBirth:    body.DateOfBirth,
		CrimeCommitted: body.CrimeCommitted,
		CellBlock:      body.CellBlock,
		MedicalHistory: body.MedicalHistory,
	})
	if err != nil {
		return utils.FromError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(inmate)
}

// Delete handles DELETE /inmate/delete/:id
// @Summary Delete an inmate record
// @Tags Inmate
// @Produce json
// @Param id path string true "inmate id"
// @Success 200 {object} utils.DeleteResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /inmate/delete/{id} [delete]
func (h *InmateHandler) Delete(c *fiber.Ctx) error {
	if err := services.DeleteInmate(h.DB, c.Params("id")); err != nil {
		return utils.FromError(c, err)
	}
	return utils.DeleteSuccessResponse(c, "Inmate removed")
}
