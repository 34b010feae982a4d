package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/wardenapp/corrections-api/internal/services"
	"github.com/wardenapp/corrections-api/internal/types"
	"github.com/wardenapp/corrections-api/internal/utils"
	"gorm.io/gorm"
)

// VisitorHandler handles the /visitor routes.
type VisitorHandler struct {
	DB *gorm.DB
}

type visitorRequest struct {
	FullName             string `json:"fullName"`
	RelationshipToInmate string `json:"relationshipToInmate"`
	Phone                string `json:"phone"`
	Inmate               string `json:"inmate"`
}

type visitorUpdateRequest struct {
	FullName             *string `json:"fullName"`
	RelationshipToInmate *string `json:"relationshipToInmate"`
	Phone                *string `json:"phone"`
	Inmate               *string `json:"inmate"`
}

type visitRequest struct {
	Inmate string `json:"inmateId"`
	Status string `json:"visitStatus"`
	Notes  string `json:"notes"`
}

// Create handles POST /visitor/add
// @Summary Register a visitor for an inmate
// @Tags Visitor
// @Accept json
// @Produce json
// @Param body body handlers.visitorRequest true "visitor fields; inmate is the inmate record id"
// @Success 200 {object} models.Visitor
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /visitor/add [post]
func (h *VisitorHandler) Create(c *fiber.Ctx) error {
	var body visitorRequest
	if err := parseBody(c, &body); err != nil {
		return utils.FromError(c, err)
	}

	switch {
	case body.FullName == "":
		return utils.FromError(c, types.ValidationError("Full name is required"))
	case body.RelationshipToInmate == "":
		return utils.FromError(c, types.ValidationError("Relationship to inmate is required"))
	case body.Inmate == "":
		return utils.FromError(c, types.ValidationError("Inmate reference is required"))
	}

	visitor, err := services.CreateVisitor(h.DB, services.VisitorInput{
		FullName:             body.FullName,
		RelationshipToInmate: body.RelationshipToInmate,
		Phone:                body.Phone,
		Inmate:               body.Inmate,
	})
	if err != nil {
		return utils.FromError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(visitor)
}

// List handles GET /visitor/getAll
// @Summary List all visitors with inmate and visit history expanded
// @Tags Visitor
// @Produce json
// @Success 200 {array} models.Visitor
// @Router /visitor/getAll [get]
func (h *VisitorHandler) List(c *fiber.Ctx) error {
	visitors, err := services.ListVisitors(h.DB)
	if err != nil {
		return utils.FromError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(visitors)
}

// Get handles GET /visitor/get/:id
// @Summary Fetch one visitor by id
// @Tags Visitor
// @Produce json
// @Param id path string true "visitor id"
// @Success 200 {object} models.Visitor
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /visitor/get/{id} [get]
func (h *VisitorHandler) Get(c *fiber.Ctx) error {
	visitor, err := services.GetVisitor(h.DB, c.Params("id"))
	if err != nil {
		return utils.FromError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(visitor)
}

// Update handles PUT /visitor/update/:id
// @Summary Update a visitor, optionally re-registering for another inmate
// @Tags Visitor
// @Accept json
// @Produce json
// @Param id path string true "visitor id"
// @Param body body handlers.visitorUpdateRequest true "fields to change"
// @Success 200 {object} models.Visitor
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /visitor/update/{id} [put]
func (h *VisitorHandler) Update(c *fiber.Ctx) error {
	var body visitorUpdateRequest
	if err := parseBody(c, &body); err != nil {
		return utils.FromError(c, err)
	}

	visitor, err := services.UpdateVisitor(h.DB, c.Params("id"), services.VisitorUpdate{
		FullName:             body.FullName,
		RelationshipToInmate: body.RelationshipToInmate,
		Phone:                body.Phone,
		Inmate:               body.Inmate,
	})
	if err != nil {
		return utils.FromError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(visitor)
}

// AddVisit handles POST /visitor/:id/visit
// @Summary Record a visit in the visitor's history
// @Tags Visitor
// @Accept json
// @Produce json
// @Param id path string true "visitor id"
// @Param body body handlers.visitRequest true "inmateId, visitStatus, optional notes"
// @Success 200 {object} models.Visitor
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /visitor/{id}/visit [post]
func (h *VisitorHandler) AddVisit(c *fiber.Ctx) error {
	var body visitRequest
	if err := parseBody(c, &body); err != nil {
		return utils.FromError(c, err)
	}

	switch {
	case body.Inmate == "":
		return utils.FromError(c, types.ValidationError("Inmate reference is required"))
	case body.Status == "":
		return utils.FromError(c, types.ValidationError("Visit status is required"))
	}

	visitor, err := services.AddVisit(h.DB, c.Params("id"), services.VisitInput{
		Inmate: body.Inmate,
		Status: body.Status,
		Notes:  body.Notes,
	})
	if err != nil {
		return utils.FromError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(visitor)
}

// Delete handles DELETE /visitor/delete/:id
// @Summary Delete a visitor and their visit history
// @Tags Visitor
// @Produce json
// @Param id path string true "visitor id"
// @Success 200 {object} utils.DeleteResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /visitor/delete/{id} [delete]
func (h *VisitorHandler) Delete(c *fiber.Ctx) error {
	if err := services.DeleteVisitor(h.DB, c.Params("id")); err != nil {
		return utils.FromError(c, err)
	}
	return utils.DeleteSuccessResponse(c, "Visitor record deleted")
}
