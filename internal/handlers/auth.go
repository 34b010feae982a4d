package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/wardenapp/corrections-api/internal/auth"
	"github.com/wardenapp/corrections-api/internal/models"
	"github.com/wardenapp/corrections-api/internal/services"
	"github.com/wardenapp/corrections-api/internal/types"
	"github.com/wardenapp/corrections-api/internal/utils"
	"gorm.io/gorm"
)

// AuthHandler handles registration, login and user management routes.
type AuthHandler struct {
	DB         *gorm.DB
	Tokens     *auth.TokenIssuer
	BcryptCost int
}

// loginResponse is a user record with the signed bearer token attached.
type loginResponse struct {
	*models.User
	Token string `json:"token"`
}

// Register handles POST /auth/register
// @Summary Register a new user
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body object true "name, email, password, gender, role"
// @Success 201 {object} models.User
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var body struct {
		Name     string `json:"name"`
		Gender   string `json:"gender"`
		Email    string `json:"email"`
		Password string `json:"password"`
		Role     string `json:"role"`
	}
	if err := parseBody(c, &body); err != nil {
		return utils.FromError(c, err)
	}

	switch {
	case body.Name == "":
		return utils.FromError(c, types.ValidationError("Name is required"))
	case !validEmail(body.Email):
		return utils.FromError(c, types.ValidationError("Please include a valid email"))
	case body.Password == "":
		return utils.FromError(c, types.ValidationError("Password is required"))
	case body.Gender == "":
		return utils.FromError(c, types.ValidationError("Gender is required"))
	case !models.ValidUserRole(body.Role):
		return utils.FromError(c, types.ValidationError("Role is required"))
	}

	user, err := services.RegisterUser(h.DB, services.UserInput{
		Name:     body.Name,
		Gender:   body.Gender,
		Email:    body.Email,
		Password: body.Password,
		Role:     body.Role,
	}, h.BcryptCost)
	if err != nil {
		return utils.FromError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"msg":  "User created successfully",
		"user": user,
	})
}

// Login handles POST /auth/login
// @Summary Authenticate and obtain a bearer token
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body object true "email, password"
// @Success 200 {object} object
// @Failure 401 {object} utils.ErrorResponseStruct
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := parseBody(c, &body); err != nil {
		return utils.FromError(c, err)
	}

	if body.Email == "" || body.Password == "" {
		return utils.ErrorResponse(c, "Invalid credentials", fiber.StatusUnauthorized, "unauthenticated")
	}

	user, err := services.AuthenticateUser(h.DB, body.Email, body.Password)
	if err != nil {
		return utils.FromError(c, err)
	}

	token, err := h.Tokens.Generate(user.ID)
	if err != nil {
		return utils.FromError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(loginResponse{User: user, Token: token})
}

// ListUsers handles GET /auth/users (admin only)
// @Summary List all users
// @Tags Auth
// @Produce json
// @Success 200 {array} models.User
// @Failure 403 {object} utils.ErrorResponseStruct
// @Router /auth/users [get]
func (h *AuthHandler) ListUsers(c *fiber.Ctx) error {
	users, err := services.ListUsers(h.DB)
	if err != nil {
		return utils.FromError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(users)
}

// GetUser handles GET /auth/user/:id (admin only)
func (h *AuthHandler) GetUser(c *fiber.Ctx) error {
	user, err := services.GetUser(h.DB, c.Params("id"))
	if err != nil {
		return utils.FromError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(user)
}

// UpdateUser handles PUT /auth/user/:id (admin only)
func (h *AuthHandler) UpdateUser(c *fiber.Ctx) error {
	var body struct {
		Name     *string `json:"name"`
		Gender   *string `json:"gender"`
		Email    *string `json:"email"`
		Password *string `json:"password"`
		Role     *string `json:"role"`
	}
	if err := parseBody(c, &body); err != nil {
		return utils.FromError(c, err)
	}

	if body.Email != nil && !validEmail(*body.Email) {
		return utils.FromError(c, types.ValidationError("Please include a valid email"))
	}
	if body.Role != nil && !models.ValidUserRole(*body.Role) {
		return utils.FromError(c, types.ValidationError("Unknown role"))
	}

	user, err := services.UpdateUser(h.DB, c.Params("id"), services.UserUpdate{
		Name:     body.Name,
		Gender:   body.Gender,
		Email:    body.Email,
		Password: body.Password,
		Role:     body.Role,
	}, h.BcryptCost)
	if err != nil {
		return utils.FromError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(user)
}

// DeleteUser handles DELETE /auth/user/:id (admin only)
func (h *AuthHandler) DeleteUser(c *fiber.Ctx) error {
	if err := services.DeleteUser(h.DB, c.Params("id")); err != nil {
		return utils.FromError(c, err)
	}
	return utils.DeleteSuccessResponse(c, "User deleted")
}
