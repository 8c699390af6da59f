package server

import (
	"crudboard/internal/auth"
	"crudboard/internal/models"
	"crudboard/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// Signup handles POST /signup
// @Summary User signup
// @Description Register a new user account
// @Tags auth
// @Accept json
// @Produce json
// @Param request body validation.SignUpRequest true "Signup request"
// @Success 201 {object} object{userId=string,userName=string}
// @Failure 400 {object} models.ErrorResponse
// @Failure 422 {object} models.ErrorResponse
// @Router /signup [post]
func (s *Server) Signup(c *fiber.Ctx) error {
	var req validation.SignUpRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c,
			models.NewValidationError("Invalid request body"))
	}

	if err := validation.ValidateSignUp(&req); err != nil {
		return models.RespondWithError(c,
			models.NewValidationError(err.Error()))
	}

	// Check if the login ID is already taken
	existing, err := s.userRepo.GetByUserID(c.Context(), req.UserID)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	if existing != nil {
		return models.RespondWithError(c,
			models.NewConflictError("User ID already exists"))
	}

	hashedPassword, err := validation.HashPassword(req.Password)
	if err != nil {
		return models.RespondWithError(c, models.NewInternalError(err))
	}

	user := &models.User{
		UserID:   req.UserID,
		UserName: req.UserName,
		Password: hashedPassword,
	}

	if createErr := s.userRepo.Create(c.Context(), user); createErr != nil {
		return models.RespondWithError(c, createErr)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"userId":   user.UserID,
		"userName": user.UserName,
	})
}

// Login handles POST /login
// @Summary User login
// @Description Authenticate user and return a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body validation.LoginRequest true "Login credentials"
// @Success 200 {object} object{message=string,access_token=string,token_type=string,remember_me=bool}
// @Failure 401 {object} models.ErrorResponse
// @Failure 422 {object} models.ErrorResponse
// @Router /login [post]
func (s *Server) Login(c *fiber.Ctx) error {
	var req validation.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c,
			models.NewValidationError("Invalid request body"))
	}

	if err := validation.ValidateLogin(&req); err != nil {
		return models.RespondWithError(c,
			models.NewValidationError(err.Error()))
	}

	user, err := s.userRepo.GetByUserID(c.Context(), req.UserID)
	if err != nil {
		return models.RespondWithError(c, err)
	}

	// Unknown ID and wrong password are indistinguishable to the caller
	if user == nil || !validation.CheckPassword(req.Password, user.Password) {
		return models.RespondWithError(c,
			models.NewUnauthorizedError("Invalid userId or password"))
	}

	token, err := auth.Issue(s.config.JWTSecret, user.ID, user.UserName, req.RememberMe)
	if err != nil {
		return models.RespondWithError(c, models.NewInternalError(err))
	}

	return c.JSON(fiber.Map{
		"message":      "Login successful",
		"access_token": token,
		"token_type":   "bearer",
		"remember_me":  req.RememberMe,
		"user": fiber.Map{
			"userIdx":  user.ID,
			"userName": user.UserName,
		},
	})
}
