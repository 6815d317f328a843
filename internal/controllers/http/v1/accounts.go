package http

import (
	"errors"
	"net/url"

	"github.com/gofiber/fiber/v2"

	"weather-dashboard/internal/avatars"
	"weather-dashboard/internal/models"
	"weather-dashboard/internal/services/account"
	"weather-dashboard/internal/storage"
)

// AuthResponse pairs an account with a fresh session token.
type AuthResponse struct {
	User  *models.User `json:"user"`
	Token string       `json:"token"`
}

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type favoriteRequest struct {
	City string `json:"city"`
}

// handleRegister godoc
// @Summary Register an account
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body registerRequest true "Registration fields"
// @Success 201 {object} AuthResponse
// @Failure 400 {object} ErrorResponse "Invalid input or duplicate account"
// @Router /api/auth/register [post]
func (r *routes) handleRegister(c *fiber.Ctx) error {
	var req registerRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "Invalid request body"})
	}

	user, token, err := r.accounts.Register(c.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		return r.accountError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(AuthResponse{User: user, Token: token})
}

// handleLogin godoc
// @Summary Log in
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body loginRequest true "Credentials"
// @Success 200 {object} AuthResponse
// @Failure 401 {object} ErrorResponse "Invalid credentials"
// @Router /api/auth/login [post]
func (r *routes) handleLogin(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "Invalid request body"})
	}

	user, token, err := r.accounts.Login(c.Context(), req.Email, req.Password)
	if err != nil {
		return r.accountError(c, err)
	}

	return c.JSON(AuthResponse{User: user, Token: token})
}

// handleGetMe godoc
// @Summary Get the authenticated account
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.User
// @Failure 401 {object} ErrorResponse
// @Router /api/auth/me [get]
func (r *routes) handleGetMe(c *fiber.Ctx) error {
	user, err := r.accounts.Get(c.Context(), requestUserID(c))
	if err != nil {
		return r.accountError(c, err)
	}

	return c.JSON(user)
}

// handleUpdateMe godoc
// @Summary Update profile fields
// @Description Partial update of location, phone and date of birth. An empty dob clears the stored date.
// @Tags Auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body account.ProfileUpdate true "Fields to change"
// @Success 200 {object} models.User
// @Failure 401 {object} ErrorResponse
// @Router /api/auth/me [put]
func (r *routes) handleUpdateMe(c *fiber.Ctx) error {
	var update account.ProfileUpdate
	if err := c.BodyParser(&update); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "Invalid request body"})
	}

	user, err := r.accounts.UpdateProfile(c.Context(), requestUserID(c), update)
	if err != nil {
		return r.accountError(c, err)
	}

	return c.JSON(user)
}

// handleAddFavorite godoc
// @Summary Add a favorite location
// @Tags Auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body favoriteRequest true "City to save"
// @Success 200 {array} string
// @Failure 400 {object} ErrorResponse "Favorites limit reached"
// @Router /api/auth/me/favorites [post]
func (r *routes) handleAddFavorite(c *fiber.Ctx) error {
	var req favoriteRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "Invalid request body"})
	}

	favorites, err := r.accounts.AddFavorite(c.Context(), requestUserID(c), req.City)
	if err != nil {
		return r.accountError(c, err)
	}

	return c.JSON(favorites)
}

// handleRemoveFavorite godoc
// @Summary Remove a favorite location
// @Description Removing an absent city is a no-op
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Param city path string true "City to remove"
// @Success 200 {array} string
// @Failure 401 {object} ErrorResponse
// @Router /api/auth/me/favorites/{city} [delete]
func (r *routes) handleRemoveFavorite(c *fiber.Ctx) error {
	city, err := url.PathUnescape(c.Params("city"))
	if err != nil {
		city = c.Params("city")
	}

	favorites, err := r.accounts.RemoveFavorite(c.Context(), requestUserID(c), city)
	if err != nil {
		return r.accountError(c, err)
	}

	return c.JSON(favorites)
}

// handleUploadAvatar godoc
// @Summary Upload an avatar image
// @Description Accepts one image up to 5MB in the multipart field "avatar"
// @Tags Auth
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param avatar formData file true "Avatar image"
// @Success 200 {object} models.User
// @Failure 400 {object} ErrorResponse "Not an image or too large"
// @Router /api/auth/upload-avatar [post]
func (r *routes) handleUploadAvatar(c *fiber.Ctx) error {
	file, err := c.FormFile("avatar")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "No file uploaded"})
	}

	user, err := r.accounts.SetAvatar(c.Context(), requestUserID(c), file)
	if err != nil {
		return r.accountError(c, err)
	}

	return c.JSON(user)
}

// handleDeleteAvatar godoc
// @Summary Delete the stored avatar
// @Description Removes the stored file and resets the reference to the default sentinel
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.User
// @Failure 401 {object} ErrorResponse
// @Router /api/auth/me/avatar [delete]
func (r *routes) handleDeleteAvatar(c *fiber.Ctx) error {
	user, err := r.accounts.DeleteAvatar(c.Context(), requestUserID(c))
	if err != nil {
		return r.accountError(c, err)
	}

	return c.JSON(user)
}

// accountError maps account-service errors onto the response taxonomy:
// conflicts and rejected input are 400 with a specific message,
// credential failures are a non-specific 401, anything else is 500.
func (r *routes) accountError(c *fiber.Ctx, err error) error {
	var validation *account.ValidationError
	switch {
	case errors.As(err, &validation):
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: validation.Message})
	case errors.Is(err, account.ErrUserExists),
		errors.Is(err, account.ErrFavoritesLimit),
		errors.Is(err, avatars.ErrNotImage),
		errors.Is(err, avatars.ErrTooLarge):
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: err.Error()})
	case errors.Is(err, account.ErrInvalidCredentials):
		return c.Status(fiber.StatusUnauthorized).JSON(ErrorResponse{Error: account.ErrInvalidCredentials.Error()})
	case errors.Is(err, storage.ErrNotFound):
		// A valid token for a vanished account.
		return c.Status(fiber.StatusUnauthorized).JSON(ErrorResponse{Error: "Invalid authentication token"})
	default:
		r.l.Error(err)
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{Error: "Server error"})
	}
}
