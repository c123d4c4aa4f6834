package handlers

import (
	"errors"
	"net/http"

	"contactbook/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	errRegisterFailed = "failed to register user"
	errLoginFailed    = "failed to log in"
)

type registerRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// bindJSONOrBadRequest tries to bind the request body into dst and writes a 400 JSON on failure.
// Returns false if the request was already handled (aborted), true otherwise.
func (h *Handler) bindJSONOrBadRequest(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		if h.log != nil {
			h.log.Infow("bad_request_body", "err", err)
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return false
	}
	return true
}

// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  registerRequest  true  "Credentials"
// @Success      200  {object}  models.PublicUser
// @Failure      400  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /auth/register [post]
func (h *Handler) register(c *gin.Context) {
	var input registerRequest
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}

	user, err := h.services.SignUp(c.Request.Context(), input.Username, input.Email, input.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrDuplicateUser):
			if h.log != nil {
				h.log.Infow("auth_register_duplicate", "username", input.Username)
			}
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			// Storage or hashing failure: generic 500, detail stays in the log.
			h.logAndJSONError(c, http.StatusInternalServerError, errRegisterFailed, "auth_register_failed", err, "username", input.Username)
		}
		return
	}

	// Only the public field allowlist goes out; never the stored hash.
	c.JSON(http.StatusOK, user.Public())
}

// @Summary      Log in and receive a bearer token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  loginRequest  true  "Credentials"
// @Success      200  {object}  map[string]string  "token"
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /auth/login [post]
func (h *Handler) login(c *gin.Context) {
	var input loginRequest
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}

	token, err := h.services.GenerateToken(c.Request.Context(), input.Username, input.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			if h.log != nil {
				h.log.Infow("auth_login_failed", "username", input.Username)
			}
			// Same response for unknown user and wrong password.
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
			return
		}
		// A storage outage is not a credentials problem.
		h.logAndJSONError(c, http.StatusInternalServerError, errLoginFailed, "auth_login_error", err, "username", input.Username)
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}
