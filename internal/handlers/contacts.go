package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"contactbook/internal/service"

	"github.com/gin-gonic/gin"
)

// Common response/status constants to avoid magic strings and typos.
const (
	msgContactDeleted  = "Contact deleted"
	errContactNotFound = "Contact not found"
	errListContacts    = "failed to load contacts"
	errCreateContact   = "failed to create contact"
	errUpdateContact   = "failed to update contact"
	errDeleteContact   = "failed to delete contact"
	errInvalidID       = "invalid contact id"
	errUnauthenticated = "unauthenticated"
)

// Request DTO shared by create and update (update is a full replace).
type contactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required"`
	Phone   string `json:"phone" binding:"required"`
	Address string `json:"address" binding:"required"`
}

func (r contactRequest) toInput() service.ContactInput {
	return service.ContactInput{
		Name:    r.Name,
		Email:   r.Email,
		Phone:   r.Phone,
		Address: r.Address,
	}
}

// Centralized error logging and response.
func (h *Handler) logAndJSONError(c *gin.Context, httpCode int, userMsg, logKey string, err error, kv ...interface{}) {
	if h.log != nil && err != nil {
		fields := append([]interface{}{"err", err}, kv...)
		h.log.Errorw(logKey, fields...)
	}
	c.JSON(httpCode, gin.H{"error": userMsg})
}

// contactID parses the :id path parameter; writes 400 and returns false on
// anything that is not a positive integer.
func (h *Handler) contactID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidID})
		return 0, false
	}
	return id, true
}

// mustCallerID fetches the verified user id set by the middleware. Absence
// means the route was wired without the middleware, so treat it as 401.
func (h *Handler) mustCallerID(c *gin.Context) (int, bool) {
	uid, ok := callerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": errUnauthenticated})
		return 0, false
	}
	return uid, true
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}

// @Summary      List the caller's contacts
// @Tags         contacts
// @Produce      json
// @Success      200  {array}   models.Contact
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /contacts [get]
// @Security     BearerAuth
func (h *Handler) listContacts(c *gin.Context) {
	uid, ok := h.mustCallerID(c)
	if !ok {
		return
	}

	contacts, err := h.services.Contacts.List(c.Request.Context(), uid)
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errListContacts, "contacts_list_failed", err, "owner", uid)
		return
	}
	// contacts is never nil; an owner with no entries gets [].
	c.JSON(http.StatusOK, contacts)
}

// @Summary      Create a contact
// @Tags         contacts
// @Accept       json
// @Produce      json
// @Param        body  body  contactRequest  true  "Contact fields"
// @Success      200  {object}  models.Contact
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /contacts [post]
// @Security     BearerAuth
func (h *Handler) createContact(c *gin.Context) {
	uid, ok := h.mustCallerID(c)
	if !ok {
		return
	}
	var req contactRequest
	if ok := h.bindJSONOrBadRequest(c, &req); !ok {
		return
	}

	contact, err := h.services.Contacts.Create(c.Request.Context(), uid, req.toInput())
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.logAndJSONError(c, http.StatusInternalServerError, errCreateContact, "contacts_create_failed", err, "owner", uid)
		return
	}
	c.JSON(http.StatusOK, contact)
}

// @Summary      Update a contact (full replace)
// @Tags         contacts
// @Accept       json
// @Produce      json
// @Param        id    path  int             true  "Contact id"
// @Param        body  body  contactRequest  true  "Contact fields"
// @Success      200  {object}  models.Contact
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /contacts/{id} [put]
// @Security     BearerAuth
func (h *Handler) updateContact(c *gin.Context) {
	uid, ok := h.mustCallerID(c)
	if !ok {
		return
	}
	id, ok := h.contactID(c)
	if !ok {
		return
	}
	var req contactRequest
	if ok := h.bindJSONOrBadRequest(c, &req); !ok {
		return
	}

	contact, err := h.services.Contacts.Update(c.Request.Context(), id, uid, req.toInput())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrContactNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": errContactNotFound})
		case errors.Is(err, service.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			h.logAndJSONError(c, http.StatusInternalServerError, errUpdateContact, "contacts_update_failed", err, "owner", uid, "id", id)
		}
		return
	}
	c.JSON(http.StatusOK, contact)
}

// @Summary      Delete a contact
// @Tags         contacts
// @Produce      json
// @Param        id  path  int  true  "Contact id"
// @Success      200  {object}  map[string]string  "message"
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /contacts/{id} [delete]
// @Security     BearerAuth
func (h *Handler) deleteContact(c *gin.Context) {
	uid, ok := h.mustCallerID(c)
	if !ok {
		return
	}
	id, ok := h.contactID(c)
	if !ok {
		return
	}

	if err := h.services.Contacts.Delete(c.Request.Context(), id, uid); err != nil {
		if errors.Is(err, service.ErrContactNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": errContactNotFound})
			return
		}
		h.logAndJSONError(c, http.StatusInternalServerError, errDeleteContact, "contacts_delete_failed", err, "owner", uid, "id", id)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": msgContactDeleted})
}
