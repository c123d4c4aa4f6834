package handlers

import (
	"context"
	"net/http"

	"contactbook/internal/models"
	"contactbook/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockAuth struct {
	signUpUser    models.User
	signUpErr     error
	genTokenToken string
	genTokenErr   error
	parseID       int
	parseErr      error

	lastSignUpUsername string
	lastSignUpEmail    string
	lastSignUpPassword string
	lastGenUsername    string
	lastGenPassword    string
	lastParseToken     string
}

func (m *mockAuth) SignUp(ctx context.Context, username, email, password string) (models.User, error) {
	m.lastSignUpUsername = username
	m.lastSignUpEmail = email
	m.lastSignUpPassword = password
	return m.signUpUser, m.signUpErr
}
func (m *mockAuth) GenerateToken(ctx context.Context, username, password string) (string, error) {
	m.lastGenUsername = username
	m.lastGenPassword = password
	return m.genTokenToken, m.genTokenErr
}
func (m *mockAuth) ParseToken(token string) (int, error) {
	m.lastParseToken = token
	return m.parseID, m.parseErr
}

type mockContacts struct {
	listResp   []models.Contact
	listErr    error
	createResp models.Contact
	createErr  error
	updateResp models.Contact
	updateErr  error
	deleteErr  error

	lastListOwner   int
	lastCreateOwner int
	lastCreateIn    service.ContactInput
	lastUpdateID    int
	lastUpdateOwner int
	lastUpdateIn    service.ContactInput
	lastDeleteID    int
	lastDeleteOwner int
}

func (m *mockContacts) List(ctx context.Context, ownerID int) ([]models.Contact, error) {
	m.lastListOwner = ownerID
	return m.listResp, m.listErr
}
func (m *mockContacts) Create(ctx context.Context, ownerID int, in service.ContactInput) (models.Contact, error) {
	m.lastCreateOwner = ownerID
	m.lastCreateIn = in
	return m.createResp, m.createErr
}
func (m *mockContacts) Update(ctx context.Context, id, ownerID int, in service.ContactInput) (models.Contact, error) {
	m.lastUpdateID = id
	m.lastUpdateOwner = ownerID
	m.lastUpdateIn = in
	return m.updateResp, m.updateErr
}
func (m *mockContacts) Delete(ctx context.Context, id, ownerID int) error {
	m.lastDeleteID = id
	m.lastDeleteOwner = ownerID
	return m.deleteErr
}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service) *gin.Engine {
	h := NewHandler(s, nil)
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}

func authHeader(token string) http.Header {
	h := http.Header{}
	if token != "" {
		h.Set("Authorization", "Bearer "+token)
	}
	return h
}
