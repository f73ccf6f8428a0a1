package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-contrib/sessions"
	redisStore "github.com/gin-contrib/sessions/redis"
	"github.com/gin-gonic/gin"
	"github.com/mizuki-dev/project-management-api/internal/middleware"
	"github.com/mizuki-dev/project-management-api/internal/models"
	"github.com/mizuki-dev/project-management-api/internal/repository"
	"github.com/mizuki-dev/project-management-api/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// AuthHandlerTestSuite defines the test suite for AuthHandler
type AuthHandlerTestSuite struct {
	suite.Suite
	db     *gorm.DB
	router *gin.Engine
	user   *models.User
}

// SetupTest runs before each test
func (suite *AuthHandlerTestSuite) SetupTest() {
	var err error

	suite.db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)

	err = suite.db.AutoMigrate(
		&models.UserType{},
		&models.User{},
		&models.Project{},
		&models.Task{},
	)
	suite.Require().NoError(err)

	hash, err := bcrypt.GenerateFromPassword([]byte("supersecret"), bcrypt.MinCost)
	suite.Require().NoError(err)
	suite.user = &models.User{
		Email:        "login@example.com",
		PasswordHash: string(hash),
		Username:     "login",
		Name:         "Login User",
	}
	suite.Require().NoError(suite.db.Create(suite.user).Error)

	handler := NewAuthHandler(services.NewAuthService(repository.NewUserRepository(suite.db)))

	gin.SetMode(gin.TestMode)

	mr := miniredis.RunT(suite.T())
	store, err := redisStore.NewStore(10, "tcp", mr.Addr(), "", "", []byte("test-secret"))
	suite.Require().NoError(err)

	suite.router = gin.New()
	suite.router.Use(sessions.Sessions("pm_session", store))
	suite.router.Use(middleware.ErrorHandler(slog.New(slog.NewTextHandler(io.Discard, nil))))
	suite.router.POST("/auth/login", handler.Login)
	suite.router.POST("/auth/logout", handler.Logout)
	suite.router.GET("/auth/me", middleware.RequireAuth(), handler.GetCurrentUser)
}

// TearDownTest runs after each test
func (suite *AuthHandlerTestSuite) TearDownTest() {
	sqlDB, err := suite.db.DB()
	suite.Require().NoError(err)
	sqlDB.Close()
}

func (suite *AuthHandlerTestSuite) request(method, url string, body []byte, cookies []*http.Cookie) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, url, bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, url, nil)
	}
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *AuthHandlerTestSuite) login() []*http.Cookie {
	body := []byte(`{"email":"login@example.com","password":"supersecret"}`)
	w := suite.request("POST", "/auth/login", body, nil)
	suite.Require().Equal(http.StatusOK, w.Code)
	return w.Result().Cookies()
}

func (suite *AuthHandlerTestSuite) TestLogin_Success() {
	body := []byte(`{"email":"login@example.com","password":"supersecret"}`)

	w := suite.request("POST", "/auth/login", body, nil)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	assert.NotEmpty(suite.T(), w.Result().Cookies())

	var response map[string]interface{}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(suite.T(), "login@example.com", response["email"])
}

func (suite *AuthHandlerTestSuite) TestLogin_WrongPassword() {
	body := []byte(`{"email":"login@example.com","password":"wrongpassword"}`)

	w := suite.request("POST", "/auth/login", body, nil)

	assert.Equal(suite.T(), http.StatusUnauthorized, w.Code)
	assert.Equal(suite.T(), "Incorrect email or password.", w.Body.String())
}

func (suite *AuthHandlerTestSuite) TestLogin_UnknownEmail() {
	body := []byte(`{"email":"ghost@example.com","password":"supersecret"}`)

	w := suite.request("POST", "/auth/login", body, nil)

	// Same body for unknown email and wrong password.
	assert.Equal(suite.T(), http.StatusUnauthorized, w.Code)
	assert.Equal(suite.T(), "Incorrect email or password.", w.Body.String())
}

func (suite *AuthHandlerTestSuite) TestGetCurrentUser_WithSession() {
	cookies := suite.login()

	w := suite.request("GET", "/auth/me", nil, cookies)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var response map[string]interface{}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(suite.T(), "login@example.com", response["email"])
}

func (suite *AuthHandlerTestSuite) TestLogout_InvalidatesSession() {
	cookies := suite.login()

	w := suite.request("POST", "/auth/logout", nil, cookies)
	suite.Require().Equal(http.StatusOK, w.Code)
	assert.Equal(suite.T(), "Logged out.", w.Body.String())

	me := suite.request("GET", "/auth/me", nil, cookies)
	assert.Equal(suite.T(), http.StatusUnauthorized, me.Code)
}

func TestAuthHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}
