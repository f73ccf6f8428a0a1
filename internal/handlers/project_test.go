package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mizuki-dev/project-management-api/internal/constants"
	"github.com/mizuki-dev/project-management-api/internal/middleware"
	"github.com/mizuki-dev/project-management-api/internal/models"
	"github.com/mizuki-dev/project-management-api/internal/repository"
	"github.com/mizuki-dev/project-management-api/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// ProjectHandlerTestSuite defines the test suite for ProjectHandler
type ProjectHandlerTestSuite struct {
	suite.Suite
	db      *gorm.DB
	handler *ProjectHandler
	router  *gin.Engine
}

const testActorID uint64 = 11

// SetupTest runs before each test
func (suite *ProjectHandlerTestSuite) SetupTest() {
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

	suite.handler = NewProjectHandler(services.NewProjectService(repository.NewProjectRepository(suite.db)))

	gin.SetMode(gin.TestMode)

	suite.router = gin.New()
	suite.router.Use(middleware.ErrorHandler(slog.New(slog.NewTextHandler(io.Discard, nil))))
	suite.router.Use(func(c *gin.Context) {
		c.Set(constants.ContextKeyUserID, testActorID)
	})
	suite.router.POST("/projects/", suite.handler.CreateProject)
	suite.router.GET("/projects/", suite.handler.ListProjects)
	suite.router.GET("/projects/:project_id", suite.handler.GetProject)
	suite.router.PUT("/projects/:project_id", suite.handler.UpdateProject)
	suite.router.DELETE("/projects/:project_id", suite.handler.DeleteProject)
}

// TearDownTest runs after each test
func (suite *ProjectHandlerTestSuite) TearDownTest() {
	sqlDB, err := suite.db.DB()
	suite.Require().NoError(err)
	sqlDB.Close()
}

func (suite *ProjectHandlerTestSuite) createTestProject() *models.Project {
	start := time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)
	due := time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC)
	project := &models.Project{
		Name:      "Website relaunch",
		Subject:   "Marketing",
		StartDate: &start,
		DueDate:   &due,
	}
	suite.Require().NoError(suite.db.Create(project).Error)
	return project
}

func (suite *ProjectHandlerTestSuite) request(method, url string, body []byte) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, url, bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, url, nil)
	}
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *ProjectHandlerTestSuite) TestCreateProject_StampsActor() {
	body := []byte(`{"name":"Website relaunch","subject":"Marketing"}`)

	w := suite.request("POST", "/projects/", body)

	assert.Equal(suite.T(), http.StatusCreated, w.Code)

	var response map[string]interface{}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(suite.T(), "Website relaunch", response["name"])
	assert.EqualValues(suite.T(), testActorID, response["created_by"])
}

func (suite *ProjectHandlerTestSuite) TestCreateProject_MissingName() {
	w := suite.request("POST", "/projects/", []byte(`{"subject":"Marketing"}`))

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
	assert.Equal(suite.T(), "Invalid request body.", w.Body.String())
}

func (suite *ProjectHandlerTestSuite) TestListProjects_Envelope() {
	suite.createTestProject()
	suite.createTestProject()
	suite.createTestProject()

	w := suite.request("GET", "/projects/?page=2&page_size=2", nil)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var response map[string]interface{}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))

	items := response["items"].([]interface{})
	assert.Len(suite.T(), items, 1)

	meta := response["meta"].(map[string]interface{})
	assert.EqualValues(suite.T(), 2, meta["page"])
	assert.EqualValues(suite.T(), 3, meta["total"])
	assert.EqualValues(suite.T(), 2, meta["total_pages"])
	assert.Equal(suite.T(), false, meta["has_next"])
	assert.Equal(suite.T(), true, meta["has_prev"])
}

func (suite *ProjectHandlerTestSuite) TestGetProject_NotFound() {
	w := suite.request("GET", "/projects/404", nil)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
	assert.Equal(suite.T(), "Not found project with id=404.", w.Body.String())
}

func (suite *ProjectHandlerTestSuite) TestUpdateProject_PartialUpdate() {
	project := suite.createTestProject()
	body := []byte(`{"name":"New"}`)

	w := suite.request("PUT", fmt.Sprintf("/projects/%d", project.ID), body)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var updated models.Project
	suite.Require().NoError(suite.db.First(&updated, project.ID).Error)
	assert.Equal(suite.T(), "New", updated.Name)
	assert.Equal(suite.T(), "Marketing", updated.Subject)
	suite.Require().NotNil(updated.StartDate)
	suite.Require().NotNil(updated.DueDate)
	suite.Require().NotNil(updated.UpdatedBy)
	assert.Equal(suite.T(), testActorID, *updated.UpdatedBy)
}

func (suite *ProjectHandlerTestSuite) TestDeleteProject_Confirmation() {
	project := suite.createTestProject()

	w := suite.request("DELETE", fmt.Sprintf("/projects/%d", project.ID), nil)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	assert.Equal(suite.T(), fmt.Sprintf("Project with id=%d deleted.", project.ID), w.Body.String())

	var count int64
	suite.db.Model(&models.Project{}).Where("id = ?", project.ID).Count(&count)
	assert.Equal(suite.T(), int64(0), count)
}

func TestProjectHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ProjectHandlerTestSuite))
}
