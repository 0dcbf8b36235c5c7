package transport

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/niklvrr/DevProjects/internal/domain"
	"github.com/niklvrr/DevProjects/internal/transport/dto/request"
	"github.com/niklvrr/DevProjects/internal/transport/handler"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type mockChecker struct {
	mock.Mock
}

func (m *mockChecker) Exists(ctx context.Context, entity domain.Entity, key any) (bool, error) {
	args := m.Called(ctx, entity, key)
	return args.Bool(0), args.Error(1)
}

type mockDeveloperService struct {
	mock.Mock
	handler.DeveloperService
}

func (m *mockDeveloperService) Get(ctx context.Context, id int64) (*domain.DeveloperWithInfo, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(*domain.DeveloperWithInfo), args.Error(1)
}

func (m *mockDeveloperService) UpdateInfo(ctx context.Context, developerId int64, req *request.UpdateDeveloperInfoRequest) (*domain.DeveloperInfo, error) {
	args := m.Called(ctx, developerId, req)
	return args.Get(0).(*domain.DeveloperInfo), args.Error(1)
}

type mockProjectService struct {
	mock.Mock
	handler.ProjectService
}

func (m *mockProjectService) RemoveTechnology(ctx context.Context, projectId int64, techName string) error {
	args := m.Called(ctx, projectId, techName)
	return args.Error(0)
}

type okPinger struct{}

func (okPinger) Ping(context.Context) error { return nil }

func newTestRouter(checker *mockChecker, devs *mockDeveloperService, projects *mockProjectService) http.Handler {
	log := zap.NewNop()
	return NewRouter(
		handler.NewDeveloperHandler(devs, log),
		handler.NewProjectHandler(projects, log),
		handler.NewHealthHandler(okPinger{}, log),
		checker,
		time.Second,
		log,
	)
}

func TestRouter_DeveloperGate(t *testing.T) {
	checker := new(mockChecker)
	devs := new(mockDeveloperService)
	router := newTestRouter(checker, devs, new(mockProjectService))

	checker.On("Exists", mock.Anything, domain.EntityDeveloper, int64(1)).Return(true, nil)
	checker.On("Exists", mock.Anything, domain.EntityDeveloper, int64(2)).Return(false, nil)
	devs.On("Get", mock.Anything, int64(1)).Return(&domain.DeveloperWithInfo{DeveloperId: 1}, nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/developers/1", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/developers/2", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "developer not found")

	devs.AssertNumberOfCalls(t, "Get", 1)
}

func TestRouter_DeveloperInfoGateRunsAfterDeveloperGate(t *testing.T) {
	checker := new(mockChecker)
	devs := new(mockDeveloperService)
	router := newTestRouter(checker, devs, new(mockProjectService))

	checker.On("Exists", mock.Anything, domain.EntityDeveloper, int64(3)).Return(true, nil)
	checker.On("Exists", mock.Anything, domain.EntityDeveloperInfo, int64(3)).Return(false, nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPatch, "/developers/3/infos", strings.NewReader(`{"preferredOS":"Linux"}`)))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "developer info not found")
	devs.AssertNotCalled(t, "UpdateInfo")
	checker.AssertExpectations(t)
}

func TestRouter_RemoveTechnologyGates(t *testing.T) {
	checker := new(mockChecker)
	projects := new(mockProjectService)
	router := newTestRouter(checker, new(mockDeveloperService), projects)

	checker.On("Exists", mock.Anything, domain.EntityTechnology, "React").Return(true, nil)
	checker.On("Exists", mock.Anything, domain.EntityProject, int64(4)).Return(true, nil)
	projects.On("RemoveTechnology", mock.Anything, int64(4), "React").Return(nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/projects/4/technologies/React", nil))

	assert.Equal(t, http.StatusNoContent, w.Code)
	projects.AssertExpectations(t)
	checker.AssertExpectations(t)
}

func TestRouter_Health(t *testing.T) {
	router := newTestRouter(new(mockChecker), new(mockDeveloperService), new(mockProjectService))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRouter_Metrics(t *testing.T) {
	router := newTestRouter(new(mockChecker), new(mockDeveloperService), new(mockProjectService))
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health", nil))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "devprojects_http_requests_total")
}

func TestRouter_GatedIDAboveIntegerRange(t *testing.T) {
	checker := new(mockChecker)
	projects := new(mockProjectService)
	router := newTestRouter(checker, new(mockDeveloperService), projects)

	for _, target := range []string{"/developers/9999999999", "/projects/9999999999"} {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
		assert.Equal(t, http.StatusNotFound, w.Code, target)
	}

	checker.AssertNotCalled(t, "Exists")
}
