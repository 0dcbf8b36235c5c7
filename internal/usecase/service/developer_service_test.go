package service

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/niklvrr/DevProjects/internal/domain"
	"github.com/niklvrr/DevProjects/internal/infrastructure/models/dto"
	"github.com/niklvrr/DevProjects/internal/infrastructure/repository"
	"github.com/niklvrr/DevProjects/internal/transport/dto/request"
	"github.com/niklvrr/DevProjects/internal/usecase/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// MockDeveloperRepository мок репозитория для тестов
type MockDeveloperRepository struct {
	mock.Mock
}

func (m *MockDeveloperRepository) Create(ctx context.Context, d *dto.CreateDeveloperDTO) (*domain.Developer, error) {
	args := m.Called(ctx, d)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Developer), args.Error(1)
}

func (m *MockDeveloperRepository) List(ctx context.Context) ([]*domain.DeveloperWithInfo, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.DeveloperWithInfo), args.Error(1)
}

func (m *MockDeveloperRepository) GetByID(ctx context.Context, id int64) (*domain.DeveloperWithInfo, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DeveloperWithInfo), args.Error(1)
}

func (m *MockDeveloperRepository) ListProjects(ctx context.Context, id int64) ([]*domain.DeveloperProjectRow, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.DeveloperProjectRow), args.Error(1)
}

func (m *MockDeveloperRepository) Update(ctx context.Context, d *dto.UpdateDeveloperDTO) (*domain.Developer, error) {
	args := m.Called(ctx, d)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Developer), args.Error(1)
}

func (m *MockDeveloperRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockDeveloperRepository) CreateInfo(ctx context.Context, d *dto.CreateDeveloperInfoDTO) (*domain.DeveloperInfo, error) {
	args := m.Called(ctx, d)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DeveloperInfo), args.Error(1)
}

func (m *MockDeveloperRepository) UpdateInfo(ctx context.Context, d *dto.UpdateDeveloperInfoDTO) (*domain.DeveloperInfo, error) {
	args := m.Called(ctx, d)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DeveloperInfo), args.Error(1)
}

func newDeveloperService(repo DeveloperRepository) *DeveloperService {
	return NewDeveloperService(repo, validation.New(), zap.NewNop())
}

func strPtr(s string) *string { return &s }

func assertDomainCode(t *testing.T, err error, code string) *DomainError {
	t.Helper()
	var domainErr *DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, code, domainErr.Code)
	return domainErr
}

func TestDeveloperService_Create_Success(t *testing.T) {
	mockRepo := new(MockDeveloperRepository)
	service := newDeveloperService(mockRepo)

	expected := &domain.Developer{Id: 1, Name: "Ada", Email: "ada@mail.com"}
	mockRepo.On("Create", mock.Anything, mock.MatchedBy(func(d *dto.CreateDeveloperDTO) bool {
		return d.Name == "Ada" && d.Email == "ada@mail.com"
	})).Return(expected, nil)

	dev, err := service.Create(context.Background(), &request.CreateDeveloperRequest{
		Name:  "Ada",
		Email: "ada@mail.com",
	})

	assert.NoError(t, err)
	assert.Equal(t, expected, dev)
	mockRepo.AssertExpectations(t)
}

func TestDeveloperService_Create_MissingFields(t *testing.T) {
	mockRepo := new(MockDeveloperRepository)
	service := newDeveloperService(mockRepo)

	dev, err := service.Create(context.Background(), &request.CreateDeveloperRequest{})

	assert.Nil(t, dev)
	domainErr := assertDomainCode(t, err, "INVALID_INPUT")
	assert.Equal(t, "missing required fields: name, email", domainErr.Message)
	mockRepo.AssertNotCalled(t, "Create")
}

func TestDeveloperService_Create_DuplicateEmail(t *testing.T) {
	mockRepo := new(MockDeveloperRepository)
	service := newDeveloperService(mockRepo)

	dbErr := &repository.ConstraintError{
		Kind:       repository.ErrAlreadyExists,
		Constraint: repository.ConstraintDeveloperEmail,
		Err:        &pgconn.PgError{Code: "23505"},
	}
	mockRepo.On("Create", mock.Anything, mock.Anything).Return(nil, dbErr)

	dev, err := service.Create(context.Background(), &request.CreateDeveloperRequest{
		Name:  "Ada",
		Email: "ada@mail.com",
	})

	assert.Nil(t, dev)
	assertDomainCode(t, err, "EMAIL_EXISTS")
	mockRepo.AssertExpectations(t)
}

func TestDeveloperService_Create_UnknownError(t *testing.T) {
	mockRepo := new(MockDeveloperRepository)
	service := newDeveloperService(mockRepo)

	mockRepo.On("Create", mock.Anything, mock.Anything).Return(nil, errors.New("connection reset"))

	_, err := service.Create(context.Background(), &request.CreateDeveloperRequest{
		Name:  "Ada",
		Email: "ada@mail.com",
	})

	assert.ErrorIs(t, err, createDeveloperError)
	var domainErr *DomainError
	assert.False(t, errors.As(err, &domainErr))
}

func TestDeveloperService_Update_EmptyPatchNeverReachesRepository(t *testing.T) {
	mockRepo := new(MockDeveloperRepository)
	service := newDeveloperService(mockRepo)

	dev, err := service.Update(context.Background(), 1, &request.UpdateDeveloperRequest{Name: strPtr("")})

	assert.Nil(t, dev)
	domainErr := assertDomainCode(t, err, "INVALID_INPUT")
	assert.Equal(t, []string{"name", "email"}, domainErr.Options)
	mockRepo.AssertNotCalled(t, "Update")
}

func TestDeveloperService_Update_OnlySuppliedFields(t *testing.T) {
	mockRepo := new(MockDeveloperRepository)
	service := newDeveloperService(mockRepo)

	expected := &domain.Developer{Id: 3, Name: "Grace", Email: "grace@mail.com"}
	mockRepo.On("Update", mock.Anything, mock.MatchedBy(func(d *dto.UpdateDeveloperDTO) bool {
		return d.Id == 3 &&
			assert.ObjectsAreEqual([]string{"name"}, d.Fields.Columns()) &&
			assert.ObjectsAreEqual([]any{"Grace"}, d.Fields.Values())
	})).Return(expected, nil)

	dev, err := service.Update(context.Background(), 3, &request.UpdateDeveloperRequest{Name: strPtr("Grace")})

	assert.NoError(t, err)
	assert.Equal(t, expected, dev)
	mockRepo.AssertExpectations(t)
}

func TestDeveloperService_Update_DuplicateEmail(t *testing.T) {
	mockRepo := new(MockDeveloperRepository)
	service := newDeveloperService(mockRepo)

	mockRepo.On("Update", mock.Anything, mock.Anything).Return(nil, &repository.ConstraintError{
		Kind:       repository.ErrAlreadyExists,
		Constraint: repository.ConstraintDeveloperEmail,
	})

	_, err := service.Update(context.Background(), 3, &request.UpdateDeveloperRequest{Email: strPtr("taken@mail.com")})

	assertDomainCode(t, err, "EMAIL_EXISTS")
}

func TestDeveloperService_Get_NotFound(t *testing.T) {
	mockRepo := new(MockDeveloperRepository)
	service := newDeveloperService(mockRepo)

	mockRepo.On("GetByID", mock.Anything, int64(9)).Return(nil, repository.ErrNotFound)

	dev, err := service.Get(context.Background(), 9)

	assert.Nil(t, dev)
	assertDomainCode(t, err, "NOT_FOUND")
	mockRepo.AssertExpectations(t)
}

func TestDeveloperService_Delete(t *testing.T) {
	mockRepo := new(MockDeveloperRepository)
	service := newDeveloperService(mockRepo)

	mockRepo.On("Delete", mock.Anything, int64(5)).Return(nil)

	assert.NoError(t, service.Delete(context.Background(), 5))
	mockRepo.AssertExpectations(t)
}

func TestDeveloperService_CreateInfo_Success(t *testing.T) {
	mockRepo := new(MockDeveloperRepository)
	service := newDeveloperService(mockRepo)

	expected := &domain.DeveloperInfo{Id: 10, PreferredOS: "Linux"}
	mockRepo.On("CreateInfo", mock.Anything, &dto.CreateDeveloperInfoDTO{
		DeveloperId:    2,
		DeveloperSince: "2019-06-01",
		PreferredOS:    "Linux",
	}).Return(expected, nil)

	info, err := service.CreateInfo(context.Background(), 2, &request.CreateDeveloperInfoRequest{
		DeveloperSince: "2019-06-01",
		PreferredOS:    "Linux",
	})

	assert.NoError(t, err)
	assert.Equal(t, expected, info)
	mockRepo.AssertExpectations(t)
}

func TestDeveloperService_CreateInfo_AlreadyLinked(t *testing.T) {
	mockRepo := new(MockDeveloperRepository)
	service := newDeveloperService(mockRepo)

	mockRepo.On("CreateInfo", mock.Anything, mock.Anything).Return(nil, repository.ErrAlreadyLinked)

	info, err := service.CreateInfo(context.Background(), 2, &request.CreateDeveloperInfoRequest{
		DeveloperSince: "2019-06-01",
		PreferredOS:    "MacOS",
	})

	assert.Nil(t, info)
	assertDomainCode(t, err, "INFO_EXISTS")
}

func TestDeveloperService_CreateInfo_InvalidOS(t *testing.T) {
	mockRepo := new(MockDeveloperRepository)
	service := newDeveloperService(mockRepo)

	_, err := service.CreateInfo(context.Background(), 2, &request.CreateDeveloperInfoRequest{
		DeveloperSince: "2019-06-01",
		PreferredOS:    "TempleOS",
	})

	domainErr := assertDomainCode(t, err, "INVALID_INPUT")
	assert.Equal(t, domain.PreferredOSOptions, domainErr.Options)
	mockRepo.AssertNotCalled(t, "CreateInfo")
}

func TestDeveloperService_UpdateInfo_NoLinkedInfo(t *testing.T) {
	mockRepo := new(MockDeveloperRepository)
	service := newDeveloperService(mockRepo)

	mockRepo.On("UpdateInfo", mock.Anything, mock.MatchedBy(func(d *dto.UpdateDeveloperInfoDTO) bool {
		return d.DeveloperId == 4 && len(d.Fields) == 1
	})).Return(nil, repository.ErrNotFound)

	_, err := service.UpdateInfo(context.Background(), 4, &request.UpdateDeveloperInfoRequest{PreferredOS: strPtr("Windows")})

	domainErr := assertDomainCode(t, err, "NOT_FOUND")
	assert.Equal(t, "developer info not found", domainErr.Message)
	mockRepo.AssertExpectations(t)
}
