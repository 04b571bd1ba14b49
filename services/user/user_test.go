package user

import (
	"testing"
	"time"

	"glamazon/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) Create(u *models.User) error {
	return m.Called(u).Error(0)
}

func (m *mockUserRepo) Update(u *models.User) error {
	return m.Called(u).Error(0)
}

func (m *mockUserRepo) UpdateSetDocument(id string, updateDoc bson.M) error {
	return m.Called(id, updateDoc).Error(0)
}

func (m *mockUserRepo) Delete(id string) error {
	return m.Called(id).Error(0)
}

func (m *mockUserRepo) GetByIDWithProjection(id string, projection bson.M) (*models.User, error) {
	args := m.Called(id, projection)
	if u := args.Get(0); u != nil {
		return u.(*models.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) GetByEmailWithProjection(email string, projection bson.M) (*models.User, error) {
	args := m.Called(email, projection)
	if u := args.Get(0); u != nil {
		return u.(*models.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) GetAllWithProjection(projection bson.M) ([]models.User, error) {
	args := m.Called(projection)
	if u := args.Get(0); u != nil {
		return u.([]models.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) CountByType(userType string) (int64, error) {
	args := m.Called(userType)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockUserRepo) CountAll() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockUserRepo) CountCreatedAfter(t time.Time) (int64, error) {
	args := m.Called(t)
	return args.Get(0).(int64), args.Error(1)
}

func TestVerifyPasswordComplexity(t *testing.T) {
	assert.NoError(t, verifyPasswordComplexity("sunflower7"))
	assert.NoError(t, verifyPasswordComplexity("Br4ids-and-locs"))

	assert.ErrorIs(t, verifyPasswordComplexity("short1"), ErrWeakPassword)
	assert.ErrorIs(t, verifyPasswordComplexity("allletters"), ErrWeakPassword)
	assert.ErrorIs(t, verifyPasswordComplexity("1234567890"), ErrWeakPassword)
	assert.ErrorIs(t, verifyPasswordComplexity(""), ErrWeakPassword)
}

func adminActor() *models.User {
	return &models.User{ID: "admin-1", Type: models.UserTypeAdmin}
}

func defaultAdminActor() *models.User {
	return &models.User{ID: "root-1", Type: models.UserTypeAdmin, IsDefaultAdmin: true}
}

func TestCreateUserRequiresAdmin(t *testing.T) {
	svc := &DefaultUserService{}

	client := &models.User{ID: "c1", Type: models.UserTypeClient}
	_, err := svc.CreateUser(client, AdminUserRequest{Email: "x@y.com", Name: "X", Password: "sunflower7"})
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = svc.CreateUser(nil, AdminUserRequest{})
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestCreateAdminRequiresDefaultAdmin(t *testing.T) {
	svc := &DefaultUserService{}

	_, err := svc.CreateUser(adminActor(), AdminUserRequest{
		Type: models.UserTypeAdmin, Email: "x@y.com", Name: "X", Password: "sunflower7",
	})
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	repo := new(mockUserRepo)
	repo.On("GetByEmailWithProjection", "taken@y.com", mock.Anything).
		Return(&models.User{ID: "existing"}, nil)

	svc := &DefaultUserService{Repo: repo}
	_, err := svc.CreateUser(adminActor(), AdminUserRequest{
		Email: "Taken@y.com", Name: "X", Password: "sunflower7",
	})
	assert.ErrorIs(t, err, ErrEmailTaken)
	repo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestCreateUserSuccess(t *testing.T) {
	repo := new(mockUserRepo)
	repo.On("GetByEmailWithProjection", "new@y.com", mock.Anything).Return(nil, nil)
	repo.On("Create", mock.AnythingOfType("*models.User")).Return(nil)

	svc := &DefaultUserService{Repo: repo}
	created, err := svc.CreateUser(adminActor(), AdminUserRequest{
		Email: "New@y.com", Name: "New Client", Phone: "0700", Password: "sunflower7",
	})
	require.NoError(t, err)
	assert.Equal(t, models.UserTypeClient, created.Type)
	assert.Equal(t, "new@y.com", created.Email)
	assert.NotEmpty(t, created.ID)
	assert.NotEqual(t, "sunflower7", created.PasswordHash)
	repo.AssertExpectations(t)
}

func TestDeleteUserGuards(t *testing.T) {
	t.Run("default admin cannot be deleted", func(t *testing.T) {
		repo := new(mockUserRepo)
		repo.On("GetByIDWithProjection", "root-1", mock.Anything).Return(defaultAdminActor(), nil)

		svc := &DefaultUserService{Repo: repo}
		err := svc.DeleteUser(defaultAdminActor(), "root-1")
		assert.ErrorIs(t, err, ErrForbidden)
		repo.AssertNotCalled(t, "Delete", mock.Anything)
	})

	t.Run("regular admin cannot delete admins", func(t *testing.T) {
		repo := new(mockUserRepo)
		repo.On("GetByIDWithProjection", "admin-2", mock.Anything).
			Return(&models.User{ID: "admin-2", Type: models.UserTypeAdmin}, nil)

		svc := &DefaultUserService{Repo: repo}
		err := svc.DeleteUser(adminActor(), "admin-2")
		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("missing user", func(t *testing.T) {
		repo := new(mockUserRepo)
		repo.On("GetByIDWithProjection", "ghost", mock.Anything).Return(nil, nil)

		svc := &DefaultUserService{Repo: repo}
		err := svc.DeleteUser(adminActor(), "ghost")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestGetUserStatusDefaultAdminOnly(t *testing.T) {
	svc := &DefaultUserService{}

	_, err := svc.GetUserStatus(adminActor(), "c1")
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = svc.GetUserStatus(nil, "c1")
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestUpdateUserRoleChangeGuards(t *testing.T) {
	repo := new(mockUserRepo)
	repo.On("GetByIDWithProjection", "c1", mock.Anything).
		Return(&models.User{ID: "c1", Type: models.UserTypeClient, Email: "c1@y.com"}, nil)

	svc := &DefaultUserService{Repo: repo}
	_, err := svc.UpdateUser(adminActor(), "c1", AdminUserRequest{Type: models.UserTypeAdmin})
	assert.ErrorIs(t, err, ErrForbidden)
	repo.AssertNotCalled(t, "UpdateSetDocument", mock.Anything, mock.Anything)
}
