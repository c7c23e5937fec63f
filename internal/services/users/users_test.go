package users

import (
	"context"
	"testing"

	"bloglist/internal/domain/models"
	"bloglist/internal/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func TestService_Register(t *testing.T) {
	tests := []struct {
		name        string
		username    string
		displayName string
		password    string
		mockSetup   func(m *mocks.MockUserStorage)
		wantErr     bool
		expectedErr error
	}{
		{
			name:        "successful registration hashes the password",
			username:    "mluukkai",
			displayName: "Matti Luukkainen",
			password:    "salainen",
			mockSetup: func(m *mocks.MockUserStorage) {
				m.EXPECT().
					UserCreate(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, u models.User) (models.User, error) {
						assert.NotEqual(t, "salainen", u.PasswordHash)
						assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("salainen")))
						assert.Empty(t, u.Blogs)
						assert.False(t, u.CreatedAt.IsZero())
						u.ID = "user-1"
						return u, nil
					})
			},
		},
		{
			name:        "username shorter than 3 characters",
			username:    "ab",
			password:    "salainen",
			mockSetup:   func(m *mocks.MockUserStorage) {},
			wantErr:     true,
			expectedErr: models.ErrInvalidData,
		},
		{
			name:        "password shorter than 3 characters",
			username:    "mluukkai",
			password:    "ab",
			mockSetup:   func(m *mocks.MockUserStorage) {},
			wantErr:     true,
			expectedErr: models.ErrInvalidData,
		},
		{
			name:     "duplicate username",
			username: "mluukkai",
			password: "salainen",
			mockSetup: func(m *mocks.MockUserStorage) {
				m.EXPECT().
					UserCreate(gomock.Any(), gomock.Any()).
					Return(models.User{}, models.ErrConflict)
			},
			wantErr:     true,
			expectedErr: models.ErrConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := mocks.NewMockUserStorage(ctrl)
			tt.mockSetup(mockStorage)

			service := NewService(mockStorage)
			got, err := service.Register(context.Background(), tt.username, tt.displayName, tt.password)

			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.expectedErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, "user-1", got.ID)
			assert.Equal(t, tt.username, got.Username)
			assert.Equal(t, tt.displayName, got.Name)
			assert.NotEqual(t, tt.password, got.PasswordHash)
		})
	}
}

func TestService_VerifyCredentials(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("salainen"), bcryptCost)
	require.NoError(t, err)

	stored := models.User{
		ID:           "user-1",
		Username:     "mluukkai",
		PasswordHash: string(hash),
	}

	tests := []struct {
		name      string
		username  string
		password  string
		mockSetup func(m *mocks.MockUserStorage)
		wantErr   bool
	}{
		{
			name:     "correct credentials",
			username: "mluukkai",
			password: "salainen",
			mockSetup: func(m *mocks.MockUserStorage) {
				m.EXPECT().
					UserGetByUsername(gomock.Any(), "mluukkai").
					Return(stored, nil)
			},
		},
		{
			name:     "wrong password",
			username: "mluukkai",
			password: "wrong",
			mockSetup: func(m *mocks.MockUserStorage) {
				m.EXPECT().
					UserGetByUsername(gomock.Any(), "mluukkai").
					Return(stored, nil)
			},
			wantErr: true,
		},
		{
			name:     "unknown username",
			username: "nobody",
			password: "salainen",
			mockSetup: func(m *mocks.MockUserStorage) {
				m.EXPECT().
					UserGetByUsername(gomock.Any(), "nobody").
					Return(models.User{}, models.ErrUnfound)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := mocks.NewMockUserStorage(ctrl)
			tt.mockSetup(mockStorage)

			service := NewService(mockStorage)
			got, err := service.VerifyCredentials(context.Background(), tt.username, tt.password)

			if tt.wantErr {
				require.Error(t, err)
				// wrong password and unknown user must be indistinguishable
				assert.ErrorIs(t, err, models.ErrInvalidCredentials)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, stored.ID, got.ID)
		})
	}
}

func TestService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStorage := mocks.NewMockUserStorage(ctrl)
	service := NewService(mockStorage)

	t.Run("empty id rejected", func(t *testing.T) {
		err := service.Delete(context.Background(), "")
		assert.ErrorIs(t, err, models.ErrInvalidData)
	})

	t.Run("delete is idempotent", func(t *testing.T) {
		mockStorage.EXPECT().
			UserDelete(gomock.Any(), "user-1").
			Return(nil).
			Times(2)

		require.NoError(t, service.Delete(context.Background(), "user-1"))
		require.NoError(t, service.Delete(context.Background(), "user-1"))
	})
}
