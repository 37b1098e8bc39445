package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

type MockSessions struct {
	mock.Mock
}

func (m *MockSessions) Issue(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *MockSessions) Validate(ctx context.Context, token string) (bool, error) {
	args := m.Called(ctx, token)
	return args.Bool(0), args.Error(1)
}

func (m *MockSessions) Revoke(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func TestService_Login(t *testing.T) {
	tests := []struct {
		name     string
		secret   string
		password string
		wantErr  error
	}{
		{
			name:     "success",
			secret:   "hunter2",
			password: "hunter2",
		},
		{
			name:     "wrong password",
			secret:   "hunter2",
			password: "hunter3",
			wantErr:  ErrInvalidCredential,
		},
		{
			name:     "no secret configured fails closed",
			secret:   "",
			password: "anything",
			wantErr:  ErrNoSecret,
		},
		{
			name:     "empty password against empty secret is still misconfiguration",
			secret:   "",
			password: "",
			wantErr:  ErrNoSecret,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sessions := new(MockSessions)
			if tt.wantErr == nil {
				sessions.On("Issue", mock.Anything).Return("tok-123", nil)
			}

			service := NewService(tt.secret, sessions, slog.Default())
			token, err := service.Login(context.Background(), tt.password)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, token)
				sessions.AssertNotCalled(t, "Issue")
				return
			}

			require.NoError(t, err)
			assert.Equal(t, "tok-123", token)
			sessions.AssertExpectations(t)
		})
	}
}

func TestService_Authenticate(t *testing.T) {
	sessions := new(MockSessions)
	sessions.On("Validate", mock.Anything, "live").Return(true, nil)
	sessions.On("Validate", mock.Anything, "dead").Return(false, nil)

	service := NewService("secret", sessions, slog.Default())

	ok, err := service.Authenticate(context.Background(), "live")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = service.Authenticate(context.Background(), "dead")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestService_Logout(t *testing.T) {
	sessions := new(MockSessions)
	sessions.On("Revoke", mock.Anything, "tok").Return(nil)

	service := NewService("secret", sessions, slog.Default())
	require.NoError(t, service.Logout(context.Background(), "tok"))
	sessions.AssertExpectations(t)
}
