package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/cinelog/cinelog/internal/service"
	"github.com/cinelog/cinelog/internal/store"
	"github.com/cinelog/cinelog/internal/store/memory"
	"github.com/cinelog/cinelog/pkg/token"
)

func newAuthService() (*service.AuthService, *token.Service, *memory.UserStore) {
	movies := memory.NewMovieStore()
	users := memory.NewUserStore(movies)
	tokens := token.New("test-secret", time.Hour)
	return service.NewAuthService(users, tokens), tokens, users
}

func TestRegisterThenLogin(t *testing.T) {
	ctx := context.Background()
	auth, tokens, _ := newAuthService()

	user, err := auth.Register(ctx, "Alice", "alice@example.com", "password123")
	require.NoError(t, err)
	require.NotZero(t, user.ID)
	require.NotEqual(t, "password123", user.PasswordHash)

	result, err := auth.Login(ctx, "alice@example.com", "password123")
	require.NoError(t, err)
	require.Equal(t, user.ID, result.ID)
	require.Equal(t, "Alice", result.Name)

	subject, ok := tokens.Verify(result.AccessToken)
	require.True(t, ok)
	require.Equal(t, user.ID, subject)
}

func TestLoginWrongPassword(t *testing.T) {
	ctx := context.Background()
	auth, _, _ := newAuthService()

	_, err := auth.Register(ctx, "Alice", "alice@example.com", "password123")
	require.NoError(t, err)

	_, err = auth.Login(ctx, "alice@example.com", "wrong")
	require.ErrorIs(t, err, service.ErrInvalidCredentials)
}

func TestLoginUnknownEmail(t *testing.T) {
	ctx := context.Background()
	auth, _, _ := newAuthService()

	_, err := auth.Login(ctx, "nobody@example.com", "password123")
	require.ErrorIs(t, err, service.ErrInvalidCredentials)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	auth, _, _ := newAuthService()

	_, err := auth.Register(ctx, "Alice", "alice@example.com", "password123")
	require.NoError(t, err)

	_, err = auth.Register(ctx, "Other Alice", "alice@example.com", "different")
	require.ErrorIs(t, err, store.ErrDuplicateEmail)
}

func TestMe(t *testing.T) {
	ctx := context.Background()
	auth, _, _ := newAuthService()

	user, err := auth.Register(ctx, "Alice", "alice@example.com", "password123")
	require.NoError(t, err)

	got, err := auth.Me(ctx, user.ID)
	require.NoError(t, err)
	require.Equal(t, "alice@example.com", got.Email)

	_, err = auth.Me(ctx, 999)
	require.ErrorIs(t, err, store.ErrNotFound)
}
