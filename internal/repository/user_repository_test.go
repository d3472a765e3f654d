package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TarlavinaMaria/NewsBlogOfficialApp/internal/domain"
	"github.com/TarlavinaMaria/NewsBlogOfficialApp/internal/repository"
)

func TestPostgresUserRepository_Accounts(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	testDB := SetupTestDB(t)
	defer testDB.Cleanup(t)

	userRepo := repository.NewPostgresUserRepository(testDB.Pool)
	ctx := context.Background()

	t.Run("create and look up", func(t *testing.T) {
		testDB.TruncateTables(t, "users")
		user := createTestUser(t, testDB.Pool)

		byID, err := userRepo.GetByID(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, user.Username, byID.Username)

		byName, err := userRepo.GetByUsername(ctx, user.Username)
		require.NoError(t, err)
		assert.Equal(t, user.ID, byName.ID)

		byEmail, err := userRepo.GetByEmail(ctx, user.Email)
		require.NoError(t, err)
		assert.Equal(t, user.ID, byEmail.ID)
	})

	t.Run("duplicate username", func(t *testing.T) {
		testDB.TruncateTables(t, "users")
		user := createTestUser(t, testDB.Pool)

		err := userRepo.Create(ctx, &domain.User{
			ID:           uuid.NewString(),
			Username:     user.Username,
			Email:        "other@example.com",
			PasswordHash: "hash",
			Role:         domain.RoleUser,
			Active:       true,
			CreatedAt:    time.Now(),
			UpdatedAt:    time.Now(),
		})
		assert.ErrorIs(t, err, domain.ErrDuplicateUser)
	})

	t.Run("duplicate email", func(t *testing.T) {
		testDB.TruncateTables(t, "users")
		user := createTestUser(t, testDB.Pool)

		err := userRepo.Create(ctx, &domain.User{
			ID:           uuid.NewString(),
			Username:     "someoneelse",
			Email:        user.Email,
			PasswordHash: "hash",
			Role:         domain.RoleUser,
			Active:       true,
			CreatedAt:    time.Now(),
			UpdatedAt:    time.Now(),
		})
		assert.ErrorIs(t, err, domain.ErrDuplicateUser)
	})

	t.Run("update password", func(t *testing.T) {
		testDB.TruncateTables(t, "users")
		user := createTestUser(t, testDB.Pool)

		require.NoError(t, userRepo.UpdatePassword(ctx, user.ID, "new-hash"))

		got, err := userRepo.GetByID(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, "new-hash", got.PasswordHash)
	})

	t.Run("unknown user", func(t *testing.T) {
		_, err := userRepo.GetByID(ctx, uuid.NewString())
		assert.ErrorIs(t, err, domain.ErrNotFound)

		err = userRepo.UpdatePassword(ctx, uuid.NewString(), "hash")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestPostgresUserRepository_Profiles(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	testDB := SetupTestDB(t)
	defer testDB.Cleanup(t)

	userRepo := repository.NewPostgresUserRepository(testDB.Pool)
	ctx := context.Background()

	testDB.TruncateTables(t, "users")
	user := createTestUser(t, testDB.Pool)

	t.Run("first access materializes an empty profile", func(t *testing.T) {
		profile, err := userRepo.GetOrCreateProfile(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, user.ID, profile.UserID)
		assert.Empty(t, profile.FirstName)
		assert.Nil(t, profile.DateOfBirth)
	})

	t.Run("update and read back", func(t *testing.T) {
		dob := time.Date(1990, 6, 15, 0, 0, 0, 0, time.UTC)
		require.NoError(t, userRepo.UpdateProfile(ctx, &domain.Profile{
			UserID:      user.ID,
			FirstName:   "Maria",
			LastName:    "Ivanova",
			DateOfBirth: &dob,
		}))

		profile, err := userRepo.GetOrCreateProfile(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, "Maria", profile.FirstName)
		assert.Equal(t, "Ivanova", profile.LastName)
		require.NotNil(t, profile.DateOfBirth)
		assert.Equal(t, dob.Format("2006-01-02"), profile.DateOfBirth.Format("2006-01-02"))
	})

	t.Run("profile for unknown user", func(t *testing.T) {
		_, err := userRepo.GetOrCreateProfile(ctx, uuid.NewString())
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestPostgresUserRepository_ResetTokens(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	testDB := SetupTestDB(t)
	defer testDB.Cleanup(t)

	userRepo := repository.NewPostgresUserRepository(testDB.Pool)
	ctx := context.Background()

	testDB.TruncateTables(t, "users")
	user := createTestUser(t, testDB.Pool)

	newToken := func() *domain.PasswordResetToken {
		return &domain.PasswordResetToken{
			Token:     uuid.NewString(),
			UserID:    user.ID,
			ExpiresAt: time.Now().Add(time.Hour),
			CreatedAt: time.Now(),
		}
	}

	t.Run("create and fetch", func(t *testing.T) {
		token := newToken()
		require.NoError(t, userRepo.CreateResetToken(ctx, token))

		got, err := userRepo.GetResetToken(ctx, token.Token)
		require.NoError(t, err)
		assert.Equal(t, user.ID, got.UserID)
		assert.Nil(t, got.UsedAt)
	})

	t.Run("mark used exactly once", func(t *testing.T) {
		token := newToken()
		require.NoError(t, userRepo.CreateResetToken(ctx, token))

		require.NoError(t, userRepo.MarkResetTokenUsed(ctx, token.Token))

		got, err := userRepo.GetResetToken(ctx, token.Token)
		require.NoError(t, err)
		assert.NotNil(t, got.UsedAt)

		// A second consume attempt fails.
		err = userRepo.MarkResetTokenUsed(ctx, token.Token)
		assert.ErrorIs(t, err, domain.ErrTokenInvalid)
	})

	t.Run("unknown token", func(t *testing.T) {
		_, err := userRepo.GetResetToken(ctx, uuid.NewString())
		assert.ErrorIs(t, err, domain.ErrNotFound)

		err = userRepo.MarkResetTokenUsed(ctx, uuid.NewString())
		assert.ErrorIs(t, err, domain.ErrTokenInvalid)
	})
}
