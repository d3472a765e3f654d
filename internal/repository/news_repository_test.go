package repository_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TarlavinaMaria/NewsBlogOfficialApp/internal/domain"
	"github.com/TarlavinaMaria/NewsBlogOfficialApp/internal/repository"
)

func TestPostgresNewsRepository_CreateAndGet(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	testDB := SetupTestDB(t)
	defer testDB.Cleanup(t)

	newsRepo := repository.NewPostgresNewsRepository(testDB.Pool)
	tagRepo := repository.NewPostgresTagRepository(testDB.Pool)
	ctx := context.Background()

	t.Run("create with tags and read back", func(t *testing.T) {
		testDB.TruncateTables(t, "comments", "news", "tags", "users")
		author := createTestUser(t, testDB.Pool)

		sport := &domain.Tag{ID: uuid.NewString(), Name: "Sport", Slug: "sport"}
		require.NoError(t, tagRepo.Create(ctx, sport))

		news := createTestNews(t, testDB.Pool, author.ID, domain.StatusDraft, sport.ID)

		got, err := newsRepo.GetByID(ctx, news.ID)
		require.NoError(t, err)
		assert.Equal(t, news.Title, got.Title)
		assert.Equal(t, domain.StatusDraft, got.Status)
		assert.False(t, got.Notified)
		require.Len(t, got.Tags, 1)
		assert.Equal(t, "sport", got.Tags[0].Slug)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := newsRepo.GetByID(ctx, uuid.NewString())
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestPostgresNewsRepository_List(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	testDB := SetupTestDB(t)
	defer testDB.Cleanup(t)

	newsRepo := repository.NewPostgresNewsRepository(testDB.Pool)
	tagRepo := repository.NewPostgresTagRepository(testDB.Pool)
	ctx := context.Background()

	testDB.TruncateTables(t, "comments", "news", "tags", "users")
	author := createTestUser(t, testDB.Pool)

	sport := &domain.Tag{ID: uuid.NewString(), Name: "Sport", Slug: "sport"}
	require.NoError(t, tagRepo.Create(ctx, sport))

	published := createTestNews(t, testDB.Pool, author.ID, domain.StatusPublished, sport.ID)
	createTestNews(t, testDB.Pool, author.ID, domain.StatusPublished)
	createTestNews(t, testDB.Pool, author.ID, domain.StatusDraft)

	t.Run("filters by status", func(t *testing.T) {
		items, total, err := newsRepo.List(ctx, domain.NewsFilter{Status: domain.StatusPublished})
		require.NoError(t, err)
		assert.Equal(t, 2, total)
		assert.Len(t, items, 2)
		for _, n := range items {
			assert.Equal(t, domain.StatusPublished, n.Status)
		}
	})

	t.Run("filters by tag slug", func(t *testing.T) {
		items, total, err := newsRepo.List(ctx, domain.NewsFilter{Status: domain.StatusPublished, TagSlug: "sport"})
		require.NoError(t, err)
		assert.Equal(t, 1, total)
		require.Len(t, items, 1)
		assert.Equal(t, published.ID, items[0].ID)
	})

	t.Run("substring search over title and content", func(t *testing.T) {
		special := createTestNews(t, testDB.Pool, author.ID, domain.StatusPublished)
		_, err := testDB.Pool.Exec(ctx, "UPDATE news SET title = 'Marathon day' WHERE id = $1", special.ID)
		require.NoError(t, err)

		items, total, err := newsRepo.List(ctx, domain.NewsFilter{Status: domain.StatusPublished, Query: "maratho"})
		require.NoError(t, err)
		assert.Equal(t, 1, total)
		require.Len(t, items, 1)
		assert.Equal(t, special.ID, items[0].ID)

		// LIKE metacharacters in the query match literally.
		items, total, err = newsRepo.List(ctx, domain.NewsFilter{Status: domain.StatusPublished, Query: "%"})
		require.NoError(t, err)
		assert.Zero(t, total)
		assert.Empty(t, items)
	})

	t.Run("paginates deterministically", func(t *testing.T) {
		testDB.TruncateTables(t, "news")
		for i := 0; i < 5; i++ {
			n := createTestNews(t, testDB.Pool, author.ID, domain.StatusPublished)
			_, err := testDB.Pool.Exec(ctx, "UPDATE news SET views = $2 WHERE id = $1", n.ID, i)
			require.NoError(t, err)
		}

		page1, total, err := newsRepo.List(ctx, domain.NewsFilter{
			Status: domain.StatusPublished, SortBy: "views", Order: "asc", Page: 1, PerPage: 2,
		})
		require.NoError(t, err)
		assert.Equal(t, 5, total)
		require.Len(t, page1, 2)
		assert.Equal(t, 0, page1[0].Views)
		assert.Equal(t, 1, page1[1].Views)

		page3, total, err := newsRepo.List(ctx, domain.NewsFilter{
			Status: domain.StatusPublished, SortBy: "views", Order: "asc", Page: 3, PerPage: 2,
		})
		require.NoError(t, err)
		assert.Equal(t, 5, total)
		require.Len(t, page3, 1)
		assert.Equal(t, 4, page3[0].Views)
	})

	t.Run("unknown sort field falls back to pub_date", func(t *testing.T) {
		_, _, err := newsRepo.List(ctx, domain.NewsFilter{Status: domain.StatusPublished, SortBy: "password_hash"})
		require.NoError(t, err)
	})
}

func TestPostgresNewsRepository_StatusUpdates(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	testDB := SetupTestDB(t)
	defer testDB.Cleanup(t)

	newsRepo := repository.NewPostgresNewsRepository(testDB.Pool)
	ctx := context.Background()

	testDB.TruncateTables(t, "news", "users")
	author := createTestUser(t, testDB.Pool)

	t.Run("single update", func(t *testing.T) {
		news := createTestNews(t, testDB.Pool, author.ID, domain.StatusDraft)

		require.NoError(t, newsRepo.UpdateStatus(ctx, news.ID, domain.StatusPublished))

		got, err := newsRepo.GetByID(ctx, news.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.StatusPublished, got.Status)
	})

	t.Run("archived back to draft", func(t *testing.T) {
		news := createTestNews(t, testDB.Pool, author.ID, domain.StatusArchived)

		require.NoError(t, newsRepo.UpdateStatus(ctx, news.ID, domain.StatusDraft))

		got, err := newsRepo.GetByID(ctx, news.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.StatusDraft, got.Status)
	})

	t.Run("unknown id", func(t *testing.T) {
		err := newsRepo.UpdateStatus(ctx, uuid.NewString(), domain.StatusPublished)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("bulk update skips unknown ids", func(t *testing.T) {
		a := createTestNews(t, testDB.Pool, author.ID, domain.StatusDraft)
		b := createTestNews(t, testDB.Pool, author.ID, domain.StatusDraft)

		changed, err := newsRepo.BulkUpdateStatus(ctx, []string{a.ID, b.ID, uuid.NewString()}, domain.StatusArchived)
		require.NoError(t, err)
		assert.Equal(t, int64(2), changed)

		got, err := newsRepo.GetByID(ctx, a.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.StatusArchived, got.Status)
	})

	t.Run("bulk update with no ids", func(t *testing.T) {
		changed, err := newsRepo.BulkUpdateStatus(ctx, nil, domain.StatusArchived)
		require.NoError(t, err)
		assert.Zero(t, changed)
	})
}

func TestPostgresNewsRepository_IncrementViews(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	testDB := SetupTestDB(t)
	defer testDB.Cleanup(t)

	newsRepo := repository.NewPostgresNewsRepository(testDB.Pool)
	ctx := context.Background()

	testDB.TruncateTables(t, "news", "users")
	author := createTestUser(t, testDB.Pool)
	news := createTestNews(t, testDB.Pool, author.ID, domain.StatusPublished)

	t.Run("returns the new value", func(t *testing.T) {
		views, err := newsRepo.IncrementViews(ctx, news.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, views)
	})

	t.Run("concurrent increments lose nothing", func(t *testing.T) {
		const workers = 20

		var wg sync.WaitGroup
		for i := 0; i < workers; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := newsRepo.IncrementViews(ctx, news.ID)
				assert.NoError(t, err)
			}()
		}
		wg.Wait()

		got, err := newsRepo.GetByID(ctx, news.ID)
		require.NoError(t, err)
		assert.Equal(t, 1+workers, got.Views)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := newsRepo.IncrementViews(ctx, uuid.NewString())
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestPostgresNewsRepository_MarkNotified(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	testDB := SetupTestDB(t)
	defer testDB.Cleanup(t)

	newsRepo := repository.NewPostgresNewsRepository(testDB.Pool)
	ctx := context.Background()

	testDB.TruncateTables(t, "news", "users")
	author := createTestUser(t, testDB.Pool)
	news := createTestNews(t, testDB.Pool, author.ID, domain.StatusDraft)

	before, err := newsRepo.GetByID(ctx, news.ID)
	require.NoError(t, err)
	require.False(t, before.Notified)

	require.NoError(t, newsRepo.MarkNotified(ctx, news.ID))

	after, err := newsRepo.GetByID(ctx, news.ID)
	require.NoError(t, err)
	assert.True(t, after.Notified)
	// Only the flag changes.
	assert.Equal(t, before.Status, after.Status)
	assert.WithinDuration(t, before.UpdatedAt, after.UpdatedAt, time.Millisecond)
}

func TestPostgresNewsRepository_StreamAll(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	testDB := SetupTestDB(t)
	defer testDB.Cleanup(t)

	newsRepo := repository.NewPostgresNewsRepository(testDB.Pool)
	ctx := context.Background()

	testDB.TruncateTables(t, "news", "users")
	author := createTestUser(t, testDB.Pool)
	for i := 0; i < 3; i++ {
		createTestNews(t, testDB.Pool, author.ID, domain.StatusPublished)
	}

	var seen []string
	err := newsRepo.StreamAll(ctx, func(n domain.News) error {
		seen = append(seen, n.ID)
		return nil
	})
	require.NoError(t, err)
	assert.Len(t, seen, 3)
}
