package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/TarlavinaMaria/NewsBlogOfficialApp/internal/domain"
	"github.com/TarlavinaMaria/NewsBlogOfficialApp/internal/logger"
	"github.com/TarlavinaMaria/NewsBlogOfficialApp/internal/metrics"
	"github.com/TarlavinaMaria/NewsBlogOfficialApp/internal/repository"
	"github.com/TarlavinaMaria/NewsBlogOfficialApp/internal/validator"
)

// DefaultNotifyTimeout bounds a single moderation notification send.
const DefaultNotifyTimeout = 10 * time.Second

// NewsService owns the article lifecycle: proposal intake, the
// moderation status workflow, view counting and export.
type NewsService struct {
	newsRepo repository.NewsRepository
	tagRepo  repository.TagRepository
	userRepo repository.UserRepository
	notifier Notifier
	v        *validator.Validator

	fallbackAuthorID string
	pageSize         int
	notifyTimeout    time.Duration

	wg sync.WaitGroup
}

// NewNewsService creates a new NewsService. fallbackAuthorID is the
// account credited when an unauthenticated visitor proposes an article.
func NewNewsService(
	newsRepo repository.NewsRepository,
	tagRepo repository.TagRepository,
	userRepo repository.UserRepository,
	notifier Notifier,
	v *validator.Validator,
	fallbackAuthorID string,
	pageSize int,
	notifyTimeout time.Duration,
) *NewsService {
	if notifyTimeout <= 0 {
		notifyTimeout = DefaultNotifyTimeout
	}
	return &NewsService{
		newsRepo:         newsRepo,
		tagRepo:          tagRepo,
		userRepo:         userRepo,
		notifier:         notifier,
		v:                v,
		fallbackAuthorID: fallbackAuthorID,
		pageSize:         pageSize,
		notifyTimeout:    notifyTimeout,
	}
}

// Close waits for in-flight notification sends to finish.
func (s *NewsService) Close() {
	s.wg.Wait()
}

// Propose persists a visitor submission. The record is always created
// as a draft with notified=false; the author is the submitter, or the
// configured fallback account when authorID is empty. The moderation
// notification is dispatched after the record is durable, so article
// persistence never depends on notifier availability.
func (s *NewsService) Propose(ctx context.Context, form *validator.ProposalForm, authorID string) (*domain.News, error) {
	if err := s.v.ValidateProposal(form); err != nil {
		return nil, err
	}

	if authorID == "" {
		authorID = s.fallbackAuthorID
	}
	author, err := s.userRepo.GetByID(ctx, authorID)
	if err != nil {
		return nil, fmt.Errorf("resolve author: %w", err)
	}

	tagIDs := make([]string, 0, len(form.TagSlugs))
	tags := make([]domain.Tag, 0, len(form.TagSlugs))
	for _, slug := range form.TagSlugs {
		tag, err := s.tagRepo.GetBySlug(ctx, slug)
		if err != nil {
			return nil, fmt.Errorf("resolve tag %q: %w", slug, err)
		}
		tagIDs = append(tagIDs, tag.ID)
		tags = append(tags, *tag)
	}

	now := time.Now().UTC()
	news := &domain.News{
		ID:        uuid.New().String(),
		Title:     form.Title,
		Brief:     form.Brief,
		Content:   form.Content,
		PubDate:   now,
		Status:    domain.StatusDraft,
		ImagePath: form.ImagePath,
		AuthorID:  author.ID,
		Notified:  false,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.newsRepo.Create(ctx, news, tagIDs); err != nil {
		return nil, fmt.Errorf("create news: %w", err)
	}
	news.Tags = tags
	metrics.ArticlesProposedTotal.Inc()

	s.dispatchNotification(news, author.Username)

	return news, nil
}

// dispatchNotification fires the moderation notification for a newly
// created draft. It runs detached from the request: a failed or timed
// out send is logged, the notified flag is set either way, and the
// notifier is never invoked again for this article.
func (s *NewsService) dispatchNotification(news *domain.News, authorName string) {
	if news.Status != domain.StatusDraft || news.Notified {
		return
	}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		sendCtx, cancelSend := context.WithTimeout(context.Background(), s.notifyTimeout)
		defer cancelSend()

		timer := metrics.NewTimer()
		result := "success"
		if err := s.notifier.NotifyProposed(sendCtx, news, authorName); err != nil {
			result = "failure"
			logger.Error("Moderation notification failed",
				slog.String("news_id", news.ID),
				slog.String("error", err.Error()))
		}
		metrics.ObserveNotification(result, timer.Elapsed())

		// The flag is set after the send attempt regardless of the
		// outcome: failed sends are not retried. A send that ate the
		// whole timeout must not doom the flag write, so it gets its
		// own deadline.
		markCtx, cancelMark := context.WithTimeout(context.Background(), s.notifyTimeout)
		defer cancelMark()
		if err := s.newsRepo.MarkNotified(markCtx, news.ID); err != nil {
			logger.Error("Failed to mark news as notified",
				slog.String("news_id", news.ID),
				slog.String("error", err.Error()))
		}
	}()
}

// Get fetches an article. When countView is true a detail-page view is
// recorded through a single atomic increment.
func (s *NewsService) Get(ctx context.Context, id string, countView bool) (*domain.News, error) {
	news, err := s.newsRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if countView {
		views, err := s.newsRepo.IncrementViews(ctx, id)
		if err != nil {
			return nil, err
		}
		news.Views = views
		metrics.ArticleViewsTotal.Inc()
	}

	return news, nil
}

// List returns one page of articles matching the filter.
func (s *NewsService) List(ctx context.Context, filter domain.NewsFilter) (*NewsPage, error) {
	if filter.Status != "" && !domain.IsValidStatus(filter.Status) {
		return nil, domain.ErrInvalidStatus
	}
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PerPage < 1 {
		filter.PerPage = s.pageSize
	}

	items, total, err := s.newsRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	return &NewsPage{
		Items:   items,
		Total:   total,
		Page:    filter.Page,
		PerPage: filter.PerPage,
	}, nil
}

// SetStatus overwrites the status of one article. Any status is
// reachable from any other; no transition table is enforced.
func (s *NewsService) SetStatus(ctx context.Context, id, status string) error {
	if !domain.IsValidStatus(status) {
		return domain.ErrInvalidStatus
	}
	if err := s.newsRepo.UpdateStatus(ctx, id, status); err != nil {
		return err
	}
	metrics.StatusChangesTotal.WithLabelValues(status).Inc()
	return nil
}

// BulkSetStatus overwrites the status of the given articles.
func (s *NewsService) BulkSetStatus(ctx context.Context, ids []string, status string) (int64, error) {
	if !domain.IsValidStatus(status) {
		return 0, domain.ErrInvalidStatus
	}
	changed, err := s.newsRepo.BulkUpdateStatus(ctx, ids, status)
	if err != nil {
		return 0, err
	}
	metrics.StatusChangesTotal.WithLabelValues(status).Add(float64(changed))
	return changed, nil
}

// Export streams every article to w as NDJSON and returns the record
// count.
func (s *NewsService) Export(ctx context.Context, w io.Writer) (int, error) {
	enc := json.NewEncoder(w)
	count := 0

	err := s.newsRepo.StreamAll(ctx, func(n domain.News) error {
		if err := enc.Encode(n); err != nil {
			return err
		}
		count++
		return nil
	})
	if err != nil {
		metrics.ExportsTotal.WithLabelValues("failure").Inc()
		return count, fmt.Errorf("export news: %w", err)
	}

	metrics.ExportsTotal.WithLabelValues("success").Inc()
	metrics.ExportRecords.Add(float64(count))
	return count, nil
}
