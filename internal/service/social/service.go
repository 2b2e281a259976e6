package social

import (
	"context"
	"errors"

	"github.com/healthcompanion/api/internal/model"
	"github.com/healthcompanion/api/internal/repository"
	apperrors "github.com/healthcompanion/api/pkg/errors"
)

const (
	defaultFeedLimit = 20
	maxFeedLimit     = 100
)

type Service struct {
	repo repository.PostRepository
}

func NewService(repo repository.PostRepository) *Service {
	return &Service{repo: repo}
}

// ListPosts returns the feed newest-first, enriched with author identities.
func (s *Service) ListPosts(ctx context.Context, filters *model.PostFilters) ([]*model.PostWithAuthor, error) {
	if filters == nil {
		filters = &model.PostFilters{}
	}
	if filters.Limit <= 0 {
		filters.Limit = defaultFeedLimit
	}
	if filters.Limit > maxFeedLimit {
		filters.Limit = maxFeedLimit
	}

	posts, err := s.repo.List(ctx, filters)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return posts, nil
}

// CreatePost persists a post authored by the authenticated user. The author
// id never comes from the request body.
func (s *Service) CreatePost(ctx context.Context, userID int64, req *model.CreatePostRequest) (*model.PostWithAuthor, error) {
	post := &model.Post{
		UserID:   userID,
		Title:    req.Title,
		Content:  req.Content,
		PostType: req.PostType,
		ImageURL: req.ImageURL,
	}

	if err := s.repo.Create(ctx, post); err != nil {
		return nil, apperrors.Internal(err)
	}

	enriched, err := s.repo.Get(ctx, post.ID)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return enriched, nil
}

// LikePost adds exactly one like and returns the new counter. Repeat likes by
// the same caller are not deduplicated.
func (s *Service) LikePost(ctx context.Context, id int64) (int, error) {
	likes, err := s.repo.IncrementLikes(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return 0, apperrors.NotFound("post", err)
		}
		return 0, apperrors.Internal(err)
	}
	return likes, nil
}
