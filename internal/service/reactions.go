package service

import (
	"context"

	"github.com/UkralStul/blog-posts-service/internal/access"
	"github.com/UkralStul/blog-posts-service/internal/domain"
)

// Реагировать может любой аутентифицированный пользователь, включая автора поста.

func (s *Service) ToggleLike(ctx context.Context, postID, actingID string) (*domain.Post, error) {
	return s.react(ctx, postID, actingID, (*domain.Post).ToggleLike)
}

func (s *Service) ToggleDislike(ctx context.Context, postID, actingID string) (*domain.Post, error) {
	return s.react(ctx, postID, actingID, (*domain.Post).ToggleDislike)
}

func (s *Service) ToggleFavorite(ctx context.Context, postID, actingID string) (*domain.Post, error) {
	return s.react(ctx, postID, actingID, (*domain.Post).ToggleFavorite)
}

func (s *Service) react(ctx context.Context, postID, actingID string, toggle func(*domain.Post, string)) (*domain.Post, error) {
	userID, err := access.RequireIdentity(actingID)
	if err != nil {
		return nil, err
	}
	post, err := s.loadPost(ctx, postID, "post not found")
	if err != nil {
		return nil, err
	}
	toggle(post, userID)
	return s.persist(ctx, post)
}

// ListFavorites возвращает посты, добавленные пользователем в избранное.
func (s *Service) ListFavorites(ctx context.Context, actingID string) ([]*domain.Post, error) {
	userID, err := access.RequireIdentity(actingID)
	if err != nil {
		return nil, err
	}
	posts, err := s.store.GetFavoritePosts(ctx, userID)
	if err != nil {
		return nil, s.internal(ctx, "list favorites", err)
	}
	return posts, nil
}
