// Package service реализует операции над постами: редактирование, реакции, комментарии и ответы.
// Каждая операция загружает пост целиком, изменяет его в памяти и сохраняет целиком.
package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/UkralStul/blog-posts-service/internal/domain"
	"github.com/UkralStul/blog-posts-service/internal/storage"
	"github.com/google/uuid"
)

// NameResolver находит отображаемое имя пользователя по его id.
type NameResolver interface {
	ResolveDisplayName(ctx context.Context, userID string) (string, error)
}

// Service - точка входа для всех операций над постами.
type Service struct {
	store storage.Storage
	names NameResolver
	log   *slog.Logger

	now   func() time.Time
	newID func() string
}

// Option настраивает Service.
type Option func(*Service)

// WithClock подменяет источник времени.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithIDGenerator подменяет генератор идентификаторов.
func WithIDGenerator(newID func() string) Option {
	return func(s *Service) { s.newID = newID }
}

func New(store storage.Storage, names NameResolver, log *slog.Logger, opts ...Option) *Service {
	s := &Service{
		store: store,
		names: names,
		log:   log,
		now:   func() time.Time { return time.Now().UTC() },
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// loadPost загружает пост; отсутствие поста превращается в NOT_FOUND.
func (s *Service) loadPost(ctx context.Context, postID, notFoundMsg string) (*domain.Post, error) {
	post, err := s.store.GetPostByID(ctx, postID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, domain.NewNotFoundError(notFoundMsg)
		}
		return nil, s.internal(ctx, "load post", err)
	}
	return post, nil
}

// persist сохраняет пост целиком и обновляет UpdatedAt.
func (s *Service) persist(ctx context.Context, post *domain.Post) (*domain.Post, error) {
	post.UpdatedAt = s.now()
	if err := s.store.SavePost(ctx, post); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			// пост удалили между чтением и записью
			return nil, domain.NewNotFoundError("post not found")
		}
		return nil, s.internal(ctx, "save post", err)
	}
	return post, nil
}

// resolveName берет имя автора из справочника, а не из запроса.
func (s *Service) resolveName(ctx context.Context, userID string) (string, error) {
	name, err := s.names.ResolveDisplayName(ctx, userID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return "", domain.NewNotFoundError("user not found")
		}
		return "", s.internal(ctx, "resolve user name", err)
	}
	return name, nil
}

// internal логирует сбой хранилища и возвращает обезличенную ошибку.
func (s *Service) internal(ctx context.Context, op string, err error) error {
	s.log.ErrorContext(ctx, "storage failure", "op", op, "err", err)
	return domain.NewError(domain.KindInternal, "unexpected error", err)
}
