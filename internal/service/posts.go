package service

import (
	"context"

	"github.com/UkralStul/blog-posts-service/internal/access"
	"github.com/UkralStul/blog-posts-service/internal/domain"
)

// NewPost - поля нового поста.
type NewPost struct {
	Title   string
	Author  string
	Content string
}

// PostUpdate - изменяемые поля поста; nil означает "не менять".
type PostUpdate struct {
	Title   *string
	Author  *string
	Content *string
}

func (s *Service) CreatePost(ctx context.Context, actingID string, input NewPost) (*domain.Post, error) {
	userID, err := access.RequireIdentity(actingID)
	if err != nil {
		return nil, err
	}
	if input.Title == "" || input.Author == "" || input.Content == "" {
		return nil, domain.NewValidationError("title, author and content are required")
	}

	post := domain.NewPost(s.newID(), input.Title, input.Author, input.Content, userID, s.now())
	created, err := s.store.CreatePost(ctx, post)
	if err != nil {
		return nil, s.internal(ctx, "create post", err)
	}
	s.log.InfoContext(ctx, "post created", "post_id", created.ID, "author_id", userID)
	return created, nil
}

func (s *Service) UpdatePost(ctx context.Context, postID, actingID string, input PostUpdate) (*domain.Post, error) {
	post, err := s.loadPost(ctx, postID, "post not found")
	if err != nil {
		return nil, err
	}
	if err := access.Authorize(actingID, post.AuthorID, "you are not authorized to update this post"); err != nil {
		return nil, err
	}
	for _, field := range []*string{input.Title, input.Author, input.Content} {
		if field != nil && *field == "" {
			return nil, domain.NewValidationError("field must not be empty")
		}
	}

	if input.Title != nil {
		taken, err := s.store.TitleTaken(ctx, *input.Title, post.ID)
		if err != nil {
			return nil, s.internal(ctx, "check title", err)
		}
		if taken {
			return nil, domain.NewConflictError("a post with this title already exists")
		}
		post.Title = *input.Title
	}
	if input.Author != nil {
		post.AuthorName = *input.Author
	}
	if input.Content != nil {
		post.Content = *input.Content
	}
	return s.persist(ctx, post)
}

func (s *Service) DeletePost(ctx context.Context, postID, actingID string) error {
	post, err := s.loadPost(ctx, postID, "post not found")
	if err != nil {
		return err
	}
	if err := access.Authorize(actingID, post.AuthorID, "you are not authorized to delete this post"); err != nil {
		return err
	}
	if err := s.store.DeletePost(ctx, post.ID); err != nil {
		return s.internal(ctx, "delete post", err)
	}
	s.log.InfoContext(ctx, "post deleted", "post_id", post.ID)
	return nil
}

func (s *Service) GetPost(ctx context.Context, postID string) (*domain.Post, error) {
	return s.loadPost(ctx, postID, "post not found")
}

func (s *Service) ListPosts(ctx context.Context) ([]*domain.Post, error) {
	posts, err := s.store.GetPosts(ctx)
	if err != nil {
		return nil, s.internal(ctx, "list posts", err)
	}
	return posts, nil
}

// ListPostsByAuthor возвращает посты действующего пользователя.
func (s *Service) ListPostsByAuthor(ctx context.Context, actingID string) ([]*domain.Post, error) {
	userID, err := access.RequireIdentity(actingID)
	if err != nil {
		return nil, err
	}
	posts, err := s.store.GetPostsByAuthor(ctx, userID)
	if err != nil {
		return nil, s.internal(ctx, "list posts by author", err)
	}
	return posts, nil
}
