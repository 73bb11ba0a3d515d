package service

import (
	"context"

	"github.com/UkralStul/blog-posts-service/internal/access"
	"github.com/UkralStul/blog-posts-service/internal/domain"
)

func (s *Service) AddComment(ctx context.Context, postID, actingID, content string) (*domain.Post, error) {
	userID, err := access.RequireIdentity(actingID)
	if err != nil {
		return nil, err
	}
	if content == "" {
		return nil, domain.NewValidationError("comment content is required")
	}
	post, err := s.loadPost(ctx, postID, "failed to add comment")
	if err != nil {
		return nil, err
	}
	name, err := s.resolveName(ctx, userID)
	if err != nil {
		return nil, err
	}

	post.AppendComment(s.newID(), userID, name, content, s.now())
	return s.persist(ctx, post)
}

// ListComments возвращает все дерево комментариев поста без пагинации.
func (s *Service) ListComments(ctx context.Context, postID string) ([]*domain.Comment, error) {
	post, err := s.loadPost(ctx, postID, "comments not found")
	if err != nil {
		return nil, err
	}
	return post.Comments, nil
}

// DeleteComment удаляет комментарий автора. Несуществующий и чужой комментарий
// дают одну и ту же ошибку FORBIDDEN, чтобы не раскрывать существование комментария.
func (s *Service) DeleteComment(ctx context.Context, postID, commentID, actingID string) (*domain.Post, error) {
	post, err := s.loadPost(ctx, postID, "comment not found")
	if err != nil {
		return nil, err
	}
	if !post.RemoveComment(commentID, actingID, access.Owns) {
		return nil, domain.NewAuthorizationError("you are not authorized to delete this comment or comment not found")
	}
	return s.persist(ctx, post)
}

func (s *Service) AddReply(ctx context.Context, postID, commentID, actingID, content string) (*domain.Post, error) {
	userID, err := access.RequireIdentity(actingID)
	if err != nil {
		return nil, err
	}
	if content == "" {
		return nil, domain.NewValidationError("reply content is required")
	}
	post, err := s.loadPost(ctx, postID, "failed to add reply")
	if err != nil {
		return nil, err
	}
	comment := post.FindComment(commentID)
	if comment == nil {
		return nil, domain.NewNotFoundError("comment not found")
	}
	name, err := s.resolveName(ctx, userID)
	if err != nil {
		return nil, err
	}

	comment.AppendReply(s.newID(), userID, name, content, s.now())
	return s.persist(ctx, post)
}

// DeleteReply - то же правило, что и для DeleteComment, внутри одного комментария.
func (s *Service) DeleteReply(ctx context.Context, postID, commentID, replyID, actingID string) (*domain.Post, error) {
	post, err := s.loadPost(ctx, postID, "reply not found")
	if err != nil {
		return nil, err
	}
	comment := post.FindComment(commentID)
	if comment == nil {
		return nil, domain.NewNotFoundError("reply not found")
	}
	if !comment.RemoveReply(replyID, actingID, access.Owns) {
		return nil, domain.NewAuthorizationError("you are not authorized to delete this reply or reply not found")
	}
	return s.persist(ctx, post)
}
