package httpapi

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/UkralStul/blog-posts-service/internal/domain"
	"github.com/UkralStul/blog-posts-service/internal/service"
	"github.com/go-chi/chi/v5"
)

type postRequest struct {
	Title   *string `json:"title"`
	Author  *string `json:"author"`
	Content *string `json:"content"`
}

type contentRequest struct {
	Content string `json:"content"`
}

type postResponse struct {
	Message string       `json:"message,omitempty"`
	Post    *domain.Post `json:"post"`
}

func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid request body", Kind: string(domain.KindValidation)})
		return false
	}
	return true
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// === Posts ===

func (s *Server) listPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := s.svc.ListPosts(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, posts)
}

func (s *Server) myPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := s.svc.ListPostsByAuthor(r.Context(), ActingUser(r.Context()))
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, posts)
}

func (s *Server) getPost(w http.ResponseWriter, r *http.Request) {
	post, err := s.svc.GetPost(r.Context(), chi.URLParam(r, "postId"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, post)
}

func (s *Server) createPost(w http.ResponseWriter, r *http.Request) {
	var req postRequest
	if !decode(w, r, &req) {
		return
	}
	post, err := s.svc.CreatePost(r.Context(), ActingUser(r.Context()), service.NewPost{
		Title:   deref(req.Title),
		Author:  deref(req.Author),
		Content: deref(req.Content),
	})
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, postResponse{Message: "post created", Post: post})
}

func (s *Server) updatePost(w http.ResponseWriter, r *http.Request) {
	var req postRequest
	if !decode(w, r, &req) {
		return
	}
	post, err := s.svc.UpdatePost(r.Context(), chi.URLParam(r, "postId"), ActingUser(r.Context()), service.PostUpdate{
		Title:   req.Title,
		Author:  req.Author,
		Content: req.Content,
	})
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, postResponse{Message: "post updated", Post: post})
}

func (s *Server) deletePost(w http.ResponseWriter, r *http.Request) {
	if err := s.svc.DeletePost(r.Context(), chi.URLParam(r, "postId"), ActingUser(r.Context())); err != nil {
		s.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// === Reactions ===

func (s *Server) toggle(fn func(ctx context.Context, postID, actingID string) (*domain.Post, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		post, err := fn(r.Context(), chi.URLParam(r, "postId"), ActingUser(r.Context()))
		if err != nil {
			s.writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, post)
	}
}

func (s *Server) favorites(w http.ResponseWriter, r *http.Request) {
	posts, err := s.svc.ListFavorites(r.Context(), ActingUser(r.Context()))
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, posts)
}

// === Comments ===

func (s *Server) listComments(w http.ResponseWriter, r *http.Request) {
	comments, err := s.svc.ListComments(r.Context(), chi.URLParam(r, "postId"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"comments": comments})
}

func (s *Server) addComment(w http.ResponseWriter, r *http.Request) {
	var req contentRequest
	if !decode(w, r, &req) {
		return
	}
	post, err := s.svc.AddComment(r.Context(), chi.URLParam(r, "postId"), ActingUser(r.Context()), req.Content)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, postResponse{Message: "comment added", Post: post})
}

func (s *Server) deleteComment(w http.ResponseWriter, r *http.Request) {
	post, err := s.svc.DeleteComment(r.Context(),
		chi.URLParam(r, "postId"),
		chi.URLParam(r, "commentId"),
		ActingUser(r.Context()),
	)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, postResponse{Message: "comment deleted", Post: post})
}

func (s *Server) addReply(w http.ResponseWriter, r *http.Request) {
	var req contentRequest
	if !decode(w, r, &req) {
		return
	}
	post, err := s.svc.AddReply(r.Context(),
		chi.URLParam(r, "postId"),
		chi.URLParam(r, "commentId"),
		ActingUser(r.Context()),
		req.Content,
	)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, postResponse{Message: "reply added", Post: post})
}

func (s *Server) deleteReply(w http.ResponseWriter, r *http.Request) {
	post, err := s.svc.DeleteReply(r.Context(),
		chi.URLParam(r, "postId"),
		chi.URLParam(r, "commentId"),
		chi.URLParam(r, "replyId"),
		ActingUser(r.Context()),
	)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, postResponse{Message: "reply deleted", Post: post})
}
