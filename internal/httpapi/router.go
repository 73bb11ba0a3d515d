package httpapi

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/UkralStul/blog-posts-service/internal/dataloader"
	"github.com/UkralStul/blog-posts-service/internal/domain"
	"github.com/UkralStul/blog-posts-service/internal/logging"
	"github.com/UkralStul/blog-posts-service/internal/service"
	"github.com/UkralStul/blog-posts-service/internal/storage"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
)

// Server связывает HTTP-маршруты с сервисом постов.
type Server struct {
	svc *service.Service
}

// NewRouter собирает роутер со всеми маршрутами.
func NewRouter(svc *service.Service, dir storage.Directory, auth *Authenticator, allowedOrigins []string, log *slog.Logger) http.Handler {
	s := &Server{svc: svc}

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(logging.Requests(log))
	router.Use(middleware.Recoverer)
	router.Use(cors.New(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}).Handler)
	router.Use(dataloader.Middleware(dir))

	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	router.Route("/posts", func(r chi.Router) {
		r.Get("/", s.listPosts)
		r.With(auth.Middleware).Get("/my-posts", s.myPosts)
		r.Get("/{postId}", s.getPost)
		r.With(auth.Middleware).Post("/", s.createPost)
		r.With(auth.Middleware).Put("/{postId}", s.updatePost)
		r.With(auth.Middleware).Delete("/{postId}", s.deletePost)
	})

	router.Route("/reactions", func(r chi.Router) {
		r.Use(auth.Middleware)
		r.Post("/{postId}/like", s.toggle(svc.ToggleLike))
		r.Post("/{postId}/dislike", s.toggle(svc.ToggleDislike))
		r.Post("/{postId}/favorite", s.toggle(svc.ToggleFavorite))
		r.Get("/favorites", s.favorites)
	})

	router.Route("/comments/{postId}", func(r chi.Router) {
		r.Get("/comments", s.listComments)
		r.Group(func(r chi.Router) {
			r.Use(auth.Middleware)
			r.Post("/add-comment", s.addComment)
			r.Delete("/comment/{commentId}/delete-comment", s.deleteComment)
			r.Post("/comment/{commentId}/add-reply", s.addReply)
			r.Delete("/comment/{commentId}/reply/{replyId}/delete-reply", s.deleteReply)
		})
	})

	return router
}

type errorBody struct {
	Error string `json:"error"`
	Kind  string `json:"kind,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// statusFor переводит класс ошибки в HTTP-статус.
func statusFor(kind domain.Kind) int {
	switch kind {
	case domain.KindValidation:
		return http.StatusBadRequest
	case domain.KindNotFound:
		return http.StatusNotFound
	case domain.KindForbidden:
		return http.StatusForbidden
	case domain.KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	kind := domain.KindOf(err)
	writeJSON(w, statusFor(kind), errorBody{Error: domain.PublicMessage(err), Kind: string(kind)})
}
