package storage

import (
	"context"
	"errors"

	"github.com/UkralStul/blog-posts-service/internal/domain"
)

// ErrNotFound возвращается хранилищем, если документа нет.
var ErrNotFound = errors.New("not found")

// Storage определяет контракт для хранилищ постов.
// Пост читается и записывается целиком, частичных обновлений вложенных коллекций нет.
type Storage interface {
	GetPosts(ctx context.Context) ([]*domain.Post, error)
	GetPostsByAuthor(ctx context.Context, authorID string) ([]*domain.Post, error)
	GetFavoritePosts(ctx context.Context, userID string) ([]*domain.Post, error)
	GetPostByID(ctx context.Context, id string) (*domain.Post, error)

	CreatePost(ctx context.Context, post *domain.Post) (*domain.Post, error)
	SavePost(ctx context.Context, post *domain.Post) error
	DeletePost(ctx context.Context, id string) error

	// TitleTaken сообщает, есть ли пост с таким заголовком и другим id.
	TitleTaken(ctx context.Context, title, excludeID string) (bool, error)
}

// Directory - справочник пользователей, нужен только для имен авторов комментариев.
type Directory interface {
	// GetDisplayNames возвращает имена для найденных id; отсутствующие id в карту не попадают.
	GetDisplayNames(ctx context.Context, ids []string) (map[string]string, error)
}
