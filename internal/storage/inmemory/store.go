package inmemory

import (
	"context"
	"fmt"
	"sync"

	"github.com/UkralStul/blog-posts-service/internal/domain"
	"github.com/UkralStul/blog-posts-service/internal/storage"
)

// Store реализует Storage и Directory в памяти.
// Посты хранятся копиями, чтобы вызывающий код не мог изменить их в обход SavePost.
type Store struct {
	mu    sync.RWMutex
	posts map[string]*domain.Post
	order []string // порядок вставки, как естественный порядок документов
	users map[string]string
}

// New создает новый экземпляр in-memory хранилища.
func New() *Store {
	return &Store{
		posts: make(map[string]*domain.Post),
		users: make(map[string]string),
	}
}

// PutUser добавляет или переименовывает пользователя в справочнике.
func (s *Store) PutUser(id, name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[id] = name
}

// === Post Methods ===

func (s *Store) CreatePost(ctx context.Context, post *domain.Post) (*domain.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.posts[post.ID]; ok {
		return nil, fmt.Errorf("post with id %s already exists", post.ID)
	}
	s.posts[post.ID] = post.Clone()
	s.order = append(s.order, post.ID)
	return post, nil
}

func (s *Store) GetPostByID(ctx context.Context, id string) (*domain.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	post, ok := s.posts[id]
	if !ok {
		return nil, fmt.Errorf("post with id %s: %w", id, storage.ErrNotFound)
	}
	return post.Clone(), nil
}

func (s *Store) SavePost(ctx context.Context, post *domain.Post) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.posts[post.ID]; !ok {
		return fmt.Errorf("post with id %s: %w", post.ID, storage.ErrNotFound)
	}
	s.posts[post.ID] = post.Clone()
	return nil
}

func (s *Store) DeletePost(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.posts[id]; !ok {
		return fmt.Errorf("post with id %s: %w", id, storage.ErrNotFound)
	}
	delete(s.posts, id)
	for i, pID := range s.order {
		if pID == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

func (s *Store) GetPosts(ctx context.Context) ([]*domain.Post, error) {
	return s.filter(func(*domain.Post) bool { return true }), nil
}

func (s *Store) GetPostsByAuthor(ctx context.Context, authorID string) ([]*domain.Post, error) {
	return s.filter(func(p *domain.Post) bool { return p.AuthorID == authorID }), nil
}

func (s *Store) GetFavoritePosts(ctx context.Context, userID string) ([]*domain.Post, error) {
	return s.filter(func(p *domain.Post) bool { return p.Favorites.Contains(userID) }), nil
}

func (s *Store) TitleTaken(ctx context.Context, title, excludeID string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for id, p := range s.posts {
		if id != excludeID && p.Title == title {
			return true, nil
		}
	}
	return false, nil
}

// filter - вспомогательная функция выборки в порядке вставки
func (s *Store) filter(keep func(*domain.Post) bool) []*domain.Post {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*domain.Post, 0, len(s.order))
	for _, id := range s.order {
		if p := s.posts[id]; keep(p) {
			result = append(result, p.Clone())
		}
	}
	return result
}

// === Directory Methods ===

func (s *Store) GetDisplayNames(ctx context.Context, ids []string) (map[string]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make(map[string]string, len(ids))
	for _, id := range ids {
		if name, ok := s.users[id]; ok {
			result[id] = name
		}
	}
	return result, nil
}
