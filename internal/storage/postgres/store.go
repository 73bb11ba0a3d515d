package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/UkralStul/blog-posts-service/internal/domain"
	"github.com/UkralStul/blog-posts-service/internal/storage"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// postRecord - строка таблицы posts. Реакции и дерево комментариев лежат в jsonb,
// так что пост по-прежнему записывается одной строкой.
type postRecord struct {
	ID         string            `gorm:"type:varchar(64);primaryKey"`
	Title      string            `gorm:"type:varchar(255);not null;index"`
	Content    string            `gorm:"type:text;not null"`
	AuthorID   string            `gorm:"type:varchar(255);not null;index"`
	AuthorName string            `gorm:"type:varchar(255);not null"`
	Likes      []string          `gorm:"type:jsonb;serializer:json;not null"`
	Dislikes   []string          `gorm:"type:jsonb;serializer:json;not null"`
	Favorites  []string          `gorm:"type:jsonb;serializer:json;not null"`
	Comments   []*domain.Comment `gorm:"type:jsonb;serializer:json;not null"`
	CreatedAt  time.Time         `gorm:"not null"`
	UpdatedAt  time.Time         `gorm:"not null;autoUpdateTime:false"`
}

func (postRecord) TableName() string { return "posts" }

// userRecord - минимальная проекция таблицы пользователей, которой владеет сервис аутентификации.
type userRecord struct {
	ID   string `gorm:"type:varchar(64);primaryKey"`
	Name string `gorm:"type:varchar(255);not null"`
}

func (userRecord) TableName() string { return "users" }

// Store реализует интерфейсы Storage и Directory с использованием PostgreSQL.
type Store struct {
	db *gorm.DB
}

// New создает новый экземпляр хранилища PostgreSQL.
func New(dsn string, debug bool) (*Store, error) {
	level := logger.Warn
	if debug {
		level = logger.Info
	}
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(level),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.AutoMigrate(&postRecord{}, &userRecord{}); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return &Store{db: db}, nil
}

func toRecord(p *domain.Post) *postRecord {
	return &postRecord{
		ID:         p.ID,
		Title:      p.Title,
		Content:    p.Content,
		AuthorID:   p.AuthorID,
		AuthorName: p.AuthorName,
		Likes:      nonNil(p.Likes),
		Dislikes:   nonNil(p.Dislikes),
		Favorites:  nonNil(p.Favorites),
		Comments:   p.Comments,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
}

func (r *postRecord) toDomain() *domain.Post {
	comments := r.Comments
	if comments == nil {
		comments = []*domain.Comment{}
	}
	return &domain.Post{
		ID:         r.ID,
		Title:      r.Title,
		Content:    r.Content,
		AuthorID:   r.AuthorID,
		AuthorName: r.AuthorName,
		Likes:      domain.IdentitySet(nonNil(r.Likes)),
		Dislikes:   domain.IdentitySet(nonNil(r.Dislikes)),
		Favorites:  domain.IdentitySet(nonNil(r.Favorites)),
		Comments:   comments,
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
	}
}

func nonNil(ids []string) []string {
	if ids == nil {
		return []string{}
	}
	return ids
}

// === Post Methods ===

func (s *Store) CreatePost(ctx context.Context, post *domain.Post) (*domain.Post, error) {
	if err := s.db.WithContext(ctx).Create(toRecord(post)).Error; err != nil {
		return nil, err
	}
	return post, nil
}

func (s *Store) GetPostByID(ctx context.Context, id string) (*domain.Post, error) {
	var rec postRecord
	if err := s.db.WithContext(ctx).First(&rec, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("post with id %s: %w", id, storage.ErrNotFound)
		}
		return nil, err
	}
	return rec.toDomain(), nil
}

// SavePost перезаписывает строку целиком.
func (s *Store) SavePost(ctx context.Context, post *domain.Post) error {
	res := s.db.WithContext(ctx).
		Model(&postRecord{}).
		Where("id = ?", post.ID).
		Select("*").
		Updates(toRecord(post))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("post with id %s: %w", post.ID, storage.ErrNotFound)
	}
	return nil
}

func (s *Store) DeletePost(ctx context.Context, id string) error {
	res := s.db.WithContext(ctx).Delete(&postRecord{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("post with id %s: %w", id, storage.ErrNotFound)
	}
	return nil
}

func (s *Store) GetPosts(ctx context.Context) ([]*domain.Post, error) {
	return s.find(s.db.WithContext(ctx))
}

func (s *Store) GetPostsByAuthor(ctx context.Context, authorID string) ([]*domain.Post, error) {
	return s.find(s.db.WithContext(ctx).Where("author_id = ?", authorID))
}

func (s *Store) GetFavoritePosts(ctx context.Context, userID string) ([]*domain.Post, error) {
	needle, err := json.Marshal([]string{userID})
	if err != nil {
		return nil, err
	}
	return s.find(s.db.WithContext(ctx).Where("favorites @> ?::jsonb", string(needle)))
}

func (s *Store) TitleTaken(ctx context.Context, title, excludeID string) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&postRecord{}).
		Where("title = ? AND id <> ?", title, excludeID).
		Limit(1).
		Count(&count).Error
	return count > 0, err
}

func (s *Store) find(query *gorm.DB) ([]*domain.Post, error) {
	var records []*postRecord
	if err := query.Order("created_at ASC").Find(&records).Error; err != nil {
		return nil, err
	}
	posts := make([]*domain.Post, len(records))
	for i, r := range records {
		posts[i] = r.toDomain()
	}
	return posts, nil
}

// === Directory Methods ===

func (s *Store) GetDisplayNames(ctx context.Context, ids []string) (map[string]string, error) {
	var users []*userRecord
	if err := s.db.WithContext(ctx).Where("id IN ?", ids).Find(&users).Error; err != nil {
		return nil, err
	}
	result := make(map[string]string, len(users))
	for _, u := range users {
		result[u.ID] = u.Name
	}
	return result, nil
}
