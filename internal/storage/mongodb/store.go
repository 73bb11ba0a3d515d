package mongodb

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/UkralStul/blog-posts-service/internal/domain"
	"github.com/UkralStul/blog-posts-service/internal/storage"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Store реализует Storage и Directory поверх MongoDB.
// Каждый пост - один документ с вложенными комментариями и ответами.
type Store struct {
	client *mongo.Client
	posts  *mongo.Collection
	users  *mongo.Collection
}

// userDocument - проекция коллекции пользователей, нужна только для имени.
type userDocument struct {
	ID   string `bson:"_id"`
	Name string `bson:"name"`
}

// New подключается к MongoDB и проверяет соединение.
func New(ctx context.Context, uri, database string) (*Store, error) {
	serverAPI := options.ServerAPI(options.ServerAPIVersion1)
	opts := options.Client().ApplyURI(uri).SetServerAPIOptions(serverAPI)

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}
	if err := client.Database("admin").RunCommand(ctx, bson.D{{Key: "ping", Value: 1}}).Err(); err != nil {
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	db := client.Database(database)
	s := &Store{
		client: client,
		posts:  db.Collection("posts"),
		users:  db.Collection("users"),
	}

	_, err = s.posts.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "title", Value: 1}}},
		{Keys: bson.D{{Key: "authorId", Value: 1}}},
		{Keys: bson.D{{Key: "favorites", Value: 1}}},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create indexes: %w", err)
	}

	slog.Info("connected to MongoDB", "database", database)
	return s, nil
}

func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// === Post Methods ===

func (s *Store) CreatePost(ctx context.Context, post *domain.Post) (*domain.Post, error) {
	if _, err := s.posts.InsertOne(ctx, post); err != nil {
		return nil, fmt.Errorf("insert post: %w", err)
	}
	return post, nil
}

func (s *Store) GetPostByID(ctx context.Context, id string) (*domain.Post, error) {
	var post domain.Post
	err := s.posts.FindOne(ctx, bson.M{"_id": id}).Decode(&post)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("post with id %s: %w", id, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("find post: %w", err)
	}
	normalize(&post)
	return &post, nil
}

// SavePost заменяет документ целиком; запись одного документа в MongoDB атомарна.
func (s *Store) SavePost(ctx context.Context, post *domain.Post) error {
	res, err := s.posts.ReplaceOne(ctx, bson.M{"_id": post.ID}, post)
	if err != nil {
		return fmt.Errorf("replace post: %w", err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("post with id %s: %w", post.ID, storage.ErrNotFound)
	}
	return nil
}

func (s *Store) DeletePost(ctx context.Context, id string) error {
	res, err := s.posts.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete post: %w", err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("post with id %s: %w", id, storage.ErrNotFound)
	}
	return nil
}

func (s *Store) GetPosts(ctx context.Context) ([]*domain.Post, error) {
	return s.find(ctx, bson.M{})
}

func (s *Store) GetPostsByAuthor(ctx context.Context, authorID string) ([]*domain.Post, error) {
	return s.find(ctx, bson.M{"authorId": authorID})
}

// GetFavoritePosts использует то, что равенство по полю-массиву в MongoDB означает "содержит".
func (s *Store) GetFavoritePosts(ctx context.Context, userID string) ([]*domain.Post, error) {
	return s.find(ctx, bson.M{"favorites": userID})
}

func (s *Store) TitleTaken(ctx context.Context, title, excludeID string) (bool, error) {
	n, err := s.posts.CountDocuments(ctx,
		bson.M{"title": title, "_id": bson.M{"$ne": excludeID}},
		options.Count().SetLimit(1),
	)
	if err != nil {
		return false, fmt.Errorf("count posts by title: %w", err)
	}
	return n > 0, nil
}

func (s *Store) find(ctx context.Context, filter bson.M) ([]*domain.Post, error) {
	cursor, err := s.posts.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("database query failed: %w", err)
	}
	defer cursor.Close(ctx)

	posts := make([]*domain.Post, 0)
	for cursor.Next(ctx) {
		var post domain.Post
		if err := cursor.Decode(&post); err != nil {
			return nil, fmt.Errorf("decode post: %w", err)
		}
		normalize(&post)
		posts = append(posts, &post)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor iteration failed: %w", err)
	}
	return posts, nil
}

// normalize заменяет null-массивы пустыми, документы могли быть записаны не этим сервисом.
func normalize(p *domain.Post) {
	if p.Likes == nil {
		p.Likes = domain.IdentitySet{}
	}
	if p.Dislikes == nil {
		p.Dislikes = domain.IdentitySet{}
	}
	if p.Favorites == nil {
		p.Favorites = domain.IdentitySet{}
	}
	if p.Comments == nil {
		p.Comments = []*domain.Comment{}
	}
	for _, c := range p.Comments {
		if c.Replies == nil {
			c.Replies = []*domain.Reply{}
		}
	}
}

// === Directory Methods ===

func (s *Store) GetDisplayNames(ctx context.Context, ids []string) (map[string]string, error) {
	cursor, err := s.users.Find(ctx,
		bson.M{"_id": bson.M{"$in": ids}},
		options.Find().SetProjection(bson.M{"name": 1}),
	)
	if err != nil {
		return nil, fmt.Errorf("find users: %w", err)
	}
	var users []userDocument
	if err := cursor.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("decode users: %w", err)
	}
	result := make(map[string]string, len(users))
	for _, u := range users {
		result[u.ID] = u.Name
	}
	return result, nil
}
