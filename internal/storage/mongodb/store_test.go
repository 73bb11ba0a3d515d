package mongodb

import (
	"testing"
	"time"

	"github.com/UkralStul/blog-posts-service/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestPostDocumentShape(t *testing.T) {
	post := domain.NewPost("p1", "T", "Alice", "Content", "u1", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	post.ToggleFavorite("u2")
	c := post.AppendComment("c1", "u2", "Bob", "Nice story", post.CreatedAt)
	c.AppendReply("r1", "u1", "Alice", "Thanks", post.CreatedAt)

	raw, err := bson.Marshal(post)
	require.NoError(t, err)

	var doc bson.M
	require.NoError(t, bson.Unmarshal(raw, &doc))
	assert.Equal(t, "p1", doc["_id"])
	assert.Equal(t, bson.A{"u2"}, doc["favorites"])

	var decoded domain.Post
	require.NoError(t, bson.Unmarshal(raw, &decoded))
	require.Len(t, decoded.Comments, 1)
	require.Len(t, decoded.Comments[0].Replies, 1)
	assert.Equal(t, "Thanks", decoded.Comments[0].Replies[0].Content)
}

func TestNormalize(t *testing.T) {
	post := &domain.Post{ID: "p1", Comments: []*domain.Comment{{ID: "c1"}}}
	normalize(post)

	assert.NotNil(t, post.Likes)
	assert.NotNil(t, post.Dislikes)
	assert.NotNil(t, post.Favorites)
	assert.NotNil(t, post.Comments[0].Replies)
}
