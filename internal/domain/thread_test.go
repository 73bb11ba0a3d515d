package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sameID(actingID, ownerID string) bool { return actingID == ownerID }

func TestAppendComment(t *testing.T) {
	p := newTestPost()
	now := time.Now()

	c := p.AppendComment("c1", "u2", "Bob", "Nice story", now)
	require.Len(t, p.Comments, 1)
	assert.Same(t, c, p.Comments[0])
	assert.Equal(t, "u2", c.AuthorID)
	assert.Equal(t, "Bob", c.AuthorName)
	assert.Equal(t, "Nice story", c.Content)
	assert.Empty(t, c.Replies)
	assert.NotNil(t, c.Replies)
	assert.Equal(t, now, c.CreatedAt)
}

func TestRemoveComment(t *testing.T) {
	p := newTestPost()
	p.AppendComment("c1", "u2", "Bob", "one", time.Now())
	p.AppendComment("c2", "u3", "Carol", "two", time.Now())
	p.AppendComment("c3", "u2", "Bob", "three", time.Now())

	assert.False(t, p.RemoveComment("c2", "u2", sameID), "not the author")
	assert.False(t, p.RemoveComment("missing", "u2", sameID))
	require.Len(t, p.Comments, 3)

	assert.True(t, p.RemoveComment("c1", "u2", sameID))
	require.Len(t, p.Comments, 2)
	assert.Equal(t, "c2", p.Comments[0].ID)
	assert.Equal(t, "c3", p.Comments[1].ID)
}

func TestReplies(t *testing.T) {
	p := newTestPost()
	c := p.AppendComment("c1", "u2", "Bob", "one", time.Now())

	r := c.AppendReply("r1", "u1", "Alice", "thanks", time.Now())
	c.AppendReply("r2", "u3", "Carol", "+1", time.Now())
	require.Len(t, p.FindComment("c1").Replies, 2)
	assert.Equal(t, "Alice", r.AuthorName)
	assert.Nil(t, p.FindComment("c9"))

	assert.False(t, c.RemoveReply("r1", "u2", sameID))
	assert.True(t, c.RemoveReply("r1", "u1", sameID))
	require.Len(t, c.Replies, 1)
	assert.Equal(t, "r2", c.Replies[0].ID)
}

func TestClone_IsDeep(t *testing.T) {
	p := newTestPost()
	p.ToggleLike("u2")
	c := p.AppendComment("c1", "u2", "Bob", "one", time.Now())
	c.AppendReply("r1", "u1", "Alice", "thanks", time.Now())

	cp := p.Clone()
	cp.ToggleLike("u2")
	cp.Comments[0].Content = "changed"
	cp.Comments[0].Replies[0].Content = "changed"
	cp.AppendComment("c2", "u3", "Carol", "two", time.Now())

	assert.Equal(t, IdentitySet{"u2"}, p.Likes)
	require.Len(t, p.Comments, 1)
	assert.Equal(t, "one", p.Comments[0].Content)
	assert.Equal(t, "thanks", p.Comments[0].Replies[0].Content)
}

func TestErrorKinds(t *testing.T) {
	err := NewNotFoundError("post not found")
	assert.Equal(t, KindNotFound, KindOf(err))
	assert.True(t, IsKind(err, KindNotFound))
	assert.Equal(t, "post not found", PublicMessage(err))

	internal := NewError(KindInternal, "unexpected error", assert.AnError)
	assert.ErrorIs(t, internal, assert.AnError)
	assert.Equal(t, "unexpected error", PublicMessage(internal))
	assert.Equal(t, KindInternal, KindOf(assert.AnError))
}
