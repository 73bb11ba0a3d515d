package domain

import "time"

// Post представляет пост вместе со всеми реакциями и деревом комментариев.
// Пост хранится и сохраняется целиком, комментарии и ответы не существуют отдельно от него.
type Post struct {
	ID         string      `json:"_id" bson:"_id"`
	Title      string      `json:"title" bson:"title"`
	Content    string      `json:"content" bson:"content"`
	AuthorID   string      `json:"authorId" bson:"authorId"`
	AuthorName string      `json:"author" bson:"author"`
	Likes      IdentitySet `json:"likes" bson:"likes"`
	Dislikes   IdentitySet `json:"dislikes" bson:"dislikes"`
	Favorites  IdentitySet `json:"favorites" bson:"favorites"`
	Comments   []*Comment  `json:"comments" bson:"comments"`
	CreatedAt  time.Time   `json:"createdAt" bson:"createdAt"`
	UpdatedAt  time.Time   `json:"updatedAt" bson:"updatedAt"`
}

// Comment представляет комментарий к посту.
// AuthorName - снимок имени автора на момент создания, он не обновляется при переименовании.
type Comment struct {
	ID         string      `json:"_id" bson:"_id"`
	Content    string      `json:"content" bson:"content"`
	AuthorID   string      `json:"authorId" bson:"authorId"`
	AuthorName string      `json:"authorName" bson:"authorName"`
	Likes      IdentitySet `json:"likes" bson:"likes"`
	Dislikes   IdentitySet `json:"dislikes" bson:"dislikes"`
	Replies    []*Reply    `json:"replies" bson:"replies"`
	CreatedAt  time.Time   `json:"createdAt" bson:"createdAt"`
}

// Reply представляет ответ на комментарий.
type Reply struct {
	ID         string      `json:"_id" bson:"_id"`
	Content    string      `json:"content" bson:"content"`
	AuthorID   string      `json:"authorId" bson:"authorId"`
	AuthorName string      `json:"authorName" bson:"authorName"`
	Likes      IdentitySet `json:"likes" bson:"likes"`
	Dislikes   IdentitySet `json:"dislikes" bson:"dislikes"`
	CreatedAt  time.Time   `json:"createdAt" bson:"createdAt"`
}

// NewPost создает пост с пустыми реакциями и комментариями.
func NewPost(id, title, authorName, content, authorID string, now time.Time) *Post {
	return &Post{
		ID:         id,
		Title:      title,
		Content:    content,
		AuthorID:   authorID,
		AuthorName: authorName,
		Likes:      IdentitySet{},
		Dislikes:   IdentitySet{},
		Favorites:  IdentitySet{},
		Comments:   []*Comment{},
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// Clone возвращает глубокую копию поста.
func (p *Post) Clone() *Post {
	if p == nil {
		return nil
	}
	cp := *p
	cp.Likes = p.Likes.Clone()
	cp.Dislikes = p.Dislikes.Clone()
	cp.Favorites = p.Favorites.Clone()
	cp.Comments = make([]*Comment, len(p.Comments))
	for i, c := range p.Comments {
		cc := *c
		cc.Likes = c.Likes.Clone()
		cc.Dislikes = c.Dislikes.Clone()
		cc.Replies = make([]*Reply, len(c.Replies))
		for j, r := range c.Replies {
			rc := *r
			rc.Likes = r.Likes.Clone()
			rc.Dislikes = r.Dislikes.Clone()
			cc.Replies[j] = &rc
		}
		cp.Comments[i] = &cc
	}
	return &cp
}
