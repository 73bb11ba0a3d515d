package domain

import "time"

// Owner сравнивает владельца ресурса с действующим пользователем.
type Owner func(actingID, ownerID string) bool

// AppendComment добавляет комментарий в конец ветки и возвращает его.
func (p *Post) AppendComment(id, authorID, authorName, content string, now time.Time) *Comment {
	c := &Comment{
		ID:         id,
		Content:    content,
		AuthorID:   authorID,
		AuthorName: authorName,
		Likes:      IdentitySet{},
		Dislikes:   IdentitySet{},
		Replies:    []*Reply{},
		CreatedAt:  now,
	}
	p.Comments = append(p.Comments, c)
	return c
}

// FindComment ищет комментарий по id.
func (p *Post) FindComment(id string) *Comment {
	for _, c := range p.Comments {
		if c.ID == id {
			return c
		}
	}
	return nil
}

// RemoveComment удаляет комментарий, у которого совпадают и id, и автор.
// Возвращает false, если такого комментария нет: чужой и несуществующий не различаются.
func (p *Post) RemoveComment(id, actingID string, owns Owner) bool {
	for i, c := range p.Comments {
		if c.ID == id && owns(actingID, c.AuthorID) {
			p.Comments = append(p.Comments[:i], p.Comments[i+1:]...)
			return true
		}
	}
	return false
}

// AppendReply добавляет ответ в конец списка ответов комментария.
func (c *Comment) AppendReply(id, authorID, authorName, content string, now time.Time) *Reply {
	r := &Reply{
		ID:         id,
		Content:    content,
		AuthorID:   authorID,
		AuthorName: authorName,
		Likes:      IdentitySet{},
		Dislikes:   IdentitySet{},
		CreatedAt:  now,
	}
	c.Replies = append(c.Replies, r)
	return r
}

// RemoveReply работает так же, как RemoveComment, но внутри одного комментария.
func (c *Comment) RemoveReply(id, actingID string, owns Owner) bool {
	for i, r := range c.Replies {
		if r.ID == id && owns(actingID, r.AuthorID) {
			c.Replies = append(c.Replies[:i], c.Replies[i+1:]...)
			return true
		}
	}
	return false
}
