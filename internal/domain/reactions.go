package domain

// IdentitySet - упорядоченное множество идентификаторов пользователей.
// Каждый идентификатор встречается не более одного раза, порядок - порядок добавления.
type IdentitySet []string

// Contains сообщает, есть ли id в множестве.
func (s IdentitySet) Contains(id string) bool {
	for _, v := range s {
		if v == id {
			return true
		}
	}
	return false
}

// Add добавляет id, если его еще нет.
func (s IdentitySet) Add(id string) IdentitySet {
	if s.Contains(id) {
		return s
	}
	return append(s, id)
}

// Remove удаляет id, если он есть.
func (s IdentitySet) Remove(id string) IdentitySet {
	out := make(IdentitySet, 0, len(s))
	for _, v := range s {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}

func (s IdentitySet) Clone() IdentitySet {
	out := make(IdentitySet, len(s))
	copy(out, s)
	return out
}

// ToggleLike переключает лайк пользователя.
// Лайк снимается, если он уже стоит; иначе снимается дизлайк и ставится лайк.
func (p *Post) ToggleLike(userID string) {
	if p.Likes.Contains(userID) {
		p.Likes = p.Likes.Remove(userID)
		return
	}
	p.Dislikes = p.Dislikes.Remove(userID)
	p.Likes = p.Likes.Add(userID)
}

// ToggleDislike - зеркальная к ToggleLike операция.
func (p *Post) ToggleDislike(userID string) {
	if p.Dislikes.Contains(userID) {
		p.Dislikes = p.Dislikes.Remove(userID)
		return
	}
	p.Likes = p.Likes.Remove(userID)
	p.Dislikes = p.Dislikes.Add(userID)
}

// ToggleFavorite переключает избранное, не трогая лайки и дизлайки.
func (p *Post) ToggleFavorite(userID string) {
	if p.Favorites.Contains(userID) {
		p.Favorites = p.Favorites.Remove(userID)
		return
	}
	p.Favorites = p.Favorites.Add(userID)
}
