// Package access решает, может ли пользователь изменять пост, комментарий или ответ.
package access

import (
	"strings"

	"github.com/UkralStul/blog-posts-service/internal/domain"
)

// Normalize приводит идентификатор к канонической строке.
// Идентификатор из токена и сохраненный владелец приходят из разных источников,
// поэтому сравниваются только после обрезки пробелов.
func Normalize(id string) string {
	return strings.TrimSpace(id)
}

// Owns - единственная проверка прав: действующий пользователь совпадает с владельцем.
func Owns(actingID, ownerID string) bool {
	acting := Normalize(actingID)
	return acting != "" && acting == Normalize(ownerID)
}

// Authorize возвращает ошибку FORBIDDEN, если actingID не владелец.
func Authorize(actingID, ownerID, message string) error {
	if !Owns(actingID, ownerID) {
		return domain.NewAuthorizationError(message)
	}
	return nil
}

// RequireIdentity проверяет, что запрос пришел от аутентифицированного пользователя.
func RequireIdentity(actingID string) (string, error) {
	id := Normalize(actingID)
	if id == "" {
		return "", domain.NewAuthorizationError("authentication required")
	}
	return id, nil
}
