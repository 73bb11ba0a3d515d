package dataloader

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/UkralStul/blog-posts-service/internal/storage"
	"github.com/graph-gophers/dataloader"
)

type contextKey string

const key = contextKey("dataloaders")

// ErrUnknownUser возвращается, если имя пользователя не найдено в справочнике.
var ErrUnknownUser = fmt.Errorf("user: %w", storage.ErrNotFound)

// Loaders содержит все дата-лоадеры запроса.
type Loaders struct {
	DisplayNameByUserID *dataloader.Loader
}

// NewLoaders создает лоадеры поверх справочника пользователей.
func NewLoaders(dir storage.Directory) *Loaders {
	batchFn := func(ctx context.Context, keys dataloader.Keys) []*dataloader.Result {
		ids := keys.Keys()

		// Один запрос к справочнику на весь батч
		names, err := dir.GetDisplayNames(ctx, ids)
		if err != nil {
			results := make([]*dataloader.Result, len(keys))
			for i := range results {
				results[i] = &dataloader.Result{Error: err}
			}
			return results
		}

		// Результаты в том же порядке, что и ключи
		results := make([]*dataloader.Result, len(keys))
		for i, id := range ids {
			if name, ok := names[id]; ok {
				results[i] = &dataloader.Result{Data: name}
			} else {
				results[i] = &dataloader.Result{Error: ErrUnknownUser}
			}
		}
		return results
	}

	return &Loaders{
		DisplayNameByUserID: dataloader.NewBatchedLoader(batchFn, dataloader.WithWait(time.Millisecond*1)),
	}
}

// Middleware для внедрения лоадеров в контекст запроса.
func Middleware(dir storage.Directory) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := context.WithValue(r.Context(), key, NewLoaders(dir))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// For извлекает лоадеры из контекста, nil если их нет.
func For(ctx context.Context) *Loaders {
	loaders, _ := ctx.Value(key).(*Loaders)
	return loaders
}

// NameResolver находит имя пользователя: через лоадер запроса, если он есть,
// иначе напрямую через справочник.
type NameResolver struct {
	Directory storage.Directory
}

func (r NameResolver) ResolveDisplayName(ctx context.Context, userID string) (string, error) {
	if loaders := For(ctx); loaders != nil {
		v, err := loaders.DisplayNameByUserID.Load(ctx, dataloader.StringKey(userID))()
		if err != nil {
			return "", err
		}
		return v.(string), nil
	}

	names, err := r.Directory.GetDisplayNames(ctx, []string{userID})
	if err != nil {
		return "", err
	}
	name, ok := names[userID]
	if !ok {
		return "", ErrUnknownUser
	}
	return name, nil
}
