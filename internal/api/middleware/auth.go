package middleware

import (
	"context"
	"net/http"

	"github.com/m04kA/SMC-FacilityService/internal/api/handlers"
	"github.com/m04kA/SMC-FacilityService/internal/domain"
)

const (
	// HeaderUserID ID пользователя, проставляется API-gateway после аутентификации
	HeaderUserID = "X-User-ID"
	// HeaderUserRole роль пользователя
	HeaderUserRole = "X-User-Role"

	msgMissingUserID = "отсутствует заголовок X-User-ID"
	msgUnknownRole   = "неизвестная роль пользователя"
)

type actorContextKey struct{}

// validRoles допустимые значения заголовка X-User-Role
var validRoles = map[domain.Role]struct{}{
	domain.RoleUser:       {},
	domain.RoleTechnician: {},
	domain.RoleManager:    {},
	domain.RoleAdmin:      {},
}

// Auth извлекает пользователя из заголовков запроса и кладет его в контекст.
// Запросы без X-User-ID отклоняются. Пустая роль трактуется как user
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID := r.Header.Get(HeaderUserID)
		if userID == "" {
			handlers.RespondError(w, http.StatusUnauthorized, msgMissingUserID)
			return
		}

		role := domain.Role(r.Header.Get(HeaderUserRole))
		if role == "" {
			role = domain.RoleUser
		}
		if _, ok := validRoles[role]; !ok {
			handlers.RespondBadRequest(w, msgUnknownRole)
			return
		}

		actor := domain.Actor{ID: userID, Role: role}
		ctx := context.WithValue(r.Context(), actorContextKey{}, actor)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// ActorFrom возвращает пользователя из контекста запроса
func ActorFrom(ctx context.Context) (domain.Actor, bool) {
	actor, ok := ctx.Value(actorContextKey{}).(domain.Actor)
	return actor, ok
}
