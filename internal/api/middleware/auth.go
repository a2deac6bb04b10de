package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-FacilityBooking/internal/api/handlers"
	"github.com/m04kA/SMC-FacilityBooking/internal/domain"
)

type ctxKey int

const (
	userIDKey ctxKey = iota
	roleKey
)

const (
	HeaderUserID = "X-User-ID"
	HeaderRole   = "X-User-Role"
)

const (
	msgMissingUserID = "отсутствует или некорректен заголовок X-User-ID"
	msgInvalidRole   = "некорректная роль в заголовке X-User-Role"
)

// Auth читает идентификатор и роль пользователя из заголовков шлюза.
// Пустая роль означает клиента
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, err := strconv.ParseInt(r.Header.Get(HeaderUserID), 10, 64)
		if err != nil || userID <= 0 {
			handlers.RespondUnauthorized(w, msgMissingUserID)
			return
		}

		var role domain.Role
		switch r.Header.Get(HeaderRole) {
		case "", "client":
			role = domain.RoleClient
		case "admin":
			role = domain.RoleAdministrator
		default:
			handlers.RespondBadRequest(w, msgInvalidRole)
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, userID)
		ctx = context.WithValue(ctx, roleKey, role)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUserID ID пользователя, установленный Auth
func GetUserID(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(userIDKey).(int64)
	return id, ok
}

// GetRole роль пользователя. Без Auth считается клиентом
func GetRole(ctx context.Context) domain.Role {
	role, ok := ctx.Value(roleKey).(domain.Role)
	if !ok {
		return domain.RoleClient
	}
	return role
}

// WithIdentity кладет пользователя в контекст (для тестов обработчиков)
func WithIdentity(ctx context.Context, userID int64, role domain.Role) context.Context {
	ctx = context.WithValue(ctx, userIDKey, userID)
	return context.WithValue(ctx, roleKey, role)
}

// AdminOnly пропускает только администраторов
func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !GetRole(r.Context()).IsAdministrator() {
			handlers.RespondForbidden(w, "операция доступна только администратору")
			return
		}
		next.ServeHTTP(w, r)
	})
}
