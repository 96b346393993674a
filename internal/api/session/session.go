package session

import "context"

// Role роль пользователя в системе
type Role string

const (
	RoleCustomer Role = "customer"
	RoleAdmin    Role = "admin"
)

// Session данные аутентифицированного пользователя запроса
type Session struct {
	UserID int64
	Role   Role
}

// IsAdmin возвращает true для администратора студии
func (s *Session) IsAdmin() bool {
	return s.Role == RoleAdmin
}

type contextKey struct{}

// WithSession кладет сессию в контекст запроса
func WithSession(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, contextKey{}, s)
}

// FromContext достает сессию из контекста запроса.
// Возвращает nil для неаутентифицированных запросов.
func FromContext(ctx context.Context) *Session {
	s, _ := ctx.Value(contextKey{}).(*Session)
	return s
}
