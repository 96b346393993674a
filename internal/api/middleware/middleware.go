package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/PhotoStudio-BookingService/internal/api/handlers"
	"github.com/m04kA/PhotoStudio-BookingService/internal/api/session"
	"github.com/m04kA/PhotoStudio-BookingService/pkg/metrics"
)

const (
	headerUserID   = "X-User-ID"
	headerUserRole = "X-User-Role"

	msgMissingUser = "требуется аутентификация"
	msgInvalidUser = "некорректный ID пользователя"
	msgAdminOnly   = "доступно только администратору"
)

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, v ...interface{})
}

// Auth извлекает пользователя из заголовков запроса и кладет сессию
// в контекст. Реальной проверки подлинности здесь нет: сервис живет
// за шлюзом, который заполняет заголовки после своей аутентификации.
func Auth(logger Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userIDStr := r.Header.Get(headerUserID)
			if userIDStr == "" {
				logger.Warn("%s %s - Missing %s header", r.Method, r.URL.Path, headerUserID)
				handlers.RespondUnauthorized(w, msgMissingUser)
				return
			}

			userID, err := strconv.ParseInt(userIDStr, 10, 64)
			if err != nil || userID <= 0 {
				logger.Warn("%s %s - Invalid %s header: %q", r.Method, r.URL.Path, headerUserID, userIDStr)
				handlers.RespondUnauthorized(w, msgInvalidUser)
				return
			}

			role := session.RoleCustomer
			if r.Header.Get(headerUserRole) == string(session.RoleAdmin) {
				role = session.RoleAdmin
			}

			ctx := session.WithSession(r.Context(), &session.Session{UserID: userID, Role: role})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// AdminOnly пропускает только администраторов. Вешается после Auth.
func AdminOnly(logger Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			s := session.FromContext(r.Context())
			if s == nil || !s.IsAdmin() {
				logger.Warn("%s %s - Admin access denied", r.Method, r.URL.Path)
				handlers.RespondForbidden(w, msgAdminOnly)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// Metrics собирает счетчик и гистограмму длительности HTTP-запросов.
// Маршрут берется из шаблона mux, чтобы не плодить метки на каждый ID.
func Metrics(m *metrics.Metrics) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(recorder, r)

			route := r.URL.Path
			if current := mux.CurrentRoute(r); current != nil {
				if template, err := current.GetPathTemplate(); err == nil {
					route = template
				}
			}

			m.HTTPRequestsTotal.WithLabelValues(r.Method, route, strconv.Itoa(recorder.status)).Inc()
			m.HTTPRequestDuration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
		})
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}
