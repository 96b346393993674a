package schedulefeed

import "errors"

var (
	// ErrTimeout возвращается, когда внешний фид не ответил за отведенный таймаут
	ErrTimeout = errors.New("schedulefeed client: request timed out")

	// ErrUnreachable возвращается, когда до внешнего фида не удалось достучаться
	ErrUnreachable = errors.New("schedulefeed client: service unreachable")

	// ErrUnexpectedContentType возвращается, когда вместо JSON пришло что-то другое.
	// Типичный случай — HTML-страница ошибки вместо данных.
	ErrUnexpectedContentType = errors.New("schedulefeed client: server returned a page, not data")

	// ErrHTTPStatus возвращается при неожиданном HTTP статусе ответа
	ErrHTTPStatus = errors.New("schedulefeed client: unexpected status code")

	// ErrInvalidResponse возвращается при некорректном теле ответа
	ErrInvalidResponse = errors.New("schedulefeed client: invalid response")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("schedulefeed client: internal error")

	// ErrFeedDegraded возвращается при применении graceful degradation.
	// Указывает, что фид недоступен и вызывающая сторона должна
	// использовать свой резервный набор данных.
	ErrFeedDegraded = errors.New("schedulefeed unavailable: graceful degradation applied")
)
