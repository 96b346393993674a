package notifications

import "errors"

var (
	// ErrRuleNotFound возвращается, когда правило уведомлений не найдено
	ErrRuleNotFound = errors.New("notification rule not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
