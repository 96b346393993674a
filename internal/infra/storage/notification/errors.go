package notification

import "errors"

var (
	// ErrRuleNotFound возвращается, когда правило уведомлений не найдено
	ErrRuleNotFound = errors.New("notification.repository: rule not found")
)
