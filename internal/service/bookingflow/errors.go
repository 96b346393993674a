package bookingflow

import "errors"

var (
	// ErrFlowNotFound возвращается, когда flow не найден или истек
	ErrFlowNotFound = errors.New("booking flow not found")

	// ErrNoDateSelected возвращается при выборе слота до выбора даты
	ErrNoDateSelected = errors.New("date must be selected before a slot")

	// ErrSlotNotFound возвращается, когда ключ слота отсутствует в расписании дня
	ErrSlotNotFound = errors.New("slot does not exist for the selected date")

	// ErrSlotUnavailable возвращается, когда выбранный слот занят или отключен
	ErrSlotUnavailable = errors.New("slot is not available")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
