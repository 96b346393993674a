package book_appointment

import "errors"

var (
	// ErrFlowNotFound возвращается, когда booking flow не найден или истек
	ErrFlowNotFound = errors.New("booking flow not found")

	// ErrIncompleteSelection возвращается, когда в flow не выбраны дата и слот
	ErrIncompleteSelection = errors.New("date and slot must be selected before booking")

	// ErrSlotUnavailable возвращается, когда выбранный слот уже занят или отключен
	ErrSlotUnavailable = errors.New("selected slot is no longer available")

	// ErrSlotNotFound возвращается, когда выбранный слот отсутствует в расписании дня
	ErrSlotNotFound = errors.New("selected slot does not exist for this date")

	// ErrDateTooFarAhead возвращается, когда дата дальше горизонта записи
	ErrDateTooFarAhead = errors.New("date is beyond the advance booking horizon")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
