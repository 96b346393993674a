package save_time_slot

import "errors"

var (
	// ErrSlotConflict возвращается, когда слот пересекается с существующим
	ErrSlotConflict = errors.New("slot overlaps an existing slot")

	// ErrSlotKindMismatch возвращается, когда ID занят слотом другого вида
	ErrSlotKindMismatch = errors.New("slot id belongs to a different slot kind")

	// ErrOutsideWorkingHours возвращается, когда слот выходит за рабочее окно студии
	ErrOutsideWorkingHours = errors.New("slot is outside studio working hours")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
