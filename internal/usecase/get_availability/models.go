package get_availability

import (
	"time"

	"github.com/m04kA/PhotoStudio-BookingService/pkg/types"
)

// Request модель запроса доступности на период
type Request struct {
	From time.Time // Первая дата периода (включительно)
	To   time.Time // Последняя дата периода (включительно)
}

// Response модель ответа с доступностью по дням
type Response struct {
	Days []Day // Дни периода в хронологическом порядке

	// Degraded выставляется, когда фид оказался недоступен и ответ
	// построен из резервного набора данных
	Degraded bool
}

// Day доступность одного календарного дня
type Day struct {
	Date            time.Time
	Slots           []Slot
	HasAvailability bool // Есть ли хотя бы один доступный слот
}

// Slot модель временного слота
type Slot struct {
	Key       string           // "HH:MM-HH:MM", идентификатор слота внутри дня
	StartTime types.TimeString // Время начала слота
	EndTime   types.TimeString // Время конца слота
	Available bool             // Свободен ли слот для записи
}
