package get_available_slots

import (
	"time"

	"github.com/Edmartins1980/Everaldo-Cabeleireiro/pkg/types"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	ServiceID int64     // ID услуги
	Date      time.Time // Дата, на которую запрашиваются слоты (без времени)
}

// Response модель ответа со списком доступных слотов
type Response struct {
	Date            time.Time // Дата, на которую запрашивались слоты
	ServiceID       int64     // ID услуги
	ServiceName     string    // Название услуги
	DurationMinutes int       // Длительность услуги в минутах
	Slots           []Slot    // Список доступных слотов в порядке возрастания
}

// Slot модель доступного временного слота
type Slot struct {
	StartTime types.TimeString // Время начала слота (например, "09:30")
	StartsAt  time.Time        // Полный момент начала в таймзоне салона
}
