package create_appointment

import (
	"time"

	"github.com/google/uuid"

	"github.com/Edmartins1980/Everaldo-Cabeleireiro/pkg/types"
)

// Request модель запроса на создание записи
type Request struct {
	UserID    uuid.UUID        // ID клиента
	ServiceID int64            // ID услуги
	Date      time.Time        // Дата записи (без времени)
	StartTime types.TimeString // Время начала слота (например, "10:00")
}

// Response модель ответа с созданной записью
type Response struct {
	ID        int64     // ID созданной записи
	UserID    uuid.UUID // ID клиента
	ServiceID int64     // ID услуги
	StartTime time.Time // Момент начала (таймзона салона)
	EndTime   time.Time // Момент окончания
	Status    string    // Статус записи

	// Денормализованные данные услуги
	ServiceName  string  // Название услуги
	ServicePrice float64 // Цена услуги

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}
