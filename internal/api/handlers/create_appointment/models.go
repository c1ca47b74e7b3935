package create_appointment

import (
	"time"

	"github.com/google/uuid"

	"github.com/Edmartins1980/Everaldo-Cabeleireiro/internal/domain"
	createAppointment "github.com/Edmartins1980/Everaldo-Cabeleireiro/internal/usecase/create_appointment"
	"github.com/Edmartins1980/Everaldo-Cabeleireiro/pkg/types"
)

// CreateAppointmentRequest HTTP request model
type CreateAppointmentRequest struct {
	ServiceID int64  `json:"serviceId"`
	Date      string `json:"date"`      // "2026-09-15"
	StartTime string `json:"startTime"` // "10:00"
}

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
	ID           int64     `json:"id"`
	UserID       uuid.UUID `json:"userId"`
	ServiceID    int64     `json:"serviceId"`
	Date         string    `json:"date"`
	StartTime    string    `json:"startTime"`
	EndTime      string    `json:"endTime"`
	Status       string    `json:"status"`
	ServiceName  string    `json:"serviceName"`
	ServicePrice float64   `json:"servicePrice"`
	CreatedAt    string    `json:"createdAt"`
	UpdatedAt    string    `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateAppointmentRequest) ToUseCaseRequest(userID uuid.UUID) (*createAppointment.Request, error) {
	// Парсим дату
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	// Парсим время
	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &createAppointment.Request{
		UserID:    userID,
		ServiceID: r.ServiceID,
		Date:      date,
		StartTime: startTime,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createAppointment.Response) *AppointmentResponse {
	return &AppointmentResponse{
		ID:           resp.ID,
		UserID:       resp.UserID,
		ServiceID:    resp.ServiceID,
		Date:         resp.StartTime.Format(domain.DateFormat),
		StartTime:    resp.StartTime.Format(domain.TimeFormat),
		EndTime:      resp.EndTime.Format(domain.TimeFormat),
		Status:       resp.Status,
		ServiceName:  resp.ServiceName,
		ServicePrice: resp.ServicePrice,
		CreatedAt:    resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    resp.UpdatedAt.Format(time.RFC3339),
	}
}
