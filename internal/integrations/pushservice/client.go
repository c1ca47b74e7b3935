package pushservice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/Edmartins1980/Everaldo-Cabeleireiro/internal/domain"
)

// Client клиент для работы с push-сервисом уведомлений
type Client struct {
	baseURL    string
	appID      string
	apiKey     string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента push-сервиса
func NewClient(baseURL, appID, apiKey string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		appID:   appID,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// NotifyAppointmentCreated отправляет пользователю уведомление о созданной записи.
// Ошибка доставки не влияет на результат бронирования и только логируется вызывающей стороной.
func (c *Client) NotifyAppointmentCreated(ctx context.Context, appt *domain.Appointment) error {
	notification := PushNotification{
		AppID:       c.appID,
		UserID:      appt.UserID.String(),
		Title:       "Agendamento confirmado",
		Message:     fmt.Sprintf("Seu horário de %s está confirmado.", appt.ServiceName),
		ServiceName: appt.ServiceName,
		StartsAt:    appt.StartTime.Format(time.RFC3339),
	}

	body, err := json.Marshal(notification)
	if err != nil {
		return fmt.Errorf("%w: failed to marshal notification: %v", ErrInternal, err)
	}

	url := fmt.Sprintf("%s/api/v1/notifications", c.baseURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated, http.StatusAccepted:
		c.log.Info("Push notification delivered: appointment_id=%d, user_id=%s", appt.ID, appt.UserID)
		return nil
	default:
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(respBody))
	}
}
