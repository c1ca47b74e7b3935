package pushservice

// PushNotification уведомление, отправляемое в push-сервис
type PushNotification struct {
	AppID       string `json:"app_id"`
	UserID      string `json:"user_id"`
	Title       string `json:"title"`
	Message     string `json:"message"`
	ServiceName string `json:"service_name"`
	StartsAt    string `json:"starts_at"`
}

// ErrorResponse модель ошибки от push-сервиса
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
