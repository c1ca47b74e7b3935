package create_appointment

import "errors"

var (
	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = errors.New("create_appointment: service not found")

	// ErrSlotTaken возвращается, когда слот пересекается с существующей записью
	// Гонка проиграна: клиенту следует перезапросить доступные слоты и выбрать заново
	ErrSlotTaken = errors.New("create_appointment: slot is already taken")

	// ErrSlotInPast возвращается, когда выбранный слот уже прошел по часам салона
	// Время истекло между запросом доступности и подтверждением
	ErrSlotInPast = errors.New("create_appointment: slot is in the past")

	// ErrInvalidTimeSlot возвращается, когда время не лежит на сетке слотов
	// или услуга не успевает завершиться до конца grace-окна
	ErrInvalidTimeSlot = errors.New("create_appointment: invalid time slot")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_appointment: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	// Хранилище недоступно или запрос не выполнен: безопасно повторить
	ErrInternal = errors.New("create_appointment: internal error")
)
