package models

import "github.com/Edmartins1980/Everaldo-Cabeleireiro/internal/domain"

// ServiceResponse услуга салона для HTTP ответа
type ServiceResponse struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	Price           float64 `json:"price"`
	DurationMinutes int     `json:"durationMinutes"`
}

// ServiceListResponse список услуг
type ServiceListResponse struct {
	Services []ServiceResponse `json:"services"`
}

// FromDomainService конвертирует domain модель в DTO
func FromDomainService(s *domain.Service) *ServiceResponse {
	if s == nil {
		return nil
	}
	return &ServiceResponse{
		ID:              s.ID,
		Name:            s.Name,
		Price:           s.Price,
		DurationMinutes: s.DurationMinutes,
	}
}

// FromDomainServiceList конвертирует список domain моделей в DTO
func FromDomainServiceList(list []*domain.Service) *ServiceListResponse {
	services := make([]ServiceResponse, 0, len(list))
	for _, s := range list {
		if resp := FromDomainService(s); resp != nil {
			services = append(services, *resp)
		}
	}
	return &ServiceListResponse{Services: services}
}
