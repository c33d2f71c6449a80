package create_appointment

import "time"

// Request модель запроса на создание записи
type Request struct {
	CustomerID int64     // ID клиента
	SalonID    int64     // ID салона
	StaffID    int64     // ID мастера
	ServiceID  int64     // ID услуги
	StartAt    time.Time // Время начала
	Notes      *string   // Комментарий клиента (опционально)
}

// Response модель ответа с созданной записью
type Response struct {
	ID              int64
	SalonID         int64
	StaffID         int64
	ServiceID       int64
	CustomerID      int64
	StartAt         time.Time
	EndAt           time.Time
	DurationMinutes int
	Status          string

	// Денормализованные данные
	ServiceName   string
	ServicePrice  float64
	CustomerName  *string
	CustomerPhone *string
	Notes         *string

	CreatedAt time.Time
	UpdatedAt time.Time
}
