package check_availability

import "time"

// Request модель запроса свободных слотов
type Request struct {
	SalonID   int64     // ID салона
	StaffID   int64     // ID мастера
	ServiceID int64     // ID услуги
	Date      time.Time // Календарная дата, время игнорируется
}

// Response модель ответа со свободными слотами
type Response struct {
	Date            time.Time     // Дата в часовом поясе салона
	SalonID         int64         // ID салона
	StaffID         int64         // ID мастера
	ServiceID       int64         // ID услуги
	Available       bool          // Есть ли хотя бы один слот
	Reason          string        // Причина недоступности (closed, fully_booked)
	ServiceDuration time.Duration // Длительность услуги
	Slots           []Slot        // Свободные слоты по возрастанию
}

// Slot свободный слот
type Slot struct {
	Start time.Time
	End   time.Time
}
