package attach_form_data

// Request модель запроса на прикрепление данных внешней формы
type Request struct {
	BookingID          int64  // ID бронирования
	CustomerName       string // Имя клиента из формы
	CustomerPhone      string // Телефон клиента из формы
	ExternalResponseID string // ID ответа внешней формы (ключ идемпотентности)
}

// Response модель ответа с обновленным бронированием
type Response struct {
	ID            int64  // ID бронирования
	BookingNumber string // Номер бронирования
	Status        string // Статус после прикрепления
	CustomerID    *int64 // Привязанный клиент (nil при graceful degradation)
	AlreadyBound  bool   // true, если форма уже была прикреплена ранее (повторная доставка)
}
