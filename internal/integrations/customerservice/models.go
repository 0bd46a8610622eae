package customerservice

// ResolveRequest запрос на поиск/создание клиента по данным формы
type ResolveRequest struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// Customer модель клиента из CustomerService
type Customer struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// ErrorResponse модель ошибки от CustomerService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
