package customerservice

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент для работы с CustomerService
// CustomerService сопоставляет данные формы (имя, телефон) с карточкой клиента;
// эвристики сопоставления живут на его стороне
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента CustomerService
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// Resolve находит или создает клиента по данным формы
func (c *Client) Resolve(ctx context.Context, name, phone string) (*Customer, error) {
	url := fmt.Sprintf("%s/internal/customers/resolve", c.baseURL)

	body, err := json.Marshal(ResolveRequest{Name: name, Phone: phone})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to marshal request: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated:
		// Продолжаем обработку
	case http.StatusNotFound:
		return nil, ErrCustomerNotFound
	default:
		respBody, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(respBody))
	}

	var customer Customer
	if err := json.NewDecoder(resp.Body).Decode(&customer); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return &customer, nil
}

// ResolveWithGracefulDegradation находит клиента с graceful degradation
// При недоступности CustomerService возвращает ErrServiceDegraded:
// бронирование продолжается без customer_id, привязку можно выполнить позже
func (c *Client) ResolveWithGracefulDegradation(ctx context.Context, name, phone string) (*Customer, error) {
	c.log.Info("Resolving customer name=%q phone=%q", name, phone)

	customer, err := c.Resolve(ctx, name, phone)
	if err != nil {
		if errors.Is(err, ErrCustomerNotFound) {
			c.log.Info("No customer matched for phone=%q", phone)
			return nil, err
		}

		// Для всех остальных ошибок (недоступность сервиса, timeout, ошибки парсинга)
		// применяем graceful degradation
		c.log.Error("CustomerService unavailable, applying graceful degradation: %v", err)
		return nil, fmt.Errorf("%w: phone=%q, error=%v", ErrServiceDegraded, phone, err)
	}

	c.log.Info("Successfully resolved customer id=%d for phone=%q", customer.ID, phone)
	return customer, nil
}
