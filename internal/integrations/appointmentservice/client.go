package appointmentservice

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/m04kA/SMC-AppointmentDesk/internal/domain"
)

const (
	opListAppointments = "list_appointments"
	opValidateSlot     = "validate_slot"
	opCreate           = "create_appointment"
	opUpdateStatus     = "update_status"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Metrics интерфейс для метрик вызовов
type Metrics interface {
	ObserveRemoteCall(operation, outcome string, seconds float64)
}

type noopMetrics struct{}

func (noopMetrics) ObserveRemoteCall(string, string, float64) {}

// Client клиент для работы с сервисом записей
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
	metrics    Metrics
}

// NewClient создает новый экземпляр клиента сервиса записей
// baseURL указывается вместе с префиксом API, например "http://localhost:8081/api"
func NewClient(baseURL string, timeout time.Duration, log Logger, metrics Metrics) *Client {
	if metrics == nil {
		metrics = noopMetrics{}
	}

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log:     log,
		metrics: metrics,
	}
}

// ListAppointments получает все записи на дату
// Отсутствующий или пустой список в ответе означает, что записей нет
func (c *Client) ListAppointments(ctx context.Context, date time.Time) ([]Appointment, error) {
	query := url.Values{}
	query.Set("date", date.Format(domain.DateFormat))

	resp, err := c.do(ctx, opListAppointments, http.MethodGet, "/admin/appointments?"+query.Encode(), nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return nil, err
	}

	var list ListResponse
	if err := json.NewDecoder(resp.Body).Decode(&list); err != nil {
		return nil, fmt.Errorf("%w: failed to decode appointments: %v", ErrInvalidResponse, err)
	}

	if list.Appointments == nil {
		return []Appointment{}, nil
	}
	return list.Appointments, nil
}

// ValidateSlot запрашивает у сервиса авторитетную проверку слота и расчетное время следующего приема
func (c *Client) ValidateSlot(ctx context.Context, date time.Time, slotID string) (*ValidateResponse, error) {
	body := ValidateRequest{
		AppointmentDate: date.Format(domain.DateFormat),
		TimeSlot:        slotID,
	}

	resp, err := c.do(ctx, opValidateSlot, http.MethodPost, "/appointments/validate", body)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return nil, err
	}

	var result ValidateResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("%w: failed to decode validation: %v", ErrInvalidResponse, err)
	}

	return &result, nil
}

// ValidateSlotWithGracefulDegradation проверяет слот с graceful degradation
// При любой ошибке возвращает ErrServiceDegraded, что позволяет показать слот по локальным данным
func (c *Client) ValidateSlotWithGracefulDegradation(ctx context.Context, date time.Time, slotID string) (*ValidateResponse, error) {
	result, err := c.ValidateSlot(ctx, date, slotID)
	if err != nil {
		c.log.Error("AppointmentService validation unavailable, applying graceful degradation for date=%s slot=%q: %v",
			date.Format(domain.DateFormat), slotID, err)
		return nil, fmt.Errorf("%w: date=%s, slot=%q, error=%v", ErrServiceDegraded, date.Format(domain.DateFormat), slotID, err)
	}

	return result, nil
}

// CreateAppointment создает запись
// При отказе сервиса возвращает *RejectedError с текстом из ответа
func (c *Client) CreateAppointment(ctx context.Context, req *CreateRequest) (*Appointment, error) {
	resp, err := c.do(ctx, opCreate, http.MethodPost, "/appointments", req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return nil, err
	}

	// Запись уже создана, поэтому нераспознанное тело ответа не считается ошибкой:
	// каноничное состояние все равно берется из следующего обновления списка
	var created Appointment
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		c.log.Warn("CreateAppointment: created, but response body is not a record: %v", err)
		return nil, nil
	}

	return &created, nil
}

// UpdateStatus меняет статус записи
func (c *Client) UpdateStatus(ctx context.Context, id string, status domain.AppointmentStatus) error {
	body := UpdateStatusRequest{
		ID:     id,
		Status: string(status),
	}

	resp, err := c.do(ctx, opUpdateStatus, http.MethodPost, "/admin/update-status", body)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return err
	}

	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}

// do выполняет запрос и фиксирует метрики
// Ошибки транспорта оборачиваются в ErrUnavailable
func (c *Client) do(ctx context.Context, operation, method, path string, body interface{}) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to encode request: %v", ErrInternal, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	elapsed := time.Since(start).Seconds()

	if err != nil {
		c.metrics.ObserveRemoteCall(operation, "unavailable", elapsed)
		return nil, fmt.Errorf("%w: %s %s: %w", ErrUnavailable, method, path, err)
	}

	outcome := "ok"
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		outcome = "rejected"
	}
	c.metrics.ObserveRemoteCall(operation, outcome, elapsed)

	return resp, nil
}

// checkStatus превращает ответ с кодом, отличным от 2xx, в *RejectedError
func checkStatus(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	body, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))

	rejected := &RejectedError{StatusCode: resp.StatusCode}

	var errResp ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Message != "" {
		rejected.Message = errResp.Message
	} else {
		rejected.Message = strings.TrimSpace(string(body))
	}

	return rejected
}

// RejectionMessage достает текст отказа сервиса из цепочки ошибок
func RejectionMessage(err error) (string, bool) {
	var rejected *RejectedError
	if errors.As(err, &rejected) {
		return rejected.Message, true
	}
	return "", false
}
