package schedulefeed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Client клиент для работы с внешним календарным фидом студии
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента календарного фида.
// timeout — фиксированный таймаут на каждый исходящий запрос.
func NewClient(baseURL string, timeout time.Duration, token string, log Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// FetchSchedule получает полный набор слотов фида: регулярное расписание
// и разовые слоты на конкретные даты.
func (c *Client) FetchSchedule(ctx context.Context) (*Schedule, error) {
	var regular []RegularSlotPayload
	if err := c.doGet(ctx, "/timeslots/regular", &regular); err != nil {
		return nil, err
	}

	var special []SpecialSlotPayload
	if err := c.doGet(ctx, "/timeslots/special", &special); err != nil {
		return nil, err
	}

	return &Schedule{Regular: regular, Special: special}, nil
}

// FetchScheduleWithGracefulDegradation получает расписание с graceful degradation.
// При любой недоступности фида (timeout, сеть, некорректный ответ) возвращает
// ErrFeedDegraded, чтобы вызывающая сторона подставила резервный набор данных.
// Сам резервный набор клиент не знает — его выбирает вызывающая сторона.
func (c *Client) FetchScheduleWithGracefulDegradation(ctx context.Context) (*Schedule, error) {
	c.log.Info("Fetching schedule from feed %s", c.baseURL)

	schedule, err := c.FetchSchedule(ctx)
	if err != nil {
		// Повышаем уровень логирования до ERROR, чтобы быстрее заметить проблему
		c.log.Error("Schedule feed unavailable, applying graceful degradation: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrFeedDegraded, err)
	}

	c.log.Info("Successfully fetched schedule: %d regular, %d special slots",
		len(schedule.Regular), len(schedule.Special))
	return schedule, nil
}

// doGet выполняет GET запрос и декодирует JSON ответ в out
func (c *Client) doGet(ctx context.Context, path string, out interface{}) error {
	reqURL := c.baseURL + path

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return classifyTransportError(err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("%w: %d: %s", ErrHTTPStatus, resp.StatusCode, string(body))
	}

	// Ответ обязан быть JSON. HTML-тело означает, что сервер вернул
	// страницу (например, заглушку балансировщика), а не данные.
	if err := checkContentType(resp.Header.Get("Content-Type")); err != nil {
		return err
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return nil
}

// classifyTransportError разделяет таймауты и сетевую недоступность,
// чтобы вызывающая сторона могла показать пользователю разные ошибки
func classifyTransportError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", ErrTimeout, err)
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Timeout() {
		return fmt.Errorf("%w: %v", ErrTimeout, err)
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return fmt.Errorf("%w: %v", ErrTimeout, err)
	}

	return fmt.Errorf("%w: %v", ErrUnreachable, err)
}

// checkContentType проверяет, что ответ пришел с JSON content-type
func checkContentType(contentType string) error {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return fmt.Errorf("%w: unparsable content-type %q", ErrUnexpectedContentType, contentType)
	}

	if mediaType == "text/html" {
		return fmt.Errorf("%w: got text/html", ErrUnexpectedContentType)
	}
	if mediaType != "application/json" {
		return fmt.Errorf("%w: got %q", ErrUnexpectedContentType, mediaType)
	}

	return nil
}
