package inventoryservice

import (
	"context"
	"encoding/json"
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

// Client клиент для работы с InventoryService
// InventoryService - источник данных об объектах размещения, комнатах
// и дополнительных продуктах
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента InventoryService
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetProperty получает объект размещения по ID
func (c *Client) GetProperty(ctx context.Context, propertyID int64) (*Property, error) {
	url := fmt.Sprintf("%s/internal/properties/%d", c.baseURL, propertyID)

	var property Property
	if err := c.getJSON(ctx, url, &property, ErrPropertyNotFound); err != nil {
		return nil, err
	}

	return &property, nil
}

// GetRooms получает список комнат объекта размещения
func (c *Client) GetRooms(ctx context.Context, propertyID int64) ([]Room, error) {
	url := fmt.Sprintf("%s/internal/properties/%d/rooms", c.baseURL, propertyID)

	var rooms []Room
	if err := c.getJSON(ctx, url, &rooms, ErrPropertyNotFound); err != nil {
		return nil, err
	}

	return rooms, nil
}

// GetRoom получает комнату объекта размещения по ID
func (c *Client) GetRoom(ctx context.Context, propertyID, roomID int64) (*Room, error) {
	url := fmt.Sprintf("%s/internal/properties/%d/rooms/%d", c.baseURL, propertyID, roomID)

	var room Room
	if err := c.getJSON(ctx, url, &room, ErrRoomNotFound); err != nil {
		return nil, err
	}

	return &room, nil
}

// GetProducts получает список дополнительных продуктов объекта размещения
func (c *Client) GetProducts(ctx context.Context, propertyID int64) ([]Product, error) {
	url := fmt.Sprintf("%s/internal/properties/%d/products", c.baseURL, propertyID)

	var products []Product
	if err := c.getJSON(ctx, url, &products, ErrPropertyNotFound); err != nil {
		return nil, err
	}

	return products, nil
}

// GetProductsByIDs получает продукты объекта размещения по списку ID
// Если какой-то из ID не найден, возвращает ErrProductNotFound
func (c *Client) GetProductsByIDs(ctx context.Context, propertyID int64, productIDs []int64) ([]Product, error) {
	if len(productIDs) == 0 {
		return []Product{}, nil
	}

	all, err := c.GetProducts(ctx, propertyID)
	if err != nil {
		return nil, err
	}

	byID := make(map[int64]Product, len(all))
	for _, p := range all {
		byID[p.ID] = p
	}

	result := make([]Product, 0, len(productIDs))
	for _, id := range productIDs {
		p, ok := byID[id]
		if !ok {
			c.log.Warn("InventoryService: product id=%d not found in property=%d catalog", id, propertyID)
			return nil, fmt.Errorf("%w: id=%d", ErrProductNotFound, id)
		}
		result = append(result, p)
	}

	return result, nil
}

// getJSON выполняет GET запрос и декодирует JSON ответ в dst
// notFoundErr возвращается на статус 404
func (c *Client) getJSON(ctx context.Context, url string, dst interface{}, notFoundErr error) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Error("InventoryService: request to %s failed: %v", url, err)
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusNotFound:
		c.log.Warn("InventoryService: %s returned 404", url)
		return notFoundErr
	default:
		body, _ := io.ReadAll(resp.Body)
		c.log.Error("InventoryService: %s returned unexpected status %d: %s", url, resp.StatusCode, string(body))
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		c.log.Error("InventoryService: failed to decode response from %s: %v", url, err)
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return nil
}
