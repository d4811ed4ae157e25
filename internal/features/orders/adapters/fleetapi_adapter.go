package adapters

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"fleetdesk/internal/core/config"
	"fleetdesk/internal/core/httpclient"
	"fleetdesk/internal/features/orders/domain"
)

// FleetAPIAdapter implements ports.OrderRepository against the fleet
// back-office REST API, which owns order-entry and CRUD persistence.
type FleetAPIAdapter struct {
	// client is the HTTP client used for API requests.
	client *http.Client
	// config holds the back-office connection details.
	config config.FleetAPIConfig
}

// NewFleetAPIAdapter creates a new instance of FleetAPIAdapter.
func NewFleetAPIAdapter(cfg config.FleetAPIConfig) *FleetAPIAdapter {
	return &FleetAPIAdapter{
		client: httpclient.NewClient(10 * time.Second),
		config: cfg,
	}
}

// apiOrder mirrors the back-office order payload.
type apiOrder struct {
	ID            string  `json:"id"`
	CustomerName  string  `json:"customerName"`
	OrderDate     string  `json:"orderDate"`
	DeliveryDate  string  `json:"deliveryDate"`
	TotalAmount   float64 `json:"totalAmount"`
	PaymentStatus string  `json:"paymentStatus"`
	WarehouseID   string  `json:"warehouseId"`
	GeoLocation   struct {
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
	} `json:"geoLocation"`
	OrderLineItems []struct {
		ProductID   string  `json:"productId"`
		ProductName string  `json:"productName"`
		Quantity    int     `json:"quantity"`
		UnitPrice   float64 `json:"unitPrice"`
		TotalPrice  float64 `json:"totalPrice"`
	} `json:"orderLineItems"`
}

// List fetches all open orders from the back office.
func (a *FleetAPIAdapter) List(ctx context.Context) ([]domain.Order, error) {
	url := fmt.Sprintf("%s/api/v1/orders?status=open", a.config.URL)

	var apiOrders []apiOrder
	if err := a.getJSON(ctx, url, &apiOrders); err != nil {
		return nil, err
	}

	orders := make([]domain.Order, 0, len(apiOrders))
	for _, o := range apiOrders {
		orders = append(orders, mapToDomain(o))
	}
	return orders, nil
}

// Get fetches a single order; a 404 from the back office maps to nil, nil.
func (a *FleetAPIAdapter) Get(ctx context.Context, orderID string) (*domain.Order, error) {
	url := fmt.Sprintf("%s/api/v1/orders/%s", a.config.URL, orderID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Add("Authorization", "Basic "+a.basicAuth())

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fleet API returned status: %d", resp.StatusCode)
	}

	var o apiOrder
	if err := json.NewDecoder(resp.Body).Decode(&o); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	order := mapToDomain(o)
	return &order, nil
}

// HealthCheck verifies that the fleet API is reachable and credentials are valid.
func (a *FleetAPIAdapter) HealthCheck() error {
	url := fmt.Sprintf("%s/api/v1/orders?per_page=1", a.config.URL)

	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("health check failed to create request: %w", err)
	}
	req.Header.Add("Authorization", "Basic "+a.basicAuth())

	resp, err := a.client.Do(req)
	if err != nil {
		return fmt.Errorf("health check request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("health check failed with status: %d", resp.StatusCode)
	}

	return nil
}

// getJSON executes an authenticated GET request and decodes the JSON body.
func (a *FleetAPIAdapter) getJSON(ctx context.Context, url string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Add("Authorization", "Basic "+a.basicAuth())

	resp, err := a.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("fleet API returned status: %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// basicAuth builds the Basic auth token from the configured key pair.
func (a *FleetAPIAdapter) basicAuth() string {
	authVal := make([]byte, 0, len(a.config.Key)+len(a.config.Secret)+1)
	authVal = fmt.Appendf(authVal, "%s:%s", a.config.Key, a.config.Secret)
	return base64.StdEncoding.EncodeToString(authVal)
}

// mapToDomain converts a raw back-office order into a domain Order entity.
func mapToDomain(o apiOrder) domain.Order {
	items := make([]domain.LineItem, 0, len(o.OrderLineItems))
	for _, li := range o.OrderLineItems {
		items = append(items, domain.LineItem{
			ProductID:   li.ProductID,
			ProductName: li.ProductName,
			Quantity:    li.Quantity,
			UnitPrice:   li.UnitPrice,
			TotalPrice:  li.TotalPrice,
		})
	}

	return domain.Order{
		ID:            o.ID,
		CustomerName:  o.CustomerName,
		OrderDate:     parseDate(o.OrderDate),
		DeliveryDate:  parseDate(o.DeliveryDate),
		TotalAmount:   o.TotalAmount,
		PaymentStatus: mapPaymentStatus(o.PaymentStatus),
		WarehouseID:   o.WarehouseID,
		GeoLocation: domain.GeoLocation{
			Latitude:  o.GeoLocation.Latitude,
			Longitude: o.GeoLocation.Longitude,
		},
		LineItems: items,
	}
}

// parseDate parses the back-office timestamp format, which omits the zone.
// Unparseable values map to the zero time rather than failing the order.
func parseDate(s string) time.Time {
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

// mapPaymentStatus normalizes the back-office payment status string.
func mapPaymentStatus(status string) domain.PaymentStatus {
	if status == string(domain.PaymentStatusPaid) {
		return domain.PaymentStatusPaid
	}
	return domain.PaymentStatusPending
}
