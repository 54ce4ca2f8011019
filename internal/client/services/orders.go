package services

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/dmitrijs2005/adminconsole/internal/client/models"
)

const (
	defaultPage     = 1
	defaultPageSize = 10
)

type OrderService interface {
	All(ctx context.Context) ([]models.Order, error)
	Page(ctx context.Context, page, pageSize int, productID, status string) (models.OrderPage, error)
	Get(ctx context.Context, id uint) (models.Order, error)
	Create(ctx context.Context, req models.OrderCreateRequest) (models.Order, error)
	Update(ctx context.Context, id uint, req models.OrderUpdateRequest) (models.Order, error)
	Delete(ctx context.Context, id uint) error
}

type orderService struct {
	api API
}

func NewOrderService(api API) OrderService {
	return &orderService{api: api}
}

func (s *orderService) All(ctx context.Context) ([]models.Order, error) {
	orders := []models.Order{}
	if err := s.api.Get(ctx, "/orders/all", nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// Page fetches one page of orders. productID and status are optional filters
// and are sent only when non-empty; page and pageSize below 1 use the
// defaults 1 and 10.
func (s *orderService) Page(ctx context.Context, page, pageSize int, productID, status string) (models.OrderPage, error) {
	if page < 1 {
		page = defaultPage
	}
	if pageSize < 1 {
		pageSize = defaultPageSize
	}

	query := url.Values{
		"page":      {strconv.Itoa(page)},
		"page_size": {strconv.Itoa(pageSize)},
	}
	if productID != "" {
		query.Set("product_id", productID)
	}
	if status != "" {
		query.Set("status", status)
	}

	var p models.OrderPage
	if err := s.api.Get(ctx, "/orders", query, &p); err != nil {
		return models.OrderPage{}, err
	}
	if p.Data == nil {
		p.Data = []models.Order{}
	}
	return p, nil
}

func (s *orderService) Get(ctx context.Context, id uint) (models.Order, error) {
	var o models.Order
	if err := s.api.Get(ctx, orderPath(id), nil, &o); err != nil {
		return models.Order{}, err
	}
	return o, nil
}

func (s *orderService) Create(ctx context.Context, req models.OrderCreateRequest) (models.Order, error) {
	var o models.Order
	if err := s.api.Post(ctx, "/orders", req, &o); err != nil {
		return models.Order{}, err
	}
	return o, nil
}

func (s *orderService) Update(ctx context.Context, id uint, req models.OrderUpdateRequest) (models.Order, error) {
	var o models.Order
	if err := s.api.Put(ctx, orderPath(id), req, &o); err != nil {
		return models.Order{}, err
	}
	return o, nil
}

func (s *orderService) Delete(ctx context.Context, id uint) error {
	return s.api.Delete(ctx, orderPath(id), nil)
}

func orderPath(id uint) string {
	return fmt.Sprintf("/orders/%d", id)
}
