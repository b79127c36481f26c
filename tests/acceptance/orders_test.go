package acceptance

import (
	"encoding/json"
	"net/http"

	"github.com/dayvsonmarques/web-cardapio-sub001/internal/domain"
	"github.com/dayvsonmarques/web-cardapio-sub001/internal/dto"
)

const (
	categoryID = "10000000-0000-0000-0000-000000000001"
	productID  = "20000000-0000-0000-0000-000000000001"
)

func (s *Suite) seedCatalog() {
	_, err := s.Postgres.DB.Exec(`
		INSERT INTO categories (id, name, sort_order, is_active) VALUES ($1, 'Pizzas', 1, TRUE)
	`, categoryID)
	s.Require().NoError(err)

	_, err = s.Postgres.DB.Exec(`
		INSERT INTO products (id, category_id, name, price, is_active) VALUES ($1, $2, 'Margherita', 32.90, TRUE)
	`, productID, categoryID)
	s.Require().NoError(err)
}

func (s *Suite) TestMenu() {
	s.seedCatalog()

	resp, err := http.Get(s.BaseURL + "/api/v1/menu")
	s.Require().NoError(err)
	defer resp.Body.Close()

	s.Equal(http.StatusOK, resp.StatusCode)

	var sections []domain.MenuSection
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&sections))
	s.Require().Len(sections, 1)
	s.Equal("Pizzas", sections[0].Category.Name)
	s.Require().Len(sections[0].Products, 1)
	s.Equal("Margherita", sections[0].Products[0].Name)
}

func (s *Suite) TestPlacePickupOrder() {
	s.seedCatalog()

	resp := s.doJSON(http.MethodPost, "/api/v1/orders", "", dto.OrderRequest{
		Type:          domain.OrderTypePickup,
		CustomerName:  "Ana",
		CustomerPhone: "11999990000",
		Items: []dto.OrderItemRequest{
			{ProductID: productID, Quantity: 2},
		},
	})
	defer resp.Body.Close()

	s.Equal(http.StatusCreated, resp.StatusCode)

	var order domain.Order
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&order))
	s.Equal(domain.OrderPending, order.Status)
	s.Equal(65.80, order.ItemsTotal)
	s.Equal(65.80, order.Total)

	// The order is publicly readable by id for status tracking
	getResp, err := http.Get(s.BaseURL + "/api/v1/orders/" + order.ID)
	s.Require().NoError(err)
	defer getResp.Body.Close()
	s.Equal(http.StatusOK, getResp.StatusCode)

	var fetched domain.Order
	s.Require().NoError(json.NewDecoder(getResp.Body).Decode(&fetched))
	s.Require().Len(fetched.Items, 1)
	s.Equal(32.90, fetched.Items[0].UnitPrice)
}

func (s *Suite) TestPlaceDeliveryOrder() {
	s.seedCatalog()
	s.insertDeliverySettings(domain.PolicyFixed, 9.50, 0, nil, true)

	cep := "04567-000"
	resp := s.doJSON(http.MethodPost, "/api/v1/orders", "", dto.OrderRequest{
		Type:          domain.OrderTypeDelivery,
		CustomerName:  "Ana",
		CustomerPhone: "11999990000",
		DeliveryCEP:   &cep,
		Items: []dto.OrderItemRequest{
			{ProductID: productID, Quantity: 1},
		},
	})
	defer resp.Body.Close()

	s.Equal(http.StatusCreated, resp.StatusCode)

	var order domain.Order
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&order))
	s.Equal(9.50, order.DeliveryFee)
	s.Equal(42.40, order.Total)
}

func (s *Suite) TestOrderStatusLifecycle() {
	s.seedCatalog()
	admin := s.loginAdmin()

	resp := s.doJSON(http.MethodPost, "/api/v1/orders", "", dto.OrderRequest{
		Type:          domain.OrderTypePickup,
		CustomerName:  "Ana",
		CustomerPhone: "11999990000",
		Items: []dto.OrderItemRequest{
			{ProductID: productID, Quantity: 1},
		},
	})
	var order domain.Order
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&order))
	resp.Body.Close()

	// Skipping straight to DELIVERED is not allowed
	resp = s.doJSON(http.MethodPut, "/api/v1/admin/orders/"+order.ID+"/status", admin.Token, dto.OrderStatusRequest{
		Status: domain.OrderDelivered,
	})
	resp.Body.Close()
	s.Equal(http.StatusConflict, resp.StatusCode)

	for _, status := range []string{domain.OrderConfirmed, domain.OrderPreparing, domain.OrderDelivered} {
		resp = s.doJSON(http.MethodPut, "/api/v1/admin/orders/"+order.ID+"/status", admin.Token, dto.OrderStatusRequest{
			Status: status,
		})
		resp.Body.Close()
		s.Equal(http.StatusOK, resp.StatusCode)
	}

	// Terminal states are final
	resp = s.doJSON(http.MethodPut, "/api/v1/admin/orders/"+order.ID+"/status", admin.Token, dto.OrderStatusRequest{
		Status: domain.OrderCanceled,
	})
	resp.Body.Close()
	s.Equal(http.StatusConflict, resp.StatusCode)
}
