package v1_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/shipflow/ordergateway/internal/api"
	"github.com/shipflow/ordergateway/internal/api/middleware"
	v1 "github.com/shipflow/ordergateway/internal/api/v1"
	"github.com/shipflow/ordergateway/internal/constants"
	"github.com/shipflow/ordergateway/internal/mocks"
	"github.com/shipflow/ordergateway/internal/service"
	"github.com/shipflow/ordergateway/pkg/eccang"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestApp(orders *mocks.OrderService, labels *mocks.LabelService) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler()})
	api.SetupRoutes(app, v1.NewHandler(zap.NewNop(), orders, labels))
	return app
}

func jsonRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var body map[string]any
	require.NoError(t, json.Unmarshal(data, &body))
	return body
}

const validOrderBody = `{
	"reference_no": "REF-001",
	"shipping_method": "FEDEX-GROUND",
	"country_code": "US",
	"order_weight": 1.5,
	"order_pieces": 1,
	"Consignee": {
		"consignee_name": "Jane Roe",
		"consignee_street": "1 Main St",
		"consignee_city": "Springfield",
		"consignee_postcode": "12345",
		"consignee_telephone": "555-0100"
	},
	"ItemArr": [{"invoice_enname": "Widget", "invoice_quantity": 2}],
	"Volume": [{"weight": 1.5}]
}`

func TestHandlerCreateOrder(t *testing.T) {
	t.Run("creates an order", func(t *testing.T) {
		orders := new(mocks.OrderService)
		labels := new(mocks.LabelService)

		orders.On("CreateOrder", mock.Anything, mock.MatchedBy(func(cmd service.CreateOrderCommand) bool {
			return cmd.Order.ReferenceNo == "REF-001"
		})).Return(service.CreateOrderResponse{
			Order:    service.OrderView{ReferenceNo: "REF-001"},
			Tracking: service.SummarizeCreateOrder(eccang.CreateOrderResponse{TrackingNumber: "TN1"}),
		}, nil)

		app := newTestApp(orders, labels)
		resp, err := app.Test(jsonRequest(http.MethodPost, "/v1/orders", validOrderBody))

		require.NoError(t, err)
		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		orders.AssertExpectations(t)
	})

	t.Run("rejects an unparsable body", func(t *testing.T) {
		orders := new(mocks.OrderService)
		labels := new(mocks.LabelService)

		app := newTestApp(orders, labels)
		resp, err := app.Test(jsonRequest(http.MethodPost, "/v1/orders", "{not json"))

		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, constants.ErrCodeInvalidRequestBody, decodeBody(t, resp)["code"])
		orders.AssertNotCalled(t, "CreateOrder", mock.Anything, mock.Anything)
	})

	t.Run("rejects a body that fails validation", func(t *testing.T) {
		orders := new(mocks.OrderService)
		labels := new(mocks.LabelService)

		app := newTestApp(orders, labels)
		resp, err := app.Test(jsonRequest(http.MethodPost, "/v1/orders", `{"reference_no":"REF-001"}`))

		require.NoError(t, err)
		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
		assert.Equal(t, constants.ErrCodeValidationFailed, decodeBody(t, resp)["code"])
		orders.AssertNotCalled(t, "CreateOrder", mock.Anything, mock.Anything)
	})

	t.Run("surfaces the carrier rejection message", func(t *testing.T) {
		orders := new(mocks.OrderService)
		labels := new(mocks.LabelService)

		cause := &eccang.BusinessError{Message: "duplicate reference_no"}
		orders.On("CreateOrder", mock.Anything, mock.Anything).
			Return(service.CreateOrderResponse{}, service.NewServiceError(constants.ErrCodeCarrierRejected, cause))

		app := newTestApp(orders, labels)
		resp, err := app.Test(jsonRequest(http.MethodPost, "/v1/orders", validOrderBody))

		require.NoError(t, err)
		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

		body := decodeBody(t, resp)
		assert.Equal(t, constants.ErrCodeCarrierRejected, body["code"])
		assert.Equal(t, "duplicate reference_no", body["message"])
	})

	t.Run("collapses database errors to a generic 500", func(t *testing.T) {
		orders := new(mocks.OrderService)
		labels := new(mocks.LabelService)

		orders.On("CreateOrder", mock.Anything, mock.Anything).
			Return(service.CreateOrderResponse{}, service.NewServiceError(constants.ErrCodeDatabase, service.ErrDatabase))

		app := newTestApp(orders, labels)
		resp, err := app.Test(jsonRequest(http.MethodPost, "/v1/orders", validOrderBody))

		require.NoError(t, err)
		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
		assert.Equal(t, constants.ErrCodeInternalError, decodeBody(t, resp)["code"])
	})
}

func TestHandlerGetOrder(t *testing.T) {
	t.Run("returns the order view", func(t *testing.T) {
		orders := new(mocks.OrderService)
		labels := new(mocks.LabelService)

		orders.On("GetOrder", mock.Anything, "REF-001").
			Return(service.OrderView{ID: "order-1", ReferenceNo: "REF-001"}, nil)

		app := newTestApp(orders, labels)
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/v1/orders/REF-001", nil))

		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "REF-001", decodeBody(t, resp)["reference_no"])
	})

	t.Run("maps a missing order to 404", func(t *testing.T) {
		orders := new(mocks.OrderService)
		labels := new(mocks.LabelService)

		orders.On("GetOrder", mock.Anything, "REF-404").
			Return(service.OrderView{}, service.NewServiceError(constants.ErrCodeOrderNotFound, service.ErrOrderNotFound))

		app := newTestApp(orders, labels)
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/v1/orders/REF-404", nil))

		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Equal(t, constants.ErrCodeOrderNotFound, decodeBody(t, resp)["code"])
	})
}

func TestHandlerGenerateLabel(t *testing.T) {
	t.Run("returns the recorded label", func(t *testing.T) {
		orders := new(mocks.OrderService)
		labels := new(mocks.LabelService)

		labels.On("GenerateLabel", mock.Anything, "REF-001").
			Return(service.LabelView{ID: "label-1", URL: "https://labels.test/1.pdf", Type: "PDF"}, nil)

		app := newTestApp(orders, labels)
		resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/v1/orders/REF-001/label", nil))

		require.NoError(t, err)
		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		assert.Equal(t, "https://labels.test/1.pdf", decodeBody(t, resp)["url"])
	})

	t.Run("maps an unready label to 409", func(t *testing.T) {
		orders := new(mocks.OrderService)
		labels := new(mocks.LabelService)

		labels.On("GenerateLabel", mock.Anything, "REF-001").
			Return(service.LabelView{}, service.NewServiceError(constants.ErrCodeLabelNotReady, service.ErrLabelNotReady))

		app := newTestApp(orders, labels)
		resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/v1/orders/REF-001/label", nil))

		require.NoError(t, err)
		assert.Equal(t, http.StatusConflict, resp.StatusCode)
		assert.Equal(t, constants.ErrCodeLabelNotReady, decodeBody(t, resp)["code"])
	})
}

func TestHandlerListLabels(t *testing.T) {
	orders := new(mocks.OrderService)
	labels := new(mocks.LabelService)

	labels.On("ListLabels", mock.Anything, service.ListLabelsQuery{Query: "REF", Page: 2, PageSize: 20}).
		Return(service.ListLabelsResponse{Items: []service.LabelView{}, Total: 0, Page: 2, PageSize: 20}, nil)

	app := newTestApp(orders, labels)
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/v1/labels?q=REF&page=2&pageSize=20", nil))

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	labels.AssertExpectations(t)
}

func TestHandlerPong(t *testing.T) {
	app := newTestApp(new(mocks.OrderService), new(mocks.LabelService))
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/ping", nil))

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "pong", string(body))
}
