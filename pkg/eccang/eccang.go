package eccang

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/shipflow/ordergateway/pkg/httpclient"
	"go.uber.org/zap"
)

const (
	OpCreateOrder    = "createOrder"
	OpGetTrackNumber = "getTrackNumber"
	OpGetLabelURL    = "getLabelUrl"
)

type Gateway interface {
	CreateOrder(ctx context.Context, request CreateOrderRequest) (CreateOrderResponse, error)
	GetTrackNumber(ctx context.Context, request GetTrackNumberRequest) (GetTrackNumberResponse, error)
	GetLabelURL(ctx context.Context, request GetLabelURLRequest) (GetLabelURLResponse, error)
}

type gateway struct {
	client httpclient.HTTPClient
	config Config
	logger *zap.Logger
}

func NewGateway(cfg Config, client httpclient.HTTPClient, logger *zap.Logger) Gateway {
	return &gateway{config: cfg, client: client, logger: logger}
}

func (g *gateway) CreateOrder(ctx context.Context, request CreateOrderRequest) (CreateOrderResponse, error) {
	var response CreateOrderResponse
	if err := g.call(ctx, OpCreateOrder, request, &response); err != nil {
		return CreateOrderResponse{}, err
	}
	return response, nil
}

func (g *gateway) GetTrackNumber(ctx context.Context, request GetTrackNumberRequest) (GetTrackNumberResponse, error) {
	var response GetTrackNumberResponse
	if err := g.call(ctx, OpGetTrackNumber, request, &response); err != nil {
		return GetTrackNumberResponse{}, err
	}
	return response, nil
}

func (g *gateway) GetLabelURL(ctx context.Context, request GetLabelURLRequest) (GetLabelURLResponse, error) {
	var response GetLabelURLResponse
	if err := g.call(ctx, OpGetLabelURL, request, &response); err != nil {
		return GetLabelURLResponse{}, err
	}
	return response, nil
}

// call runs one request/response cycle: encode, POST, status check, envelope
// decode, schema validation, business-failure classification. Retries, where
// needed, are the caller's responsibility. The outbound envelope embeds the
// credentials and is never logged.
func (g *gateway) call(ctx context.Context, service string, params any, out Response) error {
	envelope, err := EncodeEnvelope(service, params, g.config.AppToken, g.config.AppKey)
	if err != nil {
		return fmt.Errorf("encoding error: %w", err)
	}

	headers := map[string]string{
		"Content-Type": "application/xml",
	}

	resp, err := g.client.Post(ctx, g.config.Endpoint(), bytes.NewReader(envelope), headers)
	if err != nil {
		g.logger.Error("Carrier request failed",
			zap.String("service", service),
			zap.Error(err))
		return err
	}

	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		g.logger.Error("Failed to read carrier response",
			zap.String("service", service),
			zap.Int("status", resp.StatusCode),
			zap.Error(err))
		return err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		g.logger.Error("Carrier returned non-2xx status",
			zap.String("service", service),
			zap.Int("status", resp.StatusCode),
			zap.String("body", string(body)))
		return &TransportError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	payload, err := DecodeEnvelope(body)
	if err != nil {
		g.logger.Error("Carrier envelope decode failed",
			zap.String("service", service),
			zap.String("body", string(body)),
			zap.Error(err))
		return err
	}

	if err := ValidateResponse(payload, out); err != nil {
		g.logger.Error("Carrier response validation failed",
			zap.String("service", service),
			zap.String("body", string(body)),
			zap.Error(err))
		return err
	}

	base := out.base()
	if base.Ask == AskFailure {
		message := base.FailureMessage()
		g.logger.Warn("Carrier reported failure",
			zap.String("service", service),
			zap.String("message", message))
		return &BusinessError{Message: message}
	}

	return nil
}
