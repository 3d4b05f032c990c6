package services

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/Fahad-kn/bot-binance/domain"
	"github.com/Fahad-kn/bot-binance/metrics"
	"github.com/google/uuid"
)

const (
	maxRetries     = 3
	baseRetryDelay = 500 * time.Millisecond
	maxRetryDelay  = 5 * time.Second

	// Clock skew tolerance for signed requests, the exchange default
	// of 5000 ms intermittently rejects with -1021.
	recvWindow = "10000"
)

type httpCredentials interface {
	GetBinanceAPIKey() string
	GetBinanceSecretKey() string
	GetHTTPUrl() string
}

type httpClientLogger interface {
	Printf(format string, args ...interface{})
}

// APIError is the {"code":…,"msg":…} body the exchange returns on non-2xx.
type APIError struct {
	Code    int    `json:"code"`
	Message string `json:"msg"`
	Status  int    `json:"-"`
}

func (apiError *APIError) Error() string {
	return fmt.Sprintf("binance: HTTP %d code %d: %s", apiError.Status, apiError.Code, apiError.Message)
}

type HTTPClient struct {
	httpCredentials httpCredentials
	client          *http.Client
	logger          httpClientLogger
	retryDelay      time.Duration
}

func NewHTTPClient(httpCredentials httpCredentials, httpClientLogger httpClientLogger) *HTTPClient {
	return &HTTPClient{
		httpCredentials: httpCredentials,
		client:          &http.Client{Timeout: 15 * time.Second},
		logger:          httpClientLogger,
		retryDelay:      baseRetryDelay,
	}
}

// Sign computes the HMAC-SHA256 hex signature over the url-encoded
// query string, as required for every /fapi signed endpoint.
func (httpClient *HTTPClient) Sign(queryString string) string {
	h := hmac.New(sha256.New, []byte(httpClient.httpCredentials.GetBinanceSecretKey()))
	h.Write([]byte(queryString))
	return hex.EncodeToString(h.Sum(nil))
}

// isTransient reports whether a failed response is worth retrying:
// rate limits, IP bans, server errors and the transient exchange codes.
func isTransient(statusCode int, exchangeCode int) bool {
	if statusCode == http.StatusTooManyRequests || statusCode == 418 || statusCode >= 500 {
		return true
	}
	switch exchangeCode {
	case -1001, -1003, -1015, -1016:
		return true
	}
	return false
}

func (httpClient *HTTPClient) backoff(attempt int) time.Duration {
	delay := httpClient.retryDelay * time.Duration(1<<uint(attempt))
	if delay > maxRetryDelay {
		delay = maxRetryDelay
	}
	jitter := time.Duration(rand.Int63n(int64(delay)/2 + 1))
	return delay + jitter - delay/4
}

// sendRequest performs one /fapi call with a bounded retry loop around
// transient failures. Signed requests are re-stamped and re-signed on
// every attempt so the timestamp stays within recvWindow.
func (httpClient *HTTPClient) sendRequest(method string, endPoint string, params url.Values, signed bool) ([]byte, error) {
	var lastErr error

	for attempt := 0; attempt <= maxRetries; attempt++ {
		if attempt > 0 {
			delay := httpClient.backoff(attempt - 1)
			httpClient.logger.Printf("%s %s failed (attempt %d/%d): %v, retrying in %v", method, endPoint, attempt, maxRetries+1, lastErr, delay)
			metrics.RESTRetries.Inc()
			time.Sleep(delay)
		}

		query := params.Encode()
		if signed {
			signedParams := url.Values{}
			for key, values := range params {
				signedParams[key] = values
			}
			signedParams.Set("timestamp", strconv.FormatInt(time.Now().UnixMilli(), 10))
			signedParams.Set("recvWindow", recvWindow)
			query = signedParams.Encode()
			query += "&signature=" + httpClient.Sign(query)
		}

		newRequest, err := http.NewRequest(method, httpClient.httpCredentials.GetHTTPUrl()+endPoint+"?"+query, nil)
		if err != nil {
			return nil, err
		}
		newRequest.Header.Set("X-MBX-APIKEY", httpClient.httpCredentials.GetBinanceAPIKey())

		resp, err := httpClient.client.Do(newRequest)
		if err != nil {
			lastErr = err
			continue
		}

		bytesAnswer, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			lastErr = err
			continue
		}

		if resp.StatusCode != http.StatusOK {
			apiError := &APIError{Status: resp.StatusCode}
			if err := json.Unmarshal(bytesAnswer, apiError); err != nil {
				apiError.Message = string(bytesAnswer)
			}
			lastErr = apiError
			if isTransient(resp.StatusCode, apiError.Code) {
				continue
			}
			return nil, lastErr
		}

		return bytesAnswer, nil
	}

	return nil, lastErr
}

// ServerTime returns the exchange clock in milliseconds (public).
func (httpClient *HTTPClient) ServerTime() (int64, error) {
	bytesAnswer, err := httpClient.sendRequest("GET", "/fapi/v1/time", url.Values{}, false)
	if err != nil {
		return 0, err
	}

	var answer struct {
		ServerTime int64 `json:"serverTime"`
	}
	if err := json.Unmarshal(bytesAnswer, &answer); err != nil {
		return 0, fmt.Errorf("parse server time: %w", err)
	}

	return answer.ServerTime, nil
}

// TickerPrice returns the last price for a symbol (public).
func (httpClient *HTTPClient) TickerPrice(symbol string) (float64, error) {
	params := url.Values{}
	params.Set("symbol", symbol)

	bytesAnswer, err := httpClient.sendRequest("GET", "/fapi/v1/ticker/price", params, false)
	if err != nil {
		return 0, err
	}

	var answer struct {
		Symbol string  `json:"symbol"`
		Price  float64 `json:"price,string"`
	}
	if err := json.Unmarshal(bytesAnswer, &answer); err != nil {
		return 0, fmt.Errorf("parse ticker price: %w", err)
	}

	return answer.Price, nil
}

// Balances returns per-asset futures wallet balances (signed).
func (httpClient *HTTPClient) Balances() ([]domain.Balance, error) {
	bytesAnswer, err := httpClient.sendRequest("GET", "/fapi/v2/balance", url.Values{}, true)
	if err != nil {
		return nil, err
	}

	var balances []domain.Balance
	if err := json.Unmarshal(bytesAnswer, &balances); err != nil {
		return nil, fmt.Errorf("parse balances: %w", err)
	}

	return balances, nil
}

// PositionRisk returns the open positions, optionally filtered by symbol (signed).
func (httpClient *HTTPClient) PositionRisk(symbol string) ([]domain.Position, error) {
	params := url.Values{}
	if symbol != "" {
		params.Set("symbol", symbol)
	}

	bytesAnswer, err := httpClient.sendRequest("GET", "/fapi/v2/positionRisk", params, true)
	if err != nil {
		return nil, err
	}

	var positions []domain.Position
	if err := json.Unmarshal(bytesAnswer, &positions); err != nil {
		return nil, fmt.Errorf("parse positions: %w", err)
	}

	return positions, nil
}

func (httpClient *HTTPClient) placeOrder(params url.Values) (*domain.OrderInfo, error) {
	params.Set("newClientOrderId", uuid.NewString())
	params.Set("newOrderRespType", "RESULT")

	bytesAnswer, err := httpClient.sendRequest("POST", "/fapi/v1/order", params, true)
	if err != nil {
		return nil, err
	}

	var orderInfo domain.OrderInfo
	if err := json.Unmarshal(bytesAnswer, &orderInfo); err != nil {
		return nil, fmt.Errorf("parse order response: %w", err)
	}

	return &orderInfo, nil
}

func (httpClient *HTTPClient) PlaceMarketOrder(symbol string, side domain.OrderSide, quantity float64, reduceOnly bool) (*domain.OrderInfo, error) {
	params := url.Values{}
	params.Set("symbol", symbol)
	params.Set("side", string(side))
	params.Set("type", string(domain.OrderTypeMarket))
	params.Set("quantity", strconv.FormatFloat(quantity, 'f', -1, 64))
	if reduceOnly {
		params.Set("reduceOnly", "true")
	}

	return httpClient.placeOrder(params)
}

func (httpClient *HTTPClient) PlaceLimitOrder(symbol string, side domain.OrderSide, quantity float64, price float64) (*domain.OrderInfo, error) {
	params := url.Values{}
	params.Set("symbol", symbol)
	params.Set("side", string(side))
	params.Set("type", string(domain.OrderTypeLimit))
	params.Set("quantity", strconv.FormatFloat(quantity, 'f', -1, 64))
	params.Set("price", strconv.FormatFloat(price, 'f', -1, 64))
	params.Set("timeInForce", "GTC")

	return httpClient.placeOrder(params)
}

func (httpClient *HTTPClient) OrderStatus(symbol string, orderID int64) (*domain.OrderInfo, error) {
	params := url.Values{}
	params.Set("symbol", symbol)
	params.Set("orderId", strconv.FormatInt(orderID, 10))

	bytesAnswer, err := httpClient.sendRequest("GET", "/fapi/v1/order", params, true)
	if err != nil {
		return nil, err
	}

	var orderInfo domain.OrderInfo
	if err := json.Unmarshal(bytesAnswer, &orderInfo); err != nil {
		return nil, fmt.Errorf("parse order status: %w", err)
	}

	return &orderInfo, nil
}

func (httpClient *HTTPClient) CancelOrder(symbol string, orderID int64) (*domain.OrderInfo, error) {
	params := url.Values{}
	params.Set("symbol", symbol)
	params.Set("orderId", strconv.FormatInt(orderID, 10))

	bytesAnswer, err := httpClient.sendRequest("DELETE", "/fapi/v1/order", params, true)
	if err != nil {
		return nil, err
	}

	var orderInfo domain.OrderInfo
	if err := json.Unmarshal(bytesAnswer, &orderInfo); err != nil {
		return nil, fmt.Errorf("parse cancel response: %w", err)
	}

	return &orderInfo, nil
}

func (httpClient *HTTPClient) CancelAllOrders(symbol string) error {
	params := url.Values{}
	params.Set("symbol", symbol)

	_, err := httpClient.sendRequest("DELETE", "/fapi/v1/allOpenOrders", params, true)
	return err
}
