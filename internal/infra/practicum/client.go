// Package practicum talks to the homework-status endpoint of the review API.
package practicum

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"homework_status_bot/internal/domain/homework"

	"github.com/sirupsen/logrus"
)

// Client implements homework.Source over HTTP.
type Client struct {
	endpoint string
	token    string
	http     *http.Client
	logger   *logrus.Entry
}

func New(endpoint, token string, timeout time.Duration, logger *logrus.Entry) *Client {
	return &Client{
		endpoint: endpoint,
		token:    token,
		http:     &http.Client{Timeout: timeout},
		logger:   logger.WithField("component", "practicum_client"),
	}
}

// Fetch requests every status change since fromDate and returns the decoded
// JSON body as is. Shape checks are left to homework.CheckResponse.
func (c *Client) Fetch(ctx context.Context, fromDate int64) (any, error) {
	logCtx := c.logger.WithField("from_date", fromDate)

	u, err := url.Parse(c.endpoint)
	if err != nil {
		logCtx.WithError(err).Error("Invalid homework endpoint")
		return nil, homework.Wrap(homework.KindRequest, err, "Некорректный адрес эндпоинта.")
	}
	q := u.Query()
	q.Set("from_date", strconv.FormatInt(fromDate, 10))
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		logCtx.WithError(err).Error("Could not build homework request")
		return nil, homework.Wrap(homework.KindRequest, err, "Не удалось сформировать запрос.")
	}
	req.Header.Set("Authorization", "OAuth "+c.token)

	res, err := c.http.Do(req)
	if err != nil {
		herr := classifyTransportError(err)
		logCtx.WithError(err).WithField("kind", herr.Kind).Error("Homework endpoint is unreachable")
		return nil, herr
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		logCtx.WithField("status_code", res.StatusCode).Error("Homework endpoint returned a non-OK status")
		herr := homework.Errorf(homework.KindRequest, "Эндпоинт недоступен. Статус ошибки: %d", res.StatusCode)
		herr.StatusCode = res.StatusCode
		return nil, herr
	}

	var body any
	dec := json.NewDecoder(res.Body)
	dec.UseNumber()
	if err := dec.Decode(&body); err != nil {
		logCtx.WithError(err).Error("Homework response is not valid JSON")
		return nil, homework.Wrap(homework.KindSchema, err, "Ответ API не является корректным JSON.")
	}

	logCtx.Debug("Homework statuses received")
	return body, nil
}

func classifyTransportError(err error) *homework.Error {
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return homework.Wrap(homework.KindTimeout, err, "Превышено время ожидания ответа.")
	}

	var opErr *net.OpError
	var dnsErr *net.DNSError
	if errors.As(err, &opErr) || errors.As(err, &dnsErr) {
		return homework.Wrap(homework.KindConnection, err, "Ошибка подключения к сети.")
	}

	return homework.Wrap(homework.KindRequest, err, "Неизвестная ошибка запроса.")
}
