package app

import (
	"context"
	"errors"
	"fmt"

	"homework_status_bot/internal/domain/homework"

	"github.com/sirupsen/logrus"
)

// errorPrefix is prepended to every failure announced in the chat.
const errorPrefix = "Сбой в работе программы: "

// errorCategories groups recoverable kinds for logging. Every category goes
// through the same dedup-and-notify path in handleCycleError.
var errorCategories = map[homework.Kind]string{
	homework.KindRequest:       "transport",
	homework.KindConnection:    "transport",
	homework.KindTimeout:       "transport",
	homework.KindSchema:        "schema",
	homework.KindMissingField:  "format",
	homework.KindUnknownStatus: "format",
}

// Poller runs poll cycles against the homework API. It owns the request
// cursor and the dedup state; it is not safe for concurrent use.
type Poller struct {
	source   homework.Source
	notifier *Notifier
	verdicts homework.Verdicts
	logger   *logrus.Entry

	cursor int64
	state  *State
}

func NewPoller(source homework.Source, notifier *Notifier, verdicts homework.Verdicts, cursor int64, logger *logrus.Entry) *Poller {
	return &Poller{
		source:   source,
		notifier: notifier,
		verdicts: verdicts,
		logger:   logger.WithField("component", "poller"),
		cursor:   cursor,
		state:    NewState(),
	}
}

// Cursor is the from_date the next request will use.
func (p *Poller) Cursor() int64 { return p.cursor }

// State exposes the dedup memory for inspection.
func (p *Poller) State() *State { return p.state }

// Cycle runs one poll. Failures are announced once per distinct message and
// never returned: the caller only has to wait and call Cycle again.
func (p *Poller) Cycle(ctx context.Context) {
	err := p.poll(ctx)
	if err == nil {
		return
	}
	// A shutdown interrupting the request is not a failure worth announcing.
	if ctx.Err() != nil || errors.Is(err, context.Canceled) {
		p.logger.WithError(err).Debug("Poll cycle interrupted by shutdown")
		return
	}
	p.handleCycleError(err)
}

func (p *Poller) poll(ctx context.Context) error {
	body, err := p.source.Fetch(ctx, p.cursor)
	if err != nil {
		return err
	}
	resp, err := homework.CheckResponse(body)
	if err != nil {
		return err
	}

	if len(resp.Homeworks) == 0 {
		p.logger.WithField("from_date", p.cursor).Debug("No new results: homework list is empty")
		p.advanceCursor(resp)
		return nil
	}

	// Only the most recent entry is considered; the rest are ignored.
	latest := resp.Homeworks[0]
	message, err := homework.ParseStatus(latest, p.verdicts)
	if err != nil {
		return err
	}
	status, _ := latest.Status()
	logCtx := p.logger.WithField("status", status)

	if !p.state.answers.has(status) {
		if p.notifier.Notify(message) {
			logCtx.Info("Status change announced")
		}
		p.state.answers.add(status)
	} else {
		logCtx.Debug("No new results: status already announced")
	}

	if resetOnStatus(p.state, status) {
		logCtx.Debug("Dedup state reset")
	}

	p.advanceCursor(resp)
	return nil
}

func (p *Poller) advanceCursor(resp homework.Response) {
	if resp.CurrentDate != nil {
		p.cursor = *resp.CurrentDate
	}
}

func (p *Poller) handleCycleError(err error) {
	kind := homework.KindOf(err)
	category, ok := errorCategories[kind]
	if !ok {
		category = "unexpected"
	}
	display := homework.Display(err)
	logCtx := p.logger.WithError(err).WithField("kind", kind).WithField("category", category)

	var herr *homework.Error
	if errors.As(err, &herr) && herr.StatusCode != 0 {
		logCtx = logCtx.WithField("status_code", herr.StatusCode)
	}
	logCtx.Error("Poll cycle failed")

	if p.state.errors.has(display) {
		logCtx.Debug("Error already announced")
		return
	}
	p.notifier.Notify(fmt.Sprintf("%s%s", errorPrefix, display))
	p.state.errors.add(display)
}
