// internal/app/status_watcher.go
package app

import (
	"context"
	"fmt"
	"time"

	"homework_status_bot/internal/domain/homework"

	"github.com/sirupsen/logrus"
)

const failureReportPrefix = "Сбой в работе программы: "

// StatusFetcher returns the raw API answer for homeworks updated since fromDate.
type StatusFetcher interface {
	GetHomeworkStatuses(ctx context.Context, fromDate int64) (any, error)
}

// MessageNotifier delivers a notification text. Empty texts must be ignored.
type MessageNotifier interface {
	Notify(text string) error
}

// Waiter blocks until the next iteration is due.
type Waiter interface {
	Wait(ctx context.Context) error
}

// StatusWatcher polls the review API and reports status changes of the
// tracked homework. It is not safe for concurrent use; one goroutine owns
// the cursor and the memo.
type StatusWatcher struct {
	fetcher  StatusFetcher
	notifier MessageNotifier
	logger   *logrus.Logger
	now      func() time.Time

	cursor int64  // from_date of the next query, Unix seconds
	memo   string // last notification text computed by an iteration
}

func NewStatusWatcher(fetcher StatusFetcher, notifier MessageNotifier, logger *logrus.Logger) *StatusWatcher {
	return &StatusWatcher{
		fetcher:  fetcher,
		notifier: notifier,
		logger:   logger,
		now:      time.Now,
		cursor:   time.Now().Unix(),
	}
}

// Cursor returns the from_date used by the next iteration.
func (w *StatusWatcher) Cursor() int64 { return w.cursor }

// Memo returns the text computed by the last iteration.
func (w *StatusWatcher) Memo() string { return w.memo }

// Run polls until ctx is cancelled, waiting between iterations.
// Iteration failures never stop the loop.
func (w *StatusWatcher) Run(ctx context.Context, waiter Waiter) error {
	w.logger.Infof("Watching homework statuses from %s", time.Unix(w.cursor, 0).Format(time.DateTime))
	for {
		_ = w.Poll(ctx)
		if err := waiter.Wait(ctx); err != nil {
			w.logger.Info("Status watcher stopped.")
			return err
		}
	}
}

// Poll runs a single iteration: fetch, validate, extract, compare, notify.
// On failure the error is logged, reported to the chat on a best-effort
// basis and returned; the cursor is left untouched.
func (w *StatusWatcher) Poll(ctx context.Context) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic during status check: %v", r)
			w.reportFailure(err)
		}
	}()

	startedAt := w.now().Unix()

	message, err := w.checkStatus(ctx)
	if err != nil {
		if ctx.Err() != nil {
			w.logger.WithError(err).Debug("Status check interrupted by shutdown.")
			return err
		}
		w.reportFailure(err)
		return err
	}

	switch {
	case message == "":
		w.logger.Debug("No homework status updates.")
	case message == w.memo:
		w.logger.Debugf("Status unchanged, notification skipped: %s", message)
	default:
		if err := w.notifier.Notify(message); err != nil {
			w.reportFailure(err)
			return err
		}
		w.logger.Infof("Notification sent: %s", message)
	}

	w.memo = message
	w.cursor = startedAt
	return nil
}

func (w *StatusWatcher) checkStatus(ctx context.Context) (string, error) {
	answer, err := w.fetcher.GetHomeworkStatuses(ctx, w.cursor)
	if err != nil {
		return "", err
	}
	homeworks, err := homework.CheckResponse(answer)
	if err != nil {
		return "", err
	}
	return homework.ParseStatus(homeworks)
}

// reportFailure logs err and relays a failure report to the chat on a
// best-effort basis. The report becomes the memo.
func (w *StatusWatcher) reportFailure(err error) {
	report := failureReportPrefix + err.Error()
	w.logger.WithError(err).WithField("from_date", w.cursor).Error("Homework status check failed")

	if sendErr := w.notifier.Notify(report); sendErr != nil {
		w.logger.WithError(sendErr).Error("Failed to report failure to chat")
	}
	w.memo = report
}
