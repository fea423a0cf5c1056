package tvinsider

import (
	"time"

	"github.com/go-rod/rod"
	"go.uber.org/zap"
)

const (
	settleDelay = 3 * time.Second
	scrollWait  = 1500 * time.Millisecond
	maxScrolls  = 10
)

// scrollTarget is the slice of page behavior the loader needs, narrowed to an
// interface so the stopping rule can be exercised without a browser.
type scrollTarget interface {
	Height() (float64, error)
	ScrollToBottom() error
}

type rodScrollTarget struct {
	page *rod.Page
}

func (t rodScrollTarget) Height() (float64, error) {
	res, err := t.page.Eval(`() => document.body.scrollHeight`)
	if err != nil {
		return 0, err
	}
	return res.Value.Num(), nil
}

func (t rodScrollTarget) ScrollToBottom() error {
	_, err := t.page.Eval(`() => window.scrollTo(0, document.body.scrollHeight)`)
	return err
}

// loadAllContent materializes the lazily-loaded listings: an initial settle
// delay, then scroll to the bottom until the document height stops growing or
// the scroll cap is reached. Worst case wait is maxScrolls × scrollWait.
func loadAllContent(page *rod.Page) error {
	time.Sleep(settleDelay)
	return scrollUntilStable(rodScrollTarget{page: page}, maxScrolls, scrollWait)
}

// scrollUntilStable stops at the first iteration whose scroll leaves the
// document height unchanged: the page has nothing more to load.
func scrollUntilStable(t scrollTarget, maxIters int, wait time.Duration) error {
	for i := 0; i < maxIters; i++ {
		before, err := t.Height()
		if err != nil {
			return err
		}
		if err := t.ScrollToBottom(); err != nil {
			return err
		}
		time.Sleep(wait)

		after, err := t.Height()
		if err != nil {
			return err
		}
		if after == before {
			zap.L().Debug("page fully loaded", zap.Int("scrolls", i+1))
			return nil
		}
	}

	zap.L().Debug("scroll cap reached before page height stabilized", zap.Int("scrolls", maxIters))
	return nil
}
