package sim

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/TNTwise/SkullKingComeptition/engine"
)

// guardedBot wraps an engine.Bot with a per-decision time budget. A bot
// that overruns its budget forfeits the move to the engine's deterministic
// fallback (bid 0, first legal card), so one hung bot can never stall a
// match. The late result, if it ever arrives, is discarded.
type guardedBot struct {
	inner  engine.Bot
	budget time.Duration
	log    *logrus.Entry
}

// newGuardedBot wraps bot, or returns it unchanged when the budget is zero.
func newGuardedBot(bot engine.Bot, budget time.Duration, log *logrus.Entry) engine.Bot {
	if budget <= 0 {
		return bot
	}
	return &guardedBot{inner: bot, budget: budget, log: log.WithField("bot", bot.Name())}
}

func (g *guardedBot) Name() string { return g.inner.Name() }

func (g *guardedBot) MakeBid(req engine.BidRequest) int {
	// Buffered so an overdue decision never leaks a blocked goroutine.
	ch := make(chan int, 1)
	go func() { ch <- g.inner.MakeBid(req) }()

	timer := time.NewTimer(g.budget)
	defer timer.Stop()
	select {
	case bid := <-ch:
		return bid
	case <-timer.C:
		g.log.WithFields(logrus.Fields{
			"round": req.RoundNum,
			"seat":  req.Seat,
		}).Warn("bid decision timed out, forcing fallback bid 0")
		return 0
	}
}

func (g *guardedBot) PlayCard(req engine.PlayRequest) engine.Card {
	ch := make(chan engine.Card, 1)
	go func() { ch <- g.inner.PlayCard(req) }()

	timer := time.NewTimer(g.budget)
	defer timer.Stop()
	select {
	case card := <-ch:
		return card
	case <-timer.C:
		fallback := req.Legal[0]
		g.log.WithFields(logrus.Fields{
			"round":    req.RoundNum,
			"seat":     req.Seat,
			"fallback": fallback.String(),
		}).Warn("play decision timed out, forcing fallback card")
		return fallback
	}
}
