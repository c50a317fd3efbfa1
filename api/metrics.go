package api

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/aaANDkk/sutdychat/events"
)

var (
	accountsCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "studychat_accounts_created_total",
		Help: "Number of accounts registered.",
	})
	messagesSentTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "studychat_messages_sent_total",
		Help: "Number of messages delivered.",
	})
	coinsCreditedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "studychat_coins_credited_total",
		Help: "Total coins credited across all accounts.",
	})
	coinsDebitedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "studychat_coins_debited_total",
		Help: "Total coins debited across all accounts.",
	})
	prizeRedemptionsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "studychat_prize_redemptions_total",
		Help: "Number of successful prize redemptions.",
	})
)

// RegisterMetrics subscribes the prometheus counters to the event bus.
// Events arrive only after the owning transaction commits, so the counters
// never see rolled-back work.
func RegisterMetrics(bus *events.Bus) {
	bus.Subscribe(events.EventTypeAccountCreated, func(ctx context.Context, e events.Event) {
		accountsCreatedTotal.Inc()
	})
	bus.Subscribe(events.EventTypeMessageSent, func(ctx context.Context, e events.Event) {
		messagesSentTotal.Inc()
	})
	bus.Subscribe(events.EventTypeCoinChange, func(ctx context.Context, e events.Event) {
		change, ok := e.(events.CoinChangeEvent)
		if !ok {
			return
		}
		if change.Amount >= 0 {
			coinsCreditedTotal.Add(float64(change.Amount))
		} else {
			coinsDebitedTotal.Add(float64(-change.Amount))
		}
	})
	bus.Subscribe(events.EventTypePrizeRedeemed, func(ctx context.Context, e events.Event) {
		prizeRedemptionsTotal.Inc()
	})
}
