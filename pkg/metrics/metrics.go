package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	ChatExchanges = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "aetherx", Name: "chat_exchanges_total", Help: "Number of chat exchanges by outcome (reply|fallback)."},
		[]string{"outcome"},
	)
	NewsletterSubscribes = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "aetherx", Name: "newsletter_subscribe_total", Help: "Number of newsletter subscribe attempts by outcome (accepted|duplicate)."},
		[]string{"outcome"},
	)
)

func RegisterCollectors(reg prometheus.Registerer) {
	reg.MustRegister(ChatExchanges)
	reg.MustRegister(NewsletterSubscribes)
}
