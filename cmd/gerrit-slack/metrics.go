package main

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	notificationsProcessed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "gerrit_slack_notifications_total",
		Help: "The total number of processed gerrit events",
	}, []string{"kind", "status"})
)
