package promclient

import (
	"log"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var ActiveClientWorkers = prometheus.NewGauge(
	prometheus.GaugeOpts{
		Name: "active_client_workers",
		Help: "number of client workers currently streaming merged summaries",
	},
)

var PublishedSummaries = prometheus.NewCounter(
	prometheus.CounterOpts{
		Name: "published_summaries_total",
		Help: "merged summaries delivered to subscribers",
	},
)

var VenueStreamFailures = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "venue_stream_failures_total",
		Help: "venue streams that ended a client worker",
	},
	[]string{"venue"},
)

func StartPromClientServer(addr string) {
	reg := prometheus.NewRegistry()
	promHandler := promhttp.HandlerFor(reg, promhttp.HandlerOpts{})

	reg.MustRegister(ActiveClientWorkers)
	reg.MustRegister(PublishedSummaries)
	reg.MustRegister(VenueStreamFailures)
	reg.MustRegister(collectors.NewGoCollector())

	http.Handle("/metrics", promHandler)
	log.Printf("prometheus server listening at %s", addr)

	if err := http.ListenAndServe(addr, nil); err != nil {
		log.Fatalf("failed to serve: %v", err)
	}
}
