// Copyright 2021 The Moov Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package bankapi

import (
	"net/url"

	"github.com/go-kit/kit/metrics/prometheus"
	stdprometheus "github.com/prometheus/client_golang/prometheus"
)

var (
	bankClientErrors = prometheus.NewCounterFrom(stdprometheus.CounterOpts{
		Name: "bank_client_errors",
		Help: "Counter of errors with remote bank nodes",
	}, []string{"instance", "operation"})

	requestDuration = prometheus.NewHistogramFrom(stdprometheus.HistogramOpts{
		Name: "bank_client_request_duration_seconds",
		Help: "Histogram of request durations against remote bank nodes",
	}, []string{"operation"})
)

func (c *Client) trackError(operation string) {
	bankClientErrors.With("instance", instance(c.endpoint), "operation", operation).Add(1)
}

// instance returns the host:port of endpoint for metric labels.
func instance(endpoint string) string {
	u, err := url.Parse(endpoint)
	if err != nil || u.Host == "" {
		return "N/A"
	}
	port := u.Port()
	if port == "" {
		switch u.Scheme {
		case "https":
			port = "443"
		default:
			port = "80"
		}
	}
	return u.Hostname() + ":" + port
}
