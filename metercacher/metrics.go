// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package metercacher

import "github.com/prometheus/client_golang/prometheus"

const resultLabel = "result"

var (
	hitLabels  = prometheus.Labels{resultLabel: "hit"}
	missLabels = prometheus.Labels{resultLabel: "miss"}
)

type cacheMetrics struct {
	putCount      prometheus.Counter
	putTime       prometheus.Counter
	putFailures   prometheus.Counter
	getCount      *prometheus.CounterVec
	getTime       *prometheus.CounterVec
	len           prometheus.Gauge
	portionFilled prometheus.Gauge
}

func newMetrics(namespace string, registry prometheus.Registerer) (*cacheMetrics, error) {
	m := &cacheMetrics{
		putCount: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "put_count",
			Help:      "number of puts",
		}),
		putTime: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "put_time",
			Help:      "cumulative time spent in puts, in nanoseconds",
		}),
		putFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "put_failures",
			Help:      "number of puts that returned an error",
		}),
		getCount: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "get_count",
			Help:      "number of gets",
		}, []string{resultLabel}),
		getTime: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "get_time",
			Help:      "cumulative time spent in gets, in nanoseconds",
		}, []string{resultLabel}),
		len: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "len",
			Help:      "number of entries currently held",
		}),
		portionFilled: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "portion_filled",
			Help:      "fraction of capacity currently used",
		}),
	}

	for _, c := range []prometheus.Collector{
		m.putCount,
		m.putTime,
		m.putFailures,
		m.getCount,
		m.getTime,
		m.len,
		m.portionFilled,
	} {
		if err := registry.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}
