package utils

import (
	"time"

	"homeinsight-catalog/pkg/metrics"
)

// ObserveMongo records the duration of a MongoDB operation and counts it as
// an error when err is set.
func ObserveMongo(operation, collection string, start time.Time, err error) {
	metrics.MongoOperationDuration.WithLabelValues(operation, collection).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.MongoErrorsTotal.WithLabelValues(operation, collection).Inc()
	}
}

// ObserveRedis records the duration of a Redis operation and counts it as
// an error when err is set.
func ObserveRedis(operation string, start time.Time, err error) {
	metrics.RedisOperationDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.RedisErrorsTotal.WithLabelValues(operation).Inc()
	}
}
