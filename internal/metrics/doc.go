// Package metrics aggregates the outcome of every request in a run.
//
// A single [Collector] is shared by all workers. Each request is counted
// exactly once, either as a success or as a failure, together with its
// latency:
//
//	collector := metrics.NewCollector()
//	collector.RecordSuccess(latency)
//	collector.RecordFailure(latency)
//
//	stats := collector.Stats(elapsed)
//
// [Stats] carries the totals, requests per second over the supplied
// elapsed time, and min/mean/max latency. Latencies are kept in an
// HdrHistogram with microsecond resolution.
package metrics
