package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Provider metrics
var (
	ProviderCalls = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "provider_calls_total",
		Help: "The total number of JSON-RPC calls sent through the provider",
	}, []string{"method"})

	ProviderCallErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "provider_call_errors_total",
		Help: "The total number of JSON-RPC calls that returned an error",
	}, []string{"method"})

	ChainHead = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "provider_chain_head",
		Help: "The latest block number seen on the provider",
	})
)

// Log query metrics
var (
	LogQueries = promauto.NewCounter(prometheus.CounterOpts{
		Name: "history_log_queries_total",
		Help: "The total number of transfer log queries submitted",
	})

	LogQueryErrors = promauto.NewCounter(prometheus.CounterOpts{
		Name: "history_log_query_errors_total",
		Help: "The total number of transfer log queries that failed",
	})

	ParsedTransfers = promauto.NewCounter(prometheus.CounterOpts{
		Name: "history_parsed_transfers_total",
		Help: "The total number of transfer log entries parsed into records",
	})

	SkippedLogEntries = promauto.NewCounter(prometheus.CounterOpts{
		Name: "history_skipped_log_entries_total",
		Help: "The number of log entries skipped because the contract is not in the token registry",
	})
)

// Metadata cache metrics
var (
	MetadataCacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "metadata_cache_hits_total",
		Help: "The number of token metadata lookups served from cache",
	})

	MetadataCacheMisses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "metadata_cache_misses_total",
		Help: "The number of token metadata lookups that went to the chain",
	})
)
