package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	BroadcastResultSuccess = "success"
	BroadcastResultFailure = "failure"
)

// HarnessMetrics counts the side effects the harness has on the node.
type HarnessMetrics struct {
	Registry               *prometheus.Registry
	BlocksMinedCounter     prometheus.Counter
	FundingSendsCounter    prometheus.Counter
	FundedAmountCounter    prometheus.Counter
	BroadcastsCounterVec   *prometheus.CounterVec
	AutoFundCounterVec     *prometheus.CounterVec
	SelectedUTXOsCounter   prometheus.Counter
	SelectedAmountObserver prometheus.Histogram
}

func NewHarnessMetrics() *HarnessMetrics {
	registry := prometheus.NewRegistry()
	registerer := promauto.With(registry)

	return &HarnessMetrics{
		Registry: registry,
		BlocksMinedCounter: registerer.NewCounter(prometheus.CounterOpts{
			Name: "btctestkit_blocks_mined_total",
			Help: "Number of blocks mined through generatetoaddress",
		}),
		FundingSendsCounter: registerer.NewCounter(prometheus.CounterOpts{
			Name: "btctestkit_funding_sends_total",
			Help: "Number of wallet sends issued to fund test addresses",
		}),
		FundedAmountCounter: registerer.NewCounter(prometheus.CounterOpts{
			Name: "btctestkit_funded_satoshis_total",
			Help: "Total amount in satoshis sent to test addresses",
		}),
		BroadcastsCounterVec: registerer.NewCounterVec(
			prometheus.CounterOpts{
				Name: "btctestkit_broadcasts_total",
				Help: "Number of transaction broadcasts by mode and result",
			},
			[]string{"mode", "result"},
		),
		AutoFundCounterVec: registerer.NewCounterVec(
			prometheus.CounterOpts{
				Name: "btctestkit_auto_funds_total",
				Help: "Number of times UTXO selection had to fund the address first",
			},
			[]string{"reason"},
		),
		SelectedUTXOsCounter: registerer.NewCounter(prometheus.CounterOpts{
			Name: "btctestkit_selected_utxos_total",
			Help: "Number of UTXOs handed out by UTXO selection",
		}),
		SelectedAmountObserver: registerer.NewHistogram(prometheus.HistogramOpts{
			Name:    "btctestkit_selected_utxo_btc",
			Help:    "Amount in BTC of the UTXOs handed out by UTXO selection",
			Buckets: []float64{0.001, 0.01, 0.1, 1, 10, 50},
		}),
	}
}
