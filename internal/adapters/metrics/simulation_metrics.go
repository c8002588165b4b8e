package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/andrescamacho/greenhouse-go/internal/application/simulation"
	"github.com/andrescamacho/greenhouse-go/internal/domain/request"
	"github.com/andrescamacho/greenhouse-go/internal/domain/staff"
)

// SimulationMetricsCollector turns day summaries and request outcomes into
// Prometheus series. It implements simulation.MetricsRecorder.
type SimulationMetricsCollector struct {
	daysTotal *prometheus.CounterVec
	customers *prometheus.CounterVec

	ordersTotal  *prometheus.CounterVec
	revenueTotal prometheus.Counter
	orderValue   prometheus.Histogram

	requestsHandled   *prometheus.CounterVec
	requestsUnhandled *prometheus.CounterVec

	plantsByStage *prometheus.GaugeVec
	plantsPruned  prometheus.Counter
	plantsPlanted prometheus.Counter
}

// NewSimulationMetricsCollector creates a new simulation metrics collector
func NewSimulationMetricsCollector() *SimulationMetricsCollector {
	return &SimulationMetricsCollector{
		daysTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "days_total",
				Help:      "Simulated days closed by business level",
			},
			[]string{"business_level"},
		),
		customers: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "customers_total",
				Help:      "Customers that visited by business level",
			},
			[]string{"business_level"},
		),
		ordersTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "orders_total",
				Help:      "Orders handled by final status",
			},
			[]string{"status"},
		),
		revenueTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "revenue_dollars_total",
				Help:      "Revenue from completed orders",
			},
		),
		orderValue: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "order_value_dollars",
				Help:      "Completed order total distribution",
				Buckets:   []float64{5, 10, 20, 50, 100, 200},
			},
		),
		requestsHandled: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "requests_handled_total",
				Help:      "Requests handled by role, category and result",
			},
			[]string{"role", "category", "result"},
		),
		requestsUnhandled: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "requests_unhandled_total",
				Help:      "Requests no employee on shift could take",
			},
			[]string{"category"},
		),
		plantsByStage: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "plants",
				Help:      "Plants in the greenhouse at close of day by stage",
			},
			[]string{"stage"},
		),
		plantsPruned: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "plants_pruned_total",
				Help:      "Dead plants cleared from the greenhouse",
			},
		),
		plantsPlanted: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "plants_planted_total",
				Help:      "Seedlings planted by restock requests",
			},
		),
	}
}

// Register registers all simulation metrics with the Prometheus registry
func (c *SimulationMetricsCollector) Register() error {
	return register(
		c.daysTotal,
		c.customers,
		c.ordersTotal,
		c.revenueTotal,
		c.orderValue,
		c.requestsHandled,
		c.requestsUnhandled,
		c.plantsByStage,
		c.plantsPruned,
		c.plantsPlanted,
	)
}

// RecordDay records the close-of-day summary
func (c *SimulationMetricsCollector) RecordDay(day simulation.DaySummary) {
	level := string(day.BusinessLevel)
	c.daysTotal.WithLabelValues(level).Inc()
	c.customers.WithLabelValues(level).Add(float64(day.Customers))

	c.plantsByStage.WithLabelValues("SEEDLING").Set(float64(day.Census.Seedling))
	c.plantsByStage.WithLabelValues("MATURE").Set(float64(day.Census.Mature))
	c.plantsByStage.WithLabelValues("DEAD").Set(float64(day.Census.Dead))
	c.plantsPruned.Add(float64(day.Pruned))
}

// RecordOutcome records one handled request
func (c *SimulationMetricsCollector) RecordOutcome(outcome staff.Outcome) {
	result := "ok"
	if outcome.Err != nil {
		result = "failed"
	}
	category := ""
	if outcome.Request != nil {
		category = string(outcome.Request.Category())
	}
	c.requestsHandled.WithLabelValues(string(outcome.Role), category, result).Inc()

	if outcome.Order != nil {
		c.ordersTotal.WithLabelValues(string(outcome.Order.Status())).Inc()
		if outcome.Err == nil {
			total := outcome.Order.CalculateTotal().Float()
			c.revenueTotal.Add(total)
			c.orderValue.Observe(total)
		}
	}
	c.plantsPlanted.Add(float64(outcome.Planted))
}

// RecordUnhandled records a request that went unhandled
func (c *SimulationMetricsCollector) RecordUnhandled(category request.Category) {
	c.requestsUnhandled.WithLabelValues(string(category)).Inc()
}
