package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Manager struct {
	// counters
	CounterRequests           *prometheus.CounterVec
	CounterHandleRequestPanic prometheus.Counter
	CounterEvaluations        *prometheus.CounterVec
	CounterJointDeviations    *prometheus.CounterVec
	CounterFramesSkipped      prometheus.Counter
	CounterHistoryWriteErrors prometheus.Counter
	CounterFeedbackSpoken     prometheus.Counter
	CounterFeedbackDropped    *prometheus.CounterVec
	CounterSpeakerErrors      prometheus.Counter
	CounterRateLimited        *prometheus.CounterVec

	// gauges
	GaugeRequests      prometheus.Gauge
	GaugeLifeSignal    prometheus.Gauge
	GaugeFeedbackQueue prometheus.Gauge

	// histograms
	HistEvaluationDuration   prometheus.Histogram
	HistogramRequestDuration *prometheus.HistogramVec
}

func NewTestManager() *Manager {
	return NewManager("posecheck", "test_server", prometheus.NewRegistry())
}

func NewTestManagerAndRegistry() (*Manager, *prometheus.Registry) {
	reg := prometheus.NewRegistry()
	return NewManager("posecheck", "test_server", reg), reg
}

func NewManager(namespace, subsystem string, reg prometheus.Registerer) *Manager {
	factory := promauto.With(reg)

	counterRequests := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "request",
		Help:      "The total number of incoming requests",
	}, []string{"method", "status"})
	counterHandleRequestPanic := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "handle_request_panic",
		Help:      "The total number of serve request panics",
	})
	counterEvaluations := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "evaluations",
		Help:      "The total number of posture evaluations, by pose and outcome",
	}, []string{"asana", "outcome"})
	counterJointDeviations := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "joint_deviations",
		Help:      "The total number of reported joint deviations",
	}, []string{"joint"})
	counterFramesSkipped := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "frames_skipped",
		Help:      "Frames received between two posture checks",
	})
	counterHistoryWriteErrors := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "history_write_errors",
		Help:      "Evaluations that could not be stored",
	})
	counterFeedbackSpoken := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "feedback_spoken",
		Help:      "The total number of feedback messages handed to the speaker",
	})
	counterFeedbackDropped := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "feedback_dropped",
		Help:      "Feedback messages dropped, by reason",
	}, []string{"reason"})
	counterSpeakerErrors := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "speaker_errors",
		Help:      "Failed attempts to speak a feedback message",
	})

	counterRateLimited := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "rate_limited",
		Help:      "Requests rejected by the rate limiter, by route",
	}, []string{"route"})

	gaugeRequests := factory.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "current_requests",
		Help:      "Current number of requests served",
	})
	gaugeLifeSignal := factory.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "life_signal",
		Help:      "Shows whether the service is alive",
	})
	gaugeFeedbackQueue := factory.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "feedback_queue_length",
		Help:      "Feedback messages waiting to be spoken",
	})

	histEvaluationDuration := factory.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "evaluation_duration_seconds",
		Help:      "Duration of a single frame evaluation in seconds",
		Buckets:   []float64{.0001, .0005, .001, .0025, .005, .01, .025, .05, .1},
	})
	histogramRequestDuration := factory.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "request_duration_seconds",
		Help:      "Histogram of response time for requests in seconds",
		Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
	}, []string{"route", "method", "status_code"})

	return &Manager{
		CounterRequests:           counterRequests,
		CounterHandleRequestPanic: counterHandleRequestPanic,
		CounterEvaluations:        counterEvaluations,
		CounterJointDeviations:    counterJointDeviations,
		CounterFramesSkipped:      counterFramesSkipped,
		CounterHistoryWriteErrors: counterHistoryWriteErrors,
		CounterFeedbackSpoken:     counterFeedbackSpoken,
		CounterFeedbackDropped:    counterFeedbackDropped,
		CounterSpeakerErrors:      counterSpeakerErrors,
		CounterRateLimited:        counterRateLimited,
		GaugeRequests:             gaugeRequests,
		GaugeLifeSignal:           gaugeLifeSignal,
		GaugeFeedbackQueue:        gaugeFeedbackQueue,
		HistEvaluationDuration:    histEvaluationDuration,
		HistogramRequestDuration:  histogramRequestDuration,
	}
}
