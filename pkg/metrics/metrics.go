package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	namespace = "pagemint"

	metricLabelProvider = "provider"
	metricLabelMethod   = "method"
	metricLabelTemplate = "template"
	metricLabelResult   = "result"
)

var (
	// RenderCounter count of rendered bundles per template
	RenderCounter = newCounterVec(
		"render_count",
		"Number of rendered site bundles",
		metricLabelTemplate,
	)
	// RenderDuration observe the duration of each render call
	RenderDuration = newSummaryVec(
		"render_duration_seconds",
		"Seconds to render a complete site bundle",
		metricLabelTemplate,
	)
	// FallbackContentCounter count of validations that substituted fallback copy
	FallbackContentCounter = newCounterVec(
		"fallback_content_count",
		"Number of content validations that fell back to generated copy",
	)
	// PublishCounter count of publish pipeline runs by result
	PublishCounter = newCounterVec(
		"publish_count",
		"Number of publish pipeline runs",
		metricLabelResult,
	)
	// PublishRetryCounter count of retried deploy attempts
	PublishRetryCounter = newCounterVec(
		"publish_retry_count",
		"Number of deploy attempts that were retried after a transport failure",
	)
	// ProviderRequestCounter count of requests sent to the hosting provider
	ProviderRequestCounter = newCounterVec(
		"provider_request_count",
		"Number of HTTP requests sent to the hosting provider",
		metricLabelProvider, metricLabelMethod,
	)
	// ProviderDeployCounter count of deploys created at the hosting provider
	ProviderDeployCounter = newCounterVec(
		"provider_deploy_count",
		"Number of deploys created at the hosting provider",
		metricLabelProvider,
	)
)

func newSummaryVec(name, help string, labels ...string) *prometheus.SummaryVec {
	vec := prometheus.NewSummaryVec(
		prometheus.SummaryOpts{
			Namespace: namespace,
			Name:      name,
			Help:      help,
		}, labels)
	prometheus.MustRegister(vec)
	return vec
}

func newCounterVec(name, help string, labels ...string) *prometheus.CounterVec {
	vec := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      name,
			Help:      help,
		}, labels)
	prometheus.MustRegister(vec)
	return vec
}
