package hosting

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeSiteName(t *testing.T) {
	assert.Equal(t, "my-site", NormalizeSiteName("My Site"))
	assert.Equal(t, "my-site", NormalizeSiteName("  My---Site!  "))
	assert.Equal(t, "widgetpro-review-2026", NormalizeSiteName("WidgetPro Review (2026)"))
	assert.Equal(t, "site", NormalizeSiteName("!!!"))
	assert.Equal(t, "site", NormalizeSiteName(""))
}

func TestDeployStateTerminal(t *testing.T) {
	assert.False(t, StateBuilding.Terminal())
	assert.True(t, StateReady.Terminal())
	assert.True(t, StateError.Terminal())
}

func TestRetryable(t *testing.T) {
	assert.True(t, Retryable(&TransportError{Err: assert.AnError}))
	assert.False(t, Retryable(&ProvisioningError{StatusCode: 422, Reason: "taken"}))
	assert.False(t, Retryable(&ValidationError{StatusCode: 422, Reason: "too large"}))
	assert.False(t, Retryable(&AuthError{StatusCode: 401}))
	assert.False(t, Retryable(nil))
}
