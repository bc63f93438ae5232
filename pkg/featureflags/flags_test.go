package featureflags

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnvManager_DefaultsOn(t *testing.T) {
	os.Clearenv()
	m := NewEnvManager("")
	ctx := context.Background()

	assert.True(t, m.IsEnabled(ctx, GeocodeEnabled))
	assert.True(t, m.IsEnabled(ctx, RateLimitEnabled))
	assert.True(t, m.IsEnabled(ctx, SchedulerEnabled))
}

func TestEnvManager_EnvDisables(t *testing.T) {
	os.Clearenv()
	os.Setenv("FEATURE_GEOCODE_ENABLED", "false")
	defer os.Clearenv()

	m := NewEnvManager("")

	assert.False(t, m.IsEnabled(context.Background(), GeocodeEnabled))
}

func TestEnvManager_EnvEnableValues(t *testing.T) {
	for _, value := range []string{"true", "1", "enabled", "TRUE"} {
		os.Clearenv()
		os.Setenv("FEATURE_RATE_LIMIT_ENABLED", value)

		m := NewEnvManager("")
		assert.True(t, m.IsEnabled(context.Background(), RateLimitEnabled), "value %q", value)
	}
	os.Clearenv()
}

func TestEnvManager_OverrideWinsOverEnv(t *testing.T) {
	os.Clearenv()
	os.Setenv("FEATURE_SCHEDULER_ENABLED", "true")
	defer os.Clearenv()

	m := NewEnvManager("")
	m.SetEnabled(SchedulerEnabled, false)

	assert.False(t, m.IsEnabled(context.Background(), SchedulerEnabled))
}

func TestEnvManager_CustomPrefix(t *testing.T) {
	os.Clearenv()
	os.Setenv("LP_GEOCODE_ENABLED", "false")
	defer os.Clearenv()

	m := NewEnvManager("LP_")

	assert.False(t, m.IsEnabled(context.Background(), GeocodeEnabled))
}

func TestEnvManager_GetAllFlags(t *testing.T) {
	os.Clearenv()
	m := NewEnvManager("")
	m.SetEnabled(GeocodeEnabled, false)

	flags := m.GetAllFlags()

	assert.Len(t, flags, len(AllFlags()))
	assert.False(t, flags[GeocodeEnabled])
	assert.True(t, flags[RateLimitEnabled])
}

func TestStaticManager(t *testing.T) {
	m := NewStaticManager(map[FeatureFlag]bool{GeocodeEnabled: true})
	ctx := context.Background()

	assert.True(t, m.IsEnabled(ctx, GeocodeEnabled))
	assert.False(t, m.IsEnabled(ctx, RateLimitEnabled))

	m.SetEnabled(RateLimitEnabled, true)
	assert.True(t, m.IsEnabled(ctx, RateLimitEnabled))
}

func TestStaticManager_NilFlags(t *testing.T) {
	m := NewStaticManager(nil)

	assert.False(t, m.IsEnabled(context.Background(), GeocodeEnabled))
	assert.Empty(t, m.GetAllFlags())
}
