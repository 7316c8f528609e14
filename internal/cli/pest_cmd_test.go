package cli

import (
	"testing"

	"github.com/aumai/kisanmitra/internal/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	pests, err := catalog.New()
	require.NoError(t, err)
	return &App{
		Pests:         pests,
		IsInteractive: func() bool { return false },
	}
}

func TestSplitSymptoms(t *testing.T) {
	assert.Equal(t, []string{"yellowing", "wilting"}, splitSymptoms("yellowing, wilting"))
	assert.Equal(t, []string{"yellowing"}, splitSymptoms("yellowing,, ,"))
	assert.Nil(t, splitSymptoms(""))
}

func TestIdentifyPests_NoCropFilter(t *testing.T) {
	app := newTestApp(t)

	got := identifyPests(app, []string{"hopperburn"}, "")
	require.NotEmpty(t, got)
	assert.Equal(t, "Brown Plant Hopper", got[0].Name)
}

func TestIdentifyPests_CropFilterIntersects(t *testing.T) {
	app := newTestApp(t)

	// "yellowing" matches pests across many crops; the rice filter must
	// drop everything that does not affect rice.
	got := identifyPests(app, []string{"yellowing"}, "Rice")
	require.NotEmpty(t, got)
	for _, r := range got {
		assert.True(t, r.AffectsCrop("Rice"), "pest %s does not affect rice", r.Name)
	}
}

func TestIdentifyPests_CropFallbackWhenNothingSurvives(t *testing.T) {
	app := newTestApp(t)

	// No symptom match at all: fall back to the crop's full candidate list.
	got := identifyPests(app, []string{"xyzzy"}, "Rice")
	assert.Equal(t, app.Pests.ByCrop("Rice"), got)
}
