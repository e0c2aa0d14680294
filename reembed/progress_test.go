package reembed

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProgressTracker(t *testing.T) {
	t.Run("reports at intervals", func(t *testing.T) {
		var out bytes.Buffer
		tracker := NewProgressTracker(&out, 100, 10)
		tracker.Start()

		tracker.Increment(5)
		assert.Empty(t, out.String(), "below the interval, nothing reported")

		tracker.Increment(5)
		assert.Contains(t, out.String(), "10/100")
	})

	t.Run("finish reports full progress", func(t *testing.T) {
		var out bytes.Buffer
		tracker := NewProgressTracker(&out, 50, 100)
		tracker.Start()
		tracker.Increment(20)
		tracker.Finish()
		assert.Contains(t, out.String(), "50/50")
		assert.Contains(t, out.String(), "100.0%")
	})

	t.Run("caps at total", func(t *testing.T) {
		var out bytes.Buffer
		tracker := NewProgressTracker(&out, 10, 1)
		tracker.Start()
		tracker.Increment(25)
		assert.Contains(t, out.String(), "10/10")
	})

	t.Run("ignores updates before start", func(t *testing.T) {
		var out bytes.Buffer
		tracker := NewProgressTracker(&out, 10, 1)
		tracker.Increment(5)
		assert.Empty(t, out.String())
		assert.Zero(t, tracker.Elapsed())
	})
}
