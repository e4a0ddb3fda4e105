package events

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHub(t *testing.T) {
	ctx := context.Background()

	t.Run("publish runs subscribers synchronously in order", func(t *testing.T) {
		h := NewHub()
		var order []string
		h.Subscribe(TopicProjectsChanged, func(context.Context) { order = append(order, "first") })
		h.Subscribe(TopicProjectsChanged, func(context.Context) { order = append(order, "second") })

		h.Publish(ctx, TopicProjectsChanged)
		assert.Equal(t, []string{"first", "second"}, order)
	})

	t.Run("topics are independent", func(t *testing.T) {
		h := NewHub()
		fired := false
		h.Subscribe(TopicCurrencyChanged, func(context.Context) { fired = true })

		h.Publish(ctx, TopicProjectsChanged)
		assert.False(t, fired)

		h.Publish(ctx, TopicCurrencyChanged)
		assert.True(t, fired)
	})

	t.Run("publish with no subscribers is a no-op", func(t *testing.T) {
		h := NewHub()
		h.Publish(ctx, TopicProjectsChanged)
	})
}
