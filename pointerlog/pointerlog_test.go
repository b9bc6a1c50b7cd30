package pointerlog_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/dasdy/gridtip/layout"
	"github.com/dasdy/gridtip/model"
	"github.com/dasdy/gridtip/pointerlog"
	"github.com/dasdy/gridtip/pointerlog/ports"
	"github.com/dasdy/gridtip/tracker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoop(t *testing.T) {
	t.Run("replays events in order", func(t *testing.T) {
		var out bytes.Buffer

		session := tracker.NewSession(tracker.New(layout.MustBuild(2, 3, 20, 40)), pointerlog.JSONSink(&out))
		input := strings.NewReader("# header\nmove 45 45 8 100 18\nmove 500 500\nbogus\nmove 1 1\nleave\n")

		err := pointerlog.Loop(context.Background(), ports.ReadFile(context.Background(), input), session, true)

		require.NoError(t, err)
		assert.Equal(t, strings.Join([]string{
			`{"visible":true,"left":48,"top":122,"text":"3"}`,
			`{"visible":false,"left":0,"top":0,"text":""}`,
			`{"visible":false,"left":0,"top":0,"text":""}`,
			`{"visible":true,"left":0,"top":0,"text":"0"}`,
			`{"visible":false,"left":0,"top":0,"text":""}`,
		}, "\n")+"\n", out.String())
		assert.Equal(t, model.Hidden(), session.State())
	})

	t.Run("stops on sink failure", func(t *testing.T) {
		sinkErr := errors.New("closed")
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		session := tracker.NewSession(
			tracker.New(layout.MustBuild(1, 1, 1, 1)),
			tracker.SinkFunc(func(model.TooltipState) error { return sinkErr }))

		lines := ports.ReadFile(ctx, strings.NewReader(strings.Repeat("leave\n", 1000)))

		err := pointerlog.Loop(ctx, lines, session, false)

		require.ErrorIs(t, err, sinkErr)

		// Cancelling releases the reader instead of leaving it blocked on a send.
		cancel()

		left := 0
		for range lines {
			left++
		}

		assert.LessOrEqual(t, left, 1)
	})

	t.Run("stops on cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		session := tracker.NewSession(tracker.New(layout.MustBuild(1, 1, 1, 1)), nil)

		require.NoError(t, pointerlog.Loop(ctx, make(chan string), session, false))
	})
}
