package watch

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/raykavin/tokenwatch/pkg/logger"
	zerologadapter "github.com/raykavin/tokenwatch/pkg/logger/zerolog"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

const testInterval = 10 * time.Millisecond

func nopLogger() logger.Logger {
	nop := zerolog.Nop()
	return zerologadapter.NewAdapter(&nop)
}

type chanNotifier struct {
	ch  chan string
	err error
}

func (n *chanNotifier) Notify(text string) error {
	n.ch <- text
	return n.err
}

// panicOnceFeed panics on the first call and reports an alerting price on
// every call after that.
type panicOnceFeed struct {
	calls atomic.Int32
}

func (p *panicOnceFeed) Name() string { return "panic" }

func (p *panicOnceFeed) CurrentPrice(_ context.Context, _ string) (float64, error) {
	if p.calls.Add(1) == 1 {
		panic("first call")
	}
	return 0.045, nil
}

func runWatcher(t *testing.T, reporter *Reporter, notifier *chanNotifier) (cancel func()) {
	t.Helper()

	ctx, stop := context.WithCancel(context.Background())
	done := make(chan struct{})

	go func() {
		defer close(done)
		NewWatcher(reporter, notifier, testInterval, nopLogger()).Run(ctx)
	}()

	return func() {
		stop()
		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("watcher did not stop after cancellation")
		}
	}
}

func TestWatcher_DeliversAlert(t *testing.T) {
	reporter := NewReporter([]*Token{newToken("BGS", 0.045, 0.03, 30)})
	notifier := &chanNotifier{ch: make(chan string, 16)}

	cancel := runWatcher(t, reporter, notifier)
	defer cancel()

	select {
	case text := <-notifier.ch:
		require.Contains(t, text, "**ALERT**")
		require.Contains(t, text, "name: BGS, buy_price: 0.03, current_price: 0.045, diff: +50%")
	case <-time.After(time.Second):
		t.Fatal("no alert delivered")
	}
}

func TestWatcher_SilentWhenNothingAlerts(t *testing.T) {
	reporter := NewReporter([]*Token{newToken("BGS", 0.033, 0.03, 30)})
	notifier := &chanNotifier{ch: make(chan string, 16)}

	cancel := runWatcher(t, reporter, notifier)
	defer cancel()

	select {
	case text := <-notifier.ch:
		t.Fatalf("unexpected message: %q", text)
	case <-time.After(10 * testInterval):
	}
}

func TestWatcher_SurvivesDeliveryFailure(t *testing.T) {
	reporter := NewReporter([]*Token{newToken("BGS", 0.045, 0.03, 30)})
	notifier := &chanNotifier{ch: make(chan string, 16), err: errors.New("send failed")}

	cancel := runWatcher(t, reporter, notifier)
	defer cancel()

	// Two deliveries prove the loop outlived the first failure.
	for i := 0; i < 2; i++ {
		select {
		case <-notifier.ch:
		case <-time.After(time.Second):
			t.Fatal("watcher stopped after delivery failure")
		}
	}
}

func TestWatcher_RecoversFromPanickedCycle(t *testing.T) {
	token := &Token{Name: "BGS", Feed: &panicOnceFeed{}, BuyPrice: 0.03, AlertThreshold: 30}
	reporter := NewReporter([]*Token{token})
	notifier := &chanNotifier{ch: make(chan string, 16)}

	cancel := runWatcher(t, reporter, notifier)
	defer cancel()

	select {
	case text := <-notifier.ch:
		require.Contains(t, text, "**ALERT**")
	case <-time.After(time.Second):
		t.Fatal("watcher did not recover from panicked cycle")
	}
}

func TestWatcher_StopsOnCancellation(t *testing.T) {
	reporter := NewReporter(nil)
	notifier := &chanNotifier{ch: make(chan string, 16)}

	ctx, stop := context.WithCancel(context.Background())
	stop()

	done := make(chan struct{})
	go func() {
		defer close(done)
		NewWatcher(reporter, notifier, time.Hour, nopLogger()).Run(ctx)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("watcher did not stop")
	}
}
