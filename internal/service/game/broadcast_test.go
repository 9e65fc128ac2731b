package game_test

import (
	"context"
	"testing"
	"time"

	"jackpot_backend/internal/service/game"
)

func TestBroadcasterFanOut(t *testing.T) {
	b := game.NewBroadcaster(4)

	ctx := context.Background()
	first, cancelFirst := b.Listen(ctx)
	defer cancelFirst()
	second, cancelSecond := b.Listen(ctx)
	defer cancelSecond()

	b.Send(game.JackpotUpdate{Jackpot: 1234, At: time.Now()})

	for name, ch := range map[string]<-chan game.JackpotUpdate{"first": first, "second": second} {
		select {
		case update := <-ch:
			if update.Jackpot != 1234 {
				t.Errorf("%s subscriber got jackpot %d", name, update.Jackpot)
			}
		case <-time.After(time.Second):
			t.Fatalf("%s subscriber got no update", name)
		}
	}
}

func TestBroadcasterSlowSubscriberDoesNotBlock(t *testing.T) {
	b := game.NewBroadcaster(1)

	_, cancel := b.Listen(context.Background())
	defer cancel()

	// The subscriber never reads; sends beyond the buffer are dropped.
	done := make(chan struct{})
	go func() {
		for i := 0; i < 100; i++ {
			b.Send(game.JackpotUpdate{Jackpot: i})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Send blocked on a slow subscriber")
	}
}

func TestBroadcasterCancelStopsDelivery(t *testing.T) {
	b := game.NewBroadcaster(4)

	updates, cancel := b.Listen(context.Background())
	cancel()

	// The channel closes on cancel; repeated cancel is safe.
	cancel()
	if _, ok := <-updates; ok {
		t.Error("update delivered after cancel")
	}

	b.Send(game.JackpotUpdate{Jackpot: 1})
}
