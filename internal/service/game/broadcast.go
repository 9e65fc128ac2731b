package game

import (
	"context"
	"sync"
	"time"
)

// JackpotUpdate - событие изменения джекпота после игры
type JackpotUpdate struct {
	Jackpot int
	At      time.Time
}

// Broadcaster - рассылка обновлений джекпота подписчикам.
// Медленный подписчик теряет обновления, но не блокирует игру
type Broadcaster struct {
	mtx  sync.Mutex
	subs map[chan JackpotUpdate]struct{}
	buf  int
}

func NewBroadcaster(buffer int) *Broadcaster {
	return &Broadcaster{
		subs: make(map[chan JackpotUpdate]struct{}),
		buf:  buffer,
	}
}

// Send - публикует обновление всем подписчикам без блокировки
func (b *Broadcaster) Send(update JackpotUpdate) {
	b.mtx.Lock()
	defer b.mtx.Unlock()

	for ch := range b.subs {
		select {
		case ch <- update:
		default:
			// подписчик не успевает, обновление пропускается
		}
	}
}

// Listen - подписка на обновления. Возвращает канал и функцию отписки
func (b *Broadcaster) Listen(ctx context.Context) (<-chan JackpotUpdate, context.CancelFunc) {
	ch := make(chan JackpotUpdate, b.buf)

	b.mtx.Lock()
	b.subs[ch] = struct{}{}
	b.mtx.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			b.mtx.Lock()
			delete(b.subs, ch)
			b.mtx.Unlock()
			close(ch)
		})
	}

	stop := context.AfterFunc(ctx, cancel)
	return ch, func() {
		stop()
		cancel()
	}
}
