package network

import (
	"sync"

	"fluffy-fiesta/pkg/api"
	"fluffy-fiesta/pkg/logger"

	"github.com/sirupsen/logrus"
)

// SubscriberBuffer - сколько сообщений ждёт медленного клиента, прежде чем их начнут выбрасывать.
const SubscriberBuffer = 64

// Broadcaster рассылает сообщения подключенным сессиям.
type Broadcaster struct {
	mu sync.RWMutex
	// sessionID -> личный канал
	subscribers map[string]chan api.ServerResponse
	dropped     map[string]int
}

func NewBroadcaster() *Broadcaster {
	return &Broadcaster{
		subscribers: make(map[string]chan api.ServerResponse),
		dropped:     make(map[string]int),
	}
}

// Register создает канал для сессии. Старый канал той же сессии закрывается.
func (b *Broadcaster) Register(sessionID string) chan api.ServerResponse {
	b.mu.Lock()
	defer b.mu.Unlock()

	if old, ok := b.subscribers[sessionID]; ok {
		close(old)
	}

	ch := make(chan api.ServerResponse, SubscriberBuffer)
	b.subscribers[sessionID] = ch
	b.dropped[sessionID] = 0
	return ch
}

func (b *Broadcaster) Unregister(sessionID string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if ch, ok := b.subscribers[sessionID]; ok {
		close(ch)
		delete(b.subscribers, sessionID)
		delete(b.dropped, sessionID)
	}
}

// SendTo отправляет сообщение одной сессии. false - сессии нет или буфер полон.
func (b *Broadcaster) SendTo(sessionID string, msg api.ServerResponse) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	ch, ok := b.subscribers[sessionID]
	if !ok {
		return false
	}
	return b.offer(sessionID, ch, msg)
}

// Broadcast отправляет всем. Возвращает число доставленных.
func (b *Broadcaster) Broadcast(msg api.ServerResponse) int {
	b.mu.Lock()
	defer b.mu.Unlock()

	sent := 0
	for id, ch := range b.subscribers {
		if b.offer(id, ch, msg) {
			sent++
		}
	}
	return sent
}

// offer не блокируется: снимки устаревают быстрее, чем клиент их дочитает.
func (b *Broadcaster) offer(id string, ch chan api.ServerResponse, msg api.ServerResponse) bool {
	select {
	case ch <- msg:
		return true
	default:
		b.dropped[id]++
		if b.dropped[id] == 1 || b.dropped[id]%100 == 0 {
			logger.Log.WithFields(logrus.Fields{
				"component": "hub",
				"session":   id,
				"dropped":   b.dropped[id],
			}).Warn("Subscriber channel full, dropping message")
		}
		return false
	}
}

func (b *Broadcaster) HasSubscriber(sessionID string) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	_, ok := b.subscribers[sessionID]
	return ok
}

// SubscriberCount возвращает количество активных подписчиков.
func (b *Broadcaster) SubscriberCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subscribers)
}

// Dropped - сколько сообщений сессия пропустила из-за полного буфера.
func (b *Broadcaster) Dropped(sessionID string) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.dropped[sessionID]
}
