package app

import (
	"sync"
	"time"
)

// DefaultFreshness is how long a fetched chat list or chat detail is served
// without hitting the backend again. Staleness is the only read control;
// there is no push invalidation from the server.
const DefaultFreshness = 10 * time.Second

type listEntry struct {
	chats    []ChatSummary
	cachedAt time.Time
}

type chatEntry struct {
	chat     *Chat
	cachedAt time.Time
}

// ChatCache holds recently fetched backend reads behind a freshness window.
// A successful answer invalidates the chat's detail entry so the next read
// refetches authoritative history.
type ChatCache struct {
	mu     sync.RWMutex
	maxAge time.Duration
	lists  map[ChatType]listEntry
	chats  map[string]chatEntry
}

func NewChatCache(maxAge time.Duration) *ChatCache {
	if maxAge <= 0 {
		maxAge = DefaultFreshness
	}
	return &ChatCache{
		maxAge: maxAge,
		lists:  make(map[ChatType]listEntry),
		chats:  make(map[string]chatEntry),
	}
}

func (c *ChatCache) GetList(t ChatType) ([]ChatSummary, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	entry, ok := c.lists[t]
	if !ok || time.Since(entry.cachedAt) > c.maxAge {
		return nil, false
	}
	return entry.chats, true
}

func (c *ChatCache) SetList(t ChatType, chats []ChatSummary) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lists[t] = listEntry{chats: chats, cachedAt: time.Now()}
}

func (c *ChatCache) GetChat(id string) (*Chat, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	entry, ok := c.chats[id]
	if !ok || time.Since(entry.cachedAt) > c.maxAge {
		return nil, false
	}
	return entry.chat, true
}

func (c *ChatCache) SetChat(chat *Chat) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.chats[chat.ID] = chatEntry{chat: chat, cachedAt: time.Now()}
}

// InvalidateChat drops a chat's detail entry so the next read refetches.
func (c *ChatCache) InvalidateChat(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.chats, id)
}

// InvalidateList drops one type's list entry, used after chat creation.
func (c *ChatCache) InvalidateList(t ChatType) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.lists, t)
}
