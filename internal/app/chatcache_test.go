package app

import (
	"testing"
	"time"
)

func TestChatCacheFreshnessWindow(t *testing.T) {
	cache := NewChatCache(50 * time.Millisecond)

	cache.SetList(TypeStory, []ChatSummary{{ID: "c1", Title: "pehli kahani"}})
	if _, ok := cache.GetList(TypeStory); !ok {
		t.Fatal("expected fresh list hit")
	}
	if _, ok := cache.GetList(TypeHistoryBot); ok {
		t.Fatal("expected miss for another type")
	}

	time.Sleep(70 * time.Millisecond)
	if _, ok := cache.GetList(TypeStory); ok {
		t.Fatal("expected stale list miss after window")
	}
}

func TestChatCacheInvalidation(t *testing.T) {
	cache := NewChatCache(time.Minute)

	cache.SetChat(&Chat{ID: "c1", Type: TypeStory})
	if _, ok := cache.GetChat("c1"); !ok {
		t.Fatal("expected chat hit")
	}
	cache.InvalidateChat("c1")
	if _, ok := cache.GetChat("c1"); ok {
		t.Fatal("expected miss after invalidation")
	}

	cache.SetList(TypeStory, nil)
	cache.InvalidateList(TypeStory)
	if _, ok := cache.GetList(TypeStory); ok {
		t.Fatal("expected list miss after invalidation")
	}
}
