package memory

import (
	"fmt"
	"sync"
	"testing"

	"solana-buy-tracker/internal/domain"
)

func TestLastBuyCache_PutGet(t *testing.T) {
	cache := NewLastBuyCache(4)

	if _, ok := cache.Get("mintA"); ok {
		t.Fatal("expected miss on empty cache")
	}

	sender := "Pool"
	cache.Put("mintA", &domain.DiscoveredBuy{Slot: 10, Hash: "h1", Sender: &sender, Amount: "1.5"})
	cache.Put("mintA", &domain.DiscoveredBuy{Slot: 11, Hash: "h2", Amount: "2.0"})

	got, ok := cache.Get("mintA")
	if !ok {
		t.Fatal("expected hit")
	}
	if got.Hash != "h2" {
		t.Errorf("expected last writer h2, got %s", got.Hash)
	}
	if cache.Len() != 1 {
		t.Errorf("expected 1 entry, got %d", cache.Len())
	}
}

func TestLastBuyCache_ReturnsCopies(t *testing.T) {
	cache := NewLastBuyCache(4)

	sender := "Pool"
	buy := &domain.DiscoveredBuy{Hash: "h1", Sender: &sender}
	cache.Put("mintA", buy)

	sender = "Mutated"
	buy.Hash = "changed"

	got, _ := cache.Get("mintA")
	if got.Hash != "h1" || *got.Sender != "Pool" {
		t.Fatalf("cache entry mutated through caller pointer: %+v", got)
	}

	*got.Sender = "AlsoMutated"
	again, _ := cache.Get("mintA")
	if *again.Sender != "Pool" {
		t.Errorf("cache entry mutated through returned pointer: %s", *again.Sender)
	}
}

func TestLastBuyCache_EvictsLeastRecentlyUsed(t *testing.T) {
	cache := NewLastBuyCache(2)

	cache.Put("a", &domain.DiscoveredBuy{Hash: "a"})
	cache.Put("b", &domain.DiscoveredBuy{Hash: "b"})
	cache.Get("a")
	cache.Put("c", &domain.DiscoveredBuy{Hash: "c"})

	if _, ok := cache.Get("b"); ok {
		t.Error("expected b to be evicted")
	}
	if _, ok := cache.Get("a"); !ok {
		t.Error("expected a to survive")
	}
	if cache.Len() != 2 {
		t.Errorf("expected 2 entries, got %d", cache.Len())
	}
}

func TestLastBuyCache_DefaultSize(t *testing.T) {
	cache := NewLastBuyCache(0)
	for i := 0; i < DefaultLastBuyCacheSize+10; i++ {
		cache.Put(fmt.Sprintf("mint-%d", i), &domain.DiscoveredBuy{Hash: "h"})
	}
	if cache.Len() != DefaultLastBuyCacheSize {
		t.Errorf("expected %d entries, got %d", DefaultLastBuyCacheSize, cache.Len())
	}
}

func TestLastBuyCache_ConcurrentAccess(t *testing.T) {
	cache := NewLastBuyCache(16)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			token := fmt.Sprintf("mint-%d", i%4)
			for j := 0; j < 100; j++ {
				cache.Put(token, &domain.DiscoveredBuy{Slot: int64(j)})
				cache.Get(token)
			}
		}(i)
	}
	wg.Wait()

	if cache.Len() != 4 {
		t.Errorf("expected 4 entries, got %d", cache.Len())
	}
}
