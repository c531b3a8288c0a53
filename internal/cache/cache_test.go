package cache

import (
	"strconv"
	"sync"
	"testing"
)

func TestNew(t *testing.T) {
	tests := []struct {
		capacity, want int
	}{
		{100, 100},
		{1, 1},
		{0, 1},
		{-5, 1},
	}
	for _, tt := range tests {
		c := New[string, int](tt.capacity)
		if got := c.Capacity(); got != tt.want {
			t.Errorf("New(%d).Capacity() = %d, want %d", tt.capacity, got, tt.want)
		}
		if c.Len() != 0 {
			t.Errorf("New(%d).Len() = %d, want 0", tt.capacity, c.Len())
		}
	}
}

func TestCacheGetSet(t *testing.T) {
	c := New[string, int](10)
	c.Set("key1", 42)

	if val, ok := c.Get("key1"); !ok || val != 42 {
		t.Errorf("Get(key1) = %d, %v, want 42, true", val, ok)
	}
	if _, ok := c.Get("missing"); ok {
		t.Error("Get(missing) found a value")
	}

	c.Set("key1", 7)
	if val, _ := c.Get("key1"); val != 7 {
		t.Errorf("Get(key1) after replace = %d, want 7", val)
	}
	if c.Len() != 1 {
		t.Errorf("Len() = %d, want 1", c.Len())
	}
}

func TestCacheEvictsLeastRecentlyUsed(t *testing.T) {
	c := New[string, int](3)
	c.Set("a", 1)
	c.Set("b", 2)
	c.Set("c", 3)

	// Touch a so b becomes the oldest.
	c.Get("a")
	c.Set("d", 4)

	if _, ok := c.Get("b"); ok {
		t.Error("b survived eviction")
	}
	for _, k := range []string{"a", "c", "d"} {
		if _, ok := c.Get(k); !ok {
			t.Errorf("%s was evicted", k)
		}
	}
	if got := c.Stats().Evictions; got != 1 {
		t.Errorf("Evictions = %d, want 1", got)
	}
}

func TestCacheGetOrCreate(t *testing.T) {
	c := New[string, int](10)
	calls := 0
	create := func() int {
		calls++
		return 100
	}

	if val := c.GetOrCreate("key", create); val != 100 {
		t.Errorf("GetOrCreate() = %d, want 100", val)
	}
	if val := c.GetOrCreate("key", create); val != 100 {
		t.Errorf("GetOrCreate() = %d, want 100", val)
	}
	if calls != 1 {
		t.Errorf("create called %d times, want 1", calls)
	}

	s := c.Stats()
	if s.Hits != 1 || s.Misses != 1 || s.HitRate != 0.5 {
		t.Errorf("Stats() = %+v, want 1 hit, 1 miss, rate 0.5", s)
	}
}

func TestCacheDeleteClear(t *testing.T) {
	c := New[int, int](10)
	for i := 0; i < 5; i++ {
		c.Set(i, i*i)
	}
	if !c.Delete(2) {
		t.Error("Delete(2) = false, want true")
	}
	if c.Delete(2) {
		t.Error("second Delete(2) = true, want false")
	}
	if c.Len() != 4 {
		t.Errorf("Len() = %d, want 4", c.Len())
	}

	c.Clear()
	if c.Len() != 0 {
		t.Errorf("Len() after Clear = %d, want 0", c.Len())
	}
	// The list must be usable after Clear.
	for i := 0; i < 20; i++ {
		c.Set(i, i)
	}
	if c.Len() != 10 {
		t.Errorf("Len() = %d, want 10", c.Len())
	}
}

func TestLRUListOrder(t *testing.T) {
	var l lruList[int, struct{}]
	nodes := make([]*lruNode[int, struct{}], 4)
	for i := range nodes {
		nodes[i] = &lruNode[int, struct{}]{key: i}
		l.pushFront(nodes[i])
	}
	l.moveToFront(nodes[0])
	l.moveToFront(nodes[0])

	var got []int
	for n := l.removeOldest(); n != nil; n = l.removeOldest() {
		got = append(got, n.key)
	}
	want := []int{1, 2, 3, 0}
	if len(got) != len(want) {
		t.Fatalf("removed %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("removed %v, want %v", got, want)
		}
	}
	if l.len != 0 || l.head != nil || l.tail != nil {
		t.Errorf("list not empty after draining: len=%d", l.len)
	}
}

func TestCacheConcurrent(t *testing.T) {
	c := New[string, int](50)
	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				key := strconv.Itoa((g*7 + i) % 80)
				c.GetOrCreate(key, func() int { return i })
				c.Get(key)
			}
		}(g)
	}
	wg.Wait()
	if c.Len() > c.Capacity() {
		t.Errorf("Len() = %d exceeds capacity %d", c.Len(), c.Capacity())
	}
}

func BenchmarkCacheGetOrCreate(b *testing.B) {
	c := New[string, int](64)
	for i := 0; i < b.N; i++ {
		c.GetOrCreate(strconv.Itoa(i%100), func() int { return i })
	}
}
