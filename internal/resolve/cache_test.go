package resolve

import (
	"fmt"
	"testing"
)

func testRecord(name string) Record {
	return Record{
		SkillName:      name,
		Dependencies:   []string{"Something"},
		Difficulty:     5,
		EstimatedHours: 20,
		Category:       "general",
		Source:         SourceRemote,
	}
}

func TestCache_GetRewritesSource(t *testing.T) {
	c := NewCache(4)
	c.Put("jazz piano", testRecord("Jazz Piano"))

	rec, ok := c.Get("jazz piano")
	if !ok {
		t.Fatal("expected hit")
	}
	if rec.Source != SourceCached {
		t.Fatalf("expected cached source, got %q", rec.Source)
	}
}

func TestCache_Miss(t *testing.T) {
	c := NewCache(4)
	if _, ok := c.Get("nothing"); ok {
		t.Fatal("expected miss")
	}
}

func TestCache_EvictsOldestWhenFull(t *testing.T) {
	c := NewCache(3)
	for i := 0; i < 3; i++ {
		key := fmt.Sprintf("skill-%d", i)
		c.Put(key, testRecord(key))
	}
	c.Put("skill-3", testRecord("skill-3"))

	if c.Len() != 3 {
		t.Fatalf("expected 3 entries, got %d", c.Len())
	}
	if _, ok := c.Get("skill-0"); ok {
		t.Fatal("expected oldest entry evicted")
	}
	if _, ok := c.Get("skill-3"); !ok {
		t.Fatal("expected newest entry present")
	}
}

func TestCache_UpdateDoesNotEvict(t *testing.T) {
	c := NewCache(2)
	c.Put("a", testRecord("a"))
	c.Put("b", testRecord("b"))
	c.Put("a", testRecord("a2"))

	if c.Len() != 2 {
		t.Fatalf("expected 2 entries, got %d", c.Len())
	}
	rec, ok := c.Get("a")
	if !ok || rec.SkillName != "a2" {
		t.Fatalf("expected updated record, got %+v ok=%v", rec, ok)
	}
}

func TestCache_ReturnsCopies(t *testing.T) {
	c := NewCache(4)
	c.Put("x", testRecord("x"))

	rec, _ := c.Get("x")
	rec.Dependencies[0] = "Mutated"

	again, _ := c.Get("x")
	if again.Dependencies[0] != "Something" {
		t.Fatal("cache entry was mutated through a returned record")
	}
}
