package memory

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"zoocore/internal/archive/core"
)

func TestStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := New()
	if s.Driver() != core.DriverMemory {
		t.Fatalf("unexpected driver %s", s.Driver())
	}
	md := map[string]string{"zoo": "demo"}
	obj, err := s.Put(ctx, "zoos/demo/status.txt", strings.NewReader("clean"), core.PutOptions{ContentType: "text/plain", Metadata: md})
	if err != nil {
		t.Fatalf("put: %v", err)
	}
	md["zoo"] = "mutated"
	if obj.Size != 5 || obj.Metadata["zoo"] != "demo" {
		t.Fatalf("unexpected object %+v", obj)
	}

	got, rc, err := s.Get(ctx, "zoos/demo/status.txt")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	defer func() { _ = rc.Close() }()
	body, _ := io.ReadAll(rc)
	if string(body) != "clean" || got.ContentType != "text/plain" {
		t.Fatalf("unexpected get %+v %q", got, body)
	}
	got.Metadata["zoo"] = "changed"
	again, _, _ := s.Get(ctx, "zoos/demo/status.txt")
	if again.Metadata["zoo"] != "demo" {
		t.Fatalf("metadata leaked through Get")
	}
}

func TestStoreIsWriteOnce(t *testing.T) {
	ctx := context.Background()
	s := New()
	if _, err := s.Put(ctx, "a", strings.NewReader("1"), core.PutOptions{}); err != nil {
		t.Fatalf("put: %v", err)
	}
	if _, err := s.Put(ctx, "a", strings.NewReader("2"), core.PutOptions{}); !errors.Is(err, core.ErrExists) {
		t.Fatalf("expected ErrExists, got %v", err)
	}
	if _, _, err := s.Get(ctx, "missing"); !errors.Is(err, core.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := s.Put(ctx, "../escape", strings.NewReader("x"), core.PutOptions{}); err == nil {
		t.Fatalf("expected invalid key to fail")
	}
}

func TestStoreListAndDelete(t *testing.T) {
	ctx := context.Background()
	s := New()
	for _, k := range []string{"zoos/b/x", "zoos/a/y", "other/z"} {
		if _, err := s.Put(ctx, k, strings.NewReader(k), core.PutOptions{}); err != nil {
			t.Fatalf("put %s: %v", k, err)
		}
	}
	list, err := s.List(ctx, "zoos/")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 2 || list[0].Key != "zoos/a/y" || list[1].Key != "zoos/b/x" {
		t.Fatalf("unexpected list %+v", list)
	}
	if all, _ := s.List(ctx, ""); len(all) != 3 {
		t.Fatalf("expected 3 objects, got %d", len(all))
	}
	if ok, err := s.Delete(ctx, "zoos/a/y"); err != nil || !ok {
		t.Fatalf("delete existing: %v %v", ok, err)
	}
	if ok, err := s.Delete(ctx, "zoos/a/y"); err != nil || ok {
		t.Fatalf("delete missing: %v %v", ok, err)
	}
}
