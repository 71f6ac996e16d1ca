package s3

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"

	"zoocore/internal/archive/core"
)

func newFake(t *testing.T) *Store {
	t.Helper()
	s, err := NewFake(context.Background(), "zoo-archive")
	if err != nil {
		t.Fatalf("new fake: %v", err)
	}
	return s
}

func TestNewRequiresBucket(t *testing.T) {
	if _, err := New(context.Background(), Config{}); err == nil {
		t.Fatalf("expected missing bucket to fail")
	}
}

func TestPutGetRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := newFake(t)
	if s.Driver() != core.DriverS3 || s.Bucket() != "zoo-archive" {
		t.Fatalf("unexpected store %s %s", s.Driver(), s.Bucket())
	}
	obj, err := s.Put(ctx, "zoos/demo/2025-10-26/report.json", strings.NewReader(`{"zoo":"demo"}`), core.PutOptions{ContentType: "application/json"})
	if err != nil {
		t.Fatalf("put: %v", err)
	}
	if obj.Size != 14 || obj.ETag == "" {
		t.Fatalf("unexpected object %+v", obj)
	}

	got, rc, err := s.Get(ctx, "zoos/demo/2025-10-26/report.json")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	defer func() { _ = rc.Close() }()
	body, _ := io.ReadAll(rc)
	if string(body) != `{"zoo":"demo"}` || got.ContentType != "application/json" {
		t.Fatalf("unexpected get %+v %q", got, body)
	}
}

func TestPutIsCreateOnly(t *testing.T) {
	ctx := context.Background()
	s := newFake(t)
	if _, err := s.Put(ctx, "k", strings.NewReader("one"), core.PutOptions{}); err != nil {
		t.Fatalf("put: %v", err)
	}
	if _, err := s.Put(ctx, "k", strings.NewReader("two"), core.PutOptions{}); !errors.Is(err, core.ErrExists) {
		t.Fatalf("expected ErrExists, got %v", err)
	}
	_, rc, err := s.Get(ctx, "k")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	body, _ := io.ReadAll(rc)
	_ = rc.Close()
	if string(body) != "one" {
		t.Fatalf("object was overwritten: %q", body)
	}
}

func TestGetMissingAndInvalidKey(t *testing.T) {
	ctx := context.Background()
	s := newFake(t)
	if _, _, err := s.Get(ctx, "nope"); !errors.Is(err, core.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := s.Put(ctx, "../x", strings.NewReader("x"), core.PutOptions{}); err == nil {
		t.Fatalf("expected invalid key to fail")
	}
}

func TestListAndDelete(t *testing.T) {
	ctx := context.Background()
	s := newFake(t)
	for i, k := range []string{"zoos/b/1", "zoos/a/2", "other/3"} {
		if _, err := s.Put(ctx, k, strings.NewReader(fmt.Sprint(i)), core.PutOptions{}); err != nil {
			t.Fatalf("put %s: %v", k, err)
		}
	}
	list, err := s.List(ctx, "zoos/")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 2 || list[0].Key != "zoos/a/2" || list[1].Key != "zoos/b/1" {
		t.Fatalf("unexpected list %+v", list)
	}
	if ok, err := s.Delete(ctx, "zoos/a/2"); err != nil || !ok {
		t.Fatalf("delete: %v %v", ok, err)
	}
	if ok, err := s.Delete(ctx, "zoos/a/2"); err != nil || ok {
		t.Fatalf("second delete: %v %v", ok, err)
	}
}

func TestDecodeChunked(t *testing.T) {
	raw := []byte("5;chunk-signature=abc\r\nhello\r\n6\r\n world\r\n0\r\nx-amz-checksum-crc32:AAAA\r\n\r\n")
	got, err := decodeChunked(raw)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if string(got) != "hello world" {
		t.Fatalf("unexpected payload %q", got)
	}
	if _, err := decodeChunked([]byte("zz\r\n")); err == nil {
		t.Fatalf("expected bad size to fail")
	}
}
