package cache

import (
	"context"
	"io"
	"log"
	"testing"
	"time"
)

func TestRedis_DisabledWithoutHostBypasses(t *testing.T) {
	ctx := context.Background()
	r := NewRedis(ctx, Options{}, log.New(io.Discard, "", 0))

	if r.Enabled() {
		t.Fatalf("expected cache to be disabled")
	}
	if err := r.SetJSON(ctx, "k", map[string]int{"a": 1}, time.Minute); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	var out map[string]int
	hit, err := r.GetJSON(ctx, "k", &out)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if hit {
		t.Fatalf("expected miss")
	}
	if err := r.DeleteByPattern(ctx, "match:*"); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if err := r.Close(); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
}

func TestRedis_NilReceiverIsSafe(t *testing.T) {
	var r *Redis
	hit, err := r.GetJSON(context.Background(), "k", &struct{}{})
	if hit || err != nil {
		t.Fatalf("expected silent miss, got hit=%v err=%v", hit, err)
	}
	if r.Enabled() {
		t.Fatalf("expected nil cache to be disabled")
	}
}

func TestRedis_DefaultTTL(t *testing.T) {
	r := NewRedis(context.Background(), Options{}, log.New(io.Discard, "", 0))
	if r.ttl != DefaultTTL {
		t.Fatalf("expected default ttl %s, got %s", DefaultTTL, r.ttl)
	}
}

func TestRedis_ExpiryFallsBackToDefault(t *testing.T) {
	r := &Redis{ttl: time.Minute}
	if got := r.expiry(0); got != time.Minute {
		t.Fatalf("expected fallback ttl, got %s", got)
	}
	if got := r.expiry(5 * time.Second); got != 5*time.Second {
		t.Fatalf("expected explicit ttl, got %s", got)
	}
}

func TestDecodeEntry(t *testing.T) {
	var out struct {
		Score int `json:"score"`
	}

	hit, err := decodeEntry(nil, &out)
	if hit || err != nil {
		t.Fatalf("expected empty payload to miss, got hit=%v err=%v", hit, err)
	}

	hit, err = decodeEntry([]byte(`{"score":72}`), &out)
	if !hit || err != nil || out.Score != 72 {
		t.Fatalf("expected hit with score 72, got hit=%v err=%v score=%d", hit, err, out.Score)
	}

	if _, err := decodeEntry([]byte(`{"score":`), &out); err == nil {
		t.Fatalf("expected decode error for truncated payload")
	}
}
