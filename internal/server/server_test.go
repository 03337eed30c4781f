package server

import (
	"testing"

	"github.com/taskwell/taskwell/internal/config"
)

func TestNew_SeededAndUnseeded(t *testing.T) {
	for _, seed := range []bool{true, false} {
		cfg := &config.Config{Env: config.EnvProd, Seed: seed, ServerName: "taskwell-test"}
		s, err := New(cfg)
		if err != nil {
			t.Fatalf("New(seed=%v) failed: %v", seed, err)
		}
		if s == nil {
			t.Fatalf("New(seed=%v) returned nil server", seed)
		}
	}
}
