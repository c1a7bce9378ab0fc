package logging

import (
	"context"
	"io"
	"testing"

	"github.com/rs/zerolog"
)

// newBenchService constructs a Service with a discard logger at the given
// level. It bypasses Initialize() to avoid I/O setup and focuses on pure
// logging overhead.
func newBenchService(level zerolog.Level) *Service {
	s := NewService()
	logger := zerolog.New(io.Discard).Level(level).Hook(actorHook{})
	s.root.Store(&logger)
	s.isInitialized.Store(true)
	return s
}

func BenchmarkInfoWith(b *testing.B) {
	s := newBenchService(zerolog.InfoLevel)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.InfoWith().Str("key", "value").Int("i", i).Msg("benchmark message")
	}
}

func BenchmarkInfoWithActor(b *testing.B) {
	s := newBenchService(zerolog.InfoLevel)
	ctx := WithActor(context.Background(), "alice")
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.InfoWith().Ctx(ctx).Str("key", "value").Msg("benchmark message")
	}
}

func BenchmarkInfoWithDisabled(b *testing.B) {
	s := newBenchService(zerolog.ErrorLevel)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.InfoWith().Str("key", "value").Msg("dropped")
	}
}

func BenchmarkActorLookup(b *testing.B) {
	ctx := WithActor(context.Background(), "alice")
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Actor(ctx)
	}
}
