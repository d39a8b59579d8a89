// Package graphql serves the channel schema with gqlgen. generated.go and
// models_gen.go are produced from schema.graphqls; the resolvers in
// schema.resolvers.go read and write through the channel service.
package graphql

//go:generate go run github.com/99designs/gqlgen generate

import (
	"context"
	"time"

	"github.com/artpar/coniql/app"
	"github.com/rs/zerolog"
)

// Channels is the channel service the resolvers run against.
// *app.ChannelService satisfies it.
type Channels interface {
	GetChannel(ctx context.Context, id string, timeout time.Duration) (*app.Cell, error)
	PutChannels(ctx context.Context, ids []string, values []string, timeout time.Duration) ([]*app.Cell, error)
	SubscribeChannel(ctx context.Context, id string) (*app.Subscription, error)
}

// Resolver is the root resolver.
type Resolver struct {
	Channels Channels
	Logger   zerolog.Logger
}

// timeoutOf converts a timeout argument in seconds. Missing or non-positive
// values mean the service default.
func timeoutOf(seconds *float64) time.Duration {
	if seconds == nil || *seconds <= 0 {
		return 0
	}
	return time.Duration(*seconds * float64(time.Second))
}

func lengthOf(length *int) int {
	if length == nil || *length < 0 {
		return 0
	}
	return *length
}

func boolOf(b *bool) bool {
	return b != nil && *b
}
