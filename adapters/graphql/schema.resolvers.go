package graphql

// This file will be automatically regenerated based on the schema, any resolver implementations
// will be copied through when generating and any unknown code will be moved to the end.
// Code generated by github.com/99designs/gqlgen version v0.17.78

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"time"

	"github.com/artpar/coniql/app"
	"github.com/artpar/coniql/domain/channel"
)

// NumberType is the resolver for the numberType field.
func (r *base64ArrayResolver) NumberType(ctx context.Context, obj *channel.Base64Array) (NumberType, error) {
	nt := NumberType(obj.NumberType)
	if !nt.IsValid() {
		return "", fmt.Errorf("%q is not a valid NumberType", obj.NumberType)
	}
	return nt, nil
}

// Value is the resolver for the value field.
func (r *channelResolver) Value(ctx context.Context, obj *app.Cell) (*channel.Value, error) {
	snap, err := obj.Channel(ctx)
	if err != nil {
		return nil, err
	}
	return snap.Value, nil
}

// Time is the resolver for the time field.
func (r *channelResolver) Time(ctx context.Context, obj *app.Cell) (*channel.Time, error) {
	snap, err := obj.Channel(ctx)
	if err != nil {
		return nil, err
	}
	return snap.Time, nil
}

// Status is the resolver for the status field.
func (r *channelResolver) Status(ctx context.Context, obj *app.Cell) (*channel.Status, error) {
	snap, err := obj.Channel(ctx)
	if err != nil {
		return nil, err
	}
	return snap.Status, nil
}

// Display is the resolver for the display field.
func (r *channelResolver) Display(ctx context.Context, obj *app.Cell) (*channel.Display, error) {
	snap, err := obj.Channel(ctx)
	if err != nil {
		return nil, err
	}
	return snap.Display, nil
}

// Role is the resolver for the role field.
func (r *channelDisplayResolver) Role(ctx context.Context, obj *channel.Display) (ChannelRole, error) {
	role := ChannelRole(obj.Role)
	if !role.IsValid() {
		return "", fmt.Errorf("%q is not a valid ChannelRole", obj.Role)
	}
	return role, nil
}

// Widget is the resolver for the widget field.
func (r *channelDisplayResolver) Widget(ctx context.Context, obj *channel.Display) (*Widget, error) {
	if obj.Widget == "" {
		return nil, nil
	}
	w := Widget(obj.Widget)
	if !w.IsValid() {
		return nil, fmt.Errorf("%q is not a valid Widget", obj.Widget)
	}
	return &w, nil
}

// Units is the resolver for the units field.
func (r *channelDisplayResolver) Units(ctx context.Context, obj *channel.Display) (*string, error) {
	if obj.Units == "" {
		return nil, nil
	}
	return &obj.Units, nil
}

// Precision is the resolver for the precision field.
func (r *channelDisplayResolver) Precision(ctx context.Context, obj *channel.Display) (*int, error) {
	if obj.Precision < 0 {
		return nil, nil
	}
	return &obj.Precision, nil
}

// Form is the resolver for the form field.
func (r *channelDisplayResolver) Form(ctx context.Context, obj *channel.Display) (*DisplayForm, error) {
	if obj.Form == "" {
		return nil, nil
	}
	f := DisplayForm(obj.Form)
	if !f.IsValid() {
		return nil, fmt.Errorf("%q is not a valid DisplayForm", obj.Form)
	}
	return &f, nil
}

// Quality is the resolver for the quality field.
func (r *channelStatusResolver) Quality(ctx context.Context, obj *channel.Status) (ChannelQuality, error) {
	q := ChannelQuality(obj.Quality)
	if !q.IsValid() {
		return "", fmt.Errorf("%q is not a valid ChannelQuality", obj.Quality)
	}
	return q, nil
}

// Datetime is the resolver for the datetime field.
func (r *channelTimeResolver) Datetime(ctx context.Context, obj *channel.Time) (string, error) {
	return obj.Datetime().Format(time.RFC3339Nano), nil
}

// String is the resolver for the string field.
func (r *channelValueResolver) String(ctx context.Context, obj *channel.Value, units *bool) (*string, error) {
	s := obj.String(boolOf(units))
	return &s, nil
}

// Float is the resolver for the float field.
func (r *channelValueResolver) Float(ctx context.Context, obj *channel.Value) (*float64, error) {
	f, ok := obj.Float()
	if !ok || math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, nil
	}
	return &f, nil
}

// StringArray is the resolver for the stringArray field.
func (r *channelValueResolver) StringArray(ctx context.Context, obj *channel.Value, length *int) ([]string, error) {
	out, ok := obj.StringArray(lengthOf(length))
	if !ok {
		return nil, nil
	}
	if out == nil {
		out = []string{}
	}
	return out, nil
}

// Base64Array is the resolver for the base64Array field.
func (r *channelValueResolver) Base64Array(ctx context.Context, obj *channel.Value, length *int) (*channel.Base64Array, error) {
	return obj.Base64Array(lengthOf(length))
}

// PutChannels is the resolver for the putChannels field.
func (r *mutationResolver) PutChannels(ctx context.Context, ids []string, values []string, timeout *float64) ([]*app.Cell, error) {
	return r.Channels.PutChannels(ctx, ids, values, timeoutOf(timeout))
}

// GetChannel is the resolver for the getChannel field.
func (r *queryResolver) GetChannel(ctx context.Context, id string, timeout *float64) (*app.Cell, error) {
	return r.Channels.GetChannel(ctx, id, timeoutOf(timeout))
}

// SubscribeChannel is the resolver for the subscribeChannel field.
func (r *subscriptionResolver) SubscribeChannel(ctx context.Context, id string) (<-chan *app.Cell, error) {
	sub, err := r.Channels.SubscribeChannel(ctx, id)
	if err != nil {
		return nil, err
	}

	updates := make(chan *app.Cell, 1)
	go func() {
		defer close(updates)
		defer sub.Close()
		for {
			cell, err := sub.Next(ctx)
			if err != nil {
				if !errors.Is(err, io.EOF) && ctx.Err() == nil {
					r.Logger.Warn().Err(err).Str("channel", id).Msg("subscription stream ended")
				}
				return
			}
			select {
			case updates <- cell:
			case <-ctx.Done():
				return
			}
		}
	}()
	return updates, nil
}

// Base64Array returns Base64ArrayResolver implementation.
func (r *Resolver) Base64Array() Base64ArrayResolver { return &base64ArrayResolver{r} }

// Channel returns ChannelResolver implementation.
func (r *Resolver) Channel() ChannelResolver { return &channelResolver{r} }

// ChannelDisplay returns ChannelDisplayResolver implementation.
func (r *Resolver) ChannelDisplay() ChannelDisplayResolver { return &channelDisplayResolver{r} }

// ChannelStatus returns ChannelStatusResolver implementation.
func (r *Resolver) ChannelStatus() ChannelStatusResolver { return &channelStatusResolver{r} }

// ChannelTime returns ChannelTimeResolver implementation.
func (r *Resolver) ChannelTime() ChannelTimeResolver { return &channelTimeResolver{r} }

// ChannelValue returns ChannelValueResolver implementation.
func (r *Resolver) ChannelValue() ChannelValueResolver { return &channelValueResolver{r} }

// Mutation returns MutationResolver implementation.
func (r *Resolver) Mutation() MutationResolver { return &mutationResolver{r} }

// Query returns QueryResolver implementation.
func (r *Resolver) Query() QueryResolver { return &queryResolver{r} }

// Subscription returns SubscriptionResolver implementation.
func (r *Resolver) Subscription() SubscriptionResolver { return &subscriptionResolver{r} }

type base64ArrayResolver struct{ *Resolver }
type channelResolver struct{ *Resolver }
type channelDisplayResolver struct{ *Resolver }
type channelStatusResolver struct{ *Resolver }
type channelTimeResolver struct{ *Resolver }
type channelValueResolver struct{ *Resolver }
type mutationResolver struct{ *Resolver }
type queryResolver struct{ *Resolver }
type subscriptionResolver struct{ *Resolver }
