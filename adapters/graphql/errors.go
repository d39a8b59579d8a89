package graphql

import (
	"context"
	"errors"
	"fmt"

	"github.com/99designs/gqlgen/graphql"
	"github.com/artpar/coniql/domain/channel"
	"github.com/rs/zerolog"
	"github.com/vektah/gqlparser/v2/gqlerror"
)

// Codes for failures outside the channel error taxonomy.
const (
	CodeBadRequest = "BAD_REQUEST"
	CodeCancelled  = "CANCELLED"
)

// presentError gives every error an extensions.code. Errors that already
// carry one (parse and validation failures) keep it.
func presentError(ctx context.Context, err error) *gqlerror.Error {
	gqlErr := graphql.DefaultErrorPresenter(ctx, err)
	if Code(gqlErr) != "" {
		return gqlErr
	}
	if gqlErr.Extensions == nil {
		gqlErr.Extensions = map[string]interface{}{}
	}
	gqlErr.Extensions["code"] = errorCode(gqlErr)
	return gqlErr
}

func errorCode(gqlErr *gqlerror.Error) string {
	// Errors built by the transports have no cause.
	if gqlErr.Err == nil {
		return CodeBadRequest
	}
	code := channel.ErrorCode(gqlErr)
	if code == channel.CodeInternal {
		switch {
		case errors.Is(gqlErr, context.DeadlineExceeded):
			code = channel.CodeTimeout
		case errors.Is(gqlErr, context.Canceled):
			code = CodeCancelled
		}
	}
	return code
}

// recoverFunc turns a resolver panic into an INTERNAL_ERROR.
func recoverFunc(logger zerolog.Logger) graphql.RecoverFunc {
	return func(ctx context.Context, p any) error {
		logger.Error().
			Str("panic", fmt.Sprint(p)).
			Str("path", graphql.GetPath(ctx).String()).
			Msg("graphql resolver panicked")
		return &gqlerror.Error{
			Message:    "internal server error",
			Extensions: map[string]interface{}{"code": channel.CodeInternal},
		}
	}
}

// Code returns the extensions.code of a GraphQL error, or "".
func Code(err *gqlerror.Error) string {
	if err == nil || err.Extensions == nil {
		return ""
	}
	code, _ := err.Extensions["code"].(string)
	return code
}
