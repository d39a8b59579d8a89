package graphql

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/99designs/gqlgen/graphql"
	"github.com/99designs/gqlgen/graphql/handler"
	"github.com/99designs/gqlgen/graphql/handler/extension"
	"github.com/99designs/gqlgen/graphql/handler/lru"
	"github.com/99designs/gqlgen/graphql/handler/transport"
	"github.com/99designs/gqlgen/graphql/playground"
	"github.com/artpar/coniql/adapters/metrics"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
	"github.com/vektah/gqlparser/v2/ast"
	"golang.org/x/sync/semaphore"
)

// Websocket subprotocols, in order of preference.
const (
	ProtocolTransportWS = "graphql-transport-ws"
	ProtocolGraphQLWS   = "graphql-ws"
)

// ServerConfig tunes the GraphQL server.
type ServerConfig struct {
	MaxConcurrency int           // resolver calls in flight per operation, 0 means unbounded
	InitTimeout    time.Duration // websocket connection_init deadline
	KeepAlive      time.Duration // websocket keep-alive interval
	QueryCacheSize int
}

// SDL returns the schema source.
func SDL() string {
	return sources[0].Input
}

// NewServer builds the GraphQL handler serving POST, GET and websocket
// requests. m may be nil.
func NewServer(channels Channels, m *metrics.Collector, logger zerolog.Logger, cfg ServerConfig) *handler.Server {
	logger = logger.With().Str("component", "graphql").Logger()
	if cfg.QueryCacheSize <= 0 {
		cfg.QueryCacheSize = 1000
	}

	srv := handler.New(NewExecutableSchema(Config{
		Resolvers: &Resolver{Channels: channels, Logger: logger},
	}))

	srv.AddTransport(transport.Websocket{
		Upgrader: websocket.Upgrader{
			CheckOrigin:  func(*http.Request) bool { return true },
			Subprotocols: []string{ProtocolTransportWS, ProtocolGraphQLWS},
		},
		InitTimeout:           cfg.InitTimeout,
		KeepAlivePingInterval: cfg.KeepAlive,
		ErrorFunc: func(ctx context.Context, err error) {
			logger.Debug().Err(err).Msg("websocket connection error")
		},
	})
	srv.AddTransport(transport.Options{})
	srv.AddTransport(transport.GET{})
	srv.AddTransport(transport.POST{})

	srv.SetQueryCache(lru.New[*ast.QueryDocument](cfg.QueryCacheSize))
	srv.Use(extension.AutomaticPersistedQuery{Cache: lru.New[string](100)})
	if m != nil {
		srv.Use(operationMetrics{metrics: m})
	}
	if cfg.MaxConcurrency > 0 {
		srv.Use(resolverLimit{n: int64(cfg.MaxConcurrency)})
	}

	srv.SetErrorPresenter(presentError)
	srv.SetRecoverFunc(recoverFunc(logger))
	return srv
}

// Playground serves the in-browser GraphQL IDE for endpoint.
func Playground(endpoint string) http.Handler {
	return playground.Handler("coniql", endpoint)
}

type executingKey struct{}

// operationMetrics counts operations by type and result. Requests rejected
// before execution (parse, validation, variables) are counted as rejected.
type operationMetrics struct {
	metrics *metrics.Collector
}

var _ interface {
	graphql.HandlerExtension
	graphql.OperationInterceptor
	graphql.ResponseInterceptor
} = operationMetrics{}

func (operationMetrics) ExtensionName() string { return "OperationMetrics" }

func (operationMetrics) Validate(graphql.ExecutableSchema) error { return nil }

func (o operationMetrics) InterceptOperation(ctx context.Context, next graphql.OperationHandler) graphql.ResponseHandler {
	op := operationLabel(ctx)
	responses := next(context.WithValue(ctx, executingKey{}, true))

	// Only the first response of a subscription is counted.
	var once sync.Once
	return func(ctx context.Context) *graphql.Response {
		resp := responses(ctx)
		if resp != nil {
			once.Do(func() {
				result := "ok"
				if len(resp.Errors) > 0 {
					result = "error"
				}
				o.metrics.ObserveGraphQL(op, result)
			})
		}
		return resp
	}
}

func (o operationMetrics) InterceptResponse(ctx context.Context, next graphql.ResponseHandler) *graphql.Response {
	if ctx.Value(executingKey{}) == nil {
		o.metrics.ObserveGraphQL(operationLabel(ctx), "rejected")
	}
	return next(ctx)
}

func operationLabel(ctx context.Context) string {
	if !graphql.HasOperationContext(ctx) {
		return "unknown"
	}
	opCtx := graphql.GetOperationContext(ctx)
	if opCtx == nil || opCtx.Operation == nil {
		return "unknown"
	}
	return string(opCtx.Operation.Operation)
}

type semaphoreKey struct{}

// resolverLimit bounds the resolver calls one operation runs at once.
// Plain field reads are not limited.
type resolverLimit struct {
	n int64
}

var _ interface {
	graphql.HandlerExtension
	graphql.OperationInterceptor
	graphql.FieldInterceptor
} = resolverLimit{}

func (resolverLimit) ExtensionName() string { return "ResolverLimit" }

func (resolverLimit) Validate(graphql.ExecutableSchema) error { return nil }

func (l resolverLimit) InterceptOperation(ctx context.Context, next graphql.OperationHandler) graphql.ResponseHandler {
	return next(context.WithValue(ctx, semaphoreKey{}, semaphore.NewWeighted(l.n)))
}

func (l resolverLimit) InterceptField(ctx context.Context, next graphql.Resolver) (any, error) {
	sem, _ := ctx.Value(semaphoreKey{}).(*semaphore.Weighted)
	fc := graphql.GetFieldContext(ctx)
	if sem == nil || fc == nil || !fc.IsResolver {
		return next(ctx)
	}
	if err := sem.Acquire(ctx, 1); err != nil {
		return nil, err
	}
	defer sem.Release(1)
	return next(ctx)
}
