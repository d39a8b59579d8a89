package http

import (
	"net/http"

	"github.com/artpar/coniql/adapters/graphql"
	"github.com/artpar/coniql/adapters/metrics"
	"github.com/gorilla/websocket"
)

const maxRequestBody = 1 << 20

// CountWebsockets tracks open GraphQL websocket connections by the
// subprotocol the upgrade will negotiate. The wrapped handler must block
// for the lifetime of the connection.
func CountWebsockets(m *metrics.Collector) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if m == nil || !websocket.IsWebSocketUpgrade(r) {
				next.ServeHTTP(w, r)
				return
			}
			gauge := m.WSConnections.WithLabelValues(subprotocol(r))
			gauge.Inc()
			defer gauge.Dec()
			next.ServeHTTP(w, r)
		})
	}
}

// subprotocol mirrors the upgrader's choice: the first offered protocol the
// server supports, falling back to graphql-ws.
func subprotocol(r *http.Request) string {
	for _, p := range websocket.Subprotocols(r) {
		if p == graphql.ProtocolTransportWS || p == graphql.ProtocolGraphQLWS {
			return p
		}
	}
	return graphql.ProtocolGraphQLWS
}
