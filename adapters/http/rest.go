package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/artpar/coniql/app"
	"github.com/artpar/coniql/domain/channel"
	"github.com/artpar/coniql/pkg/jsonapi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

// ResourceType is the JSON:API type of channel resources.
const ResourceType = "channels"

// ChannelService is what the REST handler needs from the channel service.
type ChannelService interface {
	GetChannel(ctx context.Context, id string, timeout time.Duration) (*app.Cell, error)
	PutChannels(ctx context.Context, ids []string, values []string, timeout time.Duration) ([]*app.Cell, error)
}

// ChannelHandler serves the REST channel API.
type ChannelHandler struct {
	channels ChannelService
	logger   zerolog.Logger
}

// NewChannelHandler creates a REST channel handler.
func NewChannelHandler(channels ChannelService, logger zerolog.Logger) *ChannelHandler {
	return &ChannelHandler{
		channels: channels,
		logger:   logger.With().Str("component", "rest").Logger(),
	}
}

// PutRequest is the body of PUT /api/v1/channels. Every id and value is
// a JSON string; ids and values are decoded element by element so an
// error can point at the offending entry.
type PutRequest struct {
	IDs     []json.RawMessage `json:"ids"`
	Values  []json.RawMessage `json:"values"`
	Timeout float64           `json:"timeout,omitempty"` // seconds; 0 uses the service default
}

// Get handles GET /api/v1/channels/{id}. The id is the rest of the path,
// so "ca://PV1" may be sent escaped or as is. ?timeout= is in seconds.
func (h *ChannelHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := url.PathUnescape(chi.URLParam(r, "*"))
	if err != nil || id == "" {
		jsonapi.WriteError(w, jsonapi.NewError(http.StatusBadRequest, channel.CodeInvalidValue, "Bad Request").
			Detail("channel id is missing or badly escaped").
			Parameter("id").
			ID(middleware.GetReqID(r.Context())).
			Build())
		return
	}

	var timeout time.Duration
	if t := r.URL.Query().Get("timeout"); t != "" {
		secs, err := strconv.ParseFloat(t, 64)
		if err != nil || secs < 0 {
			jsonapi.WriteError(w, jsonapi.NewError(http.StatusBadRequest, channel.CodeInvalidValue, "Bad Request").
				Detailf("invalid timeout %q", t).
				Parameter("timeout").
				ID(middleware.GetReqID(r.Context())).
				Build())
			return
		}
		timeout = seconds(secs)
	}

	cell, err := h.channels.GetChannel(r.Context(), id, timeout)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	snap, err := cell.Channel(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	jsonapi.WriteResource(w, http.StatusOK, channelResource(id, snap))
}

// Put handles PUT /api/v1/channels and returns the read-back of every
// written channel. A read-back failure is reported in that resource's
// meta; the write itself has already succeeded.
func (h *ChannelHandler) Put(w http.ResponseWriter, r *http.Request) {
	var req PutRequest
	dec := json.NewDecoder(io.LimitReader(r.Body, maxRequestBody))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		jsonapi.WriteError(w, jsonapi.NewError(http.StatusBadRequest, "bad_request", "Bad Request").
			Detailf("invalid request body: %v", err).
			ID(middleware.GetReqID(r.Context())).
			Build())
		return
	}
	if req.Timeout < 0 {
		jsonapi.WriteError(w, jsonapi.NewError(http.StatusBadRequest, channel.CodeInvalidValue, "Bad Request").
			Detail("timeout must not be negative").
			Pointer("/timeout").
			ID(middleware.GetReqID(r.Context())).
			Build())
		return
	}

	ids, bad := decodeStrings("ids", req.IDs, nil)
	if bad != nil {
		writeElementError(w, r, bad)
		return
	}
	values, bad := decodeStrings("values", req.Values, func(v string) error {
		_, err := channel.DecodeValue(v)
		return err
	})
	if bad != nil {
		writeElementError(w, r, bad)
		return
	}

	cells, err := h.channels.PutChannels(r.Context(), ids, values, seconds(req.Timeout))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	resources := make([]jsonapi.Resource, 0, len(cells))
	for _, cell := range cells {
		snap, err := cell.Channel(r.Context())
		if err != nil {
			h.logger.Debug().Err(err).Str("channel", cell.ID()).Msg("read-back after put failed")
			resources = append(resources, jsonapi.NewResource(ResourceType, cell.ID()).
				Failed(channel.ErrorCode(err), err.Error()).
				Build())
			continue
		}
		resources = append(resources, channelResource(cell.ID(), snap))
	}
	jsonapi.WriteCollection(w, http.StatusOK, resources)
}

// elementError is a bad entry in one of the PUT arrays.
type elementError struct {
	pointer string
	err     error
}

// decodeStrings decodes each raw element of field as a JSON string and runs
// check, if any, on it. The first failure is returned with its JSON pointer.
func decodeStrings(field string, raw []json.RawMessage, check func(string) error) ([]string, *elementError) {
	out := make([]string, len(raw))
	for i, r := range raw {
		pointer := "/" + field + "/" + strconv.Itoa(i)
		if err := json.Unmarshal(r, &out[i]); err != nil {
			return nil, &elementError{pointer: pointer, err: fmt.Errorf("%w: must be a string", channel.ErrInvalidValue)}
		}
		if check == nil {
			continue
		}
		if err := check(out[i]); err != nil {
			return nil, &elementError{pointer: pointer, err: err}
		}
	}
	return out, nil
}

func writeElementError(w http.ResponseWriter, r *http.Request, bad *elementError) {
	jsonapi.WriteError(w, jsonapi.NewError(http.StatusBadRequest, channel.CodeInvalidValue, "Bad Request").
		Detailf("%s: %v", bad.pointer, bad.err).
		Pointer(bad.pointer).
		ID(middleware.GetReqID(r.Context())).
		Build())
}

// MethodNotAllowed reports the methods the channel routes accept.
func (h *ChannelHandler) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	allowed := []string{http.MethodGet}
	if r.URL.Path == "/api/v1/channels" || r.URL.Path == "/api/v1/channels/" {
		allowed = []string{http.MethodPut}
	}
	jsonapi.WriteMethodNotAllowed(w, r.Method, allowed)
}

func (h *ChannelHandler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := channel.ErrorCode(err)
	if errors.Is(err, context.DeadlineExceeded) {
		code = channel.CodeTimeout
	}
	status, title := httpStatus(code)
	if status >= 500 {
		h.logger.Warn().Err(err).Str("code", code).Msg("channel request failed")
	}
	jsonapi.WriteError(w, jsonapi.NewError(status, code, title).
		Detail(err.Error()).
		ID(middleware.GetReqID(r.Context())).
		Build())
}

// httpStatus maps a channel error code to an HTTP status and title.
func httpStatus(code string) (int, string) {
	switch code {
	case channel.CodeUnknownTransport, channel.CodeUnknownChannel:
		return http.StatusNotFound, "Not Found"
	case channel.CodeArityMismatch, channel.CodeMixedTransportBatch, channel.CodeInvalidValue:
		return http.StatusBadRequest, "Bad Request"
	case channel.CodeReadOnlyChannel, channel.CodeWriteRejected:
		return http.StatusForbidden, "Forbidden"
	case channel.CodeTimeout:
		return http.StatusGatewayTimeout, "Gateway Timeout"
	case channel.CodeConnection:
		return http.StatusBadGateway, "Bad Gateway"
	default:
		return http.StatusInternalServerError, "Internal Server Error"
	}
}

func seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}

type restTime struct {
	Seconds     float64 `json:"seconds"`
	Nanoseconds int     `json:"nanoseconds"`
	UserTag     int     `json:"userTag"`
	Datetime    string  `json:"datetime"`
}

type restStatus struct {
	Quality channel.Quality `json:"quality"`
	Message string          `json:"message"`
	Mutable bool            `json:"mutable"`
}

type restRange struct {
	Min *float64 `json:"min"`
	Max *float64 `json:"max"`
}

type restDisplay struct {
	Description  string              `json:"description"`
	Role         channel.Role        `json:"role"`
	Widget       channel.Widget      `json:"widget,omitempty"`
	ControlRange *restRange          `json:"controlRange,omitempty"`
	DisplayRange *restRange          `json:"displayRange,omitempty"`
	AlarmRange   *restRange          `json:"alarmRange,omitempty"`
	WarningRange *restRange          `json:"warningRange,omitempty"`
	Units        string              `json:"units,omitempty"`
	Precision    *int                `json:"precision,omitempty"`
	Form         channel.DisplayForm `json:"form,omitempty"`
	Choices      []string            `json:"choices,omitempty"`
}

// channelResource renders a snapshot as a JSON:API resource. Unknown
// sections are left out.
func channelResource(id string, snap *channel.Snapshot) jsonapi.Resource {
	b := jsonapi.NewResource(ResourceType, id)

	if v := snap.Value; v != nil {
		b.Attr("value", v.String(false))
		if f, ok := v.Float(); ok {
			b.Attr("float", finite(f))
		}
		b.AttrString("units", v.Units)
		if arr, ok := v.StringArray(0); ok {
			b.Attr("stringArray", arr)
		}
	}
	if t := snap.Time; t != nil {
		b.Attr("time", restTime{
			Seconds:     t.Seconds,
			Nanoseconds: t.Nanoseconds,
			UserTag:     t.UserTag,
			Datetime:    t.Datetime().Format(time.RFC3339Nano),
		})
	}
	if s := snap.Status; s != nil {
		b.Attr("status", restStatus{Quality: s.Quality, Message: s.Message, Mutable: s.Mutable})
	}
	if d := snap.Display; d != nil {
		rd := restDisplay{
			Description:  d.Description,
			Role:         d.Role,
			Widget:       d.Widget,
			ControlRange: toRestRange(d.ControlRange),
			DisplayRange: toRestRange(d.DisplayRange),
			AlarmRange:   toRestRange(d.AlarmRange),
			WarningRange: toRestRange(d.WarningRange),
			Units:        d.Units,
			Form:         d.Form,
			Choices:      d.Choices,
		}
		if d.Precision >= 0 {
			p := d.Precision
			rd.Precision = &p
		}
		b.Attr("display", rd)
	}
	return b.Build()
}

func toRestRange(r *channel.Range) *restRange {
	if r == nil {
		return nil
	}
	return &restRange{Min: finitePtr(r.Min), Max: finitePtr(r.Max)}
}

// finite returns nil for values JSON cannot carry.
func finite(f float64) any {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	return f
}

func finitePtr(f float64) *float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	return &f
}
