package server

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/bytedance/sonic"

	"github.com/katalvlaran/netflow/edgelist"
	"github.com/katalvlaran/netflow/flow"
	"github.com/katalvlaran/netflow/network"
)

// maxFlowResponse is the body of a successful POST /v1/maxflow.
type maxFlowResponse struct {
	RequestID     string          `json:"request_id"`
	Nodes         int             `json:"nodes"`
	Edges         int             `json:"edges"`
	Source        int             `json:"source"`
	Sink          int             `json:"sink"`
	MaxFlow       int64           `json:"max_flow"`
	Augmentations int             `json:"augmentations"`
	Trace         []flow.Step     `json:"trace,omitempty"`
	ActiveEdges   []flow.EdgeFlow `json:"active_edges"`
	MinCut        flow.Cut        `json:"min_cut"`
}

// errBadQuery marks malformed query parameters.
var errBadQuery = errors.New("server: bad query parameter")

func (s *Server) maxFlow(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, s.opts.MaxBodyBytes))
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}

	doc, err := edgelist.Parse("request", bytes.NewReader(body))
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if err = doc.CheckNodeLimit(s.opts.MaxNodes); err != nil {
		writeError(w, statusFor(err), err)
		return
	}

	q := r.URL.Query()
	source, err := intParam(q.Get("source"), 0)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	sink, err := intParam(q.Get("sink"), doc.Nodes-1)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	trace := false
	if v := q.Get("trace"); v != "" {
		if trace, err = strconv.ParseBool(v); err != nil {
			writeError(w, http.StatusBadRequest, fmt.Errorf("%w: trace=%q", errBadQuery, v))
			return
		}
	}

	net, err := doc.Build(s.opts.Backend, network.WithDuplicatePolicy(s.opts.Policy))
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}

	reqID := RequestID(r.Context())
	res, err := flow.EdmondsKarp(net, source, sink,
		flow.WithTrace(trace),
		flow.WithLogger(s.log.With().Str("request_id", reqID).Logger()),
	)
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	cut, err := flow.MinCut(net, source)
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}

	writeJSON(w, http.StatusOK, maxFlowResponse{
		RequestID:     reqID,
		Nodes:         net.NodeCount(),
		Edges:         net.EdgeCount(),
		Source:        source,
		Sink:          sink,
		MaxFlow:       res.Total,
		Augmentations: res.Augmentations,
		Trace:         res.Trace,
		ActiveEdges:   flow.ActiveEdges(net),
		MinCut:        cut,
	})
}

func intParam(v string, def int) (int, error) {
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an integer", errBadQuery, v)
	}

	return n, nil
}

// statusFor maps solver and parser errors to HTTP statuses.
func statusFor(err error) int {
	var tooLarge *http.MaxBytesError
	switch {
	case errors.As(err, &tooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, errBadQuery),
		errors.Is(err, edgelist.ErrSyntax),
		errors.Is(err, edgelist.ErrBadNodeCount),
		errors.Is(err, edgelist.ErrTooManyNodes),
		errors.Is(err, edgelist.ErrNodeOutOfRange),
		errors.Is(err, edgelist.ErrNegativeCapacity),
		errors.Is(err, network.ErrBadNodeCount),
		errors.Is(err, network.ErrTooManyNodes),
		errors.Is(err, network.ErrNodeOutOfRange),
		errors.Is(err, network.ErrNegativeCapacity),
		errors.Is(err, network.ErrDuplicateEdge),
		errors.Is(err, network.ErrCapacityOverflow),
		errors.Is(err, flow.ErrSourceIsSink),
		errors.Is(err, flow.ErrNodeOutOfRange),
		errors.Is(err, flow.ErrFlowOverflow):
		return http.StatusBadRequest
	}

	return http.StatusInternalServerError
}

func writeJSON(w http.ResponseWriter, statusCode int, v interface{}) {
	buf, err := sonic.Marshal(v)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	w.Header().Set("Content-Type", "application/json;charset=utf-8")
	w.WriteHeader(statusCode)
	w.Write(buf)
}

func writeError(w http.ResponseWriter, statusCode int, err error) {
	w.Header().Set("Content-Type", "application/json;charset=utf-8")
	w.WriteHeader(statusCode)

	if err = sonic.ConfigFastest.NewEncoder(w).Encode(map[string]string{"message": err.Error()}); err != nil {
		w.Write([]byte(`{"message":"marshaling error failed"}`))
	}
}
