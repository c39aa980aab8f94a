package web

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"github.com/GRVigo/speedsolve/internal/solve"
	"github.com/gorilla/websocket"
)

// MethodSolveRequest is the JSON body /api/progress expects: a scramble plus
// the method name and preset dials accepted by solve.ParseMethod and
// solve.Preset.
type MethodSolveRequest struct {
	Scramble string `json:"scramble"`
	Method   string `json:"method"`
	Speed    int    `json:"speed"`
	Orient   int    `json:"orient"`
	Amount   int    `json:"amount"`
	Variant  int    `json:"variant"`
	Option   int    `json:"option"`
	Metric   int    `json:"metric"`
	NoCache  bool   `json:"noCache"`
}

// progressMessage is one JSON frame written to the websocket: either a
// stage update or, on the final frame, the full report text.
type progressMessage struct {
	Stage  string `json:"stage"`
	State  string `json:"state"`
	Done   bool   `json:"done"`
	Err    string `json:"error,omitempty"`
	Report string `json:"report,omitempty"`
}

var progressUpgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// handleProgress upgrades to a websocket, runs one method pipeline solve via
// the shared Facade, and streams a progressMessage per Stage update followed
// by one final frame carrying the rendered report (or error).
func (s *Server) handleProgress(w http.ResponseWriter, r *http.Request) {
	conn, err := progressUpgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("progress: upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	var req MethodSolveRequest
	if err := conn.ReadJSON(&req); err != nil {
		conn.WriteJSON(progressMessage{Stage: "PARSE", Done: true, Err: err.Error()})
		return
	}

	method, ok := solve.ParseMethod(req.Method)
	if !ok {
		conn.WriteJSON(progressMessage{Stage: "PARSE", Done: true, Err: "unknown method: " + req.Method})
		return
	}

	preset := solve.DefaultPreset()
	if req.Speed != 0 {
		preset.Speed = solve.Speed(req.Speed)
	}
	if req.Orient != 0 {
		preset.Orient = solve.Orient(req.Orient)
	}
	if req.Amount != 0 {
		preset.Amount = solve.Amount(req.Amount)
	}
	if req.Variant != 0 {
		preset.Variant = req.Variant
	}
	if req.Option != 0 {
		preset.Option = req.Option
	}
	if req.Metric != 0 {
		preset.Metric = solve.Metric(req.Metric)
	}

	bits := solve.DefaultBitflags()
	if req.NoCache {
		bits.Cache = false
	}

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	progress, wait := s.facade.Solve(ctx, solve.Request{Scramble: req.Scramble, Method: method, Preset: preset, Bitflags: bits})
	for p := range progress {
		msg := progressMessage{Stage: p.Stage, State: p.State.String(), Done: p.Done}
		if p.Err != nil {
			msg.Err = p.Err.Error()
		}
		if err := conn.WriteJSON(msg); err != nil {
			cancel()
			return
		}
	}

	resp, err := wait()
	if err != nil {
		conn.WriteJSON(progressMessage{Stage: "FAILED", Done: true, Err: err.Error()})
		return
	}
	conn.WriteJSON(progressMessage{Stage: "DONE", Done: true, Report: resp.Report.String()})
}
