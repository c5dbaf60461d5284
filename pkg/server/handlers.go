package server

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/01wneo/RollingText/pkg/buildinfo"
	"github.com/01wneo/RollingText/pkg/cache"
	"github.com/01wneo/RollingText/pkg/charorder"
	"github.com/01wneo/RollingText/pkg/config"
	"github.com/01wneo/RollingText/pkg/errors"
	"github.com/01wneo/RollingText/pkg/measure"
	"github.com/01wneo/RollingText/pkg/render/nodelink"
	"github.com/01wneo/RollingText/pkg/render/sink"
	"github.com/01wneo/RollingText/pkg/runs"
)

type healthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

type resolveResponse struct {
	From     string           `json:"from"`
	To       string           `json:"to"`
	Strategy string           `json:"strategy"`
	Columns  []columnResponse `json:"columns"`
}

type columnResponse struct {
	Column    int      `json:"column"`
	Chars     []string `json:"chars"`
	Direction string   `json:"direction"`
	Animated  bool     `json:"animated"`
}

type framesRequest struct {
	From      string `json:"from"`
	To        string `json:"to"`
	FPS       int    `json:"fps,omitempty"`
	Duration  string `json:"duration,omitempty"`
	Easing    string `json:"easing,omitempty"`
	Strategy  string `json:"strategy,omitempty"`
	Direction string `json:"direction,omitempty"`
}

func (s *Server) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok", Version: buildinfo.Version})
}

func (s *Server) resolve(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	from, to := q.Get("from"), q.Get("to")
	cfg, err := s.requestConfig(from, to, q.Get("strategy"), q.Get("direction"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	transitions, err := resolveAll(cfg, from, to)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	resp := resolveResponse{From: from, To: to, Strategy: cfg.Strategy, Columns: make([]columnResponse, len(transitions))}
	for i, t := range transitions {
		chars := make([]string, len(t.Chars))
		for j, c := range t.Chars {
			if c != charorder.Empty {
				chars[j] = string(c)
			}
		}
		resp.Columns[i] = columnResponse{Column: i, Chars: chars, Direction: t.Direction.String(), Animated: t.Animated()}
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) frames(w http.ResponseWriter, r *http.Request) {
	req, err := decode[framesRequest](http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	cfg, err := s.requestConfig(req.From, req.To, req.Strategy, req.Direction)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if req.FPS != 0 {
		cfg.FPS = req.FPS
	}
	if req.Duration != "" {
		d, err := time.ParseDuration(req.Duration)
		if err != nil {
			s.writeError(w, r, errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid duration %q", req.Duration))
			return
		}
		cfg.Duration = config.Duration(d)
	}
	if req.Easing != "" {
		cfg.Easing = req.Easing
	}
	if err := cfg.Validate(); err != nil {
		s.writeError(w, r, err)
		return
	}

	player, err := cfg.Player()
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if n := player.FrameCount(); n > MaxFrames {
		s.writeError(w, r, errors.New(errors.ErrCodeInvalidInput, "too many frames (%d, max %d)", n, MaxFrames))
		return
	}

	txt, err := cfg.NewText(measure.Cells{})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if err := txt.SetText(req.From); err != nil {
		s.writeError(w, r, err)
		return
	}
	txt.End()
	if err := txt.SetText(req.To); err != nil {
		s.writeError(w, r, err)
		return
	}

	frames, err := player.Frames(txt)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	runID := uuid.NewString()
	data, err := sink.RenderJSON(frames,
		sink.WithJSONRunID(runID),
		sink.WithJSONTiming(player.FPS, player.Timeline.Duration),
		sink.WithJSONTransition(req.From, req.To),
		sink.WithJSONEasing(cfg.Easing),
	)
	if err != nil {
		s.writeError(w, r, errors.Wrap(errors.ErrCodeInternal, err, "render frames"))
		return
	}

	run := runs.Run{
		ID:         runID,
		From:       req.From,
		To:         req.To,
		Strategy:   cfg.Strategy,
		Easing:     cfg.Easing,
		FPS:        player.FPS,
		DurationMS: player.Timeline.Duration.Milliseconds(),
		Frames:     len(frames),
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.runs.Save(r.Context(), run); err != nil {
		s.logger.Warn("record run", "id", runID, "err", err)
	}

	w.Header().Set("X-Run-Id", runID)
	writeBytes(w, "application/json", data)
}

func (s *Server) run(w http.ResponseWriter, r *http.Request) {
	run, err := s.runs.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, run)
}

func (s *Server) graph(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	from, to := q.Get("from"), q.Get("to")
	format := q.Get("format")
	if format == "" {
		format = nodelink.FormatSVG
	}
	if err := errors.ValidateFormat(format, nodelink.FormatSVG, nodelink.FormatDOT); err != nil {
		s.writeError(w, r, err)
		return
	}
	detailed, _ := strconv.ParseBool(q.Get("detailed"))

	cfg, err := s.requestConfig(from, to, q.Get("strategy"), q.Get("direction"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	key := s.keyer.ArtifactKey(from, to, cfg.ArtifactKeyOpts(format, detailed))
	data, err := cache.GetOrCompute(r.Context(), s.cache, key, artifactTTL, func() ([]byte, error) {
		transitions, err := resolveAll(cfg, from, to)
		if err != nil {
			return nil, err
		}
		data, err := nodelink.Render(r.Context(), from, to, transitions, format, nodelink.Options{Detailed: detailed})
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "render %s", format)
		}
		return data, nil
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	contentType := "image/svg+xml"
	if format == nodelink.FormatDOT {
		contentType = "text/vnd.graphviz; charset=utf-8"
	}
	writeBytes(w, contentType, data)
}

// requestConfig validates the texts of a request and applies its strategy
// overrides to the server configuration.
func (s *Server) requestConfig(from, to, strategy, direction string) (config.Config, error) {
	cfg := s.cfg
	for _, text := range []string{from, to} {
		if err := errors.ValidateText(text); err != nil {
			return cfg, err
		}
	}
	if strategy != "" {
		cfg.Strategy = strategy
	}
	if direction != "" {
		cfg.Direction = direction
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func resolveAll(cfg config.Config, from, to string) ([]charorder.Transition, error) {
	orders, err := cfg.Manager()
	if err != nil {
		return nil, err
	}
	return orders.ResolveAll([]rune(from), []rune(to))
}
