// Package api implements the HTTP JSON surface of the frequency planning
// service: carrier plans, carrier aggregation spacings, and SSB burst
// positions.
package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/signalsfoundry/nr-freqplan/core"
	"github.com/signalsfoundry/nr-freqplan/internal/logging"
	"github.com/signalsfoundry/nr-freqplan/internal/observability"
)

// Server wires the planner endpoints with logging, metrics, and tracing.
type Server struct {
	log     logging.Logger
	metrics *observability.PlannerCollector
	tracer  trace.Tracer
}

// NewServer builds a Server. A nil logger falls back to a no-op logger; a
// nil collector disables metric recording.
func NewServer(log logging.Logger, metrics *observability.PlannerCollector) *Server {
	if log == nil {
		log = logging.Noop()
	}
	return &Server{
		log:     log,
		metrics: metrics,
		tracer:  otel.Tracer("nrfreq-server"),
	}
}

// Routes returns the handler for all planner endpoints. The /metrics
// endpoint is mounted separately by the caller.
func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/v1/carrier", s.instrument("carrier", http.HandlerFunc(s.handleCarrier)))
	mux.Handle("/v1/spacing", s.instrument("spacing", http.HandlerFunc(s.handleSpacing)))
	mux.Handle("/v1/ssb", s.instrument("ssb", http.HandlerFunc(s.handleSSB)))
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	return mux
}

// instrument attaches the request-id logger and per-endpoint metrics.
func (s *Server) instrument(endpoint string, next http.Handler) http.Handler {
	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, reqLog := logging.WithRequestLogger(r.Context(), s.log)
		reqLog.Debug(ctx, "handling request",
			logging.String("endpoint", endpoint), logging.String("method", r.Method))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
	if s.metrics == nil {
		return h
	}
	return s.metrics.Middleware(endpoint, h)
}

// CarrierRequest is the JSON body of POST /v1/carrier. Omitted fields take
// the engine defaults.
type CarrierRequest struct {
	Band              int  `json:"band"`
	Bw                int  `json:"bw"`
	BwUL              int  `json:"bw_ul"`
	ScsCarrier        int  `json:"scs_carrier"`
	ScsSSB            int  `json:"scs_ssb"`
	ScsCommon         int  `json:"scs_common"`
	FcChannel         int  `json:"fc_channel"`
	FcChannelUL       int  `json:"fc_channel_ul"`
	PdcchConfigSIB1   int  `json:"pdcch_config_sib1"`
	OffsetToCarrier   int  `json:"offset_to_carrier"`
	FFcToPointA       int  `json:"f_fc_to_point_a"`
	DisableSyncRaster bool `json:"disable_sync_raster"`
	DisableSSB        bool `json:"disable_ssb"`
}

func (s *Server) handleCarrier(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req CarrierRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}
	ctx, span := s.tracer.Start(r.Context(), "planner.Carrier",
		trace.WithAttributes(
			attribute.Int("nr.band", req.Band),
			attribute.Int("nr.bw_mhz", req.Bw),
		))
	defer span.End()

	log := logging.LoggerFromContext(ctx)
	carrier, err := core.NewCarrier(core.CarrierOptions{
		Band:              req.Band,
		Bw:                req.Bw,
		BwUL:              req.BwUL,
		ScsCarrier:        req.ScsCarrier,
		ScsSSB:            req.ScsSSB,
		ScsCommon:         req.ScsCommon,
		FcChannel:         req.FcChannel,
		FcChannelUL:       req.FcChannelUL,
		PdcchConfigSIB1:   req.PdcchConfigSIB1,
		OffsetToCarrier:   req.OffsetToCarrier,
		FFcToPointA:       req.FFcToPointA,
		DisableSyncRaster: req.DisableSyncRaster,
		DisableSSB:        req.DisableSSB,
		Logger:            log,
	})
	if err != nil {
		s.metrics.RecordPlan(req.Band, errorOutcome(err))
		writePlanError(w, err)
		return
	}
	plan, err := carrier.Calculate(ctx)
	if err != nil {
		s.metrics.RecordPlan(req.Band, errorOutcome(err))
		writePlanError(w, err)
		return
	}
	s.metrics.RecordPlan(req.Band, "ok")
	if plan.FShiftUp > 0 {
		s.metrics.RecordShift(plan.Band, "up")
	}
	if plan.FShiftDown > 0 {
		s.metrics.RecordShift(plan.Band, "down")
	}
	writeJSON(w, plan)
}

// SpacingRequest is the JSON body of POST /v1/spacing.
type SpacingRequest struct {
	Band int `json:"band"`
	Bw1  int `json:"bw1"`
	Bw2  int `json:"bw2"`
	Scs1 int `json:"scs1"`
	Scs2 int `json:"scs2"`
}

// SpacingResponse returns the nominal spacing and its raster-compatible
// alternatives, largest first.
type SpacingResponse struct {
	NominalSpacingKHz int   `json:"nominal_spacing_khz"`
	SpacingsKHz       []int `json:"spacings_khz"`
}

func (s *Server) handleSpacing(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req SpacingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}
	_, span := s.tracer.Start(r.Context(), "planner.Spacing",
		trace.WithAttributes(attribute.Int("nr.band", req.Band)))
	defer span.End()

	pair := core.CAPair{Band: req.Band, Bw1: req.Bw1, Bw2: req.Bw2, Scs1: req.Scs1, Scs2: req.Scs2}
	spacings, err := core.IntraContiguousSpacings(pair)
	if err != nil {
		writePlanError(w, err)
		return
	}
	writeJSON(w, SpacingResponse{NominalSpacingKHz: spacings[0], SpacingsKHz: spacings})
}

// SSBRequest is the JSON body of POST /v1/ssb.
type SSBRequest struct {
	Band          int    `json:"band"`
	ScsSSB        int    `json:"scs_ssb"`
	ScsCommon     int    `json:"scs_common"`
	InOneGroup    string `json:"in_one_group"`
	GroupPresence string `json:"group_presence"`
	PeriodicityMs int    `json:"periodicity_ms"`
}

// SSBResponse describes the burst in time.
type SSBResponse struct {
	Pattern            string              `json:"pattern"`
	PositionsInBurst   string              `json:"positions_in_burst"`
	Candidates         []core.SsbCandidate `json:"candidates"`
	CandidatesRelative []core.SsbCandidate `json:"candidates_relative"`
	SlotsInFrame0      []int               `json:"slots_in_frame_0"`
}

func (s *Server) handleSSB(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req SSBRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}
	_, span := s.tracer.Start(r.Context(), "planner.SsbPositions",
		trace.WithAttributes(attribute.Int("nr.band", req.Band)))
	defer span.End()

	burst, err := core.NewSsbBurst(req.Band, req.ScsSSB, req.ScsCommon, req.InOneGroup, req.GroupPresence, req.PeriodicityMs)
	if err != nil {
		writePlanError(w, err)
		return
	}
	writeJSON(w, SSBResponse{
		Pattern:            string(burst.Pattern()),
		PositionsInBurst:   burst.PositionsInBurst(),
		Candidates:         burst.Candidates(),
		CandidatesRelative: burst.CandidatesRelative(),
		SlotsInFrame0:      burst.SlotsInFrame(0),
	})
}

// errorOutcome maps an engine error to a metric outcome label.
func errorOutcome(err error) string {
	switch {
	case errors.Is(err, core.ErrOutOfBand):
		return "out_of_band"
	case errors.Is(err, core.ErrBandwidthNotSupported):
		return "bandwidth_not_supported"
	case errors.Is(err, core.ErrInvalidCoreset0Index):
		return "invalid_coreset0_index"
	case errors.Is(err, core.ErrNoSyncRasterSolution):
		return "no_sync_raster_solution"
	case errors.Is(err, core.ErrCoresetAlignment):
		return "coreset_alignment"
	case errors.Is(err, core.ErrNoNominalSpacingEntry):
		return "no_nominal_spacing"
	default:
		return "error"
	}
}

// writePlanError maps engine errors to HTTP status codes: invalid input
// gets 400, valid input with no feasible solution gets 422.
func writePlanError(w http.ResponseWriter, err error) {
	status := http.StatusBadRequest
	switch {
	case errors.Is(err, core.ErrNoSyncRasterSolution),
		errors.Is(err, core.ErrCoresetAlignment),
		errors.Is(err, core.ErrNoNominalSpacingEntry):
		status = http.StatusUnprocessableEntity
	}
	writeJSONStatus(w, status, map[string]string{"error": err.Error()})
}

func writeJSON(w http.ResponseWriter, v any) {
	writeJSONStatus(w, http.StatusOK, v)
}

func writeJSONStatus(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
