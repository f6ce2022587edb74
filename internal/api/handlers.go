package api

import (
	"encoding/json"
	"io"
	"log"
	"net"
	"net/http"
	"time"

	"github.com/bananabit-dev/neonmachines/internal/config"
	"github.com/bananabit-dev/neonmachines/internal/detection"
	"github.com/bananabit-dev/neonmachines/internal/extension"
	"github.com/bananabit-dev/neonmachines/internal/manifest"
	"github.com/bananabit-dev/neonmachines/internal/metrics"
	"github.com/bananabit-dev/neonmachines/internal/ratelimit"
	"github.com/google/uuid"
)

// API exposes the extension's tools over HTTP for hosts that prefer the
// gateway to the one-shot stdio invocation.
type API struct {
	config          *config.Config
	detectionEngine *detection.Engine
	limiter         *ratelimit.Limiter
	collector       *metrics.Collector
}

func NewAPI(cfg *config.Config, detectionEngine *detection.Engine) *API {
	return &API{
		config:          cfg,
		detectionEngine: detectionEngine,
		limiter:         ratelimit.NewLimiter(),
		collector:       metrics.NewCollector(),
	}
}

// HandleExecute runs one tool request through the same dispatch as the
// stdio path. Response shapes are identical; gateway refusals (bad key,
// rate limit, secret findings) use the same flat {error} shape with an
// HTTP status attached.
func (api *API) HandleExecute(w http.ResponseWriter, r *http.Request) {
	requestID := uuid.NewString()

	if api.config.APIKey != "" && r.Header.Get("X-API-Key") != api.config.APIKey {
		api.writeError(w, http.StatusUnauthorized, "Invalid API key")
		return
	}

	if api.config.RateLimit > 0 {
		window := time.Duration(api.config.RateWindowSecs) * time.Second
		if !api.limiter.Allow(remoteHost(r), api.config.RateLimit, window) {
			api.collector.RecordBlocked()
			log.Printf("[%s] rate limited %s", requestID, remoteHost(r))
			api.writeError(w, http.StatusTooManyRequests, "Rate limit exceeded")
			return
		}
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "Error reading request body", http.StatusInternalServerError)
		return
	}
	r.Body.Close()

	req, err := extension.ParseRequest(body)
	if err != nil {
		api.writeResponse(w, http.StatusBadRequest, extension.ErrorResponse("%s", err))
		return
	}

	if api.detectionEngine != nil {
		if results := api.detectionEngine.Detect(req); len(results) > 0 {
			api.collector.RecordBlocked()
			msg := "Blocked: request contains sensitive information. Detected: "
			for i, result := range results {
				if i > 0 {
					msg += "; "
				}
				msg += result.Description
			}
			log.Printf("[%s] blocked %s request: %d findings", requestID, req.Tool, len(results))
			api.writeResponse(w, http.StatusForbidden, extension.ErrorResponse("%s", msg))
			return
		}
	}

	start := time.Now()
	resp := extension.Dispatch(req)
	api.collector.Record(req.Tool, resp.IsError(), time.Since(start))

	log.Printf("[%s] %s -> error=%v", requestID, req.Tool, resp.IsError())
	api.writeResponse(w, http.StatusOK, resp)
}

// HandleTools lists this extension's tools from its manifest.
func (api *API) HandleTools(w http.ResponseWriter, r *http.Request) {
	ext := manifest.Default("nmext")
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(ext.Tools); err != nil {
		log.Printf("Error writing tools response: %v", err)
	}
}

func (api *API) HandleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}

func (api *API) HandleMetrics(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(api.collector.Snapshot()); err != nil {
		log.Printf("Error writing metrics response: %v", err)
	}
}

func (api *API) writeResponse(w http.ResponseWriter, status int, resp extension.Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		log.Printf("Error writing response: %v", err)
	}
}

func (api *API) writeError(w http.ResponseWriter, status int, msg string) {
	api.writeResponse(w, status, extension.ErrorResponse("%s", msg))
}

func remoteHost(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
