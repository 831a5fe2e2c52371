package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"
)

const checkTimeout = 3 * time.Second

type dbPinger interface {
	Ping(ctx context.Context) error
}

// schemaChecker reports the applied and the newest embedded migration version.
type schemaChecker interface {
	SchemaVersion(ctx context.Context) (current, latest int64, err error)
}

// RegistrySettings are the runtime limits clients of the member API depend on.
type RegistrySettings struct {
	ExportMaxRows       int           `json:"exportMaxRows"`
	ExportDefaultFormat string        `json:"exportDefaultFormat"`
	SessionTTL          time.Duration `json:"-"`
	LoginPerMinute      int           `json:"loginPerMinute"`
}

// HealthHandler serves the liveness, readiness and health endpoints.
// The registry is ready only when the database answers and its schema is
// at the newest migration in the binary.
type HealthHandler struct {
	db       dbPinger
	schema   schemaChecker
	version  string
	settings RegistrySettings
	log      *slog.Logger
}

// NewHealthHandler creates a HealthHandler.
func NewHealthHandler(db dbPinger, schema schemaChecker, version string, settings RegistrySettings, logger *slog.Logger) *HealthHandler {
	return &HealthHandler{
		db:       db,
		schema:   schema,
		version:  version,
		settings: settings,
		log:      logger.With("handler", "health"),
	}
}

type healthResponse struct {
	Status     string                     `json:"status"`
	Version    string                     `json:"version,omitempty"`
	Components map[string]componentStatus `json:"components,omitempty"`
	Settings   *settingsResponse          `json:"settings,omitempty"`
	Timestamp  time.Time                  `json:"timestamp"`
}

type componentStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
	Current *int64 `json:"current,omitempty"`
	Latest  *int64 `json:"latest,omitempty"`
}

type settingsResponse struct {
	RegistrySettings
	SessionTTL string `json:"sessionTtl"`
}

// Live handles GET /live. It never touches the database.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok", Timestamp: time.Now().UTC()})
}

// Ready handles GET /ready: 200 when the database is reachable and fully
// migrated, 503 otherwise.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	components, ok := h.check(r)

	status := http.StatusOK
	resp := healthResponse{Status: "ok", Components: components, Timestamp: time.Now().UTC()}
	if !ok {
		status = http.StatusServiceUnavailable
		resp.Status = "down"
	}
	writeJSON(w, status, resp)
}

// Health handles GET /health: the readiness checks plus build version and
// the registry limits.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	components, ok := h.check(r)

	status := http.StatusOK
	resp := healthResponse{
		Status:     "ok",
		Version:    h.version,
		Components: components,
		Settings: &settingsResponse{
			RegistrySettings: h.settings,
			SessionTTL:       h.settings.SessionTTL.String(),
		},
		Timestamp: time.Now().UTC(),
	}
	if !ok {
		status = http.StatusServiceUnavailable
		resp.Status = "down"
	}
	writeJSON(w, status, resp)
}

func (h *HealthHandler) check(r *http.Request) (map[string]componentStatus, bool) {
	ctx, cancel := context.WithTimeout(r.Context(), checkTimeout)
	defer cancel()

	components := make(map[string]componentStatus, 2)

	start := time.Now()
	if err := h.db.Ping(ctx); err != nil {
		h.log.WarnContext(ctx, "database ping failed", slog.String("error", err.Error()))
		components["database"] = componentStatus{Status: "down"}
		components["schema"] = componentStatus{Status: "unknown"}
		return components, false
	}
	components["database"] = componentStatus{Status: "ok", Latency: time.Since(start).String()}

	if h.schema == nil {
		return components, true
	}

	current, latest, err := h.schema.SchemaVersion(ctx)
	if err != nil {
		h.log.WarnContext(ctx, "schema version check failed", slog.String("error", err.Error()))
		components["schema"] = componentStatus{Status: "unknown", Latest: &latest}
		return components, false
	}

	schema := componentStatus{Status: "ok", Current: &current, Latest: &latest}
	if current < latest {
		schema.Status = "behind"
	}
	components["schema"] = schema
	return components, schema.Status == "ok"
}
