// Package database is the gateway to the hosted Supabase backend. All durable
// state lives on the other side of it: this service holds nothing but two
// API-key-scoped REST clients and forwards inserts and selects to the
// backend's data_items table.
//
// Two clients are held deliberately:
//   - the service client authenticates with the service-role key, bypasses
//     row-level policy, and is the only client allowed to write;
//   - the anonymous client authenticates with the anon key, is subject to
//     whatever row-level policy the backend enforces, and is preferred for
//     reads so read traffic exercises the same policy end users see.
//
// Both handles are built once at startup and never reassigned afterwards;
// the supabase client is safe for concurrent use by in-flight requests.
package database

import (
	"errors"

	"github.com/supabase-community/postgrest-go"
	"github.com/supabase-community/supabase-go"

	"github.com/axialhq/axial-data-api/internal/config"
	"github.com/axialhq/axial-data-api/internal/logging"
	"github.com/axialhq/axial-data-api/internal/models"
)

// contentTable is the single logical table this service touches.
const contentTable = "data_items"

// Gateway holds the two backend clients. Either or both may be nil when
// credentials were missing or the startup probe failed; every operation
// checks and returns a typed error rather than panicking.
type Gateway struct {
	service *supabase.Client
	anon    *supabase.Client
	table   string
	log     *logging.Logger
}

// New constructs the gateway from configuration. Construction never fails:
// missing credentials or an unreachable backend leave the affected clients
// nil and are logged loudly, so the process can still serve its health
// endpoint and report the degraded state.
func New(cfg *config.Config, log *logging.Logger) *Gateway {
	// Every gateway log line carries the component tag so backend trouble
	// is easy to grep out of mixed server output.
	g := &Gateway{table: contentTable, log: log.WithField("component", "database")}

	if !cfg.HasServiceCredentials() {
		g.log.Errorw("missing Supabase credentials; ingestion will be refused",
			"url_set", cfg.SupabaseURL != "",
			"service_key_set", cfg.SupabaseServiceKey != "")
		return g
	}

	service, err := supabase.NewClient(cfg.SupabaseURL, cfg.SupabaseServiceKey, &supabase.ClientOptions{})
	if err != nil {
		g.log.WithError(err).Errorw("failed to initialise Supabase service client")
		return g
	}

	// One-row probe read to confirm the backend is actually reachable with
	// this key. A probe failure is logged, not raised: the process keeps
	// running with both clients unset and reports unhealthy on "/".
	if _, _, err := service.From(g.table).Select("id", "", false).Limit(1, "").Execute(); err != nil {
		g.log.Errorw("Supabase connection probe failed", "table", g.table, "error", err)
		return g
	}
	g.service = service
	g.log.Infow("Supabase service client connected", "table", g.table)

	if cfg.SupabaseAnonKey != "" {
		anon, err := supabase.NewClient(cfg.SupabaseURL, cfg.SupabaseAnonKey, &supabase.ClientOptions{})
		if err != nil {
			g.log.Warnw("failed to initialise Supabase anon client; reads fall back to the service client", "error", err)
		} else {
			g.anon = anon
			g.log.Infow("Supabase anon client connected")
		}
	} else {
		g.log.Warnw("missing anon key; only the service client is active")
	}

	return g
}

// ServiceReady reports whether the elevated-privilege client was established
// at startup. Fixed for the process lifetime.
func (g *Gateway) ServiceReady() bool {
	return g.service != nil
}

// ReadReady reports whether any client is available to serve reads.
func (g *Gateway) ReadReady() bool {
	return g.anon != nil || g.service != nil
}

// Insert persists a new Content Item through the service client and returns
// the row as the backend stored it, including the backend-assigned id and
// created_at. A write that the backend accepts but returns no row for is
// treated as a failure: the caller is always given the persisted record or
// an error, never a silent drop.
func (g *Gateway) Insert(item models.NewContentItem) (models.ContentItem, error) {
	if g.service == nil {
		return models.ContentItem{}, ErrServiceUnavailable
	}

	var rows []models.ContentItem
	// "representation" asks the backend to echo the inserted rows back,
	// which is how we learn the assigned id and timestamp.
	_, err := g.service.From(g.table).
		Insert(item, false, "", "representation", "").
		ExecuteTo(&rows)
	if err != nil {
		return models.ContentItem{}, &BackendError{Op: "insert", Err: err}
	}
	if len(rows) == 0 {
		return models.ContentItem{}, &BackendError{Op: "insert", Err: errors.New("no data returned")}
	}

	g.log.Infow("inserted record", "id", rows[0].ID, "source", rows[0].Source)
	return rows[0], nil
}

// SelectRecent returns up to limit rows ordered by creation time descending.
// The anonymous client is preferred so reads run under the backend's access
// policy; the service client is the fallback when no anon key was configured.
// An empty table yields an empty slice, not an error.
func (g *Gateway) SelectRecent(limit int) ([]models.ContentItem, error) {
	client := g.anon
	if client == nil {
		client = g.service
	}
	if client == nil {
		return nil, ErrNoReadClient
	}

	var rows []models.ContentItem
	_, err := client.From(g.table).
		Select("*", "", false).
		Order("created_at", &postgrest.OrderOpts{Ascending: false}).
		Limit(limit, "").
		ExecuteTo(&rows)
	if err != nil {
		return nil, &BackendError{Op: "select", Err: err}
	}
	if rows == nil {
		rows = []models.ContentItem{}
	}
	return rows, nil
}
