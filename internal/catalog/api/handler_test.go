package api_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	_ "github.com/uptrace/bun/driver/sqliteshim"

	"ticketdesk/internal/catalog"
	"ticketdesk/internal/catalog/api"
	catalogdb "ticketdesk/internal/catalog/db"
	"ticketdesk/internal/database/migrations"
	"ticketdesk/internal/logger"
	"ticketdesk/internal/models"
)

func setupRouter(t *testing.T) (*chi.Mux, *bun.DB) {
	sqldb, err := sql.Open("sqlite", "file::memory:?_pragma=foreign_keys(1)")
	if err != nil {
		t.Fatalf("Failed to open in-memory database: %v", err)
	}
	sqldb.SetMaxOpenConns(1)

	bunDB := bun.NewDB(sqldb, sqlitedialect.New())
	if err := migrations.Run(context.Background(), bunDB); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	handler := &api.Handler{
		Service: catalog.NewService(&catalogdb.DB{Bun: bunDB}),
		Logger:  logger.NewLogger(),
	}

	r := chi.NewRouter()
	r.Get("/event-types", handler.ListEventTypes)
	r.Get("/events", handler.ListEvents)

	return r, bunDB
}

func get(r http.Handler, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestListEventTypesWireFormat(t *testing.T) {
	r, bunDB := setupRouter(t)
	defer bunDB.Close()

	rec := get(r, "/event-types")
	assert.Equal(t, http.StatusOK, rec.Code)

	var types []models.EventType
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &types))
	assert.NotEmpty(t, types)

	// The label travels as event_type.
	var raw []map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &raw))
	assert.Contains(t, raw[0], "id")
	assert.Contains(t, raw[0], "event_type")
}

func TestListEventsMissingParamIs400(t *testing.T) {
	r, bunDB := setupRouter(t)
	defer bunDB.Close()

	rec := get(r, "/events")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp struct {
		Error string `json:"error"`
	}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "eventTypeId is required.", resp.Error)
}

func TestListEventsUnknownTypeIsEmptyArray(t *testing.T) {
	r, bunDB := setupRouter(t)
	defer bunDB.Close()

	rec := get(r, "/events?eventTypeId=9999")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}
