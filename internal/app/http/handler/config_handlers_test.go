package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"configecho/internal/app/http/handler"
	"configecho/internal/domain/settings"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type settingsSvcFake struct {
	s     settings.Settings
	calls int
}

func (f *settingsSvcFake) Current(ctx context.Context) settings.Settings {
	f.calls++
	return f.s
}

func TestConfigGet_LogsPresence(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	svc := &settingsSvcFake{s: settings.Settings{Port: settings.Some("3000")}}
	h := handler.New(svc, zap.New(core))

	r := gin.New()
	r.GET("/", h.ConfigGet)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if want := `{"db":null,"port":"3000"}`; rec.Body.String() != want {
		t.Fatalf("body = %s, want %s", rec.Body.String(), want)
	}
	if svc.calls != 1 {
		t.Fatalf("settings read %d times, want 1", svc.calls)
	}

	entries := logs.FilterMessage("config served").All()
	if len(entries) != 1 {
		t.Fatalf("expected one debug entry, got %d", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["db_set"] != false || fields["port_set"] != true {
		t.Fatalf("unexpected fields %v", fields)
	}
}
