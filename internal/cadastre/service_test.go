package cadastre

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Tanvoile/site-geo-mvp/platform/apperr"
	"github.com/Tanvoile/site-geo-mvp/platform/geo"
	"github.com/Tanvoile/site-geo-mvp/platform/logger"
	"github.com/Tanvoile/site-geo-mvp/platform/wfs"

	"github.com/paulmach/orb"
)

type testConfig struct {
	base     string
	typeName string
	version  string
}

func (c testConfig) GetUpstreamTimeout() time.Duration { return 2 * time.Second }
func (c testConfig) GetUpstreamRPS() float64           { return 1000 }
func (c testConfig) GetCadastreWFSBase() string        { return c.base }
func (c testConfig) GetCadastreTypeName() string       { return c.typeName }
func (c testConfig) GetCadastreWFSVersion() string     { return c.version }

const sheetCollection = `{"type":"FeatureCollection","features":[{"type":"Feature","id":"feuille.123","geometry":{"type":"Polygon","coordinates":[[[2.5,48.9],[2.6,48.9],[2.6,49.1],[2.5,49.1],[2.5,48.9]]]},"properties":{"id":"95676000AB01","section":"AB","com_abs":"000","feuille":"01","nom_com":"Vémars","code_dep":"95","echelle":"1000"}}]}`

const emptyCollection = `{"type":"FeatureCollection","features":[]}`

func newTestService(t *testing.T, handler http.HandlerFunc) (*Service, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	log := logger.New("development")
	cfg := testConfig{base: server.URL, typeName: "feuille", version: "2.0.0"}
	return NewService(cfg, wfs.NewClient(cfg, log), log), server
}

func TestSheetAtPointSuccess(t *testing.T) {
	svc, server := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(sheetCollection))
	})

	trace := &geo.Trace{}
	resp, err := svc.SheetAtPoint(context.Background(), orb.Point{2.55, 49.0}, trace)
	if err != nil {
		t.Fatalf("SheetAtPoint: %v", err)
	}

	if resp.Source != Source {
		t.Errorf("source = %q", resp.Source)
	}
	if resp.Sheet.ID != "95676000AB01" {
		t.Errorf("sheet id = %q", resp.Sheet.ID)
	}
	if resp.Sheet.Section != "AB" || resp.Sheet.Prefix != "000" || resp.Sheet.Number != "01" {
		t.Errorf("sheet = %+v", resp.Sheet)
	}
	if resp.Sheet.Commune != "Vémars" || resp.Sheet.Department != "95" {
		t.Errorf("sheet = %+v", resp.Sheet)
	}
	if !strings.HasPrefix(resp.DownloadURL, server.URL) {
		t.Errorf("download url %q not rooted at the upstream", resp.DownloadURL)
	}
	if !strings.Contains(resp.DownloadURL, "shape-zip") {
		t.Errorf("download url %q is not a shapefile link", resp.DownloadURL)
	}
	if got := len(trace.Requests()); got != 1 {
		t.Errorf("trace recorded %d requests, want 1", got)
	}
}

func TestSheetAtPointNotFound(t *testing.T) {
	svc, _ := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(emptyCollection))
	})

	_, err := svc.SheetAtPoint(context.Background(), orb.Point{2.55, 49.0}, nil)
	if apperr.GetKind(err) != apperr.KindNotFound {
		t.Fatalf("err = %v, want not found", err)
	}
}

func TestSheetAtPointUpstreamFailure(t *testing.T) {
	svc, _ := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	_, err := svc.SheetAtPoint(context.Background(), orb.Point{2.55, 49.0}, nil)
	if apperr.GetKind(err) != apperr.KindUnavailable {
		t.Fatalf("err = %v, want unavailable", err)
	}
}

func TestSheetAtPointMissingConfig(t *testing.T) {
	log := logger.New("development")
	cfg := testConfig{base: "", typeName: "feuille", version: "2.0.0"}
	svc := NewService(cfg, wfs.NewClient(cfg, log), log)

	_, err := svc.SheetAtPoint(context.Background(), orb.Point{2.55, 49.0}, nil)
	if apperr.GetKind(err) != apperr.KindInternal {
		t.Fatalf("err = %v, want internal", err)
	}
	if !strings.Contains(err.Error(), "CADASTRE_WFS_BASE") {
		t.Errorf("error %q does not name the missing setting", err)
	}
}
