package environment

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Tanvoile/site-geo-mvp/internal/layers"
	"github.com/Tanvoile/site-geo-mvp/platform/apperr"
	"github.com/Tanvoile/site-geo-mvp/platform/logger"
	"github.com/Tanvoile/site-geo-mvp/platform/wfs"

	"github.com/paulmach/orb"
)

type testConfig struct {
	base string
}

func (c testConfig) GetUpstreamTimeout() time.Duration { return 2 * time.Second }
func (c testConfig) GetUpstreamRPS() float64           { return 1000 }
func (c testConfig) GetINPNWFSBase() string            { return c.base }

const znieffCollection = `{"type":"FeatureCollection","features":[{"type":"Feature","id":"znieff1.77","geometry":{"type":"Point","coordinates":[2.55,49]},"properties":{"gid":"77","nom":"Bois de Morrière"}}]}`

const emptyCollection = `{"type":"FeatureCollection","features":[]}`

func testCatalog() []layers.Def {
	return []layers.Def{
		{Key: "znieff1", Pretty: "ZNIEFF de type I", Source: "INPN (Carmen)", TypeName: "znieff1", Service: layers.ServiceINPN},
		{Key: "natura2000_zps", Pretty: "Natura 2000 (ZPS)", Source: "INPN (Carmen)", TypeName: "Zones_de_protection_speciale", Service: layers.ServiceINPN},
	}
}

func inpnHandler(failing map[string]bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		typeName := q.Get("TYPENAME")
		if typeName == "" {
			typeName = q.Get("typeNames")
		}
		if failing[typeName] {
			http.Error(w, "layer offline", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if typeName == "znieff1" {
			_, _ = w.Write([]byte(znieffCollection))
			return
		}
		_, _ = w.Write([]byte(emptyCollection))
	}
}

func newTestService(t *testing.T, handler http.HandlerFunc) *Service {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	log := logger.New("development")
	cfg := testConfig{base: server.URL}
	return NewService(cfg, testCatalog(), wfs.NewClient(cfg, log), log)
}

func TestSummaryListsEveryLayer(t *testing.T) {
	svc := newTestService(t, inpnHandler(nil))

	resp, err := svc.Summary(context.Background(), orb.Point{2.55, 49.0}, 0, nil)
	if err != nil {
		t.Fatalf("Summary: %v", err)
	}

	if resp.Total != 1 {
		t.Errorf("total = %d, want 1", resp.Total)
	}
	if len(resp.Layers) != 2 {
		t.Fatalf("layers = %d, want every catalog layer present", len(resp.Layers))
	}

	znieff := resp.Layers["znieff1"]
	if znieff == nil || znieff.Count != 1 {
		t.Fatalf("znieff1 = %+v", znieff)
	}
	if znieff.Hits[0].Label != "Bois de Morrière" {
		t.Errorf("hit = %+v", znieff.Hits[0])
	}

	zps := resp.Layers["natura2000_zps"]
	if zps == nil || zps.Count != 0 || zps.Error != "" {
		t.Errorf("natura2000_zps = %+v", zps)
	}
}

func TestSummaryAnnotatesFailedLayer(t *testing.T) {
	svc := newTestService(t, inpnHandler(map[string]bool{"Zones_de_protection_speciale": true}))

	resp, err := svc.Summary(context.Background(), orb.Point{2.55, 49.0}, 0, nil)
	if err != nil {
		t.Fatalf("Summary: %v", err)
	}

	zps := resp.Layers["natura2000_zps"]
	if zps == nil || zps.Error == "" {
		t.Fatalf("failed layer not annotated: %+v", zps)
	}
	if resp.Total != 1 {
		t.Errorf("total = %d, want 1 from the healthy layer", resp.Total)
	}
}

func TestSummaryMissingConfig(t *testing.T) {
	log := logger.New("development")
	cfg := testConfig{}
	svc := NewService(cfg, testCatalog(), wfs.NewClient(cfg, log), log)

	_, err := svc.Summary(context.Background(), orb.Point{2.55, 49.0}, 0, nil)
	if apperr.GetKind(err) != apperr.KindInternal {
		t.Fatalf("err = %v, want internal", err)
	}
	if !strings.Contains(err.Error(), "INPN_WFS_BASE") {
		t.Errorf("error %q does not name the missing setting", err)
	}
}
