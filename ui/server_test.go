package ui

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"datareport/adapters/charts"
	"datareport/adapters/render"
	"datareport/app"
	"datareport/domain/table"
	"datareport/internal/analysis"
	"datareport/internal/assemble"
	"datareport/internal/config"

	"github.com/gin-gonic/gin"
)

const serverCSV = `price,quantity,region
10.5,3,north
12.0,5,south
9.75,2,north
14.2,7,east
11.0,4,south
13.3,6,north
10.0,3,east
12.8,5,south
11.5,4,north
13.0,6,east
`

func newTestServer() *Server {
	cfg := &config.Config{
		Server: config.ServerConfig{Port: "0", GinMode: gin.TestMode},
		Upload: config.UploadConfig{MaxBytes: 8 << 20, PreviewRows: 5},
		Report: config.ReportConfig{Defaults: table.DefaultMetadata()},
	}
	analyzer := analysis.NewEngine()
	generator := charts.NewGenerator()
	service := app.NewReportService(generator, analyzer, assemble.NewAssembler())
	return NewServer(cfg, service, analyzer, generator, render.NewHTMLRenderer())
}

func uploadCSV(t *testing.T, s *Server, name, content string) string {
	t.Helper()
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	part, err := w.CreateFormFile("file", name)
	if err != nil {
		t.Fatalf("CreateFormFile failed: %v", err)
	}
	if _, err := part.Write([]byte(content)); err != nil {
		t.Fatalf("writing form file failed: %v", err)
	}
	w.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/datasets", &body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("upload returned %d: %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding upload response: %v", err)
	}
	return resp.ID
}

func TestUploadAndOverview(t *testing.T) {
	s := newTestServer()
	id := uploadCSV(t, s, "sales.csv", serverCSV)

	req := httptest.NewRequest(http.MethodGet, "/api/datasets/"+id, nil)
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("overview returned %d: %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		Rows        int               `json:"rows"`
		Columns     int               `json:"columns"`
		ColumnTypes map[string]string `json:"column_types"`
		Preview     [][]string        `json:"preview"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding overview: %v", err)
	}
	if resp.Rows != 10 || resp.Columns != 3 {
		t.Errorf("overview shape: got %dx%d, want 10x3", resp.Rows, resp.Columns)
	}
	if resp.ColumnTypes["price"] != "numeric" || resp.ColumnTypes["region"] != "categorical" {
		t.Errorf("unexpected column types: %v", resp.ColumnTypes)
	}
	if len(resp.Preview) != 5 {
		t.Errorf("expected 5 preview rows, got %d", len(resp.Preview))
	}
}

func TestUpload_RejectsUnsupportedFormat(t *testing.T) {
	s := newTestServer()
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	part, _ := w.CreateFormFile("file", "notes.txt")
	part.Write([]byte("plain text"))
	w.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/datasets", &body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for an unsupported format, got %d", rec.Code)
	}
}

func TestStatsEndpoint(t *testing.T) {
	s := newTestServer()
	id := uploadCSV(t, s, "sales.csv", serverCSV)

	req := httptest.NewRequest(http.MethodGet, "/api/datasets/"+id+"/stats?target=price", nil)
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("stats returned %d: %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		Column    string `json:"column"`
		Count     int    `json:"count"`
		Normality *struct {
			PValue float64 `json:"p_value"`
		} `json:"normality"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding stats: %v", err)
	}
	if resp.Column != "price" || resp.Count != 10 {
		t.Errorf("unexpected stats payload: %s", rec.Body.String())
	}
	if resp.Normality == nil {
		t.Error("expected a normality result for 10 observed values")
	}
}

func TestStatsEndpoint_MissingColumn(t *testing.T) {
	s := newTestServer()
	id := uploadCSV(t, s, "sales.csv", serverCSV)

	req := httptest.NewRequest(http.MethodGet, "/api/datasets/"+id+"/stats?target=ghost", nil)
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for a missing column, got %d", rec.Code)
	}
}

func TestChartEndpoint(t *testing.T) {
	s := newTestServer()
	id := uploadCSV(t, s, "sales.csv", serverCSV)

	req := httptest.NewRequest(http.MethodGet, "/api/datasets/"+id+"/charts/distribution?target=price", nil)
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("chart returned %d: %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "image/png" {
		t.Errorf("expected an image/png response, got %q", ct)
	}
	if !bytes.HasPrefix(rec.Body.Bytes(), []byte{0x89, 'P', 'N', 'G'}) {
		t.Error("response body is not a PNG image")
	}
}

func TestImputeEndpoint(t *testing.T) {
	s := newTestServer()
	csv := "v,w\n1,a\n,b\n3,a\n,a\n5,b\n"
	id := uploadCSV(t, s, "gaps.csv", csv)

	body := strings.NewReader(`{"strategy":"mean"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/datasets/"+id+"/impute", body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("impute returned %d: %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		Missing int `json:"missing_values"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding impute response: %v", err)
	}
	if resp.Missing != 0 {
		t.Errorf("expected no missing values after mean imputation, got %d", resp.Missing)
	}
}

// Imputation rewrites column slices in place; concurrent statistics reads
// of the same dataset must never observe a half-written table.
func TestConcurrentImputeAndStats(t *testing.T) {
	s := newTestServer()
	var sb strings.Builder
	sb.WriteString("v,w\n")
	for i := 0; i < 40; i++ {
		if i%4 == 0 {
			sb.WriteString(",x\n")
			continue
		}
		fmt.Fprintf(&sb, "%d,x\n", i)
	}
	id := uploadCSV(t, s, "gaps.csv", sb.String())

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			body := strings.NewReader(`{"strategy":"mean"}`)
			req := httptest.NewRequest(http.MethodPost, "/api/datasets/"+id+"/impute", body)
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()
			s.Router().ServeHTTP(rec, req)
			if rec.Code != http.StatusOK {
				t.Errorf("impute returned %d: %s", rec.Code, rec.Body.String())
			}
		}()
		go func() {
			defer wg.Done()
			req := httptest.NewRequest(http.MethodGet, "/api/datasets/"+id+"/stats?target=v", nil)
			rec := httptest.NewRecorder()
			s.Router().ServeHTTP(rec, req)
			if rec.Code != http.StatusOK {
				t.Errorf("stats returned %d: %s", rec.Code, rec.Body.String())
			}
		}()
	}
	wg.Wait()
}

func TestReportEndpoint(t *testing.T) {
	s := newTestServer()
	id := uploadCSV(t, s, "sales.csv", serverCSV)

	body := strings.NewReader(`{"target":"price","metadata":{"title":"Sales Report"}}`)
	req := httptest.NewRequest(http.MethodPost, "/api/datasets/"+id+"/report", body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("report returned %d: %s", rec.Code, rec.Body.String())
	}
	doc := rec.Body.String()
	if !strings.Contains(doc, "<title>Sales Report</title>") {
		t.Error("document does not carry the requested title")
	}
	if !strings.Contains(doc, "5. Statistical Analysis") {
		t.Error("document is missing the statistical analysis section")
	}
	if !strings.Contains(doc, "data:image/png;base64,") {
		t.Error("document embeds no chart images")
	}
	if cd := rec.Header().Get("Content-Disposition"); !strings.Contains(cd, "analysis_report_") {
		t.Errorf("unexpected Content-Disposition %q", cd)
	}
}

func TestDeleteEndpoint(t *testing.T) {
	s := newTestServer()
	id := uploadCSV(t, s, "sales.csv", serverCSV)

	req := httptest.NewRequest(http.MethodDelete, "/api/datasets/"+id, nil)
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("delete returned %d", rec.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/datasets/"+id, nil)
	rec = httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 after delete, got %d", rec.Code)
	}
}
