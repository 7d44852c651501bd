package ui

import (
	"fmt"
	"net/http"
	"time"

	"datareport/adapters/ingest"
	"datareport/domain/report"
	"datareport/domain/table"
	apperrors "datareport/internal/errors"

	"github.com/gin-gonic/gin"
)

// uploadResponse summarizes a freshly ingested dataset.
type uploadResponse struct {
	ID          string            `json:"id"`
	Filename    string            `json:"filename"`
	Rows        int               `json:"rows"`
	Columns     int               `json:"columns"`
	ColumnTypes map[string]string `json:"column_types"`
}

// overviewResponse mirrors the on-screen dataset information panel.
type overviewResponse struct {
	ID            string            `json:"id"`
	Filename      string            `json:"filename"`
	Rows          int               `json:"rows"`
	Columns       int               `json:"columns"`
	MissingValues int               `json:"missing_values"`
	ColumnTypes   map[string]string `json:"column_types"`
	Header        []string          `json:"header"`
	Preview       [][]string        `json:"preview"`
	UploadedAt    time.Time         `json:"uploaded_at"`
}

func (s *Server) handleUpload(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		s.abortWithError(c, apperrors.New(apperrors.CodeInvalidInput, "missing file field"))
		return
	}
	src, err := file.Open()
	if err != nil {
		s.abortWithError(c, err)
		return
	}
	defer src.Close()

	t, err := ingest.NewReader(file.Filename).ReadTable(src)
	if err != nil {
		s.abortWithError(c, err)
		return
	}

	ds := s.store.Put(file.Filename, t)
	s.log.Info("dataset %s uploaded (%s, %d rows, %d columns)",
		ds.ID, ds.Filename, t.RowCount(), len(t.Columns))

	c.JSON(http.StatusCreated, uploadResponse{
		ID:          ds.ID,
		Filename:    ds.Filename,
		Rows:        t.RowCount(),
		Columns:     len(t.Columns),
		ColumnTypes: columnTypes(t),
	})
}

func (s *Server) handleOverview(c *gin.Context) {
	ds, err := s.store.Get(c.Param("id"))
	if err != nil {
		s.abortWithError(c, err)
		return
	}
	ds.mu.RLock()
	defer ds.mu.RUnlock()
	t := ds.Table
	c.JSON(http.StatusOK, overviewResponse{
		ID:            ds.ID,
		Filename:      ds.Filename,
		Rows:          t.RowCount(),
		Columns:       len(t.Columns),
		MissingValues: t.MissingTotal(),
		ColumnTypes:   columnTypes(t),
		Header:        t.ColumnNames(),
		Preview:       ingest.Preview(t, s.cfg.Upload.PreviewRows),
		UploadedAt:    ds.UploadedAt,
	})
}

func (s *Server) handleImpute(c *gin.Context) {
	ds, err := s.store.Get(c.Param("id"))
	if err != nil {
		s.abortWithError(c, err)
		return
	}

	var req struct {
		Strategy string `json:"strategy"`
		Custom   string `json:"custom_value"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		s.abortWithError(c, apperrors.New(apperrors.CodeInvalidInput, "invalid request body"))
		return
	}
	strategy, err := ingest.ParseImputeStrategy(req.Strategy)
	if err != nil {
		s.abortWithError(c, err)
		return
	}
	ds.mu.Lock()
	imputeErr := ingest.Impute(ds.Table, strategy, req.Custom)
	missing := ds.Table.MissingTotal()
	ds.mu.Unlock()
	if imputeErr != nil {
		s.abortWithError(c, imputeErr)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"strategy":       string(strategy),
		"missing_values": missing,
	})
}

func (s *Server) handleStats(c *gin.Context) {
	ds, err := s.store.Get(c.Param("id"))
	if err != nil {
		s.abortWithError(c, err)
		return
	}
	target := c.Query("target")
	ds.mu.RLock()
	stats, err := s.analyzer.Analyze(ds.Table, target)
	ds.mu.RUnlock()
	if err != nil {
		s.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (s *Server) handleChart(c *gin.Context) {
	ds, err := s.store.Get(c.Param("id"))
	if err != nil {
		s.abortWithError(c, err)
		return
	}
	target := c.Query("target")
	ds.mu.RLock()
	defer ds.mu.RUnlock()
	if !ds.Table.HasColumn(target) {
		s.abortWithError(c, apperrors.New(apperrors.CodeColumnNotFound, "target column not found"))
		return
	}

	kind := report.ChartKind(c.Param("kind"))
	for _, art := range s.charts.Render(ds.Table, target) {
		if art.Kind == kind {
			c.Data(http.StatusOK, "image/png", art.PNG)
			return
		}
	}
	s.abortWithError(c, apperrors.New(apperrors.CodeDatasetNotFound,
		fmt.Sprintf("chart %q not available for this dataset", kind)))
}

func (s *Server) handleReport(c *gin.Context) {
	ds, err := s.store.Get(c.Param("id"))
	if err != nil {
		s.abortWithError(c, err)
		return
	}

	var req struct {
		Target   string               `json:"target"`
		Metadata table.ReportMetadata `json:"metadata"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		s.abortWithError(c, apperrors.New(apperrors.CodeInvalidInput, "invalid request body"))
		return
	}
	meta := req.Metadata.Merge(s.cfg.Report.Defaults)

	ds.mu.RLock()
	result, err := s.service.Run(c.Request.Context(), ds.Table, req.Target, meta)
	ds.mu.RUnlock()
	if err != nil {
		s.abortWithError(c, err)
		return
	}
	doc, err := s.renderer.RenderDocument(meta.Title, result.Blocks)
	if err != nil {
		s.abortWithError(c, err)
		return
	}

	filename := fmt.Sprintf("analysis_report_%s.html", time.Now().Format("20060102"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "text/html; charset=utf-8", doc)
}

func (s *Server) handleDelete(c *gin.Context) {
	s.store.Delete(c.Param("id"))
	c.Status(http.StatusNoContent)
}

func (s *Server) abortWithError(c *gin.Context, err error) {
	appErr, ok := err.(*apperrors.AppError)
	if !ok {
		appErr = apperrors.FromDomain(err)
	}
	s.log.Warn("request failed: %s: %v", appErr.Code, err)
	c.AbortWithStatusJSON(apperrors.HTTPStatus(appErr.Code), gin.H{
		"code":  appErr.Code,
		"error": appErr.Message,
	})
}

func columnTypes(t *table.Table) map[string]string {
	types := make(map[string]string, len(t.Columns))
	for _, col := range t.Columns {
		types[col.Name] = string(col.Type)
	}
	return types
}
