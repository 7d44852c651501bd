package table

// ReportMetadata carries the caller-supplied report front matter. It is
// provided once per run and never mutated by the pipeline.
type ReportMetadata struct {
	Title       string `json:"title"`
	PreparedBy  string `json:"prepared_by"`
	PreparedFor string `json:"prepared_for"`
	Version     string `json:"version"`
	Purpose     string `json:"purpose"`
}

// DefaultMetadata returns the stock report front matter used when the
// caller supplies none.
func DefaultMetadata() ReportMetadata {
	return ReportMetadata{
		Title:       "Comprehensive Data Analysis Report",
		PreparedBy:  "Data Analyst",
		PreparedFor: "Organization",
		Version:     "1.0",
		Purpose: "This analysis aims to provide comprehensive insights into the dataset, " +
			"identifying key patterns, trends, and actionable recommendations.",
	}
}

// Merge fills empty fields from the defaults.
func (m ReportMetadata) Merge(defaults ReportMetadata) ReportMetadata {
	if m.Title == "" {
		m.Title = defaults.Title
	}
	if m.PreparedBy == "" {
		m.PreparedBy = defaults.PreparedBy
	}
	if m.PreparedFor == "" {
		m.PreparedFor = defaults.PreparedFor
	}
	if m.Version == "" {
		m.Version = defaults.Version
	}
	if m.Purpose == "" {
		m.Purpose = defaults.Purpose
	}
	return m
}
