// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Report is a single uploaded scanner report as returned by the backend.
type Report struct {
	ID           string    `json:"id"`
	Filename     string    `json:"filename"`
	ScannerType  string    `json:"scanner_type"`
	Status       string    `json:"status"`
	FindingCount int       `json:"finding_count"`
	UploadedAt   time.Time `json:"uploaded_at"`
}

// Finding is a single security finding extracted from a report.
type Finding struct {
	ID          string         `json:"id"`
	ReportID    string         `json:"report_id"`
	Severity    string         `json:"severity"`
	Title       string         `json:"title"`
	Description string         `json:"description,omitempty"`
	Resource    string         `json:"resource,omitempty"`
	Status      string         `json:"status"`
	Metadata    map[string]any `json:"metadata,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
}

// FindingFilter holds the query parameters accepted by the findings listing
// endpoints. Zero-valued fields are omitted from the request.
type FindingFilter struct {
	ReportID string `json:"report_id,omitempty"`
	Severity string `json:"severity,omitempty"`
	Status   string `json:"status,omitempty"`
	Search   string `json:"search,omitempty"`
	Page     int    `json:"page,omitempty"`
	PageSize int    `json:"page_size,omitempty"`
}

// ReportList is the paginated response of the reports listing endpoint.
type ReportList struct {
	Items []Report `json:"items"`
	Total int      `json:"total"`
	Page  int      `json:"page"`
}

// FindingList is the paginated response of the findings listing endpoints.
type FindingList struct {
	Items []Finding `json:"items"`
	Total int       `json:"total"`
	Page  int       `json:"page"`
}

// ExportRequest selects findings for export and names the output format.
type ExportRequest struct {
	ReportIDs  []string `json:"report_ids,omitempty"`
	FindingIDs []string `json:"finding_ids,omitempty"`
	Severity   string   `json:"severity,omitempty"`
	Format     string   `json:"format"`
}

// HealthStatus is the response of the readiness endpoint.
type HealthStatus struct {
	Status  string `json:"status"`
	Version string `json:"version,omitempty"`
}
