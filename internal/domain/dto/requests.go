// Package dto holds the API request and response bodies.
package dto

import "github.com/tangiwai/cordis-summary/internal/domain"

// CordisRefreshRequest selects the refresh mode. Local skips the remote check,
// Force re-downloads regardless of dataset dates, NewOnly turns an unchanged
// dataset into a 304.
type CordisRefreshRequest struct {
	Local   bool `json:"local"`
	Force   bool `json:"force"`
	NewOnly bool `json:"newOnly"`
}

type CordisRefreshResponse struct {
	NewData bool `json:"newData"`
}

// SummaryRequest names the countries to summarize, either as a configured
// preset or as an explicit list of alpha-2 codes.
type SummaryRequest struct {
	Preset    string   `json:"preset"`
	Countries []string `json:"countries" validate:"omitempty,dive,len=2"`
}

type CallsRefreshRequest struct {
	NewOnly bool `json:"newOnly"`
}

type CallsRefreshResponse struct {
	Total    int              `json:"total"`
	NewCalls []domain.CallRow `json:"newCalls"`
}
