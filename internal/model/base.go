package model

import (
	"time"

	"github.com/google/uuid"
)

// TimestampLayout is the ISO-8601 form used for every createdAt/updatedAt field.
const TimestampLayout = "2006-01-02T15:04:05.000Z"

// DateLayout is the calendar date form used by appointments, vitals and notes.
const DateLayout = "2006-01-02"

// FormatTimestamp renders t in UTC with millisecond precision
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// FormatDate renders the UTC calendar date of t
func FormatDate(t time.Time) string {
	return t.UTC().Format(DateLayout)
}

// Pagination describes one page of a filtered collection.
type Pagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

// PaginatedResponse wraps a page of results
type PaginatedResponse[T any] struct {
	Data       []T        `json:"data"`
	Pagination Pagination `json:"pagination"`
}

// SuccessResponse is returned by mutations that have no resource body.
type SuccessResponse struct {
	Success bool `json:"success"`
}

// NewID returns prefix-<uuidv7>. Version 7 UUIDs sort by creation time.
func NewID(prefix string) string {
	id, err := uuid.NewV7()
	if err != nil {
		return prefix + "-" + uuid.NewString()
	}
	return prefix + "-" + id.String()
}
