// Package domain defines lost-and-found reports.
package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/allisson/campus/internal/errors"
)

// StatusReported is the status of every new report.
const StatusReported = "reported"

// LostItem is a report of an item lost or found on campus.
type LostItem struct {
	ID            uuid.UUID
	Item          string
	Location      string
	Description   string
	Status        string
	ReporterEmail string
	CreatedAt     time.Time
}

// ReportInput holds a new report. ReporterEmail is resolved before the use case runs.
type ReportInput struct {
	Item          string
	Location      string
	Description   string
	ReporterEmail string
}

// ErrReporterEmailRequired indicates an anonymous report without a contact address.
var ErrReporterEmailRequired = errors.WithMessage(errors.ErrInvalidInput, "email required")
