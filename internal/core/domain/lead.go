package domain

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"
)

// Source is the channel through which a lead was acquired.
type Source string

const (
	SourceFacebook Source = "Facebook"
	SourceLinkedIn Source = "LinkedIn"
	SourceManual   Source = "Manual"
	SourceOther    Source = "Other"
)

// Stage is the pipeline position of a lead.
type Stage string

const (
	StageNewLead     Stage = "New Lead"
	StageColdCalling Stage = "Cold calling"
	StageInProgress  Stage = "In Progress"
	StageNoResponse  Stage = "No Response"
)

// DefaultOwner is assigned on create when the request carries no owner.
const DefaultOwner = "defaultOwner"

// Column limits mirrored from the leads table.
const (
	MaxNameLength  = 255
	MaxOwnerLength = 50
)

// Sources and Stages are the allow-lists, in the order they are reported to clients.
var (
	Sources = []Source{SourceFacebook, SourceLinkedIn, SourceManual, SourceOther}
	Stages  = []Stage{StageNewLead, StageColdCalling, StageInProgress, StageNoResponse}
)

var (
	ErrLeadNotFound  = errors.New("lead not found")
	ErrInvalidSource = errors.New("invalid source")
	ErrInvalidStage  = errors.New("invalid stage")
	ErrInvalidOwner  = errors.New("invalid owner")
	ErrMissingFields = errors.New("missing required fields")
)

// Valid reports whether s is in the source allow-list. Matching is exact.
func (s Source) Valid() bool {
	for _, allowed := range Sources {
		if s == allowed {
			return true
		}
	}
	return false
}

// Valid reports whether s is in the stage allow-list. Matching is exact.
func (s Stage) Valid() bool {
	for _, allowed := range Stages {
		if s == allowed {
			return true
		}
	}
	return false
}

// SourceList renders the source allow-list as "Facebook, LinkedIn, ...".
func SourceList() string {
	names := make([]string, len(Sources))
	for i, s := range Sources {
		names[i] = string(s)
	}
	return strings.Join(names, ", ")
}

// StageList renders the stage allow-list as "New Lead, Cold calling, ...".
func StageList() string {
	names := make([]string, len(Stages))
	for i, s := range Stages {
		names[i] = string(s)
	}
	return strings.Join(names, ", ")
}

// ValidOwner reports whether owner is usable on update: non-blank and within
// the column limit. The limit counts characters, as varchar does.
func ValidOwner(owner string) bool {
	return strings.TrimSpace(owner) != "" && utf8.RuneCountInString(owner) <= MaxOwnerLength
}

// Lead is a contact tracked through the sales pipeline.
type Lead struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Source    Source    `json:"source"`
	Owner     string    `json:"owner"`
	Stage     Stage     `json:"stage"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
