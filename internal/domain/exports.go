package domain

import (
	interfaces "mixget/internal/domain/interfaces"
	types "mixget/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	CharacterID         = types.CharacterID
	AnimationID         = types.AnimationID
	Character           = types.Character
	GMSHash             = types.GMSHash
	AnimationDetails    = types.AnimationDetails
	AnimationDescriptor = types.AnimationDescriptor
	CatalogEntry        = types.CatalogEntry
	Catalog             = types.Catalog
	Pagination          = types.Pagination
	SearchPage          = types.SearchPage
	ExportMode          = types.ExportMode
	Preferences         = types.Preferences
	ExportPayload       = types.ExportPayload
	JobStatus           = types.JobStatus
	MonitorStatus       = types.MonitorStatus
	DownloadedFile      = types.DownloadedFile
	JobFailedError      = types.JobFailedError
	PollTimeoutError    = types.PollTimeoutError
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	AnimationAPI     = interfaces.AnimationAPI
	CatalogSource    = interfaces.CatalogSource
	ProgressObserver = interfaces.ProgressObserver
	ModelWriter      = interfaces.ModelWriter
)

const (
	ModeTPose = types.ModeTPose
	ModeAll   = types.ModeAll
	ModeQuery = types.ModeQuery

	JobStatusCompleted = types.JobStatusCompleted
	JobStatusFailed    = types.JobStatusFailed
	JobStatusError     = types.JobStatusError

	ModelExtension = types.ModelExtension
)

var (
	ErrNoCharacter   = types.ErrNoCharacter
	ErrCancelled     = types.ErrCancelled
	ErrRunInProgress = types.ErrRunInProgress
	ErrInvalidMode   = types.ErrInvalidMode
	ErrQueryRequired = types.ErrQueryRequired
)
