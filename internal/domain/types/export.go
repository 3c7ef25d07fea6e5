package types

// ExportMode selects where a run gets its animation list from.
type ExportMode string

const (
	// ModeTPose exports the character's own T-pose mesh only.
	ModeTPose ExportMode = "tpose"
	// ModeAll exports every animation listed in the local manifest.
	ModeAll ExportMode = "all"
	// ModeQuery exports every animation matching a remote search.
	ModeQuery ExportMode = "query"
)

// Valid reports whether m is a known mode.
func (m ExportMode) Valid() bool {
	switch m {
	case ModeTPose, ModeAll, ModeQuery:
		return true
	}
	return false
}

// Preferences controls the output of an export job.
type Preferences struct {
	Format   string `json:"format"`
	Mesh     string `json:"mesh,omitempty"`
	Skin     *bool  `json:"skin,omitempty"`
	FPS      string `json:"fps,omitempty"`
	ReduceKF string `json:"reducekf,omitempty"`
}

// ExportPayload is the body of an export request. A nil GMSHash is sent as
// JSON null, which is what T-pose exports expect.
type ExportPayload struct {
	CharacterID CharacterID `json:"character_id"`
	ProductName string      `json:"product_name"`
	Type        string      `json:"type"`
	Preferences Preferences `json:"preferences"`
	GMSHash     []GMSHash   `json:"gms_hash"`
}

// JobStatus is the informal status string reported by the monitor endpoint.
type JobStatus string

const (
	JobStatusCompleted JobStatus = "completed"
	JobStatusFailed    JobStatus = "failed"
	JobStatusError     JobStatus = "error"
)

// Completed reports whether the job finished successfully.
func (s JobStatus) Completed() bool { return s == JobStatusCompleted }

// Failed reports whether the job reached a terminal failure.
func (s JobStatus) Failed() bool { return s == JobStatusFailed || s == JobStatusError }

// MonitorStatus is the last-seen state of the character's export job.
type MonitorStatus struct {
	Status    JobStatus `json:"status"`
	JobResult string    `json:"job_result,omitempty"`
	Message   string    `json:"message,omitempty"`
}

// DownloadedFile describes a model written to disk.
type DownloadedFile struct {
	Path string `json:"path"`
	Size int64  `json:"size"`
}
