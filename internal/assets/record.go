package assets

// Status is the lifecycle state of one catalog image's upgrade record
type Status string

const (
	StatusOptimized  Status = "OPTIMIZED"
	StatusPending    Status = "PENDING"
	StatusAnalyzing  Status = "ANALYZING"
	StatusGenerating Status = "GENERATING"
	StatusSuccess    Status = "SUCCESS"
	StatusError      Status = "ERROR"
)

// Terminal reports whether a record in this status is done (successfully
// or not) with its current pass through the pipeline
func (s Status) Terminal() bool {
	switch s {
	case StatusOptimized, StatusSuccess, StatusError, StatusPending:
		return true
	}
	return false
}

// CheckKind identifies one of the fixed image-quality rules
type CheckKind string

const (
	CheckReachability    CheckKind = "reachability"
	CheckResolution      CheckKind = "resolution"
	CheckBackgroundColor CheckKind = "background_color"
	CheckEdgeProximity   CheckKind = "edge_proximity"
	CheckFormat          CheckKind = "format"
	CheckAspectRatio     CheckKind = "aspect_ratio"
)

// CheckKinds lists every rule in display order
var CheckKinds = []CheckKind{
	CheckReachability,
	CheckResolution,
	CheckBackgroundColor,
	CheckEdgeProximity,
	CheckFormat,
	CheckAspectRatio,
}

// Label returns the human-readable rule name shown on the dashboard
func (k CheckKind) Label() string {
	switch k {
	case CheckReachability:
		return "Network Availability"
	case CheckResolution:
		return "8K Resolution (1200px+)"
	case CheckBackgroundColor:
		return "Studio White (#FFF)"
	case CheckEdgeProximity:
		return "Edge Proximity"
	case CheckFormat:
		return "Next-Gen Format"
	case CheckAspectRatio:
		return "Square Aspect (1:1)"
	}
	return string(k)
}

// CheckStatus is the evaluation state of a single check
type CheckStatus string

const (
	CheckPending  CheckStatus = "pending"
	CheckChecking CheckStatus = "checking"
	CheckPass     CheckStatus = "pass"
	CheckFail     CheckStatus = "fail"
)

// Check is one validation rule result, owned by its parent Record and
// recomputed wholesale on each analysis pass
type Check struct {
	Kind   CheckKind   `json:"kind"`
	Label  string      `json:"label"`
	Status CheckStatus `json:"status"`
}

// Record tracks the review and upgrade state of one catalog item's image.
// Exactly one record exists per catalog item; records are created at scan
// time and never deleted for the life of the session.
type Record struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Category     string  `json:"category"`
	OriginalURL  string  `json:"original_url"`
	ResolvedURL  string  `json:"resolved_url,omitempty"`
	Status       Status  `json:"status"`
	Checks       []Check `json:"checks"`
	Resolution   string  `json:"resolution"`
	SizeEstimate string  `json:"size_estimate"`
	Format       string  `json:"format"`
}

// AllChecksPass reports whether every check on the record passes
func (r *Record) AllChecksPass() bool {
	for _, c := range r.Checks {
		if c.Status != CheckPass {
			return false
		}
	}
	return true
}

// FailedChecks returns the kinds of all failing checks
func (r *Record) FailedChecks() []CheckKind {
	var failed []CheckKind
	for _, c := range r.Checks {
		if c.Status == CheckFail {
			failed = append(failed, c.Kind)
		}
	}
	return failed
}

// Eligible reports whether the record qualifies for the next batch run
func (r *Record) Eligible() bool {
	return r.Status == StatusPending || r.Status == StatusError
}

// Clone returns a deep copy of the record, safe to hand to readers
// while the original is being mutated by the pipeline
func (r *Record) Clone() *Record {
	out := *r
	out.Checks = make([]Check, len(r.Checks))
	copy(out.Checks, r.Checks)
	return &out
}

func (r *Record) setAllChecks(status CheckStatus) {
	for i := range r.Checks {
		r.Checks[i].Status = status
	}
}
