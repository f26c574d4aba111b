package doctor

// Category groups checks in the report.
type Category string

const (
	CategoryGit            Category = "git"
	CategoryPackageManager Category = "package-manager"
	CategoryConfig         Category = "config"
)

// Status is the result of a single check.
type Status string

const (
	StatusOK Status = "ok"
	// StatusMissing marks an optional tool that is not installed.
	StatusMissing Status = "missing"
	StatusWarn    Status = "warn"
	StatusFail    Status = "fail"
)

// Check is one line of the report.
type Check struct {
	Category Category `json:"category"`
	Name     string   `json:"name"`
	Status   Status   `json:"status"`
	Detail   string   `json:"detail,omitempty"` // version, path, or problem
	Hint     string   `json:"hint,omitempty"`   // how to fix a warn or fail
}

// Report is the result of Run.
type Report struct {
	Checks []Check `json:"checks"`
}

// Count returns the number of checks with status s.
func (r Report) Count(s Status) int {
	n := 0
	for _, c := range r.Checks {
		if c.Status == s {
			n++
		}
	}
	return n
}

// Healthy reports whether no check failed.
func (r Report) Healthy() bool {
	return r.Count(StatusFail) == 0
}

func (r *Report) add(c Check) {
	r.Checks = append(r.Checks, c)
}
