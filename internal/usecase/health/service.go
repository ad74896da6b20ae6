package health

import "context"

// Status represents the aggregated health status.
type Status string

const (
	// Healthy indicates all components are operational.
	Healthy Status = "ok"
	// Degraded indicates the service answers but a dependency is failing.
	Degraded Status = "degraded"
	// Unhealthy indicates the service cannot answer queries.
	Unhealthy Status = "error"
)

// CheckResult represents an individual component health check outcome.
type CheckResult string

const (
	// CheckOK indicates a passing health check.
	CheckOK CheckResult = "ok"
	// CheckError indicates a failing health check.
	CheckError CheckResult = "error"
)

// Report aggregates health check results.
type Report struct {
	Status Status
	Checks map[string]CheckResult
}

// Service coordinates health checks.
type Service struct {
	tree TreeReporter
	db   DBPinger
}

// New creates a Service. db is nil when the tree comes from a file.
func New(tree TreeReporter, db DBPinger) *Service {
	return &Service{tree: tree, db: db}
}

// Check runs health checks against all components.
// An empty tree makes the service unhealthy; a failing database only degrades
// it, since the tree is already in memory.
func (s *Service) Check(ctx context.Context) Report {
	checks := make(map[string]CheckResult)
	status := Healthy

	if s.tree.TreeStats().Conditions > 0 {
		checks["tree"] = CheckOK
	} else {
		checks["tree"] = CheckError
		status = Unhealthy
	}

	if s.db != nil {
		if err := s.db.Ping(ctx); err != nil {
			checks["database"] = CheckError
			if status == Healthy {
				status = Degraded
			}
		} else {
			checks["database"] = CheckOK
		}
	}

	return Report{Status: status, Checks: checks}
}
