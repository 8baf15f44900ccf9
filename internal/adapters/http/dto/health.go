package dto

import "sort"

// Health status values.
const (
	HealthOK       = "ok"
	HealthReady    = "ready"
	HealthNotReady = "not_ready"
)

// LivenessResponse is the body of GET /health/live.
type LivenessResponse struct {
	Status string `json:"status"`
}

// ReadinessResponse is the body of GET /health/ready. Checks lists every
// registered checker by name.
type ReadinessResponse struct {
	Status string        `json:"status"`
	Checks []CheckResult `json:"checks"`
}

// CheckResult is one checker's outcome. Error is set only on failure.
type CheckResult struct {
	Name   string `json:"name"`
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// Ready reports whether every check passed.
func (r ReadinessResponse) Ready() bool {
	return r.Status == HealthReady
}

// ToReadinessResponse summarizes CheckAll results sorted by checker name.
func ToReadinessResponse(results map[string]error) ReadinessResponse {
	resp := ReadinessResponse{Status: HealthReady, Checks: make([]CheckResult, 0, len(results))}
	for name, err := range results {
		c := CheckResult{Name: name, Status: HealthOK}
		if err != nil {
			c.Status = HealthNotReady
			c.Error = err.Error()
			resp.Status = HealthNotReady
		}
		resp.Checks = append(resp.Checks, c)
	}
	sort.Slice(resp.Checks, func(i, j int) bool { return resp.Checks[i].Name < resp.Checks[j].Name })
	return resp
}
