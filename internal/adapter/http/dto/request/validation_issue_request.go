package request

// ResolveIssueRequest closes a validation issue. Either Resolution (resolved
// personally) or AssignedTo (delegated) must be present; the use case
// enforces it so both fields bind optionally here.
type ResolveIssueRequest struct {
	Resolution string `json:"resolution"`
	AssignedTo string `json:"assigned_to"`
}
