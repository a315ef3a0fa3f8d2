package unit

// Snapshot is the deterministic projection of a unit's salient fields recorded
// in audit events. Workflows capture one snapshot immediately before a mutation
// and one immediately after; the pair makes every state change reconstructable.
type Snapshot struct {
	Brand            string  `json:"brand"`
	Model            string  `json:"model"`
	Color            string  `json:"color"`
	EngineNumber     *int64  `json:"engine_number"`
	ChassisNumber    *string `json:"chassis_number"`
	Status           string  `json:"status"`
	LocationID       string  `json:"location_id"`
	AssignedBranchID *string `json:"assigned_branch_id"`
	Notes            string  `json:"notes"`
}
