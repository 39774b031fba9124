package query

// StatusQueryResult reports per-dependency liveness for /status.
type StatusQueryResult struct {
	Redis bool `json:"redis"`
	DB    bool `json:"db"`
}

func (r StatusQueryResult) Healthy() bool {
	return r.Redis && r.DB
}
