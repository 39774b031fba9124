package query

type StatsQueryResult struct {
	Users int64 `json:"users"`
	Files int64 `json:"files"`
}
