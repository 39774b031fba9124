package common

type UserResult struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}
