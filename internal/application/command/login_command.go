package command

// LoginCommand carries the already-decoded Basic credential pair.
type LoginCommand struct {
	Email    string
	Password string
}

type LoginCommandResult struct {
	Token string `json:"token"`
}
