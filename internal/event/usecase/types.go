package usecase

// command is one classified text command.
type command struct {
	// raw keeps the user's casing for titles.
	raw string
	// text is the normalized form the router matched.
	text string
}
