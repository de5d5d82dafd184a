package tui

type state int

const (
	pageState state = iota
	errorState
)
