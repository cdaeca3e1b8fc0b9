package tui

type state int

const (
	seasonsState state = iota + 1
	episodesState
	alertState
	errorState
)
