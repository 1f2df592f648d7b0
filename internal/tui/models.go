package tui

type View int

const (
	ViewSearch View = iota
	ViewHelp
)
