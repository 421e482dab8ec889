package service

import "errors"

var (
	// ErrEmptyPrompt is returned when a simulation is requested for a
	// canvas that assembles to nothing.
	ErrEmptyPrompt = errors.New("assembled prompt is empty")
	// ErrSimulationRunning is returned while another simulation is in flight.
	ErrSimulationRunning = errors.New("a simulation is already running")
	ErrUnknownBlockType  = errors.New("unknown block type")

	errClipboardUnsupported = errors.New("no clipboard utility available")
)
