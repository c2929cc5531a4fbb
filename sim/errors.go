package sim

import "errors"

// ErrOutOfRange is returned, wrapped, by every method that takes a channel
// index outside [0, model.Count) or an unknown stage.
var ErrOutOfRange = errors.New("sim: index out of range")

// ErrRunning is returned by [Runner.Start] when the runner is already active.
var ErrRunning = errors.New("sim: runner already running")

// ErrNilModel is returned, wrapped, by [New] when [WithModel] is given a
// nil generator.
var ErrNilModel = errors.New("sim: nil model")
