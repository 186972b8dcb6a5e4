package model

import "errors"

var (
	// ErrNilEntity is returned when a required entity argument is nil.
	ErrNilEntity = errors.New("model: nil entity")

	// ErrEmptyPath is returned when a song has no file path.
	ErrEmptyPath = errors.New("model: empty song path")

	// ErrDuplicateSong is returned when a song path is already in the library.
	ErrDuplicateSong = errors.New("model: song path already in library")

	// ErrDuplicateEntity is returned when a playlist, project or group
	// handle is already registered.
	ErrDuplicateEntity = errors.New("model: entity already in library")

	// ErrUnknownSong is returned when a song is not part of the library.
	ErrUnknownSong = errors.New("model: song not in library")

	// ErrUnknownProject is returned when a project is not part of the library.
	ErrUnknownProject = errors.New("model: project not in library")

	// ErrNotMember is returned when starring a revision outside its group.
	ErrNotMember = errors.New("model: song is not a version in this group")

	// ErrCycle is returned when a project parent change would create a cycle.
	ErrCycle = errors.New("model: project hierarchy cycle")
)
