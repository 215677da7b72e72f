package roster

import (
	"github.com/zoobzio/capitan"
)

// Roster-specific signals for observability.
var (
	// Directory lifecycle events.
	DirectoryCreated   = capitan.NewSignal("roster.directory.created", "Roster directory created")
	MemberRegistered   = capitan.NewSignal("roster.member.registered", "Member registered")
	MemberRemoved      = capitan.NewSignal("roster.member.removed", "Member removed")
	GreetingDispatched = capitan.NewSignal("roster.greeting.dispatched", "Greeting dispatched")
	DispatchFailed     = capitan.NewSignal("roster.greeting.dispatch.failed", "Greeting dispatch failed")
	SequenceBuilt      = capitan.NewSignal("roster.sequence.built", "Greeting sequence built")

	// Value construction.
	RecordCreated      = capitan.NewSignal("roster.record.created", "Record created")
	ContainerExhausted = capitan.NewSignal("roster.container.exhausted", "Container capacity exhausted")

	// Roster validation and build.
	RosterValidationStarted   = capitan.NewSignal("roster.validation.started", "Roster validation started")
	RosterValidationCompleted = capitan.NewSignal("roster.validation.completed", "Roster validation completed")
	RosterValidationFailed    = capitan.NewSignal("roster.validation.failed", "Roster validation failed")
	RosterBuildStarted        = capitan.NewSignal("roster.build.started", "Roster build started")
	RosterBuildCompleted      = capitan.NewSignal("roster.build.completed", "Roster build completed")
	RosterBuildFailed         = capitan.NewSignal("roster.build.failed", "Roster build failed")

	// Roster loading.
	RosterFileLoaded    = capitan.NewSignal("roster.file.loaded", "Roster file loaded")
	RosterFileFailed    = capitan.NewSignal("roster.file.failed", "Roster file failed")
	RosterParseFailed   = capitan.NewSignal("roster.parse.failed", "Roster parse failed")
	RosterYAMLParsed    = capitan.NewSignal("roster.yaml.parsed", "YAML roster parsed")
	RosterJSONParsed    = capitan.NewSignal("roster.json.parsed", "JSON roster parsed")
	RosterMsgpackParsed = capitan.NewSignal("roster.msgpack.parsed", "Msgpack roster parsed")
)

// Typed field keys for roster signals.
var (
	KeyName       = capitan.NewStringKey("name")
	KeyKind       = capitan.NewStringKey("kind")
	KeyVersion    = capitan.NewStringKey("version")
	KeyError      = capitan.NewStringKey("error")
	KeyDuration   = capitan.NewDurationKey("duration")
	KeyErrorCount = capitan.NewIntKey("error_count")
	KeyCount      = capitan.NewIntKey("count")
	KeyCapacity   = capitan.NewIntKey("capacity")
	KeyFound      = capitan.NewBoolKey("found")
)
