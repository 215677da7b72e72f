package roster

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/vmihailenco/msgpack/v5"
	"github.com/zoobzio/zlog"
	"gopkg.in/yaml.v3"
)

// BuildRosterFromFile loads a roster from a file and registers its members.
// Supports JSON, YAML and msgpack formats based on file extension.
func (d *Directory) BuildRosterFromFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		zlog.Emit(RosterFileFailed, "Failed to read roster file",
			zlog.String("path", path),
			zlog.String("error", err.Error()))
		return fmt.Errorf("failed to read file: %w", err)
	}

	zlog.Emit(RosterFileLoaded, "Roster file loaded",
		zlog.String("path", path),
		zlog.Int("size_bytes", len(data)))

	var roster Roster

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		if err := json.Unmarshal(data, &roster); err != nil {
			zlog.Emit(RosterParseFailed, "Failed to parse JSON roster",
				zlog.String("path", path),
				zlog.String("error", err.Error()))
			return fmt.Errorf("failed to parse JSON: %w", err)
		}
		logFields := []zlog.Field{zlog.String("path", path)}
		if roster.Version != "" {
			logFields = append(logFields, zlog.String("version", roster.Version))
		}
		zlog.Emit(RosterJSONParsed, "JSON roster parsed", logFields...)
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &roster); err != nil {
			zlog.Emit(RosterParseFailed, "Failed to parse YAML roster",
				zlog.String("path", path),
				zlog.String("error", err.Error()))
			return fmt.Errorf("failed to parse YAML: %w", err)
		}
		logFields := []zlog.Field{zlog.String("path", path)}
		if roster.Version != "" {
			logFields = append(logFields, zlog.String("version", roster.Version))
		}
		zlog.Emit(RosterYAMLParsed, "YAML roster parsed", logFields...)
	case ".msgpack", ".bin":
		if err := msgpack.Unmarshal(data, &roster); err != nil {
			zlog.Emit(RosterParseFailed, "Failed to parse msgpack roster",
				zlog.String("path", path),
				zlog.String("error", err.Error()))
			return fmt.Errorf("failed to parse msgpack: %w", err)
		}
		logFields := []zlog.Field{zlog.String("path", path)}
		if roster.Version != "" {
			logFields = append(logFields, zlog.String("version", roster.Version))
		}
		zlog.Emit(RosterMsgpackParsed, "Msgpack roster parsed", logFields...)
	default:
		return fmt.Errorf("unsupported roster format: %s", filepath.Ext(path))
	}

	return d.BuildRoster(roster)
}

// BuildRosterFromJSON parses a JSON roster document and registers its members.
func (d *Directory) BuildRosterFromJSON(doc string) error {
	var roster Roster
	if err := json.Unmarshal([]byte(doc), &roster); err != nil {
		zlog.Emit(RosterParseFailed, "Failed to parse JSON string",
			zlog.String("error", err.Error()))
		return fmt.Errorf("failed to parse JSON: %w", err)
	}

	logFields := []zlog.Field{}
	if roster.Version != "" {
		logFields = append(logFields, zlog.String("version", roster.Version))
	}
	zlog.Emit(RosterJSONParsed, "JSON string parsed", logFields...)

	return d.BuildRoster(roster)
}

// BuildRosterFromYAML parses a YAML roster document and registers its members.
func (d *Directory) BuildRosterFromYAML(doc string) error {
	var roster Roster
	if err := yaml.Unmarshal([]byte(doc), &roster); err != nil {
		zlog.Emit(RosterParseFailed, "Failed to parse YAML string",
			zlog.String("error", err.Error()))
		return fmt.Errorf("failed to parse YAML: %w", err)
	}

	logFields := []zlog.Field{}
	if roster.Version != "" {
		logFields = append(logFields, zlog.String("version", roster.Version))
	}
	zlog.Emit(RosterYAMLParsed, "YAML string parsed", logFields...)

	return d.BuildRoster(roster)
}

// BuildRosterFromMsgpack parses a msgpack roster document and registers its
// members.
func (d *Directory) BuildRosterFromMsgpack(doc []byte) error {
	var roster Roster
	if err := msgpack.Unmarshal(doc, &roster); err != nil {
		zlog.Emit(RosterParseFailed, "Failed to parse msgpack document",
			zlog.String("error", err.Error()))
		return fmt.Errorf("failed to parse msgpack: %w", err)
	}

	logFields := []zlog.Field{}
	if roster.Version != "" {
		logFields = append(logFields, zlog.String("version", roster.Version))
	}
	zlog.Emit(RosterMsgpackParsed, "Msgpack document parsed", logFields...)

	return d.BuildRoster(roster)
}
