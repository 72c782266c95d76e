package report

import (
	"errors"
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"
	"gopkg.in/yaml.v3"
)

// Output formats accepted by Render.
const (
	FormatText = "text"
	FormatYAML = "yaml"
	FormatJSON = "json"
)

// ErrUnknownFormat is returned by Render for an unsupported output format.
var ErrUnknownFormat = errors.New("unknown output format")

// document is the serialized shape of a Report.
type document struct {
	Version  string            `yaml:"version"`
	Channel  string            `yaml:"channel"`
	Commit   commitDocument    `yaml:"commit"`
	Releases []releaseDocument `yaml:"releases"`
}

type commitDocument struct {
	Hash string `yaml:"hash"`
	Date string `yaml:"date"`
}

type releaseDocument struct {
	Name     string `yaml:"name"`
	Version  string `yaml:"version"`
	Unstable string `yaml:"unstable_tool"`
	Stable   string `yaml:"stable_tool"`
}

// Render writes the report to w in the given format.
func Render(w io.Writer, r *Report, format string) error {
	switch format {
	case "", FormatText:
		renderText(w, r)
		return nil
	case FormatYAML:
		return renderYAML(w, r)
	case FormatJSON:
		return renderJSON(w, r)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// RenderReleases writes a table of release lines with their tool strings.
func RenderReleases(w io.Writer, releases []Release) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"Channel", "Version", "Unstable tool", "Stable tool"})

	for _, rel := range releases {
		t.AppendRow(table.Row{rel.Name, rel.Version.String(), rel.Version.UnstableToolString(), rel.Version.StableToolString()})
	}

	t.SetStyle(table.StyleRounded)
	t.Render()
}

func renderText(w io.Writer, r *Report) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"Build", "Value"})
	t.AppendRows([]table.Row{
		{"Version", r.Version},
		{"Channel", r.Channel},
		{"Commit", r.CommitHash},
		{"Commit date", r.CommitDate},
	})
	t.SetStyle(table.StyleRounded)
	t.Render()

	RenderReleases(w, r.Releases)
}

func renderYAML(w io.Writer, r *Report) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)

	if err := enc.Encode(toDocument(r)); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("flush yaml: %w", err)
	}

	return nil
}

func renderJSON(w io.Writer, r *Report) error {
	doc := toDocument(r)

	releases := make([]any, 0, len(doc.Releases))
	for _, rel := range doc.Releases {
		releases = append(releases, map[string]any{
			"name":          rel.Name,
			"version":       rel.Version,
			"unstable_tool": rel.Unstable,
			"stable_tool":   rel.Stable,
		})
	}

	s, err := structpb.NewStruct(map[string]any{
		"version": doc.Version,
		"channel": doc.Channel,
		"commit": map[string]any{
			"hash": doc.Commit.Hash,
			"date": doc.Commit.Date,
		},
		"releases": releases,
	})
	if err != nil {
		return fmt.Errorf("build json document: %w", err)
	}

	marshalOptions := protojson.MarshalOptions{
		Multiline: true,
		Indent:    "  ",
	}

	data, err := marshalOptions.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode json: %w", err)
	}

	if _, err = fmt.Fprintln(w, string(data)); err != nil {
		return fmt.Errorf("write json: %w", err)
	}

	return nil
}

func toDocument(r *Report) document {
	releases := make([]releaseDocument, 0, len(r.Releases))
	for _, rel := range r.Releases {
		releases = append(releases, releaseDocument{
			Name:     rel.Name,
			Version:  rel.Version.String(),
			Unstable: rel.Version.UnstableToolString(),
			Stable:   rel.Version.StableToolString(),
		})
	}

	return document{
		Version: r.Version,
		Channel: r.Channel,
		Commit: commitDocument{
			Hash: r.CommitHash,
			Date: r.CommitDate,
		},
		Releases: releases,
	}
}
