package cli

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseFormats(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty uses config", "", nil},
		{"single format", "svg", []string{"svg"}},
		{"multiple formats", "html,svg,png", []string{"html", "svg", "png"}},
		{"spaces and empties", " html , ,json", []string{"html", "json"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, parseFormats(tt.input)); diff != "" {
				t.Errorf("parseFormats(%q) mismatch (-want +got):\n%s", tt.input, diff)
			}
		})
	}
}

func TestOutputPaths(t *testing.T) {
	tests := []struct {
		name    string
		formats []string
		output  string
		want    map[string]string
	}{
		{
			name:    "default base",
			formats: []string{"html"},
			want:    map[string]string{"html": "bookshelf.html"},
		},
		{
			name:    "single format keeps file name",
			formats: []string{"html"},
			output:  "_includes/shelf.html",
			want:    map[string]string{"html": "_includes/shelf.html"},
		},
		{
			name:    "single format without extension",
			formats: []string{"svg"},
			output:  "out/shelf",
			want:    map[string]string{"svg": "out/shelf.svg"},
		},
		{
			name:    "multiple formats share base",
			formats: []string{"html", "json"},
			output:  "out/shelf.html",
			want:    map[string]string{"html": "out/shelf.html", "json": "out/shelf.json"},
		},
		{
			name:    "unknown extension is part of base",
			formats: []string{"svg", "png"},
			output:  "shelf.v2",
			want:    map[string]string{"svg": "shelf.v2.svg", "png": "shelf.v2.png"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, outputPaths(tt.formats, tt.output)); diff != "" {
				t.Errorf("outputPaths mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestArtifactFormats(t *testing.T) {
	artifacts := map[string][]byte{"json": nil, "html": nil, "svg": nil}
	want := []string{"html", "svg", "json"}
	if diff := cmp.Diff(want, artifactFormats(artifacts)); diff != "" {
		t.Errorf("artifactFormats mismatch (-want +got):\n%s", diff)
	}
}
