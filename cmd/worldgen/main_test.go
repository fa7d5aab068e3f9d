package main

import (
	"strings"
	"testing"

	"github.com/Garsondee/World-Forge/internal/world"
)

func TestSummaryLine(t *testing.T) {
	s := world.BuildStats{
		OutPath:    "harbor.alw",
		Format:     world.FormatV2,
		Bytes:      64,
		Tiles:      20,
		Placements: 3,
	}
	got := summaryLine(s)
	want := "wrote harbor.alw: v2 layout, 64 bytes, 20 terrain bytes, 3 objects"
	if got != want {
		t.Fatalf("summaryLine = %q, want %q", got, want)
	}
}

func TestSummaryLineRemapped(t *testing.T) {
	s := world.BuildStats{
		OutPath:  "harbor.alw",
		Format:   world.FormatV1,
		Remapped: true,
	}
	got := summaryLine(s)
	if !strings.HasSuffix(got, "(remapped)") {
		t.Fatalf("summaryLine = %q, want remapped suffix", got)
	}
	if !strings.Contains(got, "v1 layout") {
		t.Fatalf("summaryLine = %q, want v1 layout", got)
	}
}
