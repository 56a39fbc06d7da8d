package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vocalens/vocalens/internal/analysis"
)

// ANSI color codes for terminal output
const (
	ColorReset  = "\033[0m"
	ColorRed    = "\033[31m"
	ColorGreen  = "\033[32m"
	ColorYellow = "\033[33m"
	ColorCyan   = "\033[36m"
	ColorBold   = "\033[1m"
)

// colorize wraps s in the given color unless colors are disabled
func colorize(s, color string, useColors bool) string {
	if !useColors {
		return s
	}
	return color + s + ColorReset
}

// renderStructured marshals any report as JSON or YAML
func renderStructured(v any, format string) (string, error) {
	switch format {
	case "json":
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return "", fmt.Errorf("failed to marshal JSON: %w", err)
		}
		return string(data), nil
	case "yaml":
		data, err := yaml.Marshal(v)
		if err != nil {
			return "", fmt.Errorf("failed to marshal YAML: %w", err)
		}
		return string(data), nil
	default:
		return "", fmt.Errorf("unknown output format: %s", format)
	}
}

func renderClipText(r *analysis.ClipReport, useColors bool) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s\n", colorize("Recording: "+r.Path, ColorBold, useColors))
	fmt.Fprintf(&b, "═══════════════════════════════════════════════════════════════\n\n")

	fs := r.Features
	fmt.Fprintf(&b, "  Duration:     %.2f s (%d Hz)\n", fs.Duration, fs.SampleRate)
	fmt.Fprintf(&b, "  RMS mean:     %.4f\n", fs.RMSMean)
	fmt.Fprintf(&b, "  Pitch mean:   %.2f Hz\n", fs.PitchMean)
	fmt.Fprintf(&b, "  Pitch std:    %.2f Hz\n", fs.PitchStd)
	fmt.Fprintf(&b, "  Clarity mean: %.4f\n", fs.ClarityMean)

	fmt.Fprintf(&b, "\n%s\n", colorize("Feedback", ColorBold, useColors))
	for _, line := range r.Feedback {
		fmt.Fprintf(&b, "  - %s\n", line)
	}

	if r.Extended != nil {
		ext := r.Extended
		fmt.Fprintf(&b, "\n%s\n", colorize("Extended analysis", ColorBold, useColors))
		fmt.Fprintf(&b, "  Centroid mean:  %.1f Hz\n", ext.CentroidMean)
		fmt.Fprintf(&b, "  Bandwidth mean: %.1f Hz\n", ext.BandwidthMean)
		fmt.Fprintf(&b, "  Spectral slope: %.6f dB/Hz\n", ext.Slope)
		fmt.Fprintf(&b, "  Flatness mean:  %.4f\n", ext.FlatnessMean)
		if ext.F1 != nil && ext.F2 != nil {
			fmt.Fprintf(&b, "  Formants:       F1 %.0f Hz, F2 %.0f Hz\n", *ext.F1, *ext.F2)
		} else {
			fmt.Fprintf(&b, "  Formants:       not detected\n")
		}
		for _, line := range r.NaturalFeedback {
			fmt.Fprintf(&b, "  - %s\n", line)
		}
	} else if r.ExtendedSkipped != "" {
		fmt.Fprintf(&b, "\n  %s\n", colorize("Extended analysis skipped: "+r.ExtendedSkipped, ColorYellow, useColors))
	}

	return b.String()
}

func renderComparisonText(r *analysis.ComparisonReport, useColors bool) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s\n", colorize("Take A: "+r.PathA, ColorBold, useColors))
	fmt.Fprintf(&b, "%s\n", colorize("Take B: "+r.PathB, ColorBold, useColors))
	fmt.Fprintf(&b, "═══════════════════════════════════════════════════════════════\n\n")

	for _, m := range r.Metrics {
		fmt.Fprintf(&b, "  %-14s %s\n", m.MetricName+":", m.Formatted)
	}

	fmt.Fprintf(&b, "\n%s\n", colorize("Verdict", ColorBold, useColors))
	for _, line := range r.Feedback {
		fmt.Fprintf(&b, "  - %s\n", line)
	}

	return b.String()
}

func renderSegmentText(r *analysis.SegmentReport, useColors bool) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s\n", colorize("Recording: "+r.Path, ColorBold, useColors))
	fmt.Fprintf(&b, "%s\n", colorize("Transcript: "+r.TranscriptPath, ColorBold, useColors))
	if r.Language != "" {
		fmt.Fprintf(&b, "Language: %s\n", r.Language)
	}
	fmt.Fprintf(&b, "═══════════════════════════════════════════════════════════════\n\n")

	for i, seg := range r.Segments {
		fmt.Fprintf(&b, "  [%d] %.2fs - %.2fs  %q\n", i+1, seg.Start, seg.End, seg.Text)
		fmt.Fprintf(&b, "      words: %d  rate: %.2f w/s  f0: %.1f±%.1f Hz  pauses: %.1f%%  rms: %.4f\n",
			seg.WordCount, seg.SpeechRate, seg.F0Mean, seg.F0Std, seg.PauseRatio, seg.RMSMean)
		tags := strings.Join(seg.Tags, ", ")
		fmt.Fprintf(&b, "      tags: %s\n\n", colorize(tags, ColorCyan, useColors))
	}

	return b.String()
}
