// Package formatter renders human-readable output for dry runs and for the
// classify command.
package formatter

import (
	"fmt"
	"sort"
	"strings"

	"github.com/fatih/color"

	"github.com/adaforge/acase/internal/types"
	"github.com/adaforge/acase/norm"
)

var (
	fileStyle    = color.New(color.FgCyan, color.Bold)
	lineStyle    = color.New(color.FgHiBlue, color.Bold)
	removedStyle = color.New(color.FgRed)
	addedStyle   = color.New(color.FgGreen)
	stageStyle   = color.New(color.FgYellow)
	noStyle      = color.New(color.FgWhite)
)

// GeneratePreview formats one dry-run result: a source -> dest header
// followed by every changed line as an old/new pair. Normalization never
// inserts or removes lines, so old and new align index by index.
func GeneratePreview(result norm.Result) string {
	var sb strings.Builder
	sb.WriteString(fileStyle.Sprintf("%s -> %s", result.Source, result.Dest))
	sb.WriteString("\n")

	if !result.Changed() {
		sb.WriteString(noStyle.Sprint("  unchanged"))
		sb.WriteString("\n")
		return sb.String()
	}

	oldLines := strings.Split(string(result.Original), "\n")
	newLines := strings.Split(string(result.Rewritten), "\n")
	for i, oldLine := range oldLines {
		if i >= len(newLines) || oldLine == newLines[i] {
			continue
		}
		sb.WriteString(fmt.Sprintf("%s %s\n",
			lineStyle.Sprintf("%4d |", i+1),
			removedStyle.Sprintf("- %s", oldLine)))
		sb.WriteString(fmt.Sprintf("%s %s\n",
			lineStyle.Sprint("     |"),
			addedStyle.Sprintf("+ %s", newLines[i])))
	}
	return sb.String()
}

// GenerateMappingTable formats the resolved mapping of a file, one line per
// canonical name, annotated with the stage that decided its spelling.
func GenerateMappingTable(entries []types.Entry) string {
	mapping, stages := types.ResolveStages(entries)

	keys := make([]string, 0, len(mapping))
	for key := range mapping {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var sb strings.Builder
	for _, key := range keys {
		sb.WriteString(fmt.Sprintf("%s -> %s %s\n",
			noStyle.Sprint(key),
			fileStyle.Sprint(mapping[key]),
			stageStyle.Sprintf("(%s)", stages[key])))
	}
	return sb.String()
}
