package formatter

import (
	"fmt"
	"sort"
	"strings"

	"github.com/alexanderramin/intake/internal/catalog"
	"github.com/alexanderramin/intake/internal/domain"
	"github.com/alexanderramin/intake/internal/intelligence"
)

// FormatSession renders a detail view of one session: status, position,
// progress bar, and every captured field.
func FormatSession(s *domain.Session, totalSteps, progress int) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("%s  %s\n", Bold(s.ID), StatusPill(s.Status)))

	if s.Completed() {
		b.WriteString(fmt.Sprintf("Step: %s\n", Dim("finished")))
	} else {
		b.WriteString(fmt.Sprintf("Step: %d of %d\n", s.CurrentStep, totalSteps))
	}
	b.WriteString(fmt.Sprintf("Progress: %s\n", RenderProgress(float64(progress)/100, 20)))

	if s.ContextHint != "" {
		b.WriteString(fmt.Sprintf("Context: %s\n", Dim(s.ContextHint)))
	}
	b.WriteString(fmt.Sprintf("Started: %s\n", HumanTimestamp(s.CreatedAt)))
	if s.CompletedAt != nil {
		b.WriteString(fmt.Sprintf("Completed: %s\n", HumanTimestamp(*s.CompletedAt)))
	}

	b.WriteString("\n")
	b.WriteString(FormatFields(s.Data))

	return RenderBox("Session", strings.TrimRight(b.String(), "\n"))
}

// FormatFields renders captured fields as aligned "name: value" lines in
// stable key order. An empty map renders a dimmed placeholder.
func FormatFields(data domain.FieldMap) string {
	if len(data) == 0 {
		return Dim("No fields captured yet.") + "\n"
	}

	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		b.WriteString(fmt.Sprintf("%s: %v\n",
			StyleBlue.Render(intelligence.HumanizeField(k)), data[k]))
	}
	return b.String()
}

// FormatSessionList renders sessions as a table. progressFor supplies the
// progress estimate per session since the formatter has no catalog access.
func FormatSessionList(sessions []*domain.Session, progressFor func(*domain.Session) int) string {
	if len(sessions) == 0 {
		return "No sessions found.\n"
	}

	headers := []string{"ID", "STATUS", "STEP", "PROGRESS", "FIELDS", "STARTED"}
	rows := make([][]string, 0, len(sessions))
	for _, s := range sessions {
		rows = append(rows, []string{
			TruncID(s.ID),
			StatusPill(s.Status),
			fmt.Sprintf("%d", s.CurrentStep),
			RenderProgress(float64(progressFor(s))/100, 10),
			fmt.Sprintf("%d", len(s.Data)),
			HumanTimestamp(s.CreatedAt),
		})
	}

	return RenderBox("Sessions", RenderTable(headers, rows))
}

// FormatTranscript renders the full exchange history of a session.
func FormatTranscript(turns []*domain.Turn) string {
	if len(turns) == 0 {
		return "No turns recorded.\n"
	}

	var b strings.Builder
	for _, t := range turns {
		if t.Utterance != "" {
			b.WriteString(fmt.Sprintf("%s %s\n", Dim("They:"), t.Utterance))
		}
		b.WriteString(fmt.Sprintf("%s %s %s\n", Dim("Us:  "), t.Prompt, Dim("["+string(t.Kind)+"]")))
	}
	return b.String()
}

// FormatCatalog renders the interview plan: each step with its prompt and
// field lists.
func FormatCatalog(cat *catalog.Catalog) string {
	var b strings.Builder

	b.WriteString(Header(cat.Name))
	b.WriteString("\n\n")

	for _, step := range cat.Steps {
		b.WriteString(fmt.Sprintf("%s %s\n", StyleHeader.Render(fmt.Sprintf("%d.", step.Step)), Bold(step.Title)))
		b.WriteString(fmt.Sprintf("   %s\n", step.Prompt))
		b.WriteString(fmt.Sprintf("   %s %s\n", Dim("required:"), strings.Join(step.RequiredFields, ", ")))
		if opt := step.OptionalFields(); len(opt) > 0 {
			b.WriteString(fmt.Sprintf("   %s %s\n", Dim("optional:"), strings.Join(opt, ", ")))
		}
		if len(step.HighValueOptional) > 0 {
			b.WriteString(fmt.Sprintf("   %s %s\n", Dim("high-value:"), strings.Join(step.HighValueOptional, ", ")))
		}
		b.WriteString("\n")
	}

	b.WriteString(fmt.Sprintf("%s %s\n", Dim("closing:"), cat.ClosingPrompt))
	return b.String()
}
