package extract

import (
	"regexp"
	"strings"
)

// Section labels an outline entry must carry: introduction, body,
// conclusion. Entries without one of these are commentary, not headings.
var sectionLabels = []string{"서론", "본론", "결론"}

var (
	// Tier 1: bold "**1. title:" or "**1. title**" headings.
	boldHeadingPattern = regexp.MustCompile(`\*\*(\d+\.\s*[^*:]+)(?:[:*]|\*\*)`)

	// Tier 2: numbered lines with optional bold wrapping.
	numberedHeadingPattern = regexp.MustCompile(`^\*?\*?(\d+\.\s*[^*]+?)(?:\*\*?)?$`)

	// Tier 3: numbered section labels at the start of a cleaned line.
	labeledLinePattern = regexp.MustCompile(`^\d+\.\s*(서론|본론|결론)`)

	headingMarkerStrip = regexp.MustCompile(`^#+\s*`)
)

// Outline extracts an ordered list of outline headings from a free-text
// AI response. Entries keep their numbering and section label. An empty
// slice means no tier matched; callers fall back to manual entry.
func Outline(response string) []string {
	return runCascade(response, []Matcher{
		matchBoldHeadings,
		matchNumberedHeadings,
		matchLabeledLines,
	})
}

// hasSectionLabel reports whether a heading names one of the three
// sermon sections.
func hasSectionLabel(title string) bool {
	return containsAny(title, sectionLabels)
}

// matchBoldHeadings handles markdown bold headings (tier 1).
func matchBoldHeadings(response string) []string {
	var outline []string
	for _, m := range boldHeadingPattern.FindAllStringSubmatch(response, -1) {
		title := strings.TrimSpace(m[1])
		if title != "" && hasSectionLabel(title) {
			outline = append(outline, title)
		}
	}
	return outline
}

// matchNumberedHeadings handles plain numbered lines, with any bold
// markers and a trailing colon stripped (tier 2).
func matchNumberedHeadings(response string) []string {
	var outline []string
	for _, line := range nonEmptyLines(response) {
		m := numberedHeadingPattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		title := strings.ReplaceAll(m[1], "*", "")
		title = strings.TrimSuffix(strings.TrimSpace(title), ":")
		title = strings.TrimSpace(title)
		if title != "" && hasSectionLabel(title) {
			outline = append(outline, title)
		}
	}
	return outline
}

// matchLabeledLines is the loosest tier: any line that, after stripping
// bold and heading markers, starts with a numbered section label.
func matchLabeledLines(response string) []string {
	var outline []string
	for _, line := range nonEmptyLines(response) {
		clean := strings.ReplaceAll(line, "*", "")
		clean = headingMarkerStrip.ReplaceAllString(strings.TrimSpace(clean), "")
		if labeledLinePattern.MatchString(clean) {
			outline = append(outline, clean)
		}
	}
	return outline
}

func nonEmptyLines(response string) []string {
	var lines []string
	for _, line := range strings.Split(response, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}
	return lines
}
