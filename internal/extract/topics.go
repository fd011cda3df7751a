package extract

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// MaxTopics caps the number of topics returned by any tier.
const MaxTopics = 5

// Topic length bounds, in runes, after trimming. Anything shorter is a
// fragment; anything longer is prose describing the task, not a topic.
const (
	minTopicLen = 4
	maxTopicLen = 99
)

var (
	// Tier 1: explicit machine-readable markers the prompt asks for.
	topicTagPattern = regexp.MustCompile(`(?m)TOPIC\d+:[ \t]*(.+)$`)

	// Tier 2: plain numbered list lines.
	numberedLinePattern = regexp.MustCompile(`(?m)^(\d+)\.\s*(.+)$`)

	// Tier 3: markdown bold spans.
	boldSpanPattern = regexp.MustCompile(`\*\*([^*]+?)\*\*`)

	leadingNumberPattern = regexp.MustCompile(`^\d+\.`)
	leadingNumberStrip   = regexp.MustCompile(`^\d+\.\s*`)
)

// Substrings marking meta-commentary: lines where the model describes
// the task ("the passage is", "sermon topic") rather than naming a topic.
var topicMetaMarkers = []string{"본문은", "설교 주제"}

// Additional markers only applied to bold spans, which tend to capture
// emphasized prose alongside real list entries.
var boldMetaMarkers = []string{"본문은", "설교 주제", "예시", "사진", "강조된"}

// Topics extracts an ordered list of sermon topic candidates from a
// free-text AI response. At most MaxTopics entries are returned; an
// empty slice means no tier matched and is a valid, expected outcome.
func Topics(response string) []string {
	return runCascade(response, []Matcher{
		matchTopicTags,
		matchNumberedTopics,
		matchBoldTopics,
	})
}

// matchTopicTags handles the TOPIC<n>: format (tier 1).
func matchTopicTags(response string) []string {
	var topics []string
	for _, m := range topicTagPattern.FindAllStringSubmatch(response, -1) {
		topic := strings.TrimSpace(m[1])
		if n := utf8.RuneCountInString(topic); n >= minTopicLen && n <= maxTopicLen {
			topics = append(topics, topic)
			if len(topics) == MaxTopics {
				break
			}
		}
	}
	return topics
}

// matchNumberedTopics handles plain "1. topic" lines (tier 2).
func matchNumberedTopics(response string) []string {
	var topics []string
	for _, m := range numberedLinePattern.FindAllStringSubmatch(response, -1) {
		topic := strings.TrimSpace(m[2])
		n := utf8.RuneCountInString(topic)
		if n < minTopicLen || n > maxTopicLen {
			continue
		}
		if containsAny(topic, topicMetaMarkers) {
			continue
		}
		topics = append(topics, topic)
		if len(topics) == MaxTopics {
			break
		}
	}
	return topics
}

// matchBoldTopics handles "**1. topic**" spans (tier 3). The span must
// start with a list number so emphasized prose is not mistaken for a
// topic; the number and any trailing colon are stripped from the result.
func matchBoldTopics(response string) []string {
	var topics []string
	for _, m := range boldSpanPattern.FindAllStringSubmatch(response, -1) {
		span := strings.TrimSpace(m[1])
		n := utf8.RuneCountInString(span)
		if n <= 5 || n >= 80 {
			continue
		}
		if !leadingNumberPattern.MatchString(span) {
			continue
		}
		if containsAny(span, boldMetaMarkers) {
			continue
		}
		topic := leadingNumberStrip.ReplaceAllString(span, "")
		topic = strings.TrimSpace(strings.TrimSuffix(topic, ":"))
		if topic == "" {
			continue
		}
		topics = append(topics, topic)
		if len(topics) == MaxTopics {
			break
		}
	}
	return topics
}
