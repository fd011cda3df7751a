package ai

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/biblestudio/bible-studio-api/internal/database"
	"github.com/biblestudio/bible-studio-api/internal/extract"
	"github.com/biblestudio/bible-studio-api/internal/logger"
)

// Prompt template ids. Content lives in the store and is editable from
// the developer screen; only the ids are fixed.
const (
	SystemPromptID      = "system-prompt"
	TopicPromptID       = "topic-generation"
	OutlinePromptID     = "outline-generation"
	SermonPartPromptID  = "sermon-part-generation"
	ImagePromptPromptID = "image-prompt-generation"
)

// Per-action output budgets.
const (
	topicMaxTokens       = 300
	outlineMaxTokens     = 300
	sermonPartMaxTokens  = 1500
	imagePromptMaxTokens = 200
)

// PromptStore is the slice of the repository the service needs.
type PromptStore interface {
	GetPrompt(id string) (*database.Prompt, error)
}

// Service sequences AI calls for the sermon workflow. It is explicitly
// constructed and injected rather than a package-level singleton, and
// the provider can be swapped at runtime when the user saves settings.
type Service struct {
	mu       sync.RWMutex
	provider Provider
	prompts  PromptStore
}

// NewService creates a new AI service.
func NewService(provider Provider, prompts PromptStore) *Service {
	return &Service{provider: provider, prompts: prompts}
}

// UpdateProvider swaps the active backend. In-flight calls finish on
// the provider they started with.
func (s *Service) UpdateProvider(provider Provider) {
	s.mu.Lock()
	s.provider = provider
	s.mu.Unlock()
}

// ProviderName reports the active backend.
func (s *Service) ProviderName() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.provider.Name()
}

// Generate issues one raw generation call with the stored system prompt.
func (s *Service) Generate(ctx context.Context, req Request) (*Response, error) {
	s.mu.RLock()
	provider := s.provider
	s.mu.RUnlock()

	systemPrompt := s.storedPrompt(SystemPromptID)
	return provider.Generate(ctx, systemPrompt, req)
}

// TopicsResult carries extracted topics plus the raw response so the
// caller can offer manual entry when extraction yields nothing.
type TopicsResult struct {
	Topics []string `json:"topics"`
	Raw    string   `json:"raw_response"`
	Usage  *Usage   `json:"usage,omitempty"`
}

// GenerateTopics asks for sermon topic suggestions for a passage and
// extracts them from the reply. An empty Topics slice is a valid
// outcome, not an error.
func (s *Service) GenerateTopics(ctx context.Context, verse string) (*TopicsResult, error) {
	prompt := strings.ReplaceAll(s.storedPrompt(TopicPromptID), "{verse}", verse)

	resp, err := s.Generate(ctx, Request{Prompt: prompt, MaxTokens: topicMaxTokens})
	if err != nil {
		return nil, err
	}

	return &TopicsResult{
		Topics: extract.Topics(resp.Content),
		Raw:    resp.Content,
		Usage:  resp.Usage,
	}, nil
}

// OutlineResult carries extracted outline headings plus the raw reply.
type OutlineResult struct {
	Outline []string `json:"outline"`
	Raw     string   `json:"raw_response"`
	Usage   *Usage   `json:"usage,omitempty"`
}

// GenerateOutline asks for a sermon outline for a passage and topic.
func (s *Service) GenerateOutline(ctx context.Context, verse, topic string) (*OutlineResult, error) {
	prompt := s.storedPrompt(OutlinePromptID)
	prompt = strings.ReplaceAll(prompt, "{verse}", verse)
	prompt = strings.ReplaceAll(prompt, "{topic}", topic)

	resp, err := s.Generate(ctx, Request{Prompt: prompt, MaxTokens: outlineMaxTokens})
	if err != nil {
		return nil, err
	}

	return &OutlineResult{
		Outline: extract.Outline(resp.Content),
		Raw:     resp.Content,
		Usage:   resp.Usage,
	}, nil
}

// GenerateSermonPart drafts the content of one outline section.
func (s *Service) GenerateSermonPart(ctx context.Context, verse, topic, part, contextText string) (string, error) {
	prompt := s.storedPrompt(SermonPartPromptID)
	prompt = strings.ReplaceAll(prompt, "{verse}", verse)
	prompt = strings.ReplaceAll(prompt, "{topic}", topic)
	prompt = strings.ReplaceAll(prompt, "{part}", part)

	resp, err := s.Generate(ctx, Request{
		Prompt:    prompt,
		Context:   contextText,
		MaxTokens: sermonPartMaxTokens,
	})
	if err != nil {
		return "", err
	}
	return resp.Content, nil
}

// DraftSection is one generated sermon section.
type DraftSection struct {
	Heading string `json:"heading"`
	Content string `json:"content"`
}

// GenerateDraft drafts every outline section strictly one after another,
// in outline order. Sequential calls bound load on the backend and keep
// output ordering deterministic. The first failure aborts the run and
// returns the sections completed so far.
func (s *Service) GenerateDraft(ctx context.Context, verse, topic string, outline []string) ([]DraftSection, error) {
	sections := make([]DraftSection, 0, len(outline))
	for _, heading := range outline {
		content, err := s.GenerateSermonPart(ctx, verse, topic, heading, "")
		if err != nil {
			return sections, fmt.Errorf("section %q: %w", heading, err)
		}
		sections = append(sections, DraftSection{Heading: heading, Content: content})
	}
	return sections, nil
}

// GenerateImagePrompt produces a text-to-image prompt for one section.
func (s *Service) GenerateImagePrompt(ctx context.Context, verse, topic, part string) (string, error) {
	prompt := s.storedPrompt(ImagePromptPromptID)
	prompt = strings.ReplaceAll(prompt, "{verse}", verse)
	prompt = strings.ReplaceAll(prompt, "{topic}", topic)
	prompt = strings.ReplaceAll(prompt, "{part}", part)

	resp, err := s.Generate(ctx, Request{Prompt: prompt, MaxTokens: imagePromptMaxTokens})
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(resp.Content), nil
}

// TestConnection issues a tiny generation call to verify the active
// provider is usable.
func (s *Service) TestConnection(ctx context.Context) bool {
	resp, err := s.Generate(ctx, Request{
		Prompt:      "안녕하세요. 연결 테스트입니다. 간단히 \"연결 성공\"이라고 답해주세요.",
		MaxTokens:   50,
		Temperature: 0.1,
	})
	if err != nil {
		logger.Warn("AI connection test failed", zap.Error(err))
		return false
	}
	return resp.Content != ""
}

// storedPrompt fetches a template from the store. An absent row is a
// handled state: the returned text tells the operator to configure the
// prompt on the developer screen, matching the behavior when templates
// have not been seeded yet.
func (s *Service) storedPrompt(id string) string {
	prompt, err := s.prompts.GetPrompt(id)
	if err == nil {
		return prompt.Content
	}
	if err != gorm.ErrRecordNotFound {
		logger.Warn("failed to load stored prompt", zap.String("id", id), zap.Error(err))
	} else {
		logger.Warn("prompt not found in store", zap.String("id", id))
	}
	return fmt.Sprintf("프롬프트 '%s'를 찾을 수 없습니다. 개발자 도구에서 프롬프트를 설정하세요.", id)
}
