package main

import (
	"context"
	"fmt"
	"log"
	"regexp"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

const defaultAnthropicModel = "claude-sonnet-4-5-20250929"

// Summarizer turns pattern records into short sheet-ready descriptions via
// one Messages call per pattern.
type Summarizer struct {
	client      anthropic.Client
	model       string
	temperature float64
}

func NewSummarizer(cfg Config) *Summarizer {
	model := cfg.LLMModel
	if model == "" {
		model = defaultAnthropicModel
	}
	return &Summarizer{
		client:      anthropic.NewClient(option.WithAPIKey(cfg.AnthropicAPIKey)),
		model:       model,
		temperature: cfg.LLMTemperature,
	}
}

// SummarizePatterns produces one SummaryRecord per pattern, in pattern
// order. Any LLM failure other than the one-shot model fallback aborts the
// run for that pattern and propagates.
func (s *Summarizer) SummarizePatterns(ctx context.Context, patterns []PatternRecord) ([]SummaryRecord, error) {
	results := make([]SummaryRecord, 0, len(patterns))
	for _, pattern := range patterns {
		record, err := s.summarizeOne(ctx, pattern)
		if err != nil {
			return nil, fmt.Errorf("summarizing %q: %w", pattern.Pattern, err)
		}
		results = append(results, record)
	}
	return results, nil
}

func (s *Summarizer) summarizeOne(ctx context.Context, pattern PatternRecord) (SummaryRecord, error) {
	name := pattern.Pattern
	if name == "" {
		name = "Unknown Pattern"
	}

	prompt := buildSummaryPrompt(name, pattern.Problems, pattern.Notes)
	text, err := s.generate(ctx, s.model, prompt)
	if err != nil && isModelNotFound(err) {
		alternate := alternateModel(s.model)
		log.Printf("llm model not found model=%s retry=%s", s.model, alternate)
		text, err = s.generate(ctx, alternate, prompt)
	}
	if err != nil {
		return SummaryRecord{}, err
	}

	summary := strings.TrimSpace(text)
	if summary == "" {
		summary = fmt.Sprintf("No summary was generated for %s. Review the listed problems to infer the core idea.", name)
	}

	return SummaryRecord{
		Pattern:     name,
		URL:         pattern.URL,
		Summary:     summary,
		TopProblems: formatProblems(pattern.Problems),
	}, nil
}

func (s *Summarizer) generate(ctx context.Context, model, prompt string) (string, error) {
	message, err := s.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:       anthropic.Model(model),
		MaxTokens:   1024,
		Temperature: anthropic.Float(s.temperature),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("Anthropic API error: %w", err)
	}
	for _, block := range message.Content {
		if block.Type == "text" {
			log.Printf("llm response model=%s size=%d tokens_in=%d tokens_out=%d", model, len(block.Text), message.Usage.InputTokens, message.Usage.OutputTokens)
			return block.Text, nil
		}
	}
	return "", nil
}

// isModelNotFound recognizes the "model does not exist" class of API error
// that warrants the single alternate-model retry.
func isModelNotFound(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "not_found") || strings.Contains(msg, "404")
}

var modelDateSuffixRe = regexp.MustCompile(`-\d{8}$`)

// alternateModel derives the fallback identifier: strip a trailing date
// pin, or append -latest when there is none.
func alternateModel(model string) string {
	if modelDateSuffixRe.MatchString(model) {
		return modelDateSuffixRe.ReplaceAllString(model, "")
	}
	return model + "-latest"
}

// buildSummaryPrompt embeds the pattern name, notes, and up to 8
// representative problems. The length cap is advisory only.
func buildSummaryPrompt(name string, problems []ProblemRecord, notes string) string {
	var lines strings.Builder
	for i, p := range problems {
		if i >= 8 {
			break
		}
		title := p.Title
		if title == "" {
			title = "Unknown title"
		}
		difficulty := p.Difficulty
		if difficulty == "" {
			difficulty = "N/A"
		}
		lines.WriteString(fmt.Sprintf("- %s (%s)\n", title, difficulty))
	}
	problemsBlock := strings.TrimRight(lines.String(), "\n")
	if problemsBlock == "" {
		problemsBlock = "- No problems listed."
	}
	context := notes
	if context == "" {
		context = "No extra notes provided."
	}
	return fmt.Sprintf(`You are summarizing an algorithmic problem-solving pattern for a study sheet.
Pattern: %s
Context: %s
Representative problems:
%s

Write a crisp 1-2 sentence description that explains the core idea, when to use it, and the intuition a learner should remember. Avoid verbosity and avoid code. Keep it under 420 characters.`, name, context, problemsBlock)
}

// formatProblems renders up to 3 representative problems as a short
// multi-line bullet list for spreadsheet display.
func formatProblems(problems []ProblemRecord) string {
	var formatted []string
	for i, p := range problems {
		if i >= 3 {
			break
		}
		title := p.Title
		if title == "" {
			title = "Unknown title"
		}
		difficulty := p.Difficulty
		if difficulty == "" {
			difficulty = "N/A"
		}
		formatted = append(formatted, strings.TrimSpace(fmt.Sprintf("- %s (%s) %s", title, difficulty, p.URL)))
	}
	if len(formatted) == 0 {
		return "-"
	}
	return strings.Join(formatted, "\n")
}

// summariesByName keys summaries by case-insensitive pattern name so they
// are merged back onto records by identity, not position. A summarizer that
// filters or reorders cannot silently mismatch records this way.
func summariesByName(summaries []SummaryRecord) map[string]SummaryRecord {
	byName := make(map[string]SummaryRecord, len(summaries))
	for _, s := range summaries {
		key := strings.ToLower(s.Pattern)
		if _, exists := byName[key]; !exists {
			byName[key] = s
		}
	}
	return byName
}

// StudyTips asks for a handful of short study hints covering the run's set
// of pattern names. Callers are expected to swallow failures.
func (s *Summarizer) StudyTips(ctx context.Context, patternNames []string) ([]string, error) {
	prompt := fmt.Sprintf(`A study spreadsheet covers these algorithmic patterns:
%s

Write 5 short, practical study tips for working through them (one line each, no numbering, no code). Each tip under 120 characters.`, strings.Join(patternNames, ", "))

	text, err := s.generate(ctx, s.model, prompt)
	if err != nil && isModelNotFound(err) {
		text, err = s.generate(ctx, alternateModel(s.model), prompt)
	}
	if err != nil {
		return nil, err
	}

	var tips []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(strings.TrimLeft(strings.TrimSpace(line), "-*• "))
		if line != "" {
			tips = append(tips, line)
		}
	}
	return tips, nil
}
