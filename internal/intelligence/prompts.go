package intelligence

import (
	"fmt"
	"strings"
)

func buildExtractSystemPrompt() string {
	var b strings.Builder

	b.WriteString("You extract structured intake fields from a prospect's answer during a qualification interview.\n\n")
	b.WriteString("RULES:\n")
	b.WriteString("1. Return ONLY a single JSON object, no markdown, no commentary.\n")
	b.WriteString("2. Include a field ONLY if the answer states it explicitly. Never infer, never guess.\n")
	b.WriteString("3. Omit fields that are ambiguous or not mentioned. Do not emit null values.\n")
	b.WriteString("4. Values are short lowercase snake_case tokens for categories (e.g. \"customer_support\", \"vp\"), plain numbers for counts.\n")
	b.WriteString("5. An answer that declines to share something means the field stays absent.\n")

	return b.String()
}

func buildExtractUserPrompt(req ExtractRequest) string {
	var b strings.Builder

	b.WriteString("## Fields to look for\n")
	for _, f := range req.TargetFields {
		fmt.Fprintf(&b, "- %s\n", f)
	}

	if len(req.Existing) > 0 {
		b.WriteString("\n## Already known (do not repeat unless the answer corrects them)\n")
		for k, v := range req.Existing {
			fmt.Fprintf(&b, "- %s: %v\n", k, v)
		}
	}

	if req.ContextHint != "" {
		b.WriteString("\n## Background\n")
		b.WriteString(req.ContextHint)
		b.WriteString("\n")
	}

	b.WriteString("\n## Answer\n")
	b.WriteString(req.Utterance)
	b.WriteString("\n\nJSON object:")

	return b.String()
}

func buildFollowUpSystemPrompt(isOptional bool) string {
	var b strings.Builder

	b.WriteString("You are a friendly intake interviewer for a business services firm.\n")
	b.WriteString("Write exactly ONE short conversational question. Plain text, no lists, no quotes around it.\n")
	b.WriteString("Never mention internal field names; ask about the topic in natural language.\n")
	b.WriteString("Acknowledge what the person just said in a few words before asking.\n")
	if isOptional {
		b.WriteString("The question is optional for them: make clear they can skip it.\n")
	}
	return b.String()
}

func buildFollowUpUserPrompt(req FollowUpRequest) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Interview section: %s\n", req.StepTitle)
	fmt.Fprintf(&b, "Question originally asked: %s\n", req.StepPrompt)

	b.WriteString("Still need to learn about: ")
	var topics []string
	for _, f := range req.MissingFields {
		topics = append(topics, HumanizeField(f))
	}
	b.WriteString(strings.Join(topics, ", "))
	b.WriteString("\n")

	if req.PriorUtterance != "" {
		fmt.Fprintf(&b, "Their last answer: %s\n", req.PriorUtterance)
	}

	b.WriteString("\nYour question:")
	return b.String()
}
