package genai

import "fmt"

func workflowPrompt(task string) string {
	return fmt.Sprintf(`You are an automation consultant for a digital agency.

A client described this task:

---
%q
---

Design a practical automation workflow for it in exactly 4 steps. Each step
names one real, widely used tool (for example Zapier, Airtable, Slack, a
spreadsheet, an email service, or an AI model) and explains in one or two
plain sentences what happens in that step. Number the steps 1 through 4 in
execution order. Keep the tone confident and concrete; no filler.

Respond with a JSON object of the form
{"steps": [{"step": 1, "title": "...", "tool": "...", "description": "..."}, ...]}
and nothing else.`, task)
}

func agentPrompt(idea string) string {
	return fmt.Sprintf(`You are configuring an AI agent for a client of a digital agency.

The client's idea:

---
%q
---

Produce a complete agent configuration: a short memorable name, a one-line
role, 3 to 5 operating instructions written as imperatives, and 3 to 5
concrete capabilities. Keep every entry specific to the idea above.

Respond with a JSON object of the form
{"name": "...", "role": "...", "instructions": ["..."], "capabilities": ["..."]}
and nothing else.`, idea)
}

func postDraftPrompt(topic string) string {
	return fmt.Sprintf(`You are a content writer for a digital marketing agency blog.

Write a blog post about: %q

The post should be insightful and practical, written for marketing and
operations leads, around 500 words of markdown with two or three ## section
headings. Also produce a punchy title, a one-sentence summary, and 3 to 5
lowercase topic tags.

Respond with only a JSON object of the form
{"title": "...", "summary": "...", "content": "...", "tags": ["..."]}
with the markdown in the content field. Do not wrap the JSON in a code fence.`, topic)
}
