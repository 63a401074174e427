package genai

// Canned payloads returned in simulated mode. They keep the demo flows fully
// functional when no provider credential is configured; the Mode value is
// how callers tell them apart from live output.

// FallbackWorkflow returns the fixed four-step workflow used when no
// credential is configured. Steps are numbered 1-4 in order.
func FallbackWorkflow() []WorkflowStep {
	return []WorkflowStep{
		{
			Step:        1,
			Title:       "Capture the request",
			Tool:        "Typeform",
			Description: "Collect the task details and requester email through a short intake form.",
		},
		{
			Step:        2,
			Title:       "Route and enrich",
			Tool:        "Zapier",
			Description: "Send each submission through a Zap that tags it and attaches CRM context.",
		},
		{
			Step:        3,
			Title:       "Draft with AI",
			Tool:        "OpenAI",
			Description: "Generate a first-pass deliverable from a prompt tuned to the task description.",
		},
		{
			Step:        4,
			Title:       "Review and deliver",
			Tool:        "Slack",
			Description: "Post the draft to a review channel for human sign-off before it ships.",
		},
	}
}

// FallbackAgentConfig returns the fixed agent configuration used when no
// credential is configured.
func FallbackAgentConfig() AgentConfig {
	return AgentConfig{
		Name: "Atlas",
		Role: "Operations research assistant",
		Instructions: []string{
			"Monitor the shared inbox and triage incoming requests by urgency.",
			"Summarize long threads into three bullet points before escalating.",
			"Draft responses for routine questions and queue them for approval.",
			"Never send anything external without a human sign-off.",
		},
		Capabilities: []string{
			"Email triage and summarization",
			"CRM record lookup and updates",
			"Meeting notes and action-item extraction",
			"Weekly operations digest generation",
		},
	}
}
