package agencykit

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/preshdigital/agencykit/genai"
)

// JSON endpoints consumed by the page scripts. Validation failures are
// raised locally before any provider call; provider and parse failures both
// collapse into a generic 500, and a missing credential is not an error —
// the generator substitutes canned output and reports mode "simulated".

type workflowRequest struct {
	Task string `json:"task"`
}

type workflowResponse struct {
	Workflow []genai.WorkflowStep `json:"workflow"`
	Mode     genai.Mode           `json:"mode"`
}

func (a *App) handleGenerateWorkflow(c echo.Context) error {
	var req workflowRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Task description is required"})
	}
	if strings.TrimSpace(req.Task) == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Task description is required"})
	}
	steps, mode, err := a.Generator.GenerateWorkflow(c.Request().Context(), req.Task)
	if err != nil {
		c.Logger().Errorf("generate workflow: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to generate workflow"})
	}
	return c.JSON(http.StatusOK, workflowResponse{Workflow: steps, Mode: mode})
}

type agentRequest struct {
	Idea string `json:"idea"`
}

type agentResponse struct {
	Config genai.AgentConfig `json:"config"`
	Mode   genai.Mode        `json:"mode"`
}

func (a *App) handleGenerateAgent(c echo.Context) error {
	var req agentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Idea required"})
	}
	if strings.TrimSpace(req.Idea) == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Idea required"})
	}
	cfg, mode, err := a.Generator.GenerateAgentConfig(c.Request().Context(), req.Idea)
	if err != nil {
		c.Logger().Errorf("generate agent config: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Server Error"})
	}
	return c.JSON(http.StatusOK, agentResponse{Config: cfg, Mode: mode})
}

// handleDebugEnv reports whether a provider credential is configured. The
// system this replaces echoed the key itself; that is a secret leak, so the
// response keeps the legacy field names but the key is always null.
func (a *App) handleDebugEnv(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"API_KEY": nil,
		"HAS_KEY": a.Generator.Live(),
	})
}

type contactRequest struct {
	Name    string `json:"name" form:"name"`
	Email   string `json:"email" form:"email"`
	Message string `json:"message" form:"message"`
}

func (a *App) handleContact(c echo.Context) error {
	var req contactRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Name, email and message are required"})
	}
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Email) == "" || strings.TrimSpace(req.Message) == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Name, email and message are required"})
	}
	if !strings.Contains(req.Email, "@") {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "A valid email is required"})
	}
	msg, err := a.Contact.Add(ContactMessage{
		Name:    strings.TrimSpace(req.Name),
		Email:   strings.TrimSpace(req.Email),
		Message: strings.TrimSpace(req.Message),
	})
	if err != nil {
		c.Logger().Errorf("store contact message: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Server Error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"ok": true, "id": msg.ID})
}
