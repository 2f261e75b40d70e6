package http

import (
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/iftikharqureshi/plain-english-explainer/internal/config"
	"github.com/iftikharqureshi/plain-english-explainer/internal/features/explainer/application"
	"github.com/iftikharqureshi/plain-english-explainer/internal/features/explainer/domain"
	"github.com/iftikharqureshi/plain-english-explainer/internal/features/explainer/presentation"
)

// maxParagraphLength bounds the input so a pasted document can't blow up
// the prompt.
const maxParagraphLength = 10000

// ExplainerHandler holds the explainer service and app config service.
type ExplainerHandler struct {
	explainerService application.ExplainerService
	appConfigService config.AppConfigService
}

// NewExplainerHandler creates a new ExplainerHandler.
func NewExplainerHandler(explainerService application.ExplainerService, appConfigService config.AppConfigService) *ExplainerHandler {
	return &ExplainerHandler{
		explainerService: explainerService,
		appConfigService: appConfigService,
	}
}

// ExplainResponse is the success payload: the validated object plus its
// presentation sections.
type ExplainResponse struct {
	Result   domain.ExplainerOutput `json:"result"`
	Sections []presentation.Section `json:"sections"`
}

// ExplainHandler handles the request to explain one paragraph.
func (h *ExplainerHandler) ExplainHandler(c *gin.Context) {
	var req domain.ExplainRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": presentation.ErrorView{
			Kind:     "input",
			Headline: "Invalid request body.",
			Detail:   err.Error(),
		}})
		return
	}

	paragraph := strings.TrimSpace(req.Paragraph)
	if paragraph == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": presentation.ErrorView{
			Kind:     "input",
			Headline: "Please paste a paragraph first.",
			Detail:   application.ErrEmptyParagraph.Error(),
		}})
		return
	}
	if len(paragraph) > maxParagraphLength {
		c.JSON(http.StatusBadRequest, gin.H{"error": presentation.ErrorView{
			Kind:     "input",
			Headline: "Paragraph is too long.",
			Detail:   fmt.Sprintf("paragraph is %d characters (max %d)", len(paragraph), maxParagraphLength),
		}})
		return
	}

	appConfig, err := h.appConfigService.LoadAppConfig()
	if err != nil {
		log.Println("[ERROR] Failed to load app config:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": presentation.ErrorView{
			Kind:     "internal",
			Headline: "Something went wrong.",
			Detail:   "failed to load app config: " + err.Error(),
		}})
		return
	}

	result, err := h.explainerService.ExplainParagraph(c.Request.Context(), paragraph, *appConfig)
	if err != nil {
		view := presentation.RenderError(err)
		log.Printf("[ERROR] Explain pipeline failed (%s): %v", view.Kind, err)
		c.JSON(statusForError(err), gin.H{"error": view})
		return
	}

	c.JSON(http.StatusOK, ExplainResponse{
		Result:   result,
		Sections: presentation.Render(result),
	})
}

// statusForError picks the HTTP status for a pipeline failure. Remote,
// parse and schema faults originate upstream, so they map to 502.
func statusForError(err error) int {
	switch domain.KindOf(err) {
	case domain.ErrorKindConfiguration, domain.ErrorKind(""):
		return http.StatusInternalServerError
	default:
		return http.StatusBadGateway
	}
}
