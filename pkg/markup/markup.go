package markup

import (
	"fmt"
	"html"
	"html/template"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// Policy decides how recipe descriptions are turned into HTML.
type Policy string

const (
	// PolicySanitize keeps formatting markup and drops scripts, handlers and
	// other active content.
	PolicySanitize Policy = "sanitize"
	// PolicyTrusted renders the description verbatim. Only for data files
	// whose author is trusted.
	PolicyTrusted Policy = "trusted"
	// PolicyPlain strips every tag and renders the remaining text.
	PolicyPlain Policy = "plain"
)

// ParsePolicy validates a policy name. The empty string selects PolicySanitize.
func ParsePolicy(s string) (Policy, error) {
	switch p := Policy(strings.ToLower(strings.TrimSpace(s))); p {
	case "":
		return PolicySanitize, nil
	case PolicySanitize, PolicyTrusted, PolicyPlain:
		return p, nil
	default:
		return "", fmt.Errorf("unknown description policy %q", s)
	}
}

// Renderer applies a Policy. It is safe for concurrent use.
type Renderer struct {
	policy Policy
	ugc    *bluemonday.Policy
	strict *bluemonday.Policy
}

// NewRenderer builds a Renderer for p.
func NewRenderer(p Policy) *Renderer {
	return &Renderer{
		policy: p,
		ugc:    bluemonday.UGCPolicy(),
		strict: bluemonday.StrictPolicy(),
	}
}

// Policy returns the active policy.
func (r *Renderer) Policy() Policy { return r.policy }

// HTML renders s as markup ready to be embedded in a page.
func (r *Renderer) HTML(s string) template.HTML {
	switch r.policy {
	case PolicyTrusted:
		return template.HTML(s) //nolint:gosec // opt-in trusted content
	case PolicyPlain:
		return template.HTML(template.HTMLEscapeString(r.Text(s)))
	default:
		return template.HTML(r.ugc.Sanitize(s))
	}
}

// Text strips every tag from s and unescapes entities.
func (r *Renderer) Text(s string) string {
	return strings.TrimSpace(html.UnescapeString(r.strict.Sanitize(s)))
}
