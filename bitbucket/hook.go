package bitbucket

import (
	"fmt"
	"regexp"
)

// eventKeyPattern validates Bitbucket event keys such as "repo:push" or "pullrequest:created"
var eventKeyPattern = regexp.MustCompile(`^[a-z_]+:[a-z_]+$`)

// DefaultDescription is the description every managed webhook is registered with
const DefaultDescription = "AWS webhook"

var defaultEvents = []string{
	"repo:push",
	"pullrequest:created",
	"pullrequest:updated",
}

// DefaultEvents returns the events every managed webhook subscribes to
func DefaultEvents() []string {
	events := make([]string, len(defaultEvents))
	copy(events, defaultEvents)
	return events
}

/* Hook is the body sent when creating or replacing a repository webhook
 * Description, Active and Events are fixed, only URL comes from the resource
 */
type Hook struct {
	Description string   `json:"description"`
	URL         string   `json:"url"`
	Active      bool     `json:"active"`
	Events      []string `json:"events"`
}

// NewHook builds the fixed-shape hook pointing at url
func NewHook(url string) Hook {
	return Hook{
		Description: DefaultDescription,
		URL:         url,
		Active:      true,
		Events:      DefaultEvents(),
	}
}

// Validate checks the hook before it is sent
func (h Hook) Validate() error {
	if h.URL == "" {
		return fmt.Errorf("url cannot be empty")
	}
	if len(h.Events) == 0 {
		return fmt.Errorf("at least one event is required")
	}
	for _, event := range h.Events {
		if !eventKeyPattern.MatchString(event) {
			return fmt.Errorf("event key must look like category:action: %s", event)
		}
	}
	return nil
}

// HookResponse is the subset of the remote webhook object the provider reads
type HookResponse struct {
	UUID        string   `json:"uuid"`
	Description string   `json:"description"`
	URL         string   `json:"url"`
	Active      bool     `json:"active"`
	Events      []string `json:"events"`
}

// Repository identifies the repository a hook belongs to
type Repository struct {
	Workspace string
	Slug      string
}

func (r Repository) String() string {
	return r.Workspace + "/" + r.Slug
}
