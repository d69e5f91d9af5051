package middleware

import (
	"net/http"
	"strings"

	"github.com/SscSPs/loan_ledger/internal/utils"
	"github.com/gin-gonic/gin"
)

const apiPrefix = "/api/v1/"

// untrackedRoutes are authenticated reads polled by the client after every action.
var untrackedRoutes = map[string]bool{
	"/api/v1/me":                true,
	"/api/v1/people":            true,
	"/api/v1/people/summary":    true,
	"/api/v1/transactions":      true,
	"/api/v1/completed-records": true,
	"/api/v1/reminders":         true,
}

// routeEventName turns a route pattern into an event name:
// "/api/v1/people/:personID/collect" becomes "people_collect".
func routeEventName(method, fullPath string) string {
	segments := strings.Split(strings.TrimPrefix(fullPath, apiPrefix), "/")
	kept := segments[:0]
	for _, seg := range segments {
		if seg == "" || strings.HasPrefix(seg, ":") {
			continue
		}
		kept = append(kept, strings.ReplaceAll(seg, "-", "_"))
	}
	if len(kept) == 0 {
		return ""
	}
	name := strings.Join(kept, "_")
	if method == http.MethodDelete {
		name += "_deleted"
	}
	return name
}

// PosthogMiddleware records one analytics event per successful ledger action.
func PosthogMiddleware(posthogClient *utils.PosthogClientWrapper) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if !posthogClient.IsInitialized() {
			return
		}
		if c.Request.Method == http.MethodGet && untrackedRoutes[c.FullPath()] {
			return
		}
		if len(c.Errors) > 0 || c.Writer.Status() >= http.StatusBadRequest {
			return
		}
		userID, ok := GetUserIDFromContext(c)
		if !ok {
			return
		}
		eventName := routeEventName(c.Request.Method, c.FullPath())
		if eventName == "" {
			return
		}

		props := map[string]any{
			"method":      c.Request.Method,
			"status_code": c.Writer.Status(),
		}
		if personID := c.Param("personID"); personID != "" {
			props["person_id"] = personID
		}
		posthogClient.Enqueue(userID, eventName, props)
	}
}

// PosthogEvent sends a named event for the authenticated user, e.g. a person being archived.
func PosthogEvent(c *gin.Context, posthogClient *utils.PosthogClientWrapper, eventName string, properties map[string]any) {
	if !posthogClient.IsInitialized() {
		return
	}
	userID, ok := GetUserIDFromContext(c)
	if !ok {
		return
	}
	props := make(map[string]any, len(properties)+1)
	for k, v := range properties {
		props[k] = v
	}
	props["path"] = c.Request.URL.Path
	posthogClient.Enqueue(userID, eventName, props)
}
