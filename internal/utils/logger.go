package utils

import (
	"log"
	"strings"
)

// LogEvent prints a standardized line with module/action/request_id.
// Avoid logging sensitive payload; the message should be summarized.
func LogEvent(requestID, module, action, message string) {
	req := strings.TrimSpace(requestID)
	if req == "" {
		req = "-"
	}
	log.Printf("[%s] request_id=%s action=%s msg=%s", strings.ToUpper(strings.TrimSpace(module)), req, action, message)
}
