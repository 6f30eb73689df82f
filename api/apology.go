package api

import (
	"errors"
	"fmt"
	"strings"

	contractx "github.com/tanpawarit/namaste-bites-agent/agent/contract"
)

const (
	offlineApology = "I'm sorry, my brain is currently offline (API Key issue)."
	errorApology   = "Sorry, I encountered an error computing that: %s"
)

// apologyFor turns any chat-path failure into the text shown to the customer.
// Only the first line of the cause is shown.
func apologyFor(err error) string {
	if errors.Is(err, contractx.ErrModelUnavailable) {
		return offlineApology
	}
	return fmt.Sprintf(errorApology, firstLine(err.Error()))
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return strings.TrimSpace(s[:i])
	}
	return s
}
