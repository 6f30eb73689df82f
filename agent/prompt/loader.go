package prompt

import (
	_ "embed"
	"strings"
)

//go:embed template/cafe.txt
var cafeRaw string

// PromptSet holds loaded prompt content.
type PromptSet struct {
	Cafe string
}

// LoadPromptSet returns a PromptSet with trimmed prompt strings.
func LoadPromptSet() PromptSet {
	return PromptSet{
		Cafe: strings.TrimSpace(cafeRaw),
	}
}
