package scrape

import (
	"strings"

	"github.com/fwojciec/smartscrape"
)

// SystemPrompt instructs the model how to answer extraction requests.
const SystemPrompt = `You are a web scraping assistant. Your task is to extract the information a user asks for from the content of a single webpage.

Rules:
1. Answer only from the webpage content provided
2. Return one valid JSON object and nothing else
3. Choose short, descriptive keys that fit the request
4. Use arrays for repeated items
5. Use null when requested information cannot be found
6. Keep URLs absolute, exactly as they appear in the content
7. Do not invent data`

// TruncationMarker is appended to content cut down to the token budget.
const TruncationMarker = "\n\n[Content truncated due to length...]"

// BuildUserPrompt builds the user message for one extraction.
func BuildUserPrompt(request string, page *smartscrape.Page) string {
	var sb strings.Builder
	sb.WriteString("Extract the following from the webpage below.\n\n")
	sb.WriteString("## Request\n")
	sb.WriteString(request)
	sb.WriteString("\n\n## Source\n")
	sb.WriteString("URL: ")
	sb.WriteString(page.URL)
	sb.WriteString("\n")
	if page.Title != "" {
		sb.WriteString("Title: ")
		sb.WriteString(page.Title)
		sb.WriteString("\n")
	}
	sb.WriteString("\n## Webpage Content\n")
	sb.WriteString(page.Content)
	sb.WriteString("\n")
	return sb.String()
}
