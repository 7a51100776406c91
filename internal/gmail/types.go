package gmail

import (
	"encoding/base64"
	"strings"

	gmail "google.golang.org/api/gmail/v1"
)

// MessageSummary is the compact form returned by searches
type MessageSummary struct {
	ID       string `json:"id"`
	ThreadID string `json:"threadId,omitempty"`
	Subject  string `json:"subject"`
	From     string `json:"from"`
	Date     string `json:"date"`
	Snippet  string `json:"snippet,omitempty"`
}

// MessageDetails is a full message with its decoded plain-text body
type MessageDetails struct {
	ID       string   `json:"id"`
	ThreadID string   `json:"threadId,omitempty"`
	Subject  string   `json:"subject"`
	From     string   `json:"from"`
	To       string   `json:"to"`
	Date     string   `json:"date"`
	Body     string   `json:"body"`
	Snippet  string   `json:"snippet,omitempty"`
	Labels   []string `json:"labels,omitempty"`
}

// headerValue returns the value of a named header, case-insensitively
func headerValue(payload *gmail.MessagePart, name string) string {
	if payload == nil {
		return ""
	}
	for _, h := range payload.Headers {
		if strings.EqualFold(h.Name, name) {
			return h.Value
		}
	}
	return ""
}

// extractBody returns the decoded plain-text body of a message. For
// multipart messages the first text/plain part wins; nested multiparts
// are walked depth-first.
func extractBody(payload *gmail.MessagePart) string {
	if payload == nil {
		return ""
	}
	if payload.Body != nil && payload.Body.Data != "" {
		return decodeBody(payload.Body.Data)
	}
	if part := findTextPart(payload.Parts); part != nil {
		return decodeBody(part.Body.Data)
	}
	return ""
}

func findTextPart(parts []*gmail.MessagePart) *gmail.MessagePart {
	for _, p := range parts {
		if p.MimeType == "text/plain" && p.Body != nil && p.Body.Data != "" {
			return p
		}
	}
	for _, p := range parts {
		if strings.HasPrefix(p.MimeType, "multipart/") {
			if found := findTextPart(p.Parts); found != nil {
				return found
			}
		}
	}
	return nil
}

// decodeBody decodes Gmail's unpadded base64url body encoding
func decodeBody(data string) string {
	decoded, err := base64.RawURLEncoding.DecodeString(strings.TrimRight(data, "="))
	if err != nil {
		return ""
	}
	return string(decoded)
}

func toMessageSummary(m *gmail.Message) MessageSummary {
	return MessageSummary{
		ID:       m.Id,
		ThreadID: m.ThreadId,
		Subject:  headerValue(m.Payload, "Subject"),
		From:     headerValue(m.Payload, "From"),
		Date:     headerValue(m.Payload, "Date"),
		Snippet:  m.Snippet,
	}
}

func toMessageDetails(m *gmail.Message) MessageDetails {
	return MessageDetails{
		ID:       m.Id,
		ThreadID: m.ThreadId,
		Subject:  headerValue(m.Payload, "Subject"),
		From:     headerValue(m.Payload, "From"),
		To:       headerValue(m.Payload, "To"),
		Date:     headerValue(m.Payload, "Date"),
		Body:     extractBody(m.Payload),
		Snippet:  m.Snippet,
		Labels:   m.LabelIds,
	}
}
