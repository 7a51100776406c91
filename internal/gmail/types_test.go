package gmail

import (
	"encoding/base64"
	"testing"

	gmail "google.golang.org/api/gmail/v1"
)

func encode(s string) string {
	return base64.RawURLEncoding.EncodeToString([]byte(s))
}

func TestHeaderValueCaseInsensitive(t *testing.T) {
	payload := &gmail.MessagePart{
		Headers: []*gmail.MessagePartHeader{
			{Name: "subject", Value: "Test Subject"},
			{Name: "From", Value: "test@example.com"},
		},
	}

	if got := headerValue(payload, "Subject"); got != "Test Subject" {
		t.Errorf("Expected Test Subject, got %q", got)
	}
	if got := headerValue(payload, "FROM"); got != "test@example.com" {
		t.Errorf("Expected test@example.com, got %q", got)
	}
	if got := headerValue(payload, "To"); got != "" {
		t.Errorf("Expected empty for missing header, got %q", got)
	}
	if got := headerValue(nil, "Subject"); got != "" {
		t.Errorf("Expected empty for nil payload, got %q", got)
	}
}

func TestExtractBodySimple(t *testing.T) {
	payload := &gmail.MessagePart{
		Body: &gmail.MessagePartBody{Data: encode("Hello, this is a test email.")},
	}

	if got := extractBody(payload); got != "Hello, this is a test email." {
		t.Errorf("unexpected body: %q", got)
	}
}

func TestExtractBodyMultipart(t *testing.T) {
	payload := &gmail.MessagePart{
		MimeType: "multipart/alternative",
		Parts: []*gmail.MessagePart{
			{
				MimeType: "text/html",
				Body:     &gmail.MessagePartBody{Data: encode("<p>html</p>")},
			},
			{
				MimeType: "text/plain",
				Body:     &gmail.MessagePartBody{Data: encode("plain text body")},
			},
		},
	}

	if got := extractBody(payload); got != "plain text body" {
		t.Errorf("Expected the text/plain part, got %q", got)
	}
}

func TestExtractBodyNestedMultipart(t *testing.T) {
	payload := &gmail.MessagePart{
		MimeType: "multipart/mixed",
		Parts: []*gmail.MessagePart{
			{
				MimeType: "multipart/alternative",
				Parts: []*gmail.MessagePart{
					{
						MimeType: "text/plain",
						Body:     &gmail.MessagePartBody{Data: encode("nested body")},
					},
				},
			},
			{
				MimeType: "application/pdf",
				Body:     &gmail.MessagePartBody{AttachmentId: "att1"},
			},
		},
	}

	if got := extractBody(payload); got != "nested body" {
		t.Errorf("Expected nested text/plain part, got %q", got)
	}
}

func TestDecodeBodyPaddedInput(t *testing.T) {
	padded := base64.URLEncoding.EncodeToString([]byte("padded input"))
	if got := decodeBody(padded); got != "padded input" {
		t.Errorf("Expected padded input, got %q", got)
	}
}

func TestDecodeBodyInvalid(t *testing.T) {
	if got := decodeBody("!!! not base64 !!!"); got != "" {
		t.Errorf("Expected empty string for invalid data, got %q", got)
	}
}

func TestToMessageDetails(t *testing.T) {
	msg := &gmail.Message{
		Id:       "123",
		ThreadId: "t1",
		Snippet:  "Hello...",
		LabelIds: []string{"INBOX", "UNREAD"},
		Payload: &gmail.MessagePart{
			Headers: []*gmail.MessagePartHeader{
				{Name: "Subject", Value: "Test Subject"},
				{Name: "From", Value: "test@example.com"},
				{Name: "To", Value: "recipient@example.com"},
				{Name: "Date", Value: "2023-01-01T00:00:00Z"},
			},
			Body: &gmail.MessagePartBody{Data: encode("Hello, this is a test email.")},
		},
	}

	details := toMessageDetails(msg)

	if details.ID != "123" || details.ThreadID != "t1" {
		t.Errorf("unexpected identity fields: %+v", details)
	}
	if details.Subject != "Test Subject" {
		t.Errorf("Expected Test Subject, got %q", details.Subject)
	}
	if details.To != "recipient@example.com" {
		t.Errorf("Expected recipient@example.com, got %q", details.To)
	}
	if details.Body != "Hello, this is a test email." {
		t.Errorf("unexpected body: %q", details.Body)
	}
	if len(details.Labels) != 2 {
		t.Errorf("Expected 2 labels, got %d", len(details.Labels))
	}
}
