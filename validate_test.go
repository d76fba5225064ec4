package autosend

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"testing"
)

func TestValidateEmail(t *testing.T) {
	if err := validateEmail("user@example.com", "email"); err != nil {
		t.Fatalf("expected valid email: %v", err)
	}

	err := validateEmail("", "email")
	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected ValidationError for empty email, got %v", err)
	}
	if vErr.Field != "email" {
		t.Fatalf("unexpected field: %q", vErr.Field)
	}

	if err := validateEmail("not-an-address", "email"); err == nil {
		t.Fatalf("expected failure for address without '@'")
	}
}

func TestValidateNonEmpty(t *testing.T) {
	if err := validateNonEmpty("value", "subject"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, value := range []string{"", "   ", "\t"} {
		err := validateNonEmpty(value, "subject")
		var vErr *ValidationError
		if !errors.As(err, &vErr) {
			t.Fatalf("expected ValidationError for %q, got %v", value, err)
		}
		if vErr.Field != "subject" {
			t.Fatalf("unexpected field: %q", vErr.Field)
		}
	}
}

func TestValidateAttachmentsBounds(t *testing.T) {
	attachments := make([]Attachment, 20)
	for i := range attachments {
		attachments[i] = Attachment{Filename: fmt.Sprintf("report-%d.pdf", i)}
	}
	if err := validateAttachments(attachments); err != nil {
		t.Fatalf("expected 20 attachments to pass: %v", err)
	}

	attachments = append(attachments, Attachment{Filename: "one-more.pdf"})
	if err := validateAttachments(attachments); err == nil {
		t.Fatalf("expected failure for 21 attachments")
	}
}

func TestValidateAttachmentsBlockedExtensions(t *testing.T) {
	cases := []string{"virus.exe", "script.EXE", "install.Msi", "run.bAt", "archive.tar.vbs"}
	for _, filename := range cases {
		err := validateAttachments([]Attachment{{Filename: filename}})
		var vErr *ValidationError
		if !errors.As(err, &vErr) {
			t.Fatalf("expected ValidationError for %q, got %v", filename, err)
		}
		if vErr.Value != filename {
			t.Fatalf("expected offending filename %q identified, got %v", filename, vErr.Value)
		}
	}
}

func TestValidateAttachmentsAllowsSafeFiles(t *testing.T) {
	safe := []Attachment{
		{Filename: "invoice.pdf"},
		{Filename: "photo.JPG"},
		{Filename: "README"},
		{Filename: "notes.txt"},
	}
	if err := validateAttachments(safe); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateTemplateDataMissingKeys(t *testing.T) {
	html := "<p>Hi {{name}}, your order {{ orderId }} ships {{when}}.</p>"
	data := map[string]any{"name": "Jane"}

	_, err := validateTemplateData(html, data)
	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	missing, ok := vErr.Value.([]string)
	if !ok {
		t.Fatalf("expected missing key slice, got %T", vErr.Value)
	}
	if !reflect.DeepEqual(missing, []string{"orderId", "when"}) {
		t.Fatalf("expected exactly the unprovided placeholders, got %v", missing)
	}
}

func TestValidateTemplateDataEmptyDataWithPlaceholders(t *testing.T) {
	_, err := validateTemplateData("Hi {{name}}", map[string]any{})
	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if !strings.Contains(vErr.Message, "name") {
		t.Fatalf("expected the missing placeholder cited, got %q", vErr.Message)
	}
}

func TestValidateTemplateDataSupersetPasses(t *testing.T) {
	html := "Hi {{name}}"
	data := map[string]any{"name": "Jane", "plan": "premium", "age": 30}

	unused, err := validateTemplateData(html, data)
	if err != nil {
		t.Fatalf("extra keys must not fail validation: %v", err)
	}
	if !reflect.DeepEqual(unused, []string{"age", "plan"}) {
		t.Fatalf("expected unused keys reported, got %v", unused)
	}
}

func TestValidateTemplateDataNoPlaceholders(t *testing.T) {
	unused, err := validateTemplateData("<h1>Static</h1>", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if unused != nil {
		t.Fatalf("expected no advisory without placeholders, got %v", unused)
	}
}

func TestValidateUnsubscribeURL(t *testing.T) {
	if err := validateUnsubscribeURL(""); err != nil {
		t.Fatalf("absent URL must be a no-op: %v", err)
	}
	if err := validateUnsubscribeURL("https://example.com/u"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := validateUnsubscribeURL("http://example.com/u"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := validateUnsubscribeURL("ftp://example.com/u"); err == nil {
		t.Fatalf("expected failure for non-http scheme")
	}
}

func TestValidateRecipientsBounds(t *testing.T) {
	err := validateRecipients(nil, maxRecipients)
	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected ValidationError for empty list, got %v", err)
	}
	if vErr.Field != "recipients" {
		t.Fatalf("unexpected field: %q", vErr.Field)
	}

	oversized := make([]Address, 101)
	for i := range oversized {
		oversized[i] = Address{Email: fmt.Sprintf("user%d@example.com", i), Name: "User"}
	}
	if err := validateRecipients(oversized, maxRecipients); err == nil {
		t.Fatalf("expected failure for 101 recipients")
	}

	if err := validateRecipients(oversized[:100], maxRecipients); err != nil {
		t.Fatalf("expected 100 well-formed recipients to pass: %v", err)
	}
}

func TestValidateRecipientsRequiresEmailAndName(t *testing.T) {
	missingName := []Address{{Email: "user@example.com"}}
	if err := validateRecipients(missingName, maxRecipients); err == nil {
		t.Fatalf("expected failure for recipient without name")
	}

	badEmail := []Address{{Email: "nope", Name: "User"}}
	if err := validateRecipients(badEmail, maxRecipients); err == nil {
		t.Fatalf("expected failure for recipient with invalid email")
	}
}

func TestValidateEmailList(t *testing.T) {
	err := validateEmailList(nil)
	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected ValidationError for empty list, got %v", err)
	}
	if vErr.Field != "emails" {
		t.Fatalf("unexpected field: %q", vErr.Field)
	}

	if err := validateEmailList([]string{"a@x.com", "b@y.com"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := validateEmailList([]string{"a@x.com", "bad"}); err == nil {
		t.Fatalf("expected failure for invalid entry")
	}
}

func TestValidateContactBatch(t *testing.T) {
	if err := validateContactBatch(nil, maxBatchSize, "contacts"); err == nil {
		t.Fatalf("expected failure for empty batch")
	}

	oversized := make([]map[string]any, 101)
	for i := range oversized {
		oversized[i] = map[string]any{"email": fmt.Sprintf("user%d@example.com", i)}
	}
	if err := validateContactBatch(oversized, maxBatchSize, "contacts"); err == nil {
		t.Fatalf("expected failure for 101 contacts")
	}
	if err := validateContactBatch(oversized[:100], maxBatchSize, "contacts"); err != nil {
		t.Fatalf("expected 100 contacts to pass: %v", err)
	}

	if err := validateContactBatch([]map[string]any{{"firstName": "Jane"}}, maxBatchSize, "contacts"); err == nil {
		t.Fatalf("expected failure for entry without email key")
	}
	if err := validateContactBatch([]map[string]any{{"email": 42}}, maxBatchSize, "contacts"); err == nil {
		t.Fatalf("expected failure for non-string email value")
	}
}

func TestAttachmentExtension(t *testing.T) {
	cases := map[string]string{
		"file.pdf":       "pdf",
		"file.tar.GZ":    "gz",
		"FILE.EXE":       "exe",
		"no-extension":   "",
		"trailing-dot.":  "",
		".hidden":        "hidden",
		"double..ext.js": "js",
	}
	for filename, want := range cases {
		if got := attachmentExtension(filename); got != want {
			t.Fatalf("attachmentExtension(%q) = %q, want %q", filename, got, want)
		}
	}
}
