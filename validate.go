package autosend

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

const (
	maxAttachments = 20
	maxRecipients  = 100
	maxBatchSize   = 100
)

var placeholderPattern = regexp.MustCompile(`\{\{\s*([A-Za-z0-9_.-]+)\s*\}\}`)

// blockedExtensions enumerates attachment file types rejected for email
// delivery: executables, scripts and system files. Matching is performed
// case-insensitively on the segment after the last dot.
var blockedExtensions = map[string]struct{}{
	"adp": {}, "app": {}, "asp": {}, "bas": {}, "bat": {}, "cer": {},
	"chm": {}, "cmd": {}, "com": {}, "cpl": {}, "crt": {}, "csh": {},
	"der": {}, "exe": {}, "fxp": {}, "gadget": {}, "hlp": {}, "hta": {},
	"inf": {}, "ins": {}, "isp": {}, "its": {}, "js": {}, "jse": {},
	"ksh": {}, "lib": {}, "lnk": {}, "mad": {}, "maf": {}, "mag": {},
	"mam": {}, "maq": {}, "mar": {}, "mas": {}, "mat": {}, "mau": {},
	"mav": {}, "maw": {}, "mda": {}, "mdb": {}, "mde": {}, "mdt": {},
	"mdw": {}, "mdz": {}, "msc": {}, "msh": {}, "msh1": {}, "msh2": {},
	"mshxml": {}, "msh1xml": {}, "msh2xml": {}, "msi": {}, "msp": {},
	"mst": {}, "ops": {}, "pcd": {}, "pif": {}, "plg": {}, "prf": {},
	"prg": {}, "reg": {}, "scf": {}, "scr": {}, "sct": {}, "shb": {},
	"shs": {}, "sys": {}, "ps1": {}, "ps1xml": {}, "ps2": {}, "ps2xml": {},
	"psc1": {}, "psc2": {}, "tmp": {}, "url": {}, "vb": {}, "vbe": {},
	"vbs": {}, "vps": {}, "vsmacros": {}, "vss": {}, "vst": {}, "vsw": {},
	"vxd": {}, "ws": {}, "wsc": {}, "wsf": {}, "wsh": {}, "xnk": {},
}

// validateEmail performs a syntactic check only: the address must be
// non-empty and contain an @ separator.
func validateEmail(value, field string) error {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return newValidationError("email address cannot be empty", field, nil)
	}
	if !strings.Contains(trimmed, "@") {
		return newValidationError("email address must contain '@'", field, value)
	}
	return nil
}

// validateNonEmpty fails when the value is empty or whitespace-only.
func validateNonEmpty(value, field string) error {
	if strings.TrimSpace(value) == "" {
		return newValidationError(fmt.Sprintf("%s cannot be empty", field), field, nil)
	}
	return nil
}

// validateBoundedList fails when a list exceeds its maximum size.
func validateBoundedList(length, max int, field string) error {
	if length > max {
		return newValidationError(
			fmt.Sprintf("a maximum of %d %s is allowed", max, field), field, length)
	}
	return nil
}

// attachmentExtension returns the lowercased segment after the last dot, or
// the empty string when the filename has no dot.
func attachmentExtension(filename string) string {
	idx := strings.LastIndex(filename, ".")
	if idx < 0 {
		return ""
	}
	return strings.ToLower(filename[idx+1:])
}

// validateAttachments enforces the attachment count limit and rejects
// filenames whose extension belongs to the blocked set.
func validateAttachments(attachments []Attachment) error {
	if err := validateBoundedList(len(attachments), maxAttachments, "attachments"); err != nil {
		return err
	}
	for _, att := range attachments {
		ext := attachmentExtension(att.Filename)
		if _, blocked := blockedExtensions[ext]; blocked {
			return newValidationError(
				fmt.Sprintf("attachment type '.%s' is not supported", ext),
				"attachments", att.Filename)
		}
	}
	return nil
}

// extractPlaceholders returns the distinct placeholder names found in the
// HTML body, in first-seen order.
func extractPlaceholders(html string) []string {
	seen := make(map[string]struct{})
	var names []string
	for _, match := range placeholderPattern.FindAllStringSubmatch(html, -1) {
		name := match[1]
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	return names
}

// validateTemplateData checks that every {{placeholder}} in the HTML body
// has a corresponding key in dynamicData. Surplus keys are advisory only
// and are returned as unused so the caller can log them.
func validateTemplateData(html string, dynamicData map[string]any) (unused []string, err error) {
	placeholders := extractPlaceholders(html)
	if len(placeholders) == 0 {
		return nil, nil
	}
	if len(dynamicData) == 0 {
		return nil, newValidationError(
			fmt.Sprintf("dynamicData is empty but the template requires: %s",
				strings.Join(placeholders, ", ")),
			"dynamicData", nil)
	}

	var missing []string
	for _, name := range placeholders {
		if _, ok := dynamicData[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, newValidationError(
			fmt.Sprintf("dynamicData is missing keys for placeholders: %s",
				strings.Join(missing, ", ")),
			"dynamicData", missing)
	}

	required := make(map[string]struct{}, len(placeholders))
	for _, name := range placeholders {
		required[name] = struct{}{}
	}
	for key := range dynamicData {
		if _, ok := required[key]; !ok {
			unused = append(unused, key)
		}
	}
	sort.Strings(unused)
	return unused, nil
}

// validateUnsubscribeURL is a no-op for an empty URL and otherwise requires
// an http or https scheme.
func validateUnsubscribeURL(rawURL string) error {
	if rawURL == "" {
		return nil
	}
	if !strings.HasPrefix(rawURL, "http://") && !strings.HasPrefix(rawURL, "https://") {
		return newValidationError(
			"unsubscribe URL must start with http:// or https://", "unsubscribe.url", rawURL)
	}
	return nil
}

// validateRecipients enforces the bulk recipient rules: 1 to max entries,
// each carrying both a name and a syntactically valid email.
func validateRecipients(recipients []Address, max int) error {
	if len(recipients) == 0 {
		return newValidationError(
			"the recipients list must contain at least one recipient", "recipients", nil)
	}
	if err := validateBoundedList(len(recipients), max, "recipients"); err != nil {
		return err
	}
	for idx, recipient := range recipients {
		field := fmt.Sprintf("recipients[%d]", idx)
		if strings.TrimSpace(recipient.Name) == "" {
			return newValidationError(
				"each recipient must include 'email' and 'name'", field, recipient.Email)
		}
		if err := validateEmail(recipient.Email, field+".email"); err != nil {
			return err
		}
	}
	return nil
}

// validateEmailList requires at least one entry, each passing the email
// rule. Used by the bare-list contact endpoints (remove, search).
func validateEmailList(emails []string) error {
	if len(emails) == 0 {
		return newValidationError("at least one email is required", "emails", nil)
	}
	for idx, email := range emails {
		if err := validateEmail(email, fmt.Sprintf("emails[%d]", idx)); err != nil {
			return err
		}
	}
	return nil
}

// validateContactBatch enforces the bulk contact rules: 1 to max entries,
// each carrying an 'email' key with a syntactically valid string value.
func validateContactBatch(contacts []map[string]any, max int, field string) error {
	if len(contacts) == 0 {
		return newValidationError(
			"the contacts list must contain at least one contact", field, nil)
	}
	if err := validateBoundedList(len(contacts), max, field); err != nil {
		return err
	}
	for idx, contact := range contacts {
		entryField := fmt.Sprintf("%s[%d].email", field, idx)
		raw, ok := contact["email"]
		if !ok {
			return newValidationError("each contact must include an 'email' key", entryField, nil)
		}
		email, ok := raw.(string)
		if !ok {
			return newValidationError("contact email must be a string", entryField, raw)
		}
		if err := validateEmail(email, entryField); err != nil {
			return err
		}
	}
	return nil
}
