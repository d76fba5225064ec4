package autosend

// Address identifies a mail participant. Name is optional and omitted from
// payloads when empty.
type Address struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

// Attachment carries a single file for an outbound email. Content is passed
// through untouched and is expected to already be in the shape the API
// accepts (base64-encoded data plus filename).
type Attachment struct {
	Filename    string `json:"filename"`
	Content     string `json:"content,omitempty"`
	ContentType string `json:"contentType,omitempty"`
}

// UnsubscribeConfig controls the unsubscribe handling for a message. When
// URL is set it must use the http or https scheme.
type UnsubscribeConfig struct {
	URL     string `json:"url,omitempty"`
	GroupID string `json:"groupId,omitempty"`
}

// SendEmailParams describes a single email for Sending.SendEmail. Every
// {{placeholder}} appearing in HTML must have a matching key in DynamicData;
// surplus keys are permitted.
type SendEmailParams struct {
	To          Address
	From        Address
	Subject     string
	HTML        string
	DynamicData map[string]any
	ReplyTo     *Address
	Attachments []Attachment
	Unsubscribe *UnsubscribeConfig
}

// SendBulkParams describes a bulk send for Sending.SendBulk. Recipients is
// bounded to 100 entries and each entry must carry both email and name.
// Attachments are not supported on the bulk endpoint.
type SendBulkParams struct {
	Recipients  []Address
	From        Address
	Subject     string
	HTML        string
	DynamicData map[string]any
	ReplyTo     *Address
}

// Contact describes a contact for create and upsert operations. UserID and
// CustomFields are optional and omitted from payloads when absent.
type Contact struct {
	Email        string
	FirstName    string
	LastName     string
	UserID       string
	CustomFields map[string]any
}
