package autosend

import "context"

const (
	endpointSend = "/mails/send"
	endpointBulk = "/mails/bulk"
)

// Sending groups the email delivery operations.
type Sending struct {
	client *Client
}

// SendEmail delivers a single email through POST /mails/send. All inputs
// are validated locally before the request is issued; optional fields are
// omitted from the payload entirely when absent.
func (s *Sending) SendEmail(ctx context.Context, params SendEmailParams) (any, error) {
	if err := validateEmail(params.To.Email, "to.email"); err != nil {
		return nil, err
	}
	if err := validateEmail(params.From.Email, "from.email"); err != nil {
		return nil, err
	}
	if err := validateNonEmpty(params.Subject, "subject"); err != nil {
		return nil, err
	}
	if err := validateNonEmpty(params.HTML, "html"); err != nil {
		return nil, err
	}
	unused, err := validateTemplateData(params.HTML, params.DynamicData)
	if err != nil {
		return nil, err
	}
	if params.ReplyTo != nil {
		if err := validateEmail(params.ReplyTo.Email, "replyTo.email"); err != nil {
			return nil, err
		}
	}
	if err := validateAttachments(params.Attachments); err != nil {
		return nil, err
	}
	if params.Unsubscribe != nil {
		if err := validateUnsubscribeURL(params.Unsubscribe.URL); err != nil {
			return nil, err
		}
	}

	s.client.logUnusedKeys(endpointSend, unused)

	payload := map[string]any{
		"to":          params.To,
		"from":        params.From,
		"subject":     params.Subject,
		"html":        params.HTML,
		"dynamicData": dynamicDataOrEmpty(params.DynamicData),
	}
	if params.ReplyTo != nil {
		payload["replyTo"] = *params.ReplyTo
	}
	if len(params.Attachments) > 0 {
		payload["attachments"] = params.Attachments
	}
	if params.Unsubscribe != nil {
		payload["unsubscribe"] = *params.Unsubscribe
	}

	return s.client.post(ctx, endpointSend, payload)
}

// SendBulk delivers up to 100 personalised emails through POST /mails/bulk.
// Each recipient must carry both an email and a name. The bulk endpoint
// does not accept attachments.
func (s *Sending) SendBulk(ctx context.Context, params SendBulkParams) (any, error) {
	if err := validateRecipients(params.Recipients, maxRecipients); err != nil {
		return nil, err
	}
	if err := validateEmail(params.From.Email, "from.email"); err != nil {
		return nil, err
	}
	if err := validateNonEmpty(params.Subject, "subject"); err != nil {
		return nil, err
	}
	if err := validateNonEmpty(params.HTML, "html"); err != nil {
		return nil, err
	}
	unused, err := validateTemplateData(params.HTML, params.DynamicData)
	if err != nil {
		return nil, err
	}
	if params.ReplyTo != nil {
		if err := validateEmail(params.ReplyTo.Email, "replyTo.email"); err != nil {
			return nil, err
		}
	}

	s.client.logUnusedKeys(endpointBulk, unused)

	payload := map[string]any{
		"recipients":  params.Recipients,
		"from":        params.From,
		"subject":     params.Subject,
		"html":        params.HTML,
		"dynamicData": dynamicDataOrEmpty(params.DynamicData),
	}
	if params.ReplyTo != nil {
		payload["replyTo"] = *params.ReplyTo
	}

	return s.client.post(ctx, endpointBulk, payload)
}

// dynamicDataOrEmpty keeps dynamicData present in every payload: a nil map
// would serialize as JSON null.
func dynamicDataOrEmpty(data map[string]any) map[string]any {
	if data == nil {
		return map[string]any{}
	}
	return data
}
