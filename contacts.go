package autosend

import (
	"context"
	"net/url"
)

// Contacts groups the contact management operations.
type Contacts struct {
	client *Client
}

func (c *Contacts) contactPayload(contact Contact) (map[string]any, error) {
	if err := validateEmail(contact.Email, "email"); err != nil {
		return nil, err
	}
	if err := validateNonEmpty(contact.FirstName, "firstName"); err != nil {
		return nil, err
	}
	if err := validateNonEmpty(contact.LastName, "lastName"); err != nil {
		return nil, err
	}

	payload := map[string]any{
		"email":     contact.Email,
		"firstName": contact.FirstName,
		"lastName":  contact.LastName,
	}
	if contact.UserID != "" {
		payload["userId"] = contact.UserID
	}
	if contact.CustomFields != nil {
		payload["customFields"] = contact.CustomFields
	}
	return payload, nil
}

// Create registers a new contact through POST /contacts.
func (c *Contacts) Create(ctx context.Context, contact Contact) (any, error) {
	payload, err := c.contactPayload(contact)
	if err != nil {
		return nil, err
	}
	return c.client.post(ctx, "/contacts", payload)
}

// Upsert creates or updates a contact keyed by email through
// POST /contacts/email.
func (c *Contacts) Upsert(ctx context.Context, contact Contact) (any, error) {
	payload, err := c.contactPayload(contact)
	if err != nil {
		return nil, err
	}
	return c.client.post(ctx, "/contacts/email", payload)
}

// Remove deletes one or more contacts by email through
// POST /contacts/remove. The request body is the bare email list.
func (c *Contacts) Remove(ctx context.Context, emails []string) (any, error) {
	if err := validateEmailList(emails); err != nil {
		return nil, err
	}
	return c.client.post(ctx, "/contacts/remove", emails)
}

// Get retrieves a contact by its ID through GET /contacts/{id}.
func (c *Contacts) Get(ctx context.Context, contactID string) (any, error) {
	if err := validateNonEmpty(contactID, "contactID"); err != nil {
		return nil, err
	}
	return c.client.get(ctx, "/contacts/"+url.PathEscape(contactID))
}

// SearchByEmails looks up contacts by their email addresses through
// POST /contacts/search/emails. The request body is the bare email list.
func (c *Contacts) SearchByEmails(ctx context.Context, emails []string) (any, error) {
	if err := validateEmailList(emails); err != nil {
		return nil, err
	}
	return c.client.post(ctx, "/contacts/search/emails", emails)
}

// BulkUpdate updates up to 100 contacts through POST /contacts/bulk-update.
// Each entry must carry an 'email' key with a syntactically valid value.
// runWorkflow controls whether the API triggers workflows for the updates.
func (c *Contacts) BulkUpdate(ctx context.Context, contacts []map[string]any, runWorkflow bool) (any, error) {
	if err := validateContactBatch(contacts, maxBatchSize, "contacts"); err != nil {
		return nil, err
	}
	payload := map[string]any{
		"contacts":    contacts,
		"runWorkflow": runWorkflow,
	}
	return c.client.post(ctx, "/contacts/bulk-update", payload)
}

// DeleteByUserID deletes a contact by the caller-assigned user ID through
// DELETE /contacts/email/userId/{userId}.
func (c *Contacts) DeleteByUserID(ctx context.Context, userID string) (any, error) {
	if err := validateNonEmpty(userID, "userID"); err != nil {
		return nil, err
	}
	return c.client.delete(ctx, "/contacts/email/userId/"+url.PathEscape(userID))
}

// DeleteByID deletes a contact by its ID through DELETE /contacts/{id}.
// This is a distinct operation from DeleteByUserID; the two endpoints are
// not interchangeable.
func (c *Contacts) DeleteByID(ctx context.Context, contactID string) (any, error) {
	if err := validateNonEmpty(contactID, "contactID"); err != nil {
		return nil, err
	}
	return c.client.delete(ctx, "/contacts/"+url.PathEscape(contactID))
}

// UnsubscribeGroups lists the unsubscribe groups for a contact through
// GET /contacts/{id}/unsubscribe-groups.
func (c *Contacts) UnsubscribeGroups(ctx context.Context, contactID string) (any, error) {
	if err := validateNonEmpty(contactID, "contactID"); err != nil {
		return nil, err
	}
	return c.client.get(ctx, "/contacts/"+url.PathEscape(contactID)+"/unsubscribe-groups")
}
