// Package autosend is a Go client for the Autosend transactional-email
// HTTP API. It authenticates requests with a bearer API key, validates
// caller-supplied data before anything leaves the process, and maps
// HTTP-level outcomes to a small error taxonomy.
//
// # Client Creation
//
//	client, err := autosend.New("YOUR_API_KEY")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	resp, err := client.Sending.SendEmail(ctx, autosend.SendEmailParams{
//		To:          autosend.Address{Email: "customer@example.com", Name: "Jane Smith"},
//		From:        autosend.Address{Email: "hello@mail.yourdomain.com", Name: "Your Company"},
//		Subject:     "Welcome!",
//		HTML:        "<h1>Hello {{name}}!</h1>",
//		DynamicData: map[string]any{"name": "Jane"},
//	})
//
// [NewFromEnv] builds a client from AUTOSEND_API_KEY and AUTOSEND_BASE_URL,
// loading a .env file when present.
//
// # Validation
//
// Every operation validates its inputs locally and fails fast with a
// [*ValidationError] before any request is sent: email syntax, recipient
// and attachment bounds, blocked attachment extensions, template
// placeholders against dynamic data, and unsubscribe URL schemes. The
// Field and Value attributes identify the offending input.
//
// # Error Handling
//
// Failures surface synchronously as one of:
//
//   - [*ConfigurationError]: invalid client construction input.
//   - [*ValidationError]: local rule failure; no request was sent.
//   - [*AuthenticationError]: the API rejected the key (HTTP 401).
//   - [*RequestError]: transport failure (timeout, DNS, refused); wraps
//     the cause for errors.Is/As.
//   - [*APIError]: any other non-2xx status, carrying the status code and
//     raw body.
//
// The client performs a single attempt per call with a fixed 15 second
// timeout; retry policy is left to the caller.
//
// # Concurrency
//
// A [Client] holds only immutable state and is safe for concurrent use.
package autosend
