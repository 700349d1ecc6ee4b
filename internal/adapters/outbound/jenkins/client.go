package jenkins

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/jenkinslint/jenkinslint/internal/domain"
)

const validateEndpoint = "/pipeline-model-converter/validate"

// Client implements domain.RemoteLinter against the Jenkins
// pipeline-model-converter endpoint.
type Client struct {
	httpClient *http.Client
}

// New creates a Client whose requests time out after the given duration.
func New(timeout time.Duration) *Client {
	return &Client{httpClient: &http.Client{Timeout: timeout}}
}

// Lint POSTs the target content as multipart form data under the field name
// "jenkinsfile". The verdict comes from the response body, not the status
// code: Jenkins returns HTTP 200 even for validation failures and signals
// them with the substring "Errors" in the body.
func (c *Client) Lint(ctx context.Context, target domain.Target, creds domain.Credentials) domain.Outcome {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	field, err := writer.CreateFormField("jenkinsfile")
	if err != nil {
		return domain.ErrorOutcome(fmt.Sprintf("building request: %v", err))
	}
	if _, err := field.Write([]byte(target.Content)); err != nil {
		return domain.ErrorOutcome(fmt.Sprintf("building request: %v", err))
	}
	if err := writer.Close(); err != nil {
		return domain.ErrorOutcome(fmt.Sprintf("building request: %v", err))
	}

	url := strings.TrimSuffix(creds.URL, "/") + validateEndpoint
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, body)
	if err != nil {
		return domain.ErrorOutcome(fmt.Sprintf("building request: %v", err))
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	if !creds.Anonymous() {
		req.SetBasicAuth(creds.Username, creds.Token)
	}

	// Single attempt; retries are the caller's responsibility.
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domain.ErrorOutcome(fmt.Sprintf("connecting to Jenkins: %v", err))
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return domain.ErrorOutcome(fmt.Sprintf("reading Jenkins response: %v", err))
	}

	respBody := string(data)
	if strings.Contains(respBody, "Errors") {
		// The full body is the message; Jenkins puts the line/column
		// details in there and nowhere else.
		return domain.InvalidOutcome(respBody)
	}
	return domain.ValidOutcome()
}
