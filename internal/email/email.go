package email

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"
)

type Client struct {
	ownerAddress   string
	noReplyAddress string
	siteName       string
	client         *http.Client
	apiKey         string
	baseURL        string
}

type Address struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
}

type EmailMessage struct {
	Sender      Address   `json:"sender"`
	To          []Address `json:"to"`
	Subject     string    `json:"subject"`
	ReplyTo     *Address  `json:"replyTo,omitempty"`
	TextContent string    `json:"textContent,omitempty"`
	HtmlContent string    `json:"htmlContent,omitempty"`
}

func NewClient(apiKey, baseURL, ownerAddress, noReplyAddress, siteName string) Client {
	return Client{
		client:         &http.Client{Timeout: 10 * time.Second},
		apiKey:         apiKey,
		ownerAddress:   ownerAddress,
		siteName:       siteName,
		noReplyAddress: noReplyAddress,
		baseURL:        strings.TrimRight(baseURL, "/"),
	}
}

// Enabled reports whether an API key was configured. Without one the contact form
// does not deliver messages.
func (e Client) Enabled() bool {
	return e.apiKey != ""
}

func (e Client) OwnerAddress() Address {
	return Address{Name: e.siteName, Email: e.ownerAddress}
}

func (e Client) NoReplySender() Address {
	return Address{Name: e.siteName, Email: e.noReplyAddress}
}

func (e Client) SendTextEmail(ctx context.Context, from, to Address, replyTo *Address, subject, text string) error {
	return e.send(ctx, EmailMessage{
		Sender:      from,
		To:          []Address{to},
		ReplyTo:     replyTo,
		Subject:     subject,
		TextContent: text,
	})
}

func (e Client) send(ctx context.Context, msg EmailMessage) error {
	if !e.Enabled() {
		return errors.New("email client has no api key")
	}
	reqData, err := json.Marshal(msg)
	if err != nil {
		return errors.Wrap(err, "unable to encode email")
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.baseURL+"/v3/smtp/email", bytes.NewReader(reqData))
	if err != nil {
		return errors.Wrap(err, "unable to create email request")
	}
	req.Header.Add("api-key", e.apiKey)
	req.Header.Add("content-type", "application/json")
	res, err := e.client.Do(req)
	if err != nil {
		return errors.Wrap(err, "unable to send email")
	}
	defer res.Body.Close()
	if res.StatusCode >= http.StatusBadRequest {
		errBody, err := io.ReadAll(res.Body)
		if err != nil {
			errBody = []byte(`unable to read body`)
		}
		return errors.Errorf("got status code %d when sending email: err %s", res.StatusCode, string(errBody))
	}
	return nil
}
