package backendclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"helpdesk/internal/shared/authorization"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

const requestTimeout = 8 * time.Second

// Ticket and Report mirror the API's wire shapes.
type Ticket struct {
	ID          uint      `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	CreatorID   uint      `json:"creator_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type Report struct {
	ID            uint      `json:"id"`
	TicketID      uint      `json:"ticket_id"`
	AuthorID      uint      `json:"author_id"`
	Comment       string    `json:"comment"`
	AttachmentURL *string   `json:"attachment_url"`
	CreatedAt     time.Time `json:"created_at"`
}

type User struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	IsAdmin  bool   `json:"is_admin"`
	IsStaff  bool   `json:"is_staff"`
}

type errorBody struct {
	Error struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

// Client is a typed HTTP client for the ticket API. Every call carries a
// bounded timeout so a stalled backend degrades the UI instead of hanging
// it.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     logger.Interface
}

func NewClient(baseURL string, log logger.Interface) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: requestTimeout},
		logger:     log,
	}
}

func actorParams(actor authorization.Actor) url.Values {
	isAdmin, isStaff := actor.Role.Flags()
	params := url.Values{}
	params.Set("user_id", strconv.FormatUint(uint64(actor.UserID), 10))
	params.Set("is_admin", strconv.FormatBool(isAdmin))
	params.Set("is_staff", strconv.FormatBool(isStaff))
	return params
}

func (c *Client) Login(ctx context.Context, username, password string) (*User, error) {
	var user User
	err := c.postJSON(ctx, "/auth/login", map[string]any{
		"username": username,
		"password": password,
	}, &user)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) CreateUser(ctx context.Context, username, password string, isAdmin, isStaff bool) (*User, error) {
	var user User
	err := c.postJSON(ctx, "/auth/users", map[string]any{
		"username": username,
		"password": password,
		"is_admin": isAdmin,
		"is_staff": isStaff,
	}, &user)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) ListTickets(ctx context.Context, actor authorization.Actor) ([]Ticket, error) {
	var tickets []Ticket
	if err := c.getJSON(ctx, "/tickets?"+actorParams(actor).Encode(), &tickets); err != nil {
		return nil, err
	}
	return tickets, nil
}

func (c *Client) GetTicket(ctx context.Context, ticketID uint) (*Ticket, error) {
	var ticket Ticket
	if err := c.getJSON(ctx, fmt.Sprintf("/tickets/%d", ticketID), &ticket); err != nil {
		return nil, err
	}
	return &ticket, nil
}

func (c *Client) ListReports(ctx context.Context, ticketID uint) ([]Report, error) {
	var reports []Report
	if err := c.getJSON(ctx, fmt.Sprintf("/tickets/%d/reports", ticketID), &reports); err != nil {
		return nil, err
	}
	return reports, nil
}

func (c *Client) CreateTicket(ctx context.Context, actor authorization.Actor, title, description string) error {
	return c.postJSON(ctx, "/tickets", map[string]any{
		"title":       title,
		"description": description,
		"creator_id":  actor.UserID,
	}, nil)
}

func (c *Client) UpdateTicketStatus(ctx context.Context, actor authorization.Actor, ticketID uint, status string) error {
	path := fmt.Sprintf("/tickets/%d?%s", ticketID, actorParams(actor).Encode())
	body, err := json.Marshal(map[string]any{"status": status})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req, nil)
}

func (c *Client) DeleteTicket(ctx context.Context, actor authorization.Actor, ticketID uint) error {
	path := fmt.Sprintf("/tickets/%d?%s", ticketID, actorParams(actor).Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	return c.do(req, nil)
}

// AddReport forwards a comment with an optional attachment as multipart
// form data.
func (c *Client) AddReport(ctx context.Context, actor authorization.Actor, ticketID uint, comment, filename string, file io.Reader) error {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	if err := mw.WriteField("comment", comment); err != nil {
		return err
	}
	if file != nil && filename != "" {
		fw, err := mw.CreateFormFile("file", filename)
		if err != nil {
			return err
		}
		if _, err := io.Copy(fw, file); err != nil {
			return err
		}
	}
	if err := mw.Close(); err != nil {
		return err
	}

	path := fmt.Sprintf("/tickets/%d/reports?%s", ticketID, actorParams(actor).Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	return c.do(req, nil)
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	return c.do(req, out)
}

func (c *Client) postJSON(ctx context.Context, path string, body any, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req, out)
}

// do executes the request and maps non-2xx responses onto the shared
// error taxonomy so web handlers can branch on error kind.
func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warnw("backend unavailable", "method", req.Method, "path", req.URL.Path, "error", err)
		return errors.NewInternalError("backend unavailable")
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return c.errorFromResponse(resp)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.NewInternalError("malformed backend response")
	}
	return nil
}

func (c *Client) errorFromResponse(resp *http.Response) error {
	var body errorBody
	msg := http.StatusText(resp.StatusCode)
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil && body.Error.Message != "" {
		msg = body.Error.Message
	}

	switch resp.StatusCode {
	case http.StatusNotFound:
		return errors.NewNotFoundError(msg)
	case http.StatusForbidden:
		return errors.NewForbiddenError(msg)
	case http.StatusUnauthorized:
		return errors.NewUnauthorizedError(msg)
	case http.StatusConflict:
		return errors.NewConflictError(msg)
	case http.StatusUnprocessableEntity:
		return errors.NewValidationError(msg)
	default:
		return errors.NewInternalError(msg)
	}
}
