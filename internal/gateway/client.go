package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/http/cookiejar"
	"strings"
	"time"

	"github.com/researchhub/hubcli/internal/common"
	"github.com/researchhub/hubcli/internal/logging"
	"github.com/researchhub/hubcli/internal/models"
)

// MaxUploadSize mirrors the backend's hard limit so oversized files are
// rejected before any bytes hit the wire.
const MaxUploadSize = 20 * 1024 * 1024

type Client struct {
	httpClient *http.Client
	baseURL    string
	log        logging.Logger
}

type Option func(*Client)

// WithHTTPClient replaces the default HTTP client. The replacement should
// carry its own cookie jar if session calls are to work.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithTimeout bounds every request made by the default HTTP client.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.httpClient.Timeout = d }
}

// New builds a gateway for the backend at baseURL. The default HTTP client
// keeps the session cookie in an in-memory jar and times out after 30s.
func New(baseURL string, log logging.Logger, opts ...Option) (*Client, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("cookie jar: %w", err)
	}

	c := &Client{
		httpClient: &http.Client{
			Jar:     jar,
			Timeout: 30 * time.Second,
		},
		baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		log:     log,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// ---- auth ----

func (c *Client) Register(ctx context.Context, username, email, password string) (*models.User, error) {
	body := map[string]string{"username": username, "email": email, "password": password}
	var out models.User
	if err := c.doJSON(ctx, http.MethodPost, "/auth/register", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Login authenticates and lets the backend set the session cookie.
// The success body is plain text and is discarded.
func (c *Client) Login(ctx context.Context, email, password string) error {
	body := map[string]string{"email": email, "password": password}
	return c.doJSON(ctx, http.MethodPost, "/auth/login", body, nil)
}

func (c *Client) Logout(ctx context.Context) error {
	return c.doJSON(ctx, http.MethodPost, "/auth/logout", nil, nil)
}

func (c *Client) Me(ctx context.Context) (*models.User, error) {
	var out models.User
	if err := c.doJSON(ctx, http.MethodGet, "/auth/me", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ---- repositories ----

func (c *Client) CreateRepo(ctx context.Context, name, description string) (*models.Repository, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, common.ErrEmptyTitle
	}
	body := map[string]string{"name": name, "description": description}
	var out models.Repository
	if err := c.doJSON(ctx, http.MethodPost, "/repos", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListGlobalRepos(ctx context.Context) ([]models.Repository, error) {
	var out []models.Repository
	if err := c.doJSON(ctx, http.MethodGet, "/repos/global", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ListMyRepos(ctx context.Context) ([]models.Repository, error) {
	var out []models.Repository
	if err := c.doJSON(ctx, http.MethodGet, "/repos/my", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// DeleteRepo removes a repository. The backend cascades the delete to every
// paper and version it owns; there is no undo.
func (c *Client) DeleteRepo(ctx context.Context, repoID string) error {
	return c.doJSON(ctx, http.MethodDelete, "/repos/"+repoID, nil, nil)
}

// ---- papers ----

// UploadPaper creates a new paper with version 1. Title is trimmed; an empty
// title, a missing file, a disallowed extension or an oversized payload are
// local validation errors and never reach the wire.
func (c *Client) UploadPaper(ctx context.Context, repoID, title, fileName string, content []byte) (*models.PaperDocument, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, common.ErrEmptyTitle
	}
	if err := validateUpload(fileName, content); err != nil {
		return nil, err
	}

	fields := map[string]string{"repoId": repoID, "title": title}
	var out models.PaperDocument
	if err := c.doMultipart(ctx, "/papers/upload", fields, fileName, content, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdatePaper appends a new version to an existing paper and returns the
// appended version. Existing versions are never touched.
func (c *Client) UpdatePaper(ctx context.Context, paperID, fileName string, content []byte) (*models.PaperVersion, error) {
	if err := validateUpload(fileName, content); err != nil {
		return nil, err
	}

	var out models.PaperDocument
	if err := c.doMultipart(ctx, "/papers/"+paperID+"/update", nil, fileName, content, &out); err != nil {
		return nil, err
	}

	for i := range out.Versions {
		if out.Versions[i].VersionNumber == out.CurrentVersion {
			return &out.Versions[i], nil
		}
	}
	return nil, fmt.Errorf("version %d missing from update response: %w", out.CurrentVersion, common.ErrNotFound)
}

func (c *Client) ListPapers(ctx context.Context, repoID string) ([]models.Paper, error) {
	var out []models.Paper
	if err := c.doJSON(ctx, http.MethodGet, "/papers/by-repo/"+repoID, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListVersions returns a paper's versions in the order the backend stores
// them. Display ordering is the caller's concern.
func (c *Client) ListVersions(ctx context.Context, paperID string) ([]models.PaperVersion, error) {
	var doc models.PaperDocument
	if err := c.doJSON(ctx, http.MethodGet, "/papers/"+paperID+"/versions", nil, &doc); err != nil {
		return nil, err
	}
	return doc.Versions, nil
}

func (c *Client) DeletePaper(ctx context.Context, paperID string) error {
	return c.doJSON(ctx, http.MethodDelete, "/papers/"+paperID, nil, nil)
}

func (c *Client) FetchActivity(ctx context.Context, repoID string) ([]models.ActivityEvent, error) {
	var out []models.ActivityEvent
	if err := c.doJSON(ctx, http.MethodGet, "/papers/activity/"+repoID, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Download streams one version (0 = current) into w and returns the file
// name advertised by the server, if any.
func (c *Client) Download(ctx context.Context, paperID string, versionNumber int, w io.Writer) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.DownloadURL(paperID, versionNumber), nil)
	if err != nil {
		return "", err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", common.ErrNetworkFailure, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", readServerError(resp)
	}

	name := ""
	if _, params, err := mime.ParseMediaType(resp.Header.Get("Content-Disposition")); err == nil {
		name = params["filename"]
	}

	if _, err := io.Copy(w, resp.Body); err != nil {
		return "", fmt.Errorf("%w: %v", common.ErrNetworkFailure, err)
	}
	return name, nil
}

// ---- transport ----

func (c *Client) doJSON(ctx context.Context, method, path string, body any, out any) error {
	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		r = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, r)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return c.send(req, out)
}

func (c *Client) doMultipart(ctx context.Context, path string, fields map[string]string, fileName string, content []byte, out any) error {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		if err := mw.WriteField(k, v); err != nil {
			return err
		}
	}
	fw, err := mw.CreateFormFile("file", fileName)
	if err != nil {
		return err
	}
	if _, err := fw.Write(content); err != nil {
		return err
	}
	if err := mw.Close(); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	return c.send(req, out)
}

func (c *Client) send(req *http.Request, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		if c.log != nil {
			c.log.Warn(req.Context(), "request failed", "method", req.Method, "path", req.URL.Path, "err", err)
		}
		return fmt.Errorf("%w: %v", common.ErrNetworkFailure, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if out == nil {
			// drain so the connection can be reused
			_, _ = io.Copy(io.Discard, resp.Body)
			return nil
		}
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
		return nil
	}

	serr := readServerError(resp)
	if c.log != nil {
		c.log.Warn(req.Context(), "server rejected request",
			"method", req.Method, "path", req.URL.Path, "status", resp.StatusCode)
	}
	return serr
}

// readServerError extracts a message from a non-2xx body. The backend mixes
// plain-text and JSON error bodies, so JSON is attempted first with raw text
// as the fallback.
func readServerError(resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	msg := strings.TrimSpace(string(raw))

	var eb struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &eb); err == nil {
		if eb.Error != "" {
			msg = eb.Error
		} else if eb.Message != "" {
			msg = eb.Message
		}
	}

	return &ServerError{Status: resp.StatusCode, Message: msg}
}

func validateUpload(fileName string, content []byte) error {
	if fileName == "" || len(content) == 0 {
		return common.ErrNoFile
	}
	lower := strings.ToLower(fileName)
	if !strings.HasSuffix(lower, ".pdf") && !strings.HasSuffix(lower, ".doc") && !strings.HasSuffix(lower, ".docx") {
		return common.ErrFileTypeNotAllowed
	}
	if len(content) > MaxUploadSize {
		return common.ErrFileTooLarge
	}
	return nil
}
