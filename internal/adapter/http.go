package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/utils"
	"github.com/MKhiriev/go-note-keeper/models"
)

// HashHeader carries the hex HMAC-SHA256 of the request body.
const HashHeader = "HashSHA256"

type httpServerAdapter struct {
	client  *utils.HTTPClient
	baseURL *url.URL

	// hasher signs request bodies when the shared hash key is set.
	hasher *utils.Hasher

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// It normalises and validates the base URL from adapterCfg.HTTPAddress and
// configures the underlying HTTP client with the resolved base URL and request
// timeout. When appCfg.HashKey is set every request body is signed with it.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, appCfg config.ClientApp, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	adapter := &httpServerAdapter{
		client:  utils.NewHTTPClient(baseURL.String(), adapterCfg.RequestTimeout),
		baseURL: baseURL,
		logger:  logger,
	}
	if appCfg.HashKey != "" {
		adapter.hasher = utils.NewHasher(appCfg.HashKey)
	}

	return adapter, nil
}

func normalizeBaseURL(raw string) (*url.URL, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, errors.New("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(strings.TrimRight(raw, "/"))
	if err != nil {
		return nil, err
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, errors.New("address must include host and scheme")
	}

	return u, nil
}

// SetToken implements [AuthClient]. It stores token (whitespace-trimmed) for
// use in the Authorization header of all subsequent authenticated requests.
func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [AuthClient].
func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Register implements [AuthClient]. It POSTs the credentials to
// /api/auth/register and keeps the bearer token from the Authorization
// response header.
func (h *httpServerAdapter) Register(ctx context.Context, user models.User) (models.Session, error) {
	return h.authenticate(ctx, "/api/auth/register", user)
}

// Login implements [AuthClient]. It POSTs the credentials to
// /api/auth/login and keeps the bearer token from the Authorization response
// header.
func (h *httpServerAdapter) Login(ctx context.Context, user models.User) (models.Session, error) {
	return h.authenticate(ctx, "/api/auth/login", user)
}

func (h *httpServerAdapter) authenticate(ctx context.Context, route string, user models.User) (models.Session, error) {
	var session models.Session

	req, err := h.jsonRequest(h.client.R().SetContext(ctx), models.User{Login: user.Login, Password: user.Password})
	if err != nil {
		return models.Session{}, err
	}

	resp, err := req.SetResult(&session).Post(route)
	if err != nil {
		return models.Session{}, fmt.Errorf("%w: auth request: %w", ErrTransport, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Session{}, err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.Session{}, fmt.Errorf("parse bearer token: %w", err)
	}
	if session.IdentityID == "" {
		return models.Session{}, errors.New("server response carries no identity")
	}

	h.SetToken(token)
	session.Token = token
	if session.Login == "" {
		session.Login = user.Login
	}

	return session, nil
}

// Logout implements [AuthClient]. A 401 from the server means the token is
// already unusable and counts as success.
func (h *httpServerAdapter) Logout(ctx context.Context) error {
	if h.Token() == "" {
		return nil
	}
	defer h.SetToken("")

	resp, err := h.authedRequest(ctx).Post("/api/auth/logout")
	if err != nil {
		return fmt.Errorf("%w: logout request: %w", ErrTransport, err)
	}

	if err = mapHTTPError(resp); err != nil && !errors.Is(err, ErrUnauthorized) {
		return err
	}

	return nil
}

// ListNotes implements [DataClient] with GET /api/notes/.
func (h *httpServerAdapter) ListNotes(ctx context.Context) ([]models.Note, error) {
	resp, err := h.authedRequest(ctx).Get("/api/notes/")
	if err != nil {
		return nil, fmt.Errorf("%w: list notes request: %w", ErrTransport, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	notes := make([]models.Note, 0)
	if err = json.Unmarshal(resp.Body(), &notes); err != nil {
		return nil, fmt.Errorf("decode notes response: %w", err)
	}

	return notes, nil
}

// CreateNote implements [DataClient] with POST /api/notes/. Only name,
// description and image leave the client.
func (h *httpServerAdapter) CreateNote(ctx context.Context, note models.Note) (models.Note, error) {
	var created models.Note

	req, err := h.jsonRequest(h.authedRequest(ctx), models.NewNoteRequest(note))
	if err != nil {
		return models.Note{}, err
	}

	resp, err := req.SetResult(&created).Post("/api/notes/")
	if err != nil {
		return models.Note{}, fmt.Errorf("%w: create note request: %w", ErrTransport, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Note{}, err
	}

	return created, nil
}

// DeleteNote implements [DataClient] with DELETE /api/notes/{id}.
func (h *httpServerAdapter) DeleteNote(ctx context.Context, id string) (models.Note, error) {
	var deleted models.Note

	resp, err := h.authedRequest(ctx).
		SetPathParam("id", id).
		SetResult(&deleted).
		Delete("/api/notes/{id}")
	if err != nil {
		return models.Note{}, fmt.Errorf("%w: delete note request: %w", ErrTransport, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Note{}, err
	}

	return deleted, nil
}

// PutObject implements [BlobClient] with PUT /api/storage/objects/{path}.
func (h *httpServerAdapter) PutObject(ctx context.Context, objectPath string, data []byte) (models.ObjectReceipt, error) {
	var receipt models.ObjectReceipt

	req := h.signedRequest(h.authedRequest(ctx), data).
		SetHeader("Content-Type", "application/octet-stream").
		SetResult(&receipt)

	resp, err := req.Put("/api/storage/objects/" + escapePath(objectPath))
	if err != nil {
		return models.ObjectReceipt{}, fmt.Errorf("%w: put object request: %w", ErrTransport, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ObjectReceipt{}, err
	}

	return receipt, nil
}

// GetDownloadURL implements [BlobClient] with POST /api/storage/url. The
// server answers with a relative URL which is resolved against the base URL.
func (h *httpServerAdapter) GetDownloadURL(ctx context.Context, objectPath string) (models.DownloadURL, error) {
	var link models.DownloadURL

	req, err := h.jsonRequest(h.authedRequest(ctx), models.DownloadURLRequest{Path: objectPath})
	if err != nil {
		return models.DownloadURL{}, err
	}

	resp, err := req.SetResult(&link).Post("/api/storage/url")
	if err != nil {
		return models.DownloadURL{}, fmt.Errorf("%w: download url request: %w", ErrTransport, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.DownloadURL{}, err
	}

	resolved, err := h.resolve(link.URL)
	if err != nil {
		return models.DownloadURL{}, fmt.Errorf("invalid download url %q: %w", link.URL, err)
	}
	link.URL = resolved

	return link, nil
}

// ServerVersion implements [ServerAdapter] with GET /api/version/.
func (h *httpServerAdapter) ServerVersion(ctx context.Context) (string, error) {
	resp, err := h.client.R().SetContext(ctx).Get("/api/version/")
	if err != nil {
		return "", fmt.Errorf("%w: version request: %w", ErrTransport, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.String()), nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

// jsonRequest marshals v once so the integrity hash covers the exact bytes
// on the wire.
func (h *httpServerAdapter) jsonRequest(req *resty.Request, v any) (*resty.Request, error) {
	payload, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode request body: %w", err)
	}

	return h.signedRequest(req, payload).SetHeader("Content-Type", "application/json"), nil
}

func (h *httpServerAdapter) signedRequest(req *resty.Request, body []byte) *resty.Request {
	if h.hasher != nil {
		req.SetHeader(HashHeader, h.hasher.SumHex(body))
	}
	return req.SetBody(body)
}

func (h *httpServerAdapter) resolve(raw string) (string, error) {
	if raw == "" {
		return "", errors.New("empty url")
	}

	ref, err := url.Parse(raw)
	if err != nil {
		return "", err
	}

	return h.baseURL.ResolveReference(ref).String(), nil
}

func escapePath(objectPath string) string {
	segments := strings.Split(objectPath, "/")
	for i, segment := range segments {
		segments[i] = url.PathEscape(segment)
	}
	return strings.Join(segments, "/")
}
