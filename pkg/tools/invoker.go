// Package tools implements the tool invocation capability: resolving a
// tool definition, validating the payload, rendering the HTTP call with
// the user's OAuth token, and mapping upstream failures to composed
// error codes the executor and formatter understand.
package tools

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/braid-labs/braid/pkg/models"
	"github.com/braid-labs/braid/pkg/registry"
)

// Call is one tool invocation request. EventID feeds the event_id
// idempotency policy when the run captured an upstream event.
type Call struct {
	UserID   string
	ToolName string
	Payload  map[string]any
	EventID  string
}

// Invoker is the capability injected into the executor and the
// autonomous loop.
type Invoker interface {
	Invoke(ctx context.Context, call Call) models.ToolResult
}

// TokenSource hands out a user's plaintext OAuth access token for a
// service provider.
type TokenSource interface {
	AccessToken(ctx context.Context, userID, provider string) (string, error)
}

// HTTPInvoker invokes tools over HTTP per their registry definition.
type HTTPInvoker struct {
	registry *registry.Registry
	tokens   TokenSource
	client   *http.Client
}

// NewHTTPInvoker creates an invoker. timeout bounds each HTTP call on top
// of the caller's context.
func NewHTTPInvoker(reg *registry.Registry, tokens TokenSource, timeout time.Duration) *HTTPInvoker {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &HTTPInvoker{
		registry: reg,
		tokens:   tokens,
		client:   &http.Client{Timeout: timeout},
	}
}

// Invoke resolves and executes one tool call. Failures never return an
// error value: every outcome is a ToolResult, with ErrorCode set on
// failure.
func (inv *HTTPInvoker) Invoke(ctx context.Context, call Call) models.ToolResult {
	tool, err := inv.registry.GetTool(call.ToolName)
	if err != nil {
		return failure(fmt.Sprintf("unknown_tool:%s", call.ToolName))
	}

	payload := call.Payload
	if payload == nil {
		payload = map[string]any{}
	}

	if code := ValidatePayload(tool, payload); code != "" {
		return failure(code)
	}

	path, body, code := renderPath(tool, payload)
	if code != "" {
		return failure(code)
	}

	token, err := inv.tokens.AccessToken(ctx, call.UserID, tool.Service)
	if err != nil {
		return failure(fmt.Sprintf("token_missing:%s", tool.Service))
	}

	req, err := buildRequest(ctx, tool, path, body, call.EventID)
	if err != nil {
		return failure(composeError(tool, 0, "request_build_failed", err.Error(), ""))
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := inv.client.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || isTimeout(err) {
			return failure(composeError(tool, 0, "timeout", err.Error(), ""))
		}
		return failure(composeError(tool, 0, "transport_error", err.Error(), ""))
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<20))

	if resp.StatusCode >= 400 {
		upstreamCode, message := upstreamDiagnostics(raw)
		requestID := resp.Header.Get("X-Request-Id")
		return failure(composeStatusError(tool, resp.StatusCode, upstreamCode, message, requestID))
	}

	var data any
	if err := json.Unmarshal(raw, &data); err != nil || data == nil {
		data = map[string]any{"raw_text": string(raw)}
	}
	return models.ToolResult{OK: true, Data: data}
}

func failure(code string) models.ToolResult {
	return models.ToolResult{OK: false, ErrorCode: code}
}

// renderPath substitutes path parameters into the template and returns
// the body payload with those keys removed.
func renderPath(tool *registry.ToolDefinition, payload map[string]any) (string, map[string]any, string) {
	path := tool.PathTemplate
	params := tool.PathParams()

	body := make(map[string]any, len(payload))
	for k, v := range payload {
		body[k] = v
	}

	for _, key := range params {
		v, ok := payload[key]
		if !ok {
			return "", nil, fmt.Sprintf("missing_path_param:%s", key)
		}
		path = strings.ReplaceAll(path, "{"+key+"}", url.PathEscape(fmt.Sprintf("%v", v)))
		delete(body, key)
	}
	return path, body, ""
}

func buildRequest(ctx context.Context, tool *registry.ToolDefinition, path string, body map[string]any, eventID string) (*http.Request, error) {
	endpoint := strings.TrimRight(tool.BaseURL, "/") + path

	var req *http.Request
	var err error
	switch tool.HTTPMethod {
	case http.MethodGet, http.MethodDelete:
		req, err = http.NewRequestWithContext(ctx, tool.HTTPMethod, endpoint, nil)
		if err != nil {
			return nil, err
		}
		q := req.URL.Query()
		for k, v := range body {
			q.Set(k, fmt.Sprintf("%v", v))
		}
		req.URL.RawQuery = q.Encode()
	default:
		data, marshalErr := json.Marshal(body)
		if marshalErr != nil {
			return nil, marshalErr
		}
		req, err = http.NewRequestWithContext(ctx, tool.HTTPMethod, endpoint, bytes.NewReader(data))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Content-Type", "application/json")
	}

	if key := idempotencyKey(tool, body, eventID); key != "" {
		req.Header.Set("Idempotency-Key", key)
	}
	return req, nil
}

// idempotencyKey derives the Idempotency-Key header value per the tool's
// policy; empty means no header.
func idempotencyKey(tool *registry.ToolDefinition, body map[string]any, eventID string) string {
	switch tool.IdempotencyKey {
	case registry.IdempotencyEventID:
		if eventID == "" {
			return ""
		}
		return tool.ToolName + ":" + eventID
	case registry.IdempotencyHash:
		return PayloadHash(body)
	default:
		return ""
	}
}

// PayloadHash is the SHA-256 of the canonical JSON of a payload.
// encoding/json emits map keys in sorted order, so key ordering in the
// source payload never changes the hash.
func PayloadHash(payload map[string]any) string {
	data, err := json.Marshal(payload)
	if err != nil {
		return ""
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// composeStatusError maps an upstream HTTP status through the tool's
// error map (default TOOL_FAILED) into the composed diagnostic format.
func composeStatusError(tool *registry.ToolDefinition, status int, upstreamCode, message, requestID string) string {
	mapped, ok := tool.ErrorMap[strconv.Itoa(status)]
	if !ok {
		mapped = string(models.ErrToolFailed)
	}
	return fmt.Sprintf("%s:%s|status=%d|code=%s|message=%s|request_id=%s",
		tool.ToolName, mapped, status, upstreamCode, sanitize(message), requestID)
}

func composeError(tool *registry.ToolDefinition, status int, upstreamCode, message, requestID string) string {
	mapped := string(models.ErrToolFailed)
	if upstreamCode == "timeout" {
		mapped = string(models.ErrToolTimeout)
	}
	return fmt.Sprintf("%s:%s|status=%d|code=%s|message=%s|request_id=%s",
		tool.ToolName, mapped, status, upstreamCode, sanitize(message), requestID)
}

// CanonicalCode extracts the mapped canonical code from a composed
// "{tool}:{mapped}|k=v|..." error_code string. Codes without the
// composed diagnostic tail pass through unchanged.
func CanonicalCode(errorCode string) string {
	pipe := strings.Index(errorCode, "|")
	if pipe < 0 {
		return errorCode
	}
	head := errorCode[:pipe]
	if idx := strings.Index(head, ":"); idx >= 0 {
		return head[idx+1:]
	}
	return head
}

// upstreamDiagnostics pulls the error code and message out of an
// upstream JSON error body, best effort.
func upstreamDiagnostics(raw []byte) (string, string) {
	var body map[string]any
	if err := json.Unmarshal(raw, &body); err != nil {
		return "", truncateDetail(string(raw))
	}

	code, _ := body["code"].(string)
	message, _ := body["message"].(string)
	if nested, ok := body["error"].(map[string]any); ok {
		if code == "" {
			code, _ = nested["code"].(string)
		}
		if message == "" {
			message, _ = nested["message"].(string)
		}
	} else if errStr, ok := body["error"].(string); ok && message == "" {
		message = errStr
	}
	return code, truncateDetail(message)
}

func sanitize(message string) string {
	message = strings.ReplaceAll(message, "|", "/")
	message = strings.ReplaceAll(message, "\n", " ")
	return truncateDetail(message)
}

func truncateDetail(s string) string {
	const max = 300
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}

func isTimeout(err error) bool {
	var netErr interface{ Timeout() bool }
	return errors.As(err, &netErr) && netErr.Timeout()
}
