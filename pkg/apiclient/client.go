// Package apiclient はGC Rental APIへのHTTPクライアントを提供します。
// アクセストークンの付与、期限切れ時の自動リフレッシュ、リトライを管理します。
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"sync"
	"time"
)

const defaultTimeout = 30 * time.Second

// Request はAPIリクエストの仕様を定義します
// リトライ時に新しいhttp.Requestを再構築できるよう、Bodyはバイト列で保持します
type Request struct {
	Method string
	Path   string
	Body   any
	Header http.Header
}

// Client はアクセストークンのライフサイクルを管理するAPIクライアントです
// リフレッシュトークンはHttpOnlyクッキーとしてcookiejarに保持されます
type Client struct {
	baseURL    string
	httpClient *http.Client

	mu          sync.Mutex
	accessToken string
	refreshing  *refreshCall

	onSessionExpired func()
}

// refreshCall は一度きりのリフレッシュ実行と、その結果の共有を表します
type refreshCall struct {
	once sync.Once
	err  error
}

// Option はClientのオプションを定義します
type Option func(*Client)

// WithHTTPClient はHTTPクライアントを差し替えます
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithSessionExpiredHandler はセッション失効時のコールバックを設定します
// リフレッシュに失敗した場合に一度だけ呼ばれます
func WithSessionExpiredHandler(fn func()) Option {
	return func(c *Client) {
		c.onSessionExpired = fn
	}
}

// NewClient は新しいClientを作成します
func NewClient(baseURL string, opts ...Option) (*Client, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create cookie jar: %w", err)
	}

	c := &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
			Jar:     jar,
		},
		refreshing: &refreshCall{},
	}

	for _, opt := range opts {
		opt(c)
	}

	// cookiejarが未設定のHTTPクライアントを注入された場合も
	// リフレッシュクッキーを保持できるようにする
	if c.httpClient.Jar == nil {
		c.httpClient.Jar = jar
	}

	return c, nil
}

// SetAccessToken はアクセストークンを設定します（ログイン直後など）
func (c *Client) SetAccessToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.accessToken = token
}

// AccessToken は現在のアクセストークンを返します
func (c *Client) AccessToken() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.accessToken
}

// Do はリクエストを実行します
// 401が返された場合はトークンをリフレッシュして一度だけ再試行します
func (c *Client) Do(ctx context.Context, req Request) (*http.Response, error) {
	resp, err := c.send(ctx, req)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusUnauthorized {
		return resp, nil
	}

	// レスポンスボディを読み捨ててコネクションを再利用可能にする
	io.Copy(io.Discard, resp.Body)
	resp.Body.Close()

	if err := c.refreshToken(ctx); err != nil {
		c.expireSession()
		return nil, fmt.Errorf("session expired: %w", err)
	}

	// リトライは一度だけ
	return c.send(ctx, req)
}

// DoJSON はリクエストを実行し、レスポンスボディをoutにデコードします
func (c *Client) DoJSON(ctx context.Context, req Request, out any) error {
	resp, err := c.Do(ctx, req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return &APIError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	if out == nil {
		io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// send はリクエスト仕様から新しいhttp.Requestを構築して送信します
func (c *Client) send(ctx context.Context, req Request) (*http.Response, error) {
	var body io.Reader
	if req.Body != nil {
		data, err := json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		body = bytes.NewReader(data)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, c.baseURL+req.Path, body)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	for key, values := range req.Header {
		for _, v := range values {
			httpReq.Header.Add(key, v)
		}
	}
	if req.Body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	if token := c.AccessToken(); token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+token)
	}

	return c.httpClient.Do(httpReq)
}

// refreshToken はリフレッシュエンドポイントで新しいアクセストークンを取得します
// 並行リクエストが同時に401を受けても、リフレッシュは一度しか実行されません
func (c *Client) refreshToken(ctx context.Context) error {
	c.mu.Lock()
	call := c.refreshing
	c.mu.Unlock()

	call.once.Do(func() {
		call.err = c.doRefresh(ctx)

		c.mu.Lock()
		c.refreshing = &refreshCall{}
		c.mu.Unlock()
	})
	return call.err
}

func (c *Client) doRefresh(ctx context.Context) error {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/v1/auth/refresh", nil)
	if err != nil {
		return fmt.Errorf("failed to build refresh request: %w", err)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("refresh request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return &APIError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var payload struct {
		Data struct {
			AccessToken string `json:"access_token"`
			ExpiresIn   int    `json:"expires_in"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return fmt.Errorf("failed to decode refresh response: %w", err)
	}

	c.SetAccessToken(payload.Data.AccessToken)
	return nil
}

// expireSession はトークンを破棄してセッション失効を通知します
func (c *Client) expireSession() {
	c.mu.Lock()
	c.accessToken = ""
	handler := c.onSessionExpired
	c.mu.Unlock()

	if handler != nil {
		handler()
	}
}

// APIError はAPIからのエラーレスポンスを表します
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error: status=%d body=%s", e.StatusCode, e.Body)
}
