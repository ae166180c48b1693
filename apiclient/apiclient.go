package apiclient

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"io/ioutil"
	"net/http"
	"regexp"
	"sync"
	"time"

	"github.com/go-playground/validator"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/raksha-app/raksha/logger"
	"go.uber.org/zap"
)

// DefaultBaseURL is where the raksha backend lives during development.
const DefaultBaseURL = "http://localhost:3000/api"

// DefaultDemoDelay preserves the perceived latency of a real network
// call when the fallback path synthesizes a response.
const DefaultDemoDelay = 600 * time.Millisecond

var validate *validator.Validate

func init() {
	validate = validator.New()
	_ = validate.RegisterValidation("phone_number", func(fl validator.FieldLevel) bool {
		return isValidPhoneNumber(fl.Field().String())
	})
}

// API is the surface the feature panels consume. Panels only ever talk
// to the backend through this, so tests swap in a Stub.
type API interface {
	Login(email, password string) (*LoginResponse, error)
	Register(params RegisterParams) (*RegisterResponse, error)
	Contacts() ([]Contact, error)
	AddContact(params AddContactParams) (*AddContactResponse, error)
	DeleteContact(id int64) (*DeleteContactResponse, error)
	TriggerPanic() (*PanicResponse, error)
	ResolvePanic() (*ResolvePanicResponse, error)
	AskLegalBot(question string) (*ChatResponse, error)
	SafeRoute(startID, endID int) (*SafeRouteResponse, error)
	ReportLocation(latitude, longitude float64) error
	DemoMode() bool
}

// TokenSource supplies the bearer credential attached to each request.
// The session store satisfies this.
type TokenSource interface {
	Token() string
}

type Config struct {
	BaseURL    string
	Tokens     TokenSource
	HTTPClient *http.Client
	DemoDelay  time.Duration
	Logger     *zap.SugaredLogger

	// OnDemoSwitch is invoked exactly once, the first time a call has
	// to fall back to canned responses.
	OnDemoSwitch func()
}

// Client is the API gateway every network operation passes through.
// On transport failure (or a 404/500, which usually means the backend
// isn't there at all) it switches the session into demo mode and
// substitutes deterministic canned responses, so the app stays
// demonstrable without its backend.
type Client struct {
	baseURL      string
	httpClient   *http.Client
	tokens       TokenSource
	demoDelay    time.Duration
	logg         *zap.SugaredLogger
	onDemoSwitch func()
	demoNotice   sync.Once

	mu       sync.Mutex
	demoMode bool
	loading  bool
}

func NewClient(config Config) *Client {
	client := &Client{
		baseURL:      config.BaseURL,
		httpClient:   config.HTTPClient,
		tokens:       config.Tokens,
		demoDelay:    config.DemoDelay,
		logg:         config.Logger,
		onDemoSwitch: config.OnDemoSwitch,
	}

	if client.baseURL == "" {
		client.baseURL = DefaultBaseURL
	}

	if client.httpClient == nil {
		client.httpClient = &http.Client{}
	}

	if client.demoDelay == 0 {
		client.demoDelay = DefaultDemoDelay
	}

	if client.logg == nil {
		client.logg = logger.NewNopLogger()
	}

	return client
}

// ---------------------------------------------------------------------------------//
// Typed operations
// --------------------------------------------------------------------------------//

func (c *Client) Login(email, password string) (*LoginResponse, error) {
	params := LoginParams{Email: email, Password: password}

	result := &LoginResponse{}
	if err := c.call(OpLogin, "/login", params, result); err != nil {
		return nil, err
	}

	return result, nil
}

func (c *Client) Register(params RegisterParams) (*RegisterResponse, error) {
	if err := validate.Struct(params); err != nil {
		return nil, &RequestError{Message: validationMessage(err)}
	}

	result := &RegisterResponse{}
	if err := c.call(OpRegister, "/register", params, result); err != nil {
		return nil, err
	}

	return result, nil
}

func (c *Client) Contacts() ([]Contact, error) {
	result := []Contact{}
	if err := c.call(OpListContacts, "/contacts", nil, &result); err != nil {
		return nil, err
	}

	return result, nil
}

func (c *Client) AddContact(params AddContactParams) (*AddContactResponse, error) {
	if err := validate.Struct(params); err != nil {
		return nil, &RequestError{Message: validationMessage(err)}
	}

	result := &AddContactResponse{}
	if err := c.call(OpAddContact, "/contacts", params, result); err != nil {
		return nil, err
	}

	return result, nil
}

func (c *Client) DeleteContact(id int64) (*DeleteContactResponse, error) {
	result := &DeleteContactResponse{}
	if err := c.call(OpDeleteContact, fmt.Sprintf("/contacts/%v", id), nil, result); err != nil {
		return nil, err
	}

	return result, nil
}

func (c *Client) TriggerPanic() (*PanicResponse, error) {
	result := &PanicResponse{}
	if err := c.call(OpTriggerPanic, "/panic", nil, result); err != nil {
		return nil, err
	}

	return result, nil
}

func (c *Client) ResolvePanic() (*ResolvePanicResponse, error) {
	result := &ResolvePanicResponse{}
	if err := c.call(OpResolvePanic, "/panic/resolve", nil, result); err != nil {
		return nil, err
	}

	return result, nil
}

func (c *Client) AskLegalBot(question string) (*ChatResponse, error) {
	result := &ChatResponse{}
	if err := c.call(OpLegalChat, "/chat", ChatParams{Question: question}, result); err != nil {
		return nil, err
	}

	return result, nil
}

func (c *Client) SafeRoute(startID, endID int) (*SafeRouteResponse, error) {
	result := &SafeRouteResponse{}
	if err := c.call(OpSafeRoute, "/generate-safe-route", SafeRouteParams{StartID: startID, EndID: endID}, result); err != nil {
		return nil, err
	}

	return result, nil
}

// ReportLocation quietly shares the user's coordinates with the backend.
// The response carries nothing the client cares about.
func (c *Client) ReportLocation(latitude, longitude float64) error {
	return c.call(OpReportLocation, "/location", LocationParams{Latitude: latitude, Longitude: longitude}, nil)
}

// ---------------------------------------------------------------------------------//
// Core call path
// --------------------------------------------------------------------------------//

// call runs a single request through the gateway:
//   - success         -> decode the JSON body into out
//   - app rejection   -> propagate *RequestError, no fallback
//   - unreachable     -> switch to demo mode & substitute a canned response
func (c *Client) call(op Operation, path string, body interface{}, out interface{}) error {
	c.setLoading(true)
	defer c.setLoading(false)

	content, err := c.doRequest(op, path, body)
	if err != nil {
		reqErr := &RequestError{}
		if errors.As(err, &reqErr) {
			return err
		}

		c.logg.Warnf("%s call failed (%v), attempting demo fallback", op, err)

		content, err = c.demoFallback(op, body)
		if err != nil {
			return err
		}
	}

	if out == nil || len(content) == 0 {
		return nil
	}

	if err := json.Unmarshal(content, out); err != nil {
		return errors.Wrapf(err, "decoding %s response", op)
	}

	return nil
}

func (c *Client) doRequest(op Operation, path string, body interface{}) ([]byte, error) {
	var requestBody io.Reader

	if body != nil {
		content, err := json.Marshal(body)
		if err != nil {
			return nil, errors.Wrapf(err, "encoding %s request", op)
		}
		requestBody = bytes.NewReader(content)
	}

	request, err := http.NewRequest(op.Method(), c.baseURL+path, requestBody)
	if err != nil {
		return nil, err
	}

	request.Header.Set("Content-Type", "application/json")
	request.Header.Set("X-Request-Id", uuid.NewString())

	if c.tokens != nil {
		if token := c.tokens.Token(); token != "" {
			request.Header.Set("Authorization", "Bearer "+token)
		}
	}

	response, err := c.httpClient.Do(request)
	if err != nil {
		return nil, err
	}
	defer response.Body.Close()

	content, err := ioutil.ReadAll(response.Body)
	if err != nil {
		return nil, err
	}

	if response.StatusCode >= http.StatusOK && response.StatusCode < http.StatusMultipleChoices {
		return content, nil
	}

	// 404/500 usually means the backend isn't running, or is broken
	// enough that we might as well treat it that way.
	if response.StatusCode == http.StatusNotFound || response.StatusCode == http.StatusInternalServerError {
		return nil, &serverDownError{statusCode: response.StatusCode}
	}

	payload := struct {
		Message string `json:"message"`
	}{}
	if err := json.Unmarshal(content, &payload); err != nil || payload.Message == "" {
		payload.Message = "request failed"
	}

	return nil, &RequestError{StatusCode: response.StatusCode, Message: payload.Message}
}

func (c *Client) demoFallback(op Operation, body interface{}) ([]byte, error) {
	c.switchToDemoMode()

	// Simulate network delay
	time.Sleep(c.demoDelay)

	if op == OpUnknown {
		c.logg.Warnf("no canned response for %s %s, returning empty object", op.Method(), op)
	}

	return DemoResponse(op, body)
}

func (c *Client) switchToDemoMode() {
	c.mu.Lock()
	c.demoMode = true
	c.mu.Unlock()

	c.demoNotice.Do(func() {
		c.logg.Warn("Backend unreachable. Switched to Demo Mode.")
		if c.onDemoSwitch != nil {
			c.onDemoSwitch()
		}
	})
}

// DemoMode reports whether any call has fallen back to canned responses
// this session. It never flips back to false.
func (c *Client) DemoMode() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.demoMode
}

// Loading reports whether a call is currently in flight.
func (c *Client) Loading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.loading
}

func (c *Client) setLoading(loading bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.loading = loading
}

// ---------------------------------------------------------------------------------//
// Validation helpers
// --------------------------------------------------------------------------------//

var phoneNumberRegexp = regexp.MustCompile(`^\+?[0-9][0-9 -]{6,14}$`)

func isValidPhoneNumber(phoneNumber string) bool {
	return phoneNumberRegexp.MatchString(phoneNumber)
}

func validationMessage(err error) string {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok || len(validationErrors) == 0 {
		return err.Error()
	}

	fieldError := validationErrors[0]
	return fmt.Sprintf("invalid value for %q", fieldError.Field())
}
