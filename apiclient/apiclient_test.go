package apiclient

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

const testDemoDelay = 5 * time.Millisecond

type staticToken string

func (s staticToken) Token() string { return string(s) }

func newTestClient(baseURL string, tokens TokenSource) *Client {
	return NewClient(Config{
		BaseURL:   baseURL,
		Tokens:    tokens,
		DemoDelay: testDemoDelay,
	})
}

func TestSuccessfulCallCarriesCredentials(t *testing.T) {
	var gotAuthorization, gotRequestID string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuthorization = r.Header.Get("Authorization")
		gotRequestID = r.Header.Get("X-Request-Id")
		w.Write([]byte(`[{"contact_id":7,"contact_name":"Asha","contact_phone":"9876501234","relationship_type":"Friend"}]`))
	}))
	defer server.Close()

	client := newTestClient(server.URL, staticToken("session-token"))

	contacts, err := client.Contacts()
	assert.Nil(t, err)
	assert.Len(t, contacts, 1)
	assert.Equal(t, "Asha", contacts[0].Name)

	assert.Equal(t, "Bearer session-token", gotAuthorization)
	assert.NotEmpty(t, gotRequestID)
	assert.False(t, client.DemoMode(), "a successful call should not switch to demo mode")
}

func TestNoAuthorizationHeaderWithoutSession(t *testing.T) {
	var sawAuthorization bool

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, sawAuthorization = r.Header["Authorization"]
		w.Write([]byte(`{"token":"jwt","user_id":"9","message":"ok"}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL, staticToken(""))

	_, err := client.Login("someone@example.com", "pw")
	assert.Nil(t, err)
	assert.False(t, sawAuthorization)
}

func TestApplicationRejectionPropagatesWithoutFallback(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message":"invalid token provided"}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL, nil)

	_, err := client.Contacts()
	assert.NotNil(t, err)

	reqErr, ok := err.(*RequestError)
	assert.True(t, ok, "expected a *RequestError, got %T", err)
	assert.Equal(t, "invalid token provided", reqErr.Message)
	assert.Equal(t, http.StatusUnauthorized, reqErr.StatusCode)
	assert.False(t, client.DemoMode(), "an application rejection must not switch to demo mode")
}

func TestRejectionWithoutMessageGetsGenericOne(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer server.Close()

	client := newTestClient(server.URL, nil)

	_, err := client.TriggerPanic()
	reqErr, ok := err.(*RequestError)
	assert.True(t, ok)
	assert.Equal(t, "request failed", reqErr.Message)
}

func TestServerErrorStatusesFallBack(t *testing.T) {
	for _, status := range []int{http.StatusNotFound, http.StatusInternalServerError} {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
		}))

		client := newTestClient(server.URL, nil)

		contacts, err := client.Contacts()
		assert.Nil(t, err)
		assert.Equal(t, DemoContacts, contacts, "status %v should produce canned contacts", status)
		assert.True(t, client.DemoMode())

		server.Close()
	}
}

func TestTransportFailureFallsBack(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	server.Close() // nothing listening any more

	client := newTestClient(server.URL, nil)

	started := time.Now()
	result, err := client.TriggerPanic()
	elapsed := time.Since(started)

	assert.Nil(t, err)
	assert.Equal(t, int64(123), result.AlertID)
	assert.Equal(t, 2, result.NotifiedContacts)
	assert.True(t, client.DemoMode())
	assert.GreaterOrEqual(t, elapsed, testDemoDelay, "fallback should simulate network latency")
}

func TestDemoSwitchNoticeFiresOnce(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	server.Close()

	var mu sync.Mutex
	notices := 0

	client := NewClient(Config{
		BaseURL:   server.URL,
		DemoDelay: testDemoDelay,
		OnDemoSwitch: func() {
			mu.Lock()
			notices++
			mu.Unlock()
		},
	})

	_, err := client.Contacts()
	assert.Nil(t, err)
	_, err = client.TriggerPanic()
	assert.Nil(t, err)
	_, err = client.ResolvePanic()
	assert.Nil(t, err)

	assert.True(t, client.DemoMode())
	assert.Equal(t, 1, notices, "the demo-mode notice should fire exactly once per session")
}

func TestDemoLogin(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	server.Close()

	client := newTestClient(server.URL, nil)

	result, err := client.Login(DemoEmail, "any password at all")
	assert.Nil(t, err)
	assert.Equal(t, DemoToken, result.Token)
	assert.NotEmpty(t, result.UserID)

	_, err = client.Login("stranger@example.com", "pw")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoadingFlagTracksCallLifetime(t *testing.T) {
	var client *Client
	loadingDuringCall := make(chan bool, 1)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		loadingDuringCall <- client.Loading()
		w.Write([]byte(`{"message":"ok"}`))
	}))
	defer server.Close()

	client = newTestClient(server.URL, nil)
	assert.False(t, client.Loading())

	_, err := client.ResolvePanic()
	assert.Nil(t, err)

	assert.True(t, <-loadingDuringCall, "loading should be set while the call is in flight")
	assert.False(t, client.Loading(), "loading should clear once the call settles")
}

func TestLoadingFlagClearsOnFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message":"nope"}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL, nil)

	_, err := client.Contacts()
	assert.NotNil(t, err)
	assert.False(t, client.Loading())
}

func TestRegisterValidatesBeforeCalling(t *testing.T) {
	requests := 0

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.Write([]byte(`{"message":"ok","user_id":"3"}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL, nil)

	_, err := client.Register(RegisterParams{Name: "Jane", Email: "not-an-email", PhoneNumber: "9876543210", Password: "pw"})
	assert.NotNil(t, err)
	assert.Equal(t, 0, requests, "invalid input should never reach the wire")

	_, err = client.Register(RegisterParams{Name: "Jane", Email: "jane@example.com", PhoneNumber: "9876543210", Password: "pw"})
	assert.Nil(t, err)
	assert.Equal(t, 1, requests)
}

func TestAddContactValidatesPhoneNumber(t *testing.T) {
	client := newTestClient("http://localhost:0", nil)

	_, err := client.AddContact(AddContactParams{Name: "Mom", Phone: "abc", Relationship: "Parent"})
	assert.NotNil(t, err)

	reqErr, ok := err.(*RequestError)
	assert.True(t, ok)
	assert.Contains(t, reqErr.Message, "Phone")
}

func TestReportLocationIgnoresResponseBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"whatever":"the backend says"}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL, nil)
	assert.Nil(t, client.ReportLocation(28.6139, 77.2090))
}
