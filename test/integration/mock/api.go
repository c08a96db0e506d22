package mock

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
)

// RemoteAPI fakes the expense REST service. Responses are registered per
// method and path, either for the n-th call or as the default for every call.
// Paths may use "*" for one segment, e.g. "/expenses/*".
type RemoteAPI struct {
	mu               sync.Mutex
	server           *httptest.Server
	requestsReceived map[string][]ReceivedRequest
	responses        map[string]map[int]cannedResponse
	defaults         map[string]cannedResponse
}

// ReceivedRequest is one call the fake has seen.
type ReceivedRequest struct {
	Headers map[string]string
	Queries map[string]string
	Body    any
}

type cannedResponse struct {
	status int
	body   any
}

// NewRemoteAPI creates the fake; call Start before use.
func NewRemoteAPI() *RemoteAPI {
	return &RemoteAPI{
		requestsReceived: map[string][]ReceivedRequest{},
		responses:        map[string]map[int]cannedResponse{},
		defaults:         map[string]cannedResponse{},
	}
}

// Start serves the fake on a local port.
func (a *RemoteAPI) Start() {
	a.server = httptest.NewServer(http.HandlerFunc(a.handle))
}

// Close stops the fake.
func (a *RemoteAPI) Close() {
	if a.server != nil {
		a.server.Close()
	}
}

// GetUrl returns the base URL of the fake.
func (a *RemoteAPI) GetUrl() string {
	return a.server.URL
}

func (a *RemoteAPI) handle(w http.ResponseWriter, r *http.Request) {
	key := r.Method + r.URL.Path

	raw, _ := io.ReadAll(r.Body)
	var body any
	if len(raw) > 0 {
		_ = json.Unmarshal(raw, &body)
	}

	received := ReceivedRequest{
		Headers: map[string]string{},
		Queries: map[string]string{},
		Body:    body,
	}
	for name, values := range r.Header {
		received.Headers[name] = values[0]
	}
	for name, values := range r.URL.Query() {
		received.Queries[name] = values[0]
	}

	a.mu.Lock()
	index := len(a.requestsReceived[key])
	a.requestsReceived[key] = append(a.requestsReceived[key], received)
	response := a.responseFor(r.Method, r.URL.Path, index)
	a.mu.Unlock()

	if response.status == http.StatusNoContent {
		w.WriteHeader(response.status)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(response.status)
	payload, _ := json.Marshal(response.body)
	_, _ = w.Write(payload)
}

// SetResponse registers the response of the index-th call to method and
// path. An index of -1 sets the default for every call.
func (a *RemoteAPI) SetResponse(index int, method, path string, status int, body any) {
	a.mu.Lock()
	defer a.mu.Unlock()

	key := method + path
	response := cannedResponse{status: status, body: body}
	if index == -1 {
		a.defaults[key] = response
		return
	}
	if a.responses[key] == nil {
		a.responses[key] = map[int]cannedResponse{}
	}
	a.responses[key][index] = response
}

// Requests returns the calls received for method and path, in order.
func (a *RemoteAPI) Requests(method, path string) []ReceivedRequest {
	a.mu.Lock()
	defer a.mu.Unlock()

	var requests []ReceivedRequest
	for key, received := range a.requestsReceived {
		if strings.HasPrefix(key, method) && matchPath(path, strings.TrimPrefix(key, method)) {
			requests = append(requests, received...)
		}
	}
	return requests
}

// Reset forgets every registered response and received call.
func (a *RemoteAPI) Reset() {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.requestsReceived = map[string][]ReceivedRequest{}
	a.responses = map[string]map[int]cannedResponse{}
	a.defaults = map[string]cannedResponse{}
}

func (a *RemoteAPI) responseFor(method, path string, index int) cannedResponse {
	for key, byIndex := range a.responses {
		if strings.HasPrefix(key, method) && matchPath(strings.TrimPrefix(key, method), path) {
			if response, ok := byIndex[index]; ok {
				return withDefaults(response)
			}
		}
	}
	for key, response := range a.defaults {
		if strings.HasPrefix(key, method) && matchPath(strings.TrimPrefix(key, method), path) {
			return withDefaults(response)
		}
	}
	// Unknown routes answer 200 with an empty object so list calls see no data
	return cannedResponse{status: http.StatusOK, body: map[string]any{}}
}

func withDefaults(response cannedResponse) cannedResponse {
	if response.status == 0 {
		response.status = http.StatusOK
	}
	if response.body == nil {
		response.body = map[string]any{}
	}
	return response
}

func matchPath(pattern, path string) bool {
	if pattern == path {
		return true
	}

	patternParts := strings.Split(pattern, "/")
	pathParts := strings.Split(path, "/")
	if len(patternParts) != len(pathParts) {
		return false
	}

	for i := range patternParts {
		if patternParts[i] != "*" && patternParts[i] != pathParts[i] {
			return false
		}
	}
	return true
}
