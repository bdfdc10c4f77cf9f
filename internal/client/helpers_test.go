package client

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sort"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/fivetwenty-io/beer-client/internal/constants"
	internalhttp "github.com/fivetwenty-io/beer-client/internal/http"
	"github.com/fivetwenty-io/beer-client/pkg/beer"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	testUsername = "user1"
	testPassword = "password"
	// testBasicAuth is the header sent for testUsername/testPassword.
	testBasicAuth = "Basic dXNlcjE6cGFzc3dvcmQ="
)

// recordedRequest is what mockBeerAPI saw for one call.
type recordedRequest struct {
	Method        string
	Path          string
	RawQuery      string
	Authorization string
	Body          []byte
}

// mockBeerAPI is an in-memory beer service. Beers are listed in insertion
// order, pages are numbered from 1 and default to 25 items.
type mockBeerAPI struct {
	mu       sync.Mutex
	beers    map[uuid.UUID]beer.Beer
	order    []uuid.UUID
	requests []recordedRequest

	// locationFormat, when set, replaces the Location header value. %s is
	// the id of the created beer.
	locationFormat string
	omitLocation   bool
	failStatus     map[string]int
}

func newMockBeerAPI() *mockBeerAPI {
	return &mockBeerAPI{
		beers:      make(map[uuid.UUID]beer.Beer),
		failStatus: make(map[string]int),
	}
}

// NewTestServer starts api behind an httptest server.
func NewTestServer(t *testing.T, api *mockBeerAPI) *httptest.Server {
	t.Helper()

	server := httptest.NewServer(api)
	t.Cleanup(server.Close)

	return server
}

// NewTestClient creates a client for baseURL using Basic credentials.
func NewTestClient(t *testing.T, baseURL string) *Client {
	t.Helper()

	client, err := New(&beer.Config{
		BaseURL:  baseURL,
		Username: testUsername,
		Password: testPassword,
	})
	if err != nil {
		t.Fatalf("creating test client: %v", err)
	}

	return client
}

func (m *mockBeerAPI) seed(items ...beer.Beer) []beer.Beer {
	m.mu.Lock()
	defer m.mu.Unlock()

	seeded := make([]beer.Beer, 0, len(items))

	for _, item := range items {
		if item.ID == uuid.Nil {
			item.ID = uuid.New()
		}

		version := 0
		now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
		item.Version = &version
		item.CreatedDate = &now
		item.UpdateDate = &now

		m.beers[item.ID] = item
		m.order = append(m.order, item.ID)
		seeded = append(seeded, item)
	}

	return seeded
}

func (m *mockBeerAPI) recorded() []recordedRequest {
	m.mu.Lock()
	defer m.mu.Unlock()

	return append([]recordedRequest(nil), m.requests...)
}

func (m *mockBeerAPI) ServeHTTP(writer http.ResponseWriter, request *http.Request) {
	m.mu.Lock()
	defer m.mu.Unlock()

	body := make([]byte, 0)
	if request.Body != nil {
		var raw json.RawMessage

		_ = json.NewDecoder(request.Body).Decode(&raw)
		body = raw
	}

	m.requests = append(m.requests, recordedRequest{
		Method:        request.Method,
		Path:          request.URL.Path,
		RawQuery:      request.URL.RawQuery,
		Authorization: request.Header.Get("Authorization"),
		Body:          body,
	})

	if status, ok := m.failStatus[request.Method]; ok {
		writeError(writer, request, status, "forced failure")

		return
	}

	if !strings.HasPrefix(request.URL.Path, constants.APIPathBeers) {
		writeError(writer, request, http.StatusNotFound, "no such route")

		return
	}

	idPart := strings.TrimPrefix(request.URL.Path, constants.APIPathBeers)

	switch {
	case idPart == "" && request.Method == http.MethodGet:
		m.list(writer, request)
	case idPart == "" && request.Method == http.MethodPost:
		m.create(writer, request, body)
	case idPart != "":
		id, err := uuid.Parse(idPart)
		if err != nil {
			writeError(writer, request, http.StatusBadRequest, "invalid id")

			return
		}

		m.single(writer, request, id, body)
	default:
		writeError(writer, request, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (m *mockBeerAPI) list(writer http.ResponseWriter, request *http.Request) {
	query := request.URL.Query()

	pageNumber := 1
	if value := query.Get(beer.ParamPageNumber); value != "" {
		pageNumber, _ = strconv.Atoi(value)
	}

	pageSize := constants.DefaultPageSize
	if value := query.Get(beer.ParamPageSize); value != "" {
		pageSize, _ = strconv.Atoi(value)
	}

	var matched []beer.Beer

	for _, id := range m.order {
		item, ok := m.beers[id]
		if !ok {
			continue
		}

		if name := query.Get(beer.ParamName); name != "" && !strings.Contains(item.Name, name) {
			continue
		}

		if style := query.Get(beer.ParamStyle); style != "" && string(item.Style) != style {
			continue
		}

		if query.Get(beer.ParamShowInventory) != "true" {
			item.QuantityOnHand = nil
		}

		matched = append(matched, item)
	}

	start := min((pageNumber-1)*pageSize, len(matched))
	end := min(start+pageSize, len(matched))

	content := matched[start:end]
	if content == nil {
		content = []beer.Beer{}
	}

	writeJSON(writer, http.StatusOK, map[string]interface{}{
		"content":       content,
		"page":          pageNumber,
		"size":          pageSize,
		"totalElements": len(matched),
		"pageable":      map[string]interface{}{"pageNumber": pageNumber - 1, "pageSize": pageSize},
	})
}

func (m *mockBeerAPI) create(writer http.ResponseWriter, request *http.Request, body []byte) {
	var item beer.Beer

	err := json.Unmarshal(body, &item)
	if err != nil {
		writeError(writer, request, http.StatusBadRequest, "invalid body")

		return
	}

	item.ID = uuid.New()
	version := 0
	now := time.Now().UTC()
	item.Version = &version
	item.CreatedDate = &now
	item.UpdateDate = &now

	m.beers[item.ID] = item
	m.order = append(m.order, item.ID)

	switch {
	case m.omitLocation:
	case m.locationFormat != "":
		writer.Header().Set("Location", strings.ReplaceAll(m.locationFormat, "%s", item.ID.String()))
	default:
		writer.Header().Set("Location", constants.APIPathBeers+item.ID.String())
	}

	writer.WriteHeader(http.StatusCreated)
}

func (m *mockBeerAPI) single(writer http.ResponseWriter, request *http.Request, id uuid.UUID, body []byte) {
	existing, ok := m.beers[id]
	if !ok {
		writeError(writer, request, http.StatusNotFound, "beer not found")

		return
	}

	switch request.Method {
	case http.MethodGet:
		writeJSON(writer, http.StatusOK, existing)
	case http.MethodPut:
		var item beer.Beer

		err := json.Unmarshal(body, &item)
		if err != nil {
			writeError(writer, request, http.StatusBadRequest, "invalid body")

			return
		}

		version := 0
		if existing.Version != nil {
			version = *existing.Version + 1
		}

		now := time.Now().UTC()
		item.ID = id
		item.Version = &version
		item.CreatedDate = existing.CreatedDate
		item.UpdateDate = &now
		m.beers[id] = item

		writer.WriteHeader(http.StatusNoContent)
	case http.MethodDelete:
		delete(m.beers, id)
		writer.WriteHeader(http.StatusNoContent)
	default:
		writeError(writer, request, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func writeJSON(writer http.ResponseWriter, status int, value interface{}) {
	writer.Header().Set("Content-Type", "application/json")
	writer.WriteHeader(status)
	_ = json.NewEncoder(writer).Encode(value)
}

func writeError(writer http.ResponseWriter, request *http.Request, status int, message string) {
	writeJSON(writer, status, beer.ErrorBody{
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Status:    status,
		Error:     http.StatusText(status),
		Message:   message,
		Path:      request.URL.Path,
	})
}

// sampleBeer mirrors the record used throughout the service's own tests.
func sampleBeer() beer.Beer {
	quantity := 500

	return beer.Beer{
		Name:           "Mango Bobs",
		Style:          beer.StyleIPA,
		UPC:            "12345",
		QuantityOnHand: &quantity,
		Price:          decimal.RequireFromString("10.99"),
	}
}

func sortedNames(items []beer.Beer) []string {
	names := make([]string, 0, len(items))
	for _, item := range items {
		names = append(names, item.Name)
	}

	sort.Strings(names)

	return names
}

// newBareHTTPClient creates a transport without credentials for tests that
// build resource clients directly.
func newBareHTTPClient(baseURL string) *internalhttp.Client {
	return internalhttp.NewClient(baseURL, nil)
}
