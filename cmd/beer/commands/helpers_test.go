package commands

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/fatih/color"
	"github.com/fivetwenty-io/beer-client/internal/constants"
	"github.com/fivetwenty-io/beer-client/pkg/beer"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	cliUsername = "user1"
	cliPassword = "password"
)

// beerStore backs the fake API used by the command tests. Listing keeps
// insertion order and numbers pages from 1.
type beerStore struct {
	mu      sync.Mutex
	beers   map[uuid.UUID]beer.Beer
	order   []uuid.UUID
	methods []string
}

func newBeerStore(items ...beer.Beer) *beerStore {
	store := &beerStore{beers: make(map[uuid.UUID]beer.Beer)}

	for _, item := range items {
		if item.ID == uuid.Nil {
			item.ID = uuid.New()
		}

		store.beers[item.ID] = item
		store.order = append(store.order, item.ID)
	}

	return store
}

func (s *beerStore) get(id uuid.UUID) (beer.Beer, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.beers[id]

	return item, ok
}

func (s *beerStore) calls() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]string(nil), s.methods...)
}

func (s *beerStore) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.methods = append(s.methods, r.Method)

	user, pass, ok := r.BasicAuth()
	if !ok || user != cliUsername || pass != cliPassword {
		w.WriteHeader(http.StatusUnauthorized)

		return
	}

	idPart := strings.TrimPrefix(r.URL.Path, constants.APIPathBeers)
	if idPart == "" {
		switch r.Method {
		case http.MethodGet:
			s.list(w, r)
		case http.MethodPost:
			var item beer.Beer
			if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
				w.WriteHeader(http.StatusBadRequest)

				return
			}

			item.ID = uuid.New()
			s.beers[item.ID] = item
			s.order = append(s.order, item.ID)

			w.Header().Set("Location", constants.APIPathBeers+item.ID.String())
			w.WriteHeader(http.StatusCreated)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}

		return
	}

	id, err := uuid.Parse(idPart)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)

		return
	}

	existing, found := s.beers[id]
	if !found {
		w.WriteHeader(http.StatusNotFound)

		return
	}

	switch r.Method {
	case http.MethodGet:
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(existing)
	case http.MethodPut:
		var item beer.Beer
		if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
			w.WriteHeader(http.StatusBadRequest)

			return
		}

		item.ID = id
		s.beers[id] = item
		w.WriteHeader(http.StatusNoContent)
	case http.MethodDelete:
		delete(s.beers, id)
		w.WriteHeader(http.StatusNoContent)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (s *beerStore) list(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	pageNumber := 1
	if value := query.Get(beer.ParamPageNumber); value != "" {
		pageNumber, _ = strconv.Atoi(value)
	}

	pageSize := constants.DefaultPageSize
	if value := query.Get(beer.ParamPageSize); value != "" {
		pageSize, _ = strconv.Atoi(value)
	}

	matched := []beer.Beer{}

	for _, id := range s.order {
		item, ok := s.beers[id]
		if !ok {
			continue
		}

		if name := query.Get(beer.ParamName); name != "" && !strings.Contains(item.Name, name) {
			continue
		}

		if style := query.Get(beer.ParamStyle); style != "" && string(item.Style) != style {
			continue
		}

		matched = append(matched, item)
	}

	start := min((pageNumber-1)*pageSize, len(matched))
	end := min(start+pageSize, len(matched))

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"content":       matched[start:end],
		"page":          pageNumber,
		"size":          pageSize,
		"totalElements": len(matched),
	})
}

// setupCLI points viper at a fresh config file and, when store is non-nil,
// at a fake API serving it. It returns the config file path.
func setupCLI(t *testing.T, store *beerStore) string {
	t.Helper()

	viper.Reset()
	t.Cleanup(viper.Reset)

	color.NoColor = true

	configFile := filepath.Join(t.TempDir(), "config.yml")
	viper.SetConfigFile(configFile)

	if store != nil {
		server := httptest.NewServer(store)
		t.Cleanup(server.Close)

		viper.Set(keyAPI, server.URL)
		viper.Set(keyUsername, cliUsername)
		viper.Set(keyPassword, cliPassword)
	}

	return configFile
}

// runCommand executes cmd with args and stdin, returning stdout and stderr.
func runCommand(cmd *cobra.Command, stdin string, args ...string) (string, string, error) {
	var stdout, stderr bytes.Buffer

	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	err := cmd.Execute()

	return stdout.String(), stderr.String(), err
}

func quantityOf(value int) *int {
	return &value
}

func stockedBeers() []beer.Beer {
	return []beer.Beer{
		{Name: "Mango Bobs", Style: beer.StyleIPA, UPC: "12345", QuantityOnHand: quantityOf(500), Price: decimal.RequireFromString("10.99")},
		{Name: "Galaxy Cat", Style: beer.StylePaleAle, UPC: "23456", QuantityOnHand: quantityOf(120), Price: decimal.RequireFromString("12.50")},
		{Name: "No Hammers On The Bar", Style: beer.StyleWheat, UPC: "34567", QuantityOnHand: quantityOf(30), Price: decimal.RequireFromString("9.25")},
	}
}
