package app

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/grantshandy/nominatim-go/internal/config"
	"github.com/grantshandy/nominatim-go/internal/logger"
	"github.com/grantshandy/nominatim-go/pkg/nominatim"
	"gopkg.in/yaml.v3"
)

// Geocoder is the one-shot runtime behind the geocode tool. It wires the
// configuration into a nominatim client and dispatches a single
// subcommand per invocation.
type Geocoder struct {
	cfg    *config.Config
	client *nominatim.Client
	log    logger.Logger
}

// NewGeocoder builds the runtime from config.
func NewGeocoder(cfg *config.Config, log logger.Logger) (*Geocoder, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config must not be nil")
	}
	if log == nil {
		log = logger.NopLogger{}
	}

	client := nominatim.New(identFromConfig(cfg))
	client.SetTimeout(cfg.Timeout)
	if cfg.BaseURL != "" {
		if err := client.SetBaseURL(cfg.BaseURL); err != nil {
			return nil, fmt.Errorf("configure base url: %w", err)
		}
	}

	return &Geocoder{cfg: cfg, client: client, log: log}, nil
}

// identFromConfig picks the single identification credential per the
// config precedence: api key, then referer, then user agent.
func identFromConfig(cfg *config.Config) nominatim.IdentificationMethod {
	switch {
	case cfg.APIKey != "" && cfg.Email != "":
		return nominatim.FromAPIKeyWithEmail(cfg.APIKey, cfg.Email)
	case cfg.APIKey != "":
		return nominatim.FromAPIKey(cfg.APIKey)
	case cfg.Referer != "":
		return nominatim.FromReferer(cfg.Referer)
	default:
		return nominatim.FromUserAgent(cfg.UserAgent)
	}
}

// Run executes one subcommand: status, search, reverse, or lookup.
func (g *Geocoder) Run(ctx context.Context, op string, args []string) error {
	switch op {
	case "status":
		return g.runStatus(ctx)
	case "search":
		return g.runSearch(ctx, args)
	case "reverse":
		return g.runReverse(ctx, args)
	case "lookup":
		return g.runLookup(ctx, args)
	default:
		return fmt.Errorf("unknown operation %q (want status, search, reverse, or lookup)", op)
	}
}

func (g *Geocoder) runStatus(ctx context.Context) error {
	status, err := g.client.Status(ctx)
	if err != nil {
		return fmt.Errorf("status: %w", err)
	}
	g.log.InfoObj("server status", "status", status)
	fmt.Println(status.Message)
	return nil
}

func (g *Geocoder) runSearch(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("search needs a query")
	}
	query := strings.Join(args, " ")

	places, err := g.client.Search(ctx, query)
	if err != nil {
		return fmt.Errorf("search %q: %w", query, err)
	}
	g.log.InfoObj("search done", "result_count", len(places))
	for _, place := range places {
		fmt.Println(place.DisplayName)
	}
	return nil
}

func (g *Geocoder) runReverse(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("reverse needs latitude and longitude (zoom optional)")
	}

	var zoom *int
	if len(args) >= 3 {
		z, err := strconv.Atoi(args[2])
		if err != nil {
			return fmt.Errorf("invalid zoom %q: %w", args[2], err)
		}
		zoom = &z
	}

	place, err := g.client.Reverse(ctx, args[0], args[1], zoom)
	if err != nil {
		return fmt.Errorf("reverse %s,%s: %w", args[0], args[1], err)
	}
	g.log.InfoObj("reverse done", "place_id", place.PlaceID)
	fmt.Println(place.DisplayName)
	return nil
}

func (g *Geocoder) runLookup(ctx context.Context, args []string) error {
	ids := args
	if len(ids) == 0 && g.cfg.LookupIDsFile != "" {
		loaded, err := readLookupIDs(g.cfg.LookupIDsFile)
		if err != nil {
			return fmt.Errorf("load lookup ids: %w", err)
		}
		ids = loaded
	}
	if len(ids) == 0 {
		return fmt.Errorf("lookup needs OSM ids (arguments or lookup_ids_file)")
	}

	places, err := g.client.Lookup(ctx, ids)
	if err != nil {
		return fmt.Errorf("lookup: %w", err)
	}
	g.log.InfoObj("lookup done", "result_count", len(places))
	for _, place := range places {
		fmt.Println(place.DisplayName)
	}
	return nil
}

type lookupIDsFile struct {
	IDs []string `yaml:"ids"`
}

// readLookupIDs loads OSM ids from a YAML file of the form `ids: [R146656, ...]`.
func readLookupIDs(path string) ([]string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var file lookupIDsFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	ids := make([]string, 0, len(file.IDs))
	for _, id := range file.IDs {
		if trimmed := strings.TrimSpace(id); trimmed != "" {
			ids = append(ids, trimmed)
		}
	}
	if len(ids) == 0 {
		return nil, fmt.Errorf("%s contains no ids", path)
	}
	return ids, nil
}
