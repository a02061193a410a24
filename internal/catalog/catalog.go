package catalog

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/julianstephens/ecolog/internal/ecoscore"
	"github.com/julianstephens/ecolog/internal/models"
)

//go:embed default.json
var defaultCatalog []byte

var validate = validator.New()

var (
	// ErrUnknownAction is returned when a name does not match any catalog entry
	ErrUnknownAction = errors.New("unknown action")
	// ErrInvalidCatalog wraps every catalog validation failure
	ErrInvalidCatalog = errors.New("invalid action catalog")
)

// Catalog is the set of actions offered on the log page: independent toggles
// plus mutually exclusive transport options.
type Catalog struct {
	Toggles   []models.Action `json:"toggles" validate:"required,min=1,dive"`
	Transport []models.Action `json:"transport" validate:"dive"`
}

// Default returns the built-in catalog
func Default() *Catalog {
	c, err := Parse(defaultCatalog)
	if err != nil {
		panic(fmt.Sprintf("built-in catalog is invalid: %v", err))
	}
	return c
}

// Load reads a catalog file. An empty path yields the built-in catalog.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates catalog JSON
func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCatalog, err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks field rules, transport categories, and name uniqueness
func (c *Catalog) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidCatalog, err)
	}

	seen := make(map[string]bool)
	for _, a := range c.All() {
		key := strings.ToLower(a.Name)
		if seen[key] {
			return fmt.Errorf("%w: duplicate action name %q", ErrInvalidCatalog, a.Name)
		}
		seen[key] = true
	}

	for _, a := range c.Transport {
		if a.Category != models.CategoryTransport {
			return fmt.Errorf("%w: transport option %q has category %s", ErrInvalidCatalog, a.Name, a.Category)
		}
	}
	return nil
}

// All returns toggles followed by transport options
func (c *Catalog) All() []models.Action {
	out := make([]models.Action, 0, len(c.Toggles)+len(c.Transport))
	out = append(out, c.Toggles...)
	return append(out, c.Transport...)
}

// Toggle looks up a toggle by name, case-insensitively
func (c *Catalog) Toggle(name string) (models.Action, bool) {
	return find(c.Toggles, name)
}

// TransportOption looks up a transport option by name, case-insensitively
func (c *Catalog) TransportOption(name string) (models.Action, bool) {
	return find(c.Transport, name)
}

func find(actions []models.Action, name string) (models.Action, bool) {
	name = strings.TrimSpace(name)
	for _, a := range actions {
		if strings.EqualFold(a.Name, name) {
			return a, true
		}
	}
	return models.Action{}, false
}

// Resolve turns user-entered names into selections. Repeated toggle names are
// collapsed. An empty transport means none.
func (c *Catalog) Resolve(toggles []string, transport string, acHours float64) (ecoscore.Selections, error) {
	sel := ecoscore.Selections{ACHours: acHours}

	picked := make(map[string]bool)
	for _, name := range toggles {
		a, ok := c.Toggle(name)
		if !ok {
			return ecoscore.Selections{}, fmt.Errorf("%w: %q", ErrUnknownAction, name)
		}
		if picked[a.Name] {
			continue
		}
		picked[a.Name] = true
		sel.Toggles = append(sel.Toggles, a)
	}

	if strings.TrimSpace(transport) != "" {
		a, ok := c.TransportOption(transport)
		if !ok {
			return ecoscore.Selections{}, fmt.Errorf("%w: transport %q", ErrUnknownAction, transport)
		}
		sel.Transport = &a
	}

	return sel, nil
}

// Prefill is the log form state recovered from a saved day
type Prefill struct {
	Toggles   []string
	Transport string
	ACHours   float64
}

// Restore maps a saved log back onto catalog entries. Entries match on
// (category, name, points), so a log saved under different point values
// leaves those entries unselected.
func (c *Catalog) Restore(log models.DailyLog) Prefill {
	type matchKey struct {
		cat    models.Category
		name   string
		points float64
	}
	saved := make(map[matchKey]bool, len(log.Actions))
	for _, a := range log.Actions {
		saved[matchKey{a.Category, a.Name, a.Points}] = true
	}

	p := Prefill{ACHours: log.ACHours}
	for _, a := range c.Toggles {
		if saved[matchKey{a.Category, a.Name, a.Points}] {
			p.Toggles = append(p.Toggles, a.Name)
		}
	}
	for _, a := range c.Transport {
		if saved[matchKey{a.Category, a.Name, a.Points}] {
			p.Transport = a.Name
			break
		}
	}
	return p
}
