package plugin

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

// Info contains plugin metadata
type Info struct {
	URI         string `yaml:"uri"`         // LV2 plugin URI; derived from ID when empty
	ID          string `yaml:"id"`          // Unique plugin identifier (e.g., "com.example.myplugin")
	Name        string `yaml:"name"`        // Display name
	Description string `yaml:"description"` // One line summary
	Version     string `yaml:"version"`     // Semantic version (e.g., "1.0.0")
	Vendor      string `yaml:"vendor"`      // Company/developer name
	Homepage    string `yaml:"homepage"`
	Email       string `yaml:"email"`
	Category    string `yaml:"category"` // LV2 plugin class without prefix (e.g., "AmplifierPlugin")
	IsSynth     bool   `yaml:"synth"`
}

// PluginURI returns the LV2 URI. Without an explicit URI a name-based UUID of
// the ID is used so the URI stays stable across builds.
func (i Info) PluginURI() string {
	if i.URI != "" {
		return i.URI
	}
	return "urn:uuid:" + uuid.NewSHA1(uuid.NameSpaceURL, []byte(i.ID)).String()
}

// Validate checks the fields a descriptor cannot do without.
func (i Info) Validate() error {
	if i.URI == "" && strings.TrimSpace(i.ID) == "" {
		return errors.New("plugin info needs a URI or an ID")
	}
	if i.Name == "" {
		return errors.New("plugin info needs a name")
	}
	return nil
}

// Revision returns the release revision written to the descriptor, the
// version or "1.0" when unset.
func (i Info) Revision() string {
	if i.Version == "" {
		return "1.0"
	}
	return i.Version
}
