package roles

import (
	"embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed config/*.yaml
var configFiles embed.FS

// Registry resolves a role name to its privilege flags. Privileges are
// loaded once from the embedded roles file at startup.
type Registry struct {
	roles map[string]Privileges
	mu    sync.RWMutex
}

// NewRegistry creates a registry and loads the embedded roles file.
func NewRegistry() (*Registry, error) {
	r := &Registry{
		roles: make(map[string]Privileges),
	}

	if err := r.loadFile("config/roles.yaml"); err != nil {
		return nil, fmt.Errorf("load role privileges: %w", err)
	}

	return r, nil
}

func (r *Registry) loadFile(filename string) error {
	data, err := configFiles.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("read %s: %w", filename, err)
	}

	var set RoleSet
	if err := yaml.Unmarshal(data, &set); err != nil {
		return fmt.Errorf("unmarshal %s: %w", filename, err)
	}

	r.mu.Lock()
	for name, privs := range set.Roles {
		r.roles[name] = privs
	}
	r.mu.Unlock()

	return nil
}

// Privileges returns the flags for a role name. Unknown roles resolve to
// the zero value, so a misissued or future role can never escalate.
func (r *Registry) Privileges(role string) Privileges {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.roles[role]
}

// Known reports whether the role name appears in the roles file.
func (r *Registry) Known(role string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.roles[role]
	return ok
}
