package settings

import (
	"fmt"
	"os"
	"strings"
	"sync"
)

const EnvPrefix = "BACALHAU_"

// EnvName returns the environment variable that overrides a setting, e.g.
// BACALHAU_OUTPUT_FORMAT for output-format.
func EnvName(name string) string {
	return EnvPrefix + strings.ToUpper(strings.ReplaceAll(name, "-", "_"))
}

// EnvProvider serves settings from the environment, falling back to the
// setting defaults. Values written through Set stay in memory.
type EnvProvider struct {
	lock     sync.RWMutex
	lookup   func(string) (string, bool)
	settings map[string]Setting
	values   map[string]string
}

func NewEnvProvider() *EnvProvider {
	return &EnvProvider{lookup: os.LookupEnv}
}

func (p *EnvProvider) Get(name string) string {
	p.lock.RLock()
	defer p.lock.RUnlock()

	if v, ok := p.values[name]; ok {
		return v
	}
	if v, ok := p.lookup(EnvName(name)); ok {
		return v
	}
	return p.settings[name].Default
}

func (p *EnvProvider) Set(name, value string) error {
	p.lock.Lock()
	defer p.lock.Unlock()

	s, ok := p.settings[name]
	if !ok {
		return fmt.Errorf("unknown setting %s", name)
	}
	if s.ReadOnly {
		return fmt.Errorf("setting %s is read-only", name)
	}
	p.values[name] = value
	return nil
}

func (p *EnvProvider) SetAll(settings map[string]Setting) error {
	p.lock.Lock()
	defer p.lock.Unlock()

	p.settings = make(map[string]Setting, len(settings))
	for name, s := range settings {
		p.settings[name] = s
	}
	p.values = map[string]string{}
	return nil
}
