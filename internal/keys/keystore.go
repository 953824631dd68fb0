// Package keys stores endpoint bearer tokens in the OS keychain so that
// authenticated node providers never end up in the plain-JSON config file.
package keys

import (
	"fmt"
	"runtime"
	"sort"
	"strings"

	"github.com/99designs/keyring"
)

const keychainService = "w3net"

// Store persists bearer tokens keyed by endpoint host.
type Store interface {
	Set(host, token string) error
	Get(host string) (string, error)
	Delete(host string) error
	Hosts() ([]string, error)
}

// Keystore wraps OS keychain access.
type Keystore struct {
	ring keyring.Keyring
}

// DefaultKeystore returns a keystore backed by the OS keychain.
func DefaultKeystore() *Keystore {
	cfg := keyring.Config{
		ServiceName:              keychainService,
		KeychainTrustApplication: true,
	}

	// On Linux without a GUI, fall back to file-based storage.
	if runtime.GOOS == "linux" {
		cfg.AllowedBackends = []keyring.BackendType{
			keyring.SecretServiceBackend,
			keyring.KWalletBackend,
			keyring.FileBackend,
		}
	}

	ring, err := keyring.Open(cfg)
	if err != nil {
		ring, _ = keyring.Open(keyring.Config{
			ServiceName:     keychainService,
			AllowedBackends: []keyring.BackendType{keyring.FileBackend},
		})
	}

	return &Keystore{ring: ring}
}

// Set stores a bearer token for an endpoint host.
func (k *Keystore) Set(host, token string) error {
	if k.ring == nil {
		return fmt.Errorf("keystore not available")
	}
	err := k.ring.Set(keyring.Item{
		Key:  keychainService + "." + host,
		Data: []byte(token),
	})
	if err != nil {
		return fmt.Errorf("keychain store: %w", err)
	}
	return nil
}

// Get fetches the bearer token for an endpoint host. A missing entry is not
// an error; it returns the empty string.
func (k *Keystore) Get(host string) (string, error) {
	if k.ring == nil {
		return "", fmt.Errorf("keystore not available")
	}
	item, err := k.ring.Get(keychainService + "." + host)
	if err == keyring.ErrKeyNotFound {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("keychain retrieve: %w", err)
	}
	return string(item.Data), nil
}

// Delete removes the stored token for an endpoint host.
func (k *Keystore) Delete(host string) error {
	if k.ring == nil {
		return nil
	}
	err := k.ring.Remove(keychainService + "." + host)
	if err == keyring.ErrKeyNotFound {
		return nil
	}
	return err
}

// Hosts lists the endpoint hosts that have a stored token, sorted.
func (k *Keystore) Hosts() ([]string, error) {
	if k.ring == nil {
		return nil, fmt.Errorf("keystore not available")
	}
	names, err := k.ring.Keys()
	if err != nil {
		return nil, fmt.Errorf("keychain list: %w", err)
	}
	var hosts []string
	for _, name := range names {
		// Entries from other tools may share the backend; only ours
		// carry the service prefix.
		if strings.HasPrefix(name, keychainService+".") {
			hosts = append(hosts, strings.TrimPrefix(name, keychainService+"."))
		}
	}
	sort.Strings(hosts)
	return hosts, nil
}

// MemStore keeps tokens in memory (for tests).
type MemStore struct {
	data map[string]string
}

// NewMemStore creates an in-memory token store.
func NewMemStore() *MemStore {
	return &MemStore{data: make(map[string]string)}
}

func (m *MemStore) Set(host, token string) error {
	m.data[host] = token
	return nil
}

func (m *MemStore) Get(host string) (string, error) {
	return m.data[host], nil
}

func (m *MemStore) Delete(host string) error {
	delete(m.data, host)
	return nil
}

func (m *MemStore) Hosts() ([]string, error) {
	hosts := make([]string, 0, len(m.data))
	for host := range m.data {
		hosts = append(hosts, host)
	}
	sort.Strings(hosts)
	return hosts, nil
}
