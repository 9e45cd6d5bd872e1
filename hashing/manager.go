package hashing

import (
	"fmt"
	"sync"
)

// Manager is a thread-safe driver registry and dispatcher for password
// hashing.
//
// Register one or more named [Hasher] implementations, nominate a default
// driver, and call [Manager.Make] / [Manager.Check] / [Manager.NeedsRehash]
// through the Manager for day-to-day operations. The package ships a single
// driver ([PBKDF2Hasher]); the Manager exists so applications carrying
// records from other systems can register their own drivers next to it and
// verify mixed record sets with [Manager.CheckWithDetect].
//
// # Thread safety
//
// All Manager methods are safe for concurrent use by multiple goroutines.
// A [sync.RWMutex] serialises writes (RegisterDriver, SetDefaultDriver)
// while allowing concurrent reads (Make, Check, etc.).
type Manager struct {
	mu      sync.RWMutex
	drivers map[DriverName]Hasher
	def     DriverName
}

// NewManager creates an empty Manager with the given default driver name.
// Drivers must be registered with [Manager.RegisterDriver] before any
// hashing operation is invoked through the Manager.
//
// Use [NewDefaultManager] for the batteries-included variant.
func NewManager(defaultDriver DriverName) *Manager {
	return &Manager{
		drivers: make(map[DriverName]Hasher),
		def:     defaultDriver,
	}
}

// NewDefaultManager creates a Manager with the PBKDF2-HMAC-SHA256 driver
// registered under [DriverPBKDF2SHA256] using [DefaultPBKDF2Options], and
// set as the default.
//
//	m, err := hashing.NewDefaultManager()
//	record, _ := m.Make("secret")
func NewDefaultManager() (*Manager, error) {
	h, err := NewPBKDF2Hasher(DefaultPBKDF2Options())
	if err != nil {
		return nil, fmt.Errorf("hashing: failed to create default pbkdf2 hasher: %w", err)
	}
	m := NewManager(DriverPBKDF2SHA256)
	_ = m.RegisterDriver(DriverPBKDF2SHA256, h)
	return m, nil
}

// RegisterDriver adds or replaces a named hasher in the Manager. It is safe
// to call while other goroutines are using the Manager.
func (m *Manager) RegisterDriver(name DriverName, h Hasher) error {
	if name == "" {
		return ErrEmptyDriverName
	}
	if h == nil {
		return ErrNilHasher
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.drivers[name] = h
	return nil
}

// Driver returns the [Hasher] registered under name, or [ErrDriverNotFound]
// if no such driver has been registered.
func (m *Manager) Driver(name DriverName) (Hasher, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	h, ok := m.drivers[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrDriverNotFound, name)
	}
	return h, nil
}

// SetDefaultDriver changes the driver used by [Manager.Make],
// [Manager.Check], and [Manager.NeedsRehash]. The named driver must already
// be registered.
func (m *Manager) SetDefaultDriver(name DriverName) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.drivers[name]; !ok {
		return fmt.Errorf("%w: %q is not registered; call RegisterDriver first",
			ErrDriverNotFound, name)
	}
	m.def = name
	return nil
}

// DefaultDriver returns the name of the currently configured default driver.
func (m *Manager) DefaultDriver() DriverName {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.def
}

// HasDriver reports whether a driver with the given name is registered.
func (m *Manager) HasDriver(name DriverName) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.drivers[name]
	return ok
}

// Make hashes password using the default driver.
func (m *Manager) Make(password string) (string, error) {
	h, err := m.resolveDefault()
	if err != nil {
		return "", err
	}
	return h.Make(password)
}

// Check verifies password against record using the default driver.
func (m *Manager) Check(password, record string) (bool, error) {
	h, err := m.resolveDefault()
	if err != nil {
		return false, err
	}
	return h.Check(password, record)
}

// CheckWithDetect verifies password against record by detecting which
// registered driver produced the record. Useful when records from several
// algorithms coexist, such as during a migration to pbkdf2_sha256.
//
// Returns [ErrInvalidHash] if the record format is unrecognised and
// [ErrDriverNotFound] if the detected driver is not registered.
func (m *Manager) CheckWithDetect(password, record string) (bool, error) {
	h, err := m.resolveByRecord(record)
	if err != nil {
		return false, err
	}
	return h.Check(password, record)
}

// NeedsRehash reports whether record should be re-hashed: either it was
// produced by a different driver than the current default, or by the
// default driver with different parameters. Callers should re-hash the
// password and persist the new record on the next successful login when
// this returns true.
func (m *Manager) NeedsRehash(record string) (bool, error) {
	detected, ok := DetectDriver(record)
	if !ok {
		return false, ErrInvalidHash
	}

	m.mu.RLock()
	def := m.def
	m.mu.RUnlock()

	if detected != def {
		return true, nil
	}
	h, err := m.Driver(detected)
	if err != nil {
		return false, err
	}
	return h.NeedsRehash(record)
}

// Info extracts metadata from record using the default driver.
func (m *Manager) Info(record string) (HashInfo, error) {
	h, err := m.resolveDefault()
	if err != nil {
		return HashInfo{}, err
	}
	return h.Info(record)
}

// InfoWithDetect extracts metadata from record by detecting which
// registered driver produced it.
func (m *Manager) InfoWithDetect(record string) (HashInfo, error) {
	h, err := m.resolveByRecord(record)
	if err != nil {
		return HashInfo{}, err
	}
	return h.Info(record)
}

func (m *Manager) resolveDefault() (Hasher, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	h, ok := m.drivers[m.def]
	if !ok {
		return nil, fmt.Errorf("%w: default driver %q has not been registered",
			ErrDriverNotFound, m.def)
	}
	return h, nil
}

func (m *Manager) resolveByRecord(record string) (Hasher, error) {
	name, ok := DetectDriver(record)
	if !ok {
		return nil, ErrInvalidHash
	}
	return m.Driver(name)
}
