package retrofit

import (
	"fmt"
	"sort"
	"sync"
)

// Registry defines the interface for managing registered service definitions
type Registry interface {
	// Register a validated service definition
	Register(service *Service) error

	// Get retrieves a service by name
	Get(name string) (*Service, error)

	// List returns the names of all registered services
	List() []string

	// IsRegistered checks if a service name is registered
	IsRegistered(name string) bool
}

// registry is the concrete implementation of Registry
type registry struct {
	mu       sync.RWMutex        // Protects concurrent access
	services map[string]*Service // Service storage
}

// NewRegistry creates a new service registry
func NewRegistry() Registry {
	return &registry{
		services: make(map[string]*Service),
	}
}

// defaultRegistry is the global registry instance
var (
	defaultRegistry     Registry
	defaultRegistryOnce sync.Once
)

// DefaultRegistry returns the global service registry
func DefaultRegistry() Registry {
	defaultRegistryOnce.Do(func() {
		defaultRegistry = NewRegistry()
	})
	return defaultRegistry
}

// Register adds a validated service definition to the registry
func (r *registry) Register(service *Service) error {
	if service == nil {
		return &RegistrationError{Msg: "service cannot be nil"}
	}
	if service.Name() == "" {
		return &RegistrationError{Msg: "service name cannot be empty"}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.services[service.Name()]; exists {
		return &RegistrationError{Msg: fmt.Sprintf("service '%s' is already registered", service.Name())}
	}

	r.services[service.Name()] = service
	return nil
}

// Get retrieves a service by name
func (r *registry) Get(name string) (*Service, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	service, exists := r.services[name]
	if !exists {
		return nil, fmt.Errorf("service '%s' is not registered", name)
	}

	return service, nil
}

// List returns the names of all registered services in sorted order
func (r *registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.services))
	for name := range r.services {
		names = append(names, name)
	}

	sort.Strings(names)
	return names
}

// IsRegistered checks if a service name is registered
func (r *registry) IsRegistered(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, exists := r.services[name]
	return exists
}
