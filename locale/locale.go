package locale

import (
	"errors"
	"fmt"
	"sync"
)

// Sentinel errors for locale/registry operations.
var (
	// ErrNoLocales is returned when a Registry is constructed with zero locales.
	ErrNoLocales = errors.New("locale: numLocales must be >= 1")

	// ErrInvalidLocaleID is returned when an ID falls outside [0, numLocales).
	ErrInvalidLocaleID = errors.New("locale: invalid locale id")

	// ErrUnknownPrivatized is returned when Lookup is called with an id that
	// was never registered.
	ErrUnknownPrivatized = errors.New("locale: unknown privatized id")
)

// ID identifies a Locale within a Registry. Locale IDs are dense,
// zero-based, and stable for the lifetime of the Registry.
type ID int

// Here is the pseudo "current locale" sentinel used by callers that have
// not yet bound to a specific locale (mirrors the runtime's "here" locale).
const Here ID = -1

// Locale is one compute-node-equivalent partition: an integer identity
// plus the count of worker threads (maxTaskPar) it runs.
type Locale struct {
	ID         ID
	MaxTaskPar int // parallel worker threads on this locale
}

// Registry is the total set of Locales plus a privatization table: a
// concurrent map from privatization id to the per-locale array of
// local instances of some replicated object.
//
// Concurrency: mu guards the privatized map only; the Locales slice is
// immutable after NewRegistry and may be read without locking.
type Registry struct {
	Locales []Locale

	mu         sync.RWMutex
	privatized map[uint64][]interface{}
	nextPrivID uint64
}

// NewRegistry builds a Registry of numLocales Locales, each configured to
// run maxTaskPar worker goroutines. Returns ErrNoLocales if numLocales < 1.
//
// Complexity: O(numLocales).
func NewRegistry(numLocales, maxTaskPar int) (*Registry, error) {
	if numLocales < 1 {
		return nil, ErrNoLocales
	}
	if maxTaskPar < 1 {
		maxTaskPar = 1
	}
	locs := make([]Locale, numLocales)
	for i := range locs {
		locs[i] = Locale{ID: ID(i), MaxTaskPar: maxTaskPar}
	}

	return &Registry{
		Locales:    locs,
		privatized: make(map[uint64][]interface{}),
	}, nil
}

// NumLocales reports the total number of Locales in the Registry.
// Complexity: O(1).
func (r *Registry) NumLocales() int {
	return len(r.Locales)
}

// Valid reports whether id addresses a Locale in this Registry.
// Complexity: O(1).
func (r *Registry) Valid(id ID) bool {
	return id >= 0 && int(id) < len(r.Locales)
}

// MaxTaskPar returns the worker-thread count configured for locale id.
// Complexity: O(1).
func (r *Registry) MaxTaskPar(id ID) (int, error) {
	if !r.Valid(id) {
		return 0, fmt.Errorf("%w: %d", ErrInvalidLocaleID, id)
	}

	return r.Locales[id].MaxTaskPar, nil
}

// Privatize registers a new logically-shared object and returns a
// privatization id plus a per-locale slice of instances that the caller
// must populate (one entry per Locale, in Locale-ID order). Subsequent
// calls to Lookup(id) return the same slice, so mutating an entry in
// place is visible to every future Lookup caller on any goroutine.
//
// Complexity: O(numLocales) allocation.
// Concurrency: safe for concurrent use; each call gets a fresh id.
func (r *Registry) Privatize() (privID uint64, instances []interface{}) {
	r.mu.Lock()
	defer r.mu.Unlock()

	privID = r.nextPrivID
	r.nextPrivID++
	instances = make([]interface{}, len(r.Locales))
	r.privatized[privID] = instances

	return privID, instances
}

// Lookup returns the per-locale instance array registered under privID.
// Returns ErrUnknownPrivatized if privID was never produced by Privatize.
//
// Complexity: O(1).
func (r *Registry) Lookup(privID uint64) ([]interface{}, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	inst, ok := r.privatized[privID]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownPrivatized, privID)
	}

	return inst, nil
}

// LocalInstance is a convenience wrapper around Lookup that extracts the
// single instance owned by locale id.
//
// Complexity: O(1).
func (r *Registry) LocalInstance(privID uint64, id ID) (interface{}, error) {
	if !r.Valid(id) {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLocaleID, id)
	}
	inst, err := r.Lookup(privID)
	if err != nil {
		return nil, err
	}

	return inst[id], nil
}

// OwnerOfVertex computes which Locale owns a given vertex id under a
// simple block distribution: vertices are split into NumLocales
// contiguous blocks of (nv+NumLocales-1)/NumLocales size.
//
// Complexity: O(1).
func (r *Registry) OwnerOfVertex(vid, numVertices int) ID {
	return blockOwner(vid, numVertices, len(r.Locales))
}

// OwnerOfEdge computes which Locale owns a given edge id, using the same
// block distribution as OwnerOfVertex.
//
// Complexity: O(1).
func (r *Registry) OwnerOfEdge(eid, numEdges int) ID {
	return blockOwner(eid, numEdges, len(r.Locales))
}

// blockOwner maps index i out of n total items onto one of numLocales
// contiguous blocks; it is the formula shared by OwnerOfVertex and
// OwnerOfEdge. With a single locale (or n <= 0) the owner is always
// locale 0.
func blockOwner(i, n, numLocales int) ID {
	if numLocales <= 1 || n <= 0 {
		return 0
	}
	blockSize := (n + numLocales - 1) / numLocales
	owner := i / blockSize
	if owner >= numLocales {
		owner = numLocales - 1
	}

	return ID(owner)
}
