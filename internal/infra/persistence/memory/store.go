// Package memory provides an in-memory implementation of the repositories, suitable for tests and
// local demos. Every operation is serialized by one mutex; transactions hold it for their whole
// duration and restore a snapshot when they fail.
package memory

import (
	"context"
	"slices"
	"strings"
	"sync"

	"localdrop/internal/domain/entity"
	"localdrop/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type state struct {
	businesses map[string]*entity.Business
	users      map[uuid.UUID]*entity.User
	emails     map[string]uuid.UUID
	requests   map[uuid.UUID]*entity.PartnershipRequest
	devices    map[uuid.UUID]*entity.AccountDevice
}

func newState() *state {
	return &state{
		businesses: make(map[string]*entity.Business),
		users:      make(map[uuid.UUID]*entity.User),
		emails:     make(map[string]uuid.UUID),
		requests:   make(map[uuid.UUID]*entity.PartnershipRequest),
		devices:    make(map[uuid.UUID]*entity.AccountDevice),
	}
}

func (s *state) clone() *state {
	out := newState()
	for k, v := range s.businesses {
		out.businesses[k] = cloneBusiness(v)
	}
	for k, v := range s.users {
		out.users[k] = cloneUser(v)
	}
	for k, v := range s.emails {
		out.emails[k] = v
	}
	for k, v := range s.requests {
		out.requests[k] = cloneRequest(v)
	}
	for k, v := range s.devices {
		device := *v
		out.devices[k] = &device
	}

	return out
}

// Store owns the data shared by every repository it hands out.
type Store struct {
	mu    sync.Mutex
	state *state
}

// NewStore constructs an empty store.
func NewStore() *Store {
	return &Store{state: newState()}
}

// runner executes f against the store state with whatever locking its context requires.
type runner func(f func(*state) error) error

func (s *Store) locked(f func(*state) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return f(s.state)
}

// Execute runs fn while holding the store lock. A failing fn leaves the store as it found it.
func (s *Store) Execute(ctx context.Context, fn func(txRepoFactory repository.RepositoryFactory) error) error {
	if err := ctx.Err(); err != nil {
		return errors.Wrap(err, "transaction not started")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := s.state.clone()
	inTx := func(f func(*state) error) error { return f(s.state) }

	if err := fn(&repositoryFactory{run: inTx}); err != nil {
		s.state = snapshot

		return err
	}

	return nil
}

// NewTransactionManager exposes the store as a repository.TransactionManager.
func NewTransactionManager(store *Store) repository.TransactionManager {
	return store
}

type repositoryFactory struct {
	run runner
}

func (f *repositoryFactory) NewBusinessRepository() repository.BusinessRepository {
	return &businessRepository{run: f.run}
}

func (f *repositoryFactory) NewUserRepository() repository.UserRepository {
	return &userRepository{run: f.run}
}

func (f *repositoryFactory) NewPartnershipRequestRepository() repository.PartnershipRequestRepository {
	return &partnershipRequestRepository{run: f.run}
}

func cloneBusiness(b *entity.Business) *entity.Business {
	out := *b
	out.OpeningDays = slices.Clone(b.OpeningDays)
	out.Partners = slices.Clone(b.Partners)
	if b.IsOpen != nil {
		v := *b.IsOpen
		out.IsOpen = &v
	}
	if b.DeliveryRangeMeters != nil {
		v := *b.DeliveryRangeMeters
		out.DeliveryRangeMeters = &v
	}
	if b.PassiveOpenEnabled != nil {
		v := *b.PassiveOpenEnabled
		out.PassiveOpenEnabled = &v
	}

	return &out
}

func cloneUser(u *entity.User) *entity.User {
	out := *u
	out.PartnerBusinesses = slices.Clone(u.PartnerBusinesses)

	return &out
}

func cloneRequest(r *entity.PartnershipRequest) *entity.PartnershipRequest {
	out := *r
	out.AccountKey = slices.Clone(r.AccountKey)

	return &out
}

func emailKey(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
