package users

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"sync"

	"github.com/google/uuid"

	"github.com/Brunoalemao2017/novo-app/internal/mirror"
)

// ErrEmailTaken reports a registration against an already used email.
var ErrEmailTaken = errors.New("email already registered")

// Directory stores accounts with email-indexed lookup. It persists to its
// own mirror namespace, independent from the inventory store, with the same
// load-once / write-through-on-mutation contract. Accounts are never
// updated or deleted.
type Directory struct {
	mirror mirror.Mirror
	key    string

	mu       sync.Mutex
	accounts []Account
}

func New(ctx context.Context, m mirror.Mirror, key string) *Directory {
	d := &Directory{mirror: m, key: key}
	d.accounts = d.load(ctx)
	return d
}

func (d *Directory) load(ctx context.Context) []Account {
	b, err := d.mirror.Load(ctx, d.key)
	if err != nil {
		if !errors.Is(err, mirror.ErrNoSnapshot) {
			log.Printf("users: load snapshot: %v", err)
		}
		return Seed()
	}
	var snap Snapshot
	if err := json.Unmarshal(b, &snap); err != nil {
		log.Printf("users: unparsable snapshot, using seed: %v", err)
		return Seed()
	}
	return snap.Usuarios
}

func (d *Directory) persist(ctx context.Context) {
	b, err := json.Marshal(Snapshot{Usuarios: d.accounts})
	if err != nil {
		log.Printf("users: marshal snapshot: %v", err)
		return
	}
	if err := d.mirror.Save(ctx, d.key, b); err != nil {
		log.Printf("users: persist skipped: %v", err)
	}
}

// AddUser appends an account with a fresh identifier. The directory itself
// rejects duplicate emails with ErrEmailTaken.
func (d *Directory) AddUser(ctx context.Context, in AccountInput) (Account, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for _, a := range d.accounts {
		if a.Email == in.Email {
			return Account{}, ErrEmailTaken
		}
	}
	acc := Account{
		ID:       uuid.NewString(),
		Name:     in.Name,
		Email:    in.Email,
		Password: in.Password,
		Role:     in.Role,
	}
	d.accounts = append(d.accounts, acc)
	d.persist(ctx)
	return acc, nil
}

// FindByEmail returns the first account with an exactly matching email.
// The match is case-sensitive.
func (d *Directory) FindByEmail(email string) (Account, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for _, a := range d.accounts {
		if a.Email == email {
			return a, true
		}
	}
	return Account{}, false
}
