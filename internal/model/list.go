package model

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Provider names the backend service that owns a list.
type Provider string

const (
	ProviderComputer Provider = "computer"
	ProviderGoogle   Provider = "google"
)

func (p Provider) IsValid() bool {
	switch p {
	case ProviderComputer, ProviderGoogle:
		return true
	default:
		return false
	}
}

const DefaultListIcon = "view-list-symbolic"

// List is a named collection of tasks. ID never changes after creation;
// Name is the only field a rename touches.
type List struct {
	ID        string
	Name      string
	Icon      string
	Service   Provider
	CreatedAt time.Time
}

func NewList(name string, provider Provider) List {
	return List{
		ID:        uuid.NewString(),
		Name:      strings.TrimSpace(name),
		Icon:      DefaultListIcon,
		Service:   provider,
		CreatedAt: time.Now().UTC(),
	}
}

func (l List) Validate() error {
	if strings.TrimSpace(l.ID) == "" {
		return errors.New("model: list id is required")
	}
	if strings.TrimSpace(l.Name) == "" {
		return errors.New("model: list name is required")
	}
	if !l.Service.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidProvider, l.Service)
	}
	return nil
}
