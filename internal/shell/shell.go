// Package shell tracks which console panel is active. It never touches
// entity data; panels are only asked for their kind, size and revision.
package shell

import (
	"fmt"
	"strings"
	"sync"

	"github.com/frahmantamala/rbac-console/internal"
)

type Tab string

const (
	TabUsers       Tab = "users"
	TabRoles       Tab = "roles"
	TabPermissions Tab = "permissions"
)

func Tabs() []Tab {
	return []Tab{TabUsers, TabRoles, TabPermissions}
}

// ParseTab accepts a tab name in any case.
func ParseTab(s string) (Tab, error) {
	t := Tab(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Tabs() {
		if t == known {
			return t, nil
		}
	}
	return "", internal.ErrInvalidTab.WithDetails(map[string]any{"tab": s})
}

// Panel is the part of a crud.Panel the shell needs.
type Panel interface {
	Kind() string
	Len() int
	Revision() uint64
}

type TabSummary struct {
	Tab      Tab    `json:"tab"`
	Count    int    `json:"count"`
	Revision uint64 `json:"revision"`
}

type Snapshot struct {
	Active Tab          `json:"active"`
	Tabs   []TabSummary `json:"tabs"`
}

type Shell struct {
	mu     sync.RWMutex
	active Tab
	panels map[Tab]Panel
}

// New builds a shell over one panel per tab, selecting initial. A panel's
// Kind must be its tab name.
func New(initial Tab, panels ...Panel) (*Shell, error) {
	s := &Shell{panels: make(map[Tab]Panel, len(panels))}
	for _, p := range panels {
		tab, err := ParseTab(p.Kind())
		if err != nil {
			return nil, fmt.Errorf("panel %q: %w", p.Kind(), err)
		}
		s.panels[tab] = p
	}
	for _, tab := range Tabs() {
		if _, ok := s.panels[tab]; !ok {
			return nil, fmt.Errorf("no panel registered for tab %q", tab)
		}
	}
	if err := s.Select(initial); err != nil {
		return nil, err
	}
	return s, nil
}

// Select makes tab active. An unknown tab leaves the selection unchanged.
func (s *Shell) Select(tab Tab) error {
	t, err := ParseTab(string(tab))
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.active = t
	s.mu.Unlock()
	return nil
}

func (s *Shell) Active() Tab {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.active
}

func (s *Shell) ActivePanel() Panel {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.panels[s.active]
}

func (s *Shell) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := Snapshot{Active: s.active, Tabs: make([]TabSummary, 0, len(s.panels))}
	for _, tab := range Tabs() {
		p := s.panels[tab]
		snap.Tabs = append(snap.Tabs, TabSummary{Tab: tab, Count: p.Len(), Revision: p.Revision()})
	}
	return snap
}
