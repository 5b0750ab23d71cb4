package ecs

import "log"

type scheduled struct {
	name    string
	system  System
	enabled bool
}

// Scheduler runs named systems in insertion order. Disabled systems are
// skipped until resumed.
type Scheduler struct {
	systems []*scheduled
	byName  map[string]*scheduled
}

func NewScheduler() *Scheduler {
	return &Scheduler{byName: make(map[string]*scheduled)}
}

// Add appends system under name. Adding a name twice replaces the system in
// its original slot.
func (s *Scheduler) Add(name string, system System) {
	if system == nil {
		return
	}
	if existing, ok := s.byName[name]; ok {
		existing.system = system
		return
	}
	entry := &scheduled{name: name, system: system, enabled: true}
	s.systems = append(s.systems, entry)
	s.byName[name] = entry
}

func (s *Scheduler) SetEnabled(name string, enabled bool) bool {
	entry, ok := s.byName[name]
	if !ok {
		log.Printf("scheduler: unknown system %q", name)
		return false
	}
	entry.enabled = enabled
	return true
}

func (s *Scheduler) Enabled(name string) bool {
	entry, ok := s.byName[name]
	return ok && entry.enabled
}

func (s *Scheduler) Suspend(names ...string) {
	for _, name := range names {
		s.SetEnabled(name, false)
	}
}

func (s *Scheduler) Resume(names ...string) {
	for _, name := range names {
		s.SetEnabled(name, true)
	}
}

func (s *Scheduler) Names() []string {
	names := make([]string, 0, len(s.systems))
	for _, entry := range s.systems {
		names = append(names, entry.name)
	}
	return names
}

// Update runs one frame of dt seconds. Events pushed during the frame are
// visible to every later system and dropped once the frame ends.
func (s *Scheduler) Update(w *World, dt float64) {
	if w == nil {
		return
	}
	w.SetDelta(dt)
	for _, entry := range s.systems {
		if entry.enabled {
			entry.system.Update(w)
		}
	}
	w.endFrame()
}
