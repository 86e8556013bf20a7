package model

import (
	"slices"
	"strings"
)

// ClubMember is a member of the club and the guests they bring along
type ClubMember struct {
	Name   string
	Guests []string // owned by this member, never shared
}

// HackerClubMember is a ClubMember known to the club by a unique handle
type HackerClubMember struct {
	ClubMember
	Handle string
}

// HandleClaimer registers handles and rejects ones already in use.
// ClaimHandle must check and insert atomically.
type HandleClaimer interface {
	ClaimHandle(handle string) error
}

// NewClubMember creates a member with their own copy of the guest list
func NewClubMember(name string, guests ...string) *ClubMember {
	owned := make([]string, 0, len(guests))
	owned = append(owned, guests...)
	return &ClubMember{
		Name:   name,
		Guests: owned,
	}
}

// AddGuest appends a guest to this member's list
func (m *ClubMember) AddGuest(name string) {
	m.Guests = append(m.Guests, name)
}

// GuestList returns a copy of the guest list
func (m *ClubMember) GuestList() []string {
	return slices.Clone(m.Guests)
}

// NewHackerClubMember creates a hacker member and registers their handle.
// An empty handle is derived from the first word of name. On error no
// member is returned and nothing is registered.
func NewHackerClubMember(reg HandleClaimer, name, handle string, guests ...string) (*HackerClubMember, error) {
	m := &HackerClubMember{
		ClubMember: *NewClubMember(name, guests...),
		Handle:     handle,
	}
	if err := m.finalize(reg); err != nil {
		return nil, err
	}
	return m, nil
}

// finalize resolves the handle and claims it
func (m *HackerClubMember) finalize(reg HandleClaimer) error {
	if m.Handle == "" {
		derived, ok := DeriveHandle(m.Name)
		if !ok {
			return ErrNoHandle
		}
		m.Handle = derived
	}
	return reg.ClaimHandle(m.Handle)
}

// DeriveHandle returns the first whitespace-delimited word of name
func DeriveHandle(name string) (string, bool) {
	fields := strings.Fields(name)
	if len(fields) == 0 {
		return "", false
	}
	return fields[0], true
}
