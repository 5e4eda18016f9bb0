package domain

import (
	"slices"
	"strings"
)

// Service is a treatment the salon offers.
type Service struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Duration int    `json:"duration"` // minutes
	Color    string `json:"color"`    // hex or named, for calendar rendering
}

// ServiceDraft carries the caller-supplied fields for creating a service.
type ServiceDraft struct {
	Name     string `json:"name" validate:"required,max=255"`
	Duration int    `json:"duration" validate:"required,gt=0"`
	Color    string `json:"color" validate:"required,max=50"`
}

// SortServices orders services by name.
func SortServices(services []*Service) {
	slices.SortStableFunc(services, func(a, b *Service) int {
		return strings.Compare(a.Name, b.Name)
	})
}

// ResolveServices maps service IDs to services, skipping IDs that no longer
// resolve. A deleted service leaves a dangling reference in appointments under
// the local backend; consumers must treat it as absent, not as an error.
func ResolveServices(ids []string, services []*Service) []*Service {
	byID := make(map[string]*Service, len(services))
	for _, s := range services {
		byID[s.ID] = s
	}

	resolved := make([]*Service, 0, len(ids))
	for _, id := range ids {
		if s, ok := byID[id]; ok {
			resolved = append(resolved, s)
		}
	}
	return resolved
}
