package domain

import (
	"slices"
	"strings"
)

// Client is a salon customer. Deleting a client removes every appointment
// that references it; the adapters enforce the cascade.
type Client struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone"`
}

// ClientDraft carries the caller-supplied fields for registering a client.
// The persistence adapter assigns the ID at creation time.
type ClientDraft struct {
	FirstName string `json:"firstName" validate:"required,max=255"`
	LastName  string `json:"lastName" validate:"required,max=255"`
	Phone     string `json:"phone" validate:"required,max=50"`
}

// SortClients orders clients by last name, then first name.
// Storage provides no ordering guarantee; listings apply this at query time.
func SortClients(clients []*Client) {
	slices.SortStableFunc(clients, func(a, b *Client) int {
		if c := strings.Compare(a.LastName, b.LastName); c != 0 {
			return c
		}
		return strings.Compare(a.FirstName, b.FirstName)
	})
}
