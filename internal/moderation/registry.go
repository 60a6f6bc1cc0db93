package moderation

import (
	"slices"
	"sync"
)

// Key identifies a user inside one chat.
type Key struct {
	ChatID int64
	UserID int64
}

// Registry holds the users currently allowed to post in a muted chat.
// Entries live for the process lifetime. A user exempt in one chat is not
// exempt anywhere else.
type Registry struct {
	mu      sync.RWMutex
	members map[Key]struct{}
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{members: make(map[Key]struct{})}
}

// Grant marks the user as exempt in the chat.
func (r *Registry) Grant(chatID, userID int64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.members[Key{ChatID: chatID, UserID: userID}] = struct{}{}
}

// Revoke removes the exemption. Revoking an absent key is a no-op.
func (r *Registry) Revoke(chatID, userID int64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.members, Key{ChatID: chatID, UserID: userID})
}

// IsExempt reports whether the user may post in the chat.
func (r *Registry) IsExempt(chatID, userID int64) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.members[Key{ChatID: chatID, UserID: userID}]
	return ok
}

// Len returns the number of exemptions across all chats.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.members)
}

// Members returns the exempt user ids of a chat in ascending order.
func (r *Registry) Members(chatID int64) []int64 {
	r.mu.RLock()
	ids := make([]int64, 0)
	for k := range r.members {
		if k.ChatID == chatID {
			ids = append(ids, k.UserID)
		}
	}
	r.mu.RUnlock()

	slices.Sort(ids)
	return ids
}
