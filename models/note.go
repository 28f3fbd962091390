// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Note is the only entity managed by the service.
//
// A Note whose ID is nil has never been persisted. The store assigns the ID
// on the first save and never changes it afterwards.
type Note struct {
	// ID is the store-assigned identity. Serialized as null until persisted.
	ID *int64 `json:"id"`

	// Title is the note's title. No length or format constraints apply.
	Title string `json:"title"`

	// Content is the note's body. No length or format constraints apply.
	Content string `json:"content"`
}

// IsNew reports whether the note has not been assigned an identity yet.
func (n Note) IsNew() bool {
	return n.ID == nil
}

// WithID returns a copy of the note carrying the given identity.
func (n Note) WithID(id int64) Note {
	n.ID = &id
	return n
}

// WithoutID returns a copy of the note with its identity cleared.
func (n Note) WithoutID() Note {
	n.ID = nil
	return n
}

// IDValue returns the note's identity, or zero when it has none.
func (n Note) IDValue() int64 {
	if n.ID == nil {
		return 0
	}
	return *n.ID
}
