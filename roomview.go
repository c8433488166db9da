/*
Package roomview is a library for loading, previewing and displaying the
room photos and object images of a scrolling adventure game on an 8-bit
indexed display.
*/
package roomview

import "log"

// RoomView ties the image store to the batch tools.
type RoomView struct {
	store  *Store
	logger *log.Logger
}

// New returns a RoomView using store.
func New(store *Store, logger *log.Logger) *RoomView {
	return &RoomView{
		store:  store,
		logger: logger,
	}
}

// Store returns the image store.
func (m *RoomView) Store() *Store {
	return m.store
}
