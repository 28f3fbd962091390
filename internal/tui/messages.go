package tui

import (
	"github.com/MKhiriev/go-notes/models"
)

type listLoadedMsg struct {
	notes []models.Note
	err   error
}

type noteLoadedMsg struct {
	note models.Note
	err  error
}

type noteSavedMsg struct {
	note models.Note
	err  error
}

type noteDeletedMsg struct {
	err error
}

type apiInfoLoadedMsg struct {
	info models.APIInfo
	err  error
}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct{}
