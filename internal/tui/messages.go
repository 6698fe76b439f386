package tui

import "github.com/MKhiriev/go-proton-tweaks/models"

type appsLoadedMsg struct {
	list models.AppsList
	err  error
}

type tweaksLoadedMsg struct {
	id     string
	app    models.App
	vendor models.Vendor
	err    error
}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct{}
