// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	tab   key.Binding
	esc   key.Binding
	quit  key.Binding
	copy  key.Binding
	about key.Binding
}

var keys = keyMap{
	tab:   key.NewBinding(key.WithKeys("tab")),
	esc:   key.NewBinding(key.WithKeys("esc")),
	quit:  key.NewBinding(key.WithKeys("q", "ctrl+c")),
	copy:  key.NewBinding(key.WithKeys("c")),
	about: key.NewBinding(key.WithKeys("v")),
}
