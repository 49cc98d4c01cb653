// Package ui provides the Bubble Tea front end for the roller.
//
// Core abstractions:
//   - View: A screen or major UI region with its own model, update, view (Elm-style)
//   - Panel: A bounded region within a layout that hosts a View
//   - Layout: Arranges panels on the screen
//   - Overlay: Modal views stacked above the deck (the motion picker)
//   - RollerView: Composites a roller's mounted panels into terminal cells
//     and drives its animation with tea.Tick frames
//   - AppModel: Pages through a deck, one roller move per page turn
package ui
