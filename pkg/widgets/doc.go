// Package widgets builds the composite nodes of an edwin tree: windows,
// groups, scroll blocks, labels, buttons and typed inputs.
//
// Every constructor creates nodes at the cursor of a *ui.State and returns
// the id of the node that carries the value or the one that must be ended.
//
// # Construction
//
// Containers are opened with a Begin constructor and closed with End:
//
//	win := widgets.BeginWindow(s, "Settings", ui.Vertical, ui.Rect{X: 10, Y: 10, W: 300, H: 200})
//	widgets.Label(s, "Rendering")
//	samples := widgets.Int(s, "samples", 1, 64)
//	widgets.End(s)
//
//	var n int32 = 16
//	s.Bind(samples, &n)
//
// Ending the outermost container lays out the whole tree.
//
// # Size requests
//
// Leaf constructors consume the last request pushed with State.PushRect and
// fall back to a per-widget default:
//
//	s.PushRect(0, 0, 0.5, 0)
//	widgets.Button(s, "Apply", apply)
//
// # Values
//
// Inputs start bound to storage they own, so they display a zero value until
// State.Bind points them at caller memory. Composite values (vectors and
// matrices) chain their element inputs through Node.Next; binding the first
// element with a slice binds them all.
package widgets
