// Package vtest provides testing helpers for styled components.
//
// The helpers render a node once and assert on the HTML, so component
// tests read as one line per expectation:
//
//	func TestCard(t *testing.T) {
//	    card := styled.View.WithOptions(styled.Options{Aliases: styled.DefaultAliases()})
//	    vtest.ExpectStyle(t, card, vdom.Props{"p": 8}, "padding: 8px")
//	    vtest.ExpectHTML(t, card.Render(vdom.Props{"p": 8}), `<div style="padding: 8px"></div>`)
//	}
package vtest
