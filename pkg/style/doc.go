// Package style compiles nested style descriptions into CSS scoped to one
// component type.
//
// A Sheet is an ordered list of entries. An entry is either a declaration
// (name and value) or a block (a selector or at-rule with nested entries):
//
//	sheet := style.Sheet{
//	    style.Rule("div",
//	        style.Decl("backgroundColor", "red"),
//	    ),
//	    style.Rule("@media (max-width: 600px)",
//	        style.Rule("div", style.Decl("display", "none")),
//	    ),
//	}
//	css := style.Compile(sheet, "Card")
//
// produces
//
//	div[data-component=Card] {
//	  background-color: red;
//	}
//	@media (max-width: 600px) {
//	  div[data-component=Card] {
//	    display: none;
//	  }
//	}
//
// Every selector gets the [data-component=<name>] token appended to its
// leading compound, so the rule only matches elements rendered by that
// component. At-rule headers are left alone and keyframe offsets (from, to,
// percentages) are never scoped.
//
// Scoping rewrites selector text; it does not parse CSS. A comma inside a
// pseudo-class argument list such as :not(a, b) is treated as a top-level
// separator.
//
// Sheets decode from JSON (key order preserved) and YAML. A Registry records
// which component styles a document already carries.
package style
