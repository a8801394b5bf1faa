// Package attrs holds attribute bags and the predicates that classify them.
//
// A Bag maps attribute names to values: strings, numbers, booleans, handler
// funcs, or nested bags. Bags are copied before they are merged so that a
// bag handed in by a caller is never modified.
//
// Root attributes (id, style, key, config, on*, data-*) are the ones a
// component hoists onto its outermost element. Lifecycle hook names that
// look like event handlers (oninit, onremove, ...) are not root attributes.
package attrs
