// Package dev provides the development-time pieces of the style server:
// a websocket hub that pushes reload messages to browsers and a file
// watcher that reports style file changes.
package dev
