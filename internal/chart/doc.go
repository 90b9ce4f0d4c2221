// Package chart holds the dashboard chart initializers.
//
// An initializer looks up its target region in a Document, falls back to
// NotLoadedText when no Renderer is available, otherwise builds a Plotly
// Figure from its data provider and the active theme, hands it to the
// Renderer and subscribes a layout-only resize to the Viewport. The
// subscription belongs to the returned Handle and ends with Handle.Close.
package chart
