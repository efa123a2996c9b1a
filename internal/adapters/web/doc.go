// Package web binds the quote client controller to the browser DOM. It is
// only built for js/wasm; everything it draws comes from the ui package's
// render functions.
package web
