// Package api serves diagrams over HTTP.
//
// Routes:
//
//	GET /           HTML form that submits to /venn.svg
//	GET /2venn.svg  two-circle diagram
//	GET /venn.svg   two- or three-circle diagram
//	GET /healthz    liveness probe
//
// Diagram endpoints take titles and numbers as query parameters:
//
//	/venn.svg?first=ducks&second=moles&one_two=platypuses&radius=160&size=800&overlap=40
//
// first and second are required. Omitted numbers use the configured
// defaults. Errors are answered with a small SVG describing the problem so
// that an <img> tag pointing at the endpoint still shows something.
package api
