// Package taxonomy implements a client for an external category-graph
// service in the MediaWiki style: an HTTP GET with the page title as a
// query parameter, answered by an XML document whose category link
// elements carry namespace-prefixed titles.
package taxonomy
