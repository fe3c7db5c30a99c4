// Package connectors holds integrations with external data sources.
// Each connector knows how to fetch and shape data from one provider;
// github is currently the only one.
package connectors
