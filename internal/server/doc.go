// Package server assembles the apphub service: configuration, logging,
// metrics, the inventory cache with its collectors, the launch resolver,
// the service registry, and the HTTP surface.
package server
