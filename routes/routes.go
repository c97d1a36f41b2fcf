package routes

// Routes package wires the asset host.
//
// Layout:
// - api.go: dataset, health and 404 routes
//
// Usage:
// routes.SetupAllRoutes(router, assetController)
