// Package modkit assembles API modules from shared dependencies and build options
package modkit

import "bizquery/internal/modkit/module"

// Module is the surface api.Mount needs from each module
type Module = module.Module

// Builder constructs a Module from shared deps and options
type Builder func(Deps, ...Option) Module
